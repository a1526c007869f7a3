package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/stewardly/ledger_engine/internal/core/ports/services"
	"github.com/stewardly/ledger_engine/internal/dto"
	"github.com/stewardly/ledger_engine/internal/middleware"
)

// journalHandler handles HTTP requests related to journal entries.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
}

// newJournalHandler creates a new journalHandler.
func newJournalHandler(journalService portssvc.JournalSvcFacade) *journalHandler {
	return &journalHandler{
		journalService: journalService,
	}
}

// createEntry godoc
// @Summary Create a draft journal entry
// @Description Creates a new DRAFT journal entry with its lines
// @Tags journal-entries
// @Accept  json
// @Produce  json
// @Param   entry body dto.CreateJournalEntryRequest true "Journal entry and lines"
// @Success 201 {object} dto.JournalEntryResponse "The created entry"
// @Failure 400 {object} errorResponse "Invalid request"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 500 {object} errorResponse "Internal error"
// @Router /journal-entries [post]
func (h *journalHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createEntry", slog.String("error", err.Error()))
		respondBindError(c, err)
		return
	}

	actorID, orgID, ok := actorAndOrg(c)
	if !ok {
		return
	}

	entry, err := h.journalService.CreateJournalEntry(c.Request.Context(), orgID, req, actorID)
	if err != nil {
		logger.Warn("Failed to create journal entry", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	logger.Info("Journal entry created", slog.String("entry_id", entry.EntryID))
	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(entry))
}

// postEntry godoc
// @Summary Post a draft journal entry
// @Description Transitions a DRAFT entry to POSTED, enforcing debit/credit balance
// @Tags journal-entries
// @Produce  json
// @Param   entryID path string true "Entry ID"
// @Success 200 {object} dto.JournalEntryResponse "The posted entry"
// @Failure 400 {object} errorResponse "Entry is not balanced"
// @Failure 404 {object} errorResponse "Entry not found"
// @Failure 422 {object} errorResponse "Entry is not in DRAFT"
// @Router /journal-entries/{entryID}/post [post]
func (h *journalHandler) postEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("entryID")

	actorID, orgID, ok := actorAndOrg(c)
	if !ok {
		return
	}

	entry, err := h.journalService.PostJournalEntry(c.Request.Context(), orgID, entryID, actorID)
	if err != nil {
		logger.Warn("Failed to post journal entry", slog.String("entry_id", entryID), slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	logger.Info("Journal entry posted", slog.String("entry_id", entryID))
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// voidEntry godoc
// @Summary Void a posted journal entry
// @Description Voids a POSTED entry by creating and posting a reversing entry
// @Tags journal-entries
// @Accept  json
// @Produce  json
// @Param   entryID path string true "Entry ID"
// @Param   request body dto.VoidJournalEntryRequest true "Void reason and expected version"
// @Success 200 {object} dto.JournalEntryResponse "The voided entry"
// @Failure 404 {object} errorResponse "Entry not found"
// @Failure 409 {object} errorResponse "Concurrent modification"
// @Failure 422 {object} errorResponse "Entry is not POSTED"
// @Router /journal-entries/{entryID}/void [post]
func (h *journalHandler) voidEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("entryID")

	var req dto.VoidJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for voidEntry", slog.String("error", err.Error()))
		respondBindError(c, err)
		return
	}

	actorID, orgID, ok := actorAndOrg(c)
	if !ok {
		return
	}

	entry, err := h.journalService.VoidJournalEntry(c.Request.Context(), orgID, entryID, req.Reason, actorID, req.ExpectedVersion)
	if err != nil {
		logger.Warn("Failed to void journal entry", slog.String("entry_id", entryID), slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	logger.Info("Journal entry voided", slog.String("entry_id", entryID))
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// getEntry godoc
// @Summary Get a journal entry
// @Description Retrieves a journal entry with its lines
// @Tags journal-entries
// @Produce  json
// @Param   entryID path string true "Entry ID"
// @Success 200 {object} dto.JournalEntryResponse "The entry"
// @Failure 404 {object} errorResponse "Entry not found"
// @Router /journal-entries/{entryID} [get]
func (h *journalHandler) getEntry(c *gin.Context) {
	entryID := c.Param("entryID")

	_, orgID, ok := actorAndOrg(c)
	if !ok {
		return
	}

	entry, err := h.journalService.GetJournalEntry(c.Request.Context(), orgID, entryID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// listEntries godoc
// @Summary List journal entries
// @Description Retrieves journal entries for the caller's organisation, most recent first
// @Tags journal-entries
// @Produce  json
// @Param   limit query int false "Page size"
// @Param   offset query int false "Page offset"
// @Success 200 {array} dto.JournalEntryResponse "Entries"
// @Router /journal-entries [get]
func (h *journalHandler) listEntries(c *gin.Context) {
	var params dto.ListJournalEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Code: codeValidation, Error: "Invalid query parameters"})
		return
	}

	_, orgID, ok := actorAndOrg(c)
	if !ok {
		return
	}

	entries, err := h.journalService.ListJournalEntries(c.Request.Context(), orgID, params)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]dto.JournalEntryResponse, len(entries))
	for i := range entries {
		responses[i] = dto.ToJournalEntryResponse(&entries[i])
	}
	c.JSON(http.StatusOK, responses)
}

// actorAndOrg extracts the authenticated actor and organisation from the request
// context, replying 401 when either is missing.
func actorAndOrg(c *gin.Context) (actorID string, orgID string, ok bool) {
	actorID, found := middleware.GetActorIDFromContext(c)
	if !found {
		c.JSON(http.StatusUnauthorized, errorResponse{Code: codeForbidden, Error: "Unauthorized"})
		return "", "", false
	}
	orgID, found = middleware.GetOrgIDFromContext(c)
	if !found {
		c.JSON(http.StatusUnauthorized, errorResponse{Code: codeForbidden, Error: "Unauthorized"})
		return "", "", false
	}
	return actorID, orgID, true
}

// registerJournalRoutes registers journal entry routes.
func registerJournalRoutes(group *gin.RouterGroup, journalService portssvc.JournalSvcFacade) {
	h := newJournalHandler(journalService)

	entries := group.Group("/journal-entries")
	{
		entries.POST("", h.createEntry)
		entries.GET("", h.listEntries)
		entries.GET("/:entryID", h.getEntry)
		entries.POST("/:entryID/post", h.postEntry)
		entries.POST("/:entryID/void", h.voidEntry)
	}
}
