package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/stewardly/ledger_engine/internal/core/ports/services"
	"github.com/stewardly/ledger_engine/internal/dto"
	"github.com/stewardly/ledger_engine/internal/middleware"
)

// reconciliationHandler handles HTTP requests for the bank reconciliation workflow.
type reconciliationHandler struct {
	reconService portssvc.ReconciliationSvcFacade
}

// newReconciliationHandler creates a new reconciliationHandler.
func newReconciliationHandler(reconService portssvc.ReconciliationSvcFacade) *reconciliationHandler {
	return &reconciliationHandler{
		reconService: reconService,
	}
}

// saveReconciliation godoc
// @Summary Create a bank reconciliation
// @Description Validates and persists a new reconciliation prepared by the caller
// @Tags reconciliations
// @Accept  json
// @Produce  json
// @Param   reconciliation body dto.SaveReconciliationRequest true "Reconciliation data"
// @Success 201 {object} dto.ReconciliationResponse "The created reconciliation"
// @Failure 400 {object} errorResponse "Validation failed"
// @Failure 409 {object} errorResponse "Duplicate reconciliation for this account and date"
// @Router /reconciliations [post]
func (h *reconciliationHandler) saveReconciliation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SaveReconciliationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for saveReconciliation", slog.String("error", err.Error()))
		respondBindError(c, err)
		return
	}

	actorID, orgID, ok := actorAndOrg(c)
	if !ok {
		return
	}

	recon, err := h.reconService.SaveReconciliation(c.Request.Context(), orgID, req, actorID)
	if err != nil {
		logger.Warn("Failed to save reconciliation", slog.String("bank_account_id", req.BankAccountID), slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	logger.Info("Reconciliation created", slog.String("reconciliation_id", recon.ReconciliationID))
	c.JSON(http.StatusCreated, dto.ToReconciliationResponse(recon))
}

// submitForReview godoc
// @Summary Submit a reconciliation for review
// @Description Moves a DRAFT reconciliation to PENDING_REVIEW
// @Tags reconciliations
// @Accept  json
// @Produce  json
// @Param   reconciliationID path string true "Reconciliation ID"
// @Param   request body dto.ReconciliationActionRequest false "Expected version"
// @Success 200 {object} dto.ReconciliationResponse "The updated reconciliation"
// @Failure 404 {object} errorResponse "Reconciliation not found"
// @Failure 422 {object} errorResponse "Reconciliation is not in DRAFT"
// @Router /reconciliations/{reconciliationID}/submit [post]
func (h *reconciliationHandler) submitForReview(c *gin.Context) {
	h.transition(c, func(c *gin.Context, orgID, reconID, actorID string, expectedVersion *int64) (interface{}, error) {
		recon, err := h.reconService.SubmitForReview(c.Request.Context(), orgID, reconID, actorID, expectedVersion)
		if err != nil {
			return nil, err
		}
		return dto.ToReconciliationResponse(recon), nil
	})
}

// approve godoc
// @Summary Approve a reconciliation
// @Description Moves a PENDING_REVIEW reconciliation to APPROVED and stamps the bank account. The approver must differ from the preparer.
// @Tags reconciliations
// @Accept  json
// @Produce  json
// @Param   reconciliationID path string true "Reconciliation ID"
// @Param   request body dto.ReconciliationActionRequest false "Expected version"
// @Success 200 {object} dto.ReconciliationResponse "The approved reconciliation"
// @Failure 403 {object} errorResponse "Preparer cannot approve their own reconciliation"
// @Failure 409 {object} errorResponse "Concurrent modification"
// @Failure 422 {object} errorResponse "Reconciliation is not PENDING_REVIEW"
// @Router /reconciliations/{reconciliationID}/approve [post]
func (h *reconciliationHandler) approve(c *gin.Context) {
	h.transition(c, func(c *gin.Context, orgID, reconID, actorID string, expectedVersion *int64) (interface{}, error) {
		recon, err := h.reconService.Approve(c.Request.Context(), orgID, reconID, actorID, expectedVersion)
		if err != nil {
			return nil, err
		}
		return dto.ToReconciliationResponse(recon), nil
	})
}

// reject godoc
// @Summary Reject a reconciliation
// @Description Moves a PENDING_REVIEW reconciliation to REJECTED with a reason
// @Tags reconciliations
// @Accept  json
// @Produce  json
// @Param   reconciliationID path string true "Reconciliation ID"
// @Param   request body dto.RejectReconciliationRequest true "Rejection reason"
// @Success 200 {object} dto.ReconciliationResponse "The rejected reconciliation"
// @Failure 422 {object} errorResponse "Reconciliation is not PENDING_REVIEW"
// @Router /reconciliations/{reconciliationID}/reject [post]
func (h *reconciliationHandler) reject(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	reconID := c.Param("reconciliationID")

	var req dto.RejectReconciliationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for reject", slog.String("error", err.Error()))
		respondBindError(c, err)
		return
	}

	actorID, orgID, ok := actorAndOrg(c)
	if !ok {
		return
	}

	recon, err := h.reconService.Reject(c.Request.Context(), orgID, reconID, actorID, req.Reason, req.ExpectedVersion)
	if err != nil {
		logger.Warn("Failed to reject reconciliation", slog.String("reconciliation_id", reconID), slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	logger.Info("Reconciliation rejected", slog.String("reconciliation_id", reconID))
	c.JSON(http.StatusOK, dto.ToReconciliationResponse(recon))
}

// voidReconciliation godoc
// @Summary Void a reconciliation
// @Description Terminates a non-terminal reconciliation with a mandatory reason
// @Tags reconciliations
// @Accept  json
// @Produce  json
// @Param   reconciliationID path string true "Reconciliation ID"
// @Param   request body dto.VoidReconciliationRequest true "Void reason"
// @Success 200 {object} dto.ReconciliationResponse "The voided reconciliation"
// @Failure 422 {object} errorResponse "Reconciliation is already terminal"
// @Router /reconciliations/{reconciliationID}/void [post]
func (h *reconciliationHandler) voidReconciliation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	reconID := c.Param("reconciliationID")

	var req dto.VoidReconciliationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for voidReconciliation", slog.String("error", err.Error()))
		respondBindError(c, err)
		return
	}

	actorID, orgID, ok := actorAndOrg(c)
	if !ok {
		return
	}

	recon, err := h.reconService.Void(c.Request.Context(), orgID, reconID, req.Reason, actorID)
	if err != nil {
		logger.Warn("Failed to void reconciliation", slog.String("reconciliation_id", reconID), slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	logger.Info("Reconciliation voided", slog.String("reconciliation_id", reconID))
	c.JSON(http.StatusOK, dto.ToReconciliationResponse(recon))
}

// getReconciliation godoc
// @Summary Get a reconciliation
// @Description Retrieves a reconciliation by id
// @Tags reconciliations
// @Produce  json
// @Param   reconciliationID path string true "Reconciliation ID"
// @Success 200 {object} dto.ReconciliationResponse "The reconciliation"
// @Failure 404 {object} errorResponse "Reconciliation not found"
// @Router /reconciliations/{reconciliationID} [get]
func (h *reconciliationHandler) getReconciliation(c *gin.Context) {
	reconID := c.Param("reconciliationID")

	_, orgID, ok := actorAndOrg(c)
	if !ok {
		return
	}

	recon, err := h.reconService.FindOne(c.Request.Context(), orgID, reconID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReconciliationResponse(recon))
}

// listByBankAccount godoc
// @Summary List reconciliations for a bank account
// @Description Retrieves reconciliations for a bank account, most recent first
// @Tags reconciliations
// @Produce  json
// @Param   bankAccountID path string true "Bank Account ID"
// @Param   limit query int false "Page size"
// @Param   offset query int false "Page offset"
// @Success 200 {array} dto.ReconciliationResponse "Reconciliations"
// @Router /bank-accounts/{bankAccountID}/reconciliations [get]
func (h *reconciliationHandler) listByBankAccount(c *gin.Context) {
	bankAccountID := c.Param("bankAccountID")

	var params dto.ListReconciliationsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Code: codeValidation, Error: "Invalid query parameters"})
		return
	}

	_, orgID, ok := actorAndOrg(c)
	if !ok {
		return
	}

	recons, err := h.reconService.FindByBankAccount(c.Request.Context(), orgID, bankAccountID, params)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReconciliationResponses(recons))
}

type transitionFunc func(c *gin.Context, orgID, reconID, actorID string, expectedVersion *int64) (interface{}, error)

// transition factors the shared shape of version-guarded workflow moves.
func (h *reconciliationHandler) transition(c *gin.Context, apply transitionFunc) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	reconID := c.Param("reconciliationID")

	var req dto.ReconciliationActionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Warn("Failed to bind JSON for reconciliation transition", slog.String("error", err.Error()))
			respondBindError(c, err)
			return
		}
	}

	actorID, orgID, ok := actorAndOrg(c)
	if !ok {
		return
	}

	resp, err := apply(c, orgID, reconID, actorID, req.ExpectedVersion)
	if err != nil {
		logger.Warn("Reconciliation transition failed", slog.String("reconciliation_id", reconID), slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	logger.Info("Reconciliation transitioned", slog.String("reconciliation_id", reconID))
	c.JSON(http.StatusOK, resp)
}

// registerReconciliationRoutes registers reconciliation workflow routes.
func registerReconciliationRoutes(group *gin.RouterGroup, reconService portssvc.ReconciliationSvcFacade) {
	h := newReconciliationHandler(reconService)

	recons := group.Group("/reconciliations")
	{
		recons.POST("", h.saveReconciliation)
		recons.GET("/:reconciliationID", h.getReconciliation)
		recons.POST("/:reconciliationID/submit", h.submitForReview)
		recons.POST("/:reconciliationID/approve", h.approve)
		recons.POST("/:reconciliationID/reject", h.reject)
		recons.POST("/:reconciliationID/void", h.voidReconciliation)
	}

	group.GET("/bank-accounts/:bankAccountID/reconciliations", h.listByBankAccount)
}
