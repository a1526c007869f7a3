package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/stewardly/ledger_engine/internal/core/ports/services"
	"github.com/stewardly/ledger_engine/internal/core/services"
	"github.com/stewardly/ledger_engine/internal/dto"
)

// auditHandler handles HTTP requests for the transaction audit trail.
type auditHandler struct {
	auditService portssvc.AuditSvcFacade
}

// newAuditHandler creates a new auditHandler.
func newAuditHandler(auditService portssvc.AuditSvcFacade) *auditHandler {
	return &auditHandler{
		auditService: auditService,
	}
}

var auditEntityTypes = map[string]string{
	"journal-entries": services.EntityJournalEntry,
	"reconciliations": services.EntityReconciliation,
	"bank-accounts":   services.EntityBankAccount,
}

// listByEntity godoc
// @Summary List audit trail entries for an entity
// @Description Retrieves the append-only audit trail for an entity, oldest first
// @Tags audit
// @Produce  json
// @Param   entityType path string true "Entity type" Enums(journal-entries, reconciliations, bank-accounts)
// @Param   entityID path string true "Entity ID"
// @Param   limit query int false "Page size"
// @Param   offset query int false "Page offset"
// @Success 200 {array} dto.AuditLogResponse "Audit entries"
// @Failure 400 {object} errorResponse "Unknown entity type"
// @Router /audit/{entityType}/{entityID} [get]
func (h *auditHandler) listByEntity(c *gin.Context) {
	entityType, ok := auditEntityTypes[c.Param("entityType")]
	if !ok {
		c.JSON(http.StatusBadRequest, errorResponse{Code: codeValidation, Error: "Unknown entity type"})
		return
	}
	entityID := c.Param("entityID")

	var params dto.ListJournalEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Code: codeValidation, Error: "Invalid query parameters"})
		return
	}

	_, orgID, found := actorAndOrg(c)
	if !found {
		return
	}

	entries, err := h.auditService.ListByEntity(c.Request.Context(), orgID, entityType, entityID, params.Limit, params.Offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAuditLogResponses(entries))
}

// registerAuditRoutes registers audit trail routes.
func registerAuditRoutes(group *gin.RouterGroup, auditService portssvc.AuditSvcFacade) {
	h := newAuditHandler(auditService)

	group.GET("/audit/:entityType/:entityID", h.listByEntity)
}
