package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/stewardly/ledger_engine/internal/apperrors"
)

// Stable machine codes returned alongside HTTP statuses so clients can branch on
// failure kind without parsing messages.
const (
	codeValidation              = "VALIDATION_ERROR"
	codeNotFound                = "NOT_FOUND"
	codeConflict                = "CONFLICT"
	codeInvalidState            = "INVALID_STATE"
	codeForbidden               = "FORBIDDEN"
	codeDuplicate               = "DUPLICATE"
	codeInternal                = "INTERNAL_ERROR"
	codeUnbalancedEntry         = "UNBALANCED_ENTRY"
	codeBookBalanceMismatch     = "BOOK_BALANCE_MISMATCH"
	codeLargeVariance           = "LARGE_VARIANCE"
	codeDuplicateReconciliation = "DUPLICATE_RECONCILIATION"
	codeSelfApproval            = "SELF_APPROVAL"
)

type errorResponse struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

// respondBindError translates a request binding failure into a 400 with per-field
// messages when the underlying failure is tag validation.
func respondBindError(c *gin.Context, err error) {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		msgs := make([]string, len(fieldErrs))
		for i, fe := range fieldErrs {
			msgs[i] = fmt.Sprintf("%s failed on '%s'", fe.Field(), fe.Tag())
		}
		c.JSON(http.StatusBadRequest, errorResponse{Code: codeValidation, Error: strings.Join(msgs, "; ")})
		return
	}
	c.JSON(http.StatusBadRequest, errorResponse{Code: codeValidation, Error: "Invalid request format"})
}

// respondError translates a service error into an HTTP status and machine code.
// Typed domain errors are matched before the generic sentinels they unwrap to.
func respondError(c *gin.Context, err error) {
	var unbalanced *apperrors.UnbalancedEntryError
	var bookMismatch *apperrors.BookBalanceMismatchError
	var largeVariance *apperrors.LargeVarianceError
	var duplicateRecon *apperrors.DuplicateReconciliationError
	var selfApproval *apperrors.SelfApprovalError

	switch {
	case errors.As(err, &unbalanced):
		c.JSON(http.StatusBadRequest, errorResponse{Code: codeUnbalancedEntry, Error: err.Error()})
	case errors.As(err, &bookMismatch):
		c.JSON(http.StatusBadRequest, errorResponse{Code: codeBookBalanceMismatch, Error: err.Error()})
	case errors.As(err, &largeVariance):
		c.JSON(http.StatusBadRequest, errorResponse{Code: codeLargeVariance, Error: err.Error()})
	case errors.As(err, &duplicateRecon):
		c.JSON(http.StatusConflict, errorResponse{Code: codeDuplicateReconciliation, Error: err.Error()})
	case errors.As(err, &selfApproval):
		c.JSON(http.StatusForbidden, errorResponse{Code: codeSelfApproval, Error: err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, errorResponse{Code: codeNotFound, Error: err.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, errorResponse{Code: codeValidation, Error: err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, errorResponse{Code: codeDuplicate, Error: err.Error()})
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, errorResponse{Code: codeConflict, Error: err.Error()})
	case errors.Is(err, apperrors.ErrInvalidState):
		c.JSON(http.StatusUnprocessableEntity, errorResponse{Code: codeInvalidState, Error: err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, errorResponse{Code: codeForbidden, Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, errorResponse{Code: codeInternal, Error: "internal error"})
	}
}
