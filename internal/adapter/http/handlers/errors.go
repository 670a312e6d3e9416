package handlers

import (
	"errors"
	"net/http"

	"ev_warranty/internal/domain/failures"
	"ev_warranty/internal/usecase"
	"ev_warranty/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)
	errInvalidRequest         = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

// mapEstimateError turns a failure from the estimate workflow into the HTTP
// error shape. Claim state conflicts keep the authority's message verbatim.
func mapEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, failures.ErrValidation):
		return pkg.NewDomainError("INVALID_ESTIMATE_INPUT", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, failures.ErrConstraint):
		return pkg.NewDomainError("RECALL_CONSTRAINT_VIOLATION", err.Error(), err, http.StatusUnprocessableEntity)
	case errors.Is(err, failures.ErrState):
		return pkg.NewDomainError("CLAIM_STATE_CONFLICT", err.Error(), err, http.StatusConflict)
	case errors.Is(err, failures.ErrTransport):
		return pkg.NewDomainError("AUTHORITY_UNAVAILABLE", "The warranty authority is unavailable", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainError("SESSION_NOT_FOUND", "Session not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrClaimNotFound):
		return pkg.NewDomainError("CLAIM_NOT_FOUND", "Claim not found", err, http.StatusNotFound)
	case errors.Is(err, failures.ErrNotFound):
		return pkg.NewDomainError("ESTIMATE_NOT_FOUND", "Estimate not found", err, http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
