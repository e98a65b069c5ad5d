package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/space-ranger/ship-registry/internal/api/shared/errors"
	"github.com/space-ranger/ship-registry/internal/domain"
	"github.com/space-ranger/ship-registry/internal/logger"
)

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusBadRequest, apierrors.NewBadRequestError(message, details...))
}

// respondNotFound responds with a not found error
func respondNotFound(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusNotFound, apierrors.NewNotFoundError(message, details...))
}

// respondValidationError responds with a validation error
func respondValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusUnprocessableEntity, apierrors.NewValidationError(message))
}

// respondForbidden responds with a forbidden error
func respondForbidden(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusForbidden, apierrors.NewForbiddenError(message, details...))
}

// respondConflict responds with a conflict error
func respondConflict(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusConflict, apierrors.NewConflictError(message, details...))
}

// respondPaymentRequired responds with a payment required error
func respondPaymentRequired(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusPaymentRequired, apierrors.NewPaymentRequiredError(message, details...))
}

// respondInternalError responds with an internal server error and logs it
func respondInternalError(c *gin.Context, err error, message string) {
	logger.Error(err, zap.String("path", c.Request.URL.Path))
	c.JSON(http.StatusInternalServerError, apierrors.NewInternalError(message))
}

// respondDomainError maps domain errors onto HTTP status codes
func respondDomainError(c *gin.Context, err error, fallbackMessage string) {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		respondForbidden(c, "Caller is not allowed to perform this operation")
	case errors.Is(err, domain.ErrInvalidInput):
		respondBadRequest(c, "Invalid input", err.Error())
	case errors.Is(err, domain.ErrInvalidAmount):
		respondValidationError(c, err.Error())
	case errors.Is(err, domain.ErrSeriesNotFound):
		respondNotFound(c, "Series not found")
	case errors.Is(err, domain.ErrShipNotFound):
		respondNotFound(c, "Ship not found")
	case errors.Is(err, domain.ErrSupplyExhausted):
		respondConflict(c, "Series supply is exhausted")
	case errors.Is(err, domain.ErrAlreadyOwnsShip):
		respondConflict(c, "Account already owns a ship")
	case errors.Is(err, domain.ErrInsufficientDeposit):
		respondPaymentRequired(c, "Attached deposit is below the mint price")
	default:
		respondInternalError(c, err, fallbackMessage)
	}
}
