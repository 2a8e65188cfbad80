package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openpago/payments-core/internal/models"
	"github.com/openpago/payments-core/internal/service"
)

// respondError maps the business-error taxonomy to HTTP statuses; anything
// untyped is treated as an infrastructure failure so callers can retry.
func respondError(c *gin.Context, err error) {
	var (
		invalidState   *models.InvalidStateError
		methodRequired *models.MethodRequiredError
		notConfirmable *models.NotConfirmableError
		insufficient   *models.InsufficientBalanceError
		invalidMethod  *models.InvalidMethodError
		notFound       *models.NotFoundError
		unauthorized   *models.UnauthorizedError
		refundLimit    *models.RefundLimitExceededError
		retryLimit     *models.RetryLimitExceededError
	)

	switch {
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &unauthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.As(err, &invalidState), errors.As(err, &notConfirmable),
		errors.Is(err, service.ErrActiveRefundExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &methodRequired), errors.As(err, &insufficient),
		errors.As(err, &invalidMethod), errors.As(err, &refundLimit),
		errors.As(err, &retryLimit):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
