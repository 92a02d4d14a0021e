package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"zeneva/internal/domain"
	"zeneva/internal/payments"
	checkoutsvc "zeneva/internal/service/checkout"
	staffsvc "zeneva/internal/service/staff"
	"zeneva/internal/uploads"
)

// respondError maps service errors onto HTTP statuses. Anything not
// recognized is treated as a bad request with the service's message;
// infrastructure failures surface through the recognized branches or
// the middleware, not here.
func (h *handlers) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, domain.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": "already exists"})
	case errors.Is(err, domain.ErrInsufficientStock):
		c.JSON(http.StatusConflict, gin.H{"error": "insufficient stock"})
	case errors.Is(err, staffsvc.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	case errors.Is(err, staffsvc.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
	case errors.Is(err, checkoutsvc.ErrEmptyCart), errors.Is(err, checkoutsvc.ErrNoPaymentMethod):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, payments.ErrNotConfigured), errors.Is(err, uploads.ErrNotConfigured):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		h.logger.Printf("request failed: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}
