package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"zeneva/internal/payments"
)

func (h *handlers) initializePayment(c *gin.Context) {
	if h.deps.Payments == nil || !h.deps.Payments.Configured() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "payments not configured"})
		return
	}
	var req payments.InitializeInput
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid body")
		return
	}
	if req.Currency == "" {
		req.Currency = h.deps.Currency
	}
	auth, err := h.deps.Payments.Initialize(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, auth)
}

func (h *handlers) verifyPayment(c *gin.Context) {
	if h.deps.Payments == nil || !h.deps.Payments.Configured() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "payments not configured"})
		return
	}
	tx, err := h.deps.Payments.Verify(c.Request.Context(), c.Param("reference"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tx)
}
