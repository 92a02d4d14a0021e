package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	tenantsvc "zeneva/internal/service/tenant"
)

func (h *handlers) registerTenant(c *gin.Context) {
	var req tenantsvc.RegisterInput
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid body")
		return
	}
	t, err := h.deps.Tenants.Register(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

func (h *handlers) getTenant(c *gin.Context) {
	c.JSON(http.StatusOK, currentTenant(c))
}

func (h *handlers) extendTrial(c *gin.Context) {
	var req struct {
		Days int `json:"days"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid body")
		return
	}
	t, err := h.deps.Tenants.ExtendTrial(c.Request.Context(), currentTenant(c).ID, req.Days)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *handlers) changePlan(c *gin.Context) {
	var req struct {
		Plan string `json:"plan" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "plan required")
		return
	}
	if err := h.deps.Tenants.ChangePlan(c.Request.Context(), currentTenant(c).ID, req.Plan); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"plan": req.Plan})
}
