package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	staffsvc "zeneva/internal/service/staff"
)

func (h *handlers) signup(c *gin.Context) {
	var req staffsvc.SignupInput
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid body")
		return
	}
	member, err := h.deps.Staff.Signup(c.Request.Context(), currentTenant(c).ID, req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, member)
}

func (h *handlers) login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "email and password required")
		return
	}
	member, token, err := h.deps.Staff.Login(c.Request.Context(), currentTenant(c).ID, req.Email, req.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"staff":       member,
		"accessToken": token,
		"expiresIn":   h.deps.Staff.AccessTTLSeconds(),
	})
}

func (h *handlers) me(c *gin.Context) {
	c.JSON(http.StatusOK, currentStaff(c))
}
