package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func (h *handlers) businessInsight(c *gin.Context) {
	if h.deps.Insights == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "insights not configured"})
		return
	}

	days := 0
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			badRequest(c, "days must be a positive integer")
			return
		}
		days = parsed
	}

	t := currentTenant(c)
	text, err := h.deps.Insights.BusinessInsight(c.Request.Context(), t.ID, t.Name, days)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"insight": text})
}
