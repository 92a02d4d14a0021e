package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	expensesvc "zeneva/internal/service/expense"
)

func (h *handlers) listExpenses(c *gin.Context) {
	from, to, ok := dateRange(c, 30)
	if !ok {
		return
	}
	expenses, err := h.deps.Expenses.List(c.Request.Context(), currentTenant(c).ID, from, to)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"expenses": expenses})
}

func (h *handlers) createExpense(c *gin.Context) {
	var req expensesvc.Input
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid body")
		return
	}
	expense, err := h.deps.Expenses.Create(c.Request.Context(), currentTenant(c).ID, req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, expense)
}

func (h *handlers) deleteExpense(c *gin.Context) {
	if err := h.deps.Expenses.Delete(c.Request.Context(), currentTenant(c).ID, c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
