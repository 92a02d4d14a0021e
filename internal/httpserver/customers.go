package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	customersvc "zeneva/internal/service/customer"
)

func (h *handlers) listCustomers(c *gin.Context) {
	customers, err := h.deps.Customers.List(c.Request.Context(), currentTenant(c).ID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": customers})
}

func (h *handlers) getCustomer(c *gin.Context) {
	cust, err := h.deps.Customers.Get(c.Request.Context(), currentTenant(c).ID, c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cust)
}

func (h *handlers) createCustomer(c *gin.Context) {
	var req customersvc.Input
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid body")
		return
	}
	cust, err := h.deps.Customers.Create(c.Request.Context(), currentTenant(c).ID, req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cust)
}

func (h *handlers) updateCustomer(c *gin.Context) {
	var req customersvc.Input
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid body")
		return
	}
	cust, err := h.deps.Customers.Update(c.Request.Context(), currentTenant(c).ID, c.Param("id"), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cust)
}

func (h *handlers) deleteCustomer(c *gin.Context) {
	if err := h.deps.Customers.Delete(c.Request.Context(), currentTenant(c).ID, c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
