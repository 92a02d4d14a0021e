package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"zeneva/internal/domain"
	"zeneva/internal/pos"
)

// The POS routes drive the in-memory register session. Every mutation
// returns the full snapshot so the register UI can render totals
// without a second fetch.

func (h *handlers) openSession(c *gin.Context) {
	c.JSON(http.StatusCreated, h.deps.POS.Open())
}

func (h *handlers) getSession(c *gin.Context) {
	snap, err := h.deps.POS.Get(c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (h *handlers) closeSession(c *gin.Context) {
	h.deps.POS.Close(c.Param("sessionID"))
	c.Status(http.StatusNoContent)
}

func (h *handlers) addItem(c *gin.Context) {
	var req struct {
		ProductID string `json:"productId" binding:"required"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "productId required")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if req.Quantity < 0 {
		badRequest(c, "quantity must be positive")
		return
	}

	p, err := h.deps.Catalog.Get(c.Request.Context(), currentTenant(c).ID, req.ProductID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	snap, err := h.deps.POS.Mutate(c.Param("sessionID"), func(s *pos.Session) {
		s.AddItem(pos.ProductSnapshot{
			ItemID:         p.ID,
			Name:           p.Name,
			UnitPriceCents: p.PriceCents,
		}, req.Quantity)
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (h *handlers) updateItemQuantity(c *gin.Context) {
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid body")
		return
	}
	if req.Quantity < 0 {
		badRequest(c, "quantity must not be negative")
		return
	}
	itemID := c.Param("itemID")
	snap, err := h.deps.POS.Mutate(c.Param("sessionID"), func(s *pos.Session) {
		s.UpdateQuantity(itemID, req.Quantity)
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (h *handlers) removeItem(c *gin.Context) {
	itemID := c.Param("itemID")
	snap, err := h.deps.POS.Mutate(c.Param("sessionID"), func(s *pos.Session) {
		s.RemoveItem(itemID)
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (h *handlers) clearCart(c *gin.Context) {
	snap, err := h.deps.POS.Mutate(c.Param("sessionID"), func(s *pos.Session) {
		s.ClearCart()
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// selectCustomer attaches a CRM record to the sale. An empty
// customerId detaches it again.
func (h *handlers) selectCustomer(c *gin.Context) {
	var req struct {
		CustomerID string `json:"customerId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid body")
		return
	}

	var cust *domain.Customer
	if req.CustomerID != "" {
		var err error
		cust, err = h.deps.Customers.Get(c.Request.Context(), currentTenant(c).ID, req.CustomerID)
		if err != nil {
			h.respondError(c, err)
			return
		}
	}

	snap, err := h.deps.POS.Mutate(c.Param("sessionID"), func(s *pos.Session) {
		s.SelectCustomer(cust)
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (h *handlers) setPaymentMethod(c *gin.Context) {
	var req struct {
		Method string `json:"method" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "method required")
		return
	}
	method, err := domain.ParsePaymentMethod(req.Method)
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	snap, err := h.deps.POS.Mutate(c.Param("sessionID"), func(s *pos.Session) {
		s.SetPaymentMethod(method)
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (h *handlers) applyDiscount(c *gin.Context) {
	var req struct {
		AmountCents int64 `json:"amountCents"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid body")
		return
	}
	snap, err := h.deps.POS.Mutate(c.Param("sessionID"), func(s *pos.Session) {
		s.ApplyDiscount(req.AmountCents)
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (h *handlers) setTaxRate(c *gin.Context) {
	var req struct {
		Pct float64 `json:"pct"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid body")
		return
	}
	snap, err := h.deps.POS.Mutate(c.Param("sessionID"), func(s *pos.Session) {
		s.SetTaxRate(req.Pct)
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (h *handlers) setNotes(c *gin.Context) {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid body")
		return
	}
	snap, err := h.deps.POS.Mutate(c.Param("sessionID"), func(s *pos.Session) {
		s.SetNotes(req.Text)
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (h *handlers) resetSession(c *gin.Context) {
	snap, err := h.deps.POS.Mutate(c.Param("sessionID"), func(s *pos.Session) {
		s.Reset()
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// checkout persists the session as a receipt and closes the session.
// The session stays open when persistence fails so the cashier can
// retry or adjust.
func (h *handlers) checkout(c *gin.Context) {
	sessionID := c.Param("sessionID")
	snap, err := h.deps.POS.Get(sessionID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	receipt, err := h.deps.Checkout.Complete(c.Request.Context(), currentTenant(c).ID, currentStaff(c).ID, snap)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.deps.POS.Close(sessionID)
	c.JSON(http.StatusCreated, receipt)
}
