package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"zeneva/internal/domain"
)

// The storefront is the public, read-only product listing for one
// tenant. No auth; inactive products never show.

func (h *handlers) storefrontProducts(c *gin.Context) {
	t := currentTenant(c)
	products, err := h.deps.Catalog.List(c.Request.Context(), t.ID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	visible := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if p.Active {
			visible = append(visible, p)
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"store":    gin.H{"name": t.Name, "slug": t.Slug},
		"products": visible,
	})
}

func (h *handlers) storefrontProduct(c *gin.Context) {
	p, err := h.deps.Catalog.Get(c.Request.Context(), currentTenant(c).ID, c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	if !p.Active {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}
