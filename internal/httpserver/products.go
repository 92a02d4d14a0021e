package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	catalogsvc "zeneva/internal/service/catalog"
)

func (h *handlers) listProducts(c *gin.Context) {
	products, err := h.deps.Catalog.List(c.Request.Context(), currentTenant(c).ID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (h *handlers) listLowStock(c *gin.Context) {
	products, err := h.deps.Catalog.ListLowStock(c.Request.Context(), currentTenant(c).ID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (h *handlers) getProduct(c *gin.Context) {
	p, err := h.deps.Catalog.Get(c.Request.Context(), currentTenant(c).ID, c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *handlers) createProduct(c *gin.Context) {
	var req catalogsvc.CreateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid body")
		return
	}
	if req.Currency == "" {
		req.Currency = h.deps.Currency
	}
	p, err := h.deps.Catalog.Create(c.Request.Context(), currentTenant(c).ID, req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *handlers) updateProduct(c *gin.Context) {
	var req catalogsvc.CreateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid body")
		return
	}
	if req.Currency == "" {
		req.Currency = h.deps.Currency
	}
	p, err := h.deps.Catalog.Update(c.Request.Context(), currentTenant(c).ID, c.Param("id"), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *handlers) deleteProduct(c *gin.Context) {
	if err := h.deps.Catalog.Delete(c.Request.Context(), currentTenant(c).ID, c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handlers) adjustStock(c *gin.Context) {
	var req struct {
		Delta int `json:"delta"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid body")
		return
	}
	if req.Delta == 0 {
		badRequest(c, "delta must not be zero")
		return
	}
	p, err := h.deps.Catalog.AdjustStock(c.Request.Context(), currentTenant(c).ID, c.Param("id"), req.Delta)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// uploadProductImage pushes the file to the media host, then saves the
// returned URL on the product.
func (h *handlers) uploadProductImage(c *gin.Context) {
	if h.deps.Uploads == nil || !h.deps.Uploads.Configured() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "uploads not configured"})
		return
	}
	tenantID := currentTenant(c).ID
	productID := c.Param("id")

	p, err := h.deps.Catalog.Get(c.Request.Context(), tenantID, productID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		badRequest(c, "file required")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		badRequest(c, "unreadable file")
		return
	}
	defer file.Close()

	url, err := h.deps.Uploads.UploadImage(c.Request.Context(), fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"), fileHeader.Size, file)
	if err != nil {
		h.respondError(c, err)
		return
	}

	updated, err := h.deps.Catalog.Update(c.Request.Context(), tenantID, productID, catalogsvc.CreateInput{
		SKU:         p.SKU,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		PriceCents:  p.PriceCents,
		Currency:    p.Currency,
		StockQty:    p.StockQty,
		LowStockAt:  p.LowStockAt,
		ImageURL:    url,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}
