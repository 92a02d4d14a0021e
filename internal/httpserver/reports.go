package httpserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func (h *handlers) listReceipts(c *gin.Context) {
	from, to, ok := dateRange(c, 30)
	if !ok {
		return
	}
	receipts, err := h.deps.Checkout.List(c.Request.Context(), currentTenant(c).ID, from, to)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"receipts": receipts})
}

func (h *handlers) getReceipt(c *gin.Context) {
	receipt, err := h.deps.Checkout.Get(c.Request.Context(), currentTenant(c).ID, c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, receipt)
}

func (h *handlers) dailySummary(c *gin.Context) {
	day := time.Now().UTC()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			badRequest(c, "date must be YYYY-MM-DD")
			return
		}
		day = parsed
	}
	summary, err := h.deps.Checkout.DailySummary(c.Request.Context(), currentTenant(c).ID, day)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *handlers) cashFlowReport(c *gin.Context) {
	from, to, ok := dateRange(c, 30)
	if !ok {
		return
	}
	report, err := h.deps.Expenses.Report(c.Request.Context(), currentTenant(c).ID, from, to)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// dateRange reads optional ?from= and ?to= query dates, defaulting to
// the trailing defaultDays window. Writes the error response itself
// when parsing fails.
func dateRange(c *gin.Context, defaultDays int) (time.Time, time.Time, bool) {
	now := time.Now().UTC()
	from := now.AddDate(0, 0, -defaultDays)
	to := now

	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			badRequest(c, "from must be YYYY-MM-DD")
			return time.Time{}, time.Time{}, false
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			badRequest(c, "to must be YYYY-MM-DD")
			return time.Time{}, time.Time{}, false
		}
		// inclusive end of day
		to = parsed.AddDate(0, 0, 1)
	}
	if to.Before(from) {
		badRequest(c, "to must not precede from")
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}
