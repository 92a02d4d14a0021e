package httpserver

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"zeneva/internal/domain"
)

const (
	ctxTenantKey = "zeneva.tenant"
	ctxStaffKey  = "zeneva.staff"
)

// tenantMiddleware resolves :tenantSlug and stashes the tenant on the
// request context. Every scoped route runs behind it.
func tenantMiddleware(tenants TenantService) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("tenantSlug")
		t, err := tenants.GetBySlug(c.Request.Context(), slug)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "unknown tenant"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "tenant lookup failed"})
			return
		}
		c.Set(ctxTenantKey, t)
		c.Next()
	}
}

// authMiddleware validates the Bearer token against the tenant already
// resolved by tenantMiddleware.
func authMiddleware(staff StaffService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		t := currentTenant(c)
		member, err := staff.Authenticate(c.Request.Context(), t.ID, token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Set(ctxStaffKey, member)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

func currentTenant(c *gin.Context) *domain.Tenant {
	return c.MustGet(ctxTenantKey).(*domain.Tenant)
}

func currentStaff(c *gin.Context) *domain.Staff {
	return c.MustGet(ctxStaffKey).(*domain.Staff)
}
