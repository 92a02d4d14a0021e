package httpserver

import (
	"context"
	"errors"
	"io"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"zeneva/internal/domain"
	"zeneva/internal/payments"
	"zeneva/internal/pos"
	receiptrepo "zeneva/internal/repository/receipt"
	catalogsvc "zeneva/internal/service/catalog"
	customersvc "zeneva/internal/service/customer"
	expensesvc "zeneva/internal/service/expense"
	staffsvc "zeneva/internal/service/staff"
	tenantsvc "zeneva/internal/service/tenant"
)

// TenantService resolves and manages business accounts.
type TenantService interface {
	Register(ctx context.Context, in tenantsvc.RegisterInput) (*domain.Tenant, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error)
	ExtendTrial(ctx context.Context, tenantID string, days int) (*domain.Tenant, error)
	ChangePlan(ctx context.Context, tenantID, plan string) error
}

// StaffService handles login accounts and bearer tokens.
type StaffService interface {
	Signup(ctx context.Context, tenantID string, in staffsvc.SignupInput) (*domain.Staff, error)
	Login(ctx context.Context, tenantID, email, password string) (*domain.Staff, string, error)
	Authenticate(ctx context.Context, tenantID, token string) (*domain.Staff, error)
	AccessTTLSeconds() int
}

// CatalogService manages the tenant's product catalog.
type CatalogService interface {
	Create(ctx context.Context, tenantID string, in catalogsvc.CreateInput) (*domain.Product, error)
	Update(ctx context.Context, tenantID, id string, in catalogsvc.CreateInput) (*domain.Product, error)
	Delete(ctx context.Context, tenantID, id string) error
	Get(ctx context.Context, tenantID, id string) (*domain.Product, error)
	List(ctx context.Context, tenantID string) ([]domain.Product, error)
	ListLowStock(ctx context.Context, tenantID string) ([]domain.Product, error)
	AdjustStock(ctx context.Context, tenantID, id string, delta int) (*domain.Product, error)
}

// CustomerService manages the tenant's customer book.
type CustomerService interface {
	Create(ctx context.Context, tenantID string, in customersvc.Input) (*domain.Customer, error)
	Update(ctx context.Context, tenantID, id string, in customersvc.Input) (*domain.Customer, error)
	Get(ctx context.Context, tenantID, id string) (*domain.Customer, error)
	List(ctx context.Context, tenantID string) ([]domain.Customer, error)
	Delete(ctx context.Context, tenantID, id string) error
}

// CheckoutService persists finished sales and reads them back.
type CheckoutService interface {
	Complete(ctx context.Context, tenantID, staffID string, snap pos.Snapshot) (*domain.Receipt, error)
	Get(ctx context.Context, tenantID, id string) (*domain.Receipt, error)
	List(ctx context.Context, tenantID string, from, to time.Time) ([]domain.Receipt, error)
	DailySummary(ctx context.Context, tenantID string, day time.Time) (*receiptrepo.Summary, error)
}

// ExpenseService records spending and builds cash flow reports.
type ExpenseService interface {
	Create(ctx context.Context, tenantID string, in expensesvc.Input) (*domain.Expense, error)
	List(ctx context.Context, tenantID string, from, to time.Time) ([]domain.Expense, error)
	Delete(ctx context.Context, tenantID, id string) error
	Report(ctx context.Context, tenantID string, from, to time.Time) (*expensesvc.CashFlow, error)
}

// InsightsService produces the AI summary of recent trade.
type InsightsService interface {
	BusinessInsight(ctx context.Context, tenantID, tenantName string, days int) (string, error)
}

// PaymentsClient proxies the card payment gateway.
type PaymentsClient interface {
	Initialize(ctx context.Context, in payments.InitializeInput) (*payments.Authorization, error)
	Verify(ctx context.Context, reference string) (*payments.Transaction, error)
	Configured() bool
}

// UploadsClient pushes product images to the media host.
type UploadsClient interface {
	UploadImage(ctx context.Context, filename, contentType string, size int64, r io.Reader) (string, error)
	Configured() bool
}

// Deps carries everything the handlers call into.
type Deps struct {
	Tenants   TenantService
	Staff     StaffService
	Catalog   CatalogService
	Customers CustomerService
	Checkout  CheckoutService
	Expenses  ExpenseService
	Insights  InsightsService
	Payments  PaymentsClient
	Uploads   UploadsClient
	POS       *pos.Manager
	Currency  string
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps, corsOrigins []string) (*gin.Engine, error) {
	switch {
	case deps.Tenants == nil:
		return nil, errors.New("httpserver: tenant service required")
	case deps.Staff == nil:
		return nil, errors.New("httpserver: staff service required")
	case deps.Catalog == nil:
		return nil, errors.New("httpserver: catalog service required")
	case deps.Customers == nil:
		return nil, errors.New("httpserver: customer service required")
	case deps.Checkout == nil:
		return nil, errors.New("httpserver: checkout service required")
	case deps.Expenses == nil:
		return nil, errors.New("httpserver: expense service required")
	case deps.POS == nil:
		return nil, errors.New("httpserver: pos manager required")
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	if len(corsOrigins) > 0 {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowOrigins = corsOrigins
		corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
		router.Use(cors.New(corsCfg))
	}

	h := &handlers{logger: logger, deps: deps}

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	router.POST("/tenants", h.registerTenant)

	scoped := router.Group("/tenants/:tenantSlug")
	scoped.Use(tenantMiddleware(deps.Tenants))
	{
		scoped.GET("", h.getTenant)
		scoped.POST("/staff/signup", h.signup)
		scoped.POST("/staff/login", h.login)

		authed := scoped.Group("")
		authed.Use(authMiddleware(deps.Staff))
		{
			authed.GET("/me", h.me)
			authed.POST("/trial/extend", h.extendTrial)
			authed.POST("/plan", h.changePlan)

			authed.GET("/products", h.listProducts)
			authed.POST("/products", h.createProduct)
			authed.GET("/products/low-stock", h.listLowStock)
			authed.GET("/products/:id", h.getProduct)
			authed.PUT("/products/:id", h.updateProduct)
			authed.DELETE("/products/:id", h.deleteProduct)
			authed.POST("/products/:id/stock", h.adjustStock)
			authed.POST("/products/:id/image", h.uploadProductImage)

			authed.GET("/customers", h.listCustomers)
			authed.POST("/customers", h.createCustomer)
			authed.GET("/customers/:id", h.getCustomer)
			authed.PUT("/customers/:id", h.updateCustomer)
			authed.DELETE("/customers/:id", h.deleteCustomer)

			registerPOSRoutes(authed.Group("/pos"), h)

			authed.GET("/receipts", h.listReceipts)
			authed.GET("/receipts/:id", h.getReceipt)
			authed.GET("/reports/daily", h.dailySummary)
			authed.GET("/reports/cashflow", h.cashFlowReport)

			authed.GET("/expenses", h.listExpenses)
			authed.POST("/expenses", h.createExpense)
			authed.DELETE("/expenses/:id", h.deleteExpense)

			authed.GET("/insights", h.businessInsight)

			authed.POST("/payments/initialize", h.initializePayment)
			authed.GET("/payments/verify/:reference", h.verifyPayment)
		}
	}

	store := router.Group("/store/:tenantSlug")
	store.Use(tenantMiddleware(deps.Tenants))
	{
		store.GET("/products", h.storefrontProducts)
		store.GET("/products/:id", h.storefrontProduct)
	}

	return router, nil
}

func registerPOSRoutes(g *gin.RouterGroup, h *handlers) {
	g.POST("/sessions", h.openSession)
	g.GET("/sessions/:sessionID", h.getSession)
	g.DELETE("/sessions/:sessionID", h.closeSession)
	g.POST("/sessions/:sessionID/items", h.addItem)
	g.PATCH("/sessions/:sessionID/items/:itemID", h.updateItemQuantity)
	g.DELETE("/sessions/:sessionID/items/:itemID", h.removeItem)
	g.POST("/sessions/:sessionID/clear", h.clearCart)
	g.POST("/sessions/:sessionID/customer", h.selectCustomer)
	g.POST("/sessions/:sessionID/payment-method", h.setPaymentMethod)
	g.POST("/sessions/:sessionID/discount", h.applyDiscount)
	g.POST("/sessions/:sessionID/tax-rate", h.setTaxRate)
	g.POST("/sessions/:sessionID/notes", h.setNotes)
	g.POST("/sessions/:sessionID/reset", h.resetSession)
	g.POST("/sessions/:sessionID/checkout", h.checkout)
}

type handlers struct {
	logger *log.Logger
	deps   Deps
}
