package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	"zeneva/internal/cache"
	"zeneva/internal/config"
	"zeneva/internal/db"
	"zeneva/internal/httpserver"
	"zeneva/internal/payments"
	"zeneva/internal/pos"
	customerrepo "zeneva/internal/repository/customer"
	expenserepo "zeneva/internal/repository/expense"
	productrepo "zeneva/internal/repository/product"
	receiptrepo "zeneva/internal/repository/receipt"
	staffrepo "zeneva/internal/repository/staff"
	tenantrepo "zeneva/internal/repository/tenant"
	tokenrepo "zeneva/internal/repository/token"
	catalogsvc "zeneva/internal/service/catalog"
	checkoutsvc "zeneva/internal/service/checkout"
	customersvc "zeneva/internal/service/customer"
	expensesvc "zeneva/internal/service/expense"
	insightssvc "zeneva/internal/service/insights"
	staffsvc "zeneva/internal/service/staff"
	tenantsvc "zeneva/internal/service/tenant"
	"zeneva/internal/uploads"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	var productCache cache.ProductCache
	if cfg.RedisAddr != "" {
		productCache = cache.NewRedisCache(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}))
		logger.Printf("product cache: redis at %s", cfg.RedisAddr)
	}

	tenantRepo := tenantrepo.NewPostgres(dbpool)
	productRepo := productrepo.NewPostgres(dbpool)
	customerRepo := customerrepo.NewPostgres(dbpool, logger)
	receiptRepo := receiptrepo.NewPostgres(dbpool)
	expenseRepo := expenserepo.NewPostgres(dbpool)
	staffRepo := staffrepo.NewPostgres(dbpool)
	tokenRepo := tokenrepo.NewPostgres(dbpool)

	paymentsClient := payments.NewClient(cfg.PaystackBaseURL, cfg.PaystackSecretKey)
	uploadsClient := uploads.NewClient(cfg.UploadBaseURL, cfg.UploadAPIKey)
	insightsClient := insightssvc.NewClient(cfg.InsightsBaseURL, cfg.InsightsAPIKey, cfg.InsightsModel)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		Tenants:   tenantsvc.New(tenantRepo),
		Staff:     staffsvc.New(staffRepo, tokenRepo),
		Catalog:   catalogsvc.New(productRepo, productCache, logger),
		Customers: customersvc.New(customerRepo),
		Checkout:  checkoutsvc.New(receiptRepo),
		Expenses:  expensesvc.New(expenseRepo, receiptRepo),
		Insights:  insightssvc.New(insightsClient, receiptRepo, expenseRepo),
		Payments:  paymentsClient,
		Uploads:   uploadsClient,
		POS:       pos.NewManager(cfg.DefaultTaxRatePct),
		Currency:  cfg.Currency,
	}, cfg.CORSOrigins)
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
