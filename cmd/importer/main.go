package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"zeneva/internal/config"
	"zeneva/internal/db"
	"zeneva/internal/importer"
	"zeneva/internal/repository/product"
	"zeneva/internal/repository/tenant"
)

func main() {
	var (
		filePath   string
		tenantSlug string
	)
	flag.StringVar(&filePath, "file", "", "Path to catalog CSV file")
	flag.StringVar(&tenantSlug, "tenant", "", "Tenant slug to import into")
	flag.Parse()

	if filePath == "" || tenantSlug == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.FromEnv()
	ctx := context.Background()

	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		log.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	t, err := tenant.NewPostgres(pool).GetBySlug(ctx, tenantSlug)
	if err != nil {
		log.Fatalf("lookup tenant %q: %v", tenantSlug, err)
	}

	f, err := os.Open(filePath)
	if err != nil {
		log.Fatalf("open file: %v", err)
	}
	defer f.Close()

	imp := importer.NewCSVImporter(f, product.NewPostgres(pool), t.ID, cfg.Currency)

	start := time.Now()
	count, err := imp.Run(ctx)
	if err != nil {
		log.Fatalf("import failed after %d products: %v", count, err)
	}

	fmt.Printf("Imported %d products into %s in %s\n", count, tenantSlug, time.Since(start).Truncate(time.Millisecond))
}
