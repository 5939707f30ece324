// Command cleanupfoods deletes unknown-status records left behind by AI
// outages, then prints what remains. Manual data-quality remediation, not
// a retention policy.
package main

import (
	"context"
	"database/sql"
	"log"
	"os"

	_ "github.com/lib/pq"
	"github.com/petpal/foodcheck/internal/db"
	"github.com/petpal/foodcheck/internal/service"
)

func main() {
	dbURL := os.Getenv("DB_URL")
	if dbURL == "" {
		log.Fatal("DB_URL is required")
	}

	sqlDB, err := sql.Open("postgres", dbURL)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Fatalf("connect to database: %v", err)
	}

	maintenance := service.NewMaintenanceService(db.New(sqlDB))

	ctx := context.Background()
	deleted, err := maintenance.CleanupFailedLookups(ctx)
	if err != nil {
		log.Fatalf("cleanup after %d deletions: %v", deleted, err)
	}
	log.Printf("deleted %d failed lookups", deleted)

	remaining, err := maintenance.ListAll(ctx)
	if err != nil {
		log.Fatalf("list entries: %v", err)
	}
	log.Printf("%d entries remain", len(remaining))
	for _, e := range remaining {
		log.Printf("  %s + %s = %s", e.Pet, e.Food, e.Status)
	}
}
