// Command seedfoods bulk-loads a JSON food list into the store, marking
// every record with source=initial_seed.
package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"
	"github.com/petpal/foodcheck/internal/db"
	"github.com/petpal/foodcheck/internal/service"
)

func main() {
	dataPath := flag.String("data", "data/foods.json", "path to the seed JSON file")
	flag.Parse()

	dbURL := os.Getenv("DB_URL")
	if dbURL == "" {
		log.Fatal("DB_URL is required")
	}

	raw, err := os.ReadFile(*dataPath)
	if err != nil {
		log.Fatalf("read seed file: %v", err)
	}

	var entries []service.SeedEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		log.Fatalf("parse seed file: %v", err)
	}

	sqlDB, err := sql.Open("postgres", dbURL)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Fatalf("connect to database: %v", err)
	}

	if err := runMigrations(sqlDB); err != nil {
		log.Fatalf("migrations: %v", err)
	}

	queries := db.New(sqlDB)
	maintenance := service.NewMaintenanceService(queries)

	ctx := context.Background()
	inserted, err := maintenance.Seed(ctx, entries)
	if err != nil {
		log.Fatalf("seed after %d entries: %v", inserted, err)
	}
	log.Printf("seeded %d entries", inserted)

	total, err := queries.CountFoodEntries(ctx)
	if err != nil {
		log.Fatalf("count entries: %v", err)
	}
	log.Printf("store now holds %d entries", total)
}

func runMigrations(sqlDB *sql.DB) error {
	srcDriver, err := iofs.New(db.MigrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("create migration source: %w", err)
	}
	dbDriver, err := postgres.WithInstance(sqlDB, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("create migration driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", srcDriver, "postgres", dbDriver)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}
