package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"
	"github.com/petpal/foodcheck/internal/api"
	"github.com/petpal/foodcheck/internal/clients"
	"github.com/petpal/foodcheck/internal/db"
	"github.com/petpal/foodcheck/internal/events"
	"github.com/petpal/foodcheck/internal/service"
)

func main() {
	port := envOrDefault("PORT", "8080")

	dbURL := os.Getenv("DB_URL")
	if dbURL == "" {
		log.Fatal("DB_URL is required")
	}

	geminiKey := os.Getenv("GEMINI_API_KEY")
	geminiModel := envOrDefault("GEMINI_MODEL", "gemini-1.5-flash")

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

	var gen service.Generator
	if geminiKey != "" {
		// 10s bound so a stuck Gemini call degrades into the unknown
		// fallback instead of holding the request open.
		httpClient := &http.Client{Timeout: 10 * time.Second}
		gen = clients.NewGeminiClient("", geminiKey, geminiModel, httpClient)
	} else {
		log.Print("GEMINI_API_KEY not set, store misses will resolve to unknown")
	}

	var publisher service.ClassificationPublisher
	if rabbitURL := os.Getenv("RABBITMQ_URL"); rabbitURL != "" {
		p, err := events.NewFoodClassifiedPublisher(rabbitURL)
		if err != nil {
			log.Fatalf("rabbitmq: %v", err)
		}
		defer p.Close()
		publisher = p
	}

	safety := service.NewSafetyService(queries, service.NewClassifier(gen), publisher)
	handler := api.NewRouter(safety)

	addr := fmt.Sprintf(":%s", port)
	log.Printf("petpal service listening on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("server: %v", err)
	}
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

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
