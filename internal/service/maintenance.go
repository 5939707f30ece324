package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/petpal/foodcheck/internal/db"
)

// SeedSource marks records written by the bulk seeder, as opposed to
// records derived at runtime.
const SeedSource = "initial_seed"

// FailedLookupMarker identifies records persisted when the AI call failed.
// The cleanup pass deletes unknown-status records carrying it.
const FailedLookupMarker = "Unable to get AI response"

// SeedEntry is one row of the bulk seed file.
type SeedEntry struct {
	Pet    string `json:"pet"`
	Food   string `json:"food"`
	Status string `json:"status"`
	Reason string `json:"reason"`
}

// MaintenanceService backs the seed and cleanup tooling. It never runs on
// the request path.
type MaintenanceService struct {
	q db.Querier
}

func NewMaintenanceService(q db.Querier) *MaintenanceService {
	return &MaintenanceService{q: q}
}

// Seed appends every entry with source=initial_seed and returns how many
// were inserted. Keys are lowercased the same way the request path does it.
func (s *MaintenanceService) Seed(ctx context.Context, entries []SeedEntry) (int, error) {
	inserted := 0
	for _, e := range entries {
		if _, err := s.q.CreateFoodEntry(ctx, db.CreateFoodEntryParams{
			Pet:    strings.ToLower(e.Pet),
			Food:   strings.ToLower(e.Food),
			Status: e.Status,
			Reason: e.Reason,
			Source: sql.NullString{String: SeedSource, Valid: true},
		}); err != nil {
			return inserted, fmt.Errorf("seed %s/%s: %w", e.Pet, e.Food, err)
		}
		inserted++
	}
	return inserted, nil
}

// CleanupFailedLookups scans unknown-status records and deletes the subset
// left behind by AI outages. Returns the number of deleted records.
func (s *MaintenanceService) CleanupFailedLookups(ctx context.Context) (int, error) {
	entries, err := s.q.ListFoodEntriesByStatus(ctx, StatusUnknown)
	if err != nil {
		return 0, fmt.Errorf("list unknown entries: %w", err)
	}

	deleted := 0
	for _, e := range entries {
		if !strings.Contains(e.Reason, FailedLookupMarker) {
			continue
		}
		if err := s.q.DeleteFoodEntry(ctx, e.ID); err != nil {
			return deleted, fmt.Errorf("delete entry %s: %w", e.ID, err)
		}
		slog.Info("deleted failed lookup", "pet", e.Pet, "food", e.Food)
		deleted++
	}
	return deleted, nil
}

// ListAll returns every stored record, oldest first.
func (s *MaintenanceService) ListAll(ctx context.Context) ([]db.FoodEntry, error) {
	entries, err := s.q.ListFoodEntries(ctx)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		return []db.FoodEntry{}, nil
	}
	return entries, nil
}
