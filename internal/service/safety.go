package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/petpal/foodcheck/internal/db"
)

// Verdict sources: a prior answer found in the store, or a fresh AI
// classification.
const (
	SourceStore = "store"
	SourceAI    = "ai"
)

// Verdict is the answer to "is this food safe for this pet".
type Verdict struct {
	Source string
	Record db.FoodEntry
}

// SafetyService runs the lookup-fallback pipeline: check the store for a
// prior answer, otherwise classify via Gemini and persist the result.
type SafetyService struct {
	q          db.Querier
	classifier *Classifier
	events     ClassificationPublisher
}

// NewSafetyService wires the pipeline. events may be nil when no broker is
// configured.
func NewSafetyService(q db.Querier, classifier *Classifier, events ClassificationPublisher) *SafetyService {
	return &SafetyService{q: q, classifier: classifier, events: events}
}

// Check resolves a (pet, food) pair. Lookup keys are lowercased before
// matching; the caller's casing is kept for the prompt. There is no
// single-flight guard: concurrent misses for the same pair may each call
// Gemini and each persist a row. Reads return the first row by insertion
// order, so the extra rows are harmless.
func (s *SafetyService) Check(ctx context.Context, pet, food string) (Verdict, error) {
	petKey := strings.ToLower(pet)
	foodKey := strings.ToLower(food)

	entry, err := s.q.GetFoodEntry(ctx, db.GetFoodEntryParams{Pet: petKey, Food: foodKey})
	if err == nil {
		return Verdict{Source: SourceStore, Record: entry}, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return Verdict{}, fmt.Errorf("query food entry: %w", err)
	}

	status, reason := s.classifier.Classify(ctx, pet, food)

	entry, err = s.q.CreateFoodEntry(ctx, db.CreateFoodEntryParams{
		Pet:    petKey,
		Food:   foodKey,
		Status: status,
		Reason: reason,
	})
	if err != nil {
		return Verdict{}, fmt.Errorf("persist food entry: %w", err)
	}

	if s.events != nil {
		if err := s.events.PublishFoodClassified(ctx, petKey, foodKey, status); err != nil {
			slog.Warn("publish food.classified failed", "pet", petKey, "food", foodKey, "error", err)
		}
	}

	return Verdict{Source: SourceAI, Record: entry}, nil
}
