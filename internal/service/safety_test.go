package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/petpal/foodcheck/internal/db"
	"github.com/petpal/foodcheck/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCheck_StoreHit_SkipsClassifier(t *testing.T) {
	t.Parallel()

	mockQ := mocks.NewMockQuerier(t)
	// No expectations on the generator: any call would fail the test.
	mockGen := NewMockGenerator(t)
	svc := NewSafetyService(mockQ, NewClassifier(mockGen), nil)

	stored := db.FoodEntry{
		ID:        uuid.New(),
		Pet:       "dog",
		Food:      "chocolate",
		Status:    StatusUnsafe,
		Reason:    "Chocolate contains theobromine, which is toxic to dogs.",
		CreatedAt: time.Now(),
	}
	mockQ.EXPECT().GetFoodEntry(mock.Anything, db.GetFoodEntryParams{Pet: "dog", Food: "chocolate"}).
		Return(stored, nil)

	verdict, err := svc.Check(context.Background(), "Dog", "CHOCOLATE")

	require.NoError(t, err)
	assert.Equal(t, SourceStore, verdict.Source)
	assert.Equal(t, stored, verdict.Record)
}

func TestCheck_StoreMiss_ClassifiesAndPersists(t *testing.T) {
	t.Parallel()

	mockQ := mocks.NewMockQuerier(t)
	mockGen := NewMockGenerator(t)
	mockPub := NewMockClassificationPublisher(t)
	svc := NewSafetyService(mockQ, NewClassifier(mockGen), mockPub)

	aiText := "Unsafe - chocolate contains theobromine toxic to dogs."

	mockQ.EXPECT().GetFoodEntry(mock.Anything, db.GetFoodEntryParams{Pet: "dog", Food: "chocolate"}).
		Return(db.FoodEntry{}, sql.ErrNoRows)
	mockGen.EXPECT().Generate(mock.Anything, mock.Anything).Return(aiText, nil)

	created := db.FoodEntry{
		ID:        uuid.New(),
		Pet:       "dog",
		Food:      "chocolate",
		Status:    StatusUnsafe,
		Reason:    aiText,
		CreatedAt: time.Now(),
	}
	mockQ.EXPECT().CreateFoodEntry(mock.Anything, db.CreateFoodEntryParams{
		Pet:    "dog",
		Food:   "chocolate",
		Status: StatusUnsafe,
		Reason: aiText,
	}).Return(created, nil)
	mockPub.EXPECT().PublishFoodClassified(mock.Anything, "dog", "chocolate", StatusUnsafe).
		Return(nil)

	verdict, err := svc.Check(context.Background(), "dog", "chocolate")

	require.NoError(t, err)
	assert.Equal(t, SourceAI, verdict.Source)
	assert.Equal(t, created, verdict.Record)
}

func TestCheck_MissingAPIKey_PersistsUnknown(t *testing.T) {
	t.Parallel()

	mockQ := mocks.NewMockQuerier(t)
	svc := NewSafetyService(mockQ, NewClassifier(nil), nil)

	mockQ.EXPECT().GetFoodEntry(mock.Anything, db.GetFoodEntryParams{Pet: "ferret", Food: "cheese"}).
		Return(db.FoodEntry{}, sql.ErrNoRows)

	created := db.FoodEntry{
		ID:     uuid.New(),
		Pet:    "ferret",
		Food:   "cheese",
		Status: StatusUnknown,
		Reason: ReasonNoAPIKey,
	}
	mockQ.EXPECT().CreateFoodEntry(mock.Anything, db.CreateFoodEntryParams{
		Pet:    "ferret",
		Food:   "cheese",
		Status: StatusUnknown,
		Reason: ReasonNoAPIKey,
	}).Return(created, nil)

	verdict, err := svc.Check(context.Background(), "ferret", "cheese")

	require.NoError(t, err)
	assert.Equal(t, SourceAI, verdict.Source)
	assert.Equal(t, StatusUnknown, verdict.Record.Status)
	assert.Equal(t, ReasonNoAPIKey, verdict.Record.Reason)
}

func TestCheck_StoreReadError_Propagates(t *testing.T) {
	t.Parallel()

	mockQ := mocks.NewMockQuerier(t)
	mockGen := NewMockGenerator(t)
	svc := NewSafetyService(mockQ, NewClassifier(mockGen), nil)

	mockQ.EXPECT().GetFoodEntry(mock.Anything, mock.Anything).
		Return(db.FoodEntry{}, errors.New("connection refused"))

	_, err := svc.Check(context.Background(), "dog", "grapes")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "query food entry")
}

func TestCheck_StoreWriteError_Propagates(t *testing.T) {
	t.Parallel()

	mockQ := mocks.NewMockQuerier(t)
	mockGen := NewMockGenerator(t)
	svc := NewSafetyService(mockQ, NewClassifier(mockGen), nil)

	mockQ.EXPECT().GetFoodEntry(mock.Anything, mock.Anything).
		Return(db.FoodEntry{}, sql.ErrNoRows)
	mockGen.EXPECT().Generate(mock.Anything, mock.Anything).
		Return("Safe. Carrots are fine for dogs.", nil)
	mockQ.EXPECT().CreateFoodEntry(mock.Anything, mock.Anything).
		Return(db.FoodEntry{}, errors.New("write rejected"))

	_, err := svc.Check(context.Background(), "dog", "carrots")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "persist food entry")
}

func TestCheck_PublishFailureDoesNotFailRequest(t *testing.T) {
	t.Parallel()

	mockQ := mocks.NewMockQuerier(t)
	mockGen := NewMockGenerator(t)
	mockPub := NewMockClassificationPublisher(t)
	svc := NewSafetyService(mockQ, NewClassifier(mockGen), mockPub)

	mockQ.EXPECT().GetFoodEntry(mock.Anything, mock.Anything).
		Return(db.FoodEntry{}, sql.ErrNoRows)
	mockGen.EXPECT().Generate(mock.Anything, mock.Anything).
		Return("Safe. Carrots are fine for dogs.", nil)
	mockQ.EXPECT().CreateFoodEntry(mock.Anything, mock.Anything).
		Return(db.FoodEntry{Status: StatusSafe}, nil)
	mockPub.EXPECT().PublishFoodClassified(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("broker unavailable"))

	verdict, err := svc.Check(context.Background(), "dog", "carrots")

	require.NoError(t, err)
	assert.Equal(t, SourceAI, verdict.Source)
}
