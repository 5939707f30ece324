package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// Classification statuses. A persisted status is always one of these four
// values, never raw model text.
const (
	StatusSafe    = "safe"
	StatusUnsafe  = "unsafe"
	StatusCaution = "caution"
	StatusUnknown = "unknown"
)

// Fixed reasons used when no real classification happened.
const (
	ReasonNoAPIKey      = "Gemini API key not configured. Please consult a vet."
	ReasonAIUnavailable = "Unable to get AI response. Please consult a vet."
)

// Classifier answers whether a food is safe for a pet by asking Gemini and
// parsing the free-text reply. Every failure mode is absorbed into an
// "unknown" result, so a well-formed query never errors at this layer.
type Classifier struct {
	gen Generator
}

// NewClassifier builds a Classifier. gen may be nil when no API key is
// configured; Classify then short-circuits to the local fallback without
// any network call.
func NewClassifier(gen Generator) *Classifier {
	return &Classifier{gen: gen}
}

// Classify returns the status and the reason to persist. pet and food are
// embedded in the prompt verbatim; the caller owns key normalization.
func (c *Classifier) Classify(ctx context.Context, pet, food string) (status, reason string) {
	if c.gen == nil {
		return StatusUnknown, ReasonNoAPIKey
	}

	text, err := c.gen.Generate(ctx, buildPrompt(pet, food))
	if err != nil {
		slog.Error("gemini call failed", "pet", pet, "food", food, "error", err)
		return StatusUnknown, ReasonAIUnavailable
	}

	return ParseStatus(text), text
}

func buildPrompt(pet, food string) string {
	return fmt.Sprintf(`Is it safe for a %s to eat %s? Respond with just "safe", "unsafe", or "caution" followed by a brief reason in one sentence.`, pet, food)
}

// ParseStatus maps raw model text to a status by ordered substring matching.
// "unsafe" is checked before "safe" so an unsafe answer containing the
// substring "safe" is never misread as safe. Tie-break order is fixed:
// unsafe > safe > caution > unknown.
func ParseStatus(text string) string {
	t := strings.ToLower(text)
	switch {
	case strings.Contains(t, "unsafe"):
		return StatusUnsafe
	case strings.Contains(t, "safe"):
		return StatusSafe
	case strings.Contains(t, "caution"):
		return StatusCaution
	default:
		return StatusUnknown
	}
}
