package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestParseStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want string
	}{
		{"unsafe answer", "Unsafe. Chocolate contains theobromine toxic to dogs.", StatusUnsafe},
		{"unsafe wins over safe", "This is unsafe, definitely not safe for your pet.", StatusUnsafe},
		{"plain safe", "Safe. Carrots are a healthy treat for dogs.", StatusSafe},
		{"caution only", "Caution: small amounts are tolerated but avoid regular feeding.", StatusCaution},
		{"no keyword", "No information available", StatusUnknown},
		{"case folding", "UNSAFE! Never feed this.", StatusUnsafe},
		{"safe embedded in longer word order", "It is generally safe, use caution with large portions.", StatusSafe},
		{"empty text", "", StatusUnknown},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, ParseStatus(tc.text))
		})
	}
}

func TestClassify_NoAPIKey_LocalFallback(t *testing.T) {
	t.Parallel()

	c := NewClassifier(nil)

	status, reason := c.Classify(context.Background(), "dog", "chocolate")

	assert.Equal(t, StatusUnknown, status)
	assert.Equal(t, "Gemini API key not configured. Please consult a vet.", reason)
}

func TestClassify_PromptEmbedsInputsVerbatim(t *testing.T) {
	t.Parallel()

	mockGen := NewMockGenerator(t)
	c := NewClassifier(mockGen)

	wantPrompt := `Is it safe for a Dog to eat Dark Chocolate? Respond with just "safe", "unsafe", or "caution" followed by a brief reason in one sentence.`
	mockGen.EXPECT().Generate(mock.Anything, wantPrompt).
		Return("Unsafe. Theobromine is toxic to dogs.", nil)

	status, reason := c.Classify(context.Background(), "Dog", "Dark Chocolate")

	assert.Equal(t, StatusUnsafe, status)
	assert.Equal(t, "Unsafe. Theobromine is toxic to dogs.", reason)
}

func TestClassify_GeneratorFailure_Absorbed(t *testing.T) {
	t.Parallel()

	mockGen := NewMockGenerator(t)
	c := NewClassifier(mockGen)

	mockGen.EXPECT().Generate(mock.Anything, mock.Anything).
		Return("", errors.New("gemini status 503"))

	status, reason := c.Classify(context.Background(), "cat", "tuna")

	assert.Equal(t, StatusUnknown, status)
	assert.Equal(t, "Unable to get AI response. Please consult a vet.", reason)
}

func TestClassify_ReasonIsRawModelText(t *testing.T) {
	t.Parallel()

	mockGen := NewMockGenerator(t)
	c := NewClassifier(mockGen)

	mockGen.EXPECT().Generate(mock.Anything, mock.Anything).
		Return("Caution - tuna is fine occasionally but not as a staple.", nil)

	status, reason := c.Classify(context.Background(), "cat", "tuna")

	assert.Equal(t, StatusCaution, status)
	assert.Equal(t, "Caution - tuna is fine occasionally but not as a staple.", reason)
}

func TestClassify_NoKeywordInAnswer(t *testing.T) {
	t.Parallel()

	mockGen := NewMockGenerator(t)
	c := NewClassifier(mockGen)

	mockGen.EXPECT().Generate(mock.Anything, mock.Anything).
		Return("No information available", nil)

	status, reason := c.Classify(context.Background(), "iguana", "pizza")

	assert.Equal(t, StatusUnknown, status)
	assert.Equal(t, "No information available", reason)
}
