package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfidenceFrom(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		want  float64
	}{
		{"strong match", 0.9, ConfidenceHigh},
		{"just above high cutoff", 0.71, ConfidenceHigh},
		{"exactly 0.7 is medium", 0.7, ConfidenceMedium},
		{"medium match", 0.6, ConfidenceMedium},
		{"exactly 0.5 is low", 0.5, ConfidenceLow},
		{"weak match", 0.35, ConfidenceLow},
		{"exactly 0.3 is none", 0.3, ConfidenceNone},
		{"no overlap", 0.1, ConfidenceNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ConfidenceFrom([]Match{{Score: tt.score}})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfidenceFromEmptyMatches(t *testing.T) {
	assert.Equal(t, ConfidenceNone, ConfidenceFrom(nil))
	assert.Equal(t, ConfidenceNone, ConfidenceFrom([]Match{}))
}

// Whatever the raw similarity, the banded confidence is always one of
// the four tiers.
func TestConfidenceIsAlwaysABand(t *testing.T) {
	bands := map[float64]bool{
		ConfidenceHigh:   true,
		ConfidenceMedium: true,
		ConfidenceLow:    true,
		ConfidenceNone:   true,
	}

	for score := -1.0; score <= 1.5; score += 0.01 {
		got := ConfidenceFrom([]Match{{Score: score}})
		assert.True(t, bands[got], "score %.2f produced non-band confidence %.2f", score, got)
	}
}
