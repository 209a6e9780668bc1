package keyword

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testTable = Table{
	{Label: "shipping", Keywords: []string{"shipping", "delivery", "tracking"}},
	{Label: "returns", Keywords: []string{"return", "refund"}},
	{Label: "greeting", Keywords: []string{"hi", "hello"}},
}

func TestScores(t *testing.T) {
	scores := testTable.Scores("Where is my delivery? I have no tracking number")

	assert.InDelta(t, 2.0/3.0, scores["shipping"], 0.001)
	assert.Equal(t, 0.0, scores["returns"])
	assert.Equal(t, 0.0, scores["greeting"])
}

func TestScoresCaseInsensitive(t *testing.T) {
	scores := testTable.Scores("REFUND my RETURN")
	assert.Equal(t, 1.0, scores["returns"])
}

func TestBest(t *testing.T) {
	label, score, ok := testTable.Best("I need a refund for my return")

	assert.True(t, ok)
	assert.Equal(t, "returns", label)
	assert.Equal(t, 1.0, score)
}

func TestBestAllZero(t *testing.T) {
	_, _, ok := testTable.Best("completely unrelated text")
	assert.False(t, ok)
}

func TestBestTie(t *testing.T) {
	// One keyword from shipping (1/3) vs... craft an exact tie:
	// greeting "hi" (1/2) and returns "refund" (1/2).
	_, _, ok := testTable.Best("hi, refund please")
	assert.False(t, ok)
}

func TestFirstMatchHonorsOrder(t *testing.T) {
	// Both shipping and returns have hits; the earlier rule wins.
	label, ok := testTable.FirstMatch("refund my delivery")

	assert.True(t, ok)
	assert.Equal(t, "shipping", label)
}

func TestFirstMatchNoHit(t *testing.T) {
	_, ok := testTable.FirstMatch("qwerty asdf zxcv")
	assert.False(t, ok)
}

// Matching is substring-based, not word-boundary: "hi" hits inside
// "nothing". Keep in mind when choosing keywords.
func TestFirstMatchIsSubstringMatch(t *testing.T) {
	label, ok := testTable.FirstMatch("nothing relevant here")

	assert.True(t, ok)
	assert.Equal(t, "greeting", label)
}
