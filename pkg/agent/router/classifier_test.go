package router

import (
	"log"
	"testing"

	"ai-support-be/internal/constant"
	"ai-support-be/pkg/embedding"

	"github.com/stretchr/testify/assert"
)

// A classifier with no embedding provider exercises the keyword path.
func newKeywordOnlyClassifier() *Classifier {
	return NewClassifier(embedding.NewService(nil, log.Default()), log.Default())
}

func TestClassifyKeywordOrderInquiry(t *testing.T) {
	c := newKeywordOnlyClassifier()

	result := c.Classify("where is my order, I need tracking")

	assert.Equal(t, constant.IntentOrderInquiry, result.Intent)
	assert.InDelta(t, 0.4, result.Confidence, 0.001)
	assert.NotEmpty(t, result.Scores)
}

func TestClassifyKeywordComplaint(t *testing.T) {
	c := newKeywordOnlyClassifier()

	result := c.Classify("I want to file a complaint, this is terrible")

	assert.Equal(t, constant.IntentComplaint, result.Intent)
	assert.Greater(t, result.Confidence, 0.0)
}

func TestClassifyNoKeywordHitsResolvesToGeneral(t *testing.T) {
	c := newKeywordOnlyClassifier()

	result := c.Classify("xyzzy plugh")

	assert.Equal(t, constant.IntentGeneral, result.Intent)
	assert.Equal(t, 0.5, result.Confidence)
}

func TestClassifyTieResolvesToGeneral(t *testing.T) {
	c := newKeywordOnlyClassifier()

	// "bug" and "damaged" score 1/6 for technical_support and
	// complaint respectively; the tie resolves to general.
	result := c.Classify("bug damaged")

	assert.Equal(t, constant.IntentGeneral, result.Intent)
	assert.Equal(t, 0.5, result.Confidence)
}
