package knowledge

import (
	"context"
	"log"
	"strings"
	"testing"

	"ai-support-be/pkg/rag/search"

	"github.com/stretchr/testify/assert"
)

func newTemplateOnlyResponder() *Responder {
	return NewResponder(nil, nil, 0.65, log.Default())
}

func TestFallbackReplyQuotesStrongMatch(t *testing.T) {
	r := newTemplateOnlyResponder()
	matches := []search.Match{
		{Title: "Return & Refund Policy", Content: strings.Repeat("x", 500), Category: "Returns", Score: 0.8},
	}

	reply := r.fallbackReply("how do returns work", matches)

	assert.Contains(t, reply, "Based on our Returns policy:")
	assert.Contains(t, reply, strings.Repeat("x", 200))
	assert.NotContains(t, reply, strings.Repeat("x", 201))
	assert.Contains(t, reply, "Would you like more specific information about this?")
}

func TestFallbackReplyUsesTemplateOnWeakMatch(t *testing.T) {
	r := newTemplateOnlyResponder()
	matches := []search.Match{
		{Title: "Shipping", Content: "irrelevant", Category: "Shipping", Score: 0.2},
	}

	reply := r.fallbackReply("when does my delivery arrive", matches)
	assert.Equal(t, fallbackTemplates["shipping"], reply)
}

func TestFallbackReplyNoMatches(t *testing.T) {
	r := newTemplateOnlyResponder()

	reply := r.fallbackReply("qwerty asdf", nil)
	assert.Equal(t, fallbackTemplates["generic"], reply)
}

func TestGenerateWithoutProvider(t *testing.T) {
	r := newTemplateOnlyResponder()

	_, generated := r.generate(context.Background(), "hello", nil)
	assert.False(t, generated)
}

func TestBuildContextTruncatesToTopTwo(t *testing.T) {
	matches := []search.Match{
		{Title: "First", Content: strings.Repeat("a", 400), Score: 0.9},
		{Title: "Second", Content: "short", Score: 0.8},
		{Title: "Third", Content: "never included", Score: 0.7},
	}

	kbContext := buildContext(matches)

	assert.Contains(t, kbContext, "**First**")
	assert.Contains(t, kbContext, "**Second**")
	assert.NotContains(t, kbContext, "Third")
	// Long entries are clipped to the snippet budget.
	assert.NotContains(t, kbContext, strings.Repeat("a", 301))
}
