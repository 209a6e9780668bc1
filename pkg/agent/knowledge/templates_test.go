package knowledge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemplateSelection(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"return question", "how do I return this item", "returns"},
		{"refund question", "can I get a refund", "returns"},
		{"shipping question", "when does delivery arrive", "shipping"},
		{"account question", "I forgot my password", "account"},
		{"product question", "what is the price of this", "product"},
		{"order cancellation", "please cancel this for me", "order"},
		{"greeting", "hello there", "greeting"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, fallbackTemplates[tt.want], templateFor(tt.message))
		})
	}
}

func TestTemplateFallsBackToGeneric(t *testing.T) {
	assert.Equal(t, fallbackTemplates["generic"], templateFor("completely unrelated message"))
}

// Rule order matters: "return my order" mentions both returns and order
// topics, and the earlier returns rule wins.
func TestTemplateRuleOrder(t *testing.T) {
	assert.Equal(t, fallbackTemplates["returns"], templateFor("I want to return my order"))
}

func TestEveryRuleHasATemplate(t *testing.T) {
	for _, rule := range templateRules {
		_, ok := fallbackTemplates[rule.Label]
		assert.True(t, ok, "rule %q has no template", rule.Label)
	}
}
