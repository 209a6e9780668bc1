package router

import (
	"testing"

	"ai-support-be/internal/constant"

	"github.com/stretchr/testify/assert"
)

func TestShouldEscalate(t *testing.T) {
	tests := []struct {
		name       string
		intent     string
		confidence float64
		message    string
		want       bool
	}{
		{"high confidence faq", constant.IntentFAQ, 0.9, "what is your return policy", false},
		{"complaint always escalates", constant.IntentComplaint, 0.95, "the product arrived damaged", true},
		{"low confidence escalates", constant.IntentGeneral, 0.3, "something vague", true},
		{"handoff phrase beats high confidence", constant.IntentFAQ, 0.9, "let me talk to a human", true},
		{"handoff phrase is case insensitive", constant.IntentFAQ, 0.9, "I want to SPEAK TO SOMEONE", true},
		{"agent substring", constant.IntentOrderInquiry, 0.8, "get me an agent", true},
		{"representative substring", constant.IntentOrderInquiry, 0.8, "connect me to a representative", true},
		{"escalate keyword", constant.IntentGeneral, 0.8, "please escalate this", true},
		{"boundary confidence does not escalate", constant.IntentFAQ, 0.4, "where is my package", false},
		{"order inquiry passes", constant.IntentOrderInquiry, 0.7, "where is order 12345", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldEscalate(tt.intent, tt.confidence, tt.message))
		})
	}
}

func TestEscalationReasonRuleOrder(t *testing.T) {
	// Phrase beats complaint beats low confidence.
	reason := EscalationReason(constant.IntentComplaint, 0.2, "give me a human now")
	assert.Equal(t, "Explicit request for human agent", reason)

	reason = EscalationReason(constant.IntentComplaint, 0.2, "this is unacceptable")
	assert.Equal(t, "Customer complaint requires human attention", reason)

	reason = EscalationReason(constant.IntentGeneral, 0.25, "hmm")
	assert.Equal(t, "Low confidence in intent classification (0.25)", reason)

	reason = EscalationReason(constant.IntentFAQ, 0.8, "what is your policy")
	assert.Equal(t, "Intent classification: faq (confidence: 0.80)", reason)
}
