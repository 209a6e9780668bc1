package router

import (
	"fmt"
	"strings"

	"ai-support-be/internal/constant"
)

// LowConfidenceThreshold is the classifier confidence below which the
// conversation is handed to a human regardless of intent.
const LowConfidenceThreshold = 0.4

// EscalationPhrases are explicit human-handoff requests, matched as
// case-insensitive substrings.
var EscalationPhrases = []string{
	"human",
	"agent",
	"representative",
	"speak to someone",
	"escalate",
}

// ShouldEscalate decides whether a message goes to a human agent. It is
// a pure function: the escalation verdict is the OR of the handoff
// phrase rule, the complaint rule, and the low-confidence rule.
func ShouldEscalate(intent string, confidence float64, message string) bool {
	if containsEscalationPhrase(message) {
		return true
	}
	if intent == constant.IntentComplaint {
		return true
	}
	if confidence < LowConfidenceThreshold {
		return true
	}
	return false
}

// EscalationReason explains the decision for audit logging. Rules are
// checked in the same order as ShouldEscalate so the reason names the
// first rule that fired.
func EscalationReason(intent string, confidence float64, message string) string {
	if containsEscalationPhrase(message) {
		return "Explicit request for human agent"
	}
	if intent == constant.IntentComplaint {
		return "Customer complaint requires human attention"
	}
	if confidence < LowConfidenceThreshold {
		return fmt.Sprintf("Low confidence in intent classification (%.2f)", confidence)
	}
	return fmt.Sprintf("Intent classification: %s (confidence: %.2f)", intent, confidence)
}

func containsEscalationPhrase(message string) bool {
	lower := strings.ToLower(message)
	for _, phrase := range EscalationPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}
