package router

import (
	"ai-support-be/internal/constant"
	"ai-support-be/pkg/agent/keyword"
)

// IntentOrder fixes the evaluation order so argmax ties resolve the
// same way on every run.
var IntentOrder = []string{
	constant.IntentFAQ,
	constant.IntentOrderInquiry,
	constant.IntentTechnicalSupport,
	constant.IntentComplaint,
	constant.IntentGeneral,
}

// IntentExamples holds the canonical utterances used for few-shot
// similarity classification. Append-only configuration.
var IntentExamples = map[string][]string{
	constant.IntentFAQ: {
		"What is your return policy?",
		"How do I track my order?",
		"What are your shipping options?",
		"How do I reset my password?",
		"What is your refund policy?",
	},
	constant.IntentOrderInquiry: {
		"Where is my order?",
		"When will my order arrive?",
		"I need to cancel my order",
		"Can I modify my order?",
		"What's the status of order #12345?",
	},
	constant.IntentTechnicalSupport: {
		"The website is not working",
		"I can't log into my account",
		"The app keeps crashing",
		"I'm having trouble with checkout",
		"The payment failed",
	},
	constant.IntentComplaint: {
		"I'm not happy with my purchase",
		"The product arrived damaged",
		"The service was terrible",
		"I want to file a complaint",
		"This is unacceptable",
	},
	constant.IntentGeneral: {
		"Hello",
		"Hi there",
		"Help me",
		"I need assistance",
		"What can you do?",
	},
}

// IntentKeywords is the keyword fallback rule table used when the
// embedding backend is degraded. The same keyword.Table mechanism backs
// the knowledge agent's template selector.
var IntentKeywords = keyword.Table{
	{Label: constant.IntentOrderInquiry, Keywords: []string{"order", "track", "shipment", "delivery", "cancel order"}},
	{Label: constant.IntentTechnicalSupport, Keywords: []string{"not working", "error", "bug", "crash", "login", "password"}},
	{Label: constant.IntentComplaint, Keywords: []string{"complaint", "unhappy", "terrible", "bad", "damaged", "wrong"}},
	{Label: constant.IntentFAQ, Keywords: []string{"policy", "return", "refund", "shipping", "how", "what", "when"}},
}
