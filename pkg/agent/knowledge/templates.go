package knowledge

import "ai-support-be/pkg/agent/keyword"

// Canned replies used when the LLM backend is unavailable or the
// knowledge base has nothing relevant. First matching rule wins, so the
// more specific topics sit above the greeting catch-all.
var fallbackTemplates = map[string]string{
	"returns":  "Our return policy allows returns within 30 days of purchase. Would you like more details about the return process?",
	"shipping": "We offer standard (5-7 days) and express (2-3 days) shipping options. You can track your order using the tracking number sent to your email.",
	"account":  "For account-related issues, you can reset your password using the 'Forgot Password' link on the login page. If you need further assistance, I can help guide you through the process.",
	"product":  "I'd be happy to help with product information. Could you please specify which product you're interested in?",
	"order":    "I can help you with your order. Could you please provide your order number so I can look up the details?",
	"greeting": "Hello! I'm here to help you with any questions about our products, orders, shipping, returns, or account issues. What can I assist you with today?",
	"generic":  "Thank you for your question. I want to make sure I give you accurate information. Let me connect you with a team member who can help you with this specific inquiry.",
}

var templateRules = keyword.Table{
	{Label: "returns", Keywords: []string{"return", "refund", "exchange"}},
	{Label: "shipping", Keywords: []string{"shipping", "delivery", "tracking"}},
	{Label: "account", Keywords: []string{"account", "login", "password", "reset"}},
	{Label: "product", Keywords: []string{"product", "item", "specs", "details", "price"}},
	{Label: "order", Keywords: []string{"cancel", "order"}},
	{Label: "greeting", Keywords: []string{"hi", "hello", "hey"}},
}

func templateFor(message string) string {
	if label, ok := templateRules.FirstMatch(message); ok {
		return fallbackTemplates[label]
	}
	return fallbackTemplates["generic"]
}
