package dto

import "github.com/google/uuid"

type ChatRequest struct {
	ConversationId *uuid.UUID `json:"conversation_id"`
	CustomerId     string     `json:"customer_id" validate:"required"`
	Message        string     `json:"message" validate:"required"`
}

// ChatResponse reports the pipeline outcome for one customer message.
// Response is the drafted (or auto-sent) reply; ShouldAutoSend tells
// the caller whether it was delivered or parked for agent review.
type ChatResponse struct {
	ConversationId     uuid.UUID                `json:"conversation_id"`
	MessageId          uuid.UUID                `json:"message_id"`
	Response           string                   `json:"response"`
	ConfidenceScore    float64                  `json:"confidence_score"`
	MatchedArticles    []KnowledgeMatchResponse `json:"matched_articles"`
	Reasoning          string                   `json:"reasoning"`
	ShouldAutoSend     bool                     `json:"should_auto_send"`
	MessageType        string                   `json:"message_type"`
	AgentType          string                   `json:"agent_type"`
	Intent             string                   `json:"intent"`
	IntentConfidence   float64                  `json:"intent_confidence"`
	ConversationStatus string                   `json:"conversation_status"`
	EscalationReason   *string                  `json:"escalation_reason,omitempty"`
	ExperimentVariant  *string                  `json:"experiment_variant,omitempty"`
}
