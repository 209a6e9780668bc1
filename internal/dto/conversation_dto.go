package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateConversationRequest struct {
	CustomerId string `json:"customer_id" validate:"required"`
}

type ConversationResponse struct {
	Id           uuid.UUID  `json:"id"`
	CustomerId   string     `json:"customer_id"`
	Status       string     `json:"status"`
	CsatScore    *int       `json:"csat_score,omitempty"`
	ExperimentId *uuid.UUID `json:"experiment_id,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
	ResolvedAt   *time.Time `json:"resolved_at,omitempty"`
}

type MessageResponse struct {
	Id                uuid.UUID `json:"id"`
	ConversationId    uuid.UUID `json:"conversation_id"`
	Content           string    `json:"content"`
	MessageType       string    `json:"message_type"`
	ConfidenceScore   *float64  `json:"confidence_score,omitempty"`
	Intent            *string   `json:"intent,omitempty"`
	AgentType         *string   `json:"agent_type,omitempty"`
	OriginalAiContent *string   `json:"original_ai_content,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// ReviewDraftRequest is a human agent's decision on an ai_draft
// message: approve as-is, or send an edited version.
type ReviewDraftRequest struct {
	Content *string `json:"content"` // nil approves the draft unchanged
}

type ResolveConversationRequest struct {
	CsatScore *int `json:"csat_score" validate:"omitempty,min=1,max=5"`
}
