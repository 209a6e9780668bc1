package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateFeedbackRequest struct {
	ConversationId  uuid.UUID  `json:"conversation_id" validate:"required"`
	MessageId       *uuid.UUID `json:"message_id"`
	Rating          string     `json:"rating" validate:"required,oneof=helpful not_helpful needs_improvement"`
	AgentCorrection *string    `json:"agent_correction"`
	Notes           *string    `json:"notes"`
}

type FeedbackResponse struct {
	Id              uuid.UUID  `json:"id"`
	ConversationId  uuid.UUID  `json:"conversation_id"`
	MessageId       *uuid.UUID `json:"message_id,omitempty"`
	Rating          string     `json:"rating"`
	AgentCorrection *string    `json:"agent_correction,omitempty"`
	Notes           *string    `json:"notes,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}
