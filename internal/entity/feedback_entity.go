package entity

import (
	"time"

	"github.com/google/uuid"
)

// Feedback is an agent's rating of an AI draft, optionally with the
// reply the agent would have written instead.
type Feedback struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey"`
	ConversationId  uuid.UUID `gorm:"type:uuid;index"`
	MessageId       *uuid.UUID
	Rating          string `gorm:"index"`
	AgentCorrection *string
	Notes           *string
	CreatedAt       time.Time
}
