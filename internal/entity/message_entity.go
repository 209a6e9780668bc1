package entity

import (
	"time"

	"github.com/google/uuid"
)

// Message is one turn in a conversation. ConfidenceScore is set only on
// AI-originated content; an agent_only message carries the sentinel 1.0
// which denotes human authority, not a model estimate.
type Message struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey"`
	ConversationId  uuid.UUID `gorm:"type:uuid;index"`
	Content         string    `gorm:"type:text"`
	MessageType     string    `gorm:"index"`
	ConfidenceScore *float64
	Intent          *string `gorm:"index"`
	AgentType       *string `gorm:"index"`
	// Original AI draft kept when an agent edits before sending.
	OriginalAiContent *string `gorm:"type:text"`
	CreatedAt         time.Time
}
