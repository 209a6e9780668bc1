package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AgentAction struct {
	Id             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ConversationId *uuid.UUID `gorm:"type:uuid;index"`
	MessageId      *uuid.UUID `gorm:"type:uuid;index"`
	ActionType     string     `gorm:"index"`
	ActionData     datatypes.JSON
	CreatedAt      time.Time `gorm:"autoCreateTime;index"`
}

func (AgentAction) TableName() string {
	return "agent_actions"
}
