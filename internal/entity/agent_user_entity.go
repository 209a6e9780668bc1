package entity

import (
	"time"

	"github.com/google/uuid"
)

// AgentUser is a human support agent with dashboard access.
type AgentUser struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"uniqueIndex"`
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}
