package entity

import (
	"time"

	"github.com/google/uuid"
)

type Conversation struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerId   string    `gorm:"index"`
	Status       string    `gorm:"index"`
	CsatScore    *int
	ExperimentId *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt    time.Time
	UpdatedAt    *time.Time
	ResolvedAt   *time.Time
}
