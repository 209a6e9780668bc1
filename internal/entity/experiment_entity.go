package entity

import (
	"time"

	"github.com/google/uuid"
)

// Experiment is an A/B test between two model versions. At most one
// experiment is active at a time; activating a new one pauses the rest.
type Experiment struct {
	Id                uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name              string    `gorm:"index"`
	Description       *string
	VariantAVersionId *uuid.UUID `gorm:"type:uuid"`
	VariantBVersionId *uuid.UUID `gorm:"type:uuid"`
	TrafficSplit      float64
	Status            string `gorm:"index"`
	StartDate         time.Time
	EndDate           *time.Time
	CreatedAt         time.Time
}
