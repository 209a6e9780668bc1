package entity

import (
	"time"

	"github.com/google/uuid"
)

// ModelVersion is a named pipeline configuration (prompts, thresholds,
// embedding model) referenced by experiment variants.
type ModelVersion struct {
	Id          uuid.UUID
	Name        string
	Description *string
	Config      map[string]interface{}
	IsActive    bool
	CreatedAt   time.Time
}
