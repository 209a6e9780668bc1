package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateExperimentRequest struct {
	Name              string     `json:"name" validate:"required"`
	Description       *string    `json:"description"`
	VariantAVersionId *uuid.UUID `json:"variant_a_version_id"`
	VariantBVersionId *uuid.UUID `json:"variant_b_version_id"`
	TrafficSplit      float64    `json:"traffic_split" validate:"gte=0,lte=1"`
}

type ExperimentResponse struct {
	Id                uuid.UUID  `json:"id"`
	Name              string     `json:"name"`
	Description       *string    `json:"description,omitempty"`
	VariantAVersionId *uuid.UUID `json:"variant_a_version_id,omitempty"`
	VariantBVersionId *uuid.UUID `json:"variant_b_version_id,omitempty"`
	TrafficSplit      float64    `json:"traffic_split"`
	Status            string     `json:"status"`
	StartDate         time.Time  `json:"start_date"`
	EndDate           *time.Time `json:"end_date,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

type CreateModelVersionRequest struct {
	Name        string                 `json:"name" validate:"required"`
	Description *string                `json:"description"`
	Config      map[string]interface{} `json:"config"`
}

type ModelVersionResponse struct {
	Id          uuid.UUID              `json:"id"`
	Name        string                 `json:"name"`
	Description *string                `json:"description,omitempty"`
	Config      map[string]interface{} `json:"config"`
	IsActive    bool                   `json:"is_active"`
	CreatedAt   time.Time              `json:"created_at"`
}
