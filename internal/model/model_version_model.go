package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ModelVersion struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"index"`
	Description *string
	Config      datatypes.JSON
	IsActive    bool      `gorm:"index"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (ModelVersion) TableName() string {
	return "model_versions"
}
