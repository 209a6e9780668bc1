package mapper

import (
	"encoding/json"

	"ai-support-be/internal/entity"
	"ai-support-be/internal/model"
)

type ModelVersionMapper struct{}

func NewModelVersionMapper() *ModelVersionMapper {
	return &ModelVersionMapper{}
}

func (m *ModelVersionMapper) ToEntity(v *model.ModelVersion) *entity.ModelVersion {
	if v == nil {
		return nil
	}

	var config map[string]interface{}
	if len(v.Config) > 0 {
		// Malformed stored config is surfaced as nil rather than an error;
		// callers treat missing config as defaults.
		_ = json.Unmarshal(v.Config, &config)
	}

	return &entity.ModelVersion{
		Id:          v.Id,
		Name:        v.Name,
		Description: v.Description,
		Config:      config,
		IsActive:    v.IsActive,
		CreatedAt:   v.CreatedAt,
	}
}

func (m *ModelVersionMapper) ToModel(v *entity.ModelVersion) (*model.ModelVersion, error) {
	if v == nil {
		return nil, nil
	}

	var config []byte
	if v.Config != nil {
		raw, err := json.Marshal(v.Config)
		if err != nil {
			return nil, err
		}
		config = raw
	}

	return &model.ModelVersion{
		Id:          v.Id,
		Name:        v.Name,
		Description: v.Description,
		Config:      config,
		IsActive:    v.IsActive,
		CreatedAt:   v.CreatedAt,
	}, nil
}

func (m *ModelVersionMapper) ToEntities(versions []*model.ModelVersion) []*entity.ModelVersion {
	entities := make([]*entity.ModelVersion, len(versions))
	for i, v := range versions {
		entities[i] = m.ToEntity(v)
	}
	return entities
}
