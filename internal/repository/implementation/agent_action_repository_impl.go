package implementation

import (
	"context"

	"ai-support-be/internal/entity"
	"ai-support-be/internal/mapper"
	"ai-support-be/internal/model"
	"ai-support-be/internal/repository/contract"
	"ai-support-be/internal/repository/specification"

	"gorm.io/gorm"
)

type AgentActionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AgentActionMapper
}

func NewAgentActionRepository(db *gorm.DB) contract.AgentActionRepository {
	return &AgentActionRepositoryImpl{
		db:     db,
		mapper: mapper.NewAgentActionMapper(),
	}
}

func (r *AgentActionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *AgentActionRepositoryImpl) Create(ctx context.Context, action *entity.AgentAction) error {
	m, err := r.mapper.ToModel(action)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *AgentActionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AgentAction, error) {
	var models []*model.AgentAction
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	actions := make([]*entity.AgentAction, len(models))
	for i, m := range models {
		actions[i] = r.mapper.ToEntity(m)
	}
	return actions, nil
}
