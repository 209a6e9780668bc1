package implementation

import (
	"context"
	"errors"

	"ai-support-be/internal/entity"
	"ai-support-be/internal/repository/contract"
	"ai-support-be/internal/repository/specification"

	"gorm.io/gorm"
)

type AgentUserRepositoryImpl struct {
	db *gorm.DB
}

func NewAgentUserRepository(db *gorm.DB) contract.AgentUserRepository {
	return &AgentUserRepositoryImpl{db: db}
}

func (r *AgentUserRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *AgentUserRepositoryImpl) Create(ctx context.Context, agentUser *entity.AgentUser) error {
	return r.db.WithContext(ctx).Create(agentUser).Error
}

func (r *AgentUserRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AgentUser, error) {
	var agentUser entity.AgentUser
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&agentUser).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &agentUser, nil
}
