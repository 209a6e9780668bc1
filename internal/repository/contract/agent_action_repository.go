package contract

import (
	"context"

	"ai-support-be/internal/entity"
	"ai-support-be/internal/repository/specification"
)

type AgentActionRepository interface {
	Create(ctx context.Context, action *entity.AgentAction) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AgentAction, error)
}
