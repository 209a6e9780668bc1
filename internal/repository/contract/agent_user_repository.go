package contract

import (
	"context"

	"ai-support-be/internal/entity"
	"ai-support-be/internal/repository/specification"
)

type AgentUserRepository interface {
	Create(ctx context.Context, agentUser *entity.AgentUser) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AgentUser, error)
}
