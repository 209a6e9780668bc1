package contract

import (
	"context"

	"ai-support-be/internal/entity"
	"ai-support-be/internal/repository/specification"
)

type ModelVersionRepository interface {
	Create(ctx context.Context, version *entity.ModelVersion) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ModelVersion, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ModelVersion, error)
}
