package contract

import (
	"context"

	"ai-support-be/internal/entity"
	"ai-support-be/internal/repository/specification"
)

type ExperimentRepository interface {
	Create(ctx context.Context, experiment *entity.Experiment) error
	Update(ctx context.Context, experiment *entity.Experiment) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Experiment, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Experiment, error)
	// PauseActive moves every active experiment to paused. Called before
	// activating a new experiment so only one is ever active.
	PauseActive(ctx context.Context) error
}
