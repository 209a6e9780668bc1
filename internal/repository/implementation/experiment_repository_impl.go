package implementation

import (
	"context"
	"errors"

	"ai-support-be/internal/constant"
	"ai-support-be/internal/entity"
	"ai-support-be/internal/repository/contract"
	"ai-support-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ExperimentRepositoryImpl struct {
	db *gorm.DB
}

func NewExperimentRepository(db *gorm.DB) contract.ExperimentRepository {
	return &ExperimentRepositoryImpl{db: db}
}

func (r *ExperimentRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ExperimentRepositoryImpl) Create(ctx context.Context, experiment *entity.Experiment) error {
	return r.db.WithContext(ctx).Create(experiment).Error
}

func (r *ExperimentRepositoryImpl) Update(ctx context.Context, experiment *entity.Experiment) error {
	return r.db.WithContext(ctx).Save(experiment).Error
}

func (r *ExperimentRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Experiment, error) {
	var experiment entity.Experiment
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&experiment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &experiment, nil
}

func (r *ExperimentRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Experiment, error) {
	var experiments []*entity.Experiment
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&experiments).Error; err != nil {
		return nil, err
	}
	return experiments, nil
}

func (r *ExperimentRepositoryImpl) PauseActive(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Model(&entity.Experiment{}).
		Where("status = ?", constant.ExperimentStatusActive).
		Update("status", constant.ExperimentStatusPaused).Error
}
