package implementation

import (
	"context"
	"errors"

	"ai-support-be/internal/entity"
	"ai-support-be/internal/mapper"
	"ai-support-be/internal/model"
	"ai-support-be/internal/repository/contract"
	"ai-support-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ModelVersionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ModelVersionMapper
}

func NewModelVersionRepository(db *gorm.DB) contract.ModelVersionRepository {
	return &ModelVersionRepositoryImpl{
		db:     db,
		mapper: mapper.NewModelVersionMapper(),
	}
}

func (r *ModelVersionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ModelVersionRepositoryImpl) Create(ctx context.Context, version *entity.ModelVersion) error {
	m, err := r.mapper.ToModel(version)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*version = *r.mapper.ToEntity(m)
	return nil
}

func (r *ModelVersionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ModelVersion, error) {
	var m model.ModelVersion
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ModelVersionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ModelVersion, error) {
	var models []*model.ModelVersion
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
