package service

import (
	"context"
	"fmt"
	"time"

	"ai-support-be/internal/constant"
	"ai-support-be/internal/dto"
	"ai-support-be/internal/entity"
	"ai-support-be/internal/repository/specification"
	"ai-support-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IExperimentService interface {
	CreateExperiment(ctx context.Context, req *dto.CreateExperimentRequest) (*dto.ExperimentResponse, error)
	ActivateExperiment(ctx context.Context, id uuid.UUID) (*dto.ExperimentResponse, error)
	CompleteExperiment(ctx context.Context, id uuid.UUID) (*dto.ExperimentResponse, error)
	ListExperiments(ctx context.Context) ([]dto.ExperimentResponse, error)
	CreateModelVersion(ctx context.Context, req *dto.CreateModelVersionRequest) (*dto.ModelVersionResponse, error)
	ListModelVersions(ctx context.Context) ([]dto.ModelVersionResponse, error)
}

type experimentService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewExperimentService(uowFactory unitofwork.RepositoryFactory) IExperimentService {
	return &experimentService{uowFactory: uowFactory}
}

// CreateExperiment registers a paused experiment; activation is a
// separate step so both variants can be reviewed first.
func (s *experimentService) CreateExperiment(ctx context.Context, req *dto.CreateExperimentRequest) (*dto.ExperimentResponse, error) {
	if req.TrafficSplit < 0 || req.TrafficSplit > 1 {
		return nil, fmt.Errorf("traffic split must be within [0, 1], got %.2f", req.TrafficSplit)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	exp := &entity.Experiment{
		Id:                uuid.New(),
		Name:              req.Name,
		Description:       req.Description,
		VariantAVersionId: req.VariantAVersionId,
		VariantBVersionId: req.VariantBVersionId,
		TrafficSplit:      req.TrafficSplit,
		Status:            constant.ExperimentStatusPaused,
		StartDate:         time.Now(),
		CreatedAt:         time.Now(),
	}
	if err := uow.ExperimentRepository().Create(ctx, exp); err != nil {
		return nil, fmt.Errorf("create experiment: %w", err)
	}
	return toExperimentResponse(exp), nil
}

// ActivateExperiment makes the experiment the single active one,
// pausing whatever was running. Pause-then-activate runs in one
// transaction so no window exists with two active experiments.
func (s *experimentService) ActivateExperiment(ctx context.Context, id uuid.UUID) (*dto.ExperimentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	exp, err := uow.ExperimentRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, fmt.Errorf("find experiment: %w", err)
	}
	if exp == nil {
		return nil, fmt.Errorf("experiment %s not found", id)
	}
	if exp.Status == constant.ExperimentStatusCompleted {
		return nil, fmt.Errorf("experiment %s is completed and cannot be reactivated", id)
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer uow.Rollback()

	if err := uow.ExperimentRepository().PauseActive(ctx); err != nil {
		return nil, fmt.Errorf("pause active experiments: %w", err)
	}

	exp.Status = constant.ExperimentStatusActive
	exp.StartDate = time.Now()
	if err := uow.ExperimentRepository().Update(ctx, exp); err != nil {
		return nil, fmt.Errorf("activate experiment: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}
	return toExperimentResponse(exp), nil
}

func (s *experimentService) CompleteExperiment(ctx context.Context, id uuid.UUID) (*dto.ExperimentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	exp, err := uow.ExperimentRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, fmt.Errorf("find experiment: %w", err)
	}
	if exp == nil {
		return nil, fmt.Errorf("experiment %s not found", id)
	}

	now := time.Now()
	exp.Status = constant.ExperimentStatusCompleted
	exp.EndDate = &now
	if err := uow.ExperimentRepository().Update(ctx, exp); err != nil {
		return nil, fmt.Errorf("complete experiment: %w", err)
	}
	return toExperimentResponse(exp), nil
}

func (s *experimentService) ListExperiments(ctx context.Context) ([]dto.ExperimentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	experiments, err := uow.ExperimentRepository().FindAll(ctx, specification.OrderBy{Field: "created_at", Desc: true})
	if err != nil {
		return nil, fmt.Errorf("find experiments: %w", err)
	}

	responses := make([]dto.ExperimentResponse, 0, len(experiments))
	for _, e := range experiments {
		responses = append(responses, *toExperimentResponse(e))
	}
	return responses, nil
}

func (s *experimentService) CreateModelVersion(ctx context.Context, req *dto.CreateModelVersionRequest) (*dto.ModelVersionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	version := &entity.ModelVersion{
		Id:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Config:      req.Config,
		CreatedAt:   time.Now(),
	}
	if err := uow.ModelVersionRepository().Create(ctx, version); err != nil {
		return nil, fmt.Errorf("create model version: %w", err)
	}
	return toModelVersionResponse(version), nil
}

func (s *experimentService) ListModelVersions(ctx context.Context) ([]dto.ModelVersionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	versions, err := uow.ModelVersionRepository().FindAll(ctx, specification.OrderBy{Field: "created_at", Desc: true})
	if err != nil {
		return nil, fmt.Errorf("find model versions: %w", err)
	}

	responses := make([]dto.ModelVersionResponse, 0, len(versions))
	for _, v := range versions {
		responses = append(responses, *toModelVersionResponse(v))
	}
	return responses, nil
}

func toExperimentResponse(e *entity.Experiment) *dto.ExperimentResponse {
	return &dto.ExperimentResponse{
		Id:                e.Id,
		Name:              e.Name,
		Description:       e.Description,
		VariantAVersionId: e.VariantAVersionId,
		VariantBVersionId: e.VariantBVersionId,
		TrafficSplit:      e.TrafficSplit,
		Status:            e.Status,
		StartDate:         e.StartDate,
		EndDate:           e.EndDate,
		CreatedAt:         e.CreatedAt,
	}
}

func toModelVersionResponse(v *entity.ModelVersion) *dto.ModelVersionResponse {
	return &dto.ModelVersionResponse{
		Id:          v.Id,
		Name:        v.Name,
		Description: v.Description,
		Config:      v.Config,
		IsActive:    v.IsActive,
		CreatedAt:   v.CreatedAt,
	}
}
