package service

import (
	"context"
	"fmt"
	"time"

	"ai-support-be/internal/dto"
	"ai-support-be/internal/entity"
	"ai-support-be/internal/repository/specification"
	"ai-support-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IFeedbackService interface {
	Create(ctx context.Context, req *dto.CreateFeedbackRequest) (*dto.FeedbackResponse, error)
	ListByConversation(ctx context.Context, conversationId uuid.UUID) ([]dto.FeedbackResponse, error)
}

type feedbackService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewFeedbackService(uowFactory unitofwork.RepositoryFactory) IFeedbackService {
	return &feedbackService{uowFactory: uowFactory}
}

func (s *feedbackService) Create(ctx context.Context, req *dto.CreateFeedbackRequest) (*dto.FeedbackResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	conversation, err := uow.ConversationRepository().FindOne(ctx, specification.ByID{ID: req.ConversationId})
	if err != nil {
		return nil, fmt.Errorf("find conversation: %w", err)
	}
	if conversation == nil {
		return nil, fmt.Errorf("conversation %s not found", req.ConversationId)
	}

	feedback := &entity.Feedback{
		Id:              uuid.New(),
		ConversationId:  req.ConversationId,
		MessageId:       req.MessageId,
		Rating:          req.Rating,
		AgentCorrection: req.AgentCorrection,
		Notes:           req.Notes,
		CreatedAt:       time.Now(),
	}
	if err := uow.FeedbackRepository().Create(ctx, feedback); err != nil {
		return nil, fmt.Errorf("create feedback: %w", err)
	}
	return toFeedbackResponse(feedback), nil
}

func (s *feedbackService) ListByConversation(ctx context.Context, conversationId uuid.UUID) ([]dto.FeedbackResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	feedbacks, err := uow.FeedbackRepository().FindAll(ctx,
		specification.ByConversationID{ConversationID: conversationId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, fmt.Errorf("find feedback: %w", err)
	}

	responses := make([]dto.FeedbackResponse, 0, len(feedbacks))
	for _, f := range feedbacks {
		responses = append(responses, *toFeedbackResponse(f))
	}
	return responses, nil
}

func toFeedbackResponse(f *entity.Feedback) *dto.FeedbackResponse {
	return &dto.FeedbackResponse{
		Id:              f.Id,
		ConversationId:  f.ConversationId,
		MessageId:       f.MessageId,
		Rating:          f.Rating,
		AgentCorrection: f.AgentCorrection,
		Notes:           f.Notes,
		CreatedAt:       f.CreatedAt,
	}
}
