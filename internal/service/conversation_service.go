package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"ai-support-be/internal/constant"
	"ai-support-be/internal/dto"
	"ai-support-be/internal/entity"
	"ai-support-be/internal/repository/specification"
	"ai-support-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConversationService interface {
	Create(ctx context.Context, req *dto.CreateConversationRequest) (*dto.ConversationResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.ConversationResponse, []dto.MessageResponse, error)
	List(ctx context.Context, customerId, status string) ([]dto.ConversationResponse, error)
	ReviewDraft(ctx context.Context, messageId uuid.UUID, req *dto.ReviewDraftRequest) (*dto.MessageResponse, error)
	Resolve(ctx context.Context, id uuid.UUID, req *dto.ResolveConversationRequest) (*dto.ConversationResponse, error)
}

type conversationService struct {
	uowFactory       unitofwork.RepositoryFactory
	pubSub           *gochannel.GoChannel
	agentActionTopic string
}

func NewConversationService(
	uowFactory unitofwork.RepositoryFactory,
	pubSub *gochannel.GoChannel,
	agentActionTopic string,
) IConversationService {
	return &conversationService{
		uowFactory:       uowFactory,
		pubSub:           pubSub,
		agentActionTopic: agentActionTopic,
	}
}

func (s *conversationService) Create(ctx context.Context, req *dto.CreateConversationRequest) (*dto.ConversationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	conversation := &entity.Conversation{
		Id:         uuid.New(),
		CustomerId: req.CustomerId,
		Status:     constant.ConversationStatusActive,
		CreatedAt:  time.Now(),
	}
	if err := uow.ConversationRepository().Create(ctx, conversation); err != nil {
		return nil, fmt.Errorf("create conversation: %w", err)
	}
	return toConversationResponse(conversation), nil
}

func (s *conversationService) Get(ctx context.Context, id uuid.UUID) (*dto.ConversationResponse, []dto.MessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	conversation, err := uow.ConversationRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, nil, fmt.Errorf("find conversation: %w", err)
	}
	if conversation == nil {
		return nil, nil, fmt.Errorf("conversation %s not found", id)
	}

	messages, err := uow.MessageRepository().FindAll(ctx,
		specification.ByConversationID{ConversationID: id},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, nil, fmt.Errorf("find messages: %w", err)
	}

	messageResponses := make([]dto.MessageResponse, 0, len(messages))
	for _, m := range messages {
		messageResponses = append(messageResponses, toMessageResponse(m))
	}
	return toConversationResponse(conversation), messageResponses, nil
}

func (s *conversationService) List(ctx context.Context, customerId, status string) ([]dto.ConversationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{specification.OrderBy{Field: "created_at", Desc: true}}
	if customerId != "" {
		specs = append(specs, specification.ByCustomerID{CustomerID: customerId})
	}
	if status != "" {
		specs = append(specs, specification.ByStatus{Status: status})
	}

	conversations, err := uow.ConversationRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, fmt.Errorf("find conversations: %w", err)
	}

	responses := make([]dto.ConversationResponse, 0, len(conversations))
	for _, c := range conversations {
		responses = append(responses, *toConversationResponse(c))
	}
	return responses, nil
}

// ReviewDraft records a human agent's verdict on an ai_draft message.
// A nil content approves the draft as written; otherwise the draft is
// replaced and the original AI text preserved for the feedback loop.
func (s *conversationService) ReviewDraft(ctx context.Context, messageId uuid.UUID, req *dto.ReviewDraftRequest) (*dto.MessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	msg, err := uow.MessageRepository().FindOne(ctx, specification.ByID{ID: messageId})
	if err != nil {
		return nil, fmt.Errorf("find message: %w", err)
	}
	if msg == nil {
		return nil, fmt.Errorf("message %s not found", messageId)
	}
	if msg.MessageType != constant.MessageTypeAIDraft {
		return nil, fmt.Errorf("message %s is not an AI draft (type: %s)", messageId, msg.MessageType)
	}

	actionType := constant.ActionTypeDraftApproved
	if req.Content != nil && *req.Content != msg.Content {
		original := msg.Content
		msg.OriginalAiContent = &original
		msg.Content = *req.Content
		msg.MessageType = constant.MessageTypeAgentEdited
		actionType = constant.ActionTypeDraftEdited
	} else {
		msg.MessageType = constant.MessageTypeFinal
	}

	if err := uow.MessageRepository().Update(ctx, msg); err != nil {
		return nil, fmt.Errorf("update message: %w", err)
	}

	s.publishAction(&msg.ConversationId, &msg.Id, actionType, map[string]interface{}{
		"message_type": msg.MessageType,
	})

	response := toMessageResponse(msg)
	return &response, nil
}

func (s *conversationService) Resolve(ctx context.Context, id uuid.UUID, req *dto.ResolveConversationRequest) (*dto.ConversationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	conversation, err := uow.ConversationRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, fmt.Errorf("find conversation: %w", err)
	}
	if conversation == nil {
		return nil, fmt.Errorf("conversation %s not found", id)
	}

	now := time.Now()
	conversation.Status = constant.ConversationStatusResolved
	conversation.UpdatedAt = &now
	conversation.ResolvedAt = &now
	conversation.CsatScore = req.CsatScore

	if err := uow.ConversationRepository().Update(ctx, conversation); err != nil {
		return nil, fmt.Errorf("update conversation: %w", err)
	}

	s.publishAction(&conversation.Id, nil, constant.ActionTypeConversationResolved, map[string]interface{}{
		"csat_score": req.CsatScore,
	})

	return toConversationResponse(conversation), nil
}

func (s *conversationService) publishAction(conversationId, messageId *uuid.UUID, actionType string, data map[string]interface{}) {
	payload, err := json.Marshal(dto.AgentActionMessage{
		ConversationId: conversationId,
		MessageId:      messageId,
		ActionType:     actionType,
		ActionData:     data,
	})
	if err != nil {
		log.Printf("[CONVERSATION] Failed to marshal agent action: %v", err)
		return
	}
	if err := s.pubSub.Publish(s.agentActionTopic, message.NewMessage(watermill.NewUUID(), payload)); err != nil {
		log.Printf("[CONVERSATION] Failed to publish agent action: %v", err)
	}
}

func toConversationResponse(c *entity.Conversation) *dto.ConversationResponse {
	return &dto.ConversationResponse{
		Id:           c.Id,
		CustomerId:   c.CustomerId,
		Status:       c.Status,
		CsatScore:    c.CsatScore,
		ExperimentId: c.ExperimentId,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
		ResolvedAt:   c.ResolvedAt,
	}
}

func toMessageResponse(m *entity.Message) dto.MessageResponse {
	return dto.MessageResponse{
		Id:                m.Id,
		ConversationId:    m.ConversationId,
		Content:           m.Content,
		MessageType:       m.MessageType,
		ConfidenceScore:   m.ConfidenceScore,
		Intent:            m.Intent,
		AgentType:         m.AgentType,
		OriginalAiContent: m.OriginalAiContent,
		CreatedAt:         m.CreatedAt,
	}
}
