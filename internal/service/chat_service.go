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
	"ai-support-be/pkg/agent"
	"ai-support-be/pkg/agent/orchestrator"
	"ai-support-be/pkg/experiment"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IChatService interface {
	Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error)
}

type chatService struct {
	uowFactory       unitofwork.RepositoryFactory
	pipeline         *orchestrator.Orchestrator
	pubSub           *gochannel.GoChannel
	agentActionTopic string
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	pipeline *orchestrator.Orchestrator,
	pubSub *gochannel.GoChannel,
	agentActionTopic string,
) IChatService {
	return &chatService{
		uowFactory:       uowFactory,
		pipeline:         pipeline,
		pubSub:           pubSub,
		agentActionTopic: agentActionTopic,
	}
}

// Chat runs one customer message through the pipeline. The customer
// message, the AI reply, and any escalation side effects are committed
// in a single transaction; the audit event goes out only after commit.
func (s *chatService) Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	conversation, variant, err := s.resolveConversation(ctx, uow, req)
	if err != nil {
		return nil, err
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer uow.Rollback()

	customerMessage := &entity.Message{
		Id:             uuid.New(),
		ConversationId: conversation.Id,
		Content:        req.Message,
		MessageType:    constant.MessageTypeCustomer,
		CreatedAt:      time.Now(),
	}
	if err := uow.MessageRepository().Create(ctx, customerMessage); err != nil {
		return nil, fmt.Errorf("persist customer message: %w", err)
	}

	outcome, err := s.pipeline.Respond(ctx, uow, conversation.Id, req.Message)
	if err != nil {
		return nil, err
	}
	result := outcome.Result

	messageType := constant.MessageTypeAIDraft
	if result.ShouldAutoSend() {
		messageType = constant.MessageTypeFinal
	}

	confidence := result.ConfidenceScore()
	intent := outcome.Intent
	agentType := result.AgentType()
	aiMessage := &entity.Message{
		Id:              uuid.New(),
		ConversationId:  conversation.Id,
		Content:         result.Response(),
		MessageType:     messageType,
		ConfidenceScore: &confidence,
		Intent:          &intent,
		AgentType:       &agentType,
		CreatedAt:       time.Now(),
	}
	if err := uow.MessageRepository().Create(ctx, aiMessage); err != nil {
		return nil, fmt.Errorf("persist ai message: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}

	// The escalation agent updates the conversation inside the
	// transaction; re-read so the reported status is the post-run one.
	status := conversation.Status
	if refreshed, err := uow.ConversationRepository().FindOne(ctx, specification.ByID{ID: conversation.Id}); err == nil && refreshed != nil {
		status = refreshed.Status
	}

	var escalationReason *string
	matchedArticles := make([]dto.KnowledgeMatchResponse, 0)
	switch r := result.(type) {
	case *agent.EscalationResult:
		status = r.ConversationStatus
		escalationReason = &r.EscalationReason
	case *agent.KnowledgeResult:
		for _, m := range r.MatchedEntries {
			matchedArticles = append(matchedArticles, dto.KnowledgeMatchResponse{
				Id:       m.Id,
				Title:    m.Title,
				Content:  m.Content,
				Category: m.Category,
				Score:    m.Score,
			})
		}
	}

	s.publishAction(conversation.Id, aiMessage.Id, constant.ActionTypePipelineRun, map[string]interface{}{
		"intent":            outcome.Intent,
		"intent_confidence": outcome.IntentConfidence,
		"agent_type":        agentType,
		"confidence_score":  confidence,
		"should_auto_send":  result.ShouldAutoSend(),
		"message_type":      messageType,
	})

	return &dto.ChatResponse{
		ConversationId:     conversation.Id,
		MessageId:          aiMessage.Id,
		Response:           result.Response(),
		ConfidenceScore:    confidence,
		MatchedArticles:    matchedArticles,
		Reasoning:          result.Reason(),
		ShouldAutoSend:     result.ShouldAutoSend(),
		MessageType:        messageType,
		AgentType:          agentType,
		Intent:             outcome.Intent,
		IntentConfidence:   outcome.IntentConfidence,
		ConversationStatus: status,
		EscalationReason:   escalationReason,
		ExperimentVariant:  variant,
	}, nil
}

// resolveConversation loads the existing conversation or starts a new
// one. New conversations get enrolled in the active experiment, if any;
// the variant draw is deterministic per conversation id.
func (s *chatService) resolveConversation(ctx context.Context, uow unitofwork.UnitOfWork, req *dto.ChatRequest) (*entity.Conversation, *string, error) {
	if req.ConversationId != nil {
		conversation, err := uow.ConversationRepository().FindOne(ctx, specification.ByID{ID: *req.ConversationId})
		if err != nil {
			return nil, nil, fmt.Errorf("find conversation: %w", err)
		}
		if conversation == nil {
			return nil, nil, fmt.Errorf("conversation %s not found", *req.ConversationId)
		}
		return conversation, s.variantFor(ctx, uow, conversation), nil
	}

	conversation := &entity.Conversation{
		Id:         uuid.New(),
		CustomerId: req.CustomerId,
		Status:     constant.ConversationStatusActive,
		CreatedAt:  time.Now(),
	}

	var variant *string
	activeExperiment, err := uow.ExperimentRepository().FindOne(ctx, specification.ByStatus{Status: constant.ExperimentStatusActive})
	if err != nil {
		return nil, nil, fmt.Errorf("find active experiment: %w", err)
	}
	if activeExperiment != nil {
		v, err := experiment.SelectVariant(activeExperiment, conversation.Id)
		if err != nil {
			log.Printf("[CHAT] Skipping experiment %s: %v", activeExperiment.Id, err)
		} else {
			conversation.ExperimentId = &activeExperiment.Id
			variant = &v
		}
	}

	if err := uow.ConversationRepository().Create(ctx, conversation); err != nil {
		return nil, nil, fmt.Errorf("create conversation: %w", err)
	}
	return conversation, variant, nil
}

func (s *chatService) variantFor(ctx context.Context, uow unitofwork.UnitOfWork, conversation *entity.Conversation) *string {
	if conversation.ExperimentId == nil {
		return nil
	}
	exp, err := uow.ExperimentRepository().FindOne(ctx, specification.ByID{ID: *conversation.ExperimentId})
	if err != nil || exp == nil {
		return nil
	}
	v, err := experiment.SelectVariant(exp, conversation.Id)
	if err != nil {
		return nil
	}
	return &v
}

func (s *chatService) publishAction(conversationId, messageId uuid.UUID, actionType string, data map[string]interface{}) {
	payload, err := json.Marshal(dto.AgentActionMessage{
		ConversationId: &conversationId,
		MessageId:      &messageId,
		ActionType:     actionType,
		ActionData:     data,
	})
	if err != nil {
		log.Printf("[CHAT] Failed to marshal agent action: %v", err)
		return
	}
	if err := s.pubSub.Publish(s.agentActionTopic, message.NewMessage(watermill.NewUUID(), payload)); err != nil {
		log.Printf("[CHAT] Failed to publish agent action: %v", err)
	}
}
