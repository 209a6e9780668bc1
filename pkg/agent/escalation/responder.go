package escalation

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"ai-support-be/internal/constant"
	"ai-support-be/internal/entity"
	"ai-support-be/internal/repository/specification"
	"ai-support-be/internal/repository/unitofwork"
	"ai-support-be/pkg/agent"

	"github.com/google/uuid"
)

var ErrConversationNotFound = errors.New("conversation not found")

const handoffReply = "I understand you need assistance. I'm connecting you with a human agent who can help you better. Please hold while we transfer your conversation."

// Responder is the escalation agent. Unlike the knowledge agent it has
// side effects: it flips the conversation to escalated and records an
// agent_only audit message inside the caller's unit of work, so the
// handoff and the customer-facing reply commit or roll back together.
type Responder struct {
	logger *log.Logger
}

func NewResponder(logger *log.Logger) *Responder {
	return &Responder{logger: logger}
}

// Escalate hands the conversation to a human agent.
func (r *Responder) Escalate(ctx context.Context, uow unitofwork.UnitOfWork, conversationId uuid.UUID, reason string) (*agent.EscalationResult, error) {
	conversation, err := uow.ConversationRepository().FindOne(ctx, specification.ByID{ID: conversationId})
	if err != nil {
		return nil, fmt.Errorf("find conversation: %w", err)
	}
	if conversation == nil {
		return nil, ErrConversationNotFound
	}

	now := time.Now()
	conversation.Status = constant.ConversationStatusEscalated
	conversation.UpdatedAt = &now
	if err := uow.ConversationRepository().Update(ctx, conversation); err != nil {
		return nil, fmt.Errorf("update conversation: %w", err)
	}

	// Full confidence marks human authority over the routing decision.
	confidence := 1.0
	agentType := constant.AgentTypeEscalation
	auditMessage := &entity.Message{
		Id:              uuid.New(),
		ConversationId:  conversationId,
		Content:         fmt.Sprintf("Conversation escalated to human agent. Reason: %s", reason),
		MessageType:     constant.MessageTypeAgentOnly,
		ConfidenceScore: &confidence,
		AgentType:       &agentType,
		CreatedAt:       now,
	}
	if err := uow.MessageRepository().Create(ctx, auditMessage); err != nil {
		return nil, fmt.Errorf("create escalation message: %w", err)
	}

	r.logger.Printf("[ESCALATION] Conversation %s escalated: %s", conversationId, reason)

	reply := handoffReply
	if reason != "" {
		reply += fmt.Sprintf(" (Reason: %s)", reason)
	}

	return &agent.EscalationResult{
		Reply:              reply,
		EscalationReason:   reason,
		ConversationStatus: constant.ConversationStatusEscalated,
	}, nil
}
