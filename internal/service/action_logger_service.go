package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"ai-support-be/internal/dto"
	"ai-support-be/internal/entity"
	"ai-support-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IActionLoggerService interface {
	Consume(ctx context.Context) error
}

// actionLoggerService persists pipeline audit events. Logging is
// fire-and-forget from the publisher's perspective; a lost audit row
// must never fail a customer-facing request.
type actionLoggerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
}

func NewActionLoggerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
) IActionLoggerService {
	return &actionLoggerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
	}
}

func (s *actionLoggerService) Consume(ctx context.Context) error {
	messages, err := s.pubSub.Subscribe(ctx, s.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			s.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (s *actionLoggerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.AgentActionMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal agent action: %v", err)
		msg.Ack()
		return
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	action := &entity.AgentAction{
		Id:             uuid.New(),
		ConversationId: payload.ConversationId,
		MessageId:      payload.MessageId,
		ActionType:     payload.ActionType,
		ActionData:     payload.ActionData,
		CreatedAt:      time.Now(),
	}
	if err := uow.AgentActionRepository().Create(ctx, action); err != nil {
		log.Printf("[ERROR] Failed to persist agent action: %v", err)
		msg.Nack()
		return
	}

	msg.Ack()
}
