package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"ai-support-be/internal/dto"
	"ai-support-be/internal/entity"
	"ai-support-be/internal/repository/specification"
	"ai-support-be/internal/repository/unitofwork"
	"ai-support-be/pkg/embedding"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService regenerates knowledge embeddings off the request
// path. Authoring returns immediately; the vector catches up here.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	embedder   *embedding.Service
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	embedder *embedding.Service,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
		embedder:   embedder,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishEmbedKnowledgeMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal re-embed message: %v", err)
		msg.Ack() // invalid payloads never become valid, do not retry
		return
	}

	log.Printf("[INFO] Processing embedding for knowledge entry %s", payload.EntryId)

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	entry, err := uow.KnowledgeRepository().FindOne(ctx, specification.ByID{ID: payload.EntryId})
	if err != nil {
		log.Printf("[ERROR] Failed to get knowledge entry %s: %v", payload.EntryId, err)
		msg.Nack()
		return
	}
	if entry == nil {
		log.Printf("[WARN] Knowledge entry %s not found, likely deleted", payload.EntryId)
		msg.Ack()
		return
	}

	document := fmt.Sprintf("%s\n\n%s", entry.Title, entry.Content)
	vector, err := cs.embedder.Embed(document, "RETRIEVAL_DOCUMENT")
	if err != nil {
		if errors.Is(err, embedding.ErrUnavailable) {
			// Degraded mode is permanent for this process; retrying loops.
			log.Printf("[WARN] Embedding backend degraded, skipping entry %s", payload.EntryId)
			msg.Ack()
			return
		}
		log.Printf("[ERROR] Failed to embed entry %s: %v", payload.EntryId, err)
		msg.Nack()
		return
	}

	if err := uow.Begin(ctx); err != nil {
		log.Printf("[ERROR] Failed to begin transaction: %v", err)
		msg.Nack()
		return
	}
	defer uow.Rollback()

	if err := uow.KnowledgeEmbeddingRepository().DeleteByEntryId(ctx, entry.Id); err != nil {
		log.Printf("[ERROR] Failed to delete old embedding: %v", err)
		msg.Nack()
		return
	}

	if err := uow.KnowledgeEmbeddingRepository().Create(ctx, &entity.KnowledgeEmbedding{
		Id:               uuid.New(),
		Document:         document,
		EmbeddingValue:   vector,
		KnowledgeEntryId: entry.Id,
		CreatedAt:        time.Now(),
	}); err != nil {
		log.Printf("[ERROR] Failed to create embedding: %v", err)
		msg.Nack()
		return
	}

	if err := uow.Commit(); err != nil {
		log.Printf("[ERROR] Failed to commit transaction: %v", err)
		msg.Nack()
		return
	}

	log.Printf("[SUCCESS] Embedded knowledge entry %s", payload.EntryId)
	msg.Ack()
}
