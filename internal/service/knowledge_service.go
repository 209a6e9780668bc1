package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"ai-support-be/internal/dto"
	"ai-support-be/internal/entity"
	"ai-support-be/internal/repository/specification"
	"ai-support-be/internal/repository/unitofwork"
	"ai-support-be/pkg/rag/search"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IKnowledgeService interface {
	Create(ctx context.Context, req *dto.CreateKnowledgeRequest) (*dto.KnowledgeResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateKnowledgeRequest) (*dto.KnowledgeResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (*dto.KnowledgeResponse, error)
	List(ctx context.Context, category string) ([]dto.KnowledgeResponse, error)
	Search(ctx context.Context, req *dto.SearchKnowledgeRequest) ([]dto.KnowledgeMatchResponse, error)
}

type knowledgeService struct {
	uowFactory   unitofwork.RepositoryFactory
	retriever    *search.Retriever
	pubSub       *gochannel.GoChannel
	reembedTopic string
}

func NewKnowledgeService(
	uowFactory unitofwork.RepositoryFactory,
	retriever *search.Retriever,
	pubSub *gochannel.GoChannel,
	reembedTopic string,
) IKnowledgeService {
	return &knowledgeService{
		uowFactory:   uowFactory,
		retriever:    retriever,
		pubSub:       pubSub,
		reembedTopic: reembedTopic,
	}
}

func (s *knowledgeService) Create(ctx context.Context, req *dto.CreateKnowledgeRequest) (*dto.KnowledgeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	entry := &entity.KnowledgeEntry{
		Id:        uuid.New(),
		Title:     req.Title,
		Content:   req.Content,
		Category:  req.Category,
		Tags:      req.Tags,
		CreatedAt: time.Now(),
	}
	if err := uow.KnowledgeRepository().Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("create knowledge entry: %w", err)
	}

	s.publishReembed(entry.Id)
	return toKnowledgeResponse(entry), nil
}

func (s *knowledgeService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateKnowledgeRequest) (*dto.KnowledgeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	entry, err := uow.KnowledgeRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, fmt.Errorf("find knowledge entry: %w", err)
	}
	if entry == nil {
		return nil, fmt.Errorf("knowledge entry %s not found", id)
	}

	contentChanged := false
	if req.Title != nil && *req.Title != entry.Title {
		entry.Title = *req.Title
		contentChanged = true
	}
	if req.Content != nil && *req.Content != entry.Content {
		entry.Content = *req.Content
		contentChanged = true
	}
	if req.Category != nil {
		entry.Category = *req.Category
	}
	if req.Tags != nil {
		entry.Tags = *req.Tags
	}
	now := time.Now()
	entry.UpdatedAt = &now

	if err := uow.KnowledgeRepository().Update(ctx, entry); err != nil {
		return nil, fmt.Errorf("update knowledge entry: %w", err)
	}

	// Only title/content feed the embedding document.
	if contentChanged {
		s.publishReembed(entry.Id)
	}
	return toKnowledgeResponse(entry), nil
}

func (s *knowledgeService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer uow.Rollback()

	if err := uow.KnowledgeEmbeddingRepository().DeleteByEntryId(ctx, id); err != nil {
		return fmt.Errorf("delete embeddings: %w", err)
	}
	if err := uow.KnowledgeRepository().Delete(ctx, id); err != nil {
		return fmt.Errorf("delete knowledge entry: %w", err)
	}

	return uow.Commit()
}

func (s *knowledgeService) Get(ctx context.Context, id uuid.UUID) (*dto.KnowledgeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	entry, err := uow.KnowledgeRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, fmt.Errorf("find knowledge entry: %w", err)
	}
	if entry == nil {
		return nil, fmt.Errorf("knowledge entry %s not found", id)
	}
	return toKnowledgeResponse(entry), nil
}

func (s *knowledgeService) List(ctx context.Context, category string) ([]dto.KnowledgeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{specification.OrderBy{Field: "created_at", Desc: true}}
	if category != "" {
		specs = append(specs, specification.ByCategory{Category: category})
	}

	entries, err := uow.KnowledgeRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, fmt.Errorf("find knowledge entries: %w", err)
	}

	responses := make([]dto.KnowledgeResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, *toKnowledgeResponse(e))
	}
	return responses, nil
}

func (s *knowledgeService) Search(ctx context.Context, req *dto.SearchKnowledgeRequest) ([]dto.KnowledgeMatchResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	matches, err := s.retriever.Retrieve(ctx, uow, req.Query, req.TopK)
	if err != nil {
		return nil, fmt.Errorf("search knowledge: %w", err)
	}

	responses := make([]dto.KnowledgeMatchResponse, 0, len(matches))
	for _, m := range matches {
		responses = append(responses, dto.KnowledgeMatchResponse{
			Id:       m.Id,
			Title:    m.Title,
			Content:  m.Content,
			Category: m.Category,
			Score:    m.Score,
		})
	}
	return responses, nil
}

func (s *knowledgeService) publishReembed(entryId uuid.UUID) {
	payload, err := json.Marshal(dto.PublishEmbedKnowledgeMessage{EntryId: entryId})
	if err != nil {
		log.Printf("[KNOWLEDGE] Failed to marshal re-embed message: %v", err)
		return
	}
	if err := s.pubSub.Publish(s.reembedTopic, message.NewMessage(watermill.NewUUID(), payload)); err != nil {
		log.Printf("[KNOWLEDGE] Failed to publish re-embed message: %v", err)
	}
}

func toKnowledgeResponse(e *entity.KnowledgeEntry) *dto.KnowledgeResponse {
	return &dto.KnowledgeResponse{
		Id:        e.Id,
		Title:     e.Title,
		Content:   e.Content,
		Category:  e.Category,
		Tags:      e.Tags,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
