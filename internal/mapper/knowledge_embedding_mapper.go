package mapper

import (
	"time"

	"ai-support-be/internal/entity"
	"ai-support-be/internal/model"

	"github.com/pgvector/pgvector-go"
)

type KnowledgeEmbeddingMapper struct{}

func NewKnowledgeEmbeddingMapper() *KnowledgeEmbeddingMapper {
	return &KnowledgeEmbeddingMapper{}
}

func (m *KnowledgeEmbeddingMapper) ToEntity(e *model.KnowledgeEmbedding) *entity.KnowledgeEmbedding {
	if e == nil {
		return nil
	}

	var updatedAt *time.Time
	if !e.UpdatedAt.IsZero() {
		t := e.UpdatedAt
		updatedAt = &t
	}

	return &entity.KnowledgeEmbedding{
		Id:               e.Id,
		Document:         e.Document,
		EmbeddingValue:   e.EmbeddingValue.Slice(),
		KnowledgeEntryId: e.KnowledgeEntryId,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        updatedAt,
	}
}

func (m *KnowledgeEmbeddingMapper) ToModel(e *entity.KnowledgeEmbedding) *model.KnowledgeEmbedding {
	if e == nil {
		return nil
	}

	var updatedAt time.Time
	if e.UpdatedAt != nil {
		updatedAt = *e.UpdatedAt
	}

	return &model.KnowledgeEmbedding{
		Id:               e.Id,
		Document:         e.Document,
		EmbeddingValue:   pgvector.NewVector(e.EmbeddingValue),
		KnowledgeEntryId: e.KnowledgeEntryId,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        updatedAt,
	}
}

func (m *KnowledgeEmbeddingMapper) ToEntities(embeddings []*model.KnowledgeEmbedding) []*entity.KnowledgeEmbedding {
	entities := make([]*entity.KnowledgeEmbedding, len(embeddings))
	for i, e := range embeddings {
		entities[i] = m.ToEntity(e)
	}
	return entities
}
