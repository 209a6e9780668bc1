package contract

import (
	"context"

	"ai-support-be/internal/entity"

	"github.com/google/uuid"
)

// ScoredKnowledgeEmbedding wraps an embedding with its cosine similarity
// against the query vector (1.0 = identical).
type ScoredKnowledgeEmbedding struct {
	Embedding  *entity.KnowledgeEmbedding
	Similarity float64
}

type KnowledgeEmbeddingRepository interface {
	Create(ctx context.Context, embedding *entity.KnowledgeEmbedding) error
	DeleteByEntryId(ctx context.Context, entryId uuid.UUID) error
	// SearchSimilarWithScore returns the closest embeddings ordered by
	// similarity descending, truncated to limit.
	SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int) ([]*ScoredKnowledgeEmbedding, error)
}
