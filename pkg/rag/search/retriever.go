package search

import (
	"context"
	"log"
	"sort"
	"strings"

	"ai-support-be/internal/entity"
	"ai-support-be/internal/repository/specification"
	"ai-support-be/internal/repository/unitofwork"
	"ai-support-be/pkg/embedding"

	"github.com/google/uuid"
)

// Match is one ranked knowledge entry candidate.
type Match struct {
	Id       uuid.UUID
	Title    string
	Content  string
	Category string
	Score    float64
}

// Retriever finds knowledge entries relevant to a query. Vector search
// through pgvector is preferred; any failure along that path (degraded
// embedding backend, query error, empty result set) falls back to
// keyword-overlap scoring over a full entry scan.
type Retriever struct {
	embedder *embedding.Service
	logger   *log.Logger
}

func NewRetriever(embedder *embedding.Service, logger *log.Logger) *Retriever {
	return &Retriever{
		embedder: embedder,
		logger:   logger,
	}
}

// Retrieve returns up to topK matches ordered by score descending.
func (r *Retriever) Retrieve(ctx context.Context, uow unitofwork.UnitOfWork, query string, topK int) ([]Match, error) {
	if topK <= 0 {
		topK = 3
	}

	matches, err := r.retrieveVector(ctx, uow, query, topK)
	if err != nil {
		r.logger.Printf("[SEARCH] Vector retrieval unavailable, using keyword fallback: %v", err)
		return r.retrieveKeyword(ctx, uow, query, topK)
	}
	if len(matches) == 0 {
		return r.retrieveKeyword(ctx, uow, query, topK)
	}
	return matches, nil
}

func (r *Retriever) retrieveVector(ctx context.Context, uow unitofwork.UnitOfWork, query string, topK int) ([]Match, error) {
	queryEmbedding, err := r.embedder.Embed(query, "RETRIEVAL_QUERY")
	if err != nil {
		return nil, err
	}

	scored, err := uow.KnowledgeEmbeddingRepository().SearchSimilarWithScore(ctx, queryEmbedding, topK)
	if err != nil {
		return nil, err
	}
	if len(scored) == 0 {
		return nil, nil
	}

	entryIds := make([]uuid.UUID, 0, len(scored))
	for _, s := range scored {
		entryIds = append(entryIds, s.Embedding.KnowledgeEntryId)
	}

	entries, err := uow.KnowledgeRepository().FindAll(ctx, specification.ByIDs{IDs: entryIds})
	if err != nil {
		return nil, err
	}
	entryById := make(map[uuid.UUID]*entity.KnowledgeEntry, len(entries))
	for _, e := range entries {
		entryById[e.Id] = e
	}

	matches := make([]Match, 0, len(scored))
	for _, s := range scored {
		entry, ok := entryById[s.Embedding.KnowledgeEntryId]
		if !ok {
			continue
		}
		matches = append(matches, Match{
			Id:       entry.Id,
			Title:    entry.Title,
			Content:  entry.Content,
			Category: entry.Category,
			Score:    s.Similarity,
		})
	}
	return matches, nil
}

// retrieveKeyword scores entries by word overlap with the query:
// |query-words ∩ entry-words| / |query-words|. Entries with no overlap
// are dropped.
func (r *Retriever) retrieveKeyword(ctx context.Context, uow unitofwork.UnitOfWork, query string, topK int) ([]Match, error) {
	entries, err := uow.KnowledgeRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	queryWords := wordSet(query)
	if len(queryWords) == 0 {
		return nil, nil
	}

	var matches []Match
	for _, entry := range entries {
		entryWords := wordSet(entry.Title + " " + entry.Content + " " + entry.Tags)

		common := 0
		for w := range queryWords {
			if entryWords[w] {
				common++
			}
		}
		if common == 0 {
			continue
		}

		matches = append(matches, Match{
			Id:       entry.Id,
			Title:    entry.Title,
			Content:  entry.Content,
			Category: entry.Category,
			Score:    float64(common) / float64(len(queryWords)),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	if len(matches) > topK {
		matches = matches[:topK]
	}
	return matches, nil
}

func wordSet(text string) map[string]bool {
	words := strings.Fields(strings.ToLower(text))
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}
