package embedding

import (
	"errors"
	"log"
	"math"
	"sync"
	"sync/atomic"
)

// ErrUnavailable is returned once the embedding backend has been marked
// degraded. Callers treat it as a signal to use keyword fallbacks.
var ErrUnavailable = errors.New("embedding backend unavailable")

// Service wraps an EmbeddingProvider with init-once semantics. The
// backend is probed lazily on first use; if the probe fails the service
// stays degraded for the remainder of the process and every consumer
// falls back to keyword-based scoring. There is no automatic retry.
type Service struct {
	provider EmbeddingProvider
	logger   *log.Logger

	initOnce sync.Once
	degraded atomic.Bool
}

func NewService(provider EmbeddingProvider, logger *log.Logger) *Service {
	s := &Service{
		provider: provider,
		logger:   logger,
	}
	if provider == nil {
		s.degraded.Store(true)
	}
	return s
}

// Available reports whether the backend can serve embeddings. It does
// not trigger initialization.
func (s *Service) Available() bool {
	return !s.degraded.Load()
}

// Embed generates a normalized embedding for text. The first call
// probes the backend; a probe failure degrades the service permanently.
// Later per-call failures are returned to the caller without flipping
// the degraded flag.
func (s *Service) Embed(text string, taskType string) ([]float32, error) {
	if s.degraded.Load() {
		return nil, ErrUnavailable
	}

	s.initOnce.Do(func() {
		if _, err := s.provider.Generate("ping", taskType); err != nil {
			s.degraded.Store(true)
			if s.logger != nil {
				s.logger.Printf("[EMBEDDING] Backend probe failed, degrading to keyword mode: %v", err)
			}
		}
	})

	if s.degraded.Load() {
		return nil, ErrUnavailable
	}

	res, err := s.provider.Generate(text, taskType)
	if err != nil {
		return nil, err
	}
	return res.Embedding.Values, nil
}

// CosineSimilarity computes the cosine similarity of two vectors.
// Mismatched or zero-magnitude inputs score 0.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
