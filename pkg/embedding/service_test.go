package embedding

import (
	"errors"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubProvider struct {
	vector []float32
	err    error
	calls  int
}

func (p *stubProvider) Generate(text string, taskType string) (*EmbeddingResponse, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	return &EmbeddingResponse{Embedding: EmbeddingResponseEmbedding{Values: p.vector}}, nil
}

func TestServiceNilProviderIsDegraded(t *testing.T) {
	s := NewService(nil, log.Default())

	assert.False(t, s.Available())
	_, err := s.Embed("hello", "RETRIEVAL_QUERY")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestServiceProbeFailureDegradesPermanently(t *testing.T) {
	provider := &stubProvider{err: errors.New("connection refused")}
	s := NewService(provider, log.Default())

	_, err := s.Embed("hello", "RETRIEVAL_QUERY")
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.False(t, s.Available())

	// No retry after degradation, even if the backend recovers.
	provider.err = nil
	_, err = s.Embed("hello again", "RETRIEVAL_QUERY")
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, 1, provider.calls)
}

func TestServiceHealthyPath(t *testing.T) {
	provider := &stubProvider{vector: []float32{1, 0, 0}}
	s := NewService(provider, log.Default())

	vec, err := s.Embed("hello", "RETRIEVAL_QUERY")
	assert.NoError(t, err)
	assert.Equal(t, []float32{1, 0, 0}, vec)
	assert.True(t, s.Available())
}

func TestCosineSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, CosineSimilarity([]float32{1, 0}, []float32{1, 0}), 0.001)
	assert.InDelta(t, 0.0, CosineSimilarity([]float32{1, 0}, []float32{0, 1}), 0.001)
	assert.InDelta(t, -1.0, CosineSimilarity([]float32{1, 0}, []float32{-1, 0}), 0.001)
}

func TestCosineSimilarityDegenerateInputs(t *testing.T) {
	assert.Equal(t, 0.0, CosineSimilarity(nil, nil))
	assert.Equal(t, 0.0, CosineSimilarity([]float32{1}, []float32{1, 2}))
	assert.Equal(t, 0.0, CosineSimilarity([]float32{0, 0}, []float32{1, 2}))
}
