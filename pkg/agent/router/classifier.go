package router

import (
	"log"
	"strings"

	"ai-support-be/internal/constant"
	"ai-support-be/pkg/agent/keyword"
	"ai-support-be/pkg/embedding"

	gocache "github.com/patrickmn/go-cache"
)

// Classification is the router agent's verdict on one message.
type Classification struct {
	Intent     string
	Confidence float64
	Scores     map[string]float64
}

// Classifier assigns an intent label by comparing the message embedding
// against canonical example embeddings per intent. A label's score is
// its best single-example match, not an average: a message can strongly
// match one phrasing without resembling the others. When the embedding
// backend is degraded the keyword rule table takes over.
type Classifier struct {
	embedder     *embedding.Service
	examples     map[string][]string
	intentOrder  []string
	keywordRules keyword.Table
	exampleCache *gocache.Cache
	logger       *log.Logger
}

func NewClassifier(embedder *embedding.Service, logger *log.Logger) *Classifier {
	return &Classifier{
		embedder:     embedder,
		examples:     IntentExamples,
		intentOrder:  IntentOrder,
		keywordRules: IntentKeywords,
		// Example embeddings never change at runtime; cache them forever.
		exampleCache: gocache.New(gocache.NoExpiration, gocache.NoExpiration),
		logger:       logger,
	}
}

// Classify never fails: unclassifiable input resolves to general/0.5.
func (c *Classifier) Classify(message string) Classification {
	if !c.embedder.Available() {
		return c.classifyKeyword(message)
	}

	userEmbedding, err := c.embedder.Embed(strings.ToLower(message), "RETRIEVAL_QUERY")
	if err != nil {
		c.logger.Printf("[ROUTER] Embedding failed, using keyword classifier: %v", err)
		return c.classifyKeyword(message)
	}

	scores := make(map[string]float64)
	for _, intent := range c.intentOrder {
		best := 0.0
		scored := false
		for _, example := range c.examples[intent] {
			exampleEmbedding, err := c.exampleEmbedding(example)
			if err != nil {
				continue
			}
			similarity := embedding.CosineSimilarity(userEmbedding, exampleEmbedding)
			if !scored || similarity > best {
				best = similarity
				scored = true
			}
		}
		if scored {
			scores[intent] = best
		}
	}

	if len(scores) == 0 {
		return Classification{Intent: constant.IntentGeneral, Confidence: 0.5}
	}

	bestIntent := ""
	bestScore := 0.0
	for _, intent := range c.intentOrder {
		score, ok := scores[intent]
		if !ok {
			continue
		}
		if bestIntent == "" || score > bestScore {
			bestIntent = intent
			bestScore = score
		}
	}

	return Classification{
		Intent:     bestIntent,
		Confidence: bestScore,
		Scores:     scores,
	}
}

func (c *Classifier) exampleEmbedding(example string) ([]float32, error) {
	if cached, found := c.exampleCache.Get(example); found {
		return cached.([]float32), nil
	}
	vec, err := c.embedder.Embed(strings.ToLower(example), "RETRIEVAL_DOCUMENT")
	if err != nil {
		return nil, err
	}
	c.exampleCache.Set(example, vec, gocache.NoExpiration)
	return vec, nil
}

// classifyKeyword scores each intent by keyword density. All-zero
// scores and exact ties resolve to general/0.5.
func (c *Classifier) classifyKeyword(message string) Classification {
	label, score, ok := c.keywordRules.Best(message)
	if !ok {
		return Classification{Intent: constant.IntentGeneral, Confidence: 0.5}
	}
	return Classification{
		Intent:     label,
		Confidence: score,
		Scores:     c.keywordRules.Scores(message),
	}
}
