package experiment

import (
	"fmt"
	"hash/fnv"
	"math/rand"

	"ai-support-be/internal/entity"

	"github.com/google/uuid"
)

// Variant labels for A/B assignment.
const (
	VariantA = "A"
	VariantB = "B"
)

// SelectVariant deterministically assigns a conversation to one arm of
// an experiment. The conversation id seeds the draw, so the same
// conversation always lands in the same arm across retries and
// restarts, while the population split converges on TrafficSplit.
func SelectVariant(exp *entity.Experiment, conversationId uuid.UUID) (string, error) {
	if exp.TrafficSplit < 0 || exp.TrafficSplit > 1 {
		return "", fmt.Errorf("invalid traffic split %.2f: must be within [0, 1]", exp.TrafficSplit)
	}

	h := fnv.New64a()
	h.Write(conversationId[:])
	rng := rand.New(rand.NewSource(int64(h.Sum64())))

	if rng.Float64() < exp.TrafficSplit {
		return VariantA, nil
	}
	return VariantB, nil
}

// VersionFor resolves the assigned variant to its model version id.
// A nil result means the arm has no version bound yet.
func VersionFor(exp *entity.Experiment, variant string) *uuid.UUID {
	if variant == VariantA {
		return exp.VariantAVersionId
	}
	return exp.VariantBVersionId
}
