package experiment

import (
	"testing"

	"ai-support-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSelectVariantDeterministic(t *testing.T) {
	exp := &entity.Experiment{TrafficSplit: 0.5}
	conversationId := uuid.New()

	first, err := SelectVariant(exp, conversationId)
	assert.NoError(t, err)

	for i := 0; i < 100; i++ {
		again, err := SelectVariant(exp, conversationId)
		assert.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestSelectVariantEdgeSplits(t *testing.T) {
	allB := &entity.Experiment{TrafficSplit: 0}
	allA := &entity.Experiment{TrafficSplit: 1}

	for i := 0; i < 50; i++ {
		id := uuid.New()

		v, err := SelectVariant(allB, id)
		assert.NoError(t, err)
		assert.Equal(t, VariantB, v)

		v, err = SelectVariant(allA, id)
		assert.NoError(t, err)
		assert.Equal(t, VariantA, v)
	}
}

func TestSelectVariantInvalidSplit(t *testing.T) {
	_, err := SelectVariant(&entity.Experiment{TrafficSplit: 1.5}, uuid.New())
	assert.Error(t, err)

	_, err = SelectVariant(&entity.Experiment{TrafficSplit: -0.1}, uuid.New())
	assert.Error(t, err)
}

func TestSelectVariantConvergesOnSplit(t *testing.T) {
	exp := &entity.Experiment{TrafficSplit: 0.7}

	countA := 0
	total := 2000
	for i := 0; i < total; i++ {
		v, err := SelectVariant(exp, uuid.New())
		assert.NoError(t, err)
		if v == VariantA {
			countA++
		}
	}

	ratio := float64(countA) / float64(total)
	assert.InDelta(t, 0.7, ratio, 0.05)
}

func TestVersionFor(t *testing.T) {
	versionA := uuid.New()
	versionB := uuid.New()
	exp := &entity.Experiment{
		VariantAVersionId: &versionA,
		VariantBVersionId: &versionB,
	}

	assert.Equal(t, &versionA, VersionFor(exp, VariantA))
	assert.Equal(t, &versionB, VersionFor(exp, VariantB))
}
