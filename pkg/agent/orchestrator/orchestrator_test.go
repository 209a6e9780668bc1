package orchestrator_test

import (
	"context"
	"log"
	"testing"
	"time"

	"ai-support-be/internal/constant"
	"ai-support-be/internal/entity"
	"ai-support-be/internal/repository/contract"
	"ai-support-be/internal/repository/specification"
	"ai-support-be/internal/repository/unitofwork"
	"ai-support-be/pkg/agent"
	"ai-support-be/pkg/agent/escalation"
	"ai-support-be/pkg/agent/knowledge"
	"ai-support-be/pkg/agent/orchestrator"
	"ai-support-be/pkg/agent/router"
	"ai-support-be/pkg/embedding"
	"ai-support-be/pkg/rag/search"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In-memory unit of work. Specifications are matched by type switch
// instead of SQL; only the shapes the pipeline uses are supported.

type fakeUow struct {
	conversations map[uuid.UUID]*entity.Conversation
	messages      []*entity.Message
	knowledge     []*entity.KnowledgeEntry
}

func newFakeUow() *fakeUow {
	return &fakeUow{conversations: make(map[uuid.UUID]*entity.Conversation)}
}

func (u *fakeUow) Begin(ctx context.Context) error { return nil }
func (u *fakeUow) Commit() error                   { return nil }
func (u *fakeUow) Rollback() error                 { return nil }

func (u *fakeUow) ConversationRepository() contract.ConversationRepository {
	return &fakeConversationRepo{uow: u}
}
func (u *fakeUow) MessageRepository() contract.MessageRepository {
	return &fakeMessageRepo{uow: u}
}
func (u *fakeUow) KnowledgeRepository() contract.KnowledgeRepository {
	return &fakeKnowledgeRepo{uow: u}
}
func (u *fakeUow) KnowledgeEmbeddingRepository() contract.KnowledgeEmbeddingRepository { return nil }
func (u *fakeUow) ExperimentRepository() contract.ExperimentRepository                 { return nil }
func (u *fakeUow) ModelVersionRepository() contract.ModelVersionRepository             { return nil }
func (u *fakeUow) FeedbackRepository() contract.FeedbackRepository                     { return nil }
func (u *fakeUow) AgentActionRepository() contract.AgentActionRepository               { return nil }
func (u *fakeUow) AgentUserRepository() contract.AgentUserRepository                   { return nil }

var _ unitofwork.UnitOfWork = &fakeUow{}

type fakeConversationRepo struct{ uow *fakeUow }

func (r *fakeConversationRepo) Create(ctx context.Context, c *entity.Conversation) error {
	r.uow.conversations[c.Id] = c
	return nil
}

func (r *fakeConversationRepo) Update(ctx context.Context, c *entity.Conversation) error {
	r.uow.conversations[c.Id] = c
	return nil
}

func (r *fakeConversationRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Conversation, error) {
	for _, spec := range specs {
		if byId, ok := spec.(specification.ByID); ok {
			return r.uow.conversations[byId.ID], nil
		}
	}
	return nil, nil
}

func (r *fakeConversationRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Conversation, error) {
	var all []*entity.Conversation
	for _, c := range r.uow.conversations {
		all = append(all, c)
	}
	return all, nil
}

func (r *fakeConversationRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.uow.conversations)), nil
}

type fakeMessageRepo struct{ uow *fakeUow }

func (r *fakeMessageRepo) Create(ctx context.Context, m *entity.Message) error {
	r.uow.messages = append(r.uow.messages, m)
	return nil
}

func (r *fakeMessageRepo) Update(ctx context.Context, m *entity.Message) error { return nil }

func (r *fakeMessageRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Message, error) {
	return nil, nil
}

func (r *fakeMessageRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Message, error) {
	return r.uow.messages, nil
}

func (r *fakeMessageRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.uow.messages)), nil
}

type fakeKnowledgeRepo struct{ uow *fakeUow }

func (r *fakeKnowledgeRepo) Create(ctx context.Context, e *entity.KnowledgeEntry) error {
	r.uow.knowledge = append(r.uow.knowledge, e)
	return nil
}

func (r *fakeKnowledgeRepo) Update(ctx context.Context, e *entity.KnowledgeEntry) error { return nil }
func (r *fakeKnowledgeRepo) Delete(ctx context.Context, id uuid.UUID) error             { return nil }

func (r *fakeKnowledgeRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.KnowledgeEntry, error) {
	return nil, nil
}

func (r *fakeKnowledgeRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.KnowledgeEntry, error) {
	return r.uow.knowledge, nil
}

func (r *fakeKnowledgeRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.uow.knowledge)), nil
}

// newPipeline builds the full pipeline with the embedding backend
// absent, so classification and retrieval run on keyword fallbacks.
func newPipeline(techSupportThreshold float64) *orchestrator.Orchestrator {
	embedder := embedding.NewService(nil, log.Default())
	retriever := search.NewRetriever(embedder, log.Default())
	classifier := router.NewClassifier(embedder, log.Default())
	knowledgeAgent := knowledge.NewResponder(retriever, nil, 0.65, log.Default())
	escalationAgent := escalation.NewResponder(log.Default())
	return orchestrator.New(classifier, knowledgeAgent, escalationAgent, techSupportThreshold, log.Default())
}

func seedConversation(uow *fakeUow) *entity.Conversation {
	c := &entity.Conversation{
		Id:         uuid.New(),
		CustomerId: "customer_test",
		Status:     constant.ConversationStatusActive,
		CreatedAt:  time.Now(),
	}
	uow.conversations[c.Id] = c
	return c
}

func TestComplaintAlwaysEscalates(t *testing.T) {
	uow := newFakeUow()
	conversation := seedConversation(uow)
	pipeline := newPipeline(0.6)

	outcome, err := pipeline.Respond(context.Background(), uow, conversation.Id, "I want to file a complaint, this is terrible")
	require.NoError(t, err)

	result, ok := outcome.Result.(*agent.EscalationResult)
	require.True(t, ok, "expected an escalation result")
	assert.Equal(t, "Customer complaint requires human attention", result.EscalationReason)
	assert.Equal(t, 1.0, result.ConfidenceScore())
	assert.True(t, result.ShouldAutoSend())
	assert.Equal(t, constant.IntentComplaint, outcome.Intent)

	assert.Equal(t, constant.ConversationStatusEscalated, uow.conversations[conversation.Id].Status)
	require.Len(t, uow.messages, 1)
	audit := uow.messages[0]
	assert.Equal(t, constant.MessageTypeAgentOnly, audit.MessageType)
	assert.Equal(t, 1.0, *audit.ConfidenceScore)
	assert.Contains(t, audit.Content, "Customer complaint requires human attention")
}

func TestHandoffPhraseEscalatesRegardlessOfIntent(t *testing.T) {
	uow := newFakeUow()
	conversation := seedConversation(uow)
	pipeline := newPipeline(0.6)

	outcome, err := pipeline.Respond(context.Background(), uow, conversation.Id, "I need to speak to someone about my order")
	require.NoError(t, err)

	result, ok := outcome.Result.(*agent.EscalationResult)
	require.True(t, ok, "expected an escalation result")
	assert.Equal(t, "Explicit request for human agent", result.EscalationReason)
	assert.Contains(t, result.Response(), "(Reason: Explicit request for human agent)")
}

func TestFaqAnsweredAndAutoSent(t *testing.T) {
	uow := newFakeUow()
	conversation := seedConversation(uow)
	uow.knowledge = append(uow.knowledge, &entity.KnowledgeEntry{
		Id:       uuid.New(),
		Title:    "Return Policy",
		Content:  "Our return policy: here is what is covered and how your refund works.",
		Category: "Returns",
	})
	pipeline := newPipeline(0.6)

	outcome, err := pipeline.Respond(context.Background(), uow, conversation.Id, "what is your return policy")
	require.NoError(t, err)

	result, ok := outcome.Result.(*agent.KnowledgeResult)
	require.True(t, ok, "expected a knowledge result")
	assert.Equal(t, constant.IntentFAQ, outcome.Intent)
	assert.Equal(t, search.ConfidenceHigh, result.ConfidenceScore())
	assert.True(t, result.ShouldAutoSend())
	assert.Contains(t, result.Response(), "Based on our Returns policy:")

	// Conversation stays active; no escalation side effects.
	assert.Equal(t, constant.ConversationStatusActive, uow.conversations[conversation.Id].Status)
	assert.Empty(t, uow.messages)
}

func TestUnmatchedMessageProducesLowConfidenceDraft(t *testing.T) {
	uow := newFakeUow()
	conversation := seedConversation(uow)
	pipeline := newPipeline(0.6)

	outcome, err := pipeline.Respond(context.Background(), uow, conversation.Id, "xyzzy hello")
	require.NoError(t, err)

	result, ok := outcome.Result.(*agent.KnowledgeResult)
	require.True(t, ok, "expected a knowledge result")
	assert.Equal(t, constant.IntentGeneral, outcome.Intent)
	assert.Equal(t, 0.5, outcome.IntentConfidence)
	assert.Equal(t, search.ConfidenceNone, result.ConfidenceScore())
	assert.False(t, result.ShouldAutoSend())
}

func TestTechnicalSupportEscalatesBelowItsOwnThreshold(t *testing.T) {
	uow := newFakeUow()
	conversation := seedConversation(uow)
	pipeline := newPipeline(0.6)

	// Strong technical_support keyword signal, but nothing in the
	// knowledge base to answer with.
	outcome, err := pipeline.Respond(context.Background(), uow, conversation.Id, "login error, password not working")
	require.NoError(t, err)

	result, ok := outcome.Result.(*agent.EscalationResult)
	require.True(t, ok, "expected an escalation result")
	assert.Equal(t, constant.IntentTechnicalSupport, outcome.Intent)
	assert.Equal(t, "Technical support query with low confidence (0.30)", result.EscalationReason)
	assert.Equal(t, constant.ConversationStatusEscalated, uow.conversations[conversation.Id].Status)
}

func TestEscalationUnknownConversation(t *testing.T) {
	uow := newFakeUow()
	pipeline := newPipeline(0.6)

	_, err := pipeline.Respond(context.Background(), uow, uuid.New(), "I demand to speak to a human")
	assert.ErrorIs(t, err, escalation.ErrConversationNotFound)
}
