package service

import (
	"context"
	"encoding/json"
	"log"
	"testing"
	"time"

	"ai-support-be/internal/constant"
	"ai-support-be/internal/dto"
	"ai-support-be/internal/entity"
	"ai-support-be/internal/repository/contract"
	"ai-support-be/internal/repository/specification"
	"ai-support-be/internal/repository/unitofwork"
	"ai-support-be/pkg/agent/escalation"
	"ai-support-be/pkg/agent/knowledge"
	"ai-support-be/pkg/agent/orchestrator"
	"ai-support-be/pkg/agent/router"
	"ai-support-be/pkg/embedding"
	"ai-support-be/pkg/rag/search"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In-memory store shared by the fake repositories below. Specifications
// are resolved by type switch; only the shapes chatService uses exist.

type chatFakeStore struct {
	conversations map[uuid.UUID]*entity.Conversation
	messages      []*entity.Message
	knowledge     []*entity.KnowledgeEntry
}

type chatFakeUow struct{ store *chatFakeStore }

func (u *chatFakeUow) Begin(ctx context.Context) error { return nil }
func (u *chatFakeUow) Commit() error                   { return nil }
func (u *chatFakeUow) Rollback() error                 { return nil }

func (u *chatFakeUow) ConversationRepository() contract.ConversationRepository {
	return &chatFakeConversationRepo{store: u.store}
}
func (u *chatFakeUow) MessageRepository() contract.MessageRepository {
	return &chatFakeMessageRepo{store: u.store}
}
func (u *chatFakeUow) KnowledgeRepository() contract.KnowledgeRepository {
	return &chatFakeKnowledgeRepo{store: u.store}
}
func (u *chatFakeUow) KnowledgeEmbeddingRepository() contract.KnowledgeEmbeddingRepository {
	return nil
}
func (u *chatFakeUow) ExperimentRepository() contract.ExperimentRepository {
	return &chatFakeExperimentRepo{}
}
func (u *chatFakeUow) ModelVersionRepository() contract.ModelVersionRepository { return nil }
func (u *chatFakeUow) FeedbackRepository() contract.FeedbackRepository         { return nil }
func (u *chatFakeUow) AgentActionRepository() contract.AgentActionRepository   { return nil }
func (u *chatFakeUow) AgentUserRepository() contract.AgentUserRepository       { return nil }

type chatFakeFactory struct{ store *chatFakeStore }

func (f *chatFakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &chatFakeUow{store: f.store}
}

type chatFakeConversationRepo struct{ store *chatFakeStore }

func (r *chatFakeConversationRepo) Create(ctx context.Context, c *entity.Conversation) error {
	r.store.conversations[c.Id] = c
	return nil
}

func (r *chatFakeConversationRepo) Update(ctx context.Context, c *entity.Conversation) error {
	r.store.conversations[c.Id] = c
	return nil
}

func (r *chatFakeConversationRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Conversation, error) {
	for _, spec := range specs {
		if byId, ok := spec.(specification.ByID); ok {
			return r.store.conversations[byId.ID], nil
		}
	}
	return nil, nil
}

func (r *chatFakeConversationRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Conversation, error) {
	return nil, nil
}

func (r *chatFakeConversationRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.store.conversations)), nil
}

type chatFakeMessageRepo struct{ store *chatFakeStore }

func (r *chatFakeMessageRepo) Create(ctx context.Context, m *entity.Message) error {
	r.store.messages = append(r.store.messages, m)
	return nil
}

func (r *chatFakeMessageRepo) Update(ctx context.Context, m *entity.Message) error { return nil }

func (r *chatFakeMessageRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Message, error) {
	return nil, nil
}

func (r *chatFakeMessageRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Message, error) {
	return r.store.messages, nil
}

func (r *chatFakeMessageRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.store.messages)), nil
}

type chatFakeKnowledgeRepo struct{ store *chatFakeStore }

func (r *chatFakeKnowledgeRepo) Create(ctx context.Context, e *entity.KnowledgeEntry) error {
	r.store.knowledge = append(r.store.knowledge, e)
	return nil
}

func (r *chatFakeKnowledgeRepo) Update(ctx context.Context, e *entity.KnowledgeEntry) error {
	return nil
}
func (r *chatFakeKnowledgeRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (r *chatFakeKnowledgeRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.KnowledgeEntry, error) {
	return nil, nil
}

func (r *chatFakeKnowledgeRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.KnowledgeEntry, error) {
	return r.store.knowledge, nil
}

func (r *chatFakeKnowledgeRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.store.knowledge)), nil
}

// No active experiment in these tests.
type chatFakeExperimentRepo struct{}

func (r *chatFakeExperimentRepo) Create(ctx context.Context, e *entity.Experiment) error { return nil }
func (r *chatFakeExperimentRepo) Update(ctx context.Context, e *entity.Experiment) error { return nil }
func (r *chatFakeExperimentRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Experiment, error) {
	return nil, nil
}
func (r *chatFakeExperimentRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Experiment, error) {
	return nil, nil
}
func (r *chatFakeExperimentRepo) PauseActive(ctx context.Context) error { return nil }

func newChatServiceUnderTest(store *chatFakeStore) IChatService {
	embedder := embedding.NewService(nil, log.Default())
	retriever := search.NewRetriever(embedder, log.Default())
	classifier := router.NewClassifier(embedder, log.Default())
	knowledgeAgent := knowledge.NewResponder(retriever, nil, 0.65, log.Default())
	escalationAgent := escalation.NewResponder(log.Default())
	pipeline := orchestrator.New(classifier, knowledgeAgent, escalationAgent, 0.6, log.Default())

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	return NewChatService(&chatFakeFactory{store: store}, pipeline, pubSub, "AGENT_ACTION_LOG")
}

func newChatFakeStore() *chatFakeStore {
	return &chatFakeStore{conversations: make(map[uuid.UUID]*entity.Conversation)}
}

func TestChatPayloadCarriesMatchesAndReasoning(t *testing.T) {
	store := newChatFakeStore()
	store.knowledge = append(store.knowledge, &entity.KnowledgeEntry{
		Id:       uuid.New(),
		Title:    "Return Policy",
		Content:  "Our return policy: here is what is covered and how your refund works.",
		Category: "Returns",
	})
	svc := newChatServiceUnderTest(store)

	resp, err := svc.Chat(context.Background(), &dto.ChatRequest{
		CustomerId: "customer_test",
		Message:    "what is your return policy",
	})
	require.NoError(t, err)

	require.NotEmpty(t, resp.MatchedArticles)
	assert.Equal(t, "Return Policy", resp.MatchedArticles[0].Title)
	assert.NotEmpty(t, resp.Reasoning)
	assert.Equal(t, constant.ConversationStatusActive, resp.ConversationStatus)

	// Every field of the payload is always present on the wire.
	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"matched_articles"`)
	assert.Contains(t, string(raw), `"reasoning"`)
}

func TestChatEscalationReportsPostRunStatus(t *testing.T) {
	store := newChatFakeStore()
	conversation := &entity.Conversation{
		Id:         uuid.New(),
		CustomerId: "customer_test",
		Status:     constant.ConversationStatusActive,
		CreatedAt:  time.Now(),
	}
	store.conversations[conversation.Id] = conversation
	svc := newChatServiceUnderTest(store)

	resp, err := svc.Chat(context.Background(), &dto.ChatRequest{
		ConversationId: &conversation.Id,
		CustomerId:     "customer_test",
		Message:        "I want to file a complaint, this is terrible",
	})
	require.NoError(t, err)

	assert.Equal(t, constant.ConversationStatusEscalated, resp.ConversationStatus)
	require.NotNil(t, resp.EscalationReason)
	assert.Equal(t, "Customer complaint requires human attention", *resp.EscalationReason)
	assert.NotNil(t, resp.MatchedArticles)
	assert.Empty(t, resp.MatchedArticles)
	assert.Equal(t, "Customer complaint requires human attention", resp.Reasoning)

	// JSON still carries matched_articles as an empty list, not null.
	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"matched_articles":[]`)
}
