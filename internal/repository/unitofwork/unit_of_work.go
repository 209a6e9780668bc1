package unitofwork

import (
	"context"

	"ai-support-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ConversationRepository() contract.ConversationRepository
	MessageRepository() contract.MessageRepository
	KnowledgeRepository() contract.KnowledgeRepository
	KnowledgeEmbeddingRepository() contract.KnowledgeEmbeddingRepository
	ExperimentRepository() contract.ExperimentRepository
	ModelVersionRepository() contract.ModelVersionRepository
	FeedbackRepository() contract.FeedbackRepository
	AgentActionRepository() contract.AgentActionRepository
	AgentUserRepository() contract.AgentUserRepository
}
