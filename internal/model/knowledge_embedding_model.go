package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

type KnowledgeEmbedding struct {
	Id               uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Document         string          `gorm:"type:text"`
	EmbeddingValue   pgvector.Vector `gorm:"type:vector(768)"` // nomic-embed-text dimensionality
	KnowledgeEntryId uuid.UUID       `gorm:"type:uuid;not null;index"`
	CreatedAt        time.Time       `gorm:"autoCreateTime"`
	UpdatedAt        time.Time       `gorm:"autoUpdateTime"`
}

func (KnowledgeEmbedding) TableName() string {
	return "knowledge_embeddings"
}
