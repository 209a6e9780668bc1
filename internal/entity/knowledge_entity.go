package entity

import (
	"time"

	"github.com/google/uuid"
)

type KnowledgeEntry struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title     string    `gorm:"index"`
	Content   string    `gorm:"type:text"`
	Category  string    `gorm:"index"`
	Tags      string    // comma-separated
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// KnowledgeEmbedding is the vector representation of an entry,
// regenerated whenever title or content changes.
type KnowledgeEmbedding struct {
	Id               uuid.UUID
	Document         string
	EmbeddingValue   []float32
	KnowledgeEntryId uuid.UUID
	CreatedAt        time.Time
	UpdatedAt        *time.Time
}
