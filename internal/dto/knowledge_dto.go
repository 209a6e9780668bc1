package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateKnowledgeRequest struct {
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content" validate:"required"`
	Category string `json:"category" validate:"required"`
	Tags     string `json:"tags"`
}

type UpdateKnowledgeRequest struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Category *string `json:"category"`
	Tags     *string `json:"tags"`
}

type KnowledgeResponse struct {
	Id        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Category  string     `json:"category"`
	Tags      string     `json:"tags"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type SearchKnowledgeRequest struct {
	Query string `json:"query" validate:"required"`
	TopK  int    `json:"top_k"`
}

type KnowledgeMatchResponse struct {
	Id       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Content  string    `json:"content"`
	Category string    `json:"category"`
	Score    float64   `json:"score"`
}
