package entity

import (
	"time"

	"github.com/google/uuid"
)

// AgentAction is an audit record of a pipeline or human decision,
// persisted asynchronously by the data-logging consumer.
type AgentAction struct {
	Id             uuid.UUID
	ConversationId *uuid.UUID
	MessageId      *uuid.UUID
	ActionType     string
	ActionData     map[string]interface{}
	CreatedAt      time.Time
}
