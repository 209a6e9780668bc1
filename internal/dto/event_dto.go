package dto

import "github.com/google/uuid"

// PublishEmbedKnowledgeMessage asks the consumer to (re)generate the
// embedding for one knowledge entry.
type PublishEmbedKnowledgeMessage struct {
	EntryId uuid.UUID `json:"entry_id"`
}

// AgentActionMessage is the async audit-log payload emitted after each
// pipeline run or human review action.
type AgentActionMessage struct {
	ConversationId *uuid.UUID             `json:"conversation_id,omitempty"`
	MessageId      *uuid.UUID             `json:"message_id,omitempty"`
	ActionType     string                 `json:"action_type"`
	ActionData     map[string]interface{} `json:"action_data"`
}
