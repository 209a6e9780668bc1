package mapper

import (
	"encoding/json"

	"ai-support-be/internal/entity"
	"ai-support-be/internal/model"
)

type AgentActionMapper struct{}

func NewAgentActionMapper() *AgentActionMapper {
	return &AgentActionMapper{}
}

func (m *AgentActionMapper) ToEntity(a *model.AgentAction) *entity.AgentAction {
	if a == nil {
		return nil
	}

	var data map[string]interface{}
	if len(a.ActionData) > 0 {
		_ = json.Unmarshal(a.ActionData, &data)
	}

	return &entity.AgentAction{
		Id:             a.Id,
		ConversationId: a.ConversationId,
		MessageId:      a.MessageId,
		ActionType:     a.ActionType,
		ActionData:     data,
		CreatedAt:      a.CreatedAt,
	}
}

func (m *AgentActionMapper) ToModel(a *entity.AgentAction) (*model.AgentAction, error) {
	if a == nil {
		return nil, nil
	}

	var data []byte
	if a.ActionData != nil {
		raw, err := json.Marshal(a.ActionData)
		if err != nil {
			return nil, err
		}
		data = raw
	}

	return &model.AgentAction{
		Id:             a.Id,
		ConversationId: a.ConversationId,
		MessageId:      a.MessageId,
		ActionType:     a.ActionType,
		ActionData:     data,
		CreatedAt:      a.CreatedAt,
	}, nil
}
