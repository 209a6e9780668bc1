package agent

import (
	"ai-support-be/internal/constant"
	"ai-support-be/pkg/rag/search"
)

// Result is the tagged outcome of one agent run. The two variants are
// KnowledgeResult and EscalationResult; the HITL gate in the calling
// layer only needs this shared surface.
type Result interface {
	Response() string
	ConfidenceScore() float64
	ShouldAutoSend() bool
	AgentType() string
	Reason() string
}

// KnowledgeResult is produced by the knowledge agent.
type KnowledgeResult struct {
	Reply          string
	Confidence     float64
	MatchedEntries []search.Match
	Reasoning      string
	AutoSend       bool
}

var _ Result = &KnowledgeResult{}

func (r *KnowledgeResult) Response() string         { return r.Reply }
func (r *KnowledgeResult) ConfidenceScore() float64 { return r.Confidence }
func (r *KnowledgeResult) ShouldAutoSend() bool     { return r.AutoSend }
func (r *KnowledgeResult) AgentType() string        { return constant.AgentTypeKnowledge }
func (r *KnowledgeResult) Reason() string           { return r.Reasoning }

// EscalationResult is produced by the escalation agent. Its confidence
// is pinned at 1.0: that is certainty of the routing decision, never a
// statement about reply quality.
type EscalationResult struct {
	Reply              string
	EscalationReason   string
	ConversationStatus string
}

var _ Result = &EscalationResult{}

func (r *EscalationResult) Response() string         { return r.Reply }
func (r *EscalationResult) ConfidenceScore() float64 { return 1.0 }
func (r *EscalationResult) ShouldAutoSend() bool     { return true }
func (r *EscalationResult) AgentType() string        { return constant.AgentTypeEscalation }
func (r *EscalationResult) Reason() string           { return r.EscalationReason }
