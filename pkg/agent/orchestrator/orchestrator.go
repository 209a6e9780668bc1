package orchestrator

import (
	"context"
	"fmt"
	"log"

	"ai-support-be/internal/constant"
	"ai-support-be/internal/repository/unitofwork"
	"ai-support-be/pkg/agent"
	"ai-support-be/pkg/agent/escalation"
	"ai-support-be/pkg/agent/knowledge"
	"ai-support-be/pkg/agent/router"

	"github.com/google/uuid"
)

// Outcome pairs the responding agent's result with the router verdict
// that produced it. The intent confidence is the router's, distinct
// from the result's own confidence score.
type Outcome struct {
	Result           agent.Result
	Intent           string
	IntentConfidence float64
}

// Orchestrator runs the multi-agent pipeline for one customer message:
// the router classifies, the escalation policy decides, and either the
// knowledge or the escalation agent produces the reply. Technical
// support gets a second chance through the knowledge agent, with its
// own higher bar on retrieval confidence.
type Orchestrator struct {
	classifier           *router.Classifier
	knowledgeAgent       *knowledge.Responder
	escalationAgent      *escalation.Responder
	techSupportThreshold float64
	logger               *log.Logger
}

func New(
	classifier *router.Classifier,
	knowledgeAgent *knowledge.Responder,
	escalationAgent *escalation.Responder,
	techSupportThreshold float64,
	logger *log.Logger,
) *Orchestrator {
	return &Orchestrator{
		classifier:           classifier,
		knowledgeAgent:       knowledgeAgent,
		escalationAgent:      escalationAgent,
		techSupportThreshold: techSupportThreshold,
		logger:               logger,
	}
}

// Respond routes one customer message through the pipeline. All
// persistence happens inside the caller's unit of work.
func (o *Orchestrator) Respond(ctx context.Context, uow unitofwork.UnitOfWork, conversationId uuid.UUID, message string) (*Outcome, error) {
	classification := o.classifier.Classify(message)
	intent := classification.Intent
	confidence := classification.Confidence

	o.logger.Printf("[ORCHESTRATOR] Conversation %s classified as %s (%.2f)", conversationId, intent, confidence)

	if router.ShouldEscalate(intent, confidence, message) {
		reason := router.EscalationReason(intent, confidence, message)
		result, err := o.escalationAgent.Escalate(ctx, uow, conversationId, reason)
		if err != nil {
			return nil, fmt.Errorf("escalation agent: %w", err)
		}
		return &Outcome{Result: result, Intent: intent, IntentConfidence: confidence}, nil
	}

	result, err := o.knowledgeAgent.Respond(ctx, uow, message)
	if err != nil {
		return nil, fmt.Errorf("knowledge agent: %w", err)
	}

	// Technical support answers below the dedicated threshold are not
	// worth a review round-trip; escalate straight away.
	if intent == constant.IntentTechnicalSupport && result.Confidence < o.techSupportThreshold {
		reason := fmt.Sprintf("Technical support query with low confidence (%.2f)", result.Confidence)
		escalated, err := o.escalationAgent.Escalate(ctx, uow, conversationId, reason)
		if err != nil {
			return nil, fmt.Errorf("escalation agent: %w", err)
		}
		return &Outcome{Result: escalated, Intent: intent, IntentConfidence: confidence}, nil
	}

	return &Outcome{Result: result, Intent: intent, IntentConfidence: confidence}, nil
}
