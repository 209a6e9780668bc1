package constant

// Conversation lifecycle states. Once escalated, only a human action
// moves the conversation back to active.
const (
	ConversationStatusActive    = "active"
	ConversationStatusResolved  = "resolved"
	ConversationStatusEscalated = "escalated"
)

// Message types for the HITL review workflow.
const (
	MessageTypeCustomer    = "customer"
	MessageTypeAIDraft     = "ai_draft"     // AI generated, awaiting agent review
	MessageTypeAgentEdited = "agent_edited" // agent modified an AI draft
	MessageTypeFinal       = "final"        // sent to the customer
	MessageTypeAgentOnly   = "agent_only"   // human agent note, no AI involvement
)

// Agents in the multi-agent pipeline.
const (
	AgentTypeRouter     = "router"
	AgentTypeKnowledge  = "knowledge"
	AgentTypeEscalation = "escalation"
)

// Intent categories recognized by the router agent.
const (
	IntentFAQ              = "faq"
	IntentOrderInquiry     = "order_inquiry"
	IntentTechnicalSupport = "technical_support"
	IntentComplaint        = "complaint"
	IntentGeneral          = "general"
)

// Agent feedback ratings on AI drafts.
const (
	FeedbackRatingHelpful          = "helpful"
	FeedbackRatingNotHelpful       = "not_helpful"
	FeedbackRatingNeedsImprovement = "needs_improvement"
)

// Audit action types recorded by the data-logging consumer.
const (
	ActionTypePipelineRun          = "pipeline_run"
	ActionTypeDraftApproved        = "draft_approved"
	ActionTypeDraftEdited          = "draft_edited"
	ActionTypeConversationResolved = "conversation_resolved"
)

// Experiment lifecycle.
const (
	ExperimentStatusActive    = "active"
	ExperimentStatusPaused    = "paused"
	ExperimentStatusCompleted = "completed"
)
