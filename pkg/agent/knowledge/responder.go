package knowledge

import (
	"context"
	"fmt"
	"log"
	"strings"

	"ai-support-be/internal/repository/unitofwork"
	"ai-support-be/pkg/agent"
	"ai-support-be/pkg/llm"
	"ai-support-be/pkg/rag/search"
)

const (
	topKMatches      = 3
	contextEntries   = 2
	contextSnippet   = 300
	fallbackSnippet  = 200
	relevanceCutoff  = 0.3
	systemPromptBase = "You are a helpful customer support assistant. Answer the customer's question based on the knowledge base context provided. Be concise, friendly, and professional. If the context doesn't fully answer the question, acknowledge what you know and offer to connect them with a human agent for more details."
)

// Responder is the knowledge agent: it drafts a reply from the
// knowledge base and scores its own confidence so the HITL gate can
// decide whether the draft goes out unreviewed.
type Responder struct {
	retriever         *search.Retriever
	provider          llm.LLMProvider
	autoSendThreshold float64
	logger            *log.Logger
}

func NewResponder(retriever *search.Retriever, provider llm.LLMProvider, autoSendThreshold float64, logger *log.Logger) *Responder {
	return &Responder{
		retriever:         retriever,
		provider:          provider,
		autoSendThreshold: autoSendThreshold,
		logger:            logger,
	}
}

// Respond drafts a reply for one customer message. The confidence score
// is derived solely from retrieval quality, not from the LLM output: a
// fluent answer over weak matches must still land in human review.
func (r *Responder) Respond(ctx context.Context, uow unitofwork.UnitOfWork, message string) (*agent.KnowledgeResult, error) {
	matches, err := r.retriever.Retrieve(ctx, uow, message, topKMatches)
	if err != nil {
		return nil, fmt.Errorf("knowledge retrieval: %w", err)
	}

	confidence := search.ConfidenceFrom(matches)

	reply, generated := r.generate(ctx, message, matches)
	if !generated {
		reply = r.fallbackReply(message, matches)
	}

	return &agent.KnowledgeResult{
		Reply:          reply,
		Confidence:     confidence,
		MatchedEntries: matches,
		Reasoning:      fmt.Sprintf("Matched %d knowledge entries (confidence: %.2f)", len(matches), confidence),
		AutoSend:       confidence >= r.autoSendThreshold,
	}, nil
}

func (r *Responder) generate(ctx context.Context, message string, matches []search.Match) (string, bool) {
	if r.provider == nil {
		return "", false
	}

	prompt := systemPromptBase
	if kbContext := buildContext(matches); kbContext != "" {
		prompt += "\n\nKnowledge base context:\n" + kbContext
	}

	reply, err := r.provider.Chat(ctx, []llm.Message{
		{Role: "system", Content: prompt},
		{Role: "user", Content: message},
	}, llm.WithTemperature(0.3))
	if err != nil {
		r.logger.Printf("[KNOWLEDGE] LLM generation failed, using template reply: %v", err)
		return "", false
	}

	reply = strings.TrimSpace(reply)
	if reply == "" {
		return "", false
	}
	return reply, true
}

// buildContext folds the strongest matches into the prompt. Entries are
// truncated so a verbose article cannot crowd out the second match.
func buildContext(matches []search.Match) string {
	var sb strings.Builder
	for i, m := range matches {
		if i >= contextEntries {
			break
		}
		sb.WriteString(fmt.Sprintf("**%s**\n%s\n\n", m.Title, snippet(m.Content, contextSnippet)))
	}
	return sb.String()
}

// fallbackReply answers without the LLM. A sufficiently strong match
// gets quoted directly; otherwise a canned template keyed on the
// message's topic keywords.
func (r *Responder) fallbackReply(message string, matches []search.Match) string {
	if len(matches) > 0 && matches[0].Score > relevanceCutoff {
		best := matches[0]
		return fmt.Sprintf("Based on our %s policy:\n\n%s...\n\nWould you like more specific information about this?",
			best.Category, snippet(best.Content, fallbackSnippet))
	}
	return templateFor(message)
}

func snippet(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	return text[:limit]
}
