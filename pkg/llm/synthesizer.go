package llm

import (
	"context"
	"log/slog"
	"time"

	"github.com/paa-ai/skydesk/pkg/intent"
	"github.com/paa-ai/skydesk/pkg/monitoring"
	"github.com/paa-ai/skydesk/pkg/rag"
)

// ApologyMessage is returned verbatim when the chat backend is down. There
// is no fallback answer source once the LLM is unavailable, so the failure
// surfaces as text rather than an error.
const ApologyMessage = "I'm sorry, I'm unable to answer right now. Please try again in a few moments."

// Synthesizer turns retrieval results and conversation history into the
// final answer.
type Synthesizer struct {
	client  ChatClient
	prompts *PromptBuilder
	logger  *slog.Logger
}

// NewSynthesizer wires the synthesizer.
func NewSynthesizer(client ChatClient, prompts *PromptBuilder, logger *slog.Logger) *Synthesizer {
	if prompts == nil {
		prompts = NewPromptBuilder("")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Synthesizer{
		client:  client,
		prompts: prompts,
		logger:  logger.With("component", "synthesizer"),
	}
}

// Synthesize produces the answer for a query. greeting selects the small
// talk prompt and skips the context block. history carries the recent
// turns of the session, oldest first.
func (s *Synthesizer) Synthesize(ctx context.Context, query string, history []ChatMessage, results map[intent.Intent]*rag.RetrievalResult, greeting bool) string {
	start := time.Now()
	defer func() {
		monitoring.SynthesisDuration.Observe(time.Since(start).Seconds())
	}()

	var system string
	if greeting {
		system = s.prompts.BuildGreetingInstruction()
	} else {
		system = s.prompts.BuildSystemInstruction(results)
	}

	messages := make([]ChatMessage, 0, len(history)+2)
	messages = append(messages, ChatMessage{Role: "system", Content: system})
	messages = append(messages, history...)
	messages = append(messages, ChatMessage{Role: "user", Content: query})

	answer, err := s.client.Complete(ctx, messages)
	if err != nil {
		monitoring.LLMFailuresTotal.Inc()
		s.logger.Error("chat completion failed", slog.String("error", err.Error()))
		return ApologyMessage
	}
	return answer
}
