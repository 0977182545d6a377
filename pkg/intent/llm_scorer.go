package intent

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
)

// CompletionFunc is the minimal LLM surface the scorer needs: a system
// instruction plus a user prompt, returning the completion text.
type CompletionFunc func(ctx context.Context, system, user string) (string, error)

// LLMScorer asks a supervisor model to score the query against the three
// retrieval domains. Scores arrive as JSON keyed by the legacy agent names
// (XML = flight feed, Docs = policy documents, Web = crawled site).
type LLMScorer struct {
	complete CompletionFunc
	logger   *slog.Logger
}

// NewLLMScorer wraps a completion function as a routing evidence source.
func NewLLMScorer(complete CompletionFunc, logger *slog.Logger) *LLMScorer {
	if logger == nil {
		logger = slog.Default()
	}
	return &LLMScorer{complete: complete, logger: logger.With("component", "llm-scorer")}
}

const scorerSystemInstruction = "You are a PAA Supervisor Agent."

const scorerPromptTemplate = `Analyze query: %q
If the query looks like a flight number (e.g., SV726, PK300), prioritize XML.
Scores (0-1): XML (Flight info), Web (Links), Docs (Baggage/Policy).
Return JSON: {"XML": score, "Web": score, "Docs": score}`

// Score returns per-intent confidence evidence. Any failure (transport,
// malformed JSON) yields an empty map: absent evidence, never an error.
func (s *LLMScorer) Score(ctx context.Context, query string) map[Intent]float64 {
	raw, err := s.complete(ctx, scorerSystemInstruction, fmt.Sprintf(scorerPromptTemplate, query))
	if err != nil {
		s.logger.Warn("intent scoring call failed", slog.String("error", err.Error()))
		return nil
	}

	var scores struct {
		XML  float64 `json:"XML"`
		Web  float64 `json:"Web"`
		Docs float64 `json:"Docs"`
	}
	if err := json.Unmarshal([]byte(extractJSON(raw)), &scores); err != nil {
		s.logger.Warn("intent scoring returned malformed JSON",
			slog.String("error", err.Error()),
			slog.String("raw", raw))
		return nil
	}

	return map[Intent]float64{
		IntentFlight:  scores.XML,
		IntentBaggage: scores.Docs,
		IntentWeb:     scores.Web,
	}
}

// extractJSON pulls the first JSON object out of a completion that may be
// wrapped in prose or a markdown fence.
func extractJSON(raw string) string {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return raw
	}
	return raw[start : end+1]
}
