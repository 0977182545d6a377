package intent

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"github.com/paa-ai/skydesk/pkg/flight"
)

// keyword vocabularies, matched on word boundaries over the lowercased query
var (
	flightKeywords = []string{
		"status", "gate", "schedule", "scheduled", "arrival", "arrive",
		"arriving", "departure", "depart", "departing", "delayed", "delay",
		"landed", "terminal", "boarding", "cancelled",
	}
	baggageKeywords = []string{
		"baggage", "luggage", "liquid", "liquids", "allowance", "hand carry",
		"handcarry", "carry-on", "check-in", "checkin", "prohibited",
		"restricted", "policy", "rules", "weight",
	}
	webKeywords = []string{
		"notam", "notams", "tender", "tenders", "official", "website", "link",
		"links", "form", "forms", "complaint", "complaints", "lost and found",
		"career", "careers", "download",
	}

	greetingWords = map[string]struct{}{
		"hi": {}, "hello": {}, "hey": {}, "salaam": {}, "salam": {},
		"assalam": {}, "assalamualaikum": {}, "greetings": {}, "good": {},
		"morning": {}, "afternoon": {}, "evening": {}, "there": {},
		"thanks": {}, "thank": {}, "you": {},
	}

	tokenPattern = regexp.MustCompile(`[a-z]+`)
)

// Scorer contributes intent-confidence evidence for a query. Implementations
// must treat their own failures as "no evidence", never as a routing error.
type Scorer interface {
	Score(ctx context.Context, query string) map[Intent]float64
}

// RouterConfig controls routing behavior.
type RouterConfig struct {
	// Fallback is used when no predicate fires and the query is not a
	// greeting. Guessing keeps the assistant available at the cost of
	// precision; the choice is deliberate and surfaced here so it can be
	// changed without touching routing code.
	Fallback Intent
	// ScoreThreshold is the minimum scorer confidence that activates an
	// intent. Matches the 0.5 cutoff the supervisor prompt was tuned for.
	ScoreThreshold float64
}

// DefaultRouterConfig returns the production routing defaults.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		Fallback:       IntentWeb,
		ScoreThreshold: 0.5,
	}
}

// Router classifies queries into intent sets. Routing is total: it cannot
// fail, only be imprecise.
type Router struct {
	config RouterConfig
	scorer Scorer
	logger *slog.Logger
}

// NewRouter creates a router. scorer may be nil, in which case only the
// keyword predicates contribute.
func NewRouter(config RouterConfig, scorer Scorer, logger *slog.Logger) *Router {
	if config.Fallback == "" {
		config.Fallback = IntentWeb
	}
	if config.ScoreThreshold <= 0 {
		config.ScoreThreshold = 0.5
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Router{config: config, scorer: scorer, logger: logger.With("component", "intent-router")}
}

// Route returns the non-empty intent set for a query. fl carries the
// already-extracted canonical flight, if any; a recognizable flight number is
// itself flight evidence.
func (r *Router) Route(ctx context.Context, query string, fl *flight.CanonicalFlight) Set {
	if isGreeting(query) {
		return NewSet(IntentNone)
	}

	lowered := strings.ToLower(query)
	active := NewSet()

	if fl != nil || anyKeyword(lowered, flightKeywords) {
		active.Add(IntentFlight)
	}
	if anyKeyword(lowered, baggageKeywords) {
		active.Add(IntentBaggage)
	}
	if anyKeyword(lowered, webKeywords) {
		active.Add(IntentWeb)
	}

	if r.scorer != nil {
		for in, score := range r.scorer.Score(ctx, query) {
			if score >= r.config.ScoreThreshold {
				active.Add(in)
			}
		}
	}

	if len(active) == 0 {
		r.logger.Debug("no routing predicate fired, using fallback",
			slog.String("query", query),
			slog.String("fallback", string(r.config.Fallback)))
		active.Add(r.config.Fallback)
	}

	return active
}

// isGreeting reports whether the query consists solely of greeting words.
func isGreeting(query string) bool {
	tokens := tokenPattern.FindAllString(strings.ToLower(query), -1)
	if len(tokens) == 0 || len(tokens) > 5 {
		return false
	}
	for _, tok := range tokens {
		if _, ok := greetingWords[tok]; !ok {
			return false
		}
	}
	return true
}

func anyKeyword(lowered string, keywords []string) bool {
	for _, kw := range keywords {
		if containsWord(lowered, kw) {
			return true
		}
	}
	return false
}

// containsWord matches needle on letter boundaries so that "status" fires in
// "flight status?" but "hi" does not fire in "history".
func containsWord(haystack, needle string) bool {
	for start := 0; ; {
		idx := strings.Index(haystack[start:], needle)
		if idx < 0 {
			return false
		}
		idx += start
		leftOK := idx == 0 || !isLetter(haystack[idx-1])
		right := idx + len(needle)
		rightOK := right >= len(haystack) || !isLetter(haystack[right])
		if leftOK && rightOK {
			return true
		}
		start = idx + 1
	}
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
