package intent

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paa-ai/skydesk/pkg/flight"
)

func newTestRouter(scorer Scorer) *Router {
	return NewRouter(DefaultRouterConfig(), scorer, nil)
}

func TestRouteGreetings(t *testing.T) {
	r := newTestRouter(nil)

	for _, q := range []string{"hi", "hello", "Hello there!", "salaam", "good morning", "thank you"} {
		set := r.Route(context.Background(), q, nil)
		assert.True(t, set.IsNone(), "query %q should be a greeting", q)
	}
}

func TestRouteGreetingWordInsideLongerQuery(t *testing.T) {
	r := newTestRouter(nil)

	// "hi" inside "history" must not short-circuit; routing falls back
	set := r.Route(context.Background(), "history of the airport", nil)
	assert.False(t, set.IsNone())
}

func TestRouteFlightKeywords(t *testing.T) {
	r := newTestRouter(nil)

	for _, q := range []string{
		"what is the status of my flight",
		"which gate does it leave from",
		"arrival time please",
		"departure schedule for today",
	} {
		set := r.Route(context.Background(), q, nil)
		assert.True(t, set.Has(IntentFlight), "query %q", q)
	}
}

func TestRouteFlightNumberIsFlightEvidence(t *testing.T) {
	r := newTestRouter(nil)
	fl := &flight.CanonicalFlight{Airline: "SV", Number: "726"}

	set := r.Route(context.Background(), "SV726?", fl)
	assert.True(t, set.Has(IntentFlight))
	assert.False(t, set.Has(IntentBaggage))
}

func TestRouteBaggagePlusFlight(t *testing.T) {
	r := newTestRouter(nil)
	fl := &flight.CanonicalFlight{Airline: "SV", Number: "726"}

	set := r.Route(context.Background(), "baggage rules for SV726", fl)
	assert.True(t, set.Has(IntentFlight))
	assert.True(t, set.Has(IntentBaggage))
}

func TestRouteBaggageOnly(t *testing.T) {
	r := newTestRouter(nil)

	set := r.Route(context.Background(), "baggage allowance for PIA", nil)
	assert.Equal(t, []Intent{IntentBaggage}, set.Sorted())
}

func TestRouteWebKeywords(t *testing.T) {
	r := newTestRouter(nil)

	for _, q := range []string{
		"where can I find the NOTAM page",
		"official tender documents",
		"how do I file a complaint",
	} {
		set := r.Route(context.Background(), q, nil)
		assert.True(t, set.Has(IntentWeb), "query %q", q)
	}
}

func TestRouteFallbackWhenNothingFires(t *testing.T) {
	cfg := DefaultRouterConfig()
	cfg.Fallback = IntentFlight
	r := NewRouter(cfg, nil, nil)

	set := r.Route(context.Background(), "tell me something about the airport food", nil)
	assert.Equal(t, []Intent{IntentFlight}, set.Sorted())
}

type stubScorer struct {
	scores map[Intent]float64
}

func (s stubScorer) Score(context.Context, string) map[Intent]float64 { return s.scores }

func TestRouteScorerContributesEvidence(t *testing.T) {
	scorer := stubScorer{scores: map[Intent]float64{
		IntentWeb:     0.9,
		IntentBaggage: 0.2,
	}}
	r := newTestRouter(scorer)

	set := r.Route(context.Background(), "what is the status of SV726",
		&flight.CanonicalFlight{Airline: "SV", Number: "726"})

	// keyword predicate keeps FLIGHT, scorer adds WEB, low score ignored
	assert.True(t, set.Has(IntentFlight))
	assert.True(t, set.Has(IntentWeb))
	assert.False(t, set.Has(IntentBaggage))
}

func TestRouteIdempotent(t *testing.T) {
	r := newTestRouter(nil)
	q := "baggage rules for SV726"
	fl := &flight.CanonicalFlight{Airline: "SV", Number: "726"}

	first := r.Route(context.Background(), q, fl)
	second := r.Route(context.Background(), q, fl)
	assert.Equal(t, first.Sorted(), second.Sorted())
}

func TestLLMScorerParsesScores(t *testing.T) {
	complete := func(ctx context.Context, system, user string) (string, error) {
		return `Here you go: {"XML": 0.9, "Web": 0.1, "Docs": 0.4}`, nil
	}
	s := NewLLMScorer(complete, nil)

	scores := s.Score(context.Background(), "SV726 status")
	require.NotNil(t, scores)
	assert.InDelta(t, 0.9, scores[IntentFlight], 1e-9)
	assert.InDelta(t, 0.1, scores[IntentWeb], 1e-9)
	assert.InDelta(t, 0.4, scores[IntentBaggage], 1e-9)
}

func TestLLMScorerDowngradesFailures(t *testing.T) {
	failing := func(ctx context.Context, system, user string) (string, error) {
		return "", errors.New("upstream down")
	}
	assert.Nil(t, NewLLMScorer(failing, nil).Score(context.Background(), "q"))

	garbled := func(ctx context.Context, system, user string) (string, error) {
		return "not json at all", nil
	}
	assert.Nil(t, NewLLMScorer(garbled, nil).Score(context.Background(), "q"))
}

func TestSetHelpers(t *testing.T) {
	s := NewSet(IntentWeb, IntentFlight)
	assert.Equal(t, []Intent{IntentFlight, IntentWeb}, s.Sorted())
	assert.Equal(t, []string{"flight", "web"}, s.Strings())
	assert.False(t, s.IsNone())
	assert.True(t, NewSet(IntentNone).IsNone())
}
