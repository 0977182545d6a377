// Package intent classifies free-text passenger queries into retrieval
// intents. Routing is a battery of keyword predicates; an LLM scorer can be
// attached as one more evidence source but never decides on its own.
package intent

import "sort"

// Intent identifies which knowledge domain a query pertains to.
type Intent string

const (
	// IntentFlight targets the flight-status collection (AFDS feed data).
	IntentFlight Intent = "flight"
	// IntentBaggage targets the baggage/policy document collection.
	IntentBaggage Intent = "baggage"
	// IntentWeb targets the crawled official-website collection.
	IntentWeb Intent = "web"
	// IntentNone marks greetings and out-of-scope chat; retrieval is skipped.
	IntentNone Intent = "none"
)

// Set is a set of active intents for one query.
type Set map[Intent]struct{}

// NewSet builds a set from the given intents.
func NewSet(intents ...Intent) Set {
	s := make(Set, len(intents))
	for _, i := range intents {
		s[i] = struct{}{}
	}
	return s
}

// Has reports whether the intent is active.
func (s Set) Has(i Intent) bool {
	_, ok := s[i]
	return ok
}

// Add marks an intent active.
func (s Set) Add(i Intent) {
	s[i] = struct{}{}
}

// IsNone reports whether the set short-circuits retrieval entirely.
func (s Set) IsNone() bool {
	return len(s) == 1 && s.Has(IntentNone)
}

// Sorted returns the active intents in stable order.
func (s Set) Sorted() []Intent {
	out := make([]Intent, 0, len(s))
	for i := range s {
		out = append(out, i)
	}
	sort.Slice(out, func(a, b int) bool { return out[a] < out[b] })
	return out
}

// Strings returns the active intents as plain strings, for logging.
func (s Set) Strings() []string {
	sorted := s.Sorted()
	out := make([]string, len(sorted))
	for i, v := range sorted {
		out[i] = string(v)
	}
	return out
}
