package rag

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/paa-ai/skydesk/pkg/flight"
	"github.com/paa-ai/skydesk/pkg/intent"
	"github.com/paa-ai/skydesk/pkg/monitoring"
)

// CollectionConfig carries the retrieval settings for one intent: which
// collection to query, which fields to pull, and the limits/cutoffs that
// used to be scattered as per-script kwargs.
type CollectionConfig struct {
	Collection      string   `json:"collection"`
	Fields          []string `json:"fields"`
	TextField       string   `json:"text_field"`
	ExactMatchField string   `json:"exact_match_field,omitempty"`
	Limit           int      `json:"limit"`
	DistanceCutoff  float32  `json:"distance_cutoff"`
}

// DispatcherConfig maps each retrieval intent to its collection settings.
type DispatcherConfig struct {
	Collections    map[intent.Intent]CollectionConfig `json:"collections"`
	MaxConcurrency int                                `json:"max_concurrency"`
}

// DefaultDispatcherConfig returns the production collection wiring.
func DefaultDispatcherConfig() DispatcherConfig {
	return DispatcherConfig{
		MaxConcurrency: 3,
		Collections: map[intent.Intent]CollectionConfig{
			intent.IntentFlight: {
				Collection:      DefaultFlightCollection,
				Fields:          []string{"flightNumber", "gateNumber", "statusDesc", "scheduledTime", "summary"},
				TextField:       "summary",
				ExactMatchField: "flightNumber",
				Limit:           3,
				DistanceCutoff:  0.6,
			},
			intent.IntentBaggage: {
				Collection:     DefaultPolicyCollection,
				Fields:         []string{"content", "source"},
				TextField:      "content",
				Limit:          5,
				DistanceCutoff: 0.7,
			},
			intent.IntentWeb: {
				Collection:     DefaultWebCollection,
				Fields:         []string{"content", "urlHref"},
				TextField:      "content",
				Limit:          5,
				DistanceCutoff: 0.7,
			},
		},
	}
}

// Dispatcher runs per-intent retrieval: an exact equality lookup first when
// a canonical flight is known, then a similarity fallback. Store failures
// downgrade to not-found; retrieval can degrade the answer but never abort
// it.
type Dispatcher struct {
	store     VectorStore
	embedder  Embedder
	extractor *flight.Extractor
	config    DispatcherConfig
	logger    *slog.Logger
}

// NewDispatcher wires the dispatcher. extractor is used for sub-query
// derivation (stripping flight tokens, airline name substitution).
func NewDispatcher(store VectorStore, embedder Embedder, extractor *flight.Extractor, config DispatcherConfig, logger *slog.Logger) *Dispatcher {
	if config.MaxConcurrency <= 0 {
		config.MaxConcurrency = 3
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{
		store:     store,
		embedder:  embedder,
		extractor: extractor,
		config:    config,
		logger:    logger.With("component", "retrieval-dispatcher"),
	}
}

// Dispatch fans the active intents out to their collections and joins the
// results. NONE sets return an empty map without touching the store.
func (d *Dispatcher) Dispatch(ctx context.Context, intents intent.Set, query string, fl *flight.CanonicalFlight) map[intent.Intent]*RetrievalResult {
	results := make(map[intent.Intent]*RetrievalResult)
	if intents.IsNone() {
		return results
	}

	active := make([]intent.Intent, 0, len(intents))
	for _, in := range intents.Sorted() {
		if in == intent.IntentNone {
			continue
		}
		if _, ok := d.config.Collections[in]; !ok {
			d.logger.Warn("no collection configured for intent", slog.String("intent", string(in)))
			continue
		}
		active = append(active, in)
	}

	var mutex sync.Mutex
	var wg sync.WaitGroup
	sem := make(chan struct{}, d.config.MaxConcurrency)

	for _, in := range active {
		wg.Add(1)
		go func(in intent.Intent) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			result := d.retrieve(ctx, in, query, fl)
			mutex.Lock()
			results[in] = result
			mutex.Unlock()
		}(in)
	}
	wg.Wait()

	return results
}

// retrieve runs the two-tier lookup for one intent.
func (d *Dispatcher) retrieve(ctx context.Context, in intent.Intent, query string, fl *flight.CanonicalFlight) *RetrievalResult {
	start := time.Now()
	cfg := d.config.Collections[in]
	subQuery := d.deriveSubQuery(in, query, fl)

	result := &RetrievalResult{
		Intent:   in,
		Tier:     TierNone,
		SubQuery: subQuery,
	}
	defer func() {
		monitoring.RecordRetrieval(string(in), string(result.Tier), result.Found, time.Since(start))
	}()

	// tier 1: deterministic equality lookup for a well-formed flight number
	if in == intent.IntentFlight && fl != nil && cfg.ExactMatchField != "" {
		records, err := d.store.SearchExact(ctx, cfg.Collection, cfg.ExactMatchField, fl.Canonical(), cfg.Fields, cfg.Limit)
		if err != nil {
			d.logger.Warn("exact lookup failed, falling back to similarity",
				slog.String("intent", string(in)),
				slog.String("error", err.Error()))
		} else if len(records) > 0 {
			result.Snippets = collectSnippets(records, cfg.TextField)
			result.Found = len(result.Snippets) > 0
			result.Tier = TierExact
			return result
		}
	}

	// tier 2: similarity fallback
	vector, err := d.embedder.Embed(ctx, subQuery)
	if err != nil {
		d.logger.Warn("sub-query embedding failed, intent downgraded to not-found",
			slog.String("intent", string(in)),
			slog.String("error", err.Error()))
		return result
	}

	records, err := d.store.SearchSimilar(ctx, cfg.Collection, vector, cfg.Fields, cfg.Limit, cfg.DistanceCutoff)
	if err != nil {
		d.logger.Warn("similarity search failed, intent downgraded to not-found",
			slog.String("intent", string(in)),
			slog.String("error", err.Error()))
		return result
	}

	result.Snippets = collectSnippets(records, cfg.TextField)
	if len(result.Snippets) > 0 {
		result.Found = true
		result.Tier = TierSimilarity
	}
	return result
}

// deriveSubQuery sharpens the query for the target collection.
func (d *Dispatcher) deriveSubQuery(in intent.Intent, query string, fl *flight.CanonicalFlight) string {
	switch in {
	case intent.IntentFlight:
		if fl != nil {
			return fl.Canonical()
		}
		return query
	case intent.IntentBaggage:
		stripped := query
		if d.extractor != nil {
			stripped = d.extractor.StripFlightTokens(query)
		}
		// the airline's full name retrieves policy chunks better than digits
		if fl != nil {
			name := flight.AirlineName(fl.Airline)
			if !strings.Contains(strings.ToLower(stripped), strings.ToLower(name)) {
				stripped = strings.TrimSpace(stripped + " " + name)
			}
		}
		if stripped == "" {
			return query
		}
		return stripped
	default:
		return query
	}
}

func collectSnippets(records []Record, textField string) []string {
	snippets := make([]string, 0, len(records))
	for _, record := range records {
		if text := strings.TrimSpace(record[textField]); text != "" {
			snippets = append(snippets, text)
		}
	}
	return snippets
}
