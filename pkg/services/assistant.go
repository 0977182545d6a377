// Package services wires the assistant pipeline: extraction, routing,
// retrieval, and synthesis behind a single Ask call.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/paa-ai/skydesk/pkg/config"
	"github.com/paa-ai/skydesk/pkg/flight"
	"github.com/paa-ai/skydesk/pkg/intent"
	"github.com/paa-ai/skydesk/pkg/llm"
	"github.com/paa-ai/skydesk/pkg/monitoring"
	"github.com/paa-ai/skydesk/pkg/rag"
	"github.com/paa-ai/skydesk/pkg/session"
)

// Answer is the outcome of one query: the reply text plus the pipeline
// facts useful for tracing.
type Answer struct {
	SessionID string                                 `json:"session_id"`
	Text      string                                 `json:"answer"`
	Flight    string                                 `json:"flight,omitempty"`
	Intents   []string                               `json:"intents"`
	Retrieval map[intent.Intent]*rag.RetrievalResult `json:"-"`
}

// AssistantService runs the full query pipeline for one deployment. It is
// safe for concurrent use.
type AssistantService struct {
	extractor   *flight.Extractor
	router      *intent.Router
	dispatcher  *rag.Dispatcher
	synthesizer *llm.Synthesizer
	sessions    *session.Manager
	store       *rag.WeaviateClient
	redisCache  *rag.RedisEmbeddingCache
	logger      *slog.Logger

	stopEvictor chan struct{}
}

// NewAssistantService builds the pipeline from configuration, connecting
// to Weaviate and, when configured, Redis.
func NewAssistantService(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*AssistantService, error) {
	if logger == nil {
		logger = slog.Default()
	}

	store, err := rag.NewWeaviateClient(&cfg.Weaviate, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create vector store client: %w", err)
	}

	var redisCache *rag.RedisEmbeddingCache
	if cfg.Embedding.EnableRedisCache {
		redisCache, err = rag.NewRedisEmbeddingCache(ctx, cfg.Embedding.Redis, logger)
		if err != nil {
			// the service runs fine without the shared cache tier
			logger.Warn("redis embedding cache unavailable, continuing without it",
				slog.String("error", err.Error()))
			redisCache = nil
		}
	}

	embedder, err := rag.NewEmbeddingService(&cfg.Embedding, redisCache, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create embedding service: %w", err)
	}

	chatClient, err := llm.NewClient(cfg.Chat, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat client: %w", err)
	}

	var scorer intent.Scorer
	if cfg.EnableLLMScorer {
		scorer = intent.NewLLMScorer(func(ctx context.Context, system, user string) (string, error) {
			return chatClient.Complete(ctx, []llm.ChatMessage{
				{Role: "system", Content: system},
				{Role: "user", Content: user},
			})
		}, logger)
	}

	extractor := flight.NewExtractor()
	router := intent.NewRouter(intent.RouterConfig{
		Fallback:       cfg.FallbackIntent,
		ScoreThreshold: cfg.ScoreThreshold,
	}, scorer, logger)
	dispatcher := rag.NewDispatcher(store, embedder, extractor, cfg.Dispatcher, logger)
	synthesizer := llm.NewSynthesizer(chatClient, llm.NewPromptBuilder(cfg.AuthorityName), logger)

	service := &AssistantService{
		extractor:   extractor,
		router:      router,
		dispatcher:  dispatcher,
		synthesizer: synthesizer,
		sessions:    session.NewManager(cfg.Session),
		store:       store,
		redisCache:  redisCache,
		logger:      logger.With("component", "assistant-service"),
		stopEvictor: make(chan struct{}),
	}
	go service.evictLoop()

	return service, nil
}

// newPipeline assembles a service from prebuilt stages. Used by tests.
func newPipeline(extractor *flight.Extractor, router *intent.Router, dispatcher *rag.Dispatcher, synthesizer *llm.Synthesizer, sessions *session.Manager, logger *slog.Logger) *AssistantService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AssistantService{
		extractor:   extractor,
		router:      router,
		dispatcher:  dispatcher,
		synthesizer: synthesizer,
		sessions:    sessions,
		logger:      logger.With("component", "assistant-service"),
		stopEvictor: make(chan struct{}),
	}
}

// Ask runs one query through the pipeline and records the exchange in the
// session.
func (a *AssistantService) Ask(ctx context.Context, sessionID, query string) *Answer {
	sess := a.sessions.Get(sessionID)

	fl, _ := a.extractor.Extract(query)
	intents := a.router.Route(ctx, query, fl)
	for _, name := range intents.Strings() {
		monitoring.QueriesTotal.WithLabelValues(name).Inc()
	}

	greeting := intents.IsNone()
	var results map[intent.Intent]*rag.RetrievalResult
	if !greeting {
		results = a.dispatcher.Dispatch(ctx, intents, query, fl)
	}

	answer := a.synthesizer.Synthesize(ctx, query, sess.Recent(), results, greeting)
	sess.Append(query, answer)

	out := &Answer{
		SessionID: sess.ID,
		Text:      answer,
		Intents:   intents.Strings(),
		Retrieval: results,
	}
	if fl != nil {
		out.Flight = fl.Canonical()
	}

	a.logger.Info("query answered",
		slog.String("session_id", sess.ID),
		slog.Any("intents", out.Intents),
		slog.String("flight", out.Flight))
	return out
}

// ResetSession clears a session's conversation history.
func (a *AssistantService) ResetSession(sessionID string) {
	a.sessions.Get(sessionID).Clear()
}

// Ready reports whether the vector store answers its readiness probe.
func (a *AssistantService) Ready(ctx context.Context) bool {
	if a.store == nil {
		return true
	}
	return a.store.Ready(ctx)
}

// Shutdown stops background work and closes external connections.
func (a *AssistantService) Shutdown() {
	close(a.stopEvictor)
	if a.redisCache != nil {
		if err := a.redisCache.Close(); err != nil {
			a.logger.Warn("failed to close redis cache", slog.String("error", err.Error()))
		}
	}
}

func (a *AssistantService) evictLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if evicted := a.sessions.EvictIdle(); evicted > 0 {
				a.logger.Debug("idle sessions evicted", slog.Int("count", evicted))
			}
		case <-a.stopEvictor:
			return
		}
	}
}
