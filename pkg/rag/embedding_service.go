package rag

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// EmbeddingConfig holds settings for the embedding service.
type EmbeddingConfig struct {
	APIKey      string `json:"api_key"`
	APIEndpoint string `json:"api_endpoint"`
	ModelName   string `json:"model_name"`

	RequestTimeout time.Duration `json:"request_timeout"`

	// L1 in-memory cache size (entries); L2 Redis cache is optional.
	CacheSize        int              `json:"cache_size"`
	EnableRedisCache bool             `json:"enable_redis_cache"`
	Redis            RedisCacheConfig `json:"redis"`
}

// EmbeddingService turns text into vectors through an OpenAI-compatible
// embeddings endpoint, with a two-tier cache in front.
type EmbeddingService struct {
	config     *EmbeddingConfig
	logger     *slog.Logger
	httpClient *http.Client
	l1         *memoryCache
	l2         *RedisEmbeddingCache
}

// NewEmbeddingService creates the embedding service. redisCache may be nil.
func NewEmbeddingService(config *EmbeddingConfig, redisCache *RedisEmbeddingCache, logger *slog.Logger) (*EmbeddingService, error) {
	if config == nil {
		return nil, fmt.Errorf("embedding config cannot be nil")
	}
	if config.APIEndpoint == "" {
		return nil, fmt.Errorf("embedding endpoint cannot be empty")
	}
	if config.ModelName == "" {
		config.ModelName = "text-embedding-3-small"
	}
	if config.RequestTimeout == 0 {
		config.RequestTimeout = 30 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &EmbeddingService{
		config:     config,
		logger:     logger.With("component", "embedding-service"),
		httpClient: &http.Client{Timeout: config.RequestTimeout},
		l1:         newMemoryCache(config.CacheSize),
		l2:         redisCache,
	}, nil
}

type embeddingAPIRequest struct {
	Model string   `json:"model"`
	Input []string `json:"input"`
}

type embeddingAPIResponse struct {
	Data []struct {
		Embedding []float32 `json:"embedding"`
	} `json:"data"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Embed returns the embedding vector for a text, consulting L1 and L2
// caches before calling the backend.
func (s *EmbeddingService) Embed(ctx context.Context, text string) ([]float32, error) {
	if text == "" {
		return nil, fmt.Errorf("cannot embed empty text")
	}

	key := s.cacheKey(text)
	if vector, ok := s.l1.Get(key); ok {
		return vector, nil
	}
	if s.l2 != nil {
		if vector, ok := s.l2.Get(ctx, key); ok {
			s.l1.Set(key, vector)
			return vector, nil
		}
	}

	vector, err := s.embedRemote(ctx, text)
	if err != nil {
		return nil, err
	}

	s.l1.Set(key, vector)
	if s.l2 != nil {
		s.l2.Set(ctx, key, vector)
	}
	return vector, nil
}

// EmbedBatch embeds several texts in one backend call, bypassing the cache.
// Used by ingestion, where texts are fresh by construction.
func (s *EmbeddingService) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	payload, err := json.Marshal(embeddingAPIRequest{Model: s.config.ModelName, Input: texts})
	if err != nil {
		return nil, fmt.Errorf("failed to encode embedding request: %w", err)
	}

	parsed, err := s.post(ctx, payload)
	if err != nil {
		return nil, err
	}
	if len(parsed.Data) != len(texts) {
		return nil, fmt.Errorf("embedding backend returned %d vectors for %d texts", len(parsed.Data), len(texts))
	}

	vectors := make([][]float32, len(parsed.Data))
	for i, d := range parsed.Data {
		vectors[i] = d.Embedding
	}
	return vectors, nil
}

func (s *EmbeddingService) embedRemote(ctx context.Context, text string) ([]float32, error) {
	payload, err := json.Marshal(embeddingAPIRequest{Model: s.config.ModelName, Input: []string{text}})
	if err != nil {
		return nil, fmt.Errorf("failed to encode embedding request: %w", err)
	}

	parsed, err := s.post(ctx, payload)
	if err != nil {
		return nil, err
	}
	if len(parsed.Data) == 0 {
		return nil, fmt.Errorf("embedding backend returned no vectors")
	}
	return parsed.Data[0].Embedding, nil
}

func (s *EmbeddingService) post(ctx context.Context, payload []byte) (*embeddingAPIResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.config.APIEndpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build embedding request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.config.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.config.APIKey)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("embedding request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedding response: %w", err)
	}

	var parsed embeddingAPIResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode embedding response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		if parsed.Error != nil {
			return nil, fmt.Errorf("embedding backend returned %d: %s", resp.StatusCode, parsed.Error.Message)
		}
		return nil, fmt.Errorf("embedding backend returned %d", resp.StatusCode)
	}
	return &parsed, nil
}

func (s *EmbeddingService) cacheKey(text string) string {
	h := fnv.New64a()
	h.Write([]byte(s.config.ModelName))
	h.Write([]byte{0})
	h.Write([]byte(text))
	return fmt.Sprintf("emb:%x", h.Sum64())
}
