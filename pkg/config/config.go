// Package config loads the assistant's runtime configuration from the
// environment, with an optional YAML override for the retrieval collection
// settings.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v2"

	"github.com/paa-ai/skydesk/pkg/intent"
	"github.com/paa-ai/skydesk/pkg/llm"
	"github.com/paa-ai/skydesk/pkg/logging"
	"github.com/paa-ai/skydesk/pkg/rag"
	"github.com/paa-ai/skydesk/pkg/session"
)

// Config is the full runtime configuration of the assistant service.
type Config struct {
	ListenAddr      string
	ShutdownTimeout time.Duration

	Logging logging.Config

	Weaviate  rag.WeaviateConfig
	Embedding rag.EmbeddingConfig
	Chat      llm.ClientConfig

	Dispatcher rag.DispatcherConfig
	Session    session.ManagerConfig

	// Router behavior. FallbackIntent is used when no predicate fires and
	// the query is not a greeting.
	FallbackIntent  intent.Intent
	ScoreThreshold  float64
	EnableLLMScorer bool

	AuthorityName string

	// CollectionsFile optionally points at a YAML file overriding the
	// per-intent collection settings.
	CollectionsFile string
}

// DefaultConfig returns the baseline configuration.
func DefaultConfig() *Config {
	return &Config{
		ListenAddr:      ":8080",
		ShutdownTimeout: 15 * time.Second,
		Logging: logging.Config{
			Level:       "info",
			Format:      "json",
			ServiceName: "skydesk-assistant",
		},
		Weaviate: rag.WeaviateConfig{
			Host:   "localhost:8080",
			Scheme: "http",
		},
		Embedding: rag.EmbeddingConfig{
			APIEndpoint: "https://api.openai.com/v1/embeddings",
			ModelName:   "text-embedding-3-small",
		},
		Chat: llm.ClientConfig{
			APIEndpoint: "https://api.openai.com/v1/chat/completions",
			ModelName:   "gpt-4o-mini",
		},
		Dispatcher:     rag.DefaultDispatcherConfig(),
		Session:        session.ManagerConfig{},
		FallbackIntent: intent.IntentWeb,
		ScoreThreshold: 0.5,
		AuthorityName:  "PAA (Pakistan Airports Authority)",
	}
}

// LoadFromEnv builds the config from defaults, environment overrides, and
// the optional collections file.
func LoadFromEnv() (*Config, error) {
	cfg := DefaultConfig()

	if val := os.Getenv("LISTEN_ADDR"); val != "" {
		cfg.ListenAddr = val
	}
	if val := os.Getenv("SHUTDOWN_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.ShutdownTimeout = d
		}
	}

	if val := os.Getenv("LOG_LEVEL"); val != "" {
		cfg.Logging.Level = logging.LogLevel(val)
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		cfg.Logging.Format = val
	}

	if val := os.Getenv("WEAVIATE_HOST"); val != "" {
		cfg.Weaviate.Host = val
	}
	if val := os.Getenv("WEAVIATE_SCHEME"); val != "" {
		cfg.Weaviate.Scheme = val
	}
	if val := os.Getenv("WEAVIATE_API_KEY"); val != "" {
		cfg.Weaviate.APIKey = val
	}

	if val := os.Getenv("OPENAI_API_KEY"); val != "" {
		cfg.Embedding.APIKey = val
		cfg.Chat.APIKey = val
	}
	if val := os.Getenv("EMBEDDING_API_ENDPOINT"); val != "" {
		cfg.Embedding.APIEndpoint = val
	}
	if val := os.Getenv("EMBEDDING_MODEL"); val != "" {
		cfg.Embedding.ModelName = val
	}
	if val := os.Getenv("EMBEDDING_CACHE_SIZE"); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			cfg.Embedding.CacheSize = n
		}
	}

	if val := os.Getenv("REDIS_ADDR"); val != "" {
		cfg.Embedding.EnableRedisCache = true
		cfg.Embedding.Redis.Addr = val
	}
	if val := os.Getenv("REDIS_PASSWORD"); val != "" {
		cfg.Embedding.Redis.Password = val
	}
	if val := os.Getenv("REDIS_DB"); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			cfg.Embedding.Redis.DB = n
		}
	}
	if val := os.Getenv("REDIS_TTL"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Embedding.Redis.TTL = d
		}
	}

	if val := os.Getenv("CHAT_API_ENDPOINT"); val != "" {
		cfg.Chat.APIEndpoint = val
	}
	if val := os.Getenv("CHAT_MODEL"); val != "" {
		cfg.Chat.ModelName = val
	}
	if val := os.Getenv("CHAT_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Chat.Timeout = d
		}
	}

	if val := os.Getenv("FALLBACK_INTENT"); val != "" {
		cfg.FallbackIntent = intent.Intent(strings.ToLower(val))
	}
	if val := os.Getenv("SCORE_THRESHOLD"); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			cfg.ScoreThreshold = f
		}
	}
	if val := os.Getenv("ENABLE_LLM_SCORER"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.EnableLLMScorer = b
		}
	}

	if val := os.Getenv("SESSION_WINDOW_SIZE"); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			cfg.Session.WindowSize = n
		}
	}
	if val := os.Getenv("SESSION_MAX_IDLE"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Session.MaxIdle = d
		}
	}

	if val := os.Getenv("AUTHORITY_NAME"); val != "" {
		cfg.AuthorityName = val
	}
	if val := os.Getenv("COLLECTIONS_FILE"); val != "" {
		cfg.CollectionsFile = val
	}

	if cfg.CollectionsFile != "" {
		if err := cfg.loadCollectionsFile(cfg.CollectionsFile); err != nil {
			return nil, fmt.Errorf("failed to load collections file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// collectionsFile is the YAML shape of the collection override file.
type collectionsFile struct {
	MaxConcurrency int `yaml:"max_concurrency"`
	Collections    map[string]struct {
		Collection      string   `yaml:"collection"`
		Fields          []string `yaml:"fields"`
		TextField       string   `yaml:"text_field"`
		ExactMatchField string   `yaml:"exact_match_field"`
		Limit           int      `yaml:"limit"`
		DistanceCutoff  float32  `yaml:"distance_cutoff"`
	} `yaml:"collections"`
}

// loadCollectionsFile overlays the YAML settings onto the dispatcher
// config. Only the intents named in the file are touched.
func (c *Config) loadCollectionsFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var parsed collectionsFile
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return err
	}

	if parsed.MaxConcurrency > 0 {
		c.Dispatcher.MaxConcurrency = parsed.MaxConcurrency
	}
	for name, override := range parsed.Collections {
		in := intent.Intent(strings.ToLower(name))
		current, ok := c.Dispatcher.Collections[in]
		if !ok {
			current = rag.CollectionConfig{}
		}
		if override.Collection != "" {
			current.Collection = override.Collection
		}
		if len(override.Fields) > 0 {
			current.Fields = override.Fields
		}
		if override.TextField != "" {
			current.TextField = override.TextField
		}
		if override.ExactMatchField != "" {
			current.ExactMatchField = override.ExactMatchField
		}
		if override.Limit > 0 {
			current.Limit = override.Limit
		}
		if override.DistanceCutoff > 0 {
			current.DistanceCutoff = override.DistanceCutoff
		}
		c.Dispatcher.Collections[in] = current
	}
	return nil
}

// Validate checks the fields the service cannot run without.
func (c *Config) Validate() error {
	if c.ListenAddr == "" {
		return fmt.Errorf("listen address cannot be empty")
	}
	if c.Weaviate.Host == "" {
		return fmt.Errorf("weaviate host cannot be empty")
	}
	if c.Embedding.APIEndpoint == "" {
		return fmt.Errorf("embedding endpoint cannot be empty")
	}
	if c.Chat.APIEndpoint == "" {
		return fmt.Errorf("chat endpoint cannot be empty")
	}
	switch c.FallbackIntent {
	case intent.IntentFlight, intent.IntentBaggage, intent.IntentWeb, intent.IntentNone:
	default:
		return fmt.Errorf("unknown fallback intent %q", c.FallbackIntent)
	}
	if c.ScoreThreshold < 0 || c.ScoreThreshold > 1 {
		return fmt.Errorf("score threshold must be within [0, 1], got %v", c.ScoreThreshold)
	}
	for in, cc := range c.Dispatcher.Collections {
		if cc.Collection == "" {
			return fmt.Errorf("collection name for intent %q cannot be empty", in)
		}
		if cc.TextField == "" {
			return fmt.Errorf("text field for intent %q cannot be empty", in)
		}
	}
	return nil
}
