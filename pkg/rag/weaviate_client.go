package rag

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/weaviate/weaviate-go-client/v4/weaviate"
	"github.com/weaviate/weaviate-go-client/v4/weaviate/auth"
	"github.com/weaviate/weaviate-go-client/v4/weaviate/filters"
	"github.com/weaviate/weaviate-go-client/v4/weaviate/graphql"
	"github.com/weaviate/weaviate/entities/models"
)

// WeaviateConfig holds connection settings for the Weaviate cluster.
type WeaviateConfig struct {
	Host    string            `json:"host"`
	Scheme  string            `json:"scheme"`
	APIKey  string            `json:"api_key"`
	Headers map[string]string `json:"headers"`
	Timeout time.Duration     `json:"timeout"`
}

// WeaviateClient wraps the Weaviate GraphQL surface behind the VectorStore
// interface and adds schema bootstrap and batch insertion for ingestion.
type WeaviateClient struct {
	client      *weaviate.Client
	config      *WeaviateConfig
	logger      *slog.Logger
	healthMutex sync.RWMutex
	healthy     bool
	lastChecked time.Time
}

// NewWeaviateClient creates a Weaviate client. The connection is lazy; use
// Ready to verify reachability.
func NewWeaviateClient(config *WeaviateConfig, logger *slog.Logger) (*WeaviateClient, error) {
	if config == nil {
		return nil, fmt.Errorf("weaviate config cannot be nil")
	}
	if config.Host == "" {
		return nil, fmt.Errorf("weaviate host cannot be empty")
	}
	if config.Scheme == "" {
		config.Scheme = "https"
	}
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}

	var authConfig auth.Config
	if config.APIKey != "" {
		authConfig = auth.ApiKey{Value: config.APIKey}
	}

	client, err := weaviate.NewClient(weaviate.Config{
		Host:       config.Host,
		Scheme:     config.Scheme,
		AuthConfig: authConfig,
		Headers:    config.Headers,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create weaviate client: %w", err)
	}

	return &WeaviateClient{
		client: client,
		config: config,
		logger: logger.With("component", "weaviate-client"),
	}, nil
}

// SearchExact implements the equality-filter tier of the retrieval strategy.
func (wc *WeaviateClient) SearchExact(ctx context.Context, collection, field, value string, fields []string, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 5
	}

	where := filters.Where().
		WithPath([]string{field}).
		WithOperator(filters.Equal).
		WithValueText(value)

	result, err := wc.client.GraphQL().Get().
		WithClassName(collection).
		WithWhere(where).
		WithFields(buildFields(fields)...).
		WithLimit(limit).
		Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("exact lookup on %s.%s failed: %w", collection, field, err)
	}

	records, err := parseRecords(result, collection)
	if err != nil {
		return nil, err
	}

	wc.logger.Debug("exact lookup completed",
		slog.String("collection", collection),
		slog.String("field", field),
		slog.String("value", value),
		slog.Int("rows", len(records)))
	return records, nil
}

// SearchSimilar implements the near-vector fallback tier.
func (wc *WeaviateClient) SearchSimilar(ctx context.Context, collection string, vector []float32, fields []string, limit int, maxDistance float32) ([]Record, error) {
	if limit <= 0 {
		limit = 5
	}

	nearVector := wc.client.GraphQL().NearVectorArgBuilder().WithVector(vector)
	if maxDistance > 0 {
		nearVector = nearVector.WithDistance(maxDistance)
	}

	result, err := wc.client.GraphQL().Get().
		WithClassName(collection).
		WithNearVector(nearVector).
		WithFields(buildFields(fields)...).
		WithLimit(limit).
		Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("similarity search on %s failed: %w", collection, err)
	}

	records, err := parseRecords(result, collection)
	if err != nil {
		return nil, err
	}

	wc.logger.Debug("similarity search completed",
		slog.String("collection", collection),
		slog.Int("rows", len(records)))
	return records, nil
}

// StoreObject is one object to insert during ingestion.
type StoreObject struct {
	Properties map[string]interface{}
	Vector     []float32
}

// BatchInsert inserts objects with client-supplied vectors.
func (wc *WeaviateClient) BatchInsert(ctx context.Context, collection string, objects []StoreObject) error {
	if len(objects) == 0 {
		return nil
	}

	batch := make([]*models.Object, len(objects))
	for i, obj := range objects {
		batch[i] = &models.Object{
			Class:      collection,
			Properties: models.PropertySchema(obj.Properties),
			Vector:     models.C11yVector(obj.Vector),
		}
	}

	resp, err := wc.client.Batch().ObjectsBatcher().WithObjects(batch...).Do(ctx)
	if err != nil {
		return fmt.Errorf("batch insert into %s failed: %w", collection, err)
	}
	for _, res := range resp {
		if res.Result != nil && res.Result.Errors != nil && len(res.Result.Errors.Error) > 0 {
			return fmt.Errorf("batch insert into %s rejected: %s", collection, res.Result.Errors.Error[0].Message)
		}
	}

	wc.logger.Info("batch insert completed",
		slog.String("collection", collection),
		slog.Int("objects", len(objects)))
	return nil
}

// ClassExists reports whether the collection's class is present.
func (wc *WeaviateClient) ClassExists(ctx context.Context, collection string) (bool, error) {
	exists, err := wc.client.Schema().ClassExistenceChecker().WithClassName(collection).Do(ctx)
	if err != nil {
		return false, fmt.Errorf("class existence check for %s failed: %w", collection, err)
	}
	return exists, nil
}

// DeleteClass drops the collection and all its objects.
func (wc *WeaviateClient) DeleteClass(ctx context.Context, collection string) error {
	if err := wc.client.Schema().ClassDeleter().WithClassName(collection).Do(ctx); err != nil {
		return fmt.Errorf("failed to delete class %s: %w", collection, err)
	}
	wc.logger.Info("deleted class", slog.String("collection", collection))
	return nil
}

// CreateClass creates a collection class. Vectors are supplied client-side,
// so every class uses vectorizer "none".
func (wc *WeaviateClient) CreateClass(ctx context.Context, class *models.Class) error {
	err := wc.client.Schema().ClassCreator().WithClass(class).Do(ctx)
	if err != nil {
		if strings.Contains(err.Error(), "already exists") {
			wc.logger.Info("class already exists", slog.String("collection", class.Class))
			return nil
		}
		return fmt.Errorf("failed to create class %s: %w", class.Class, err)
	}
	wc.logger.Info("created class", slog.String("collection", class.Class))
	return nil
}

// Ready checks cluster reachability and caches the outcome for health
// endpoints.
func (wc *WeaviateClient) Ready(ctx context.Context) bool {
	ready, err := wc.client.Misc().ReadyChecker().Do(ctx)
	wc.healthMutex.Lock()
	defer wc.healthMutex.Unlock()
	wc.healthy = err == nil && ready
	wc.lastChecked = time.Now()
	if err != nil {
		wc.logger.Warn("weaviate readiness check failed", slog.String("error", err.Error()))
	}
	return wc.healthy
}

// Healthy returns the last cached readiness outcome.
func (wc *WeaviateClient) Healthy() bool {
	wc.healthMutex.RLock()
	defer wc.healthMutex.RUnlock()
	return wc.healthy
}

func buildFields(names []string) []graphql.Field {
	fields := make([]graphql.Field, len(names))
	for i, name := range names {
		fields[i] = graphql.Field{Name: name}
	}
	return fields
}

// parseRecords extracts flat field→text records from a GraphQL Get response.
func parseRecords(result *models.GraphQLResponse, collection string) ([]Record, error) {
	if len(result.Errors) > 0 {
		return nil, fmt.Errorf("graphql query on %s returned error: %s", collection, result.Errors[0].Message)
	}

	records := make([]Record, 0)
	data, ok := result.Data["Get"].(map[string]interface{})
	if !ok {
		return records, nil
	}
	items, ok := data[collection].([]interface{})
	if !ok {
		return records, nil
	}

	for _, item := range items {
		itemMap, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		record := make(Record, len(itemMap))
		for key, val := range itemMap {
			if str, ok := val.(string); ok {
				record[key] = str
			}
		}
		if len(record) > 0 {
			records = append(records, record)
		}
	}
	return records, nil
}
