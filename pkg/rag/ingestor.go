package rag

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/paa-ai/skydesk/pkg/intent"
)

// IngestorConfig names the target collections and controls whether they
// are dropped and recreated before loading.
type IngestorConfig struct {
	Collections map[intent.Intent]CollectionConfig
	Recreate    bool
	BatchSize   int
}

// Ingestor loads the three knowledge sources into Weaviate: AFDS flight
// feeds, policy PDFs, and authority web pages.
type Ingestor struct {
	store    *WeaviateClient
	embedder *EmbeddingService
	loader   *DocumentLoader
	chunker  *ChunkingService
	config   IngestorConfig
	logger   *slog.Logger
}

// NewIngestor wires the ingestion pipeline.
func NewIngestor(store *WeaviateClient, embedder *EmbeddingService, loader *DocumentLoader, chunker *ChunkingService, config IngestorConfig, logger *slog.Logger) *Ingestor {
	if config.BatchSize <= 0 {
		config.BatchSize = 64
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Ingestor{
		store:    store,
		embedder: embedder,
		loader:   loader,
		chunker:  chunker,
		config:   config,
		logger:   logger.With("component", "ingestor"),
	}
}

// EnsureSchema creates (or recreates) the configured collection classes.
func (ing *Ingestor) EnsureSchema(ctx context.Context) error {
	flightName := ing.collectionName(intent.IntentFlight, DefaultFlightCollection)
	policyName := ing.collectionName(intent.IntentBaggage, DefaultPolicyCollection)
	webName := ing.collectionName(intent.IntentWeb, DefaultWebCollection)

	classes := CollectionClasses(flightName, policyName, webName)
	return ing.store.EnsureCollections(ctx, classes, ing.config.Recreate)
}

// IngestFlights parses AFDS feed content and loads one object per flight
// record, embedding the record summary. Returns the number of records
// loaded.
func (ing *Ingestor) IngestFlights(ctx context.Context, feed string) (int, error) {
	records := ParseAFDS(feed)
	if len(records) == 0 {
		return 0, nil
	}

	collection := ing.collectionName(intent.IntentFlight, DefaultFlightCollection)
	total := 0
	for start := 0; start < len(records); start += ing.config.BatchSize {
		end := start + ing.config.BatchSize
		if end > len(records) {
			end = len(records)
		}
		batch := records[start:end]

		summaries := make([]string, len(batch))
		for i, record := range batch {
			summaries[i] = record.Summary()
		}
		vectors, err := ing.embedder.EmbedBatch(ctx, summaries)
		if err != nil {
			return total, fmt.Errorf("failed to embed flight summaries: %w", err)
		}

		objects := make([]StoreObject, len(batch))
		for i, record := range batch {
			objects[i] = StoreObject{
				Properties: map[string]interface{}{
					"flightNumber":  record.FlightNumber,
					"direction":     record.Direction,
					"airport":       record.Airport,
					"gateNumber":    record.GateNumber,
					"statusDesc":    record.StatusDesc,
					"scheduledTime": record.ScheduledTime,
					"summary":       summaries[i],
				},
				Vector: vectors[i],
			}
		}
		if err := ing.store.BatchInsert(ctx, collection, objects); err != nil {
			return total, fmt.Errorf("failed to insert flight batch: %w", err)
		}
		total += len(batch)
	}

	ing.logger.Info("flight feed ingested",
		slog.String("collection", collection),
		slog.Int("records", total))
	return total, nil
}

// IngestPolicyFiles loads each PDF, chunks it, and inserts the chunks with
// the source file name attached.
func (ing *Ingestor) IngestPolicyFiles(ctx context.Context, paths []string) (int, error) {
	collection := ing.collectionName(intent.IntentBaggage, DefaultPolicyCollection)
	total := 0

	for _, path := range paths {
		text, err := ing.loader.LoadPDF(path)
		if err != nil {
			ing.logger.Warn("skipping unreadable policy document",
				slog.String("path", path),
				slog.String("error", err.Error()))
			continue
		}

		source := filepath.Base(path)
		chunks := ing.chunker.Chunk(text)
		count, err := ing.insertChunks(ctx, collection, chunks, func(chunk string) map[string]interface{} {
			return map[string]interface{}{"content": chunk, "source": source}
		})
		if err != nil {
			return total, fmt.Errorf("failed to ingest %s: %w", path, err)
		}
		total += count
		ing.logger.Info("policy document ingested",
			slog.String("source", source),
			slog.Int("chunks", count))
	}
	return total, nil
}

// IngestWebPages crawls each URL and inserts its text chunks, each chunk
// prefixed with its source URL so answers can cite the page.
func (ing *Ingestor) IngestWebPages(ctx context.Context, urls []string) (int, error) {
	collection := ing.collectionName(intent.IntentWeb, DefaultWebCollection)
	total := 0

	for _, url := range urls {
		url = strings.TrimSpace(url)
		if url == "" {
			continue
		}

		text, err := ing.loader.LoadWebPage(ctx, url)
		if err != nil {
			ing.logger.Warn("skipping unreachable page",
				slog.String("url", url),
				slog.String("error", err.Error()))
			continue
		}

		chunks := ing.chunker.Chunk(text)
		count, err := ing.insertChunks(ctx, collection, chunks, func(chunk string) map[string]interface{} {
			return map[string]interface{}{
				"content": fmt.Sprintf("Source: %s | %s", url, chunk),
				"urlHref": url,
			}
		})
		if err != nil {
			return total, fmt.Errorf("failed to ingest %s: %w", url, err)
		}
		total += count
		ing.logger.Info("page ingested",
			slog.String("url", url),
			slog.Int("chunks", count))
	}
	return total, nil
}

// insertChunks embeds chunks in batches and inserts them with properties
// produced by props. The chunk itself is embedded, not the decorated
// content.
func (ing *Ingestor) insertChunks(ctx context.Context, collection string, chunks []string, props func(chunk string) map[string]interface{}) (int, error) {
	total := 0
	for start := 0; start < len(chunks); start += ing.config.BatchSize {
		end := start + ing.config.BatchSize
		if end > len(chunks) {
			end = len(chunks)
		}
		batch := chunks[start:end]

		vectors, err := ing.embedder.EmbedBatch(ctx, batch)
		if err != nil {
			return total, err
		}

		objects := make([]StoreObject, len(batch))
		for i, chunk := range batch {
			objects[i] = StoreObject{Properties: props(chunk), Vector: vectors[i]}
		}
		if err := ing.store.BatchInsert(ctx, collection, objects); err != nil {
			return total, err
		}
		total += len(batch)
	}
	return total, nil
}

func (ing *Ingestor) collectionName(in intent.Intent, fallback string) string {
	if cfg, ok := ing.config.Collections[in]; ok && cfg.Collection != "" {
		return cfg.Collection
	}
	return fallback
}
