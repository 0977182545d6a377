package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/paa-ai/skydesk/pkg/config"
	"github.com/paa-ai/skydesk/pkg/logging"
	"github.com/paa-ai/skydesk/pkg/rag"
)

func main() {
	var (
		flightsGlob = flag.String("flights", "", "glob of AFDS XML feed files to ingest")
		policiesDir = flag.String("policies", "", "directory of policy PDF files to ingest")
		urlsArg     = flag.String("urls", "", "comma-separated page URLs to crawl and ingest")
		recreate    = flag.Bool("recreate", false, "drop and recreate collections before loading")
		timeout     = flag.Duration("timeout", 30*time.Minute, "overall ingestion deadline")
	)
	flag.Parse()

	cfg, err := config.LoadFromEnv()
	if err != nil {
		slog.Error("Failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}
	cfg.Logging.ServiceName = "skydesk-ingest"
	logger := logging.NewStructuredLogger(cfg.Logging)

	if *flightsGlob == "" && *policiesDir == "" && *urlsArg == "" {
		logger.Error("Nothing to do: pass -flights, -policies, or -urls")
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	store, err := rag.NewWeaviateClient(&cfg.Weaviate, logger.Logger)
	if err != nil {
		logger.Error("Failed to create vector store client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	embedder, err := rag.NewEmbeddingService(&cfg.Embedding, nil, logger.Logger)
	if err != nil {
		logger.Error("Failed to create embedding service", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ingestor := rag.NewIngestor(
		store,
		embedder,
		rag.NewDocumentLoader(0),
		rag.NewChunkingService(rag.DefaultChunkingConfig()),
		rag.IngestorConfig{Collections: cfg.Dispatcher.Collections, Recreate: *recreate},
		logger.Logger,
	)

	if err := ingestor.EnsureSchema(ctx); err != nil {
		logger.Error("Failed to prepare collections", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if *flightsGlob != "" {
		paths, err := filepath.Glob(*flightsGlob)
		if err != nil || len(paths) == 0 {
			logger.Error("No feed files match", slog.String("glob", *flightsGlob))
			os.Exit(1)
		}
		total := 0
		for _, path := range paths {
			raw, err := os.ReadFile(path)
			if err != nil {
				logger.Error("Failed to read feed file", slog.String("path", path), slog.String("error", err.Error()))
				os.Exit(1)
			}
			count, err := ingestor.IngestFlights(ctx, string(raw))
			if err != nil {
				logger.Error("Flight ingestion failed", slog.String("path", path), slog.String("error", err.Error()))
				os.Exit(1)
			}
			total += count
		}
		logger.Info("Flight ingestion complete", slog.Int("records", total))
	}

	if *policiesDir != "" {
		paths, err := filepath.Glob(filepath.Join(*policiesDir, "*.pdf"))
		if err != nil || len(paths) == 0 {
			logger.Error("No policy documents found", slog.String("dir", *policiesDir))
			os.Exit(1)
		}
		count, err := ingestor.IngestPolicyFiles(ctx, paths)
		if err != nil {
			logger.Error("Policy ingestion failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("Policy ingestion complete", slog.Int("chunks", count))
	}

	if *urlsArg != "" {
		urls := strings.Split(*urlsArg, ",")
		count, err := ingestor.IngestWebPages(ctx, urls)
		if err != nil {
			logger.Error("Web ingestion failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("Web ingestion complete", slog.Int("chunks", count))
	}
}
