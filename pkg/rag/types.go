// Package rag implements the retrieval side of the assistant: the Weaviate
// collections, the embedding service, and the per-intent retrieval
// dispatcher with its exact-then-similar strategy.
package rag

import (
	"context"

	"github.com/paa-ai/skydesk/pkg/intent"
)

// Record is a flat field→text mapping returned by the vector store. The
// store's object IDs are opaque to this layer.
type Record map[string]string

// RetrievalTier records which lookup strategy produced a result.
type RetrievalTier string

const (
	// TierExact means the equality filter on the structured field answered.
	TierExact RetrievalTier = "exact"
	// TierSimilarity means the near-vector fallback answered.
	TierSimilarity RetrievalTier = "similarity"
	// TierNone means no lookup produced rows (including downgraded errors).
	TierNone RetrievalTier = "none"
)

// RetrievalResult is the per-intent outcome of one dispatch call. Created
// fresh per query and discarded after synthesis.
type RetrievalResult struct {
	Intent   intent.Intent `json:"intent"`
	Snippets []string      `json:"snippets"`
	Found    bool          `json:"found"`
	Tier     RetrievalTier `json:"tier"`
	SubQuery string        `json:"sub_query"`
}

// VectorStore is the opaque query surface of the vector database.
type VectorStore interface {
	// SearchExact runs an equality filter on a structured field.
	SearchExact(ctx context.Context, collection, field, value string, fields []string, limit int) ([]Record, error)
	// SearchSimilar runs a nearest-neighbor query over embedding vectors.
	// maxDistance <= 0 disables the cutoff.
	SearchSimilar(ctx context.Context, collection string, vector []float32, fields []string, limit int, maxDistance float32) ([]Record, error)
}

// Embedder is the opaque text→vector function.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}
