package rag

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEmbeddingBackend(t *testing.T, calls *int32) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(calls, 1)

		var req embeddingAPIRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		resp := embeddingAPIResponse{}
		for range req.Input {
			resp.Data = append(resp.Data, struct {
				Embedding []float32 `json:"embedding"`
			}{Embedding: []float32{0.5, 0.25}})
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
}

func TestEmbedCachesRepeatedTexts(t *testing.T) {
	var calls int32
	backend := newEmbeddingBackend(t, &calls)
	defer backend.Close()

	service, err := NewEmbeddingService(&EmbeddingConfig{APIEndpoint: backend.URL}, nil, nil)
	require.NoError(t, err)

	first, err := service.Embed(context.Background(), "baggage allowance")
	require.NoError(t, err)
	second, err := service.Embed(context.Background(), "baggage allowance")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestEmbedRejectsEmptyText(t *testing.T) {
	service, err := NewEmbeddingService(&EmbeddingConfig{APIEndpoint: "http://localhost:1"}, nil, nil)
	require.NoError(t, err)

	_, err = service.Embed(context.Background(), "")
	assert.Error(t, err)
}

func TestEmbedBatchReturnsVectorPerText(t *testing.T) {
	var calls int32
	backend := newEmbeddingBackend(t, &calls)
	defer backend.Close()

	service, err := NewEmbeddingService(&EmbeddingConfig{APIEndpoint: backend.URL}, nil, nil)
	require.NoError(t, err)

	vectors, err := service.EmbedBatch(context.Background(), []string{"one", "two", "three"})
	require.NoError(t, err)
	require.Len(t, vectors, 3)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestEmbedSurfacesBackendError(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]string{"message": "rate limited"},
		})
	}))
	defer backend.Close()

	service, err := NewEmbeddingService(&EmbeddingConfig{APIEndpoint: backend.URL}, nil, nil)
	require.NoError(t, err)

	_, err = service.Embed(context.Background(), "anything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited")
}

func TestMemoryCacheEvictsOldest(t *testing.T) {
	cache := newMemoryCache(2)
	cache.Set("a", []float32{1})
	cache.Set("b", []float32{2})
	cache.Set("c", []float32{3})

	_, ok := cache.Get("a")
	assert.False(t, ok)
	_, ok = cache.Get("c")
	assert.True(t, ok)
	assert.Equal(t, 2, cache.Len())
}
