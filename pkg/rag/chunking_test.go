package rag

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkShortTextSingleChunk(t *testing.T) {
	s := NewChunkingService(DefaultChunkingConfig())
	chunks := s.Chunk("Liquids up to 100ml are allowed in hand luggage.")
	require.Len(t, chunks, 1)
	assert.Equal(t, "Liquids up to 100ml are allowed in hand luggage.", chunks[0])
}

func TestChunkEmptyInput(t *testing.T) {
	s := NewChunkingService(DefaultChunkingConfig())
	assert.Empty(t, s.Chunk(""))
	assert.Empty(t, s.Chunk("   \n\t  "))
}

func TestChunkRespectsSizeLimit(t *testing.T) {
	s := NewChunkingService(ChunkingConfig{ChunkSize: 100, ChunkOverlap: 20})
	text := strings.Repeat("The passenger must present a valid boarding pass. ", 40)

	chunks := s.Chunk(text)
	require.Greater(t, len(chunks), 1)
	for _, chunk := range chunks {
		assert.LessOrEqual(t, utf8.RuneCountInString(chunk), 100)
	}
}

func TestChunkPrefersSentenceBoundaries(t *testing.T) {
	s := NewChunkingService(ChunkingConfig{ChunkSize: 60, ChunkOverlap: 10})
	text := "First sentence about baggage. Second sentence about gates. Third sentence about check-in desks."

	chunks := s.Chunk(text)
	require.Greater(t, len(chunks), 1)
	assert.True(t, strings.HasSuffix(chunks[0], "."))
}

func TestChunkHandlesMultiByteRunes(t *testing.T) {
	s := NewChunkingService(ChunkingConfig{ChunkSize: 50, ChunkOverlap: 10})
	text := strings.Repeat("سامان کی اجازت تیس کلو ہے۔ ", 30)

	for _, chunk := range s.Chunk(text) {
		assert.True(t, utf8.ValidString(chunk))
	}
}

func TestChunkDefaultsAppliedForBadConfig(t *testing.T) {
	s := NewChunkingService(ChunkingConfig{ChunkSize: -5, ChunkOverlap: 5000})
	chunks := s.Chunk(strings.Repeat("word ", 500))
	assert.NotEmpty(t, chunks)
}

func TestCleanTextStripsControlCharacters(t *testing.T) {
	assert.Equal(t, "gate 12", CleanText("ga\x00te\x01 12"))
	assert.Equal(t, "line1\nline2\ttab", CleanText("line1\nline2\ttab"))
}
