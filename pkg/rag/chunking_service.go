package rag

import (
	"strings"
	"unicode/utf8"
)

// ChunkingConfig controls how ingested documents are split before
// embedding.
type ChunkingConfig struct {
	ChunkSize    int `json:"chunk_size"`
	ChunkOverlap int `json:"chunk_overlap"`
}

// DefaultChunkingConfig returns the splitter settings used for policy
// documents and scraped pages.
func DefaultChunkingConfig() ChunkingConfig {
	return ChunkingConfig{ChunkSize: 1000, ChunkOverlap: 200}
}

// ChunkingService splits document text into overlapping chunks. Splits
// prefer paragraph then sentence then word boundaries and never cut a
// multi-byte rune in half.
type ChunkingService struct {
	config ChunkingConfig
}

// NewChunkingService validates and applies defaults to the config.
func NewChunkingService(config ChunkingConfig) *ChunkingService {
	if config.ChunkSize <= 0 {
		config.ChunkSize = 1000
	}
	if config.ChunkOverlap < 0 || config.ChunkOverlap >= config.ChunkSize {
		config.ChunkOverlap = config.ChunkSize / 5
	}
	return &ChunkingService{config: config}
}

// Chunk splits text into overlapping chunks of at most ChunkSize runes.
// Whitespace-only input yields no chunks.
func (s *ChunkingService) Chunk(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	runes := []rune(text)
	if len(runes) <= s.config.ChunkSize {
		return []string{text}
	}

	var chunks []string
	step := s.config.ChunkSize - s.config.ChunkOverlap
	for start := 0; start < len(runes); start += step {
		end := start + s.config.ChunkSize
		if end >= len(runes) {
			chunk := strings.TrimSpace(string(runes[start:]))
			if chunk != "" {
				chunks = append(chunks, chunk)
			}
			break
		}

		cut := s.findBreak(runes, start, end)
		chunk := strings.TrimSpace(string(runes[start:cut]))
		if chunk != "" {
			chunks = append(chunks, chunk)
		}
	}
	return chunks
}

// findBreak walks back from end looking for a natural boundary inside the
// last fifth of the window. Falls back to the hard cut.
func (s *ChunkingService) findBreak(runes []rune, start, end int) int {
	floor := end - s.config.ChunkSize/5
	if floor < start+1 {
		floor = start + 1
	}

	// paragraph, then sentence, then any whitespace
	for i := end; i > floor; i-- {
		if runes[i-1] == '\n' {
			return i
		}
	}
	for i := end; i > floor; i-- {
		if runes[i-1] == '.' || runes[i-1] == '!' || runes[i-1] == '?' {
			return i
		}
	}
	for i := end; i > floor; i-- {
		if runes[i-1] == ' ' || runes[i-1] == '\t' {
			return i
		}
	}
	return end
}

// CleanText strips control characters that break XML and JSON payloads,
// keeping tabs and newlines, and validates UTF-8.
func CleanText(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r == utf8.RuneError {
			continue
		}
		if r < 0x20 && r != '\n' && r != '\r' && r != '\t' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
