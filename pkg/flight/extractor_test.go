package flight

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractCanonicalForms(t *testing.T) {
	e := NewExtractor()

	tests := []struct {
		query string
		want  string
	}{
		{"What is the status of SV726?", "SV726"},
		{"sv-726", "SV726"},
		{"SV 726", "SV726"},
		{"sv.726 arrival time", "SV726"},
		{"is pk300 on time", "PK300"},
		{"9P520 gate number", "9P520"},
		{"status of EK2103 today", "EK2103"},
	}

	for _, tt := range tests {
		got, ok := e.Extract(tt.query)
		require.True(t, ok, "query %q should resolve", tt.query)
		assert.Equal(t, tt.want, got.Canonical(), "query %q", tt.query)
	}
}

func TestExtractCanonicalInvariant(t *testing.T) {
	e := NewExtractor()
	pattern := regexp.MustCompile(`^[A-Z0-9]{2}[0-9]{2,4}$`)

	for _, q := range []string{"SV726", "pia 300", "Saudia 726", "emirates 2103"} {
		got, ok := e.Extract(q)
		require.True(t, ok)
		assert.Regexp(t, pattern, got.Canonical())
	}
}

func TestExtractAliasPlusNumber(t *testing.T) {
	e := NewExtractor()

	tests := []struct {
		query string
		want  string
	}{
		{"Saudia 726", "SV726"},
		{"when does the PIA 300 land", "PK300"},
		{"emirates flight 2103", "EK2103"},
		{"fly jinnah 520 departure", "9P520"},
		{"Qatar Airways 632 status", "QR632"},
	}

	for _, tt := range tests {
		got, ok := e.Extract(tt.query)
		require.True(t, ok, "query %q should resolve", tt.query)
		assert.Equal(t, tt.want, got.Canonical(), "query %q", tt.query)
	}
}

func TestExtractCanonicalTakesPrecedenceOverAlias(t *testing.T) {
	e := NewExtractor()

	// both a written identifier and an alias are present; the identifier wins
	got, ok := e.Extract("is the Saudia codeshare on EK612 delayed")
	require.True(t, ok)
	assert.Equal(t, "EK612", got.Canonical())
}

func TestExtractUnresolvable(t *testing.T) {
	e := NewExtractor()

	for _, q := range []string{
		"what items are banned in hand carry",
		"726 when does it land", // digits but no carrier context
		"hello there",
		"",
	} {
		_, ok := e.Extract(q)
		assert.False(t, ok, "query %q should not resolve", q)
	}
}

func TestExtractDeterministicAliasOrder(t *testing.T) {
	// two extractors built independently must resolve overlapping aliases
	// the same way
	a := NewExtractor()
	b := NewExtractor()

	for _, q := range []string{"saudia 726", "gulf air 12", "air arabia 404"} {
		fa, oka := a.Extract(q)
		fb, okb := b.Extract(q)
		require.Equal(t, oka, okb)
		if oka {
			assert.Equal(t, fa.Canonical(), fb.Canonical(), "query %q", q)
		}
	}
}

func TestMatchAirline(t *testing.T) {
	e := NewExtractor()

	code, ok := e.MatchAirline("baggage allowance for PIA")
	require.True(t, ok)
	assert.Equal(t, "PK", code)

	_, ok = e.MatchAirline("baggage allowance for my lunch")
	assert.False(t, ok, "alias matching must respect word boundaries")
}

func TestStripFlightTokens(t *testing.T) {
	e := NewExtractor()

	assert.Equal(t, "BAGGAGE RULES FOR", e.StripFlightTokens("baggage rules for SV726"))
	assert.Equal(t, "LIQUID ALLOWANCE ON", e.StripFlightTokens("liquid allowance on pk-300"))
}

func TestAirlineName(t *testing.T) {
	assert.Equal(t, "Saudi Airline", AirlineName("SV"))
	assert.Equal(t, "Pakistan International Airline", AirlineName("PK"))
	assert.Equal(t, "Q9", AirlineName("Q9"))
}

func TestDescribeCodes(t *testing.T) {
	assert.Equal(t, "Passenger Flight", DescribeNature("PAX"))
	assert.Equal(t, "International", DescribeSector("I"))
	assert.Equal(t, "Landed", DescribeStatus("LD"))
	assert.Equal(t, "??", DescribeStatus("??"))
}
