package flight

import (
	"regexp"
	"sort"
	"strings"
)

// CanonicalFlight is a normalized flight identifier: IATA-style carrier code
// plus the numeric flight number, e.g. {Airline: "SV", Number: "726"}.
type CanonicalFlight struct {
	Airline string `json:"airline"`
	Number  string `json:"number"`
}

// Canonical returns the canonical identifier string, e.g. "SV726".
func (f CanonicalFlight) Canonical() string {
	return f.Airline + f.Number
}

var (
	// carrier code (two letters, or letter+digit in either order)
	// immediately followed by 2-4 digits, on non-alphanumeric boundaries
	canonicalPattern  = regexp.MustCompile(`(?:^|[^A-Z0-9])([A-Z]{2}|[A-Z][0-9]|[0-9][A-Z]) ?([0-9]{2,4})(?:[^0-9]|$)`)
	bareNumberPattern = regexp.MustCompile(`(?:^|[^0-9])([0-9]{2,4})(?:[^0-9]|$)`)
	separatorPattern  = regexp.MustCompile(`[-.]`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

type aliasEntry struct {
	name string
	code string
}

// Extractor resolves free-text queries to canonical flight identifiers using
// the static airline alias table. Construct once at startup; it is read-only
// afterwards.
type Extractor struct {
	aliases []aliasEntry
}

// NewExtractor builds an extractor over the built-in alias table. The alias
// list is ordered longest-name-first, then lexicographically, so that
// overlapping aliases resolve deterministically.
func NewExtractor() *Extractor {
	seen := make(map[string]string, len(commonAliases)+len(AirlineNames))
	for name, code := range commonAliases {
		seen[name] = code
	}
	for code, name := range AirlineNames {
		n := strings.ToLower(strings.TrimSpace(name))
		if len(n) < 3 {
			continue
		}
		if _, ok := seen[n]; !ok {
			seen[n] = code
		}
	}

	aliases := make([]aliasEntry, 0, len(seen))
	for name, code := range seen {
		aliases = append(aliases, aliasEntry{name: name, code: code})
	}
	sort.Slice(aliases, func(i, j int) bool {
		if len(aliases[i].name) != len(aliases[j].name) {
			return len(aliases[i].name) > len(aliases[j].name)
		}
		return aliases[i].name < aliases[j].name
	})

	return &Extractor{aliases: aliases}
}

// Extract attempts to resolve a canonical flight identifier from a query.
// A directly written identifier ("SV 726", "sv-726") takes precedence over
// alias matching; a bare number only resolves when an airline alias appears
// somewhere in the query. Returns false when the query cannot be resolved.
func (e *Extractor) Extract(query string) (*CanonicalFlight, bool) {
	norm := normalize(query)

	if m := canonicalPattern.FindStringSubmatch(norm); m != nil {
		return &CanonicalFlight{Airline: m[1], Number: m[2]}, true
	}

	m := bareNumberPattern.FindStringSubmatch(norm)
	if m == nil {
		return nil, false
	}
	number := m[1]

	if code, ok := e.matchAlias(query); ok {
		return &CanonicalFlight{Airline: code, Number: number}, true
	}

	// digits with no carrier context are ambiguous
	return nil, false
}

// MatchAirline scans the query for a known airline alias and returns its
// IATA code, independent of any flight number.
func (e *Extractor) MatchAirline(query string) (string, bool) {
	return e.matchAlias(query)
}

// StripFlightTokens removes the canonical flight identifier and bare flight
// numbers from a query. Used to sharpen policy sub-queries so that the digits
// do not pollute the similarity search.
func (e *Extractor) StripFlightTokens(query string) string {
	norm := normalize(query)
	norm = canonicalPattern.ReplaceAllString(norm, " ")
	norm = bareNumberPattern.ReplaceAllString(norm, " ")
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(norm, " "))
}

func (e *Extractor) matchAlias(query string) (string, bool) {
	lowered := strings.ToLower(query)
	for _, a := range e.aliases {
		if containsWord(lowered, a.name) {
			return a.code, true
		}
	}
	return "", false
}

// containsWord reports whether needle occurs in haystack on letter
// boundaries, so "un" does not fire inside "lunch".
func containsWord(haystack, needle string) bool {
	for start := 0; ; {
		idx := strings.Index(haystack[start:], needle)
		if idx < 0 {
			return false
		}
		idx += start
		before := idx - 1
		after := idx + len(needle)
		leftOK := before < 0 || !isLetter(haystack[before])
		rightOK := after >= len(haystack) || !isLetter(haystack[after])
		if leftOK && rightOK {
			return true
		}
		start = idx + 1
	}
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func normalize(query string) string {
	s := strings.ToUpper(strings.TrimSpace(query))
	s = separatorPattern.ReplaceAllString(s, "")
	return whitespacePattern.ReplaceAllString(s, " ")
}
