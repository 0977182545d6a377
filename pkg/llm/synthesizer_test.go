package llm

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paa-ai/skydesk/pkg/intent"
	"github.com/paa-ai/skydesk/pkg/rag"
)

type stubChatClient struct {
	reply    string
	err      error
	messages []ChatMessage
}

func (s *stubChatClient) Complete(ctx context.Context, messages []ChatMessage) (string, error) {
	s.messages = messages
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func flightResult(snippets ...string) map[intent.Intent]*rag.RetrievalResult {
	return map[intent.Intent]*rag.RetrievalResult{
		intent.IntentFlight: {
			Intent:   intent.IntentFlight,
			Snippets: snippets,
			Found:    len(snippets) > 0,
			Tier:     rag.TierExact,
		},
	}
}

func TestSynthesizeGroundedAnswer(t *testing.T) {
	client := &stubChatClient{reply: "Flight SV726 has landed at gate 12."}
	s := NewSynthesizer(client, nil, nil)

	answer := s.Synthesize(context.Background(), "What is the status of SV726?", nil,
		flightResult("Flight SV726 (Saudi Airline) is a Arrival flight. Status: Landed. Gate: 12."), false)

	assert.Contains(t, answer, "SV726")
	assert.NotContains(t, strings.ToLower(answer), "not found")

	// the system instruction carries the retrieved snippet
	require.NotEmpty(t, client.messages)
	system := client.messages[0]
	assert.Equal(t, "system", system.Role)
	assert.Contains(t, system.Content, "FLIGHT DATA")
	assert.Contains(t, system.Content, "SV726")
}

func TestSynthesizeEmptyContextCarriesDisclosureRule(t *testing.T) {
	client := &stubChatClient{reply: "ok"}
	s := NewSynthesizer(client, nil, nil)

	s.Synthesize(context.Background(), "what is a layover", nil, nil, false)

	system := client.messages[0].Content
	assert.Contains(t, system, "No official records found.")
	assert.Contains(t, system, GeneralKnowledgeDisclosure)
}

func TestSynthesizeNotFoundResultExcludedFromContext(t *testing.T) {
	client := &stubChatClient{reply: "ok"}
	s := NewSynthesizer(client, nil, nil)

	results := map[intent.Intent]*rag.RetrievalResult{
		intent.IntentFlight: {Intent: intent.IntentFlight, Found: false},
	}
	s.Synthesize(context.Background(), "status of XY111", nil, results, false)

	system := client.messages[0].Content
	assert.NotContains(t, system, "FLIGHT DATA")
	assert.Contains(t, system, "No official records found.")
}

func TestSynthesizeFailureReturnsApology(t *testing.T) {
	client := &stubChatClient{err: errors.New("backend unreachable")}
	s := NewSynthesizer(client, nil, nil)

	answer := s.Synthesize(context.Background(), "status of SV726", nil, flightResult("snippet"), false)
	assert.Equal(t, ApologyMessage, answer)
}

func TestSynthesizeGreetingSkipsContext(t *testing.T) {
	client := &stubChatClient{reply: "Hello! How can I help you today?"}
	s := NewSynthesizer(client, nil, nil)

	s.Synthesize(context.Background(), "hello", nil, nil, true)

	system := client.messages[0].Content
	assert.Contains(t, system, "small talk")
	assert.NotContains(t, system, "CONTEXT DATA")
}

func TestSynthesizeIncludesHistoryBetweenSystemAndQuery(t *testing.T) {
	client := &stubChatClient{reply: "ok"}
	s := NewSynthesizer(client, nil, nil)

	history := []ChatMessage{
		{Role: "user", Content: "status of SV726"},
		{Role: "assistant", Content: "SV726 has landed."},
	}
	s.Synthesize(context.Background(), "which gate?", history, nil, false)

	require.Len(t, client.messages, 4)
	assert.Equal(t, "system", client.messages[0].Role)
	assert.Equal(t, "status of SV726", client.messages[1].Content)
	assert.Equal(t, "SV726 has landed.", client.messages[2].Content)
	assert.Equal(t, "which gate?", client.messages[3].Content)
}

func TestPromptBuilderSectionsInStableOrder(t *testing.T) {
	b := NewPromptBuilder("")
	results := map[intent.Intent]*rag.RetrievalResult{
		intent.IntentWeb:     {Intent: intent.IntentWeb, Found: true, Snippets: []string{"Source: https://paa.gov.pk | NOTAM list"}},
		intent.IntentBaggage: {Intent: intent.IntentBaggage, Found: true, Snippets: []string{"30kg allowance"}},
	}

	system := b.BuildSystemInstruction(results)
	baggageIdx := strings.Index(system, "POLICY DATA")
	webIdx := strings.Index(system, "WEB DATA")
	require.NotEqual(t, -1, baggageIdx)
	require.NotEqual(t, -1, webIdx)
	assert.Less(t, baggageIdx, webIdx)
}
