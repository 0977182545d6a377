package services

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paa-ai/skydesk/pkg/flight"
	"github.com/paa-ai/skydesk/pkg/intent"
	"github.com/paa-ai/skydesk/pkg/llm"
	"github.com/paa-ai/skydesk/pkg/rag"
	"github.com/paa-ai/skydesk/pkg/session"
)

type scriptedStore struct {
	mutex        sync.Mutex
	exactRecords map[string][]rag.Record
	similar      map[string][]rag.Record
	exactCalls   int
	similarCalls int
}

func (s *scriptedStore) SearchExact(ctx context.Context, collection, field, value string, fields []string, limit int) ([]rag.Record, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.exactCalls++
	return s.exactRecords[value], nil
}

func (s *scriptedStore) SearchSimilar(ctx context.Context, collection string, vector []float32, fields []string, limit int, maxDistance float32) ([]rag.Record, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.similarCalls++
	return s.similar[collection], nil
}

type fixedEmbedder struct{}

func (fixedEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	return []float32{0.1, 0.2}, nil
}

// echoChat replies with the flight snippets it was given, so tests can see
// whether retrieved context reached the model.
type echoChat struct {
	mutex sync.Mutex
	calls int
}

func (c *echoChat) Complete(ctx context.Context, messages []llm.ChatMessage) (string, error) {
	c.mutex.Lock()
	c.calls++
	c.mutex.Unlock()

	system := messages[0].Content
	if idx := strings.Index(system, "--- FLIGHT DATA ---"); idx != -1 {
		lines := strings.SplitN(system[idx:], "\n", 3)
		return "According to our records: " + lines[1], nil
	}
	if strings.Contains(system, "small talk") {
		return "Hello! How can I help you with your journey today?", nil
	}
	return "Here is what I found.", nil
}

func newTestService(store *scriptedStore, chat llm.ChatClient) *AssistantService {
	extractor := flight.NewExtractor()
	router := intent.NewRouter(intent.DefaultRouterConfig(), nil, nil)
	dispatcher := rag.NewDispatcher(store, fixedEmbedder{}, extractor, rag.DefaultDispatcherConfig(), nil)
	synthesizer := llm.NewSynthesizer(chat, nil, nil)
	return newPipeline(extractor, router, dispatcher, synthesizer, session.NewManager(session.ManagerConfig{}), nil)
}

func TestAskFlightStatusEndToEnd(t *testing.T) {
	store := &scriptedStore{
		exactRecords: map[string][]rag.Record{
			"SV726": {{"flightNumber": "SV726", "summary": "Flight SV726 (Saudi Airline) is a Arrival flight. Status: Landed. Gate: 12."}},
		},
	}
	svc := newTestService(store, &echoChat{})
	defer svc.Shutdown()

	answer := svc.Ask(context.Background(), "", "What is the status of SV726?")

	assert.Equal(t, "SV726", answer.Flight)
	assert.Equal(t, []string{"flight"}, answer.Intents)
	assert.Contains(t, answer.Text, "SV726")
	assert.NotContains(t, strings.ToLower(answer.Text), "not found")
	assert.Equal(t, 1, store.exactCalls)
	assert.Equal(t, 0, store.similarCalls)
}

func TestAskGreetingSkipsRetrieval(t *testing.T) {
	store := &scriptedStore{}
	chat := &echoChat{}
	svc := newTestService(store, chat)
	defer svc.Shutdown()

	answer := svc.Ask(context.Background(), "", "hello")

	assert.Equal(t, []string{"none"}, answer.Intents)
	assert.Contains(t, answer.Text, "Hello")
	assert.Equal(t, 0, store.exactCalls)
	assert.Equal(t, 0, store.similarCalls)
	assert.Equal(t, 1, chat.calls)
}

func TestAskBaggageWithoutFlightUsesSimilarityOnly(t *testing.T) {
	store := &scriptedStore{
		similar: map[string][]rag.Record{
			rag.DefaultPolicyCollection: {{"content": "PIA allows 30kg checked baggage on international routes."}},
		},
	}
	svc := newTestService(store, &echoChat{})
	defer svc.Shutdown()

	answer := svc.Ask(context.Background(), "", "baggage allowance for PIA")

	assert.Empty(t, answer.Flight)
	assert.Equal(t, []string{"baggage"}, answer.Intents)
	assert.Equal(t, 0, store.exactCalls)
	assert.Equal(t, 1, store.similarCalls)
}

func TestAskKeepsSessionHistory(t *testing.T) {
	store := &scriptedStore{
		exactRecords: map[string][]rag.Record{
			"SV726": {{"summary": "Flight SV726 (Saudi Airline) is a Arrival flight. Gate: 12."}},
		},
	}
	svc := newTestService(store, &echoChat{})
	defer svc.Shutdown()

	first := svc.Ask(context.Background(), "", "status of SV726")
	require.NotEmpty(t, first.SessionID)

	second := svc.Ask(context.Background(), first.SessionID, "thanks")
	assert.Equal(t, first.SessionID, second.SessionID)

	sess := svc.sessions.Get(first.SessionID)
	assert.Equal(t, 4, sess.Len())
}

func TestAskIdempotentRouting(t *testing.T) {
	store := &scriptedStore{}
	svc := newTestService(store, &echoChat{})
	defer svc.Shutdown()

	first := svc.Ask(context.Background(), "", "is EK612 delayed?")
	second := svc.Ask(context.Background(), "", "is EK612 delayed?")

	assert.Equal(t, first.Intents, second.Intents)
	assert.Equal(t, first.Flight, second.Flight)
}

func TestResetSession(t *testing.T) {
	svc := newTestService(&scriptedStore{}, &echoChat{})
	defer svc.Shutdown()

	answer := svc.Ask(context.Background(), "", "hello")
	svc.ResetSession(answer.SessionID)

	sess := svc.sessions.Get(answer.SessionID)
	assert.Equal(t, 0, sess.Len())
}
