// Package session keeps per-conversation state: the rolling message
// history handed to the synthesizer. Sessions live in memory only and do
// not survive a restart.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/paa-ai/skydesk/pkg/llm"
)

// DefaultWindowSize is how many recent messages a session hands to the
// synthesizer. Five exchanges keeps follow-up questions working without
// letting old turns crowd out the retrieved context.
const DefaultWindowSize = 10

// Session is the conversation state for one user. All methods are safe
// for concurrent use.
type Session struct {
	ID string

	mutex      sync.Mutex
	messages   []llm.ChatMessage
	windowSize int
	lastActive time.Time
}

// Append records one user/assistant exchange.
func (s *Session) Append(query, answer string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.messages = append(s.messages,
		llm.ChatMessage{Role: "user", Content: query},
		llm.ChatMessage{Role: "assistant", Content: answer},
	)
	s.lastActive = time.Now()
}

// Recent returns a copy of the last windowSize messages, oldest first.
func (s *Session) Recent() []llm.ChatMessage {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	start := 0
	if len(s.messages) > s.windowSize {
		start = len(s.messages) - s.windowSize
	}
	recent := make([]llm.ChatMessage, len(s.messages)-start)
	copy(recent, s.messages[start:])
	return recent
}

// Clear drops the conversation history but keeps the session alive.
func (s *Session) Clear() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.messages = nil
	s.lastActive = time.Now()
}

// Len returns the total number of stored messages.
func (s *Session) Len() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return len(s.messages)
}

// ManagerConfig controls session lifecycle.
type ManagerConfig struct {
	WindowSize int           `json:"window_size"`
	MaxIdle    time.Duration `json:"max_idle"`
}

// Manager owns the live sessions and evicts idle ones.
type Manager struct {
	mutex    sync.RWMutex
	sessions map[string]*Session
	config   ManagerConfig
}

// NewManager creates a session manager with defaults applied.
func NewManager(config ManagerConfig) *Manager {
	if config.WindowSize <= 0 {
		config.WindowSize = DefaultWindowSize
	}
	if config.MaxIdle <= 0 {
		config.MaxIdle = 30 * time.Minute
	}
	return &Manager{
		sessions: make(map[string]*Session),
		config:   config,
	}
}

// Get returns the session for id, creating it when id is unknown or
// empty. A fresh UUID is assigned when no id is supplied, so callers can
// echo the session id back to the client.
func (m *Manager) Get(id string) *Session {
	if id != "" {
		m.mutex.RLock()
		existing, ok := m.sessions[id]
		m.mutex.RUnlock()
		if ok {
			return existing
		}
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	if id == "" {
		id = uuid.NewString()
	} else if existing, ok := m.sessions[id]; ok {
		return existing
	}

	s := &Session{
		ID:         id,
		windowSize: m.config.WindowSize,
		lastActive: time.Now(),
	}
	m.sessions[id] = s
	return s
}

// Delete removes a session.
func (m *Manager) Delete(id string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	delete(m.sessions, id)
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return len(m.sessions)
}

// EvictIdle drops sessions idle longer than MaxIdle and reports how many
// were removed. Intended to run on a ticker from the service lifecycle.
func (m *Manager) EvictIdle() int {
	cutoff := time.Now().Add(-m.config.MaxIdle)

	m.mutex.Lock()
	defer m.mutex.Unlock()

	evicted := 0
	for id, s := range m.sessions {
		s.mutex.Lock()
		idle := s.lastActive.Before(cutoff)
		s.mutex.Unlock()
		if idle {
			delete(m.sessions, id)
			evicted++
		}
	}
	return evicted
}
