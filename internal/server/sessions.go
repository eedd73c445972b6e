package server

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"screenforge/internal/codegen"
	"screenforge/internal/scene"
)

// ErrSessionNotFound is returned for ids that were never issued or have
// been dropped.
var ErrSessionNotFound = errors.New("session not found")

// Session is one in-memory editing scene with its generated-code cache.
type Session struct {
	ID    string
	Store *scene.Store
	Code  *codegen.Memo
}

// Sessions maps session ids to their scenes.
type Sessions struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewSessions() *Sessions {
	return &Sessions{
		sessions: make(map[string]*Session),
	}
}

// Create registers a session around sc, or an empty scene when sc is nil.
func (m *Sessions) Create(sc *scene.Scene) *Session {
	store := scene.NewStore(sc)
	s := &Session{
		ID:    uuid.NewString(),
		Store: store,
		Code:  codegen.NewMemo(store),
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return s
}

func (m *Sessions) Get(id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

func (m *Sessions) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(m.sessions, id)
	return nil
}

func (m *Sessions) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
