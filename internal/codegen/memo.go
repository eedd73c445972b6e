package codegen

import (
	"sync"

	"screenforge/internal/scene"
)

// Memo caches the output for the latest revision of a store, so callers can
// ask for code on every render without regenerating it.
type Memo struct {
	store *scene.Store

	mu    sync.Mutex
	valid bool
	rev   uint64
	code  string
}

// NewMemo returns a Memo reading from store.
func NewMemo(store *scene.Store) *Memo {
	return &Memo{store: store}
}

// Code returns the generated source for the store's current contents.
func (m *Memo) Code() string {
	elements, rev := m.store.Snapshot()

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.valid && m.rev == rev {
		return m.code
	}
	m.code = Generate(elements)
	m.rev = rev
	m.valid = true
	return m.code
}
