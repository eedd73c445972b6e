package scene

import "sync"

// Store serialises access to a Scene and tells observers when it changes.
type Store struct {
	mu        sync.Mutex
	scene     *Scene
	rev       uint64
	observers []func(rev uint64)
}

// NewStore wraps sc, or a fresh scene when sc is nil.
func NewStore(sc *Scene) *Store {
	if sc == nil {
		sc = New()
	}
	return &Store{scene: sc}
}

// Subscribe registers fn to run after every mutation that changed the scene.
// Observers run on the mutating goroutine after the lock is released.
func (st *Store) Subscribe(fn func(rev uint64)) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.observers = append(st.observers, fn)
}

// Revision returns the number of changes applied so far.
func (st *Store) Revision() uint64 {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.rev
}

func (st *Store) AddElement(k Kind) Element {
	var el Element
	st.mutate(func(sc *Scene) bool {
		el = sc.AddElement(k)
		return true
	})
	return el
}

func (st *Store) UpdateElement(id string, p ElementPatch) {
	st.mutate(func(sc *Scene) bool {
		return sc.UpdateElement(id, p)
	})
}

func (st *Store) UpdateElementStyle(id string, p StylePatch) {
	st.mutate(func(sc *Scene) bool {
		return sc.UpdateElementStyle(id, p)
	})
}

func (st *Store) DeleteElement(id string) {
	st.mutate(func(sc *Scene) bool {
		return sc.DeleteElement(id)
	})
}

func (st *Store) SelectElement(id string) {
	st.mutate(func(sc *Scene) bool {
		if sc.SelectedID() == id {
			return false
		}
		sc.SelectElement(id)
		return true
	})
}

func (st *Store) SelectedElement() (Element, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.scene.SelectedElement()
}

func (st *Store) SelectedID() string {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.scene.SelectedID()
}

func (st *Store) Element(id string) (Element, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.scene.Element(id)
}

func (st *Store) Elements() []Element {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.scene.Elements()
}

// Snapshot returns the elements together with the revision they belong to.
func (st *Store) Snapshot() ([]Element, uint64) {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.scene.Elements(), st.rev
}

func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.scene.Len()
}

func (st *Store) mutate(fn func(sc *Scene) bool) {
	st.mu.Lock()
	if !fn(st.scene) {
		st.mu.Unlock()
		return
	}
	st.rev++
	rev := st.rev
	observers := append([]func(uint64){}, st.observers...)
	st.mu.Unlock()

	for _, obs := range observers {
		obs(rev)
	}
}
