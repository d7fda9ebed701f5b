package tracker

import (
	"sync"

	"wearbmi/internal/store"
)

// Registry hands out one Tracker per client ID, creating trackers lazily.
// Client IDs come from the HTTP session layer.
type Registry struct {
	mu       sync.Mutex
	gen      Generator
	records  store.Store
	trackers map[string]*Tracker
}

// NewRegistry builds a registry sharing one generator and one record store
// across all trackers.
func NewRegistry(gen Generator, records store.Store) *Registry {
	return &Registry{
		gen:      gen,
		records:  records,
		trackers: make(map[string]*Tracker),
	}
}

// Acquire returns the tracker for the client, creating it on first use.
func (r *Registry) Acquire(clientID string) *Tracker {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.trackers[clientID]
	if !ok {
		t = New(clientID, r.gen, r.records)
		r.trackers[clientID] = t
	}
	return t
}

// Len reports how many trackers exist; used by tests and debug logging.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.trackers)
}
