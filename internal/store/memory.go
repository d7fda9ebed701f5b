package store

import (
	"context"
	"sync"

	"wearbmi/models"
)

// Memory is the in-process record store. Safe for concurrent use.
type Memory struct {
	mu      sync.Mutex
	nextID  uint
	records map[string][]models.Record
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		nextID:  1,
		records: make(map[string][]models.Record),
	}
}

// Append assigns an ID and stores the record at the end of the client's
// history.
func (m *Memory) Append(ctx context.Context, rec models.Record) (models.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec.ID = m.nextID
	m.nextID++
	m.records[rec.ClientID] = append(m.records[rec.ClientID], rec)
	return rec, nil
}

// List returns a copy of the client's history in insertion order.
func (m *Memory) List(ctx context.Context, clientID string) ([]models.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	records := m.records[clientID]
	out := make([]models.Record, len(records))
	copy(out, records)
	return out, nil
}
