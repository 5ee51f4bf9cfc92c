package players

import (
	"encoding/json"
	"sync"
)

// MemorySource implements Source using in-memory storage
type MemorySource struct {
	mu      sync.RWMutex
	records map[string]*Player
}

// NewMemorySource creates a new MemorySource
func NewMemorySource() *MemorySource {
	return &MemorySource{
		records: make(map[string]*Player),
	}
}

// LoadPlayer implements Source
func (m *MemorySource) LoadPlayer(wallet string) (*Player, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, exists := m.records[wallet]
	if !exists {
		return nil, ErrPlayerNotFound
	}
	return clonePlayer(p)
}

// SavePlayer implements Source
func (m *MemorySource) SavePlayer(p *Player) error {
	cloned, err := clonePlayer(p)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[p.Wallet] = cloned
	return nil
}

// RemovePlayer removes a record from memory
func (m *MemorySource) RemovePlayer(wallet string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records, wallet)
}

// clonePlayer deep-copies a record so callers cannot alias stored state.
func clonePlayer(p *Player) (*Player, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	var out Player
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
