package session

import "sync"

// MemoryStore is the default Store: process-local, safe for concurrent
// use, nothing survives a restart.
type MemoryStore struct {
	mu      sync.Mutex
	token   string
	profile *Profile
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Load() (string, *Profile, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.token == "" {
		return "", nil, false
	}
	return m.token, m.profile, true
}

func (m *MemoryStore) Save(token string, profile Profile) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	p := profile
	m.profile = &p
}

func (m *MemoryStore) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	m.profile = nil
}
