// Package prefs is the key-value persistence port for session state, the
// server-side stand-in for the mobile client's shared preferences.
package prefs

import "sync"

// Preference keys used by the session gate.
const (
	KeyIsLoggedIn                  = "isLoggedIn"
	KeyFirstName                   = "firstName"
	KeyLastName                    = "lastName"
	KeyEmail                       = "email"
	KeyOrderStatusNotifications    = "orderStatusNotifications"
	KeyPasswordChangeNotifications = "passwordChangeNotifications"
	KeySpecialOffersNotifications  = "specialOffersNotifications"
)

// Store is the persistence surface the session gate depends on. Reads take
// a default so callers decide what an absent key means.
type Store interface {
	GetBool(key string, def bool) bool
	GetString(key string, def string) string
	PutBool(key string, value bool) error
	PutString(key string, value string) error
	ClearAll() error
}

// MemoryStore keeps preferences in a map, used in tests and as a fallback
// when no database is configured.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (m *MemoryStore) GetBool(key string, def bool) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if v, ok := m.values[key]; ok {
		return v == "true"
	}
	return def
}

func (m *MemoryStore) GetString(key string, def string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if v, ok := m.values[key]; ok {
		return v
	}
	return def
}

func (m *MemoryStore) PutBool(key string, value bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if value {
		m.values[key] = "true"
	} else {
		m.values[key] = "false"
	}
	return nil
}

func (m *MemoryStore) PutString(key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MemoryStore) ClearAll() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values = make(map[string]string)
	return nil
}
