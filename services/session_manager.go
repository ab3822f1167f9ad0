package services

import (
	"sync"

	"github.com/google/uuid"

	"github.com/delisburger/order-app/models"
)

// SessionManager keeps every live ordering session in process memory,
// keyed by the cookie UUID. Sessions are never persisted; a restart starts
// everyone over on the menu.
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[string]*models.Session
}

func NewSessionManager() *SessionManager {
	return &SessionManager{
		sessions: make(map[string]*models.Session),
	}
}

// Get returns the session for an ID, if it exists.
func (m *SessionManager) Get(id string) (*models.Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

// Create registers a fresh session: menu page, empty cart, no order number.
func (m *SessionManager) Create() *models.Session {
	s := models.NewSession(uuid.NewString())
	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s
}

// GetOrCreate resolves a cookie value to a session, creating one when the
// ID is empty or unknown (e.g. after a server restart).
func (m *SessionManager) GetOrCreate(id string) *models.Session {
	if id != "" {
		if s, ok := m.Get(id); ok {
			return s
		}
	}
	return m.Create()
}

// Count returns the number of live sessions.
func (m *SessionManager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
