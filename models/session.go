package models

import "sync"

// Page is the screen a session is currently on.
type Page string

const (
	PageMenu         Page = "menu"
	PageReview       Page = "review"
	PageConfirmation Page = "confirmation"
)

// Session is one customer's in-memory ordering state. It carries its own
// lock because two tabs sharing the same cookie can hit the server at once.
type Session struct {
	mu sync.Mutex

	ID          string
	Page        Page
	Cart        *Cart
	OrderNumber *int
}

func NewSession(id string) *Session {
	return &Session{
		ID:   id,
		Page: PageMenu,
		Cart: NewCart(),
	}
}

func (s *Session) Lock()   { s.mu.Lock() }
func (s *Session) Unlock() { s.mu.Unlock() }

// Reset returns the session to its initial state: menu page, empty cart,
// no issued order number. Callers must hold the lock.
func (s *Session) Reset() {
	s.Page = PageMenu
	s.Cart.Clear()
	s.OrderNumber = nil
}
