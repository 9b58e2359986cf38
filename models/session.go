package models

import (
	"sync"
	"time"
)

// Session owns one user's cart for the duration of their visit
type Session struct {
	ID        string
	CreatedAt time.Time
	ExpiresAt time.Time

	mu   sync.Mutex
	cart *Cart
}

// NewSession creates a session with an empty cart
func NewSession(id string, createdAt time.Time, ttl time.Duration) *Session {
	return &Session{
		ID:        id,
		CreatedAt: createdAt,
		ExpiresAt: createdAt.Add(ttl),
		cart:      NewCart(),
	}
}

// Expired reports whether the session is past its expiry at now
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// AddLine appends a line to the session's cart and returns the new grand total
func (s *Session) AddLine(item MenuItem, modifiers []Modifier, quantity int) (OrderLine, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	line := s.cart.AddLine(item, modifiers, quantity)
	return line, s.cart.GrandTotal()
}

// Snapshot returns the lines and their total read together
func (s *Session) Snapshot() ([]OrderLine, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Lines(), s.cart.GrandTotal()
}

// Lines returns the cart lines in add order
func (s *Session) Lines() []OrderLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Lines()
}

// GrandTotal returns the cart total
func (s *Session) GrandTotal() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.GrandTotal()
}

// Submit confirms the order. The cart is neither cleared nor persisted.
func (s *Session) Submit(now time.Time) (Confirmation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cart.IsEmpty() {
		return Confirmation{}, ErrEmptyCart
	}
	return Confirmation{
		SessionID:   s.ID,
		Lines:       s.cart.Lines(),
		GrandTotal:  s.cart.GrandTotal(),
		SubmittedAt: now,
		Message:     confirmationMessage,
	}, nil
}
