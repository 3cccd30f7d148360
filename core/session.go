package core

import (
	"sync"
	"time"
)

// Session is an identifier-keyed, ordered conversation history. It is owned
// by a SessionStore and mutated only through that store's operations.
//
// Contract:
//   - History is strictly append-only except for an explicit full Clear
//   - Messages returns a defensive copy to avoid external mutation
//   - All methods are safe for concurrent use; the embedded mutex serializes
//     writers per session while distinct sessions proceed independently.
type Session struct {
	ID      string    `json:"id"`
	Created time.Time `json:"created"`

	mu       sync.RWMutex
	messages []Message
}

// NewSession creates an empty session with the given ID and a current
// creation timestamp.
func NewSession(id string) *Session {
	return &Session{ID: id, Created: time.Now().UTC()}
}

// Append adds a message to the history preserving insertion order.
func (s *Session) Append(msg Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, msg)
}

// Messages returns a snapshot copy of the full history.
func (s *Session) Messages() []Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Len reports the number of messages in the history.
func (s *Session) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.messages)
}

// Clear removes all messages. The session identifier stays valid.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = nil
}

// SessionStore owns session lifecycle and history mutation. Implementations
// must serialize mutations per session ID while allowing concurrent
// operations across distinct IDs, and must confine side effects to their own
// state (no external I/O).
type SessionStore interface {
	// Create makes a new empty session. Fails with ErrDuplicateSession if
	// the ID already exists.
	Create(id string) (*Session, error)

	// Append adds a message authored by role. Fails with ErrUnknownSession.
	Append(id string, role Role, content string) error

	// History returns a read-only snapshot of the conversation in insertion
	// order. Fails with ErrUnknownSession.
	History(id string) ([]Message, error)

	// Clear removes all messages but keeps the session identifier valid.
	// Fails with ErrUnknownSession.
	Clear(id string) error

	// Delete removes the session entirely.
	Delete(id string) error

	// Sessions lists the IDs of all live sessions.
	Sessions() []string
}
