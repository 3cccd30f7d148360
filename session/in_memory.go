package session

import (
	"fmt"
	"sync"

	"github.com/lifeadmin/concierge/core"
)

// InMemoryStore is a volatile SessionStore keeping sessions in a process
// local map. The store-level RWMutex guards the map; each Session carries its
// own lock, so mutations are serialized per session ID while distinct
// sessions proceed concurrently.
type InMemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*core.Session
}

// NewInMemoryStore constructs an empty in-memory session store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{sessions: make(map[string]*core.Session)}
}

// Create makes a new empty session with a current creation timestamp.
func (s *InMemoryStore) Create(id string) (*core.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; ok {
		return nil, fmt.Errorf("%w: %s", core.ErrDuplicateSession, id)
	}
	sess := core.NewSession(id)
	s.sessions[id] = sess
	return sess, nil
}

// Append adds an immutable message with a current timestamp.
func (s *InMemoryStore) Append(id string, role core.Role, content string) error {
	sess, err := s.get(id)
	if err != nil {
		return err
	}
	sess.Append(core.NewMessage(role, content))
	return nil
}

// History returns a read-only snapshot of the conversation.
func (s *InMemoryStore) History(id string) ([]core.Message, error) {
	sess, err := s.get(id)
	if err != nil {
		return nil, err
	}
	return sess.Messages(), nil
}

// Clear removes all messages but keeps the session identifier valid.
func (s *InMemoryStore) Clear(id string) error {
	sess, err := s.get(id)
	if err != nil {
		return err
	}
	sess.Clear()
	return nil
}

// Delete removes the session entirely.
func (s *InMemoryStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return fmt.Errorf("%w: %s", core.ErrUnknownSession, id)
	}
	delete(s.sessions, id)
	return nil
}

// Sessions lists the IDs of all live sessions.
func (s *InMemoryStore) Sessions() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.sessions))
	for id := range s.sessions {
		ids = append(ids, id)
	}
	return ids
}

func (s *InMemoryStore) get(id string) (*core.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", core.ErrUnknownSession, id)
	}
	return sess, nil
}
