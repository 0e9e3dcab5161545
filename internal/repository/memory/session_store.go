package memory

import (
	"context"
	"sync"

	"ai-chatdesk-be/internal/entity"
	"ai-chatdesk-be/internal/repository/contract"

	"github.com/google/uuid"
)

// SessionStore keeps sessions in a mutex-guarded ordered map. It is an
// injectable object rather than ambient global state so tests construct
// isolated instances. Creation order is preserved across upserts: saving
// an existing id replaces the value in place, it does not move the entry.
type SessionStore struct {
	mu    sync.Mutex
	order []uuid.UUID
	items map[uuid.UUID]*entity.ChatSession
}

var _ contract.ChatSessionRepository = (*SessionStore)(nil)

func NewSessionStore() *SessionStore {
	return &SessionStore{
		items: make(map[uuid.UUID]*entity.ChatSession),
	}
}

func (s *SessionStore) Save(_ context.Context, session *entity.ChatSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *session
	if _, exists := s.items[session.Id]; !exists {
		s.order = append(s.order, session.Id)
	}
	s.items[session.Id] = &cp
	return nil
}

func (s *SessionStore) FindOne(_ context.Context, id uuid.UUID) (*entity.ChatSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[id]
	if !ok {
		return nil, nil
	}
	cp := *item
	return &cp, nil
}

func (s *SessionStore) FindAll(_ context.Context) ([]*entity.ChatSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]*entity.ChatSession, 0, len(s.order))
	for _, id := range s.order {
		cp := *s.items[id]
		result = append(result, &cp)
	}
	return result, nil
}

// Delete is idempotent; a second delete of the same id is a no-op.
func (s *SessionStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return nil
	}
	delete(s.items, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}
