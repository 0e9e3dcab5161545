package memory

import (
	"context"
	"sync"

	"ai-chatdesk-be/internal/entity"
	"ai-chatdesk-be/internal/repository/contract"

	"github.com/google/uuid"
)

// MessageStore keeps per-session message logs in memory, append order
// preserved.
type MessageStore struct {
	mu    sync.Mutex
	items map[uuid.UUID][]*entity.ChatMessage
}

var _ contract.ChatMessageRepository = (*MessageStore)(nil)

func NewMessageStore() *MessageStore {
	return &MessageStore{
		items: make(map[uuid.UUID][]*entity.ChatMessage),
	}
}

func (s *MessageStore) Create(_ context.Context, message *entity.ChatMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *message
	s.items[message.ChatSessionId] = append(s.items[message.ChatSessionId], &cp)
	return nil
}

func (s *MessageStore) FindBySessionId(_ context.Context, sessionId uuid.UUID) ([]*entity.ChatMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	messages := s.items[sessionId]
	result := make([]*entity.ChatMessage, 0, len(messages))
	for _, msg := range messages {
		cp := *msg
		result = append(result, &cp)
	}
	return result, nil
}

func (s *MessageStore) CountBySessionId(_ context.Context, sessionId uuid.UUID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return int64(len(s.items[sessionId])), nil
}

func (s *MessageStore) DeleteBySessionId(_ context.Context, sessionId uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.items, sessionId)
	return nil
}
