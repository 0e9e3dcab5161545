package contract

import (
	"context"

	"ai-chatdesk-be/internal/entity"

	"github.com/google/uuid"
)

// ChatMessageRepository stores the append-only message log of a session.
type ChatMessageRepository interface {
	Create(ctx context.Context, message *entity.ChatMessage) error
	// FindBySessionId returns messages in append order.
	FindBySessionId(ctx context.Context, sessionId uuid.UUID) ([]*entity.ChatMessage, error)
	CountBySessionId(ctx context.Context, sessionId uuid.UUID) (int64, error)
	DeleteBySessionId(ctx context.Context, sessionId uuid.UUID) error
}
