package contract

import (
	"context"

	"ai-chatdesk-be/internal/entity"

	"github.com/google/uuid"
)

// ChatSessionRepository persists chat sessions keyed by identifier.
// Implementations must keep FindAll in creation order and make Delete
// idempotent (deleting an absent id is a no-op, not an error).
type ChatSessionRepository interface {
	// Save upserts: replaces the entry with the same id, else appends.
	Save(ctx context.Context, session *entity.ChatSession) error
	FindOne(ctx context.Context, id uuid.UUID) (*entity.ChatSession, error)
	FindAll(ctx context.Context) ([]*entity.ChatSession, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
