package contract

import (
	"context"

	"ai-chatdesk-be/internal/entity"
)

// DocumentIndexRepository is the append-only registry of every ingested
// file. No removal, no deduplication: re-uploading an indexed path grows
// the registry.
type DocumentIndexRepository interface {
	Create(ctx context.Context, document *entity.IndexedDocument) error
	// FindAll returns entries most-recent-first, for display.
	FindAll(ctx context.Context) ([]*entity.IndexedDocument, error)
	Count(ctx context.Context) (int64, error)
}
