package memory

import (
	"context"
	"sync"

	"ai-chatdesk-be/internal/entity"
	"ai-chatdesk-be/internal/repository/contract"
)

// DocumentIndex is the in-memory document registry: append-only for the
// process lifetime, duplicates preserved.
type DocumentIndex struct {
	mu      sync.Mutex
	entries []*entity.IndexedDocument
}

var _ contract.DocumentIndexRepository = (*DocumentIndex)(nil)

func NewDocumentIndex() *DocumentIndex {
	return &DocumentIndex{}
}

func (s *DocumentIndex) Create(_ context.Context, document *entity.IndexedDocument) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *document
	s.entries = append(s.entries, &cp)
	return nil
}

// FindAll returns entries most-recent-first.
func (s *DocumentIndex) FindAll(_ context.Context) ([]*entity.IndexedDocument, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]*entity.IndexedDocument, 0, len(s.entries))
	for i := len(s.entries) - 1; i >= 0; i-- {
		cp := *s.entries[i]
		result = append(result, &cp)
	}
	return result, nil
}

func (s *DocumentIndex) Count(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return int64(len(s.entries)), nil
}
