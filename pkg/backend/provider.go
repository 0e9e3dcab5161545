package backend

import (
	"context"
	"fmt"

	"ai-chatdesk-be/internal/entity"
)

// QueryResult is a backend answer plus the sources it cites.
type QueryResult struct {
	Text    string
	Sources []entity.SourceRef
}

// IngestResult reports the outcome of handing documents to the backend
// for indexing.
type IngestResult struct {
	Success bool
	Message string
}

// Provider abstracts the knowledge backend. QueryText asks a question,
// QuerySpeech sends raw recorded audio for transcription plus answering,
// IngestDocuments registers local files for retrieval.
type Provider interface {
	QueryText(ctx context.Context, query string) (*QueryResult, error)
	QuerySpeech(ctx context.Context, filename string, audio []byte) (*QueryResult, error)
	IngestDocuments(ctx context.Context, filePaths []string, category string) (*IngestResult, error)
}

// ResponseValidationError marks a backend reply that arrived but did not
// hold up to the contract. It is raised before anything gets recorded.
type ResponseValidationError struct {
	Field  string
	Reason string
}

func (e *ResponseValidationError) Error() string {
	return fmt.Sprintf("invalid backend response: field %q %s", e.Field, e.Reason)
}
