package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage is append-only within a session. Content is plain text for
// user turns and markdown for model turns.
type ChatMessage struct {
	Id            uuid.UUID
	ChatSessionId uuid.UUID
	Role          string
	Chat          string
	Sources       []SourceRef
	CreatedAt     time.Time
}
