package entity

import (
	"time"

	"github.com/google/uuid"
)

// IndexedDocument is one entry of the process-lifetime document index:
// every file ever staged and confirmed for ingestion, independent of any
// chat session. Duplicate uploads of the same path produce duplicate
// entries on purpose.
type IndexedDocument struct {
	Id   uuid.UUID
	Name string
	Path string
	Type string
	Date time.Time
}
