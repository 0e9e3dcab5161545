package model

import (
	"time"

	"github.com/google/uuid"
)

// No unique constraint on Path: duplicate uploads of the same file are
// recorded as separate entries.
type IndexedDocument struct {
	Id   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"type:text;not null"`
	Path string    `gorm:"type:text;not null;index"`
	Type string    `gorm:"type:text;not null"`
	Date time.Time `gorm:"autoCreateTime;index"`
}

func (IndexedDocument) TableName() string {
	return "indexed_documents"
}
