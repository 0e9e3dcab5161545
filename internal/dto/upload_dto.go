package dto

import "time"

// UploadRequest mirrors the outcome of a file-selection dialog. Exactly one
// of Paths (file-mode, order preserved) or Directory (directory-mode,
// walked recursively) is expected; Canceled marks the dialog being
// dismissed, a normal terminal outcome rather than an error.
type UploadRequest struct {
	Paths     []string `json:"paths,omitempty" validate:"dive,abspath"`
	Directory string   `json:"directory,omitempty" validate:"omitempty,abspath"`
	Category  string   `json:"category" validate:"required,oneof=document video audio image"`
	Canceled  bool     `json:"canceled,omitempty"`

	// Stage marks an upload triggered from the chat composer: the
	// resolved files are additionally staged as pending attachments.
	Stage bool `json:"stage,omitempty"`
}

type UploadedFileDTO struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Type string `json:"type"`
}

type UploadResponse struct {
	Canceled bool              `json:"canceled,omitempty"`
	Message  string            `json:"message"`
	Files    []UploadedFileDTO `json:"files"`
}

type IndexedDocumentResponse struct {
	Name string    `json:"name"`
	Path string    `json:"path"`
	Type string    `json:"type"`
	Date time.Time `json:"date"`
}

// UploadFiltersResponse exposes the extension allow-lists the selection
// dialog applies per category. Filtering happens only at dialog level;
// the resolver itself never inspects content.
type UploadFiltersResponse struct {
	Categories map[string][]string `json:"categories"`
}
