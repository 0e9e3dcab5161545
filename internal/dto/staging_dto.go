package dto

// StageFilesRequest appends upload results to the staging area.
type StageFilesRequest struct {
	Files []UploadedFileDTO `json:"files" validate:"required,min=1,dive"`
}

type StagedAttachmentDTO struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Path string `json:"path,omitempty"`

	// Recorded marks an in-memory recording that has no on-disk path yet.
	Recorded bool `json:"recorded,omitempty"`
}

type GetStagingResponse struct {
	Items           []StagedAttachmentDTO `json:"items"`
	HasPendingAudio bool                  `json:"has_pending_audio"`
}
