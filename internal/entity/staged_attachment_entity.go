package entity

import "ai-chatdesk-be/internal/constant"

// StagedAttachment lives only in memory between an upload or record action
// and the next send. It has no backing persistence and is cleared
// unconditionally once dispatch begins.
type StagedAttachment struct {
	Name string
	Type string

	// Path is set for attachments that exist on disk.
	Path string

	// Payload holds raw bytes for a locally-recorded item not yet on
	// disk. Non-nil only on the recorded-audio variant; a zero-length
	// capture is still a recording and still routes through speech.
	Payload []byte
}

// PendingAudio reports whether this is a recorded-audio item awaiting
// dispatch as a speech query.
func (a StagedAttachment) PendingAudio() bool {
	return a.Type == constant.AttachmentTypeAudio && a.Payload != nil
}
