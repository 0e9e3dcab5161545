package constant

const (
	ChatMessageRoleUser  = "user"
	ChatMessageRoleModel = "model"

	// Title given to a session before the first user message arrives.
	DefaultSessionTitle = "New chat"

	// Session titles derive from the first user message, cut at this
	// many runes with an ellipsis appended.
	SessionTitleMaxRunes = 30

	// Shown as the user turn of a speech query. The transcript, if the
	// backend produces one, is never echoed back as user content.
	VoiceQueryLabelPrefix = "Voice message: "

	// Reply recorded when the backend call fails. The session stays
	// usable; the next send starts clean.
	BackendFailureReply = "Sorry, I could not reach the knowledge backend. Please try again."
)

const (
	AttachmentTypeDocument = "document"
	AttachmentTypeVideo    = "video"
	AttachmentTypeAudio    = "audio"
	AttachmentTypeImage    = "image"
)
