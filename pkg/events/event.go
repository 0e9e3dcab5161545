package events

// Topics on the in-process event bus. Subscribers fan messages out to
// websocket clients and background listeners.
const (
	TopicChatReveal        = "chat.reveal"
	TopicDocumentIngested  = "document.ingested"
	TopicChatSessionClosed = "chat.session_closed"
)

// ChatRevealPayload is one progressive-reveal chunk of a bot reply.
type ChatRevealPayload struct {
	ChatSessionId string `json:"chat_session_id"`
	Seq           int    `json:"seq"`
	Chunk         string `json:"chunk"`
	Done          bool   `json:"done"`
	Failed        bool   `json:"failed,omitempty"`
}

// DocumentIngestedPayload announces a finished ingestion so any open
// view can refresh its document listing.
type DocumentIngestedPayload struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Type string `json:"type"`
	Date string `json:"date"`
}

// ChatSessionClosedPayload tells stream subscribers a session was
// deleted and its socket should go away.
type ChatSessionClosedPayload struct {
	ChatSessionId string `json:"chat_session_id"`
}
