package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateSessionResponse struct {
	Id    uuid.UUID `json:"id"`
	Title string    `json:"title"`
}

type GetAllSessionsResponse struct {
	Id        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type GetChatHistoryResponse struct {
	Id        uuid.UUID      `json:"id"`
	Role      string         `json:"role"`
	Chat      string         `json:"chat"`
	CreatedAt time.Time      `json:"created_at"`
	Sources   []SourceRefDTO `json:"sources,omitempty"`
}

type SendChatRequest struct {
	ChatSessionId uuid.UUID `json:"chat_session_id" validate:"required"`
	Chat          string    `json:"chat"`
}

// SourceRefDTO is a source reference resolved for display. ResourceId is
// the in-app address for preview rendering; it is empty for legacy
// display-only sources, which render as plain labels.
type SourceRefDTO struct {
	Name        string `json:"name"`
	Path        string `json:"path,omitempty"`
	ResourceId  string `json:"resource_id,omitempty"`
	Interactive bool   `json:"interactive"`
}

type SendChatResponseChat struct {
	Id        uuid.UUID      `json:"id"`
	Chat      string         `json:"chat"`
	Role      string         `json:"role"`
	CreatedAt time.Time      `json:"created_at"`
	Sources   []SourceRefDTO `json:"sources,omitempty"`
}

type SendChatResponse struct {
	ChatSessionId    uuid.UUID             `json:"chat_session_id"`
	ChatSessionTitle string                `json:"title"`
	Sent             *SendChatResponseChat `json:"sent"`
	Reply            *SendChatResponseChat `json:"reply"`

	// Failed marks a backend failure that was recorded as a visible
	// reply. The session stays consistent and input stays enabled.
	Failed bool `json:"failed,omitempty"`
}

type DeleteSessionRequest struct {
	ChatSessionId uuid.UUID `json:"chat_session_id" validate:"required"`
}
