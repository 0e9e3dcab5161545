package staging

import (
	"strings"
	"sync"

	"ai-chatdesk-be/internal/constant"
	"ai-chatdesk-be/internal/entity"
)

// Area holds attachments staged for the next message. It is pure UI
// state: entries describe what the composer shows, ingestion has already
// happened by the time anything lands here.
type Area struct {
	mu    sync.Mutex
	items []entity.StagedAttachment
}

func New() *Area {
	return &Area{}
}

func (a *Area) Append(items ...entity.StagedAttachment) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.items = append(a.items, items...)
}

// AppendRecording stages captured audio bytes. The payload rides along
// so the send path can route the turn through speech transcription.
func (a *Area) AppendRecording(name string, payload []byte) {
	a.mu.Lock()
	defer a.mu.Unlock()

	// A recording is marked by the payload being present, not by its
	// size. Keep a zero-length capture distinguishable from no payload.
	if payload == nil {
		payload = []byte{}
	}
	a.items = append(a.items, entity.StagedAttachment{
		Name:    name,
		Type:    constant.AttachmentTypeAudio,
		Payload: payload,
	})
}

// RemoveAt drops the entry at index i. Out-of-range indexes are a no-op.
func (a *Area) RemoveAt(i int) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if i < 0 || i >= len(a.items) {
		return false
	}
	a.items = append(a.items[:i], a.items[i+1:]...)
	return true
}

func (a *Area) Clear() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.items = nil
}

func (a *Area) List() []entity.StagedAttachment {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]entity.StagedAttachment, len(a.items))
	copy(out, a.items)
	return out
}

func (a *Area) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()

	return len(a.items)
}

// HasPendingAudio reports whether any staged entry carries a recorded
// payload awaiting transcription.
func (a *Area) HasPendingAudio() bool {
	_, ok := a.PendingAudio()
	return ok
}

// PendingAudio returns the first staged recording, if any.
func (a *Area) PendingAudio() (entity.StagedAttachment, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, item := range a.items {
		if item.PendingAudio() {
			return item, true
		}
	}
	return entity.StagedAttachment{}, false
}

// CanSend reports whether a turn can be dispatched: either non-blank
// text or at least one staged attachment.
func (a *Area) CanSend(text string) bool {
	if strings.TrimSpace(text) != "" {
		return true
	}
	return a.Len() > 0
}
