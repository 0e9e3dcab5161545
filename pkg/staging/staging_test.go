package staging

import (
	"testing"

	"ai-chatdesk-be/internal/constant"
	"ai-chatdesk-be/internal/entity"
)

func TestAppendAndList(t *testing.T) {
	a := New()
	a.Append(
		entity.StagedAttachment{Name: "a.pdf", Type: constant.AttachmentTypeDocument, Path: "/docs/a.pdf"},
		entity.StagedAttachment{Name: "b.mp4", Type: constant.AttachmentTypeVideo, Path: "/media/b.mp4"},
	)

	items := a.List()
	if len(items) != 2 {
		t.Fatalf("Len = %d, want 2", len(items))
	}
	if items[0].Name != "a.pdf" || items[1].Name != "b.mp4" {
		t.Errorf("order not preserved: %v", items)
	}
}

func TestRemoveAt(t *testing.T) {
	a := New()
	a.Append(
		entity.StagedAttachment{Name: "a.pdf"},
		entity.StagedAttachment{Name: "b.pdf"},
		entity.StagedAttachment{Name: "c.pdf"},
	)

	if !a.RemoveAt(1) {
		t.Fatal("RemoveAt(1) = false, want true")
	}
	items := a.List()
	if len(items) != 2 || items[0].Name != "a.pdf" || items[1].Name != "c.pdf" {
		t.Errorf("unexpected items after removal: %v", items)
	}

	if a.RemoveAt(5) {
		t.Error("RemoveAt out of range should be a no-op")
	}
	if a.RemoveAt(-1) {
		t.Error("RemoveAt negative index should be a no-op")
	}
}

func TestClear(t *testing.T) {
	a := New()
	a.Append(entity.StagedAttachment{Name: "a.pdf"})
	a.Clear()
	if a.Len() != 0 {
		t.Errorf("Len after Clear = %d, want 0", a.Len())
	}
}

func TestPendingAudio(t *testing.T) {
	a := New()
	if a.HasPendingAudio() {
		t.Error("empty area reports pending audio")
	}

	// An audio file picked from disk is not a pending recording.
	a.Append(entity.StagedAttachment{Name: "song.mp3", Type: constant.AttachmentTypeAudio, Path: "/music/song.mp3"})
	if a.HasPendingAudio() {
		t.Error("on-disk audio attachment should not count as pending recording")
	}

	a.AppendRecording("recording-1.wav", []byte{1, 2, 3})
	if !a.HasPendingAudio() {
		t.Fatal("recording with payload should count as pending audio")
	}

	rec, ok := a.PendingAudio()
	if !ok || rec.Name != "recording-1.wav" {
		t.Errorf("PendingAudio = %v %v, want recording-1.wav", rec, ok)
	}
}

func TestZeroLengthRecordingIsStillPendingAudio(t *testing.T) {
	a := New()

	a.AppendRecording("silence.wav", []byte{})
	if !a.HasPendingAudio() {
		t.Fatal("zero-length recording should count as pending audio")
	}

	a.Clear()
	a.AppendRecording("nil-payload.wav", nil)
	if !a.HasPendingAudio() {
		t.Error("recording staged with nil payload should still count as pending audio")
	}
}

func TestCanSend(t *testing.T) {
	a := New()

	tests := []struct {
		name  string
		setup func()
		text  string
		want  bool
	}{
		{name: "nothing at all", setup: func() {}, text: "", want: false},
		{name: "whitespace only", setup: func() {}, text: "   ", want: false},
		{name: "text alone", setup: func() {}, text: "hello", want: true},
		{
			name:  "attachment alone",
			setup: func() { a.Append(entity.StagedAttachment{Name: "a.pdf"}) },
			text:  "",
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a.Clear()
			tt.setup()
			if got := a.CanSend(tt.text); got != tt.want {
				t.Errorf("CanSend(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
