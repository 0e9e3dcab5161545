package reveal

import (
	"context"
	"strings"
	"testing"
)

func TestChunks(t *testing.T) {
	tests := []struct {
		name string
		text string
		size int
		want []string
	}{
		{
			name: "empty text yields nothing",
			text: "",
			size: 4,
			want: nil,
		},
		{
			name: "exact multiple",
			text: "abcdefgh",
			size: 4,
			want: []string{"abcd", "efgh"},
		},
		{
			name: "remainder chunk",
			text: "abcde",
			size: 2,
			want: []string{"ab", "cd", "e"},
		},
		{
			name: "multibyte runes stay whole",
			text: "héllö wörld",
			size: 3,
			want: []string{"hél", "lö ", "wör", "ld"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Chunks(tt.text, tt.size)
			if len(got) != len(tt.want) {
				t.Fatalf("Chunks(%q, %d) = %v, want %v", tt.text, tt.size, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("chunk[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestChunksConcatenationIsLossless(t *testing.T) {
	text := "The quick brown fox jumps over the lazy dog, twice."
	if got := strings.Join(Chunks(text, 7), ""); got != text {
		t.Errorf("concatenated chunks = %q, want %q", got, text)
	}
}

func TestPacerStreamEmitsDoneOnce(t *testing.T) {
	p := NewPacer(4, 1)

	var chunks []string
	doneCount := 0
	err := p.Stream(context.Background(), "abcdefghij", func(chunk string, done bool) {
		chunks = append(chunks, chunk)
		if done {
			doneCount++
		}
	})
	if err != nil {
		t.Fatalf("Stream: %v", err)
	}
	if strings.Join(chunks, "") != "abcdefghij" {
		t.Errorf("streamed text = %q", strings.Join(chunks, ""))
	}
	if doneCount != 1 {
		t.Errorf("done emitted %d times, want 1", doneCount)
	}
}

func TestPacerStreamEmptyText(t *testing.T) {
	p := NewPacer(4, 1)

	calls := 0
	lastDone := false
	if err := p.Stream(context.Background(), "", func(chunk string, done bool) {
		calls++
		lastDone = done
	}); err != nil {
		t.Fatalf("Stream: %v", err)
	}
	if calls != 1 || !lastDone {
		t.Errorf("empty text: calls=%d lastDone=%v, want single done emit", calls, lastDone)
	}
}
