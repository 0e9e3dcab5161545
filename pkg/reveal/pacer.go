package reveal

import (
	"context"
	"time"
)

const (
	defaultChunkRunes = 24
	defaultIntervalMs = 30
)

// Chunks splits text into rune-aware pieces of at most size runes. The
// concatenation of the result is always exactly the input.
func Chunks(text string, size int) []string {
	if size <= 0 {
		size = defaultChunkRunes
	}
	if text == "" {
		return nil
	}

	runes := []rune(text)
	out := make([]string, 0, (len(runes)+size-1)/size)
	for start := 0; start < len(runes); start += size {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		}
		out = append(out, string(runes[start:end]))
	}
	return out
}

// Pacer emits a reply progressively so the UI can render it as if it
// were being typed.
type Pacer struct {
	chunkRunes int
	interval   time.Duration
}

func NewPacer(chunkRunes, intervalMs int) *Pacer {
	if chunkRunes <= 0 {
		chunkRunes = defaultChunkRunes
	}
	if intervalMs <= 0 {
		intervalMs = defaultIntervalMs
	}
	return &Pacer{
		chunkRunes: chunkRunes,
		interval:   time.Duration(intervalMs) * time.Millisecond,
	}
}

// Stream invokes emit once per chunk, pausing between chunks. The last
// invocation carries done=true. Cancelling the context stops the stream
// early without a final done emit.
func (p *Pacer) Stream(ctx context.Context, text string, emit func(chunk string, done bool)) error {
	chunks := Chunks(text, p.chunkRunes)
	if len(chunks) == 0 {
		emit("", true)
		return nil
	}

	for i, chunk := range chunks {
		if i > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(p.interval):
			}
		}
		emit(chunk, i == len(chunks)-1)
	}
	return nil
}
