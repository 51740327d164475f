package agentstub

import "sync"

// outputBuffer keeps a bounded window of session output addressed by
// absolute byte offset. Offsets keep growing as old bytes are trimmed, so
// a polling client's cursor stays meaningful for the life of the session
// even after the window slides.
type outputBuffer struct {
	mu    sync.Mutex
	data  []byte
	start uint64 // absolute offset of data[0]
	max   int
}

func newOutputBuffer(max int) *outputBuffer {
	return &outputBuffer{max: max}
}

func (b *outputBuffer) Write(p []byte) {
	if len(p) == 0 {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data = append(b.data, p...)
	if over := len(b.data) - b.max; over > 0 {
		n := copy(b.data, b.data[over:])
		b.data = b.data[:n]
		b.start += uint64(over)
	}
}

// ReadAt returns up to max bytes starting at the absolute offset. Offsets
// that fell out of the window resume at the oldest retained byte; offsets
// at or past the end return nil.
func (b *outputBuffer) ReadAt(offset uint64, max int) []byte {
	b.mu.Lock()
	defer b.mu.Unlock()

	end := b.start + uint64(len(b.data))
	if offset >= end {
		return nil
	}
	if offset < b.start {
		offset = b.start
	}
	chunk := b.data[offset-b.start:]
	if max > 0 && len(chunk) > max {
		chunk = chunk[:max]
	}
	return append([]byte(nil), chunk...)
}

// Tail returns the newest max bytes (the whole window when max <= 0).
func (b *outputBuffer) Tail(max int) []byte {
	b.mu.Lock()
	defer b.mu.Unlock()

	chunk := b.data
	if max > 0 && len(chunk) > max {
		chunk = chunk[len(chunk)-max:]
	}
	if len(chunk) == 0 {
		return nil
	}
	return append([]byte(nil), chunk...)
}

// End returns the absolute offset one past the newest byte.
func (b *outputBuffer) End() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.start + uint64(len(b.data))
}
