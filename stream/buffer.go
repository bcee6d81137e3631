package stream

import (
	"sync"

	"httpbase/deadline"
)

// BytesReader is a [Readable] serving from an in-memory byte slice.
// It never blocks, so a deadline (even [deadline.Immediate]) never
// fails it: a poll always finds data or end of stream ready.
// Once the slice is drained every read reports a clean end of stream.
type BytesReader struct {
	mu   sync.Mutex
	rest []byte
}

var _ Readable = (*BytesReader)(nil)

// NewBytesReader copies b so later mutation of b does not affect reads.
func NewBytesReader(b []byte) *BytesReader {
	c := make([]byte, len(b))
	copy(c, b)
	return &BytesReader{rest: c}
}

// Empty returns a [Readable] that is already at end of stream.
// It is the documented way to represent an absent body.
func Empty() *BytesReader { return &BytesReader{} }

func (r *BytesReader) Read(p []byte, _ deadline.Deadline) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.rest) == 0 {
		return 0, nil
	}

	n := copy(p, r.rest)
	r.rest = r.rest[n:]
	return n, nil
}

// Len returns the number of unread bytes.
func (r *BytesReader) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rest)
}

// BytesWriter is a [Writable] accumulating everything written to it
// in memory. It never blocks and accepts every write in full.
type BytesWriter struct {
	mu  sync.Mutex
	buf []byte
}

var _ Writable = (*BytesWriter)(nil)

func NewBytesWriter() *BytesWriter { return &BytesWriter{} }

func (w *BytesWriter) Write(p []byte, _ deadline.Deadline) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.buf = append(w.buf, p...)
	return nil
}

// Bytes returns a copy of everything written so far.
func (w *BytesWriter) Bytes() []byte {
	w.mu.Lock()
	defer w.mu.Unlock()
	c := make([]byte, len(w.buf))
	copy(c, w.buf)
	return c
}
