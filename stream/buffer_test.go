package stream

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"httpbase/deadline"
)

func TestBytesReader(t *testing.T) {
	r := NewBytesReader([]byte("Hello, World!"))

	buf := make([]byte, 10)

	n, err := r.Read(buf, deadline.Never)
	require.NoError(t, err)
	assert.Equal(t, []byte("Hello, Wor"), buf[:n])

	n, err = r.Read(buf, deadline.Never)
	require.NoError(t, err)
	assert.Equal(t, []byte("ld!"), buf[:n])
	assert.Zero(t, r.Len())

	// Drained: every further read is a clean end of stream.
	n, err = r.Read(buf, deadline.Never)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestBytesReaderIgnoresDeadline(t *testing.T) {
	r := NewBytesReader([]byte("hey"))

	// Data is ready, so even an already-passed deadline succeeds.
	n, err := r.Read(make([]byte, 10), deadline.Immediate)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestBytesReaderCopiesInput(t *testing.T) {
	src := []byte("abc")
	r := NewBytesReader(src)
	src[0] = 'x'

	buf := make([]byte, 3)
	n, err := r.Read(buf, deadline.Never)
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), buf[:n])
}

func TestEmpty(t *testing.T) {
	n, err := Empty().Read(make([]byte, 10), deadline.Immediate)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestBytesWriter(t *testing.T) {
	w := NewBytesWriter()

	require.NoError(t, w.Write([]byte("Hello, "), deadline.Never))
	require.NoError(t, w.Write([]byte("World!"), deadline.Immediate))

	assert.Equal(t, []byte("Hello, World!"), w.Bytes())
}
