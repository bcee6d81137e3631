package stream

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"httpbase/deadline"
)

func TestAsyncFromReadable(t *testing.T) {
	defer goleak.VerifyNone(t)

	r := AsyncFromReadable(NewBytesReader([]byte("hey")))

	buf := make([]byte, 10)
	result := make(chan int, 1)

	var calls atomic.Int32
	r.Read(buf, deadline.Never, func(n int, err error) {
		calls.Add(1)
		assert.NoError(t, err)
		result <- n
	})

	n := <-result
	assert.Equal(t, []byte("hey"), buf[:n])
	assert.Equal(t, int32(1), calls.Load())
}

func TestAsyncFromWritable(t *testing.T) {
	defer goleak.VerifyNone(t)

	sink := NewBytesWriter()
	w := AsyncFromWritable(sink)

	done := make(chan error, 1)
	w.Write([]byte("hey"), deadline.Never, func(err error) { done <- err })

	require.NoError(t, <-done)
	assert.Equal(t, []byte("hey"), sink.Bytes())
}

// timedOutWritable refuses every write with a timeout, like a sink whose
// peer never drains.
type timedOutWritable struct{}

var _ Writable = timedOutWritable{}

func (timedOutWritable) Write([]byte, deadline.Deadline) error { return ErrTimeout }

func TestAsyncWriteTimeout(t *testing.T) {
	defer goleak.VerifyNone(t)

	w := AsyncFromWritable(timedOutWritable{})

	var calls atomic.Int32
	done := make(chan error, 1)
	w.Write([]byte("hey"), deadline.Immediate, func(err error) {
		calls.Add(1)
		done <- err
	})

	// The failure arrives through the callback, exactly once.
	assert.ErrorIs(t, <-done, ErrTimeout)
	assert.Equal(t, int32(1), calls.Load())
}

func TestAsyncEndOfStream(t *testing.T) {
	defer goleak.VerifyNone(t)

	r := AsyncFromReadable(Empty())

	done := make(chan struct{})
	r.Read(make([]byte, 10), deadline.Immediate, func(n int, err error) {
		assert.NoError(t, err)
		assert.Zero(t, n)
		close(done)
	})
	<-done
}
