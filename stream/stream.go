// Package stream defines the byte-transfer capability contracts shared by
// HTTP implementations: blocking [Readable]/[Writable] and their
// callback-driven [AsyncReadable]/[AsyncWritable] counterparts.
//
// Every operation is bounded by a [deadline.Deadline]. Transports, parsers
// and executors implement these interfaces; this package only fixes the
// contract and ships in-memory implementations ([Pipe], [BytesReader],
// [BytesWriter]) used as reference behavior and test doubles.
package stream

import (
	"httpbase/deadline"

	"github.com/pkg/errors"
)

var (
	// ErrTimeout reports that an operation did not complete before its
	// deadline. It is distinct from transport failure: the caller may
	// retry with a new deadline or give up.
	ErrTimeout = errors.New("deadline exceeded")

	// ErrClosed reports an operation on a closed stream: the caller's own
	// side for reads, either side for writes. A peer that closes before a
	// read is a clean end of stream, not an error.
	ErrClosed = errors.New("stream is closed")
)

// Readable pulls bytes from a source.
//
// A single Readable is safe for sequential use only: two reads issued one
// after the other observe bytes in production order, but concurrent reads
// from multiple goroutines need external synchronization.
type Readable interface {
	// Read blocks until at least one byte is available, p is full, the
	// peer signals end of stream, or d expires. It returns the number of
	// bytes placed into p. n == 0 with a nil error means a clean end of
	// stream. Expiry is reported as [ErrTimeout]; anything else is a
	// transport failure.
	Read(p []byte, d deadline.Deadline) (n int, err error)
}

// Writable pushes bytes into a sink.
type Writable interface {
	// Write blocks until every byte of p is accepted by the sink or d
	// expires. There is no partial-success result: on error the caller
	// must treat the transfer as failed. Expiry is reported as
	// [ErrTimeout].
	Write(p []byte, d deadline.Deadline) error
}

// AsyncReadable is [Readable] with completion delivered through a callback.
type AsyncReadable interface {
	// Read returns immediately. done is invoked exactly once with the
	// result of the transfer, under the same contract as [Readable.Read].
	// done is never invoked on the caller's stack before Read returns;
	// it may run on a different goroutine.
	Read(p []byte, d deadline.Deadline, done func(n int, err error))
}

// AsyncWritable is [Writable] with completion delivered through a callback.
type AsyncWritable interface {
	// Write returns immediately. done is invoked exactly once, with nil
	// on success, under the same contract as [Writable.Write]. done is
	// never invoked on the caller's stack before Write returns.
	Write(p []byte, d deadline.Deadline, done func(err error))
}
