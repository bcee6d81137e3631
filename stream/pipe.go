package stream

import (
	"sync"

	"github.com/benbjohnson/clock"

	"httpbase/deadline"
)

// Pipe is one end of a synchronous, unbuffered in-memory stream pair.
// Reads on one end are served by writes on the other, rendezvous style:
// an unbuffered offer channel plus a consumed-count reply, so a write
// observes exactly how much the reader took. It is the reference
// implementation of [Readable] and [Writable].
type Pipe struct {
	clock clock.Clock

	stream chan []byte // bytes offered to this end.
	nc     chan int    // how much of our offer the counterpart consumed.

	// Serializes write operations to prevent interleaving.
	writeMu sync.Mutex

	closed chan struct{}
	once   sync.Once

	counterpart *Pipe
}

var (
	_ Readable = (*Pipe)(nil)
	_ Writable = (*Pipe)(nil)
)

// NewPipe creates a connected pair of pipe ends sharing one clock.
func NewPipe(c clock.Clock) (p1, p2 *Pipe) {
	p1 = &Pipe{
		clock:  c,
		stream: make(chan []byte),
		nc:     make(chan int),
		closed: make(chan struct{}),
	}
	p2 = &Pipe{
		clock:  c,
		stream: make(chan []byte),
		nc:     make(chan int),
		closed: make(chan struct{}),
	}
	p1.counterpart, p2.counterpart = p2, p1
	return
}

// Close marks this end closed. The counterpart's pending and future reads
// observe a clean end of stream; its writes fail with [ErrClosed].
// Closing twice is a no-op.
func (p *Pipe) Close() error {
	p.once.Do(func() { close(p.closed) })
	return nil
}

func (p *Pipe) Read(b []byte, d deadline.Deadline) (n int, err error) {
	// Serve data that is already offered before consulting the deadline,
	// so an [deadline.Immediate] poll succeeds when bytes are ready.
	select {
	case received := <-p.stream:
		return p.consume(b, received), nil
	default:
	}

	switch {
	case isClosed(p.closed):
		return 0, ErrClosed
	case isClosed(p.counterpart.closed):
		// Peer is gone and nothing was in flight: end of stream.
		return 0, nil
	}

	select {
	case received := <-p.stream:
		return p.consume(b, received), nil
	case <-p.closed:
		return 0, ErrClosed
	case <-p.counterpart.closed:
		return 0, nil
	case <-d.Wait(p.clock):
		return 0, ErrTimeout
	}
}

func (p *Pipe) consume(b, received []byte) int {
	n := copy(b, received)
	p.counterpart.nc <- n
	return n
}

func (p *Pipe) Write(b []byte, d deadline.Deadline) error {
	if len(b) == 0 {
		if isClosed(p.closed) || isClosed(p.counterpart.closed) {
			return ErrClosed
		}
		return nil
	}

	p.writeMu.Lock()
	defer p.writeMu.Unlock()

	// One timer bounds the whole transfer, no matter how many offers
	// it takes to drain b.
	expired := d.Wait(p.clock)

	for len(b) > 0 {
		// Same fast path as Read: a waiting reader beats the deadline.
		select {
		case p.counterpart.stream <- b:
			b = b[<-p.nc:]
			continue
		default:
		}

		select {
		case p.counterpart.stream <- b:
			b = b[<-p.nc:]
		case <-p.closed:
			return ErrClosed
		case <-p.counterpart.closed:
			return ErrClosed
		case <-expired:
			return ErrTimeout
		}
	}

	return nil
}

func isClosed(c <-chan struct{}) bool {
	select {
	case <-c: // c will only fire at closed state.
		return true
	default:
		return false
	}
}
