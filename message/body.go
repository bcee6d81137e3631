package message

import "httpbase/stream"

// Body selects how message content moves: either the consumer pulls it
// from a [stream.Readable] (a parser already produced a stream), or a
// producer pushes it into a [stream.Writable] handed to its callback
// (streamed output without pre-buffering). A body is never both, and
// never "absent": represent an empty body with [stream.Empty] or a
// producer that writes nothing. That convention belongs to the layer
// constructing the message; this type does not enforce it.
type Body struct {
	r       stream.Readable
	produce func(stream.Writable) error
}

// PullBody wraps a readable the consumer drains at its own pace.
func PullBody(r stream.Readable) Body { return Body{r: r} }

// PushBody wraps a producer. The producer calls Write zero or more times
// on the capability it is given, then returns; its error is the body's
// transfer outcome.
func PushBody(produce func(stream.Writable) error) Body {
	return Body{produce: produce}
}

// Readable returns the pull source, if this is a pull body.
func (b Body) Readable() (stream.Readable, bool) { return b.r, b.r != nil }

// Producer returns the push callback, if this is a push body.
func (b Body) Producer() (func(stream.Writable) error, bool) {
	return b.produce, b.produce != nil
}

// IsZero reports whether the body was never given either shape.
func (b Body) IsZero() bool { return b.r == nil && b.produce == nil }

// AsyncBody is [Body] for the non-blocking world. The producer receives
// an [stream.AsyncWritable] plus a completion callback it must invoke
// exactly once after its last write completes.
type AsyncBody struct {
	r       stream.AsyncReadable
	produce func(w stream.AsyncWritable, done func(err error))
}

func PullAsyncBody(r stream.AsyncReadable) AsyncBody { return AsyncBody{r: r} }

func PushAsyncBody(produce func(w stream.AsyncWritable, done func(err error))) AsyncBody {
	return AsyncBody{produce: produce}
}

func (b AsyncBody) Readable() (stream.AsyncReadable, bool) { return b.r, b.r != nil }

func (b AsyncBody) Producer() (func(stream.AsyncWritable, func(error)), bool) {
	return b.produce, b.produce != nil
}

func (b AsyncBody) IsZero() bool { return b.r == nil && b.produce == nil }
