package stream

import "httpbase/deadline"

// AsyncFromReadable adapts a blocking [Readable] into an [AsyncReadable]
// by running each read on its own goroutine. The callback therefore never
// runs on the caller's stack.
//
// This is the minimal executor; real transports are expected to bring
// their own (event loop, worker pool) and implement [AsyncReadable]
// directly.
func AsyncFromReadable(r Readable) AsyncReadable { return asyncReadable{r: r} }

type asyncReadable struct{ r Readable }

var _ AsyncReadable = asyncReadable{}

func (a asyncReadable) Read(p []byte, d deadline.Deadline, done func(n int, err error)) {
	go func() { done(a.r.Read(p, d)) }()
}

// AsyncFromWritable adapts a blocking [Writable] into an [AsyncWritable],
// with the same per-operation goroutine discipline as [AsyncFromReadable].
func AsyncFromWritable(w Writable) AsyncWritable { return asyncWritable{w: w} }

type asyncWritable struct{ w Writable }

var _ AsyncWritable = asyncWritable{}

func (a asyncWritable) Write(p []byte, d deadline.Deadline, done func(err error)) {
	go func() { done(a.w.Write(p, d)) }()
}
