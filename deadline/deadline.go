// Package deadline provides absolute time bounds for blocking operations.
//
// A [Deadline] is an absolute instant, not a duration. Passing the same
// deadline through a chain of sequential blocking calls keeps the total
// wait bounded by one budget, instead of each call re-spending a fresh
// timeout of its own.
//
// Time is always read through an injected [clock.Clock] so that callers
// (and tests) control the time source. [clock.Clock] samples include Go's
// monotonic reading, so in-flight deadlines are immune to wall-clock jumps.
package deadline

import (
	"time"

	"github.com/benbjohnson/clock"
)

// Deadline is an absolute point in time after which a pending operation
// must give up with a timeout.
//
// The zero value never expires. [Immediate] is already expired and turns
// a blocking call into a non-blocking poll.
type Deadline struct {
	at        time.Time
	immediate bool
}

// Never is a deadline that never expires. It is the zero value.
var Never = Deadline{}

// Immediate is a deadline that has always already passed.
var Immediate = Deadline{immediate: true}

// At returns a deadline expiring at t.
// A zero t means no limit, same as [Never].
func At(t time.Time) Deadline { return Deadline{at: t} }

// After returns a deadline expiring d from the clock's current time.
// A non-positive d behaves like [Immediate] once checked.
func After(c clock.Clock, d time.Duration) Deadline {
	return Deadline{at: c.Now().Add(d)}
}

// IsNever reports whether d never expires.
func (d Deadline) IsNever() bool { return !d.immediate && d.at.IsZero() }

// Time returns the absolute expiry instant.
// ok is false for [Never] and [Immediate], which have no meaningful instant.
func (d Deadline) Time() (t time.Time, ok bool) {
	if d.immediate || d.at.IsZero() {
		return time.Time{}, false
	}
	return d.at, true
}

// Expired reports whether the deadline has passed according to c.
func (d Deadline) Expired(c clock.Clock) bool {
	switch {
	case d.immediate:
		return true
	case d.at.IsZero():
		return false
	}
	return !c.Now().Before(d.at)
}

// Remaining returns the time left before expiry, clamped at zero.
// ok is false for [Never], which has unlimited remaining time.
func (d Deadline) Remaining(c clock.Clock) (left time.Duration, ok bool) {
	switch {
	case d.immediate:
		return 0, true
	case d.at.IsZero():
		return 0, false
	}
	if left = c.Until(d.at); left < 0 {
		left = 0
	}
	return left, true
}

// Wait returns a channel that becomes readable once the deadline passes,
// for use as a case in a select loop. For [Never] it returns nil, which
// blocks forever in a select. Each call arms a fresh timer, so call it
// once per operation, not once per loop iteration.
func (d Deadline) Wait(c clock.Clock) <-chan time.Time {
	switch {
	case d.immediate:
		ch := make(chan time.Time)
		close(ch)
		return ch
	case d.at.IsZero():
		return nil
	}
	return c.After(c.Until(d.at))
}
