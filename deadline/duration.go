package deadline

import "time"

// Unit helpers for building a [time.Duration] from a plain count,
// including fractional counts (e.g. Seconds(1.5)).

func Milliseconds(n float64) time.Duration {
	return time.Duration(n * float64(time.Millisecond))
}

func Seconds(n float64) time.Duration { return Milliseconds(n * 1000) }

func Minutes(n float64) time.Duration { return Milliseconds(n * 60_000) }

func Hours(n float64) time.Duration { return Milliseconds(n * 3_600_000) }
