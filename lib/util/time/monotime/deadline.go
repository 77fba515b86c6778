package monotime

import (
	"math"
	"time"
)

// maxFutureNS caps how far in the future a deadline may land: 1000 days.
// Offsets beyond that are clamped rather than rejected.
const maxFutureNS int64 = 1000 * 24 * 60 * 60 * nsPerSec

// Deadline is an absolute wall-clock instant (seconds and nanoseconds since
// the Unix epoch) at which a blocking wait should give up. Nsec is always
// in [0, 1e9).
//
// The zero Deadline means "fire immediately". It is produced when the wall
// clock cannot be read; waiting primitives treat any past instant as an
// already-expired timeout, so the degradation is a spurious early wake, not
// an error.
type Deadline struct {
	Sec  int64
	Nsec int64
}

// IsZero reports whether d is the degraded "fire immediately" deadline.
func (d Deadline) IsZero() bool {
	return d.Sec == 0 && d.Nsec == 0
}

// Time converts d for use with primitives that take a time.Time.
func (d Deadline) Time() time.Time {
	return time.Unix(d.Sec, d.Nsec)
}

// ToDeadline converts the monotonic timestamp t into an absolute wall-clock
// deadline: t's offset from the current reading, clamped to at most 1000
// days, added to a fresh wall-clock sample. A failed wall-clock read yields
// the zero Deadline.
func (c *Clock) ToDeadline(t int64) Deadline {
	sec, nsec, ok := readWallClock()
	if !ok {
		return Deadline{}
	}

	rel := t - c.NowNS()
	if rel > maxFutureNS {
		rel = maxFutureNS
	}

	sec += rel / nsPerSec
	nsec += rel % nsPerSec
	if nsec >= nsPerSec {
		sec++
		nsec -= nsPerSec
	}
	if nsec < 0 {
		sec--
		nsec += nsPerSec
	}

	return Deadline{Sec: sec, Nsec: nsec}
}

// ToDeadlineUS is ToDeadline for a microsecond timestamp (as returned by
// NowUS).
func (c *Clock) ToDeadlineUS(t int64) Deadline {
	const maxUS = math.MaxInt64 / 1000
	if t > maxUS {
		t = maxUS
	}
	return c.ToDeadline(t * 1000)
}

// RelativeToDeadline returns the absolute wall-clock deadline deltaSec
// seconds from now. Negative deltas yield a deadline in the past.
func (c *Clock) RelativeToDeadline(deltaSec float64) Deadline {
	return c.ToDeadline(c.AddNS(c.NowNS(), deltaSec))
}

// ToDeadline converts a process-wide Clock timestamp. See Clock.ToDeadline.
func ToDeadline(t int64) Deadline {
	return Default().ToDeadline(t)
}

// ToDeadlineUS converts a process-wide Clock microsecond timestamp.
func ToDeadlineUS(t int64) Deadline {
	return Default().ToDeadlineUS(t)
}

// RelativeToDeadline returns a deadline deltaSec seconds from now on the
// process-wide Clock.
func RelativeToDeadline(deltaSec float64) Deadline {
	return Default().RelativeToDeadline(deltaSec)
}
