//go:build linux || darwin

package monotime

import (
	"sync"

	"github.com/samber/oops"
	"golang.org/x/sys/unix"
)

var (
	rawClockID   int32 = unix.CLOCK_MONOTONIC_RAW
	rawClockOnce sync.Once
)

// probeRawClock decides the clock ID once. CLOCK_MONOTONIC_RAW is preferred
// because it is immune to NTP frequency slewing; kernels that reject it get
// CLOCK_MONOTONIC instead.
func probeRawClock() {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC_RAW, &ts); err != nil {
		log.WithError(oops.Errorf("raw monotonic clock unavailable: %w", err)).
			Debug("falling back to CLOCK_MONOTONIC")
		rawClockID = unix.CLOCK_MONOTONIC
	}
}

// readRawClock returns the current raw monotonic reading in nanoseconds.
func readRawClock() uint64 {
	rawClockOnce.Do(probeRawClock)
	var ts unix.Timespec
	if err := unix.ClockGettime(rawClockID, &ts); err != nil {
		// Unreachable after a successful probe; NowNS clamps a zero
		// reading back to the start bias either way.
		return 0
	}
	return uint64(ts.Sec)*uint64(nsPerSec) + uint64(ts.Nsec)
}

// readWallClock samples CLOCK_REALTIME. ok is false when the read fails, in
// which case callers degrade to the zero Deadline.
func readWallClock() (sec, nsec int64, ok bool) {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_REALTIME, &ts); err != nil {
		return 0, 0, false
	}
	return int64(ts.Sec), int64(ts.Nsec), true
}
