//go:build !linux && !darwin

package monotime

import "time"

// processStart anchors raw readings on platforms without ClockGettime.
// time.Since uses Go's runtime monotonic reading, so the differences are
// still wall-clock-adjustment safe.
var processStart = time.Now()

func readRawClock() uint64 {
	return uint64(time.Since(processStart))
}

func readWallClock() (sec, nsec int64, ok bool) {
	now := time.Now()
	return now.Unix(), int64(now.Nanosecond()), true
}
