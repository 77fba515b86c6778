package monotime

import "time"

// Sleep blocks the calling goroutine for ns nanoseconds. Negative durations
// return immediately.
func Sleep(ns int64) {
	if ns < 0 {
		return
	}
	time.Sleep(time.Duration(ns))
}
