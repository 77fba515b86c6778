// Package monotime provides a process-local monotonic time source for
// elapsed-time measurement and for scheduling absolute wall-clock deadlines.
//
// Readings are nanosecond counts since an arbitrary per-process origin,
// taken from the OS monotonic clock and therefore immune to wall-clock
// adjustments (NTP corrections, manual time changes). The origin is biased
// so that readings are always strictly positive: a zero or
// default-initialized timestamp compares as "in the past" everywhere, and
// relative offsets are hard to confuse with absolute timestamps.
//
// Timestamps are only meaningful within a single process run. Never persist
// them or compare them across processes; use wall-clock time for that.
//
// The package-level functions operate on a shared process-wide Clock.
// Subsystems that prefer an injectable handle construct their own with New;
// both forms are safe for concurrent use from any goroutine.
//
// Usage for a timed wait:
//
//	deadline := monotime.RelativeToDeadline(2.5)
//	// hand deadline.Time() to a primitive that takes an absolute timeout
//
// Usage for elapsed time:
//
//	start := monotime.NowNS()
//	// ... work ...
//	elapsed := monotime.SinceNS(start)
package monotime
