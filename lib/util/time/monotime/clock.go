package monotime

import (
	"math"
	"sync"

	"github.com/go-i2p/logger"
)

var log = logger.GetGoI2PLogger()

const nsPerSec int64 = 1_000_000_000

// startNS biases the clock origin so the first reading is well clear of
// zero. Zero/default-initialized timestamps therefore always read as "in
// the past", and NowNS never returns a non-positive value.
const startNS int64 = 10 * nsPerSec

// rawNS is the raw monotonic clock seam. Tests substitute a deterministic
// sequence. Defaults to the platform reader in raw_clock*.go.
var rawNS = readRawClock

// Clock is a process-local monotonic time source. Its origin is captured
// exactly once on first use; after that every method is a pure function of
// the current raw clock reading and is safe to call from any goroutine
// without additional locking.
//
// The zero Clock is ready to use.
type Clock struct {
	once   sync.Once
	origin uint64
}

// New returns a Clock whose origin will be captured on first use.
func New() *Clock {
	return &Clock{}
}

// Init captures the clock origin. It is idempotent and safe to call
// concurrently: the capture happens exactly once regardless of how many
// goroutines race here, and later calls are no-ops. All reading methods
// call it implicitly, so calling Init up front is optional.
func (c *Clock) Init() {
	c.once.Do(func() {
		c.origin = rawNS() - uint64(startNS)
		log.WithField("origin", c.origin).Debug("monotonic clock initialized")
	})
}

// NowNS returns nanoseconds elapsed since the clock origin. The result is
// strictly positive and non-decreasing within a process run; raw readings
// that land below the start bias (clock anomalies, pre-origin reads) are
// clamped up to it.
func (c *Clock) NowNS() int64 {
	c.Init()
	r := rawNS() - c.origin
	// Readings that wrap past the signed range (a raw value behind the
	// origin underflows the subtraction) clamp to the bias as well; the
	// result must stay strictly positive.
	if r < uint64(startNS) || r > uint64(math.MaxInt64) {
		r = uint64(startNS)
	}
	return int64(r)
}

// NowUS returns NowNS at microsecond granularity, truncating toward zero.
func (c *Clock) NowUS() int64 {
	return c.NowNS() / 1000
}

// NowSec returns NowNS as floating-point seconds. Precision degrades for
// very large counts, which is acceptable for its consumers.
func (c *Clock) NowSec() float64 {
	return float64(c.NowNS()) / 1e9
}

// SinceNS returns the nanoseconds elapsed since the timestamp t, which must
// come from NowNS on the same Clock.
func (c *Clock) SinceNS(t int64) int64 {
	return c.NowNS() - t
}

// AddNS returns base advanced by deltaSec seconds. base must be a positive
// timestamp (as returned by NowNS); a non-positive base is a programming
// error and panics. The result saturates instead of wrapping: sums beyond
// the int64 range return math.MaxInt64, and sums that would be non-positive
// return 1, the smallest valid timestamp.
func (c *Clock) AddNS(base int64, deltaSec float64) int64 {
	return saturatingAdd(base, deltaSec*1e9)
}

// AddUS is AddNS for microsecond timestamps (as returned by NowUS).
func (c *Clock) AddUS(base int64, deltaSec float64) int64 {
	return saturatingAdd(base, deltaSec*1e6)
}

// saturatingAdd adds a floating-point delta to a positive timestamp. The
// delta is clamped to [-2^63, 2^63] in double precision before narrowing to
// int64, then the integer sum is clamped to [1, MaxInt64]. The order
// matters: narrowing an out-of-range float is implementation-defined, so
// the float-side clamp must happen first.
func saturatingAdd(base int64, delta float64) int64 {
	if base <= 0 {
		panic("monotime: non-positive base timestamp")
	}
	var d int64
	switch {
	case math.IsNaN(delta):
		d = 0 // NaN deltas are treated as zero
	case delta >= 0x1p63:
		d = math.MaxInt64
	case delta < -0x1p63:
		d = math.MinInt64
	default:
		d = int64(delta)
	}
	if d > math.MaxInt64-base {
		return math.MaxInt64
	}
	if d <= -base {
		return 1
	}
	return base + d
}

// RawNS returns the raw monotonic clock reading, unadjusted by any origin.
// Only differences between raw readings are meaningful. It exists so
// callers can seed entropy sources from the clock explicitly.
func RawNS() uint64 {
	return rawNS()
}

var (
	std     *Clock
	stdOnce sync.Once
)

// Default returns the process-wide Clock, creating it on first use.
func Default() *Clock {
	stdOnce.Do(func() {
		std = New()
	})
	return std
}

// Init initializes the process-wide Clock. See Clock.Init.
func Init() {
	Default().Init()
}

// NowNS returns the current timestamp of the process-wide Clock.
func NowNS() int64 {
	return Default().NowNS()
}

// NowUS returns the current microsecond timestamp of the process-wide Clock.
func NowUS() int64 {
	return Default().NowUS()
}

// NowSec returns the current time of the process-wide Clock in seconds.
func NowSec() float64 {
	return Default().NowSec()
}

// SinceNS returns nanoseconds elapsed since t on the process-wide Clock.
func SinceNS(t int64) int64 {
	return Default().SinceNS(t)
}

// AddNS advances a process-wide Clock timestamp. See Clock.AddNS.
func AddNS(base int64, deltaSec float64) int64 {
	return Default().AddNS(base, deltaSec)
}

// AddUS advances a process-wide Clock microsecond timestamp. See Clock.AddUS.
func AddUS(base int64, deltaSec float64) int64 {
	return Default().AddUS(base, deltaSec)
}
