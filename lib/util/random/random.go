package random

import (
	"sync"

	"github.com/go-i2p/logger"
)

var log = logger.GetGoI2PLogger()

// Source is a seeded xoshiro256++ generator. Safe for concurrent use by
// multiple goroutines.
type Source struct {
	mu sync.Mutex
	s  [4]uint64
}

// New returns a Source seeded from seed.
func New(seed uint64) *Source {
	src := &Source{}
	src.reseed(seed)
	return src
}

// Seed reinitializes the generator state from seed, restarting the
// sequence.
func (src *Source) Seed(seed uint64) {
	src.mu.Lock()
	src.reseed(seed)
	src.mu.Unlock()
	log.WithField("seed", seed).Debug("PRNG reseeded")
}

// reseed expands seed into the full 256-bit state with splitmix64, which
// guarantees a non-zero state for every seed (xoshiro degenerates on
// all-zero state). Caller holds src.mu where needed.
func (src *Source) reseed(seed uint64) {
	for i := range src.s {
		seed += 0x9e3779b97f4a7c15
		z := seed
		z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
		z = (z ^ (z >> 27)) * 0x94d049bb133111eb
		src.s[i] = z ^ (z >> 31)
	}
}

func rotl(x uint64, k uint) uint64 {
	return x<<k | x>>(64-k)
}

// UInt64 returns the next value in the sequence.
func (src *Source) UInt64() uint64 {
	src.mu.Lock()
	defer src.mu.Unlock()
	return src.next()
}

// next advances the xoshiro256++ state. Caller holds src.mu.
func (src *Source) next() uint64 {
	r := rotl(src.s[0]+src.s[3], 23) + src.s[0]
	t := src.s[1] << 17
	src.s[2] ^= src.s[0]
	src.s[3] ^= src.s[1]
	src.s[1] ^= src.s[2]
	src.s[0] ^= src.s[3]
	src.s[2] ^= t
	src.s[3] = rotl(src.s[3], 45)
	return r
}

// Float64 returns a uniformly distributed value in [0, 1).
func (src *Source) Float64() float64 {
	return float64(src.UInt64()>>11) / (1 << 53)
}

// IntN returns a uniformly distributed value in [0, n). Panics if n is not
// positive.
func (src *Source) IntN(n int64) int64 {
	if n <= 0 {
		panic("random: non-positive bound")
	}
	// Rejection sampling to avoid modulo bias.
	bound := uint64(n)
	limit := ^uint64(0) - ^uint64(0)%bound
	for {
		v := src.UInt64()
		if v < limit {
			return int64(v % bound)
		}
	}
}

var (
	std     *Source
	stdOnce sync.Once
)

// Default returns the process-wide Source, creating it on first use. It
// starts from a fixed seed; seed it explicitly for unpredictable sequences.
func Default() *Source {
	stdOnce.Do(func() {
		std = New(0)
	})
	return std
}

// Seed reseeds the process-wide Source.
func Seed(seed uint64) {
	Default().Seed(seed)
}

// UInt64 returns the next value from the process-wide Source.
func UInt64() uint64 {
	return Default().UInt64()
}

// Float64 returns a value in [0, 1) from the process-wide Source.
func Float64() float64 {
	return Default().Float64()
}

// IntN returns a value in [0, n) from the process-wide Source.
func IntN(n int64) int64 {
	return Default().IntN(n)
}
