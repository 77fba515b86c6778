package monotime

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInitConcurrent verifies that racing Init calls capture exactly one
// origin: every goroutine's reading is positive, and a reading taken after
// the race is never behind any of them.
// Run with: go test -race ./lib/util/time/monotime/
func TestInitConcurrent(t *testing.T) {
	const goroutines = 32

	c := New()
	readings := make(chan int64, goroutines)

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Init()
			readings <- c.NowNS()
		}()
	}
	wg.Wait()
	close(readings)

	after := c.NowNS()
	for r := range readings {
		require.Positive(t, r)
		assert.GreaterOrEqual(t, after, r)
	}
}

// TestInitConcurrentSingleOrigin pins the raw clock to a constant and races
// Init from many goroutines: with exactly one origin capture every
// goroutine must compute the identical reading, and the captured origin
// must be the constant minus the start bias.
func TestInitConcurrentSingleOrigin(t *testing.T) {
	var raw = uint64(1_000_000)
	old := rawNS
	rawNS = func() uint64 { return raw }
	t.Cleanup(func() { rawNS = old })

	const goroutines = 32

	c := New()
	readings := make(chan int64, goroutines)

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Init()
			readings <- c.NowNS()
		}()
	}
	wg.Wait()
	close(readings)

	require.Equal(t, raw-uint64(startNS), c.origin)
	for r := range readings {
		assert.Equal(t, startNS, r)
	}
}

// TestClockConcurrentUse exercises the whole read/add/deadline surface from
// many goroutines at once; everything after Init is lock-free and must not
// race.
func TestClockConcurrentUse(t *testing.T) {
	c := New()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				now := c.NowNS()
				assert.Positive(t, now)
				assert.GreaterOrEqual(t, c.AddNS(now, 0.5), now)
				d := c.RelativeToDeadline(0.01)
				assert.GreaterOrEqual(t, d.Nsec, int64(0))
				_ = c.NowUS()
				_ = c.NowSec()
			}
		}()
	}
	wg.Wait()
}
