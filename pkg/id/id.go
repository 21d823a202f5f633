package id

import (
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Generator produces opaque, globally unique tokens for orders and trades.
//
//go:generate mockgen -source id.go -destination=mock/id_mock.go -package=id_mock
type Generator interface {
	NewID() string
}

// Clock provides timestamps for ordering order arrival. Timestamps are
// guaranteed to be non-decreasing across sequential calls, which is all the
// matching engine needs; wall-clock precision is not required.
type Clock interface {
	Now() int64
}

// ULIDGenerator generates lexicographically sortable unique ids backed by a
// monotonic entropy source.
type ULIDGenerator struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// NewULIDGenerator creates a ULID-based Generator.
func NewULIDGenerator() *ULIDGenerator {
	return &ULIDGenerator{
		entropy: ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
	}
}

// NewID returns a new ULID string.
func (g *ULIDGenerator) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	return ulid.MustNew(ulid.Timestamp(time.Now()), g.entropy).String()
}

// SystemClock is a Clock backed by time.Now that never goes backwards.
type SystemClock struct {
	mu   sync.Mutex
	last int64
}

// NewSystemClock creates a SystemClock.
func NewSystemClock() *SystemClock {
	return &SystemClock{}
}

// Now returns the current time in unix nanoseconds, clamped so that repeated
// calls are non-decreasing even if the wall clock steps back.
func (c *SystemClock) Now() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now().UnixNano()
	if now < c.last {
		now = c.last
	}
	c.last = now
	return now
}
