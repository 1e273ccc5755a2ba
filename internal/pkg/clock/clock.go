package clock

import (
	"sync"
	"time"
)

// Clock tells the session store what time it is, so expiry can be tested.
type Clock interface {
	Now() time.Time
}

// RealClock reads the wall clock in UTC.
type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now().UTC()
}

// FakeClock only moves when told to. It is safe for concurrent use because
// the session store reads it from request goroutines.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFake creates a FakeClock stopped at t.
func NewFake(t time.Time) *FakeClock {
	return &FakeClock{now: t}
}

func (f *FakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

// Advance moves the clock forward by d.
func (f *FakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}
