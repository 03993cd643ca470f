// Package clock abstracts the wall clock so that calendar-day logic can be tested.
package clock

import (
	"sync"
	"time"
)

// Clock returns the current time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// System returns the real wall clock.
func System() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

// Adjustable is a clock running at wall speed from a settable offset. Tests
// use it to move between calendar days.
type Adjustable struct {
	mu     sync.RWMutex
	offset time.Duration
	base   func() time.Time
}

// NewAdjustable creates a clock that follows the wall time.
func NewAdjustable() *Adjustable {
	return &Adjustable{base: time.Now}
}

// NewFixed creates a clock that always starts from at; Advance moves it.
func NewFixed(at time.Time) *Adjustable {
	return &Adjustable{base: func() time.Time { return at }}
}

// Now returns the base time shifted by the offset.
func (c *Adjustable) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.base().Add(c.offset)
}

// Advance moves the clock forward by d.
func (c *Adjustable) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.offset += d
}

// Set moves the clock so that Now reports t.
func (c *Adjustable) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.offset = t.Sub(c.base())
}
