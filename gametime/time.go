// Package gametime tracks the progression of frame time.
//
// VirtualTime is handed to every per-frame update, Timer measures cooldowns,
// lifetimes and spawn cadences, and Timings aggregates frame durations.
package gametime

import (
	"time"
)

// VirtualTime tracks time.
//
// The progression of time can be scaled by setting the Scale field.
// This will scale the Delta and DeltaSecs values starting at the next frame.
// A Scale of zero pauses the game.
type VirtualTime struct {
	Elapsed   time.Duration
	Delta     time.Duration
	DeltaSecs float64

	Scale float64
}

// NewVirtualTime returns a VirtualTime with a scale of one.
func NewVirtualTime() VirtualTime {
	return VirtualTime{Scale: 1}
}

// Advance moves the time forward by the given real time delta.
func (v *VirtualTime) Advance(delta time.Duration) {
	v.Delta = time.Duration(float64(delta) * v.Scale)
	v.DeltaSecs = v.Delta.Seconds()
	v.Elapsed += v.Delta
}

// Clock feeds wall clock time into a VirtualTime, one Tick per frame.
type Clock struct {
	last time.Time
	now  func() time.Time
}

// NewClock creates a Clock reading the current time from now.
// If now is nil, time.Now is used.
func NewClock(now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}

	return &Clock{now: now}
}

// Tick measures the time since the previous tick and advances v by it.
// The very first tick only records the start time.
func (c *Clock) Tick(v *VirtualTime) {
	now := c.now()

	if c.last.IsZero() {
		c.last = now
		v.Advance(0)
		return
	}

	delta := now.Sub(c.last)
	c.last = now

	v.Advance(delta)
}
