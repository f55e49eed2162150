// Package clock advances the time uniform once per frame.
package clock

import "time"

// TimeSetter receives the elapsed time each frame.
type TimeSetter interface {
	SetTime(t float32)
}

// Clock measures seconds since its creation from a monotonic source such as
// glfw.GetTime.
type Clock struct {
	source func() float64
	start  float64
	last   float64
}

// New starts a clock on source. A nil source falls back to the process's
// monotonic wall clock.
func New(source func() float64) *Clock {
	if source == nil {
		source = monotonicSource()
	}
	return &Clock{source: source, start: source()}
}

func monotonicSource() func() float64 {
	origin := time.Now()
	return func() float64 { return time.Since(origin).Seconds() }
}

// Elapsed returns the seconds since New. It never decreases.
func (c *Clock) Elapsed() float32 {
	if now := c.source() - c.start; now > c.last {
		c.last = now
	}
	return float32(c.last)
}

// Advance writes the elapsed time into m.
func (c *Clock) Advance(m TimeSetter) {
	m.SetTime(c.Elapsed())
}
