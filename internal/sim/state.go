package sim

import "time"

// State is the application's mutable mode: whether bodies move and whether orbit rings show.
// It is only changed by commands and read by the frame loop.
type State struct {
	Paused        bool
	OrbitsVisible bool
}

// TogglePause flips Paused and returns the new value.
func (s *State) TogglePause() bool {
	s.Paused = !s.Paused
	return s.Paused
}

// ToggleOrbits flips OrbitsVisible for every ring at once and returns the new value.
func (s *State) ToggleOrbits() bool {
	s.OrbitsVisible = !s.OrbitsVisible
	return s.OrbitsVisible
}

// Clock supplies wall-clock time in milliseconds.
type Clock interface {
	Now() float64
}

// WallClock reads the system clock as Unix milliseconds.
type WallClock struct{}

// Now implements Clock.
func (WallClock) Now() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Millisecond)
}

// ManualClock is a Clock that only moves when told to.
type ManualClock struct {
	T float64
}

// Now implements Clock.
func (c *ManualClock) Now() float64 { return c.T }

// Set moves the clock to t milliseconds.
func (c *ManualClock) Set(t float64) { c.T = t }

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.T += float64(d) / float64(time.Millisecond)
}
