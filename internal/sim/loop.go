package sim

import (
	"time"

	"orrery/internal/orbit"
	"orrery/internal/scene"
)

// Animator moves scene objects. Positions are a closed-form function of wall time; only spin
// angles accumulate, from the time between consecutive running frames.
type Animator struct {
	scene   *scene.Scene
	last    float64
	running bool
}

// NewAnimator returns an animator over s.
func NewAnimator(s *scene.Scene) *Animator {
	return &Animator{scene: s}
}

// Advance updates every body for wall time now (ms). Planets are placed first so that moons,
// placed in the second pass, read this frame's parent positions.
func (a *Animator) Advance(now float64) {
	var delta float32
	if a.running {
		delta = float32((now - a.last) / 1000)
		if delta < 0 {
			delta = 0
		}
	}
	a.last = now
	a.running = true

	for _, p := range a.scene.Planets {
		p.Spin += p.Body.Spin() * delta
		p.Position = p.Orbit.At(now)
	}
	for _, m := range a.scene.Moons {
		m.Spin += m.Body.Spin() * delta
		m.Position = orbit.Add(m.Parent.Position, m.Orbit.At(now))
	}
}

// Hold marks a gap in running time. The next Advance spins bodies by zero.
func (a *Animator) Hold() {
	a.running = false
}

// Recorder receives frame timings. metrics.Collector satisfies it.
type Recorder interface {
	ObserveFrame(d time.Duration, paused bool)
}

// Loop is the per-frame driver: advance bodies unless paused, then always update the camera and
// render.
type Loop struct {
	State    *State
	Clock    Clock
	Animator *Animator

	// UpdateCamera and Render run every frame, paused or not. Either may be nil.
	UpdateCamera func()
	Render       func()
	Recorder     Recorder

	frames uint64
}

// NewLoop wires a loop over s with the given state and clock.
func NewLoop(s *scene.Scene, state *State, clock Clock) *Loop {
	return &Loop{State: state, Clock: clock, Animator: NewAnimator(s)}
}

// Frame runs one frame at the clock's current time.
func (l *Loop) Frame() {
	start := time.Now()
	now := l.Clock.Now()
	if l.State.Paused {
		l.Animator.Hold()
	} else {
		l.Animator.Advance(now)
	}
	if l.UpdateCamera != nil {
		l.UpdateCamera()
	}
	if l.Render != nil {
		l.Render()
	}
	l.frames++
	if l.Recorder != nil {
		l.Recorder.ObserveFrame(time.Since(start), l.State.Paused)
	}
}

// Frames returns how many frames have run.
func (l *Loop) Frames() uint64 {
	return l.frames
}
