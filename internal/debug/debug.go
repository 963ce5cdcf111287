package debug

import (
	"fmt"
	"runtime"
	"time"

	"orrery/internal/sim"
	"orrery/internal/ui"
)

// updateInterval: only refresh FPS/Mem text every N frames to reduce allocations.
const updateInterval = 30

// HUD holds the on-screen status overlay. FPS and memory lines are off by default; the
// paused/orbits line is shown whenever the HUD is visible.
type HUD struct {
	Visible      bool
	ShowFPS      bool
	ShowMemAlloc bool

	// FPS reports frames per second. When nil the HUD measures it from Tick.
	FPS func() int32

	state        *sim.State
	node         *ui.Node
	frameCount   uint32
	windowStart  time.Time
	windowFrames int
	measured     int32
	lastFpsText  string
	lastMemText  string
	lastMemStats runtime.MemStats
}

// New returns a hidden HUD reporting on state.
func New(state *sim.State) *HUD {
	n := ui.NewNode("label", "hud", "", "")
	n.AutoSize = true
	return &HUD{state: state, node: n}
}

// SetShowFPS sets whether the FPS counter is listed.
func (h *HUD) SetShowFPS(show bool) {
	h.ShowFPS = show
}

// SetShowMemAlloc sets whether heap allocation is listed.
func (h *HUD) SetShowMemAlloc(show bool) {
	h.ShowMemAlloc = show
}

// Toggle flips visibility and returns the new value.
func (h *HUD) Toggle() bool {
	h.Visible = !h.Visible
	return h.Visible
}

// Tick counts a frame at now. Text is only recomputed every updateInterval frames.
func (h *HUD) Tick(now time.Time) {
	h.frameCount++
	if h.windowStart.IsZero() {
		h.windowStart = now
	} else {
		h.windowFrames++
	}
	update := h.frameCount%updateInterval == 0
	if update {
		if elapsed := now.Sub(h.windowStart); elapsed > 0 {
			h.measured = int32(float64(h.windowFrames) / elapsed.Seconds())
		}
		h.windowStart = now
		h.windowFrames = 0
	}
	if h.ShowFPS && h.lastFpsText == "" {
		update = true
	}
	if h.ShowMemAlloc && h.lastMemText == "" {
		update = true
	}
	if !update {
		return
	}
	if h.ShowFPS {
		fps := h.measured
		if h.FPS != nil {
			fps = h.FPS()
		}
		h.lastFpsText = fmt.Sprintf("FPS: %d", fps)
	}
	if h.ShowMemAlloc {
		runtime.ReadMemStats(&h.lastMemStats)
		mb := float64(h.lastMemStats.Alloc) / (1024 * 1024)
		h.lastMemText = fmt.Sprintf("Mem: %.2f MiB", mb)
	}
}

// Lines returns the HUD text, one entry per line.
func (h *HUD) Lines() []string {
	var lines []string
	if h.ShowFPS && h.lastFpsText != "" {
		lines = append(lines, h.lastFpsText)
	}
	if h.ShowMemAlloc && h.lastMemText != "" {
		lines = append(lines, h.lastMemText)
	}
	status := "running"
	if h.state.Paused {
		status = "paused"
	}
	orbits := "off"
	if h.state.OrbitsVisible {
		orbits = "on"
	}
	return append(lines, "Animation: "+status, "Orbits: "+orbits)
}

// AppendNodes appends the HUD node to dst when visible.
func (h *HUD) AppendNodes(dst []*ui.Node) []*ui.Node {
	if !h.Visible {
		return dst
	}
	text := ""
	for i, l := range h.Lines() {
		if i > 0 {
			text += "\n"
		}
		text += l
	}
	h.node.Text = text
	return append(dst, h.node)
}
