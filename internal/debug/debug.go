package debug

import (
	"fmt"
	"runtime"
	"time"
)

// updateInterval: only refresh FPS/Mem text every N frames to reduce allocations.
const updateInterval = 30

// Overlay collects runtime stats (frame rate, heap) for display. All overlays are off by default.
type Overlay struct {
	ShowFPS      bool
	ShowMemAlloc bool
	frameCount   uint32
	windowStart  time.Time
	lastFpsText  string
	lastMemText  string
	lastMemStats runtime.MemStats
}

// New returns an Overlay with the given overlays enabled.
func New(showFPS, showMemAlloc bool) *Overlay {
	return &Overlay{ShowFPS: showFPS, ShowMemAlloc: showMemAlloc}
}

// Enabled reports whether any overlay is shown.
func (o *Overlay) Enabled() bool {
	return o.ShowFPS || o.ShowMemAlloc
}

// Tick counts one presented frame. Every updateInterval frames the FPS over that window and
// the current heap allocation are recomputed. It reports whether the text changed.
func (o *Overlay) Tick(now time.Time) bool {
	if !o.Enabled() {
		return false
	}
	if o.windowStart.IsZero() {
		o.windowStart = now
	}
	o.frameCount++
	if o.frameCount%updateInterval != 0 {
		return false
	}
	if o.ShowFPS {
		elapsed := now.Sub(o.windowStart).Seconds()
		fps := 0.0
		if elapsed > 0 {
			fps = updateInterval / elapsed
		}
		o.lastFpsText = fmt.Sprintf("FPS: %.0f", fps)
	}
	if o.ShowMemAlloc {
		runtime.ReadMemStats(&o.lastMemStats)
		mb := float64(o.lastMemStats.Alloc) / (1024 * 1024)
		o.lastMemText = fmt.Sprintf("Mem: %.2f MiB", mb)
	}
	o.windowStart = now
	return true
}

// Lines returns the overlay text, one entry per enabled overlay that has a value yet.
func (o *Overlay) Lines() []string {
	var out []string
	if o.ShowFPS && o.lastFpsText != "" {
		out = append(out, o.lastFpsText)
	}
	if o.ShowMemAlloc && o.lastMemText != "" {
		out = append(out, o.lastMemText)
	}
	return out
}
