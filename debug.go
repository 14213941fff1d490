package allofyou

import (
	"fmt"
	"os"
	"time"
)

// debugStats holds per-frame timing and motion metrics.
// Only populated when Session.debug is true.
type debugStats struct {
	frame      uint64
	updateTime time.Duration
	panelCount int
	maxSpeed   float64
	fastest    string
	dragIndex  int
	zoom       float64
	opacity    float64
}

// collectStats gathers the frame's metrics after the animation step.
func (s *Session) collectStats(elapsed time.Duration) debugStats {
	stats := debugStats{
		frame:      s.frame,
		updateTime: elapsed,
		panelCount: s.anim.Len(),
		dragIndex:  -1,
		zoom:       s.camera.Zoom(),
		opacity:    s.overlay.Opacity(),
	}
	for _, p := range s.anim.Panels() {
		if v := p.Spring.Velocity().Len(); v > stats.maxSpeed {
			stats.maxSpeed = v
			stats.fastest = p.ID
		}
	}
	if i, ok := s.anim.Dragging(); ok {
		stats.dragIndex = i
	}
	return stats
}

// debugLog prints timing and motion stats to stderr.
func (s *Session) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	debugf("frame %d | update: %v | panels: %d | mode: %s",
		stats.frame, stats.updateTime, stats.panelCount, s.modes.Mode())
	debugf("fastest: %s %.2f u/frame | drag: %d | zoom: %.3f | lines: %.2f",
		stats.fastest, stats.maxSpeed, stats.dragIndex, stats.zoom, stats.opacity)
}

// debugf writes one prefixed diagnostic line to stderr.
func debugf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[allofyou] "+format+"\n", args...)
}
