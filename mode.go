package allofyou

import (
	"fmt"
	"sync"
)

// Mode is the display mode of the mosaic.
type Mode uint8

const (
	ModeFace    Mode = iota // panels track the face pose around their face anchors
	ModeMindMap             // panels float in a radial graph around the center panel
)

// String returns "face" or "mindmap".
func (m Mode) String() string {
	switch m {
	case ModeFace:
		return "face"
	case ModeMindMap:
		return "mindmap"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// ParseMode is the inverse of [Mode.String].
func ParseMode(s string) (Mode, error) {
	switch s {
	case "face":
		return ModeFace, nil
	case "mindmap":
		return ModeMindMap, nil
	}
	return 0, fmt.Errorf("parse mode: unknown mode %q", s)
}

// Overlay is notified on mode transitions: Show when entering mind-map mode,
// Hide when returning to face mode.
type Overlay interface {
	Show()
	Hide()
}

// ModeController owns the display mode. Transitions are instantaneous and
// unconditional. Safe for concurrent use; the Animator reads the mode once
// per frame through [ModeController.Mode].
type ModeController struct {
	mu      sync.Mutex
	mode    Mode
	overlay Overlay
	sink    EventSink

	// OnChange, if set, runs after every transition with the new mode.
	OnChange func(Mode)
}

// NewModeController creates a controller in face mode. overlay may be nil.
func NewModeController(overlay Overlay) *ModeController {
	return &ModeController{overlay: overlay}
}

// Mode returns the current mode.
func (c *ModeController) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// Toggle flips between face and mind-map mode and returns the new mode.
func (c *ModeController) Toggle() Mode {
	c.mu.Lock()
	next := ModeMindMap
	if c.mode == ModeMindMap {
		next = ModeFace
	}
	c.mode = next
	c.mu.Unlock()

	c.notify(next)
	return next
}

// Set switches to m. Setting the current mode or an unknown mode is a no-op.
func (c *ModeController) Set(m Mode) {
	if m != ModeFace && m != ModeMindMap {
		return
	}
	c.mu.Lock()
	if c.mode == m {
		c.mu.Unlock()
		return
	}
	c.mode = m
	c.mu.Unlock()

	c.notify(m)
}

func (c *ModeController) notify(m Mode) {
	if c.overlay != nil {
		switch m {
		case ModeMindMap:
			c.overlay.Show()
		case ModeFace:
			c.overlay.Hide()
		}
	}
	if c.sink != nil {
		c.sink.EmitEvent(SessionEvent{Type: EventModeChanged, Mode: m, PanelIndex: -1})
	}
	if c.OnChange != nil {
		c.OnChange(m)
	}
}
