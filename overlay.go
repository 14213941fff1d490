package allofyou

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// overlayVisibleThreshold is the opacity below which lines are not drawn.
const overlayVisibleThreshold = 0.01

// LineSegment is one connector line in world space.
type LineSegment struct {
	From, To Vec3
	// PanelIndex is the panel at the To end.
	PanelIndex int
}

// LineOverlay draws connector lines from the center panel to every other
// panel. It fades in when shown and out when hidden; a Show or Hide in the
// middle of a fade restarts the tween from the current opacity.
//
// LineOverlay implements [Overlay].
type LineOverlay struct {
	// Color is the line tint. Opacity is applied on top of Color.A.
	Color Color
	// Width is the stroke width in screen pixels.
	Width float64

	opacity    float64
	target     float64
	maxOpacity float64
	fade       float32
	zOffset    float64
	tween      *gween.Tween
	easeFn     ease.TweenFunc
}

// NewLineOverlay creates a hidden overlay.
func NewLineOverlay(tun Tuning) *LineOverlay {
	return &LineOverlay{
		Color:      ColorLine,
		Width:      3,
		maxOpacity: tun.OverlayOpacity,
		fade:       float32(tun.OverlayFade),
		zOffset:    tun.LineZOffset,
		easeFn:     ease.OutQuad,
	}
}

// Show starts fading the lines in.
func (o *LineOverlay) Show() { o.fadeTo(o.maxOpacity) }

// Hide starts fading the lines out.
func (o *LineOverlay) Hide() { o.fadeTo(0) }

func (o *LineOverlay) fadeTo(target float64) {
	o.target = target
	if o.fade <= 0 {
		o.opacity = target
		o.tween = nil
		return
	}
	o.tween = gween.New(float32(o.opacity), float32(target), o.fade, o.easeFn)
}

// Update advances the fade by dt seconds.
func (o *LineOverlay) Update(dt float32) {
	if o.tween == nil {
		return
	}
	val, done := o.tween.Update(dt)
	o.opacity = float64(val)
	if done {
		o.opacity = o.target
		o.tween = nil
	}
}

// Opacity returns the current line opacity.
func (o *LineOverlay) Opacity() float64 { return o.opacity }

// Fading reports whether a fade is in progress.
func (o *LineOverlay) Fading() bool { return o.tween != nil }

// Visible reports whether the lines should be drawn this frame.
func (o *LineOverlay) Visible() bool { return o.opacity > overlayVisibleThreshold }

// Segments appends one segment per non-center panel, from the center
// panel's current position to the other panel's, pushed back in Z so the
// lines sit behind the tiles. Nothing is appended while the overlay is not
// visible or center is out of range.
func (o *LineOverlay) Segments(panels []*Panel, center int, dst []LineSegment) []LineSegment {
	if !o.Visible() || center < 0 || center >= len(panels) {
		return dst
	}
	off := Vec3{Z: o.zOffset}
	from := panels[center].Position().Add(off)
	for i, p := range panels {
		if i == center {
			continue
		}
		dst = append(dst, LineSegment{
			From:       from,
			To:         p.Position().Add(off),
			PanelIndex: i,
		})
	}
	return dst
}
