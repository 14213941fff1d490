package allofyou

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// Camera is an orthographic view down the negative Z axis. The visible world
// height is FrustumSize / Zoom; the width follows the viewport aspect.
// World Y points up, screen Y points down.
//
// Zoom changes are eased: ZoomBy moves a clamped target and Update lets a
// critically damped spring carry the effective zoom toward it.
type Camera struct {
	// X and Y are the world-space point the camera centers on.
	X, Y float64
	// Viewport is the screen-space rectangle this camera renders into.
	Viewport Rect
	// FrustumSize is the visible world height at zoom 1.
	FrustumSize float64

	zoom       float64
	zoomTarget float64
	zoomVel    float64
	zoomMin    float64
	zoomMax    float64
	zoomStep   float64
	zoomSpring harmonica.Spring

	viewMatrix    [6]float64
	invViewMatrix [6]float64
	dirty         bool
}

// NewCamera creates a camera at the origin, zoom 1, rendering into viewport.
func NewCamera(viewport Rect, tun Tuning) *Camera {
	return &Camera{
		Viewport:    viewport,
		FrustumSize: tun.FrustumSize,
		zoom:        1,
		zoomTarget:  1,
		zoomMin:     tun.ZoomMin,
		zoomMax:     tun.ZoomMax,
		zoomStep:    tun.ZoomPerNotch,
		zoomSpring:  harmonica.NewSpring(harmonica.FPS(60), tun.ZoomFrequency, 1.0),
		dirty:       true,
	}
}

// Zoom returns the effective zoom (1 = FrustumSize world units tall).
func (c *Camera) Zoom() float64 { return c.zoom }

// ZoomTarget returns the zoom the camera is easing toward.
func (c *Camera) ZoomTarget() float64 { return c.zoomTarget }

// ZoomBy moves the zoom target by notches * ZoomPerNotch, clamped to the
// configured range. Positive values zoom in.
func (c *Camera) ZoomBy(notches float64) {
	c.zoomTarget = clamp(c.zoomTarget+notches*c.zoomStep, c.zoomMin, c.zoomMax)
}

// SetZoom jumps straight to z (clamped) without easing.
func (c *Camera) SetZoom(z float64) {
	z = clamp(z, c.zoomMin, c.zoomMax)
	c.zoom = z
	c.zoomTarget = z
	c.zoomVel = 0
	c.dirty = true
}

// SetViewport replaces the viewport, e.g. after a window resize.
func (c *Camera) SetViewport(vp Rect) {
	if vp != c.Viewport {
		c.Viewport = vp
		c.dirty = true
	}
}

// Update advances the zoom easing by one frame.
func (c *Camera) Update() {
	if c.zoom == c.zoomTarget && c.zoomVel == 0 {
		return
	}
	c.zoom, c.zoomVel = c.zoomSpring.Update(c.zoom, c.zoomVel, c.zoomTarget)
	if math.Abs(c.zoom-c.zoomTarget) < 1e-4 && math.Abs(c.zoomVel) < 1e-4 {
		c.zoom = c.zoomTarget
		c.zoomVel = 0
	}
	c.dirty = true
}

// PixelsPerUnit returns how many screen pixels one world unit covers.
func (c *Camera) PixelsPerUnit() float64 {
	if c.Viewport.Height <= 0 {
		return 1
	}
	return c.Viewport.Height * c.zoom / c.FrustumSize
}

// computeViewMatrix recomputes the cached view matrix if dirty.
//
// viewMatrix = Translate(cx, cy) * Scale(s, -s) * Translate(-X, -Y)
// where cx, cy = viewport center and s = PixelsPerUnit.
func (c *Camera) computeViewMatrix() [6]float64 {
	if !c.dirty {
		return c.viewMatrix
	}
	c.dirty = false

	cx := c.Viewport.X + c.Viewport.Width/2
	cy := c.Viewport.Y + c.Viewport.Height/2
	s := c.PixelsPerUnit()

	m := multiplyAffine(translateAffine(cx, cy), scaleAffine(s, -s))
	c.viewMatrix = multiplyAffine(m, translateAffine(-c.X, -c.Y))
	c.invViewMatrix = invertAffine(c.viewMatrix)
	return c.viewMatrix
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	c.computeViewMatrix()
	return transformPoint(c.viewMatrix, wx, wy)
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	c.computeViewMatrix()
	return transformPoint(c.invViewMatrix, sx, sy)
}

// ScreenToNDC converts screen coordinates to normalized device coordinates:
// both axes in [-1, 1] across the viewport, Y up.
func (c *Camera) ScreenToNDC(sx, sy float64) (nx, ny float64) {
	vp := c.Viewport
	nx = mapRange(sx, vp.X, vp.X+vp.Width, -1, 1)
	ny = mapRange(sy, vp.Y, vp.Y+vp.Height, 1, -1)
	return nx, ny
}

// InViewport reports whether a screen point lies inside the viewport.
func (c *Camera) InViewport(sx, sy float64) bool {
	return c.Viewport.Contains(sx, sy)
}

// VisibleBounds returns the world-space rectangle the camera currently shows.
func (c *Camera) VisibleBounds() Rect {
	s := c.PixelsPerUnit()
	w := c.Viewport.Width / s
	h := c.Viewport.Height / s
	return Rect{X: c.X - w/2, Y: c.Y - h/2, Width: w, Height: h}
}

// Visible reports whether the world rectangle b overlaps what the camera shows.
func (c *Camera) Visible(b Rect) bool {
	return c.VisibleBounds().Intersects(b)
}

// MarkDirty forces a recomputation of the view matrix.
func (c *Camera) MarkDirty() {
	c.dirty = true
}
