package allofyou

import "math"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorLine is the connector line color used by the mind-map overlay (#EE6C4D).
var ColorLine = Color{R: 0xEE / 255.0, G: 0x6C / 255.0, B: 0x4D / 255.0, A: 1}

// ColorBackground is the off-white clear color behind the mosaic (#F0EEE9).
var ColorBackground = Color{R: 0xF0 / 255.0, G: 0xEE / 255.0, B: 0xE9 / 255.0, A: 1}

// Vec2 is a 2D vector used for pointer positions and panel footprints.
type Vec2 struct {
	X, Y float64
}

// Vec3 is a 3D vector used for panel positions, targets, and velocities.
// The coordinate system is right-handed with Y up and the camera looking
// down the negative Z axis, so larger Z is nearer to the viewer.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v * s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Len returns the Euclidean length of v.
func (v Vec3) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Rect is an axis-aligned rectangle. Screen rectangles have their origin at
// the top-left with Y increasing downward; world rectangles use Y up, with
// (X, Y) the minimum corner.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// EventType identifies a kind of session event.
type EventType uint8

const (
	EventModeChanged EventType = iota // fires after the display mode flips
	EventDragStart                    // fires when a pointer press grabs a panel
	EventDrag                         // fires on every pointer move while a panel is held
	EventDragEnd                      // fires when the held panel is released
	EventScreenshot                   // fires when a snapshot is queued
)

// String returns a short lowercase name for the event type.
func (e EventType) String() string {
	switch e {
	case EventModeChanged:
		return "mode"
	case EventDragStart:
		return "dragstart"
	case EventDrag:
		return "drag"
	case EventDragEnd:
		return "dragend"
	case EventScreenshot:
		return "screenshot"
	default:
		return "unknown"
	}
}
