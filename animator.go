package allofyou

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sync"
)

// Animator owns the panel arena and advances every panel once per frame.
// Each frame it combines the mode, elapsed time, face pose, and drag state
// into a target per panel and steps that panel's spring.
//
// Drag state is a single optional slot, so at most one panel is held at a
// time. Drag writes may come from another goroutine; they are serialised
// against the per-frame read.
type Animator struct {
	panels []*Panel
	center int
	tun    Tuning

	mu         sync.Mutex
	dragIndex  int
	dragActive bool
	dragPos    Vec2
}

// NewAnimator lays out the catalog with rng and returns an Animator over
// the resulting panels. The tuning is validated first.
func NewAnimator(defs []PanelDef, tun Tuning, rng *rand.Rand) (*Animator, error) {
	if err := tun.Validate(); err != nil {
		return nil, fmt.Errorf("new animator: %w", err)
	}
	panels, err := GenerateLayout(defs, tun, rng)
	if err != nil {
		return nil, fmt.Errorf("new animator: %w", err)
	}
	center := -1
	for i, p := range panels {
		if p.ID == CenterPanelID {
			center = i
			break
		}
	}
	return &Animator{panels: panels, center: center, tun: tun, dragIndex: -1}, nil
}

// Panels returns the panel arena. The returned slice MUST NOT be mutated.
func (a *Animator) Panels() []*Panel {
	return a.panels
}

// Panel returns the panel at index i, or nil when i is out of range.
func (a *Animator) Panel(i int) *Panel {
	if i < 0 || i >= len(a.panels) {
		return nil
	}
	return a.panels[i]
}

// Len returns the number of panels.
func (a *Animator) Len() int { return len(a.panels) }

// CenterIndex returns the index of the center panel.
func (a *Animator) CenterIndex() int { return a.center }

// Tuning returns the tuning the Animator was built with.
func (a *Animator) Tuning() Tuning { return a.tun }

// SetDragPosition marks panel i as held at world (x, y). If another panel
// was held it is released. Out-of-range indices are ignored.
func (a *Animator) SetDragPosition(i int, x, y float64) {
	if i < 0 || i >= len(a.panels) {
		return
	}
	a.mu.Lock()
	a.dragIndex = i
	a.dragActive = true
	a.dragPos = Vec2{x, y}
	a.mu.Unlock()
}

// ReleaseDrag lets go of panel i. The spring then relaxes it back to its
// layout target. Out-of-range indices, or a panel that is not held, are
// ignored.
func (a *Animator) ReleaseDrag(i int) {
	if i < 0 || i >= len(a.panels) {
		return
	}
	a.mu.Lock()
	if a.dragActive && a.dragIndex == i {
		a.dragActive = false
		a.dragIndex = -1
	}
	a.mu.Unlock()
}

// Dragging returns the held panel index, if any.
func (a *Animator) Dragging() (int, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.dragIndex, a.dragActive
}

// IsDragging reports whether panel i is currently held.
func (a *Animator) IsDragging(i int) bool {
	idx, ok := a.Dragging()
	return ok && idx == i
}

// DragPosition returns the world XY of the held panel's pointer.
func (a *Animator) DragPosition() Vec2 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.dragPos
}

// dragSnapshot is the drag state read once per frame.
type dragSnapshot struct {
	index  int
	active bool
	pos    Vec2
}

func (a *Animator) snapshotDrag() dragSnapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	return dragSnapshot{index: a.dragIndex, active: a.dragActive, pos: a.dragPos}
}

// Update computes every panel's target for this frame and steps its spring
// exactly once. t is the elapsed session time in seconds.
func (a *Animator) Update(mode Mode, t float64, pose FacePose) {
	drag := a.snapshotDrag()
	for i, p := range a.panels {
		p.Spring.SetTarget(a.target(p, i, mode, t, pose, drag))
		p.Spring.Step()
	}
}

// Target returns the target panel i would be given this frame, without
// stepping anything. Returns the zero vector for an out-of-range index.
func (a *Animator) Target(i int, mode Mode, t float64, pose FacePose) Vec3 {
	if i < 0 || i >= len(a.panels) {
		return Vec3{}
	}
	return a.target(a.panels[i], i, mode, t, pose, a.snapshotDrag())
}

func (a *Animator) target(p *Panel, i int, mode Mode, t float64, pose FacePose, drag dragSnapshot) Vec3 {
	var target Vec3
	var idleAmp float64

	switch mode {
	case ModeMindMap:
		if drag.active && drag.index == i {
			// The pointer owns XY; z stays on the static layout value.
			return Vec3{drag.pos.X, drag.pos.Y, p.MindMapPosition.Z}
		}
		target = p.MindMapPosition.Add(a.floatOffset(p, t))
		idleAmp = a.tun.IdleAmpMindMap
	default:
		// Face mode, and the fallback for unknown modes.
		target = p.FacePosition.Add(a.poseOffset(p, pose))
		if pose.Detected {
			idleAmp = a.tun.IdleAmpTracked
		} else {
			idleAmp = a.tun.IdleAmpUntracked
		}
	}

	return target.Add(a.idleOffset(p, t, idleAmp))
}

// poseOffset is the pose-driven displacement in face mode. Zero when no face
// is detected. Foreground panels get a larger parallax factor.
func (a *Animator) poseOffset(p *Panel, pose FacePose) Vec3 {
	if !pose.Detected {
		return Vec3{}
	}
	parallax := 1 + p.ZDepth*a.tun.ParallaxPerDepth
	move := a.tun.MoveScale * parallax
	rot := a.tun.RotScale * parallax
	return Vec3{
		X: pose.Position.X*move + pose.Rotation.Yaw*rot,
		Y: pose.Position.Y*move + pose.Rotation.Pitch*rot,
		Z: pose.Rotation.Roll * a.tun.RollScale,
	}
}

// floatOffset is the mind-map drift, desynchronised per panel by Index.
func (a *Animator) floatOffset(p *Panel, t float64) Vec3 {
	phase := float64(p.Index)
	speed := a.tun.FloatSpeed
	return Vec3{
		X: math.Sin(t*speed+phase) * a.tun.FloatAmp,
		Y: math.Cos(t*speed*0.8+phase*1.3) * a.tun.FloatAmp,
		Z: math.Sin(t*speed*0.5+phase*0.7) * a.tun.FloatAmpZ,
	}
}

// idleOffset is the small XY breathing applied in both modes.
func (a *Animator) idleOffset(p *Panel, t, amp float64) Vec3 {
	phase := float64(p.Index) * a.tun.IdlePhaseStep
	return Vec3{
		X: math.Sin(t*a.tun.IdleSpeed+phase) * amp,
		Y: math.Cos(t*a.tun.IdleSpeed*0.7+phase*1.2) * amp,
	}
}
