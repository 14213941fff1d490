package allofyou

// DragController turns pointer presses in mind-map mode into a drag of a
// single panel. Coordinates passed in are world coordinates; project
// pointer positions with [Camera.ScreenToWorld] first.
type DragController struct {
	anim  *Animator
	modes *ModeController
	sink  EventSink

	index  int
	active bool
}

// NewDragController creates a controller that drags panels of anim while
// modes reports mind-map mode.
func NewDragController(anim *Animator, modes *ModeController) *DragController {
	return &DragController{anim: anim, modes: modes, index: -1}
}

// HitTest returns the panel under world point (wx, wy) that is nearest to
// the camera (largest current Z). Ties go to the earlier catalog entry.
// Returns -1 if nothing is hit.
func (d *DragController) HitTest(wx, wy float64) int {
	hit := -1
	var hitZ float64
	for i, p := range d.anim.Panels() {
		if !p.Bounds().Contains(wx, wy) {
			continue
		}
		z := p.Position().Z
		if hit < 0 || z > hitZ {
			hit = i
			hitZ = z
		}
	}
	return hit
}

// Begin tries to grab the panel under (wx, wy). It does nothing outside
// mind-map mode, when a drag is already active, or when no panel is hit.
func (d *DragController) Begin(wx, wy float64) (int, bool) {
	if d.active || d.modes.Mode() != ModeMindMap {
		return -1, false
	}
	i := d.HitTest(wx, wy)
	if i < 0 {
		return -1, false
	}
	d.index = i
	d.active = true
	d.anim.SetDragPosition(i, wx, wy)
	d.emit(EventDragStart, wx, wy)
	return i, true
}

// Move updates the held panel's drag position. No-op when nothing is held.
func (d *DragController) Move(wx, wy float64) {
	if !d.active {
		return
	}
	d.anim.SetDragPosition(d.index, wx, wy)
	d.emit(EventDrag, wx, wy)
}

// End releases the held panel. Its spring then carries it back toward its
// mind-map position. No-op when nothing is held.
func (d *DragController) End() {
	if !d.active {
		return
	}
	pos := d.anim.DragPosition()
	d.anim.ReleaseDrag(d.index)
	d.emit(EventDragEnd, pos.X, pos.Y)
	d.index = -1
	d.active = false
}

// Active returns the held panel index, if any.
func (d *DragController) Active() (int, bool) {
	return d.index, d.active
}

func (d *DragController) emit(t EventType, wx, wy float64) {
	if d.sink == nil {
		return
	}
	ev := SessionEvent{Type: t, Mode: d.modes.Mode(), PanelIndex: d.index, X: wx, Y: wy}
	if p := d.anim.Panel(d.index); p != nil {
		ev.PanelID = p.ID
	}
	d.sink.EmitEvent(ev)
}
