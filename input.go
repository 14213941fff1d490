package allofyou

import "math"

// defaultClickSlop is how far (in screen pixels) a pointer may travel between
// press and release and still count as a click.
const defaultClickSlop = 4.0

// PointerEvent is the state of the primary pointer for one frame, in screen
// pixels. Inside is false when the pointer has left the viewport.
type PointerEvent struct {
	X, Y    float64
	Pressed bool
	Inside  bool
}

// FrameInput is everything a host feeds the session for one frame.
type FrameInput struct {
	Pointer PointerEvent
	// Toggle requests a face/mind-map mode flip.
	Toggle bool
	// Wheel is the scroll amount in notches; positive zooms in.
	Wheel float64
}

// pointerState tracks the press in progress.
type pointerState struct {
	down    bool
	inside  bool
	startX  float64
	startY  float64
	lastX   float64
	lastY   float64
	moved   bool
	started bool // true once any event has been seen
	// stale is set while the button is held from a press that was not
	// observed inside the viewport. Such a press never starts a drag or a
	// click; it clears on the next release.
	stale bool
}

// processInput applies one frame of input. Injected pointer events take
// precedence over real pointer input, one per frame.
func (s *Session) processInput(in FrameInput) {
	if in.Toggle {
		s.Toggle()
	}
	if in.Wheel != 0 {
		s.Zoom(in.Wheel)
	}
	if s.processInjectedInput() {
		return
	}
	s.processPointer(in.Pointer)
}

// processPointer runs the pointer state machine for the primary pointer.
func (s *Session) processPointer(ev PointerEvent) {
	ps := &s.pointer

	if !ev.Inside {
		// Leaving the viewport ends any drag and, in pointer-pose mode, loses
		// the fake face.
		if ps.down || ev.Pressed {
			ps.stale = true
		}
		if ps.down {
			s.drag.End()
			ps.down = false
		}
		if ps.inside && s.pointerPose != nil {
			s.pointerPose.Clear()
		}
		ps.inside = false
		return
	}
	ps.inside = true

	moved := !ps.started || ev.X != ps.lastX || ev.Y != ps.lastY
	ps.started = true
	if moved && s.pointerPose != nil {
		nx, ny := s.camera.ScreenToNDC(ev.X, ev.Y)
		s.pointerPose.Set(PoseFromPointer(nx, ny))
	}

	if ps.stale {
		if !ev.Pressed {
			ps.stale = false
		}
		ps.lastX, ps.lastY = ev.X, ev.Y
		return
	}

	wx, wy := s.camera.ScreenToWorld(ev.X, ev.Y)

	switch {
	case ev.Pressed && !ps.down:
		ps.down = true
		ps.startX, ps.startY = ev.X, ev.Y
		ps.moved = false
		s.drag.Begin(wx, wy)

	case !ev.Pressed && ps.down:
		if _, ok := s.drag.Active(); ok {
			if moved {
				s.drag.Move(wx, wy)
			}
			s.drag.End()
		} else if !ps.moved && s.modes.Mode() == ModeFace {
			// A plain click in face mode takes a snapshot.
			s.Screenshot(s.ClickScreenshotLabel)
		}
		ps.down = false

	case ev.Pressed && ps.down:
		if moved {
			if !ps.moved && math.Hypot(ev.X-ps.startX, ev.Y-ps.startY) > defaultClickSlop {
				ps.moved = true
			}
			s.drag.Move(wx, wy)
		}
	}

	ps.lastX, ps.lastY = ev.X, ev.Y
}
