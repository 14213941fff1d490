package allofyou

import (
	"fmt"
	"image"
	"math/rand/v2"
	"time"
)

// SessionConfig configures NewSession. Zero fields take defaults.
type SessionConfig struct {
	// Catalog is the panel catalog. Defaults to DefaultCatalog().
	Catalog []PanelDef
	// Tuning defaults to DefaultTuning().
	Tuning *Tuning
	// Rand is the layout jitter source. Defaults to a PCG seeded with Seed.
	Rand *rand.Rand
	// Seed seeds the default random source.
	Seed uint64
	// Viewport is the screen rectangle the camera renders into.
	// Defaults to 1280x720.
	Viewport Rect
	// Pose is the face tracker. When nil the pointer drives a fake pose.
	Pose PoseSource
	// ScreenshotDir is where queued snapshots are written. Defaults to
	// "screenshots".
	ScreenshotDir string
}

// Session owns the animation model and everything that feeds it: panels,
// mode and drag controllers, camera, line overlay, pointer state, injected
// input, and queued screenshots. Hosts call Update once per frame.
type Session struct {
	anim    *Animator
	modes   *ModeController
	drag    *DragController
	camera  *Camera
	overlay *LineOverlay

	pose        PoseSource
	pointerPose *PoseBox

	sink  EventSink
	debug bool

	elapsed float64
	frame   uint64

	pointer     pointerState
	injectQueue []syntheticPointerEvent
	testRunner  *TestRunner

	screenshotQueue []string

	// ScreenshotDir is the directory queued snapshots are written to.
	ScreenshotDir string
	// ClickScreenshotLabel names snapshots taken by clicking in face mode.
	ClickScreenshotLabel string
	// Texture, if set, is mapped onto panels in snapshots by their UV rect.
	Texture image.Image
	// SnapshotLabels draws panel ids on snapshots.
	SnapshotLabels bool
}

// NewSession builds a session from cfg.
func NewSession(cfg SessionConfig) (*Session, error) {
	tun := DefaultTuning()
	if cfg.Tuning != nil {
		tun = *cfg.Tuning
	}
	defs := cfg.Catalog
	if defs == nil {
		defs = DefaultCatalog()
	}
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
	}
	vp := cfg.Viewport
	if vp.Width <= 0 || vp.Height <= 0 {
		vp = Rect{Width: 1280, Height: 720}
	}

	anim, err := NewAnimator(defs, tun, rng)
	if err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}

	overlay := NewLineOverlay(tun)
	modes := NewModeController(overlay)
	s := &Session{
		anim:                 anim,
		modes:                modes,
		drag:                 NewDragController(anim, modes),
		camera:               NewCamera(vp, tun),
		overlay:              overlay,
		pose:                 cfg.Pose,
		ScreenshotDir:        cfg.ScreenshotDir,
		ClickScreenshotLabel: "allofyou.jpg",
	}
	if s.ScreenshotDir == "" {
		s.ScreenshotDir = "screenshots"
	}
	if s.pose == nil {
		s.pointerPose = &PoseBox{}
		s.pose = s.pointerPose
	}
	modes.OnChange = s.onModeChange
	return s, nil
}

// Animator returns the panel animator.
func (s *Session) Animator() *Animator { return s.anim }

// Modes returns the mode controller.
func (s *Session) Modes() *ModeController { return s.modes }

// Drag returns the drag controller.
func (s *Session) Drag() *DragController { return s.drag }

// Camera returns the session camera.
func (s *Session) Camera() *Camera { return s.camera }

// Overlay returns the connector line overlay.
func (s *Session) Overlay() *LineOverlay { return s.overlay }

// Mode returns the current display mode.
func (s *Session) Mode() Mode { return s.modes.Mode() }

// Elapsed returns the session time in seconds.
func (s *Session) Elapsed() float64 { return s.elapsed }

// Frame returns the number of completed Update calls.
func (s *Session) Frame() uint64 { return s.frame }

// Pose returns the pose the next Update will read.
func (s *Session) Pose() FacePose { return s.pose.CurrentPose() }

// PointerDriven reports whether the pointer stands in for a face tracker.
func (s *Session) PointerDriven() bool { return s.pointerPose != nil }

// Toggle flips the display mode.
func (s *Session) Toggle() Mode { return s.modes.Toggle() }

// Zoom moves the camera zoom target by notches.
func (s *Session) Zoom(notches float64) { s.camera.ZoomBy(notches) }

// SetEventSink sets the optional event forwarder.
func (s *Session) SetEventSink(sink EventSink) {
	s.sink = sink
	s.modes.sink = sink
	s.drag.sink = sink
}

// SetDebugMode enables or disables per-frame stats on stderr.
func (s *Session) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// SetTestRunner attaches a TestRunner. Its step runs at the start of every
// Update, before input is processed.
func (s *Session) SetTestRunner(runner *TestRunner) {
	s.testRunner = runner
}

// onModeChange runs after every mode transition. Drags only exist in
// mind-map mode, so leaving it lets go of the held panel.
func (s *Session) onModeChange(m Mode) {
	if m != ModeMindMap {
		s.drag.End()
		if s.pointer.down {
			s.pointer.stale = true
			s.pointer.down = false
		}
	}
	if s.debug {
		debugf("mode -> %s at t=%.2fs", m, s.elapsed)
	}
}

// Update advances the session by dt seconds: scripted steps, input, camera
// zoom, overlay fade, then one animation step per panel. Queued screenshots
// are written at the end of the frame.
func (s *Session) Update(dt float64, in FrameInput) {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.processInput(in)
	s.camera.Update()
	s.overlay.Update(float32(dt))

	s.elapsed += dt
	s.anim.Update(s.modes.Mode(), s.elapsed, s.pose.CurrentPose())
	s.frame++

	if s.debug {
		s.debugLog(s.collectStats(time.Since(t0)))
	}

	s.flushScreenshots()
}
