// Package allofyou animates a mosaic of face panels for a webcam mirror.
//
// Each [Panel] is a rectangular tile mapping a region of the source image.
// In face mode panels sit on their face anchors and shift with the tracked
// head pose, foreground panels more than background ones. In mind-map mode
// they spread into a radial graph around the center panel, float, and can be
// dragged. Every panel is moved by its own [Spring], so mode changes, pose
// changes, and drag releases all ease out naturally.
//
// # Quick start
//
// [Session] wires everything together. Hosts feed it one [FrameInput] per
// frame and draw panels at [Panel.Position]:
//
//	s, err := allofyou.NewSession(allofyou.SessionConfig{Seed: 1})
//	if err != nil {
//		log.Fatal(err)
//	}
//	for {
//		s.Update(1.0/60, input)
//		for _, p := range s.Animator().Panels() {
//			draw(p.Position(), p.Size, p.UV)
//		}
//	}
//
// The view subpackage is a ready-made [Ebitengine] host; the ecs subpackage
// forwards session events into a [Donburi] world.
//
// # Pieces
//
// [Animator] owns the panels and computes each frame's targets.
// [GenerateLayout] builds both static layouts from a [PanelDef] catalog.
// [ModeController] flips modes and shows or hides the [LineOverlay].
// [DragController] grabs panels under the pointer through the [Camera].
// [Tuning] holds every constant and loads from YAML.
//
// For automated runs, inject pointer events ([Session.InjectDrag]) or
// attach a JSON script with [LoadTestScript]; [Session.Screenshot] writes
// headless snapshots.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package allofyou
