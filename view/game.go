package view

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/phanxgames/allofyou"
)

// Game implements ebiten.Game around a Session.
type Game struct {
	session *allofyou.Session
	texture *ebiten.Image
	regions []*ebiten.Image
	fps     *fpsWidget

	// ExitWhenDone ends the game once the attached test script finishes.
	ExitWhenDone bool
	runner       *allofyou.TestRunner

	order []int
	segs  []allofyou.LineSegment
}

// NewGame creates a Game drawing panels with the UV regions of texture.
// texture may be nil, in which case panels are flat filled.
func NewGame(session *allofyou.Session, texture image.Image, showFPS bool) *Game {
	g := &Game{session: session}
	if texture != nil {
		g.texture = ebiten.NewImageFromImage(texture)
		g.regions = panelRegions(session.Animator().Panels(), g.texture)
	}
	if showFPS {
		g.fps = newFPSWidget()
	}
	return g
}

// SetTestRunner attaches runner to the session and remembers it so the game
// can exit when it completes.
func (g *Game) SetTestRunner(runner *allofyou.TestRunner) {
	g.runner = runner
	g.session.SetTestRunner(runner)
}

// panelRegions cuts the texture sub-image for every panel. A nil entry means
// the panel's UV rect falls outside the texture.
func panelRegions(panels []*allofyou.Panel, tex *ebiten.Image) []*ebiten.Image {
	regions := make([]*ebiten.Image, len(panels))
	for i, p := range panels {
		r := allofyou.UVRect(p.UV, tex.Bounds())
		if r.Empty() {
			continue
		}
		regions[i] = tex.SubImage(r).(*ebiten.Image)
	}
	return regions
}

// readInput samples the primary pointer, the mode key, and the wheel.
func (g *Game) readInput() allofyou.FrameInput {
	mx, my := ebiten.CursorPosition()
	sx, sy := float64(mx), float64(my)

	_, wheelY := ebiten.Wheel()
	return allofyou.FrameInput{
		Pointer: allofyou.PointerEvent{
			X:       sx,
			Y:       sy,
			Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
			Inside:  g.session.Camera().InViewport(sx, sy),
		},
		Toggle: inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Wheel:  wheelNotches(wheelY),
	}
}

// wheelNotches converts an Ebitengine wheel reading (positive when scrolling
// up) to zoom notches. Scrolling down zooms in.
func wheelNotches(wheelY float64) float64 {
	return -wheelY
}

// Update advances the session by one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	dt := 1.0 / float64(ebiten.TPS())
	g.session.Update(dt, g.readInput())
	if g.fps != nil {
		g.fps.update(dt)
	}
	if g.ExitWhenDone && g.runner != nil && g.runner.Done() {
		return ebiten.Termination
	}
	return nil
}

// Draw renders lines behind panels, panels far to near, then the FPS widget.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(allofyou.ColorBackground.RGBA8())

	cam := g.session.Camera()
	anim := g.session.Animator()
	panels := anim.Panels()
	overlay := g.session.Overlay()

	g.segs = overlay.Segments(panels, anim.CenterIndex(), g.segs[:0])
	if len(g.segs) > 0 {
		lc := overlay.Color
		lc.A *= overlay.Opacity()
		clr := lc.RGBA8()
		for _, seg := range g.segs {
			x1, y1 := cam.WorldToScreen(seg.From.X, seg.From.Y)
			x2, y2 := cam.WorldToScreen(seg.To.X, seg.To.Y)
			vector.StrokeLine(screen, float32(x1), float32(y1), float32(x2), float32(y2),
				float32(overlay.Width), clr, true)
		}
	}

	ppu := cam.PixelsPerUnit()
	g.order = allofyou.DepthOrder(panels, g.order)
	for _, i := range g.order {
		p := panels[i]
		b := p.Bounds()
		if !cam.Visible(b) {
			continue
		}
		x, y := cam.WorldToScreen(b.X, b.Y+b.Height)
		w, h := b.Width*ppu, b.Height*ppu

		var region *ebiten.Image
		if g.regions != nil {
			region = g.regions[i]
		}
		if region == nil {
			vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), panelColor(p), false)
			continue
		}
		rb := region.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(w/float64(rb.Dx()), h/float64(rb.Dy()))
		op.GeoM.Translate(x, y)
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(region, op)
	}

	if g.fps != nil {
		g.fps.draw(screen)
	}
}

// panelColor is the flat fill for panels without a texture region,
// lighter toward the foreground.
func panelColor(p *allofyou.Panel) color.Color {
	t := (p.ZDepth + 50) / 125
	t = max(0, min(1, t))
	lift := uint8(40 * t)
	return color.NRGBA{R: 0xb0 + lift, G: 0x8c + lift, B: 0x72 + lift, A: 0xff}
}

// Layout keeps the camera viewport in sync with the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.session.Camera().SetViewport(allofyou.Rect{
		Width:  float64(outsideWidth),
		Height: float64(outsideHeight),
	})
	return outsideWidth, outsideHeight
}
