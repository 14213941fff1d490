package allofyou

import (
	"image"
	"math"
	"sort"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

// SnapshotOptions controls Session.Snapshot.
type SnapshotOptions struct {
	// Width and Height of the image in pixels. Zero means the camera viewport size.
	Width, Height int
	// Texture is mapped onto each panel by its UV rectangle. When nil,
	// panels are filled with a depth-shaded flat color.
	Texture image.Image
	// Labels draws each panel's id at its center.
	Labels bool
}

var (
	labelFontOnce sync.Once
	labelFont     *truetype.Font
)

// labelFace returns a Go Mono face at the given size, or nil if the embedded
// font fails to parse.
func labelFace(size float64) font.Face {
	labelFontOnce.Do(func() {
		f, err := truetype.Parse(gomono.TTF)
		if err != nil {
			debugf("snapshot: parse label font: %v", err)
			return
		}
		labelFont = f
	})
	if labelFont == nil {
		return nil
	}
	return truetype.NewFace(labelFont, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// Snapshot renders the current frame headlessly: background, connector
// lines (when the overlay is visible), then panels back to front.
func (s *Session) Snapshot(opts SnapshotOptions) image.Image {
	w, h := opts.Width, opts.Height
	if w <= 0 || h <= 0 {
		w, h = int(s.camera.Viewport.Width), int(s.camera.Viewport.Height)
	}

	cam := *s.camera
	cam.SetViewport(Rect{Width: float64(w), Height: float64(h)})
	cam.MarkDirty()

	dc := gg.NewContext(w, h)
	bg := ColorBackground
	dc.SetRGBA(bg.R, bg.G, bg.B, bg.A)
	dc.Clear()

	panels := s.anim.Panels()

	segs := s.overlay.Segments(panels, s.anim.CenterIndex(), nil)
	if len(segs) > 0 {
		lc := s.overlay.Color
		dc.SetRGBA(lc.R, lc.G, lc.B, lc.A*s.overlay.Opacity())
		dc.SetLineWidth(s.overlay.Width)
		for _, seg := range segs {
			x1, y1 := cam.WorldToScreen(seg.From.X, seg.From.Y)
			x2, y2 := cam.WorldToScreen(seg.To.X, seg.To.Y)
			dc.DrawLine(x1, y1, x2, y2)
			dc.Stroke()
		}
	}

	var face font.Face
	if opts.Labels {
		face = labelFace(11)
		if face != nil {
			dc.SetFontFace(face)
		}
	}

	for _, i := range DepthOrder(panels, nil) {
		p := panels[i]
		b := p.Bounds()
		if !cam.Visible(b) {
			continue
		}
		// World rect min is bottom-left; screen top-left is (min X, max Y).
		x, y := cam.WorldToScreen(b.X, b.Y+b.Height)
		pw := b.Width * cam.PixelsPerUnit()
		ph := b.Height * cam.PixelsPerUnit()

		if !drawPanelTexture(dc, opts.Texture, p.UV, x, y, pw, ph) {
			shade := panelShade(p.ZDepth)
			dc.SetRGB(shade, shade*0.9, shade*0.82)
			dc.DrawRectangle(x, y, pw, ph)
			dc.Fill()
		}

		if face != nil {
			dc.SetRGBA(0, 0, 0, 0.75)
			dc.DrawStringAnchored(p.ID, x+pw/2, y+ph/2, 0.5, 0.5)
		}
	}

	return dc.Image()
}

// DepthOrder fills dst with panel indices sorted far to near by current Z,
// the order a painter's renderer should draw them in. Equal depths keep
// catalog order.
func DepthOrder(panels []*Panel, dst []int) []int {
	dst = dst[:0]
	for i := range panels {
		dst = append(dst, i)
	}
	sort.SliceStable(dst, func(a, b int) bool {
		return panels[dst[a]].Position().Z < panels[dst[b]].Position().Z
	})
	return dst
}

// UVRect converts a panel UV rectangle (u0, v0, u1, v1 with v up) to the
// matching pixel rectangle of an image with the given bounds, clipped to
// the bounds.
func UVRect(uv [4]float64, b image.Rectangle) image.Rectangle {
	w, h := float64(b.Dx()), float64(b.Dy())
	return image.Rect(
		b.Min.X+int(math.Round(clamp(uv[0], 0, 1)*w)),
		b.Min.Y+int(math.Round(clamp(1-uv[3], 0, 1)*h)),
		b.Min.X+int(math.Round(clamp(uv[2], 0, 1)*w)),
		b.Min.Y+int(math.Round(clamp(1-uv[1], 0, 1)*h)),
	).Intersect(b)
}

// panelShade maps face depth to a gray level so foreground panels read lighter.
func panelShade(z float64) float64 {
	return clamp(mapRange(z, -50, 75, 0.55, 0.92), 0.4, 1)
}

// subImager is implemented by the standard image types.
type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

// drawPanelTexture draws the UV region of tex scaled into the screen rect
// (x, y, w, h). UV v grows upward. Reports false when there is nothing to
// draw, so the caller can fall back to a flat fill.
func drawPanelTexture(dc *gg.Context, tex image.Image, uv [4]float64, x, y, w, h float64) bool {
	if tex == nil || w <= 0 || h <= 0 {
		return false
	}
	si, ok := tex.(subImager)
	if !ok {
		return false
	}
	r := UVRect(uv, tex.Bounds())
	if r.Empty() {
		return false
	}
	sub := si.SubImage(r)

	dc.Push()
	dc.Translate(x, y)
	dc.Scale(w/float64(r.Dx()), h/float64(r.Dy()))
	dc.DrawImage(sub, -r.Min.X, -r.Min.Y)
	dc.Pop()
	return true
}
