package allofyou

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
)

// DemoTexture paints a stylised face to stand in for the webcam feed: a
// radial skin gradient with eyes, brows, nose, and mouth. size is the edge
// length in pixels; the layout is authored at 512 and scaled.
func DemoTexture(size int) image.Image {
	if size <= 0 {
		size = 512
	}
	dc := gg.NewContext(size, size)
	k := float64(size) / 512
	dc.Scale(k, k)

	grad := gg.NewRadialGradient(256, 220, 40, 256, 280, 250)
	grad.AddColorStop(0, color.RGBA{0xe8, 0xd5, 0xc4, 0xff})
	grad.AddColorStop(0.4, color.RGBA{0xd4, 0xb5, 0xa0, 0xff})
	grad.AddColorStop(0.7, color.RGBA{0xc4, 0x9f, 0x85, 0xff})
	grad.AddColorStop(1, color.RGBA{0x8b, 0x60, 0x40, 0xff})
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, 512, 512)
	dc.Fill()

	// eyes
	dc.SetRGBA255(60, 40, 25, 77)
	dc.DrawEllipse(180, 200, 25, 12)
	dc.Fill()
	dc.DrawEllipse(332, 200, 25, 12)
	dc.Fill()

	// brows
	dc.SetRGBA255(40, 25, 15, 102)
	dc.DrawRectangle(155, 175, 55, 8)
	dc.Fill()
	dc.DrawRectangle(305, 175, 55, 8)
	dc.Fill()

	// nose
	dc.SetRGBA255(60, 40, 25, 38)
	dc.DrawEllipse(256, 280, 18, 40)
	dc.Fill()

	// mouth
	dc.SetRGBA255(140, 80, 70, 102)
	dc.DrawEllipse(256, 350, 40, 12)
	dc.Fill()

	return dc.Image()
}

// RGBA8 converts c to 8-bit straight-alpha RGBA.
func (c Color) RGBA8() color.NRGBA {
	to8 := func(v float64) uint8 {
		return uint8(math.Round(clamp(v, 0, 1) * 255))
	}
	return color.NRGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: to8(c.A)}
}
