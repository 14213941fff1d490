package allofyou

import "testing"

func TestLineOverlayStartsHidden(t *testing.T) {
	o := NewLineOverlay(DefaultTuning())
	if o.Opacity() != 0 || o.Visible() || o.Fading() {
		t.Errorf("opacity %f visible %v fading %v", o.Opacity(), o.Visible(), o.Fading())
	}
	if o.Color != ColorLine {
		t.Errorf("Color = %+v, want ColorLine", o.Color)
	}
}

func TestLineOverlayFadeIn(t *testing.T) {
	o := NewLineOverlay(DefaultTuning())
	o.Show()
	if !o.Fading() {
		t.Fatal("Show should start a fade")
	}

	// OutQuad at the halfway point: 0.85 * 0.75
	o.Update(0.3)
	if !approxEqual(o.Opacity(), 0.6375, 1e-3) {
		t.Errorf("opacity at half fade = %f, want ~0.6375", o.Opacity())
	}
	if !o.Visible() {
		t.Error("should be visible mid-fade")
	}

	o.Update(0.5)
	if o.Fading() {
		t.Error("fade should be finished")
	}
	if o.Opacity() != 0.85 {
		t.Errorf("opacity = %f, want 0.85", o.Opacity())
	}
}

func TestLineOverlayReverseMidFade(t *testing.T) {
	o := NewLineOverlay(DefaultTuning())
	o.Show()
	o.Update(0.3)
	mid := o.Opacity()

	o.Hide()
	if o.Opacity() != mid {
		t.Errorf("Hide jumped opacity from %f to %f", mid, o.Opacity())
	}
	o.Update(0.1)
	if o.Opacity() >= mid {
		t.Errorf("opacity should fall after Hide: %f >= %f", o.Opacity(), mid)
	}
	o.Update(1)
	if o.Opacity() != 0 || o.Visible() {
		t.Errorf("opacity = %f after fade out", o.Opacity())
	}
}

func TestLineOverlayNoFade(t *testing.T) {
	tun := DefaultTuning()
	tun.OverlayFade = 0
	o := NewLineOverlay(tun)
	o.Show()
	if o.Opacity() != tun.OverlayOpacity || o.Fading() {
		t.Errorf("opacity = %f fading %v, want instant show", o.Opacity(), o.Fading())
	}
	o.Hide()
	if o.Opacity() != 0 {
		t.Errorf("opacity = %f, want instant hide", o.Opacity())
	}
}

func TestLineOverlaySegments(t *testing.T) {
	a := newTestAnimator(t, DefaultTuning())
	o := NewLineOverlay(DefaultTuning())

	if segs := o.Segments(a.Panels(), a.CenterIndex(), nil); len(segs) != 0 {
		t.Errorf("hidden overlay produced %d segments", len(segs))
	}

	o.Show()
	o.Update(1)
	segs := o.Segments(a.Panels(), a.CenterIndex(), nil)
	if len(segs) != a.Len()-1 {
		t.Fatalf("segments = %d, want %d", len(segs), a.Len()-1)
	}
	center := a.Panel(a.CenterIndex()).Position()
	for _, s := range segs {
		if s.PanelIndex == a.CenterIndex() {
			t.Error("center panel should not connect to itself")
		}
		if s.From != center.Add(Vec3{Z: -50}) {
			t.Errorf("From = %+v", s.From)
		}
		if s.To != a.Panel(s.PanelIndex).Position().Add(Vec3{Z: -50}) {
			t.Errorf("To = %+v for panel %d", s.To, s.PanelIndex)
		}
	}

	if segs := o.Segments(a.Panels(), -1, nil); len(segs) != 0 {
		t.Error("invalid center should produce no segments")
	}
}

func TestModeControllerDrivesLineOverlay(t *testing.T) {
	o := NewLineOverlay(DefaultTuning())
	c := NewModeController(o)
	c.Toggle()
	o.Update(1)
	if !o.Visible() {
		t.Error("overlay should be visible in mind-map mode")
	}
	c.Toggle()
	o.Update(1)
	if o.Visible() {
		t.Error("overlay should be hidden in face mode")
	}
}
