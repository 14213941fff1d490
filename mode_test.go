package allofyou

import "testing"

type recordingOverlay struct {
	calls []string
}

func (o *recordingOverlay) Show() { o.calls = append(o.calls, "show") }
func (o *recordingOverlay) Hide() { o.calls = append(o.calls, "hide") }

func TestModeString(t *testing.T) {
	if ModeFace.String() != "face" || ModeMindMap.String() != "mindmap" {
		t.Errorf("got %q, %q", ModeFace, ModeMindMap)
	}
	if got := Mode(9).String(); got != "Mode(9)" {
		t.Errorf("Mode(9).String() = %q", got)
	}
}

func TestParseMode(t *testing.T) {
	for _, m := range []Mode{ModeFace, ModeMindMap} {
		got, err := ParseMode(m.String())
		if err != nil || got != m {
			t.Errorf("ParseMode(%q) = %v, %v", m.String(), got, err)
		}
	}
	if _, err := ParseMode("graph"); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestModeControllerStartsInFace(t *testing.T) {
	c := NewModeController(nil)
	if c.Mode() != ModeFace {
		t.Errorf("Mode = %v, want face", c.Mode())
	}
}

func TestModeControllerToggleInvolution(t *testing.T) {
	ov := &recordingOverlay{}
	c := NewModeController(ov)

	if got := c.Toggle(); got != ModeMindMap {
		t.Errorf("first Toggle = %v, want mindmap", got)
	}
	if got := c.Toggle(); got != ModeFace {
		t.Errorf("second Toggle = %v, want face", got)
	}
	if c.Mode() != ModeFace {
		t.Errorf("Mode = %v after two toggles", c.Mode())
	}
	if len(ov.calls) != 2 || ov.calls[0] != "show" || ov.calls[1] != "hide" {
		t.Errorf("overlay calls = %v, want [show hide]", ov.calls)
	}
}

func TestModeControllerSetSameIsNoop(t *testing.T) {
	ov := &recordingOverlay{}
	c := NewModeController(ov)
	var changes int
	c.OnChange = func(Mode) { changes++ }

	c.Set(ModeFace)
	if len(ov.calls) != 0 || changes != 0 {
		t.Errorf("Set(current) notified: overlay %v, changes %d", ov.calls, changes)
	}
	c.Set(ModeMindMap)
	c.Set(ModeMindMap)
	if len(ov.calls) != 1 || changes != 1 {
		t.Errorf("overlay %v, changes %d, want one transition", ov.calls, changes)
	}
}

func TestModeControllerSetUnknownIgnored(t *testing.T) {
	ov := &recordingOverlay{}
	c := NewModeController(ov)
	var changes int
	c.OnChange = func(Mode) { changes++ }

	c.Set(Mode(7))
	if c.Mode() != ModeFace {
		t.Errorf("Mode = %v, want face", c.Mode())
	}
	if len(ov.calls) != 0 || changes != 0 {
		t.Errorf("unknown mode notified: overlay %v, changes %d", ov.calls, changes)
	}
}

func TestModeControllerEvents(t *testing.T) {
	c := NewModeController(nil)
	var events []SessionEvent
	c.sink = EventFunc(func(e SessionEvent) { events = append(events, e) })

	var seen []Mode
	c.OnChange = func(m Mode) { seen = append(seen, m) }

	c.Toggle()
	c.Toggle()

	if len(events) != 2 {
		t.Fatalf("events = %d, want 2", len(events))
	}
	if events[0].Type != EventModeChanged || events[0].Mode != ModeMindMap || events[0].PanelIndex != -1 {
		t.Errorf("event 0 = %+v", events[0])
	}
	if events[1].Mode != ModeFace {
		t.Errorf("event 1 mode = %v", events[1].Mode)
	}
	if len(seen) != 2 || seen[0] != ModeMindMap || seen[1] != ModeFace {
		t.Errorf("OnChange saw %v", seen)
	}
}
