package allofyou

import (
	"os"
	"strings"
	"testing"
)

func TestLoadTestScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "screenshot", "label": "initial"},
			{"action": "click", "x": 100, "y": 200},
			{"action": "wait", "frames": 3},
			{"action": "mode", "mode": "mindmap"},
			{"action": "zoom", "delta": -2}
		]
	}`)

	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 5 {
		t.Fatalf("expected 5 steps, got %d", len(runner.steps))
	}
	if runner.steps[0].Action != "screenshot" || runner.steps[0].Label != "initial" {
		t.Error("step 0 mismatch")
	}
	if runner.steps[1].Action != "click" || runner.steps[1].X != 100 || runner.steps[1].Y != 200 {
		t.Error("step 1 mismatch")
	}
	if runner.steps[2].Action != "wait" || runner.steps[2].Frames != 3 {
		t.Error("step 2 mismatch")
	}
	if runner.steps[3].Mode != "mindmap" || runner.steps[4].Delta != -2 {
		t.Error("step 3/4 mismatch")
	}
	if runner.Done() {
		t.Error("fresh runner should not be done")
	}
}

func TestLoadTestScript_Invalid(t *testing.T) {
	_, err := LoadTestScript([]byte(`not json`))
	if err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestLoadTestScript_Empty(t *testing.T) {
	_, err := LoadTestScript([]byte(`{"steps": []}`))
	if err == nil {
		t.Error("expected error for empty steps")
	}
}

func TestLoadTestScript_UnknownAction(t *testing.T) {
	_, err := LoadTestScript([]byte(`{"steps": [{"action": "wait"}, {"action": "jump"}]}`))
	if err == nil || !strings.Contains(err.Error(), `step 1: unknown action "jump"`) {
		t.Errorf("err = %v", err)
	}
}

func TestLoadTestScript_BadMode(t *testing.T) {
	_, err := LoadTestScript([]byte(`{"steps": [{"action": "mode", "mode": "graph"}]}`))
	if err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestRunnerStep_ModeWaitZoom(t *testing.T) {
	s := newTestSession(t)
	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "toggle"},
		{"action": "wait", "frames": 3},
		{"action": "mode", "mode": "face"},
		{"action": "zoom", "delta": 2}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	s.SetTestRunner(runner)

	s.Update(1.0/60, FrameInput{})
	if s.Mode() != ModeMindMap {
		t.Fatalf("frame 1: mode = %v, want mindmap", s.Mode())
	}

	// wait 3 frames: frames 2, 3, and 4
	for i := range 3 {
		s.Update(1.0/60, FrameInput{})
		if s.Mode() != ModeMindMap {
			t.Fatalf("wait frame %d: mode changed early", i)
		}
	}

	s.Update(1.0/60, FrameInput{})
	if s.Mode() != ModeFace {
		t.Errorf("frame 5: mode = %v, want face", s.Mode())
	}
	if runner.Done() {
		t.Error("runner finished early")
	}

	s.Update(1.0/60, FrameInput{})
	assertNear(t, "ZoomTarget", s.Camera().ZoomTarget(), 1.2)
	if !runner.Done() {
		t.Error("runner should be done after the last step")
	}
}

func TestRunnerStep_ZoomLevel(t *testing.T) {
	s := newTestSession(t)
	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "zoom", "level": 1.5}]}`))
	if err != nil {
		t.Fatal(err)
	}
	s.SetTestRunner(runner)
	s.Update(1.0/60, FrameInput{})
	assertNear(t, "ZoomTarget", s.Camera().ZoomTarget(), 1.5)
	assertNear(t, "Zoom", s.Camera().Zoom(), 1.5)
}

func TestRunnerStep_DragWaitsForInjection(t *testing.T) {
	s := newTestSession(t)
	enterMindMap(s)
	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "drag", "fromX": 640, "fromY": 360, "toX": 700, "toY": 384, "frames": 4},
		{"action": "toggle"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	s.SetTestRunner(runner)

	// Frame 1 queues the drag and consumes the press; frames 2-4 drain it.
	for i := range 4 {
		s.Update(1.0/60, FrameInput{})
		if s.Mode() != ModeMindMap {
			t.Fatalf("frame %d: toggle ran before the drag finished", i+1)
		}
	}
	s.Update(1.0/60, FrameInput{})
	if s.Mode() != ModeFace {
		t.Error("toggle should run once the drag has drained")
	}
	if !runner.Done() {
		t.Error("runner should be done")
	}
}

func TestRunnerStep_Screenshot(t *testing.T) {
	s := newTestSession(t)
	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "screenshot", "label": "mind map!"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	s.SetTestRunner(runner)
	s.Update(1.0/60, FrameInput{})

	entries, err := os.ReadDir(s.ScreenshotDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("files = %d, want 1", len(entries))
	}
	if name := entries[0].Name(); !strings.HasSuffix(name, "_mind_map_.png") {
		t.Errorf("file name = %q", name)
	}
	if len(s.screenshotQueue) != 0 {
		t.Error("queue should be flushed")
	}
}

func TestRunnerStep_ClickSnapshotsInFaceMode(t *testing.T) {
	s := newTestSession(t)
	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "click", "x": 640, "y": 360}]}`))
	if err != nil {
		t.Fatal(err)
	}
	s.SetTestRunner(runner)
	for range 3 {
		s.Update(1.0/60, FrameInput{})
	}
	if !runner.Done() {
		t.Error("runner should be done")
	}
	entries, _ := os.ReadDir(s.ScreenshotDir)
	if len(entries) != 1 || !strings.HasSuffix(entries[0].Name(), "_allofyou.jpg") {
		t.Errorf("entries = %v", entries)
	}
}
