package allofyou

import (
	"sync"
	"testing"
)

func TestPoseBoxZeroValue(t *testing.T) {
	var b PoseBox
	if b.CurrentPose().Detected {
		t.Error("zero PoseBox should report no face")
	}
}

func TestPoseBoxSetClear(t *testing.T) {
	var b PoseBox
	pose := FacePose{Detected: true, Position: Vec3{X: 0.3, Y: -0.2}, Rotation: Rotation{Yaw: 0.1}}
	b.Set(pose)
	if got := b.CurrentPose(); got != pose {
		t.Errorf("CurrentPose = %+v, want %+v", got, pose)
	}

	b.Clear()
	got := b.CurrentPose()
	if got.Detected {
		t.Error("Clear should mark the face lost")
	}
	if got.Position != pose.Position {
		t.Errorf("Clear should keep the last position, got %+v", got.Position)
	}
}

func TestPoseBoxConcurrent(t *testing.T) {
	var b PoseBox
	var wg sync.WaitGroup
	for w := range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 500 {
				b.Set(FacePose{Detected: true, Position: Vec3{X: float64(w), Y: float64(i)}})
			}
		}()
	}
	for range 500 {
		p := b.CurrentPose()
		if p.Detected && (p.Position.X < 0 || p.Position.X > 3) {
			t.Fatalf("torn pose %+v", p)
		}
	}
	wg.Wait()
	if !b.CurrentPose().Detected {
		t.Error("last pose should be detected")
	}
}

func TestPoseBoxConcurrentClear(t *testing.T) {
	var b PoseBox
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := range 500 {
			b.Set(FacePose{Detected: true, Position: Vec3{X: 1, Y: float64(i)}})
		}
	}()
	go func() {
		defer wg.Done()
		for range 500 {
			b.Clear()
		}
	}()
	wg.Wait()

	// Clear only ever flips Detected, so the final position is a Set one.
	p := b.CurrentPose()
	if p.Position.X != 1 {
		t.Errorf("position = %+v, want one written by Set", p.Position)
	}
	b.Set(FacePose{Detected: true, Position: Vec3{X: 2}})
	b.Clear()
	if p := b.CurrentPose(); p.Detected || p.Position.X != 2 {
		t.Errorf("after Set+Clear = %+v", p)
	}
}

func TestPoseFromPointer(t *testing.T) {
	p := PoseFromPointer(1, -0.5)
	if !p.Detected {
		t.Error("pointer pose should be detected")
	}
	assertNear(t, "x", p.Position.X, 0.4)
	assertNear(t, "y", p.Position.Y, -0.2)
	assertNear(t, "yaw", p.Rotation.Yaw, 0.25)
	assertNear(t, "pitch", p.Rotation.Pitch, -0.075)
	assertNear(t, "roll", p.Rotation.Roll, 0)
}
