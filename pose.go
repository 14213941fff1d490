package allofyou

import "sync/atomic"

// Rotation is a head orientation in radians.
type Rotation struct {
	Yaw, Pitch, Roll float64
}

// FacePose is the normalized output of a face tracker. Position X and Y are
// roughly in [-1, 1] with Y up. When Detected is false the other fields are
// ignored.
type FacePose struct {
	Detected bool
	Position Vec3
	Rotation Rotation
}

// PoseSource is polled once per frame for the most recent face pose.
// Implementations must not block.
type PoseSource interface {
	CurrentPose() FacePose
}

// PoseBox holds the last pose delivered by an asynchronous tracker. Set may
// be called from any goroutine; a new value overwrites the previous one and
// readers always see the latest complete pose. The zero value reports no
// face.
type PoseBox struct {
	p atomic.Pointer[FacePose]
}

// Set publishes a new pose.
func (b *PoseBox) Set(pose FacePose) {
	b.p.Store(&pose)
}

// Clear marks the face as lost while keeping the last position. A Set that
// races with Clear is never overwritten by stale data.
func (b *PoseBox) Clear() {
	for {
		old := b.p.Load()
		var pose FacePose
		if old != nil {
			pose = *old
		}
		pose.Detected = false
		if b.p.CompareAndSwap(old, &pose) {
			return
		}
	}
}

// CurrentPose returns the latest published pose.
func (b *PoseBox) CurrentPose() FacePose {
	if p := b.p.Load(); p != nil {
		return *p
	}
	return FacePose{}
}

// PoseFromPointer maps a pointer position in normalized device coordinates
// (both axes in [-1, 1], Y up) to a fake face pose. Used when no tracker is
// available so the pointer steers the mosaic.
func PoseFromPointer(nx, ny float64) FacePose {
	return FacePose{
		Detected: true,
		Position: Vec3{X: nx * 0.4, Y: ny * 0.4},
		Rotation: Rotation{Yaw: nx * 0.25, Pitch: ny * 0.15},
	}
}
