package allofyou

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// Panel is one animated tile of the mosaic. Everything except the spring is
// fixed at layout time.
type Panel struct {
	// ID is the catalog id, unique within a layout.
	ID string
	// Index is the catalog ordinal. Used only as a phase seed for idle and
	// floating motion.
	Index int

	FacePosition    Vec3
	MindMapPosition Vec3

	// ZDepth is FacePosition.Z. Drives parallax and the mind-map depth band.
	ZDepth float64
	// DistFromCenter is the face-layout distance from the origin over
	// Tuning.MaxDist, clamped to [0, 1].
	DistFromCenter float64

	// Size is the tile footprint in world units.
	Size Vec2
	// UV is the source-image rectangle (u0, v0, u1, v1).
	UV [4]float64

	// Spring is owned by the panel and stepped by the Animator.
	Spring *Spring
}

// Position returns the panel's current smoothed position.
func (p *Panel) Position() Vec3 {
	return p.Spring.Current()
}

// Bounds returns the world-space XY rectangle the tile covers at its
// current position. Tiles are centred on their position.
func (p *Panel) Bounds() Rect {
	pos := p.Spring.Current()
	return Rect{
		X:      pos.X - p.Size.X/2,
		Y:      pos.Y - p.Size.Y/2,
		Width:  p.Size.X,
		Height: p.Size.Y,
	}
}

// MindMapAngle returns the angle in radians assigned to the k-th of m
// non-center panels.
func MindMapAngle(k, m int) float64 {
	return float64(k) / float64(m) * 2 * math.Pi
}

// mindMapRadius returns the base radius for a panel at depth z before jitter.
func (t Tuning) mindMapRadius(z float64) float64 {
	switch {
	case z > t.ForegroundZ:
		return t.MindMapRadius + t.ForegroundBoost
	case z < t.BackgroundZ:
		return t.MindMapRadius - t.BackgroundCut
	default:
		return t.MindMapRadius
	}
}

// GenerateLayout builds the panel set from a catalog. Face positions are the
// catalog coordinates; the panel with id CenterPanelID sits at the mind-map
// origin and the others are spread evenly around it in catalog order, with
// radius and depth jitter drawn from rng. Passing the same seed yields the
// same layout.
func GenerateLayout(defs []PanelDef, tun Tuning, rng *rand.Rand) ([]*Panel, error) {
	if len(defs) == 0 {
		return nil, fmt.Errorf("generate layout: empty catalog")
	}
	if rng == nil {
		return nil, fmt.Errorf("generate layout: nil random source")
	}

	center := -1
	seen := make(map[string]bool, len(defs))
	for i, def := range defs {
		if seen[def.ID] {
			return nil, fmt.Errorf("generate layout: duplicate panel id %q", def.ID)
		}
		seen[def.ID] = true
		if def.ID == CenterPanelID {
			center = i
		}
	}
	if center < 0 {
		return nil, fmt.Errorf("generate layout: no center panel %q", CenterPanelID)
	}

	others := len(defs) - 1
	panels := make([]*Panel, 0, len(defs))
	rank := 0
	for i, def := range defs {
		var mm Vec3
		if i != center {
			angle := MindMapAngle(rank, others)
			radius := tun.mindMapRadius(def.Z) + rng.Float64()*tun.RadiusJitter
			mm = Vec3{
				X: math.Cos(angle) * radius,
				Y: math.Sin(angle) * radius,
				Z: def.Z*tun.DepthScale + (rng.Float64()-0.5)*tun.ZJitter,
			}
			rank++
		}
		panels = append(panels, newPanel(def, i, mm, tun))
	}
	return panels, nil
}

func newPanel(def PanelDef, index int, mindMap Vec3, tun Tuning) *Panel {
	face := Vec3{def.X, def.Y, def.Z}
	dist := math.Min(math.Hypot(def.X, def.Y)/tun.MaxDist, 1)
	stiffness := lerp(tun.StiffnessCenter, tun.StiffnessEdge, dist)

	return &Panel{
		ID:              def.ID,
		Index:           index,
		FacePosition:    face,
		MindMapPosition: mindMap,
		ZDepth:          def.Z,
		DistFromCenter:  dist,
		Size:            Vec2{def.W, def.H},
		UV:              def.UV,
		Spring:          NewSpring(face, stiffness, tun.Damping),
	}
}
