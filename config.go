package allofyou

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidTuning is wrapped by every error returned from [Tuning.Validate].
var ErrInvalidTuning = errors.New("invalid tuning")

// Tuning holds every numeric constant of the animation model. Units are
// world units (the face layout spans roughly ±250), seconds, and radians.
// The zero value is not usable; start from [DefaultTuning].
type Tuning struct {
	// Springs. Near-center panels use StiffnessCenter, edge panels
	// StiffnessEdge, interpolated by normalized distance over MaxDist.
	StiffnessCenter float64 `yaml:"stiffness_center"`
	StiffnessEdge   float64 `yaml:"stiffness_edge"`
	Damping         float64 `yaml:"damping"`
	MaxDist         float64 `yaml:"max_dist"`

	// Face tracking.
	MoveScale        float64 `yaml:"move_scale"`
	ParallaxPerDepth float64 `yaml:"parallax_per_depth"`
	RotScale         float64 `yaml:"rot_scale"`
	RollScale        float64 `yaml:"roll_scale"`

	// Idle motion, added to every panel that is not being dragged.
	IdleSpeed        float64 `yaml:"idle_speed"`
	IdlePhaseStep    float64 `yaml:"idle_phase_step"`
	IdleAmpTracked   float64 `yaml:"idle_amp_tracked"`
	IdleAmpUntracked float64 `yaml:"idle_amp_untracked"`
	IdleAmpMindMap   float64 `yaml:"idle_amp_mind_map"`

	// Mind-map floating.
	FloatSpeed float64 `yaml:"float_speed"`
	FloatAmp   float64 `yaml:"float_amp"`
	FloatAmpZ  float64 `yaml:"float_amp_z"`

	// Mind-map layout.
	MindMapRadius   float64 `yaml:"mind_map_radius"`
	ForegroundZ     float64 `yaml:"foreground_z"`
	BackgroundZ     float64 `yaml:"background_z"`
	ForegroundBoost float64 `yaml:"foreground_boost"`
	BackgroundCut   float64 `yaml:"background_cut"`
	RadiusJitter    float64 `yaml:"radius_jitter"`
	DepthScale      float64 `yaml:"depth_scale"`
	ZJitter         float64 `yaml:"z_jitter"`

	// Camera.
	FrustumSize   float64 `yaml:"frustum_size"`
	ZoomMin       float64 `yaml:"zoom_min"`
	ZoomMax       float64 `yaml:"zoom_max"`
	ZoomPerNotch  float64 `yaml:"zoom_per_notch"`
	ZoomFrequency float64 `yaml:"zoom_frequency"`

	// Line overlay.
	OverlayOpacity float64 `yaml:"overlay_opacity"`
	OverlayFade    float64 `yaml:"overlay_fade"`
	LineZOffset    float64 `yaml:"line_z_offset"`
}

// DefaultTuning returns the tuning the mosaic ships with.
func DefaultTuning() Tuning {
	return Tuning{
		StiffnessCenter: 0.04,
		StiffnessEdge:   0.02,
		Damping:         0.92,
		MaxDist:         250,

		MoveScale:        70,
		ParallaxPerDepth: 0.012,
		RotScale:         30,
		RollScale:        10,

		IdleSpeed:        0.35,
		IdlePhaseStep:    0.25,
		IdleAmpTracked:   1.0,
		IdleAmpUntracked: 2.5,
		IdleAmpMindMap:   5,

		FloatSpeed: 0.7,
		FloatAmp:   30,
		FloatAmpZ:  15,

		MindMapRadius:   280,
		ForegroundZ:     30,
		BackgroundZ:     -20,
		ForegroundBoost: 40,
		BackgroundCut:   30,
		RadiusJitter:    80,
		DepthScale:      0.8,
		ZJitter:         60,

		FrustumSize:   600,
		ZoomMin:       0.4,
		ZoomMax:       2.5,
		ZoomPerNotch:  0.1,
		ZoomFrequency: 8,

		OverlayOpacity: 0.85,
		OverlayFade:    0.6,
		LineZOffset:    -50,
	}
}

// Validate checks the ranges the integrator and camera rely on. Spring
// parameters outside (0, 1) make the explicit integrator diverge.
func (t Tuning) Validate() error {
	checkUnit := func(name string, v float64) error {
		if v <= 0 || v >= 1 {
			return fmt.Errorf("%w: %s = %g, want in (0, 1)", ErrInvalidTuning, name, v)
		}
		return nil
	}
	if err := checkUnit("stiffness_center", t.StiffnessCenter); err != nil {
		return err
	}
	if err := checkUnit("stiffness_edge", t.StiffnessEdge); err != nil {
		return err
	}
	if err := checkUnit("damping", t.Damping); err != nil {
		return err
	}
	if t.MaxDist <= 0 {
		return fmt.Errorf("%w: max_dist = %g, want > 0", ErrInvalidTuning, t.MaxDist)
	}
	if t.FrustumSize <= 0 {
		return fmt.Errorf("%w: frustum_size = %g, want > 0", ErrInvalidTuning, t.FrustumSize)
	}
	if t.ZoomMin <= 0 || t.ZoomMin > t.ZoomMax {
		return fmt.Errorf("%w: zoom range [%g, %g]", ErrInvalidTuning, t.ZoomMin, t.ZoomMax)
	}
	if t.OverlayOpacity < 0 || t.OverlayOpacity > 1 {
		return fmt.Errorf("%w: overlay_opacity = %g, want in [0, 1]", ErrInvalidTuning, t.OverlayOpacity)
	}
	return nil
}

// ParseTuning decodes YAML on top of [DefaultTuning], so a file only needs
// the keys it changes, and validates the result.
func ParseTuning(data []byte) (Tuning, error) {
	t := DefaultTuning()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf("parse tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, fmt.Errorf("parse tuning: %w", err)
	}
	return t, nil
}

// LoadTuning reads and parses a YAML tuning file.
func LoadTuning(path string) (Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("load tuning: %w", err)
	}
	return ParseTuning(data)
}
