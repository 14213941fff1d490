package allofyou

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultTuningValid(t *testing.T) {
	if err := DefaultTuning().Validate(); err != nil {
		t.Fatalf("DefaultTuning invalid: %v", err)
	}
}

func TestTuningValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Tuning)
		field  string
	}{
		{"stiffness zero", func(tu *Tuning) { tu.StiffnessCenter = 0 }, "stiffness_center"},
		{"edge stiffness one", func(tu *Tuning) { tu.StiffnessEdge = 1 }, "stiffness_edge"},
		{"damping above one", func(tu *Tuning) { tu.Damping = 1.1 }, "damping"},
		{"max dist", func(tu *Tuning) { tu.MaxDist = 0 }, "max_dist"},
		{"frustum", func(tu *Tuning) { tu.FrustumSize = -1 }, "frustum_size"},
		{"zoom inverted", func(tu *Tuning) { tu.ZoomMin, tu.ZoomMax = 3, 2 }, "zoom range"},
		{"opacity", func(tu *Tuning) { tu.OverlayOpacity = 1.5 }, "overlay_opacity"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tun := DefaultTuning()
			tt.mutate(&tun)
			err := tun.Validate()
			if !errors.Is(err, ErrInvalidTuning) {
				t.Fatalf("err = %v, want ErrInvalidTuning", err)
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("err = %v, want it to name %q", err, tt.field)
			}
		})
	}
}

func TestParseTuningOverlaysDefaults(t *testing.T) {
	data := []byte(`
damping: 0.8
zoom_max: 3
mind_map_radius: 300
`)
	tun, err := ParseTuning(data)
	if err != nil {
		t.Fatalf("ParseTuning: %v", err)
	}
	if tun.Damping != 0.8 || tun.ZoomMax != 3 || tun.MindMapRadius != 300 {
		t.Errorf("overrides not applied: %+v", tun)
	}
	def := DefaultTuning()
	if tun.StiffnessCenter != def.StiffnessCenter || tun.FloatAmp != def.FloatAmp {
		t.Error("unset keys should keep their defaults")
	}
}

func TestParseTuningEmpty(t *testing.T) {
	tun, err := ParseTuning(nil)
	if err != nil {
		t.Fatalf("ParseTuning(nil): %v", err)
	}
	if tun != DefaultTuning() {
		t.Error("empty document should yield the defaults")
	}
}

func TestParseTuningErrors(t *testing.T) {
	if _, err := ParseTuning([]byte("damping: [1, 2")); err == nil {
		t.Error("expected YAML syntax error")
	}
	_, err := ParseTuning([]byte("damping: 1.5\n"))
	if !errors.Is(err, ErrInvalidTuning) {
		t.Errorf("err = %v, want ErrInvalidTuning", err)
	}
}

func TestLoadTuning(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte("float_amp: 12\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	tun, err := LoadTuning(path)
	if err != nil {
		t.Fatalf("LoadTuning: %v", err)
	}
	if tun.FloatAmp != 12 {
		t.Errorf("FloatAmp = %f, want 12", tun.FloatAmp)
	}

	_, err = LoadTuning(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want ErrNotExist", err)
	}
}
