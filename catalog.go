package allofyou

// CenterPanelID is the catalog id of the panel that anchors the mind-map
// layout at the origin and the connector lines of the overlay.
const CenterPanelID = "nose-tip"

// PanelDef is one declarative catalog entry. X, Y, Z is the face-mode
// anchor; W, H the footprint; UV the source-image rectangle (u0, v0, u1, v1)
// with v growing upward.
type PanelDef struct {
	ID   string
	X, Y float64
	Z    float64
	W, H float64
	UV   [4]float64
}

// DefaultCatalog returns the face mosaic. Depth bands: background z -30 to
// -50, mid 0 to 30, foreground 40 to 75.
func DefaultCatalog() []PanelDef {
	return []PanelDef{
		// forehead
		{ID: "forehead-left", X: -55, Y: 190, Z: 5, W: 110, H: 75, UV: [4]float64{0.38, 0.60, 0.52, 0.72}},
		{ID: "forehead-right", X: 65, Y: 195, Z: 8, W: 100, H: 70, UV: [4]float64{0.48, 0.61, 0.62, 0.73}},
		{ID: "forehead-top", X: 5, Y: 230, Z: -35, W: 90, H: 50, UV: [4]float64{0.43, 0.72, 0.57, 0.82}},
		{ID: "forehead-far-left", X: -140, Y: 180, Z: -40, W: 70, H: 60, UV: [4]float64{0.32, 0.62, 0.42, 0.72}},
		{ID: "forehead-far-right", X: 145, Y: 175, Z: -38, W: 65, H: 55, UV: [4]float64{0.58, 0.62, 0.68, 0.72}},

		// eyebrows
		{ID: "eyebrow-left", X: -85, Y: 145, Z: 45, W: 95, H: 35, UV: [4]float64{0.50, 0.56, 0.68, 0.64}},
		{ID: "eyebrow-right", X: 75, Y: 140, Z: 42, W: 90, H: 35, UV: [4]float64{0.32, 0.55, 0.50, 0.63}},

		// eyes
		{ID: "eye-left", X: -110, Y: 90, Z: 55, W: 130, H: 95, UV: [4]float64{0.52, 0.44, 0.72, 0.58}},
		{ID: "eye-right", X: 100, Y: 85, Z: 50, W: 125, H: 90, UV: [4]float64{0.28, 0.43, 0.48, 0.57}},
		{ID: "nose-bridge", X: -5, Y: 100, Z: 60, W: 65, H: 75, UV: [4]float64{0.45, 0.46, 0.55, 0.58}},

		// temples
		{ID: "temple-left", X: -215, Y: 110, Z: -45, W: 70, H: 95, UV: [4]float64{0.75, 0.48, 0.88, 0.62}},
		{ID: "temple-right", X: 210, Y: 105, Z: -42, W: 65, H: 90, UV: [4]float64{0.12, 0.47, 0.25, 0.61}},
		{ID: "temple-upper-left", X: -195, Y: 170, Z: -50, W: 60, H: 70, UV: [4]float64{0.72, 0.58, 0.84, 0.70}},

		// nose
		{ID: "nose-tip", X: -5, Y: 10, Z: 75, W: 110, H: 120, UV: [4]float64{0.42, 0.25, 0.58, 0.45}},
		{ID: "nose-side", X: -50, Y: 40, Z: 40, W: 50, H: 70, UV: [4]float64{0.52, 0.32, 0.62, 0.46}},

		// cheeks
		{ID: "cheek-upper-left", X: -180, Y: 60, Z: -30, W: 100, H: 105, UV: [4]float64{0.65, 0.40, 0.82, 0.55}},
		{ID: "cheek-lower-left", X: -175, Y: -50, Z: -35, W: 95, H: 100, UV: [4]float64{0.68, 0.22, 0.85, 0.40}},
		{ID: "cheek-upper-right", X: 170, Y: 55, Z: -32, W: 95, H: 100, UV: [4]float64{0.18, 0.38, 0.35, 0.53}},
		{ID: "cheek-lower-right", X: 180, Y: -60, Z: -38, W: 90, H: 95, UV: [4]float64{0.15, 0.20, 0.32, 0.38}},
		{ID: "cheek-mid-left", X: -155, Y: 5, Z: 10, W: 80, H: 85, UV: [4]float64{0.66, 0.30, 0.80, 0.44}},
		{ID: "cheek-mid-right", X: 150, Y: 0, Z: 8, W: 75, H: 80, UV: [4]float64{0.20, 0.29, 0.34, 0.43}},

		// mouth
		{ID: "mouth-left", X: -60, Y: -90, Z: 48, W: 105, H: 80, UV: [4]float64{0.48, 0.14, 0.65, 0.28}},
		{ID: "mouth-right", X: 55, Y: -95, Z: 45, W: 100, H: 75, UV: [4]float64{0.35, 0.13, 0.52, 0.27}},
		{ID: "upper-lip", X: 0, Y: -65, Z: 65, W: 80, H: 40, UV: [4]float64{0.42, 0.22, 0.58, 0.30}},
		{ID: "lower-lip", X: 5, Y: -115, Z: 58, W: 75, H: 35, UV: [4]float64{0.43, 0.10, 0.57, 0.18}},

		// chin and jaw
		{ID: "chin-center", X: -15, Y: -175, Z: 30, W: 120, H: 80, UV: [4]float64{0.40, 0.02, 0.60, 0.15}},
		{ID: "chin-left", X: -110, Y: -165, Z: 15, W: 80, H: 70, UV: [4]float64{0.58, 0.05, 0.72, 0.18}},
		{ID: "chin-right", X: 95, Y: -170, Z: 18, W: 85, H: 75, UV: [4]float64{0.28, 0.04, 0.42, 0.17}},
		{ID: "jaw-left", X: -165, Y: -120, Z: -25, W: 70, H: 80, UV: [4]float64{0.65, 0.12, 0.78, 0.26}},
		{ID: "jaw-right", X: 160, Y: -125, Z: -28, W: 65, H: 75, UV: [4]float64{0.22, 0.11, 0.35, 0.25}},

		// neck
		{ID: "neck-center", X: 0, Y: -240, Z: -40, W: 100, H: 60, UV: [4]float64{0.42, -0.05, 0.58, 0.05}},
		{ID: "neck-left", X: -80, Y: -230, Z: -45, W: 70, H: 55, UV: [4]float64{0.55, -0.03, 0.68, 0.07}},
		{ID: "neck-right", X: 75, Y: -235, Z: -48, W: 65, H: 50, UV: [4]float64{0.32, -0.04, 0.45, 0.06}},
	}
}
