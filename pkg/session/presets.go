package session

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Presets holds the workshop-tunable defaults for the operators.
type Presets struct {
	Deformation DeformationPresets `yaml:"deformation"`
	Cosmetics   CosmeticsPresets   `yaml:"cosmetics"`
	Splint      SplintPresets      `yaml:"splint"`
}

// DeformationPresets tunes the foot pivot operator. Lengths are in
// meters.
type DeformationPresets struct {
	ZoneHeight       float64 `yaml:"zone_height"`
	LegThickness     float64 `yaml:"leg_thickness"`
	SmoothFactor     float64 `yaml:"smooth_factor"`
	SmoothIterations int     `yaml:"smooth_iterations"`
}

// CosmeticsPresets tunes cosmetics generation. Lengths are in meters.
type CosmeticsPresets struct {
	Circumference float64 `yaml:"circumference"`
	Height        float64 `yaml:"height"`
	ClipStart     float64 `yaml:"clip_start"`
	MeshCells     int     `yaml:"mesh_cells"`
}

// SplintPresets tunes splint outline carving.
type SplintPresets struct {
	// Margin is how far beyond the heel-side mesh bound the outline is
	// closed, in meters.
	Margin float64 `yaml:"margin"`
}

// DefaultPresets returns the workshop defaults.
func DefaultPresets() Presets {
	return Presets{
		Deformation: DeformationPresets{
			ZoneHeight:       0.02,
			LegThickness:     0.08,
			SmoothFactor:     1,
			SmoothIterations: 80,
		},
		Cosmetics: CosmeticsPresets{
			Circumference: 0.35,
			Height:        0.2,
			ClipStart:     0.1,
			MeshCells:     128,
		},
		Splint: SplintPresets{
			Margin: 0.05,
		},
	}
}

// LoadPresets loads presets with priority: defaults < file. An empty
// path returns the defaults unchanged.
func LoadPresets(path string) (Presets, error) {
	p := DefaultPresets()
	if path == "" {
		return p, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Presets{}, fmt.Errorf("loading presets from %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Presets{}, fmt.Errorf("loading presets from %s: %w", path, err)
	}
	return p, nil
}
