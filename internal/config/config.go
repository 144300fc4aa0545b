// Package config handles simulator configuration loading and management.
package config

import (
	"github.com/Faultbox/hydrosim/internal/hydro"
	"github.com/Faultbox/hydrosim/internal/water"
	"github.com/Faultbox/hydrosim/pkg/math"
)

// Config holds all simulator settings.
type Config struct {
	Simulation hydro.Settings `yaml:"simulation"`
	MeshPrep   MeshPrepConfig `yaml:"mesh_prep"`
	World      WorldConfig    `yaml:"world"`
	Water      WaterConfig    `yaml:"water"`
	Demo       DemoConfig     `yaml:"demo"`
	Logging    LoggingConfig  `yaml:"logging"`
}

// MeshPrepConfig holds proxy-mesh preparation flags. These are consumed
// by the external mesh-prep tooling, not by the force core.
type MeshPrepConfig struct {
	TargetTriangleCount int  `yaml:"target_triangle_count"`
	Simplify            bool `yaml:"simplify"`
	Convexify           bool `yaml:"convexify"`
	WeldVertices        bool `yaml:"weld_vertices"`
}

// WorldConfig holds environment settings.
type WorldConfig struct {
	Gravity  math.Vec3 `yaml:"gravity"`
	TimeStep float64   `yaml:"time_step"`
}

// WaterConfig selects and parameterizes the water provider.
type WaterConfig struct {
	// Provider is one of "flat", "waves", "noise".
	Provider string    `yaml:"provider"`
	Level    float64   `yaml:"level"`
	Flow     math.Vec3 `yaml:"flow"`

	// Wave components for the "waves" provider.
	Waves []water.WaveComponent `yaml:"waves"`

	// Noise parameters for the "noise" provider.
	NoiseAmplitude float64 `yaml:"noise_amplitude"`
	NoiseScale     float64 `yaml:"noise_scale"`
	NoiseSeed      int64   `yaml:"noise_seed"`
}

// DemoConfig holds settings for the demo scenario binary.
type DemoConfig struct {
	// MeshPath loads a cached proxy mesh; empty builds a box.
	MeshPath   string    `yaml:"mesh_path"`
	BoxSize    math.Vec3 `yaml:"box_size"`
	BodyMass   float64   `yaml:"body_mass"`
	DropHeight float64   `yaml:"drop_height"`
	Duration   float64   `yaml:"duration"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values: a one-meter
// box dropped into calm water.
func Default() *Config {
	return &Config{
		Simulation: hydro.DefaultSettings(),
		MeshPrep: MeshPrepConfig{
			TargetTriangleCount: 64,
			Simplify:            true,
			Convexify:           false,
			WeldVertices:        true,
		},
		World: WorldConfig{
			Gravity:  math.Vec3{X: 0, Y: -9.81, Z: 0},
			TimeStep: 0.02,
		},
		Water: WaterConfig{
			Provider:       "flat",
			Level:          0,
			NoiseAmplitude: 0.5,
			NoiseScale:     0.05,
			NoiseSeed:      1,
		},
		Demo: DemoConfig{
			BoxSize:    math.Vec3{X: 1, Y: 1, Z: 1},
			BodyMass:   500,
			DropHeight: 2,
			Duration:   20,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
