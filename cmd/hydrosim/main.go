// Package main is the entry point for the hydrosim demo: it drops a
// rigid body into a configurable water field and logs how it settles.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/hydrosim/internal/body"
	"github.com/Faultbox/hydrosim/internal/config"
	"github.com/Faultbox/hydrosim/internal/hydro"
	"github.com/Faultbox/hydrosim/internal/logger"
	"github.com/Faultbox/hydrosim/internal/water"
	"github.com/Faultbox/hydrosim/pkg/formats"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Log.Info("=== hydrosim demo ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := run(cfg); err != nil {
		logger.Log.Error("simulation error", zap.Error(err))
		os.Exit(1)
	}

	logger.Log.Info("simulation finished")
}

func run(cfg *config.Config) error {
	mesh, err := loadMesh(cfg)
	if err != nil {
		return err
	}

	size := cfg.Demo.BoxSize
	b := body.New(cfg.Demo.BodyMass, boxInertia(cfg.Demo.BodyMass, size.X, size.Y, size.Z))
	b.Position.Y = cfg.Water.Level + cfg.Demo.DropHeight
	b.Gravity = cfg.World.Gravity
	b.LinearDamping = 0.2
	b.AngularDamping = 0.4

	obj, err := hydro.NewObject(mesh, b, cfg.Simulation)
	if err != nil {
		return err
	}
	obj.SetGravity(cfg.World.Gravity)

	provider, waves, err := buildProvider(cfg)
	if err != nil {
		return err
	}
	obj.EnterProvider(provider)

	logger.Log.Info("dropping body",
		zap.String("id", obj.ID().String()),
		zap.String("water", cfg.Water.Provider),
		zap.Int("triangles", mesh.TriangleCount()),
		zap.Float64("mass", cfg.Demo.BodyMass),
		zap.Float64("drop_height", cfg.Demo.DropHeight))

	dt := cfg.World.TimeStep
	steps := int(cfg.Demo.Duration / dt)
	logEvery := int(1.0 / dt)
	if logEvery < 1 {
		logEvery = 1
	}

	for i := 0; i < steps; i++ {
		obj.Step()
		b.Integrate(dt)
		if waves != nil {
			waves.Advance(dt)
		}

		if i%logEvery == 0 {
			logger.Log.Info("tick",
				zap.Float64("t", float64(i)*dt),
				zap.Float64("y", b.Position.Y),
				zap.Float64("vy", b.LinVel.Y),
				zap.Float64("submerged", obj.SubmergedVolume()),
				zap.Float64("force_y", obj.TotalForce().Y))
		}
	}

	logger.Log.Info("body settled",
		zap.Float64("y", b.Position.Y),
		zap.Float64("submerged", obj.SubmergedVolume()))
	return nil
}

// loadMesh loads the cached proxy mesh from disk, or builds an
// axis-aligned box when no path is configured.
func loadMesh(cfg *config.Config) (*hydro.Mesh, error) {
	if cfg.Demo.MeshPath == "" {
		size := cfg.Demo.BoxSize
		return hydro.BoxMesh(size.X, size.Y, size.Z), nil
	}

	sm, err := formats.LoadSimMesh(cfg.Demo.MeshPath)
	if err != nil {
		return nil, fmt.Errorf("loading proxy mesh %s: %w", cfg.Demo.MeshPath, err)
	}
	logger.Log.Info("loaded proxy mesh",
		zap.String("path", cfg.Demo.MeshPath),
		zap.String("version", sm.Version.String()),
		zap.Int("vertices", len(sm.Vertices)))
	return hydro.NewMesh(sm.Vertices, sm.Indices)
}

// buildProvider constructs the configured water provider. The second
// return is non-nil for time-dependent fields that need advancing.
func buildProvider(cfg *config.Config) (hydro.SurfaceProvider, *water.Waves, error) {
	switch cfg.Water.Provider {
	case "flat", "":
		f := water.NewFlat(cfg.Water.Level)
		f.Flow = cfg.Water.Flow
		return f, nil, nil
	case "waves":
		components := cfg.Water.Waves
		if len(components) == 0 {
			components = []water.WaveComponent{
				{Amplitude: 0.25, Wavelength: 8, Speed: 1.5, DirX: 1},
				{Amplitude: 0.1, Wavelength: 3, Speed: 2.2, DirX: 0.4, DirZ: 0.9},
			}
		}
		w := water.NewWaves(cfg.Water.Level, components...)
		return w, w, nil
	case "noise":
		n := water.NewNoise(cfg.Water.Level, cfg.Water.NoiseAmplitude, cfg.Water.NoiseScale, cfg.Water.NoiseSeed)
		return n, nil, nil
	default:
		return nil, nil, fmt.Errorf("unknown water provider %q", cfg.Water.Provider)
	}
}

// boxInertia is the scalar moment of a solid box, averaged over the
// three principal axes.
func boxInertia(mass, w, h, d float64) float64 {
	return mass / 12.0 * (w*w + h*h + d*d) * 2.0 / 3.0
}
