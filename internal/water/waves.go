package water

import (
	gomath "math"

	"github.com/Faultbox/hydrosim/pkg/math"
)

// WaveComponent is one directional sine wave of the field.
type WaveComponent struct {
	Amplitude  float64 `yaml:"amplitude"`
	Wavelength float64 `yaml:"wavelength"`
	Speed      float64 `yaml:"speed"`
	DirX       float64 `yaml:"dir_x"`
	DirZ       float64 `yaml:"dir_z"`
}

// Waves is a sum-of-sines wave field with analytic normals and orbital
// surface flow. Advance the field's time with Advance between ticks.
type Waves struct {
	Level      float64
	Components []WaveComponent
	time       float64
}

// NewWaves creates a wave field at the given base level.
func NewWaves(level float64, components ...WaveComponent) *Waves {
	return &Waves{Level: level, Components: components}
}

// Advance moves the wave field forward by dt seconds.
func (w *Waves) Advance(dt float64) {
	w.time += dt
}

// SupportsHeight reports height support.
func (w *Waves) SupportsHeight() bool { return true }

// SupportsNormal reports normal support.
func (w *Waves) SupportsNormal() bool { return true }

// SupportsFlow reports flow support.
func (w *Waves) SupportsFlow() bool { return true }

// sample evaluates height, gradient, and flow at one point.
func (w *Waves) sample(p math.Vec3) (height float64, normal, flow math.Vec3) {
	height = w.Level
	var gradX, gradZ float64
	for _, c := range w.Components {
		if c.Wavelength <= 0 {
			continue
		}
		dirLen := gomath.Hypot(c.DirX, c.DirZ)
		if dirLen == 0 {
			continue
		}
		dx := c.DirX / dirLen
		dz := c.DirZ / dirLen

		k := 2 * gomath.Pi / c.Wavelength
		omega := k * c.Speed
		phase := k*(dx*p.X+dz*p.Z) - omega*w.time

		s, cs := gomath.Sincos(phase)
		height += c.Amplitude * s
		gradX += c.Amplitude * k * dx * cs
		gradZ += c.Amplitude * k * dz * cs

		// Horizontal orbital velocity at the surface.
		orbital := c.Amplitude * omega * cs
		flow.X += dx * orbital
		flow.Z += dz * orbital
	}
	normal = math.Vec3{X: -gradX, Y: 1, Z: -gradZ}.Normalize()
	return height, normal, flow
}

// Query fills the requested output slices in place.
func (w *Waves) Query(points []math.Vec3, heights []float64, normals, flows []math.Vec3, wantHeights, wantNormals, wantFlows bool) {
	for i, p := range points {
		h, n, f := w.sample(p)
		if wantHeights {
			heights[i] = h
		}
		if wantNormals {
			normals[i] = n
		}
		if wantFlows {
			flows[i] = f
		}
	}
}

// QueryAt is the single-point convenience form.
func (w *Waves) QueryAt(p math.Vec3) (float64, math.Vec3, math.Vec3) {
	return w.sample(p)
}
