package water

import (
	"github.com/aquilax/go-perlin"

	"github.com/Faultbox/hydrosim/pkg/math"
)

// Perlin noise parameters; three octaves is enough for a choppy surface.
const (
	noiseAlpha   = 2.0
	noiseBeta    = 2.0
	noiseOctaves = 3
)

// Noise is a Perlin-noise water surface. It only supports the height
// channel; callers fall back to their configured defaults for normals
// and flow.
type Noise struct {
	Level     float64
	Amplitude float64
	Scale     float64
	noise     *perlin.Perlin
}

// NewNoise creates a noise surface around level. Scale is the spatial
// frequency in 1/world-units; the same seed reproduces the same surface.
func NewNoise(level, amplitude, scale float64, seed int64) *Noise {
	return &Noise{
		Level:     level,
		Amplitude: amplitude,
		Scale:     scale,
		noise:     perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed),
	}
}

// SupportsHeight reports height support.
func (n *Noise) SupportsHeight() bool { return true }

// SupportsNormal reports normal support.
func (n *Noise) SupportsNormal() bool { return false }

// SupportsFlow reports flow support.
func (n *Noise) SupportsFlow() bool { return false }

// height samples the surface height at one point.
func (n *Noise) height(p math.Vec3) float64 {
	return n.Level + n.Amplitude*n.noise.Noise2D(p.X*n.Scale, p.Z*n.Scale)
}

// Query fills the height slice in place; normals and flows are left
// untouched regardless of the request.
func (n *Noise) Query(points []math.Vec3, heights []float64, normals, flows []math.Vec3, wantHeights, wantNormals, wantFlows bool) {
	if !wantHeights {
		return
	}
	for i, p := range points {
		heights[i] = n.height(p)
	}
}

// QueryAt is the single-point convenience form. The normal falls back to
// straight up and the flow to zero.
func (n *Noise) QueryAt(p math.Vec3) (float64, math.Vec3, math.Vec3) {
	return n.height(p), upNormal, math.Vec3{}
}
