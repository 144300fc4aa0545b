// Package water provides water surface query providers: still water, a
// directional wave field, and a noise-based surface. Providers answer
// batch height/normal/flow queries at world-space points and advertise
// which channels they support.
package water

import "github.com/Faultbox/hydrosim/pkg/math"

// upNormal is the surface normal of undisturbed water.
var upNormal = math.Vec3{X: 0, Y: 1, Z: 0}

// Flat is still water at a constant level with an optional uniform
// current. Supports all three channels.
type Flat struct {
	Level float64
	Flow  math.Vec3
}

// NewFlat creates a still-water provider at the given level.
func NewFlat(level float64) *Flat {
	return &Flat{Level: level}
}

// SupportsHeight reports height support.
func (f *Flat) SupportsHeight() bool { return true }

// SupportsNormal reports normal support.
func (f *Flat) SupportsNormal() bool { return true }

// SupportsFlow reports flow support.
func (f *Flat) SupportsFlow() bool { return true }

// Query fills the requested output slices in place.
func (f *Flat) Query(points []math.Vec3, heights []float64, normals, flows []math.Vec3, wantHeights, wantNormals, wantFlows bool) {
	for i := range points {
		if wantHeights {
			heights[i] = f.Level
		}
		if wantNormals {
			normals[i] = upNormal
		}
		if wantFlows {
			flows[i] = f.Flow
		}
	}
}

// QueryAt is the single-point convenience form.
func (f *Flat) QueryAt(p math.Vec3) (float64, math.Vec3, math.Vec3) {
	return f.Level, upNormal, f.Flow
}
