package water

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/hydrosim/internal/hydro"
	"github.com/Faultbox/hydrosim/pkg/math"
)

// All providers must satisfy the simulator's query contract.
var (
	_ hydro.SurfaceProvider = (*Flat)(nil)
	_ hydro.SurfaceProvider = (*Waves)(nil)
	_ hydro.SurfaceProvider = (*Noise)(nil)
)

func TestFlatQuery(t *testing.T) {
	f := NewFlat(2.5)
	f.Flow = math.Vec3{X: 1, Y: 0, Z: 0}

	points := []math.Vec3{{X: 0, Y: 0, Z: 0}, {X: 100, Y: -5, Z: 30}}
	heights := make([]float64, 2)
	normals := make([]math.Vec3, 2)
	flows := make([]math.Vec3, 2)

	f.Query(points, heights, normals, flows, true, true, true)

	for i := range points {
		if heights[i] != 2.5 {
			t.Errorf("height[%d] = %v, want 2.5", i, heights[i])
		}
		if normals[i] != (math.Vec3{X: 0, Y: 1, Z: 0}) {
			t.Errorf("normal[%d] = %v, want up", i, normals[i])
		}
		if flows[i] != f.Flow {
			t.Errorf("flow[%d] = %v, want %v", i, flows[i], f.Flow)
		}
	}
}

func TestFlatQueryRespectsWantFlags(t *testing.T) {
	f := NewFlat(3)
	points := []math.Vec3{{}}
	heights := []float64{-99}
	normals := []math.Vec3{{X: 9, Y: 9, Z: 9}}
	flows := []math.Vec3{{X: 9, Y: 9, Z: 9}}

	f.Query(points, heights, normals, flows, true, false, false)

	if heights[0] != 3 {
		t.Errorf("height = %v, want 3", heights[0])
	}
	if normals[0] != (math.Vec3{X: 9, Y: 9, Z: 9}) {
		t.Error("normals were written despite wantNormals=false")
	}
	if flows[0] != (math.Vec3{X: 9, Y: 9, Z: 9}) {
		t.Error("flows were written despite wantFlows=false")
	}
}

func TestWavesHeightOscillates(t *testing.T) {
	w := NewWaves(0, WaveComponent{
		Amplitude:  1,
		Wavelength: 10,
		Speed:      2,
		DirX:       1,
	})

	h0, _, _ := w.QueryAt(math.Vec3{X: 0})
	h1, _, _ := w.QueryAt(math.Vec3{X: 2.5}) // quarter wavelength: sine peak

	if gomath.Abs(h0) > 1e-12 {
		t.Errorf("height at phase 0 = %v, want 0", h0)
	}
	if gomath.Abs(h1-1) > 1e-12 {
		t.Errorf("height at quarter wavelength = %v, want 1", h1)
	}
}

func TestWavesNormalMatchesNumericGradient(t *testing.T) {
	w := NewWaves(0, WaveComponent{
		Amplitude:  0.5,
		Wavelength: 7,
		Speed:      1.3,
		DirX:       1,
		DirZ:       0.4,
	})
	w.Advance(0.7)

	p := math.Vec3{X: 3.1, Z: -2.2}
	_, normal, _ := w.QueryAt(p)

	const eps = 1e-6
	hx1, _, _ := w.QueryAt(math.Vec3{X: p.X + eps, Z: p.Z})
	hx0, _, _ := w.QueryAt(math.Vec3{X: p.X - eps, Z: p.Z})
	hz1, _, _ := w.QueryAt(math.Vec3{X: p.X, Z: p.Z + eps})
	hz0, _, _ := w.QueryAt(math.Vec3{X: p.X, Z: p.Z - eps})

	want := math.Vec3{
		X: -(hx1 - hx0) / (2 * eps),
		Y: 1,
		Z: -(hz1 - hz0) / (2 * eps),
	}.Normalize()

	if normal.Distance(want) > 1e-4 {
		t.Errorf("analytic normal %v differs from numeric %v", normal, want)
	}
}

func TestWavesAdvanceMovesSurface(t *testing.T) {
	w := NewWaves(0, WaveComponent{Amplitude: 1, Wavelength: 4, Speed: 1, DirX: 1})
	p := math.Vec3{X: 1}
	before, _, _ := w.QueryAt(p)
	w.Advance(0.5)
	after, _, _ := w.QueryAt(p)
	if before == after {
		t.Error("wave height did not change after Advance")
	}
}

func TestNoiseDeterministicPerSeed(t *testing.T) {
	a := NewNoise(0, 1, 0.1, 42)
	b := NewNoise(0, 1, 0.1, 42)
	c := NewNoise(0, 1, 0.1, 43)

	p := math.Vec3{X: 12.3, Z: -4.5}
	ha, _, _ := a.QueryAt(p)
	hb, _, _ := b.QueryAt(p)
	hc, _, _ := c.QueryAt(p)

	if ha != hb {
		t.Errorf("same seed produced different heights: %v vs %v", ha, hb)
	}
	if ha == hc {
		t.Error("different seeds produced identical heights")
	}
}

func TestNoiseCapabilities(t *testing.T) {
	n := NewNoise(0, 1, 0.1, 1)
	if !n.SupportsHeight() {
		t.Error("noise provider must support heights")
	}
	if n.SupportsNormal() {
		t.Error("noise provider must not claim normal support")
	}
	if n.SupportsFlow() {
		t.Error("noise provider must not claim flow support")
	}

	// Unsupported channels stay untouched even when requested.
	points := []math.Vec3{{}}
	heights := []float64{0}
	normals := []math.Vec3{{X: 9}}
	flows := []math.Vec3{{X: 9}}
	n.Query(points, heights, normals, flows, true, true, true)
	if normals[0] != (math.Vec3{X: 9}) || flows[0] != (math.Vec3{X: 9}) {
		t.Error("unsupported channels were written")
	}
}
