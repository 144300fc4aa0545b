package hydro

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/hydrosim/pkg/math"
)

// triObject builds a one-triangle object in still water at level 0 with
// buoyancy only, so geometry effects are easy to isolate.
func triObject(t *testing.T, a, b, c math.Vec3) *Object {
	t.Helper()
	mesh, err := NewMesh([]math.Vec3{a, b, c}, []uint32{0, 1, 2})
	if err != nil {
		t.Fatalf("NewMesh failed: %v", err)
	}

	settings := DefaultSettings()
	settings.HydrodynamicCoefficient = 0
	settings.SkinDragCoefficient = 0
	settings.FluidDensity = 1000

	o, err := NewObject(mesh, newStubBody(), settings)
	if err != nil {
		t.Fatalf("NewObject failed: %v", err)
	}
	o.EnterProvider(&stillWater{})
	return o
}

func TestAllAboveClassifiesAboveWithZeroForce(t *testing.T) {
	o := triObject(t,
		math.Vec3{X: 0, Y: 1, Z: 0},
		math.Vec3{X: 1, Y: 2, Z: 0},
		math.Vec3{X: 0, Y: 1, Z: 1},
	)
	o.Step()

	tri := o.Triangles()[0]
	if tri.State != StateAbove {
		t.Errorf("state = %v, want Above", tri.State)
	}
	if tri.Force != (math.Vec3{}) {
		t.Errorf("force = %v, want zero", tri.Force)
	}
	if o.TotalForce() != (math.Vec3{}) {
		t.Errorf("total force = %v, want zero", o.TotalForce())
	}
}

func TestBoundaryTieBreaksAbove(t *testing.T) {
	// All three distances exactly zero: the >=0 rule wins ties.
	o := triObject(t,
		math.Vec3{X: 0, Y: 0, Z: 0},
		math.Vec3{X: 1, Y: 0, Z: 0},
		math.Vec3{X: 0, Y: 0, Z: 1},
	)
	o.Step()

	if got := o.Triangles()[0].State; got != StateAbove {
		t.Errorf("state = %v, want Above", got)
	}
}

func TestAllBelowClassifiesUnderwaterWithForce(t *testing.T) {
	o := triObject(t,
		math.Vec3{X: 0, Y: -1, Z: 0},
		math.Vec3{X: 1, Y: -1, Z: 0},
		math.Vec3{X: 0, Y: -1, Z: 1},
	)
	o.Step()

	tri := o.Triangles()[0]
	if tri.State != StateUnderwater {
		t.Errorf("state = %v, want Underwater", tri.State)
	}
	if tri.Force == (math.Vec3{}) {
		t.Error("expected non-zero force for submerged triangle with positive buoyancy")
	}
}

func TestPartialAreaConservation(t *testing.T) {
	// Right triangle with A one unit above the surface, B and C one unit
	// below. The surface cuts the A-B and A-C edges at their midpoints,
	// leaving 3/4 of the area submerged.
	o := triObject(t,
		math.Vec3{X: 0, Y: 1, Z: 0},
		math.Vec3{X: 0, Y: -1, Z: 0},
		math.Vec3{X: 1, Y: -1, Z: 0},
	)
	o.Step()

	tri := o.Triangles()[0]
	if tri.State != StatePartial {
		t.Fatalf("state = %v, want Partial", tri.State)
	}
	if tri.CornerCount != 6 {
		t.Errorf("corner count = %d, want 6 (two sub-triangles)", tri.CornerCount)
	}

	// Independent check: full area 1, above part is the triangle
	// (A, (0,0,0), (0.5,0,0)) with area 1/4.
	const wantArea = 0.75
	if gomath.Abs(tri.Area-wantArea) > 1e-12 {
		t.Errorf("submerged area = %v, want %v", tri.Area, wantArea)
	}
}

func TestPartialSingleCornerSubTriangle(t *testing.T) {
	// Only one vertex below: a single small sub-triangle near it.
	o := triObject(t,
		math.Vec3{X: 0, Y: 1, Z: 0},
		math.Vec3{X: 1, Y: 1, Z: 0},
		math.Vec3{X: 0, Y: -1, Z: 0},
	)
	o.Step()

	tri := o.Triangles()[0]
	if tri.State != StatePartial {
		t.Fatalf("state = %v, want Partial", tri.State)
	}
	if tri.CornerCount != 3 {
		t.Errorf("corner count = %d, want 3 (one sub-triangle)", tri.CornerCount)
	}

	// The cut runs through both edge midpoints, leaving a quarter of the
	// area submerged.
	if gomath.Abs(tri.Area-0.25) > 1e-12 {
		t.Errorf("submerged area = %v, want 0.25", tri.Area)
	}
}

func TestClipPreservesWinding(t *testing.T) {
	// The same physical triangle with the above-water vertex in each
	// index slot must keep the plane normal of the original winding.
	verts := []math.Vec3{
		{X: 0, Y: 1, Z: 0},
		{X: 1, Y: -1, Z: 0},
		{X: 0, Y: -1, Z: 1},
	}
	rotations := [][3]int{{0, 1, 2}, {1, 2, 0}, {2, 0, 1}}

	e1 := verts[1].Sub(verts[0])
	e2 := verts[2].Sub(verts[0])
	wantNormal := e1.Cross(e2).Normalize()

	for _, rot := range rotations {
		o := triObject(t, verts[rot[0]], verts[rot[1]], verts[rot[2]])
		o.Step()

		tri := o.Triangles()[0]
		if tri.State != StatePartial {
			t.Fatalf("rotation %v: state = %v, want Partial", rot, tri.State)
		}
		if tri.Normal.Distance(wantNormal) > 1e-9 {
			t.Errorf("rotation %v: normal = %v, want %v", rot, tri.Normal, wantNormal)
		}
	}
}

func TestDegenerateTriangleReclassifiedAbove(t *testing.T) {
	// Collinear vertices straddling the surface produce a zero-area clip
	// result, which must silently reclassify as above.
	o := triObject(t,
		math.Vec3{X: 0, Y: -1, Z: 0},
		math.Vec3{X: 0, Y: 0.5, Z: 0},
		math.Vec3{X: 0, Y: 1, Z: 0},
	)
	o.Step()

	tri := o.Triangles()[0]
	if tri.State != StateAbove {
		t.Errorf("state = %v, want Above for degenerate geometry", tri.State)
	}
	if o.TotalForce() != (math.Vec3{}) {
		t.Errorf("total force = %v, want zero", o.TotalForce())
	}
}

func TestDisabledAndDeletedSkipped(t *testing.T) {
	o := triObject(t,
		math.Vec3{X: 0, Y: -1, Z: 0},
		math.Vec3{X: 1, Y: -1, Z: 0},
		math.Vec3{X: 0, Y: -1, Z: 1},
	)

	o.DisableTriangle(0)
	o.Step()
	if o.TotalForce() != (math.Vec3{}) {
		t.Errorf("disabled triangle contributed force %v", o.TotalForce())
	}
	if got := o.Triangles()[0].State; got != StateDisabled {
		t.Errorf("state = %v, want Disabled", got)
	}

	o.DeleteTriangle(0)
	o.Step()
	if got := o.Triangles()[0].State; got != StateDeleted {
		t.Errorf("state = %v, want Deleted", got)
	}

	o.EnableTriangle(0)
	o.Step()
	if got := o.Triangles()[0].State; got != StateUnderwater {
		t.Errorf("state after re-enable = %v, want Underwater", got)
	}
	if o.TotalForce() == (math.Vec3{}) {
		t.Error("re-enabled triangle contributed no force")
	}
}
