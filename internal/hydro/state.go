package hydro

import (
	"fmt"

	"github.com/Faultbox/hydrosim/pkg/math"
)

// TriangleState classifies a triangle against the water surface for one
// tick. Force aggregation sums triangles with state below StateAbove;
// StateDisabled and StateDeleted triangles are skipped unconditionally
// until explicitly re-enabled.
type TriangleState uint8

// Triangle states, ordered so that submerged states compare below
// StateAbove.
const (
	StateUnderwater TriangleState = iota
	StatePartial
	StateAbove
	StateDisabled
	StateDeleted
)

// String returns a human-readable state name.
func (s TriangleState) String() string {
	switch s {
	case StateUnderwater:
		return "Underwater"
	case StatePartial:
		return "Partial"
	case StateAbove:
		return "Above"
	case StateDisabled:
		return "Disabled"
	case StateDeleted:
		return "Deleted"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(s))
	}
}

// TriangleData holds the per-tick diagnostic result for one triangle of
// the proxy mesh. Recomputed every tick; downstream code always sees
// exactly one entry per triangle index regardless of how many clipped
// sub-triangles contributed.
type TriangleData struct {
	State TriangleState

	// Corners holds the clipped sub-triangle corners below the surface:
	// 3 per sub-triangle, up to 2 sub-triangles. CornerCount is 0, 3, or 6.
	Corners     [6]math.Vec3
	CornerCount int

	Area     float64
	Center   math.Vec3
	Normal   math.Vec3
	Distance float64 // depth of the center below the surface
	Velocity math.Vec3
	Force    math.Vec3
}
