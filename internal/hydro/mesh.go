// Package hydro implements per-object mesh-based buoyancy and hydrodynamics.
// Each physics step the proxy mesh of a rigid body is sliced at the local
// water surface and buoyant, pressure-drag, and skin-drag forces are computed
// per submerged (sub)triangle and aggregated into one force and torque.
package hydro

import (
	"errors"
	"fmt"

	"github.com/Faultbox/hydrosim/pkg/math"
)

// Mesh format errors.
var (
	ErrNoVertices      = errors.New("mesh has no vertices")
	ErrBadIndexCount   = errors.New("mesh index count is not a multiple of 3")
	ErrIndexOutOfRange = errors.New("mesh index out of range")
)

// Mesh is the proxy geometry used for force computation. Vertices are in
// object-local space; Indices holds triangle index triples.
// A Mesh is immutable after construction as far as the simulator is
// concerned; regenerate and swap instead of mutating in place.
type Mesh struct {
	Vertices []math.Vec3
	Indices  []uint32
}

// NewMesh validates and wraps vertex and index data.
func NewMesh(vertices []math.Vec3, indices []uint32) (*Mesh, error) {
	if len(vertices) == 0 {
		return nil, ErrNoVertices
	}
	if len(indices)%3 != 0 {
		return nil, fmt.Errorf("%w: %d indices", ErrBadIndexCount, len(indices))
	}
	for _, idx := range indices {
		if int(idx) >= len(vertices) {
			return nil, fmt.Errorf("%w: index %d, %d vertices", ErrIndexOutOfRange, idx, len(vertices))
		}
	}
	return &Mesh{Vertices: vertices, Indices: indices}, nil
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Clone returns a deep copy. Loaded meshes are cloned before simulation so
// that later mutation of the source never affects the proxy.
func (m *Mesh) Clone() *Mesh {
	verts := make([]math.Vec3, len(m.Vertices))
	copy(verts, m.Vertices)
	indices := make([]uint32, len(m.Indices))
	copy(indices, m.Indices)
	return &Mesh{Vertices: verts, Indices: indices}
}

// BoxMesh builds an axis-aligned box proxy centered at the origin with
// outward-facing triangles (8 vertices, 12 triangles).
func BoxMesh(width, height, depth float64) *Mesh {
	x := width / 2
	y := height / 2
	z := depth / 2

	vertices := []math.Vec3{
		{X: -x, Y: -y, Z: -z}, // 0
		{X: x, Y: -y, Z: -z},  // 1
		{X: x, Y: y, Z: -z},   // 2
		{X: -x, Y: y, Z: -z},  // 3
		{X: -x, Y: -y, Z: z},  // 4
		{X: x, Y: -y, Z: z},   // 5
		{X: x, Y: y, Z: z},    // 6
		{X: -x, Y: y, Z: z},   // 7
	}

	indices := []uint32{
		4, 5, 6, 4, 6, 7, // front (+Z)
		1, 0, 3, 1, 3, 2, // back (-Z)
		0, 4, 7, 0, 7, 3, // left (-X)
		5, 1, 2, 5, 2, 6, // right (+X)
		0, 1, 5, 0, 5, 4, // bottom (-Y)
		3, 7, 6, 3, 6, 2, // top (+Y)
	}

	return &Mesh{Vertices: vertices, Indices: indices}
}
