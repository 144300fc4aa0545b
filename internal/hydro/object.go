package hydro

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Faultbox/hydrosim/internal/logger"
	"github.com/Faultbox/hydrosim/pkg/math"
)

// Setup errors. Any of these permanently disables simulation for the
// object; the condition is logged once and costs nothing per tick.
var (
	ErrMissingMesh = errors.New("simulation mesh is missing or empty")
	ErrMissingBody = errors.New("rigid body is missing")
)

// RigidBody is the external force-application interface. The simulator
// reads the body's transform and kinematics each tick and hands back one
// total force and one total torque.
type RigidBody interface {
	Transform() math.Mat4
	LinearVelocity() math.Vec3
	AngularVelocity() math.Vec3
	WorldCenterOfMass() math.Vec3
	ApplyForce(force math.Vec3)
	ApplyTorque(torque math.Vec3)
}

// defaultGravity is used until SetGravity is called.
var defaultGravity = math.Vec3{X: 0, Y: -9.81, Z: 0}

// Object simulates buoyancy and hydrodynamics for one rigid body. All
// per-tick buffers are sized once at construction and reused by index;
// nothing is allocated in the step path.
type Object struct {
	id       uuid.UUID
	mesh     *Mesh
	body     RigidBody
	settings Settings
	gravity  math.Vec3
	up       math.Vec3

	// Provider stack; enter/exit events may come from a different
	// goroutine than the tick. The per-vertex buffers below belong to
	// the tick goroutine, so exiting the last provider only flags the
	// reset and Step applies it at the start of the next tick.
	mu           sync.Mutex
	providers    []SurfaceProvider
	resetPending bool

	// Per-vertex buffers.
	worldVerts   []math.Vec3
	waterHeights []float64
	waterNormals []math.Vec3
	waterFlows   []math.Vec3

	// Per-triangle diagnostics.
	tris []TriangleData

	// Per-tick state.
	submergedVolume float64
	totalForce      math.Vec3
	totalTorque     math.Vec3
	tickLinVel      math.Vec3
	tickAngVel      math.Vec3
	tickCOM         math.Vec3
}

// NewObject creates a simulation object for the given proxy mesh and body.
// The mesh is cloned so later mutation of the source never affects the
// simulation. Setup failures are logged once and returned.
func NewObject(mesh *Mesh, body RigidBody, settings Settings) (*Object, error) {
	if mesh == nil || len(mesh.Vertices) == 0 || mesh.TriangleCount() == 0 {
		logger.Log.Error("buoyancy disabled: missing or empty simulation mesh")
		return nil, ErrMissingMesh
	}
	if body == nil {
		logger.Log.Error("buoyancy disabled: missing rigid body")
		return nil, ErrMissingBody
	}

	o := &Object{
		id:       uuid.New(),
		mesh:     mesh.Clone(),
		body:     body,
		settings: settings,
	}
	o.SetGravity(defaultGravity)

	vertCount := len(o.mesh.Vertices)
	o.worldVerts = make([]math.Vec3, vertCount)
	o.waterHeights = make([]float64, vertCount)
	o.waterNormals = make([]math.Vec3, vertCount)
	o.waterFlows = make([]math.Vec3, vertCount)
	o.resetWaterDefaults()

	o.tris = make([]TriangleData, o.mesh.TriangleCount())
	for i := range o.tris {
		o.tris[i].State = StateAbove
	}

	logger.Log.Debug("buoyancy object created",
		zap.String("id", o.id.String()),
		zap.Int("vertices", vertCount),
		zap.Int("triangles", len(o.tris)))

	return o, nil
}

// ID returns the object's unique identifier.
func (o *Object) ID() uuid.UUID {
	return o.id
}

// Settings returns the object's configuration.
func (o *Object) Settings() Settings {
	return o.settings
}

// SetGravity refreshes the cached gravity and up vectors. Gravity is
// sampled once at creation; call this if the environment's gravity
// changes at runtime.
func (o *Object) SetGravity(g math.Vec3) {
	o.gravity = g
	o.up = g.Neg().Normalize()
	if o.up == (math.Vec3{}) {
		o.up = math.Vec3{X: 0, Y: 1, Z: 0}
	}
}

// Step runs one fixed physics tick: transforms the mesh into world space,
// queries the active water provider, slices every triangle at the
// surface, and applies the aggregated force and torque to the body.
func (o *Object) Step() {
	o.submergedVolume = 0
	o.totalForce = math.Vec3{}
	o.totalTorque = math.Vec3{}

	o.tickLinVel = o.body.LinearVelocity()
	o.tickAngVel = o.body.AngularVelocity()
	o.tickCOM = o.body.WorldCenterOfMass()

	transform := o.body.Transform()
	for i, local := range o.mesh.Vertices {
		o.worldVerts[i] = transform.TransformPoint(local)
	}

	o.mu.Lock()
	var p SurfaceProvider
	if len(o.providers) > 0 {
		p = o.providers[len(o.providers)-1]
	}
	pending := o.resetPending
	o.resetPending = false
	o.mu.Unlock()

	if pending {
		o.resetWaterDefaults()
	}
	if p != nil {
		wantHeights := o.settings.CalculateWaterHeights
		wantNormals := o.settings.CalculateWaterNormals && p.SupportsNormal()
		wantFlows := o.settings.CalculateWaterFlows && p.SupportsFlow()
		p.Query(o.worldVerts, o.waterHeights, o.waterNormals, o.waterFlows,
			wantHeights, wantNormals, wantFlows)
	}

	for ti := range o.tris {
		o.processTriangle(ti)
	}

	var force, torque math.Vec3
	for i := range o.tris {
		tri := &o.tris[i]
		if tri.State >= StateAbove {
			continue
		}
		force = force.Add(tri.Force)
		torque = torque.Add(tri.Center.Sub(o.tickCOM).Cross(tri.Force))
	}
	o.totalForce = force.Scale(o.settings.FinalForceCoefficient)
	o.totalTorque = torque.Scale(o.settings.FinalTorqueCoefficient)

	o.body.ApplyForce(o.totalForce)
	o.body.ApplyTorque(o.totalTorque)
}

// TotalForce returns the aggregated force of the last tick.
func (o *Object) TotalForce() math.Vec3 {
	return o.totalForce
}

// TotalTorque returns the aggregated torque of the last tick.
func (o *Object) TotalTorque() math.Vec3 {
	return o.totalTorque
}

// SubmergedVolume returns the net displaced volume of the last tick.
// Positive for net-submerged geometry.
func (o *Object) SubmergedVolume() float64 {
	return o.submergedVolume
}

// Triangles returns the per-triangle diagnostic buffer for inspection and
// visualization. The slice is reused every tick; do not retain or mutate.
func (o *Object) Triangles() []TriangleData {
	return o.tris
}

// DisableTriangle marks a triangle to be skipped every tick until
// re-enabled.
func (o *Object) DisableTriangle(i int) {
	if i >= 0 && i < len(o.tris) {
		o.tris[i].State = StateDisabled
	}
}

// DeleteTriangle marks a triangle as removed. Deleted triangles are
// skipped every tick until explicitly re-enabled.
func (o *Object) DeleteTriangle(i int) {
	if i >= 0 && i < len(o.tris) {
		o.tris[i].State = StateDeleted
	}
}

// EnableTriangle returns a disabled or deleted triangle to the simulation.
// It is reclassified on the next tick.
func (o *Object) EnableTriangle(i int) {
	if i >= 0 && i < len(o.tris) {
		o.markAbove(&o.tris[i])
	}
}
