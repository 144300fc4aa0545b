// Package body provides a minimal rigid body with semi-implicit Euler
// integration. It implements the force-application interface the
// buoyancy simulator drives, for the demo binary and end-to-end tests;
// a real host engine supplies its own body.
package body

import "github.com/Faultbox/hydrosim/pkg/math"

// Body is a rigid body with its center of mass at the local origin.
// Inertia is a scalar moment, which is adequate for the roughly
// symmetric proxy shapes the demo floats.
type Body struct {
	Mass    float64
	Inertia float64

	Position    math.Vec3
	Orientation math.Quat
	LinVel      math.Vec3
	AngVel      math.Vec3

	Gravity math.Vec3

	// Velocity damping per second, applied during integration.
	LinearDamping  float64
	AngularDamping float64

	forceAccum  math.Vec3
	torqueAccum math.Vec3
}

// New creates a body at rest at the origin.
func New(mass, inertia float64) *Body {
	return &Body{
		Mass:        mass,
		Inertia:     inertia,
		Orientation: math.QuatIdentity(),
		Gravity:     math.Vec3{X: 0, Y: -9.81, Z: 0},
	}
}

// Transform returns the local-to-world matrix.
func (b *Body) Transform() math.Mat4 {
	return math.TRS(b.Position, b.Orientation)
}

// LinearVelocity returns the velocity of the center of mass.
func (b *Body) LinearVelocity() math.Vec3 {
	return b.LinVel
}

// AngularVelocity returns the angular velocity in world space.
func (b *Body) AngularVelocity() math.Vec3 {
	return b.AngVel
}

// WorldCenterOfMass returns the center of mass in world space.
func (b *Body) WorldCenterOfMass() math.Vec3 {
	return b.Position
}

// ApplyForce accumulates a force through the center of mass for the
// current step.
func (b *Body) ApplyForce(force math.Vec3) {
	b.forceAccum = b.forceAccum.Add(force)
}

// ApplyTorque accumulates a torque for the current step.
func (b *Body) ApplyTorque(torque math.Vec3) {
	b.torqueAccum = b.torqueAccum.Add(torque)
}

// VelocityAtPoint returns the velocity of a world-space point on the body.
func (b *Body) VelocityAtPoint(p math.Vec3) math.Vec3 {
	return b.LinVel.Add(b.AngVel.Cross(p.Sub(b.Position)))
}

// Integrate advances the body by dt seconds using semi-implicit Euler
// and clears the force and torque accumulators.
func (b *Body) Integrate(dt float64) {
	if b.Mass > 0 {
		accel := b.Gravity.Add(b.forceAccum.Scale(1 / b.Mass))
		b.LinVel = b.LinVel.Add(accel.Scale(dt))
	}
	if b.Inertia > 0 {
		b.AngVel = b.AngVel.Add(b.torqueAccum.Scale(dt / b.Inertia))
	}

	if b.LinearDamping > 0 {
		b.LinVel = b.LinVel.Scale(1 / (1 + dt*b.LinearDamping))
	}
	if b.AngularDamping > 0 {
		b.AngVel = b.AngVel.Scale(1 / (1 + dt*b.AngularDamping))
	}

	b.Position = b.Position.Add(b.LinVel.Scale(dt))
	b.Orientation = b.Orientation.Integrate(b.AngVel, dt)

	b.forceAccum = math.Vec3{}
	b.torqueAccum = math.Vec3{}
}
