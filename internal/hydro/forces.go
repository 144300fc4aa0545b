package hydro

import (
	gomath "math"

	"github.com/Faultbox/hydrosim/pkg/math"
)

// epsilon guards every division in the force path against degenerate
// geometry and zero velocities.
const epsilon = 1e-8

// corner is one vertex of a clipped (sub)triangle with its interpolated
// water samples. depth is positive below the surface.
type corner struct {
	pos    math.Vec3
	depth  float64
	waterN math.Vec3
	flow   math.Vec3
}

// subResult is the force contribution of one clipped sub-triangle.
type subResult struct {
	corners  [3]math.Vec3
	force    math.Vec3
	center   math.Vec3
	normal   math.Vec3
	distance float64
	area     float64
	velocity math.Vec3
}

// subTriangleForce computes buoyancy, pressure drag, and skin drag for one
// (sub)triangle. Skin drag is applied along the full apparent-velocity
// vector, so its magnitude grows linearly with speed. Returns false for
// degenerate geometry, which contributes nothing. Accumulates the
// displaced-volume term into the per-tick total.
func (o *Object) subTriangleForce(c0, c1, c2 corner) (subResult, bool) {
	e1 := c1.pos.Sub(c0.pos)
	e2 := c2.pos.Sub(c0.pos)
	cross := e1.Cross(e2)
	crossMag := cross.Length()
	if crossMag < epsilon {
		return subResult{}, false
	}

	normal := cross.Scale(1 / crossMag)
	area := 0.5 * crossMag
	if area < epsilon {
		return subResult{}, false
	}

	center := c0.pos.Add(c1.pos).Add(c2.pos).Scale(1.0 / 3.0)

	// Barycentric weights of the center from the opposite-edge
	// cross-product magnitudes.
	w0 := c1.pos.Sub(center).Cross(c2.pos.Sub(center)).Length()
	w1 := c2.pos.Sub(center).Cross(c0.pos.Sub(center)).Length()
	w2 := c0.pos.Sub(center).Cross(c1.pos.Sub(center)).Length()
	wSum := w0 + w1 + w2
	if wSum < epsilon {
		w0, w1, w2 = 1.0/3.0, 1.0/3.0, 1.0/3.0
	} else {
		w0 /= wSum
		w1 /= wSum
		w2 /= wSum
	}

	waterN := c0.waterN.Scale(w0).Add(c1.waterN.Scale(w1)).Add(c2.waterN.Scale(w2)).Normalize()
	if waterN == (math.Vec3{}) {
		waterN = o.settings.DefaultWaterNormal
	}

	// Depth of the center below the surface. When normals are queried the
	// vertical depth is projected onto the interpolated surface normal.
	distance := w0*c0.depth + w1*c1.depth + w2*c2.depth
	if o.settings.CalculateWaterNormals {
		distance *= waterN.Dot(o.up)
	}

	// Apparent velocity of the face relative to the water.
	velocity := o.tickLinVel.Add(o.tickAngVel.Cross(center.Sub(o.tickCOM)))
	if o.settings.CalculateWaterFlows {
		flow := c0.flow.Scale(w0).Add(c1.flow.Scale(w1)).Add(c2.flow.Scale(w2))
		velocity = velocity.Sub(flow)
	}

	density := o.settings.FluidDensity

	// Signed displaced mass for this face. Faces whose outward normal
	// opposes the surface normal (hull bottom) displace positively.
	dotNW := normal.Dot(waterN)
	displaced := density * area * distance * dotNW
	o.submergedVolume -= area * distance * dotNW

	force := waterN.Scale(displaced * o.gravity.Y * o.settings.BuoyancyCoefficient)

	velMag := velocity.Length()
	if velMag > epsilon {
		velDir := velocity.Scale(1 / velMag)
		s := normal.Dot(velDir)
		if s > 1 {
			s = 1
		} else if s < -1 {
			s = -1
		}
		if o.settings.VelocityDotExponent != 1 {
			s = gomath.Copysign(gomath.Pow(gomath.Abs(s), o.settings.VelocityDotExponent), s)
		}

		// Pressure drag along the face normal: slam scaling for a face
		// moving into the water, suction for one moving out.
		dirScale := o.settings.SlamCoefficient
		if s < 0 {
			dirScale = o.settings.SuctionCoefficient
		}
		pressureMag := -s * velMag * density * area * o.settings.HydrodynamicCoefficient * dirScale
		force = force.Add(normal.Scale(pressureMag))

		// Skin drag along the velocity, from the tangential share of the
		// motion.
		skin := -(1 - gomath.Abs(s)) * density * area * o.settings.SkinDragCoefficient
		force = force.Add(velocity.Scale(skin))
	}

	return subResult{
		corners:  [3]math.Vec3{c0.pos, c1.pos, c2.pos},
		force:    force,
		center:   center,
		normal:   normal,
		distance: distance,
		area:     area,
		velocity: velocity,
	}, true
}
