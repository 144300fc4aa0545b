package hydro

import "github.com/Faultbox/hydrosim/pkg/math"

// processTriangle classifies triangle ti against the water surface, clips
// it when straddling, and stores the combined force result. Downstream
// code sees exactly one result per triangle index.
func (o *Object) processTriangle(ti int) {
	data := &o.tris[ti]
	if data.State == StateDisabled || data.State == StateDeleted {
		return
	}

	i0 := o.mesh.Indices[ti*3]
	i1 := o.mesh.Indices[ti*3+1]
	i2 := o.mesh.Indices[ti*3+2]

	// Vertical distance to the surface, positive above.
	d0 := o.worldVerts[i0].Y - o.waterHeights[i0]
	d1 := o.worldVerts[i1].Y - o.waterHeights[i1]
	d2 := o.worldVerts[i2].Y - o.waterHeights[i2]

	if d0 >= 0 && d1 >= 0 && d2 >= 0 {
		o.markAbove(data)
		return
	}

	// The force model expects positive depth below the surface, so the
	// classifier distances are fed in with the sign inverted.
	c0 := o.vertexCorner(i0, -d0)
	c1 := o.vertexCorner(i1, -d1)
	c2 := o.vertexCorner(i2, -d2)

	var subs [2]subResult
	count := 0

	if d0 <= 0 && d1 <= 0 && d2 <= 0 {
		if r, ok := o.subTriangleForce(c0, c1, c2); ok {
			subs[count] = r
			count++
		}
		o.storeResult(data, StateUnderwater, subs[:count])
		return
	}

	// Straddling: sort the three (distance, corner) pairs descending and
	// dispatch on the two canonical shapes. An odd permutation reverses
	// the winding, which is restored on emit.
	dist := [3]float64{d0, d1, d2}
	corners := [3]corner{c0, c1, c2}
	order := [3]int{0, 1, 2}
	swaps := 0
	if dist[order[0]] < dist[order[1]] {
		order[0], order[1] = order[1], order[0]
		swaps++
	}
	if dist[order[1]] < dist[order[2]] {
		order[1], order[2] = order[2], order[1]
		swaps++
	}
	if dist[order[0]] < dist[order[1]] {
		order[0], order[1] = order[1], order[0]
		swaps++
	}
	flipped := swaps%2 == 1

	cH, cM, cL := corners[order[0]], corners[order[1]], corners[order[2]]
	dH, dM, dL := dist[order[0]], dist[order[1]], dist[order[2]]

	if dM <= 0 {
		// Two below, one above: a quadrilateral remains underwater,
		// split into two sub-triangles sharing edge (M, intersection
		// toward L).
		iM := clipEdge(cH, cM, dH, dM)
		iL := clipEdge(cH, cL, dH, dL)
		emitSub(o, &subs, &count, cM, cL, iL, flipped)
		emitSub(o, &subs, &count, cM, iL, iM, flipped)
	} else {
		// One below, two above: a single small sub-triangle near L.
		jH := clipEdge(cH, cL, dH, dL)
		jM := clipEdge(cM, cL, dM, dL)
		emitSub(o, &subs, &count, jM, cL, jH, flipped)
	}

	o.storeResult(data, StatePartial, subs[:count])
}

// vertexCorner builds a force-model corner from the per-vertex buffers.
func (o *Object) vertexCorner(idx uint32, depth float64) corner {
	return corner{
		pos:    o.worldVerts[idx],
		depth:  depth,
		waterN: o.waterNormals[idx],
		flow:   o.waterFlows[idx],
	}
}

// clipEdge returns the surface intersection on edge (X, Y) given the
// classifier distances dX (above) and dY (below or on the surface).
func clipEdge(x, y corner, dX, dY float64) corner {
	denom := dX - dY
	t := 0.0
	if denom > epsilon || denom < -epsilon {
		t = -dY / denom
	}
	return corner{
		pos:    y.pos.Add(x.pos.Sub(y.pos).Scale(t)),
		depth:  0,
		waterN: y.waterN.Lerp(x.waterN, t),
		flow:   y.flow.Lerp(x.flow, t),
	}
}

// emitSub runs the force model on one clipped sub-triangle, restoring the
// original winding when the distance sort reversed it.
func emitSub(o *Object, subs *[2]subResult, count *int, a, b, c corner, flipped bool) {
	if flipped {
		b, c = c, b
	}
	if r, ok := o.subTriangleForce(a, b, c); ok {
		subs[*count] = r
		*count++
	}
}

// markAbove resets a triangle that contributes no force this tick.
func (o *Object) markAbove(data *TriangleData) {
	data.State = StateAbove
	data.CornerCount = 0
	data.Area = 0
	data.Center = math.Vec3{}
	data.Normal = math.Vec3{}
	data.Distance = 0
	data.Velocity = math.Vec3{}
	data.Force = math.Vec3{}
}

// storeResult combines up to two sub-triangle results into the single
// per-triangle result: summed force and area, area-weighted center,
// distance, and velocity. A degenerate (empty) result reclassifies the
// triangle as above for this tick.
func (o *Object) storeResult(data *TriangleData, state TriangleState, subs []subResult) {
	if len(subs) == 0 {
		o.markAbove(data)
		return
	}

	var force, center, normal, velocity math.Vec3
	var area, distance float64
	for _, s := range subs {
		force = force.Add(s.force)
		center = center.Add(s.center.Scale(s.area))
		normal = normal.Add(s.normal.Scale(s.area))
		velocity = velocity.Add(s.velocity.Scale(s.area))
		distance += s.distance * s.area
		area += s.area
	}
	if area < epsilon {
		o.markAbove(data)
		return
	}

	inv := 1 / area
	data.State = state
	data.Force = force
	data.Area = area
	data.Center = center.Scale(inv)
	data.Normal = normal.Normalize()
	data.Velocity = velocity.Scale(inv)
	data.Distance = distance * inv

	data.CornerCount = 0
	for _, s := range subs {
		copy(data.Corners[data.CornerCount:], s.corners[:])
		data.CornerCount += 3
	}
}
