package hydro

import "github.com/Faultbox/hydrosim/pkg/math"

// SurfaceProvider supplies water surface samples at world-space points.
// Height support is assumed; callers must check SupportsNormal and
// SupportsFlow before requesting those channels.
type SurfaceProvider interface {
	SupportsHeight() bool
	SupportsNormal() bool
	SupportsFlow() bool

	// Query fills the requested output slices in place for every point.
	// Output slices must be at least len(points) long; channels that are
	// not requested (or not supported) are left untouched.
	Query(points []math.Vec3, heights []float64, normals, flows []math.Vec3, wantHeights, wantNormals, wantFlows bool)

	// QueryAt is the single-point convenience form.
	QueryAt(p math.Vec3) (height float64, normal, flow math.Vec3)
}

// EnterProvider registers a water provider that started overlapping the
// object. Idempotent: a provider already on the stack is not re-added.
// The most recently entered provider becomes the active one.
func (o *Object) EnterProvider(p SurfaceProvider) {
	if p == nil {
		return
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	for _, existing := range o.providers {
		if existing == p {
			return
		}
	}
	o.providers = append(o.providers, p)
}

// ExitProvider removes a provider that stopped overlapping the object.
// When the stack becomes empty every vertex sample is reset to the
// configured defaults at the start of the next tick; the buffers are
// never touched here because a tick may be running concurrently.
func (o *Object) ExitProvider(p SurfaceProvider) {
	o.mu.Lock()
	defer o.mu.Unlock()
	for i, existing := range o.providers {
		if existing == p {
			o.providers = append(o.providers[:i], o.providers[i+1:]...)
			break
		}
	}
	if len(o.providers) == 0 {
		o.resetPending = true
	}
}

// ActiveProvider returns the most recently entered still-overlapping
// provider, or nil when none overlap.
func (o *Object) ActiveProvider() SurfaceProvider {
	o.mu.Lock()
	defer o.mu.Unlock()
	if len(o.providers) == 0 {
		return nil
	}
	return o.providers[len(o.providers)-1]
}

// resetWaterDefaults restores per-vertex water samples to the configured
// defaults. Called at construction and at tick start only; the tick
// goroutine owns the buffers.
func (o *Object) resetWaterDefaults() {
	for i := range o.waterHeights {
		o.waterHeights[i] = o.settings.DefaultWaterHeight
		o.waterNormals[i] = o.settings.DefaultWaterNormal
		o.waterFlows[i] = o.settings.DefaultWaterFlow
	}
}
