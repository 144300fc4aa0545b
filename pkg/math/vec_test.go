package math

import (
	gomath "math"
	"testing"
)

func TestVec3Add(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}
	got := a.Add(b)
	want := Vec3{5, 7, 9}
	if got != want {
		t.Errorf("Vec3.Add() = %v, want %v", got, want)
	}
}

func TestVec3Length(t *testing.T) {
	v := Vec3{2, 3, 6}
	got := v.Length()
	want := 7.0
	if got != want {
		t.Errorf("Vec3.Length() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{3, 4, 12}
	n := v.Normalize()
	l := n.Length()
	if l < 0.999999 || l > 1.000001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}
}

func TestVec3NormalizeZero(t *testing.T) {
	got := (Vec3{}).Normalize()
	if got != (Vec3{}) {
		t.Errorf("Vec3{}.Normalize() = %v, want zero vector", got)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Lerp(t *testing.T) {
	a := Vec3{0, 0, 0}
	b := Vec3{2, 4, 6}
	got := a.Lerp(b, 0.5)
	want := Vec3{1, 2, 3}
	if got != want {
		t.Errorf("Vec3.Lerp() = %v, want %v", got, want)
	}
}

func TestMat4TransformPoint(t *testing.T) {
	m := Translate(Vec3{1, 2, 3})
	got := m.TransformPoint(Vec3{10, 20, 30})
	want := Vec3{11, 22, 33}
	if got != want {
		t.Errorf("Mat4.TransformPoint() = %v, want %v", got, want)
	}
}

func TestMat4TransformDirIgnoresTranslation(t *testing.T) {
	m := Translate(Vec3{5, 5, 5})
	got := m.TransformDir(Vec3{1, 0, 0})
	want := Vec3{1, 0, 0}
	if got != want {
		t.Errorf("Mat4.TransformDir() = %v, want %v", got, want)
	}
}

func TestQuatRotate(t *testing.T) {
	// 90 degrees around Y maps +X to -Z.
	q := QuatFromAxisAngle(Vec3{0, 1, 0}, gomath.Pi/2)
	got := q.Rotate(Vec3{1, 0, 0})
	want := Vec3{0, 0, -1}
	if got.Distance(want) > 1e-9 {
		t.Errorf("Quat.Rotate() = %v, want %v", got, want)
	}
}

func TestQuatToMat4MatchesRotate(t *testing.T) {
	q := QuatFromAxisAngle(Vec3{0, 0, 1}, gomath.Pi/3)
	v := Vec3{1, 2, 3}
	a := q.Rotate(v)
	b := q.ToMat4().TransformDir(v)
	if a.Distance(b) > 1e-9 {
		t.Errorf("Quat.Rotate() = %v, ToMat4().TransformDir() = %v", a, b)
	}
}

func TestQuatIntegrateSmallStep(t *testing.T) {
	// Integrating a constant angular velocity around Y for many small steps
	// should approximate the axis-angle rotation of the total angle.
	q := QuatIdentity()
	w := Vec3{0, 1, 0}
	dt := 0.001
	steps := 1571 // ~pi/2 radians total
	for i := 0; i < steps; i++ {
		q = q.Integrate(w, dt)
	}
	got := q.Rotate(Vec3{1, 0, 0})
	want := QuatFromAxisAngle(Vec3{0, 1, 0}, float64(steps)*dt).Rotate(Vec3{1, 0, 0})
	if got.Distance(want) > 1e-3 {
		t.Errorf("integrated rotation = %v, want %v", got, want)
	}
}

func TestTRS(t *testing.T) {
	m := TRS(Vec3{1, 0, 0}, QuatFromAxisAngle(Vec3{0, 1, 0}, gomath.Pi/2))
	got := m.TransformPoint(Vec3{1, 0, 0})
	want := Vec3{1, 0, -1}
	if got.Distance(want) > 1e-9 {
		t.Errorf("TRS().TransformPoint() = %v, want %v", got, want)
	}
}
