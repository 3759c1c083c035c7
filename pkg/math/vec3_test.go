package math

import "testing"

func TestVec3AddSub(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}

	sum := a.Add(b)
	if sum != (Vec3{5, 7, 9}) {
		t.Errorf("Add: got %v, want {5 7 9}", sum)
	}

	diff := b.Sub(a)
	if diff != (Vec3{3, 3, 3}) {
		t.Errorf("Sub: got %v, want {3 3 3}", diff)
	}
}

func TestVec3Dot(t *testing.T) {
	a := Vec3{1, 0, 0}
	b := Vec3{0, 1, 0}

	if d := a.Dot(b); d != 0 {
		t.Errorf("perpendicular vectors should have zero dot product, got %f", d)
	}
	if d := a.Dot(a); d != 1 {
		t.Errorf("unit vector dotted with itself should be 1, got %f", d)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}

	z := x.Cross(y)
	if z != (Vec3{0, 0, 1}) {
		t.Errorf("X cross Y: got %v, want {0 0 1}", z)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{3, 0, 4}
	n := v.Normalize()

	if abs(n.Length()-1) > 1e-6 {
		t.Errorf("normalized length: got %f, want 1", n.Length())
	}
	if abs(n.X-0.6) > 1e-6 || abs(n.Z-0.8) > 1e-6 {
		t.Errorf("Normalize: got %v, want {0.6 0 0.8}", n)
	}
}

func TestVec3NormalizeZero(t *testing.T) {
	var v Vec3
	if n := v.Normalize(); n != (Vec3{}) {
		t.Errorf("normalizing zero vector should stay zero, got %v", n)
	}
}
