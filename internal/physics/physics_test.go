package physics

import (
	"math"
	"testing"
)

func TestDistance(t *testing.T) {
	a := Vec3{X: 1, Y: 2, Z: 3}
	b := Vec3{X: 4, Y: 6, Z: 3}
	if got := Distance(a, b); math.Abs(got-5) > 1e-9 {
		t.Fatalf("Distance = %f, want 5", got)
	}
}

func TestWithinRadiusIsStrict(t *testing.T) {
	a := Vec3{}
	b := Vec3{X: 0.8}
	if WithinRadius(a, b, 0.8) {
		t.Fatal("points exactly at radius must not count as within")
	}
	if !WithinRadius(a, b, 0.8001) {
		t.Fatal("points inside radius must count as within")
	}
}

func TestVecOps(t *testing.T) {
	v := Vec3{X: 1, Y: -2, Z: 0.5}
	sum := v.Add(Vec3{X: 1, Y: 2, Z: -0.5})
	if sum != (Vec3{X: 2}) {
		t.Fatalf("Add = %+v", sum)
	}
	if got := v.Scale(2); got != (Vec3{X: 2, Y: -4, Z: 1}) {
		t.Fatalf("Scale = %+v", got)
	}
}
