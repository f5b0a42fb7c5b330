package loop

import (
	"math"
	"math/rand"
	"testing"

	"github.com/clonkbot/neon-orb-catcher-f2a73c/internal/physics"
)

func TestProjectCenter(t *testing.T) {
	pt, _, ok := project(physics.Vec3{})
	if !ok {
		t.Fatal("origin must be visible")
	}
	if math.Abs(pt.X-logicalWidth/2) > 1e-9 || math.Abs(pt.Y-logicalHeight/2) > 1e-9 {
		t.Fatalf("origin projected to (%f, %f), want canvas center", pt.X, pt.Y)
	}
}

func TestProjectBehindCameraInvisible(t *testing.T) {
	if _, _, ok := project(physics.Vec3{Z: cameraZ + 1}); ok {
		t.Fatal("point behind the camera must not be visible")
	}
}

func TestProjectDepthShrinksScale(t *testing.T) {
	_, near, _ := project(physics.Vec3{Z: 0})
	_, far, _ := project(physics.Vec3{Z: -20})
	if far >= near {
		t.Fatalf("far scale %f not smaller than near scale %f", far, near)
	}
}

func TestShipEasesTowardTarget(t *testing.T) {
	s := NewState(nil)
	s.Target = physics.Vec3{X: 4, Y: 2}

	before := physics.Distance(s.Ship, s.Target)
	for i := 0; i < 10; i++ {
		s.easeShip(1.0 / 60)
	}
	after := physics.Distance(s.Ship, s.Target)

	if after >= before {
		t.Fatalf("ship did not approach target: %f -> %f", before, after)
	}
}

func TestTargetClampedToBounds(t *testing.T) {
	s := NewState(nil)
	s.Input.Right = true
	s.Input.Up = true

	for i := 0; i < 1000; i++ {
		s.updateTarget(0.1)
	}

	if s.Target.X > targetXExtent || s.Target.Y > targetYExtent {
		t.Fatalf("target %+v escaped bounds", s.Target)
	}
}

func TestStarfieldRecycles(t *testing.T) {
	stars := newStarfield(rand.New(rand.NewSource(1)))
	for i := 0; i < 10000; i++ {
		advanceStars(stars, 0.1)
	}
	for i, st := range stars {
		if st.pos.Z > cameraZ-1 {
			t.Fatalf("star %d drifted past the camera: z=%f", i, st.pos.Z)
		}
	}
}
