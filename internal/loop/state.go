package loop

import (
	"time"

	"github.com/clonkbot/neon-orb-catcher-f2a73c/internal/draw"
	"github.com/clonkbot/neon-orb-catcher-f2a73c/internal/game"
	"github.com/clonkbot/neon-orb-catcher-f2a73c/internal/input"
	"github.com/clonkbot/neon-orb-catcher-f2a73c/internal/physics"
)

// Pointer travel bounds for the ship target, in world units.
const (
	targetXExtent = 7.5
	targetYExtent = 5.0

	// pointerSpeed is how fast held keys move the pointer target, in
	// world units per second.
	pointerSpeed = 14.0

	// shipEase controls how quickly the ship glides toward the pointer
	// target; higher is snappier.
	shipEase = 6.0
)

// shipSpawn is where the ship and pointer reset at the start of a run.
var shipSpawn = physics.Vec3{}

// star is a background starfield particle flying past the camera.
type star struct {
	pos   physics.Vec3
	speed float64
	color draw.Color
}

// State holds everything the render loop needs besides the game session:
// the ship, the pointer target it glides toward, input and timing.
type State struct {
	Session *game.Session

	Ship   physics.Vec3 // current ship position, reported to the session each frame
	Target physics.Vec3 // pointer target derived from held keys

	Input   input.Input
	Delta   time.Duration
	Running bool

	// hitFlash is the remaining duration of the damage flash, in seconds.
	hitFlash float64

	stars []star
}

// NewState creates the loop state around an existing session.
func NewState(session *game.Session) *State {
	return &State{
		Session: session,
		Running: true,
	}
}

// updateTarget applies held directional keys to the pointer target and
// clamps it to the travel bounds.
func (s *State) updateTarget(dt float64) {
	if s.Input.Left {
		s.Target.X -= pointerSpeed * dt
	}
	if s.Input.Right {
		s.Target.X += pointerSpeed * dt
	}
	if s.Input.Up {
		s.Target.Y += pointerSpeed * dt
	}
	if s.Input.Down {
		s.Target.Y -= pointerSpeed * dt
	}
	s.Target.X = clamp(s.Target.X, -targetXExtent, targetXExtent)
	s.Target.Y = clamp(s.Target.Y, -targetYExtent, targetYExtent)
}

// easeShip glides the ship toward the pointer target. The ship never
// snaps; it closes a fraction of the remaining distance each frame.
func (s *State) easeShip(dt float64) {
	t := shipEase * dt
	if t > 1 {
		t = 1
	}
	s.Ship = s.Ship.Add(s.Target.Sub(s.Ship).Scale(t))
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
