// Package game implements the gameplay core: entity generation, per-frame
// collision evaluation, and the score/lives/level session state machine.
// It has no rendering or input dependencies so the whole package can be
// unit tested deterministically.
package game

import "github.com/clonkbot/neon-orb-catcher-f2a73c/internal/physics"

// OrbColor tags an orb with one of the fixed neon palette entries.
// The presentation layer decides how each tag is displayed.
type OrbColor uint8

const (
	OrbCyan OrbColor = iota
	OrbMagenta
	OrbYellow
	OrbGreen
	OrbOrange

	orbColorCount
)

// String returns the palette name for logging and test failure messages.
func (c OrbColor) String() string {
	switch c {
	case OrbCyan:
		return "cyan"
	case OrbMagenta:
		return "magenta"
	case OrbYellow:
		return "yellow"
	case OrbGreen:
		return "green"
	case OrbOrange:
		return "orange"
	default:
		return "unknown"
	}
}

// Orb is a collectible awarding points on contact. Position is static;
// an orb leaves the live set only by being collected.
type Orb struct {
	ID     uint64
	Pos    physics.Vec3
	Color  OrbColor
	Points int
}

// Obstacle is a hazard costing a life on contact. Obstacles drift toward
// the camera and recycle to the far plane; they are never removed.
type Obstacle struct {
	ID    uint64
	Pos   physics.Vec3
	Speed float64
}

// Advance moves the obstacle toward the camera by speed*dt and wraps it
// back to the far plane once it crosses the near threshold.
func (o *Obstacle) Advance(dt float64) {
	o.Pos.Z += o.Speed * dt
	if o.Pos.Z > ObstacleNearZ {
		o.Pos.Z = ObstacleSpawnFarZ
	}
}
