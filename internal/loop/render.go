package loop

import (
	"math/rand"

	"github.com/clonkbot/neon-orb-catcher-f2a73c/internal/draw"
	"github.com/clonkbot/neon-orb-catcher-f2a73c/internal/game"
	"github.com/clonkbot/neon-orb-catcher-f2a73c/internal/physics"
)

// Logical canvas resolution. Width in columns, height in sub-pixels
// (two per terminal row).
const (
	logicalWidth  = 160.0
	logicalHeight = 100.0
)

// Perspective camera: sits on the +z axis looking down -z.
const (
	cameraZ     = 12.0
	focalLength = 60.0
)

const starCount = 120

// ANSI 256 palette indices for the game's neon look.
const (
	colorShip     draw.Color = 231 // white
	colorObstacle draw.Color = 196 // red
	colorFlash    draw.Color = 203
)

// orbPalette maps the core's color tags to ANSI 256 colors.
var orbPalette = [...]draw.Color{
	game.OrbCyan:    51,
	game.OrbMagenta: 201,
	game.OrbYellow:  226,
	game.OrbGreen:   46,
	game.OrbOrange:  208,
}

var starShades = [...]draw.Color{236, 240, 245, 250}

// project converts a world position to canvas coordinates and an apparent
// scale factor. ok is false when the point is behind the camera.
func project(p physics.Vec3) (pt draw.Point, scale float64, ok bool) {
	depth := cameraZ - p.Z
	if depth < 1 {
		return draw.Point{}, 0, false
	}
	scale = focalLength / depth
	pt = draw.Point{
		X: logicalWidth/2 + p.X*scale,
		Y: logicalHeight/2 - p.Y*scale,
	}
	return pt, scale, true
}

// newStarfield seeds the drifting background stars.
func newStarfield(rng *rand.Rand) []star {
	stars := make([]star, starCount)
	for i := range stars {
		stars[i] = star{
			pos: physics.Vec3{
				X: (rng.Float64() - 0.5) * 30,
				Y: (rng.Float64() - 0.5) * 20,
				Z: -40 + rng.Float64()*45,
			},
			speed: 2 + rng.Float64()*6,
			color: starShades[rng.Intn(len(starShades))],
		}
	}
	return stars
}

// advanceStars drifts stars toward the camera and recycles them behind
// the far plane, giving the flying-through-space effect.
func advanceStars(stars []star, dt float64) {
	for i := range stars {
		stars[i].pos.Z += stars[i].speed * dt
		if stars[i].pos.Z > cameraZ-1 {
			stars[i].pos.Z = -40
		}
	}
}

// drawScene renders starfield, orbs, obstacles and the ship to the canvas.
func drawScene(state *State, canvas *draw.Canvas) {
	for _, st := range state.stars {
		if pt, _, ok := project(st.pos); ok {
			canvas.SetPoint(pt.X, pt.Y, st.color)
		}
	}

	for _, orb := range state.Session.Orbs {
		pt, scale, ok := project(orb.Pos)
		if !ok {
			continue
		}
		canvas.FillCircle(pt.X, pt.Y, 0.35*scale, orbPalette[orb.Color])
	}

	obstacleColor := colorObstacle
	if state.hitFlash > 0 {
		obstacleColor = colorFlash
	}
	for _, obs := range state.Session.Obstacles {
		pt, scale, ok := project(obs.Pos)
		if !ok {
			continue
		}
		canvas.FillCircle(pt.X, pt.Y, 0.55*scale, obstacleColor)
	}

	if state.Session.Phase == game.PhasePlaying {
		drawShip(state, canvas)
	}
}

// drawShip renders the player as a triangle pointing up, nudged toward
// its direction of travel.
func drawShip(state *State, canvas *draw.Canvas) {
	pt, scale, ok := project(state.Ship)
	if !ok {
		return
	}
	size := 0.5 * scale
	lean := clamp((state.Target.X-state.Ship.X)*0.15, -0.5, 0.5) * size

	// Nose first, then the two wings.
	triangle := []draw.Point{
		{X: pt.X + lean, Y: pt.Y - size},
		{X: pt.X - size*0.9, Y: pt.Y + size},
		{X: pt.X + size*0.9, Y: pt.Y + size},
	}
	canvas.DrawPolygon(triangle, colorShip)
}
