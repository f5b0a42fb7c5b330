package game

import (
	"math/rand"

	"github.com/clonkbot/neon-orb-catcher-f2a73c/internal/physics"
)

// Generator produces randomized orbs and obstacles with session-unique ids.
// The random source is injected so tests can seed it; ids come from a
// monotonic counter and are never reused, even across calls.
type Generator struct {
	rng    *rand.Rand
	nextID uint64
}

// NewGenerator creates a generator backed by the given random source.
func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

func (g *Generator) newID() uint64 {
	g.nextID++
	return g.nextID
}

// GenerateOrbs returns exactly count fresh orbs. Each coordinate is
// uniform in [-OrbFieldExtent, OrbFieldExtent], color is uniform over the
// palette, and points are a uniform integer in [OrbPointsMin, OrbPointsMax].
func (g *Generator) GenerateOrbs(count int) []Orb {
	orbs := make([]Orb, 0, count)
	for i := 0; i < count; i++ {
		orbs = append(orbs, Orb{
			ID: g.newID(),
			Pos: physics.Vec3{
				X: g.uniform(-OrbFieldExtent, OrbFieldExtent),
				Y: g.uniform(-OrbFieldExtent, OrbFieldExtent),
				Z: g.uniform(-OrbFieldExtent, OrbFieldExtent),
			},
			Color:  OrbColor(g.rng.Intn(int(orbColorCount))),
			Points: OrbPointsMin + g.rng.Intn(OrbPointsMax-OrbPointsMin+1),
		})
	}
	return orbs
}

// GenerateObstacles returns exactly count fresh obstacles spawned behind
// the camera's visible range with a uniform speed in
// [ObstacleSpeedMin, ObstacleSpeedMax].
func (g *Generator) GenerateObstacles(count int) []Obstacle {
	obstacles := make([]Obstacle, 0, count)
	for i := 0; i < count; i++ {
		obstacles = append(obstacles, Obstacle{
			ID: g.newID(),
			Pos: physics.Vec3{
				X: g.uniform(-ObstacleXExtent, ObstacleXExtent),
				Y: g.uniform(-ObstacleYExtent, ObstacleYExtent),
				Z: g.uniform(ObstacleSpawnFarZ, ObstacleSpawnNearZ),
			},
			Speed: g.uniform(ObstacleSpeedMin, ObstacleSpeedMax),
		})
	}
	return obstacles
}

func (g *Generator) uniform(min, max float64) float64 {
	return min + g.rng.Float64()*(max-min)
}
