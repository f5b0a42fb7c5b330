package game

import "time"

// Fixed spawn ranges. These define the playfield geometry and are not
// exposed through the tuning file.
const (
	// Orbs spawn anywhere in a cube of side 2*OrbFieldExtent centered on origin.
	OrbFieldExtent = 7.5

	OrbPointsMin = 10
	OrbPointsMax = 59

	// Obstacles spawn in a slab behind the visible range and drift toward
	// the camera until they cross the near threshold, then recycle.
	ObstacleXExtent    = 6.0
	ObstacleYExtent    = 4.0
	ObstacleSpawnFarZ  = -30.0
	ObstacleSpawnNearZ = -10.0
	ObstacleNearZ      = 5.0
	ObstacleSpeedMin   = 1.0
	ObstacleSpeedMax   = 3.0
)

// Tuning holds the adjustable gameplay parameters.
// All fields have working defaults from DefaultTuning; the config package
// can override them from a tuning file.
type Tuning struct {
	InitialLives     int
	InitialOrbs      int
	InitialObstacles int

	// Level-up: crossing a LevelScoreStep score boundary adds entities.
	LevelScoreStep   int
	LevelUpOrbs      int
	LevelUpObstacles int

	CollectRadius float64
	HitRadius     float64

	// Delay before a collected orb is replaced by a fresh one.
	ReplenishDelay time.Duration
}

// DefaultTuning returns the standard gameplay parameters.
func DefaultTuning() Tuning {
	return Tuning{
		InitialLives:     3,
		InitialOrbs:      10,
		InitialObstacles: 5,
		LevelScoreStep:   200,
		LevelUpOrbs:      3,
		LevelUpObstacles: 2,
		CollectRadius:    0.8,
		HitRadius:        1.2,
		ReplenishDelay:   500 * time.Millisecond,
	}
}
