package game

// EventType identifies the type of gameplay event.
type EventType int

const (
	// EventCollect fires when the player touches a live orb. At most once
	// per orb id.
	EventCollect EventType = iota
	// EventHit fires when the player overlaps an obstacle. An obstacle
	// keeps firing every frame while the overlap lasts; there is no
	// debounce.
	EventHit
	// EventReplenish fires when a scheduled replacement orb comes due.
	EventReplenish
)

// Event is a gameplay event consumed by Session.Apply. Using plain values
// instead of callbacks keeps the state machine testable without a render
// loop.
type Event struct {
	Type EventType

	// OrbID and Points are set for EventCollect.
	OrbID  uint64
	Points int

	// ObstacleID is set for EventHit.
	ObstacleID uint64
}
