package game

import (
	"slices"

	"github.com/clonkbot/neon-orb-catcher-f2a73c/internal/physics"
)

// Evaluate checks a single player-position snapshot against the live orb
// and obstacle sets and returns this frame's events. It does not mutate
// the session; pass the result to Apply.
//
// Every entity is checked each frame so several orbs can be collected
// simultaneously. Orbs already in the collected set are skipped, so a
// given orb emits at most one Collect. Obstacles have no such guard: a
// lingering overlap emits a Hit every frame.
func (s *Session) Evaluate(player physics.Vec3) []Event {
	if s.Phase != PhasePlaying {
		return nil
	}

	var events []Event

	for _, id := range sortedKeys(s.Orbs) {
		if _, done := s.collected[id]; done {
			continue
		}
		orb := s.Orbs[id]
		if physics.WithinRadius(player, orb.Pos, s.tuning.CollectRadius) {
			events = append(events, Event{Type: EventCollect, OrbID: id, Points: orb.Points})
		}
	}

	for _, id := range sortedKeys(s.Obstacles) {
		if physics.WithinRadius(player, s.Obstacles[id].Pos, s.tuning.HitRadius) {
			events = append(events, Event{Type: EventHit, ObstacleID: id})
		}
	}

	return events
}

// sortedKeys returns map keys in ascending order so event emission is
// deterministic across runs.
func sortedKeys[V any](m map[uint64]V) []uint64 {
	keys := make([]uint64, 0, len(m))
	for id := range m {
		keys = append(keys, id)
	}
	slices.Sort(keys)
	return keys
}
