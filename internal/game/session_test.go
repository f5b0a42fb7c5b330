package game

import (
	"math/rand"
	"testing"
	"time"

	"github.com/clonkbot/neon-orb-catcher-f2a73c/internal/physics"
)

// manualTimer captures scheduled replenishments so tests fire them
// explicitly instead of waiting out real delays.
type manualTimer struct {
	delays []time.Duration
	fns    []func()
}

func (m *manualTimer) schedule(d time.Duration, fn func()) {
	m.delays = append(m.delays, d)
	m.fns = append(m.fns, fn)
}

func (m *manualTimer) fireAll() {
	fns := m.fns
	m.fns = nil
	for _, fn := range fns {
		fn()
	}
}

func newTestSession(seed int64) (*Session, *manualTimer) {
	s := NewSession(NewGenerator(rand.New(rand.NewSource(seed))), DefaultTuning())
	mt := &manualTimer{}
	s.schedule = mt.schedule
	return s, mt
}

func TestStartResetsSessionState(t *testing.T) {
	s, _ := newTestSession(1)

	s.Start()

	if s.Phase != PhasePlaying {
		t.Fatalf("phase = %v, want playing", s.Phase)
	}
	if s.Score != 0 || s.Lives != 3 || s.Level != 1 {
		t.Fatalf("score/lives/level = %d/%d/%d, want 0/3/1", s.Score, s.Lives, s.Level)
	}
	if len(s.Orbs) != 10 {
		t.Fatalf("got %d orbs, want 10", len(s.Orbs))
	}
	if len(s.Obstacles) != 5 {
		t.Fatalf("got %d obstacles, want 5", len(s.Obstacles))
	}

	seen := map[uint64]bool{}
	for id := range s.Orbs {
		seen[id] = true
	}
	for id := range s.Obstacles {
		if seen[id] {
			t.Fatalf("id %d shared between orb and obstacle", id)
		}
	}
}

func TestStartIgnoredWhilePlaying(t *testing.T) {
	s, _ := newTestSession(1)
	s.Start()
	s.Score = 50

	s.Start()

	if s.Score != 50 {
		t.Fatal("start action must not reset a run in progress")
	}
}

func TestCollectScoresAndRemovesOrb(t *testing.T) {
	s, mt := newTestSession(1)
	s.Start()
	s.Orbs = map[uint64]*Orb{}
	s.Orbs[100] = &Orb{ID: 100, Pos: physics.Vec3{X: 0.5}, Points: 15}

	events := s.Step(physics.Vec3{})

	if len(events) != 1 || events[0].Type != EventCollect {
		t.Fatalf("events = %+v, want one Collect", events)
	}
	if s.Score != 15 {
		t.Fatalf("score = %d, want 15", s.Score)
	}
	if len(s.Orbs) != 0 {
		t.Fatalf("orb not removed from live set")
	}
	if len(mt.delays) != 1 || mt.delays[0] != 500*time.Millisecond {
		t.Fatalf("replenishment delays = %v, want one 500ms", mt.delays)
	}
}

func TestReplenishmentRestoresOrbCount(t *testing.T) {
	s, mt := newTestSession(1)
	s.Start()

	// Spread the orbs out so stepping on one collects exactly one.
	s.Orbs = map[uint64]*Orb{}
	for i := uint64(0); i < 10; i++ {
		s.Orbs[100+i] = &Orb{ID: 100 + i, Pos: physics.Vec3{X: float64(i) * 3}, Points: 10}
	}
	s.Obstacles = map[uint64]*Obstacle{}

	s.Step(physics.Vec3{})
	s.Step(physics.Vec3{X: 100}) // move away so nothing else triggers

	if len(s.Orbs) != 9 {
		t.Fatalf("got %d orbs after collect, want 9", len(s.Orbs))
	}

	mt.fireAll()
	s.Step(physics.Vec3{X: 100})

	if len(s.Orbs) != 10 {
		t.Fatalf("got %d orbs after replenishment, want 10", len(s.Orbs))
	}
}

func TestCollectIdempotentPerOrbID(t *testing.T) {
	s, _ := newTestSession(1)
	s.Start()
	s.Orbs = map[uint64]*Orb{100: {ID: 100, Points: 15}}

	ev := Event{Type: EventCollect, OrbID: 100, Points: 15}
	s.Apply(ev)
	s.Apply(ev)

	if s.Score != 15 {
		t.Fatalf("score = %d after duplicate collect, want 15", s.Score)
	}
}

func TestHitsDrainLivesAndEndGame(t *testing.T) {
	s, _ := newTestSession(1)
	s.HighScore = 40
	s.Start()
	s.Score = 25

	for i := 1; i <= 3; i++ {
		s.Apply(Event{Type: EventHit})
		if want := 3 - i; s.Lives != want {
			t.Fatalf("lives = %d after hit %d, want %d", s.Lives, i, want)
		}
	}

	if s.Phase != PhaseGameOver {
		t.Fatalf("phase = %v after losing all lives, want gameover", s.Phase)
	}
	if s.HighScore != 40 {
		t.Fatalf("high score = %d, want max(40, 25) = 40", s.HighScore)
	}
}

func TestHighScoreUpdatesWhenBeaten(t *testing.T) {
	s, _ := newTestSession(1)
	s.HighScore = 40
	s.Start()
	s.Score = 120

	s.Lives = 1
	s.Apply(Event{Type: EventHit})

	if s.HighScore != 120 {
		t.Fatalf("high score = %d, want 120", s.HighScore)
	}
}

func TestHitAfterGameOverIsNoOp(t *testing.T) {
	s, _ := newTestSession(1)
	s.Start()
	s.Lives = 1
	s.Apply(Event{Type: EventHit})

	s.Apply(Event{Type: EventHit})

	if s.Lives != 0 {
		t.Fatalf("lives = %d, must never go below 0", s.Lives)
	}
}

func TestLevelUpAddsEntities(t *testing.T) {
	s, _ := newTestSession(1)
	s.Start()
	s.Score = 185
	s.Orbs = map[uint64]*Orb{100: {ID: 100, Points: 30}}
	s.Obstacles = map[uint64]*Obstacle{200: {ID: 200}}

	s.Apply(Event{Type: EventCollect, OrbID: 100, Points: 30})

	if s.Score != 215 {
		t.Fatalf("score = %d, want 215", s.Score)
	}
	if s.Level != 2 {
		t.Fatalf("level = %d, want 2", s.Level)
	}
	if len(s.Orbs) != 3 {
		t.Fatalf("got %d orbs, want 3 added after the collected one", len(s.Orbs))
	}
	if len(s.Obstacles) != 3 {
		t.Fatalf("got %d obstacles, want 1 existing + 2 added", len(s.Obstacles))
	}
}

func TestLevelUpAtMostOncePerCollect(t *testing.T) {
	// 190 -> 600 crosses two 200-point boundaries but levels up once:
	// only the floor comparison matters, not how many steps were crossed.
	s, _ := newTestSession(1)
	s.Start()
	s.Score = 190
	s.Orbs = map[uint64]*Orb{100: {ID: 100, Points: 410}}

	s.Apply(Event{Type: EventCollect, OrbID: 100, Points: 410})

	if s.Level != 2 {
		t.Fatalf("level = %d, want exactly one level-up", s.Level)
	}
}

func TestNoLevelUpWithoutBoundaryCross(t *testing.T) {
	s, _ := newTestSession(1)
	s.Start()
	s.Score = 100
	s.Orbs = map[uint64]*Orb{100: {ID: 100, Points: 50}}

	s.Apply(Event{Type: EventCollect, OrbID: 100, Points: 50})

	if s.Level != 1 {
		t.Fatalf("level = %d, want 1", s.Level)
	}
}

func TestScoreMonotonicWithinRun(t *testing.T) {
	s, _ := newTestSession(5)
	s.Start()

	prev := s.Score
	for i := 0; i < 20; i++ {
		for _, orb := range s.Orbs {
			s.Apply(Event{Type: EventCollect, OrbID: orb.ID, Points: orb.Points})
			break
		}
		if s.Score < prev {
			t.Fatalf("score decreased from %d to %d", prev, s.Score)
		}
		prev = s.Score
	}
}

func TestReplenishmentLeaksAcrossRestart(t *testing.T) {
	// A replenishment scheduled in one run is not cancelled by restart:
	// if its 500ms window crosses the restart it adds an extra orb to the
	// new run's set.
	s, mt := newTestSession(1)
	s.Start()
	s.Orbs = map[uint64]*Orb{100: {ID: 100, Points: 15}}
	s.Apply(Event{Type: EventCollect, OrbID: 100, Points: 15})

	// End the run, restart, then the old timer fires.
	s.Lives = 1
	s.Apply(Event{Type: EventHit})
	s.Start()
	mt.fireAll()
	s.Step(physics.Vec3{X: 100})

	if len(s.Orbs) != 11 {
		t.Fatalf("got %d orbs, want 10 fresh + 1 leaked replenishment", len(s.Orbs))
	}
}

func TestReplenishmentAppliesAfterGameOver(t *testing.T) {
	s, mt := newTestSession(1)
	s.Start()
	s.Orbs = map[uint64]*Orb{100: {ID: 100, Points: 15}}
	s.Apply(Event{Type: EventCollect, OrbID: 100, Points: 15})
	s.Lives = 1
	s.Apply(Event{Type: EventHit})

	mt.fireAll()
	s.Step(physics.Vec3{})

	if len(s.Orbs) != 1 {
		t.Fatalf("got %d orbs, want the replenishment applied on the game-over screen", len(s.Orbs))
	}
}

func TestStepNoEventsOutsidePlaying(t *testing.T) {
	s, _ := newTestSession(1)

	if events := s.Step(physics.Vec3{}); len(events) != 0 {
		t.Fatalf("title-phase step produced events: %+v", events)
	}
}
