package game

import (
	"time"

	"github.com/clonkbot/neon-orb-catcher-f2a73c/internal/physics"
)

// Phase is the current screen/state of a session.
type Phase int

const (
	PhaseTitle Phase = iota
	PhasePlaying
	PhaseGameOver
)

// String returns the phase name for logging.
func (p Phase) String() string {
	switch p {
	case PhaseTitle:
		return "title"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Session owns all gameplay state for one player: phase, score, lives,
// level, the live entity sets, and the high score for the process
// lifetime. All mutation goes through Start, Step, and Apply on a single
// goroutine; the only off-frame work is the replenishment timer, which
// posts into a buffered channel drained at frame boundaries.
type Session struct {
	Phase     Phase
	Score     int
	Lives     int
	Level     int
	HighScore int

	Orbs      map[uint64]*Orb
	Obstacles map[uint64]*Obstacle

	// collected suppresses double-counting between Collect emission and
	// orb removal. Ids here always refer to orbs already out of the live
	// set.
	collected map[uint64]struct{}

	gen    *Generator
	tuning Tuning

	pending chan Event

	// schedule defaults to time.AfterFunc; tests swap it to fire
	// replenishments deterministically.
	schedule func(d time.Duration, fn func())
}

// NewSession creates a session on the title screen.
func NewSession(gen *Generator, tuning Tuning) *Session {
	return &Session{
		Phase:     PhaseTitle,
		Orbs:      map[uint64]*Orb{},
		Obstacles: map[uint64]*Obstacle{},
		collected: map[uint64]struct{}{},
		gen:       gen,
		tuning:    tuning,
		pending:   make(chan Event, 64),
		schedule: func(d time.Duration, fn func()) {
			time.AfterFunc(d, fn)
		},
	}
}

// Tuning returns the parameters this session was created with.
func (s *Session) Tuning() Tuning {
	return s.tuning
}

// Start begins a fresh run from the title or game-over screen. Score,
// lives, and level reset and both live sets are replaced entirely.
// Replenishments scheduled before the restart are not cancelled; if one
// comes due later it adds to the new run's orb set.
func (s *Session) Start() {
	if s.Phase == PhasePlaying {
		return
	}

	s.Phase = PhasePlaying
	s.Score = 0
	s.Lives = s.tuning.InitialLives
	s.Level = 1

	s.Orbs = make(map[uint64]*Orb, s.tuning.InitialOrbs)
	for _, orb := range s.gen.GenerateOrbs(s.tuning.InitialOrbs) {
		s.addOrb(orb)
	}
	s.Obstacles = make(map[uint64]*Obstacle, s.tuning.InitialObstacles)
	for _, obs := range s.gen.GenerateObstacles(s.tuning.InitialObstacles) {
		s.addObstacle(obs)
	}
	clear(s.collected)
}

// Step runs one frame: due replenishments are folded in first, then the
// player position is evaluated against the live sets and the resulting
// events applied. Returns the events so the presentation layer can react
// (flashes, shake). Outside the playing phase only replenishments apply.
func (s *Session) Step(player physics.Vec3) []Event {
	s.drainPending()

	events := s.Evaluate(player)
	for _, ev := range events {
		s.Apply(ev)
	}
	return events
}

// AdvanceObstacles moves every live obstacle toward the camera by its
// speed over dt seconds, recycling any that cross the near threshold.
func (s *Session) AdvanceObstacles(dt float64) {
	for _, obs := range s.Obstacles {
		obs.Advance(dt)
	}
}

// Apply transitions the session on one event. Stale or impossible events
// (already-collected orb, hit after game over) are no-ops, not errors.
func (s *Session) Apply(ev Event) {
	switch ev.Type {
	case EventCollect:
		s.applyCollect(ev)
	case EventHit:
		s.applyHit()
	case EventReplenish:
		s.applyReplenish()
	}
}

func (s *Session) applyCollect(ev Event) {
	if s.Phase != PhasePlaying {
		return
	}
	if _, done := s.collected[ev.OrbID]; done {
		return
	}
	if _, live := s.Orbs[ev.OrbID]; !live {
		return
	}

	s.collected[ev.OrbID] = struct{}{}
	delete(s.Orbs, ev.OrbID)

	oldScore := s.Score
	s.Score += ev.Points

	// One boundary test per collect: crossing several score steps at once
	// still yields a single level-up.
	if s.Score/s.tuning.LevelScoreStep > oldScore/s.tuning.LevelScoreStep {
		s.Level++
		for _, orb := range s.gen.GenerateOrbs(s.tuning.LevelUpOrbs) {
			s.addOrb(orb)
		}
		for _, obs := range s.gen.GenerateObstacles(s.tuning.LevelUpObstacles) {
			s.addObstacle(obs)
		}
	}

	s.schedule(s.tuning.ReplenishDelay, func() {
		select {
		case s.pending <- Event{Type: EventReplenish}:
		default:
			// Channel full; drop rather than block the timer goroutine.
		}
	})
}

func (s *Session) applyHit() {
	if s.Phase != PhasePlaying || s.Lives <= 0 {
		return
	}
	s.Lives--
	if s.Lives == 0 {
		s.Phase = PhaseGameOver
		if s.Score > s.HighScore {
			s.HighScore = s.Score
		}
	}
}

// applyReplenish adds one fresh orb to whatever live set is current. It
// runs in any phase: a replenishment scheduled during a run that has
// since ended lands in the next run's set.
func (s *Session) applyReplenish() {
	for _, orb := range s.gen.GenerateOrbs(1) {
		s.addOrb(orb)
	}
}

func (s *Session) drainPending() {
	for {
		select {
		case ev := <-s.pending:
			s.Apply(ev)
		default:
			return
		}
	}
}

func (s *Session) addOrb(orb Orb) {
	o := orb
	s.Orbs[o.ID] = &o
}

func (s *Session) addObstacle(obs Obstacle) {
	o := obs
	s.Obstacles[o.ID] = &o
}
