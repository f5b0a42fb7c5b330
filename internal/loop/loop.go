// Package loop provides the main game loop: input, simulation, and
// terminal rendering around the gameplay core.
package loop

import (
	"bufio"
	"io"
	"math/rand"
	"time"

	"github.com/clonkbot/neon-orb-catcher-f2a73c/internal/draw"
	"github.com/clonkbot/neon-orb-catcher-f2a73c/internal/game"
	"github.com/clonkbot/neon-orb-catcher-f2a73c/internal/input"
)

const targetFPS = 60
const targetFrameTime = time.Second / targetFPS

// hitFlashSeconds is how long obstacles flash after the ship takes a hit.
const hitFlashSeconds = 0.25

// Options configures a game loop run.
type Options struct {
	// TermSizeFunc reports the terminal size; defaults to os.Stdout.
	TermSizeFunc draw.TermSizeFunc
	// Tuning holds the gameplay parameters; zero value means defaults.
	Tuning game.Tuning
	// Seed for entity generation; zero seeds from the clock.
	Seed int64
}

// Run starts the game loop with the standard Input → Update → Draw cycle.
// It returns when the player quits or the reader closes.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	if opts.TermSizeFunc == nil {
		opts.TermSizeFunc = draw.DefaultTermSizeFunc
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Tuning == (game.Tuning{}) {
		opts.Tuning = game.DefaultTuning()
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	session := game.NewSession(game.NewGenerator(rng), opts.Tuning)
	state := NewState(session)
	state.stars = newStarfield(rng)
	stream := input.StartStream(r)

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	defer draw.ResetStyle(w)
	draw.ClearScreen(w)

	termWidth, termHeight, err := opts.TermSizeFunc()
	if err != nil || termWidth <= 0 || termHeight <= 0 {
		termWidth, termHeight = 80, 24
	}
	canvas := draw.NewCanvas(termWidth, termHeight, logicalWidth, logicalHeight)

	lastTime := time.Now()

	for state.Running {
		frameStart := time.Now()
		state.Delta = frameStart.Sub(lastTime)
		lastTime = frameStart

		// ===== INPUT PHASE =====
		state.Input = input.ReadInput(stream)
		if state.Input.Quit {
			state.Running = false
		}

		// ===== UPDATE PHASE =====
		if tw, th, err := opts.TermSizeFunc(); err == nil && tw > 0 && th > 0 {
			canvas.Resize(tw, th)
		}

		dt := state.Delta.Seconds()
		advanceStars(state.stars, dt)

		switch session.Phase {
		case game.PhaseTitle:
			updateTitleState(state, stream)
		case game.PhasePlaying:
			updatePlayingState(state)
		case game.PhaseGameOver:
			updateGameOverState(state, stream)
		}

		// A pending orb replenishment applies in any phase; stepping the
		// session outside the playing phase only folds those in.
		if session.Phase != game.PhasePlaying {
			session.Step(state.Ship)
		}

		// ===== DRAW PHASE =====
		draw.ClearScreen(w)
		canvas.Clear()
		drawScene(state, canvas)
		canvas.Render(w)
		drawUI(state, w, canvas)

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < targetFrameTime {
			time.Sleep(targetFrameTime - elapsed)
		}
	}

	draw.ClearScreen(w)
	return nil
}

// updatePlayingState advances one gameplay frame: pointer and ship
// movement, obstacle drift, then collision evaluation against the ship's
// position snapshot.
func updatePlayingState(state *State) {
	dt := state.Delta.Seconds()

	if state.hitFlash > 0 {
		state.hitFlash -= dt
		if state.hitFlash < 0 {
			state.hitFlash = 0
		}
	}

	state.updateTarget(dt)
	state.easeShip(dt)
	state.Session.AdvanceObstacles(dt)

	for _, ev := range state.Session.Step(state.Ship) {
		if ev.Type == game.EventHit {
			state.hitFlash = hitFlashSeconds
		}
	}
}
