package loop

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/clonkbot/neon-orb-catcher-f2a73c/internal/draw"
	"github.com/clonkbot/neon-orb-catcher-f2a73c/internal/game"
	"github.com/clonkbot/neon-orb-catcher-f2a73c/internal/input"
)

var (
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true)
	promptStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	hudStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true)
	livesStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("201"))
	gameOverStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	recordStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true)
)

// updateTitleState waits on the title screen for the start action.
func updateTitleState(state *State, stream *input.Stream) {
	if state.Input.Start {
		startGame(state, stream)
	}
}

// updateGameOverState waits on the game-over screen for a restart.
// Obstacles keep drifting behind the overlay.
func updateGameOverState(state *State, stream *input.Stream) {
	state.Session.AdvanceObstacles(state.Delta.Seconds())
	if state.Input.Start {
		startGame(state, stream)
	}
}

// startGame begins a fresh run and recenters the ship and pointer.
func startGame(state *State, stream *input.Stream) {
	input.ResetKeyState(stream)
	state.Ship = shipSpawn
	state.Target = shipSpawn
	state.hitFlash = 0
	state.Session.Start()
}

// drawUI draws the text overlay for the current phase.
func drawUI(state *State, w io.Writer, canvas *draw.Canvas) {
	termWidth := canvas.TerminalWidth()
	termHeight := canvas.TerminalHeight()
	centerX := termWidth / 2
	centerY := termHeight / 2

	switch state.Session.Phase {
	case game.PhaseTitle:
		drawTitleScreen(state, w, centerX, centerY)
	case game.PhasePlaying:
		drawPlayingHUD(state, w, termWidth)
	case game.PhaseGameOver:
		drawGameOverScreen(state, w, centerX, centerY)
	}
}

// drawCentered writes styled text horizontally centered on the given row.
func drawCentered(w io.Writer, centerX, row int, text string) {
	draw.MoveCursor(w, centerX-lipgloss.Width(text)/2, row)
	fmt.Fprint(w, text)
}

func drawTitleScreen(state *State, w io.Writer, centerX, centerY int) {
	drawCentered(w, centerX, centerY-3, titleStyle.Render("N E O N   O R B   C A T C H E R"))
	drawCentered(w, centerX, centerY, promptStyle.Render("Press SPACE to start"))
	drawCentered(w, centerX, centerY+3,
		promptStyle.Render("Steer: WASD or arrows · Catch orbs, dodge the red ones · Q to quit"))

	if state.Session.HighScore > 0 {
		drawCentered(w, centerX, centerY+5,
			hudStyle.Render(fmt.Sprintf("High score %06d", state.Session.HighScore)))
	}
}

func drawPlayingHUD(state *State, w io.Writer, termWidth int) {
	sess := state.Session

	score := hudStyle.Render(fmt.Sprintf("SCORE %06d", sess.Score))
	draw.MoveCursor(w, 2, 1)
	fmt.Fprint(w, score)

	level := promptStyle.Render(fmt.Sprintf("LEVEL %d", sess.Level))
	draw.MoveCursor(w, 2, 2)
	fmt.Fprint(w, level)

	lives := livesStyle.Render(livesIndicator(sess.Lives, sess.Tuning().InitialLives))
	draw.MoveCursor(w, termWidth-lipgloss.Width(lives)-1, 1)
	fmt.Fprint(w, lives)

	if sess.HighScore > 0 {
		high := promptStyle.Render(fmt.Sprintf("HIGH %06d", sess.HighScore))
		draw.MoveCursor(w, termWidth-lipgloss.Width(high)-1, 2)
		fmt.Fprint(w, high)
	}
}

// livesIndicator renders filled slots for remaining lives and hollow
// slots for lost ones.
func livesIndicator(lives, max int) string {
	var b strings.Builder
	for i := 0; i < max; i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		if i < lives {
			b.WriteRune('◆')
		} else {
			b.WriteRune('◇')
		}
	}
	return b.String()
}

func drawGameOverScreen(state *State, w io.Writer, centerX, centerY int) {
	sess := state.Session

	drawCentered(w, centerX, centerY-3, gameOverStyle.Render("G A M E   O V E R"))
	drawCentered(w, centerX, centerY-1,
		hudStyle.Render(fmt.Sprintf("Score %06d", sess.Score)))

	if sess.Score > 0 && sess.Score == sess.HighScore {
		drawCentered(w, centerX, centerY+1, recordStyle.Render("NEW HIGH SCORE"))
	} else if sess.HighScore > 0 {
		drawCentered(w, centerX, centerY+1,
			promptStyle.Render(fmt.Sprintf("High score %06d", sess.HighScore)))
	}

	drawCentered(w, centerX, centerY+3, promptStyle.Render("Press SPACE to play again"))
}
