package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/solopong/internal/snapshot"
)

const (
	BallChar   = '⬤' // ⬤
	PaddleChar = '█' // █
)

// Renderer draws match snapshots onto the terminal, scaling the logical
// court down to whatever size the terminal happens to be.
type Renderer struct {
	screen *Screen
}

func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// RenderMatch draws one frame: court, paddles, ball, scoreboard, and any
// phase overlay (serve prompt or winner banner).
func (r *Renderer) RenderMatch(state snapshot.MatchState) {
	r.screen.Clear()
	screenW, screenH := r.screen.Size()

	// Row 0 holds the scoreboard, the last row the key hints; the court is
	// squeezed into everything between.
	courtTop := 1
	courtH := screenH - 2
	scaleX := float64(screenW) / state.CourtWidth
	scaleY := float64(courtH) / state.CourtHeight

	courtStyle := tcell.StyleDefault.Background(tcell.ColorBlack)
	r.screen.FillRect(0, courtTop, screenW, courtH, courtStyle, ' ')

	// Center dashed line
	centerX := screenW / 2
	lineStyle := tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	for y := courtTop; y < courtTop+courtH; y += 2 {
		r.screen.SetCell(centerX, y, lineStyle, '|')
	}

	r.renderScoreboard(state, screenW)

	r.renderPaddle(state.Player, tcell.ColorGreen, scaleX, scaleY, courtTop, courtH)
	r.renderPaddle(state.Opponent, tcell.ColorRed, scaleX, scaleY, courtTop, courtH)

	// Ball is hidden while it sits parked between points
	if state.Phase == snapshot.PhaseInPlay {
		ballX := int(state.Ball.X * scaleX)
		ballY := int(state.Ball.Y*scaleY) + courtTop
		if ballX >= 0 && ballX < screenW && ballY >= courtTop && ballY < courtTop+courtH {
			ballStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
			r.screen.SetCell(ballX, ballY, ballStyle, BallChar)
		}
	}

	switch state.Phase {
	case snapshot.PhaseWaitingServe:
		r.renderServePrompt(state, screenW, screenH)
	case snapshot.PhaseOver:
		r.renderWinner(state, screenW, screenH)
	}

	// Key hints at the bottom
	hintY := screenH - 1
	hintStyle := tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorWhite)
	for x := 0; x < screenW; x++ {
		r.screen.SetCell(x, hintY, hintStyle, ' ')
	}
	hint := fmt.Sprintf(" w/s or arrows: move | space: serve | q: quit | first to %d", state.PointsToWin)
	r.screen.DrawText(0, hintY, hint, hintStyle)

	r.screen.Show()
}

func (r *Renderer) renderPaddle(p snapshot.PaddleState, color tcell.Color, scaleX, scaleY float64, courtTop, courtH int) {
	style := tcell.StyleDefault.Foreground(color)

	x := int(p.X * scaleX)
	centerY := int(p.Y*scaleY) + courtTop
	height := int(p.Height * scaleY)
	if height < 1 {
		height = 1
	}

	top := centerY - height/2
	for dy := 0; dy < height; dy++ {
		py := top + dy
		if py >= courtTop && py < courtTop+courtH {
			r.screen.SetCell(x, py, style, PaddleChar)
		}
	}
}

// renderScoreboard draws the score line at top center: [ YOU 3 - 2 CPU ]
func (r *Renderer) renderScoreboard(state snapshot.MatchState, screenW int) {
	board := fmt.Sprintf("[ YOU %d - %d CPU ]", state.LeftScore, state.RightScore)
	boardX := (screenW - len(board)) / 2

	base := tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorWhite).Bold(true)
	r.screen.DrawText(boardX, 0, board, base)

	// Recolor the side labels over the base text
	youStyle := base.Foreground(tcell.ColorGreen)
	cpuStyle := base.Foreground(tcell.ColorRed)
	r.screen.DrawText(boardX+2, 0, "YOU", youStyle)
	r.screen.DrawText(boardX+len(board)-5, 0, "CPU", cpuStyle)
}

// renderServePrompt draws the centered serve box while waiting for a serve.
func (r *Renderer) renderServePrompt(state snapshot.MatchState, screenW, screenH int) {
	boxW := 32
	boxH := 5
	boxX := (screenW - boxW) / 2
	boxY := (screenH - boxH) / 2

	boxStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	r.screen.DrawBox(boxX, boxY, boxW, boxH, boxStyle)

	fill := tcell.StyleDefault.Background(tcell.ColorDarkGray)
	r.screen.FillRect(boxX+1, boxY+1, boxW-2, boxH-2, fill, ' ')

	var who string
	if state.ServingSide == snapshot.SideLeft {
		who = "Serving to YOU"
	} else {
		who = "Serving to CPU"
	}
	whoX := (screenW - len(who)) / 2
	r.screen.DrawText(whoX, boxY+1, who, fill.Foreground(tcell.ColorYellow))

	prompt := "Press SPACE to serve"
	promptX := (screenW - len(prompt)) / 2
	r.screen.DrawText(promptX, boxY+3, prompt, fill.Foreground(tcell.ColorGreen))
}

// renderWinner draws the end-of-match banner.
func (r *Renderer) renderWinner(state snapshot.MatchState, screenW, screenH int) {
	var banner string
	var style tcell.Style
	if state.Winner == snapshot.SideLeft {
		banner = "YOU WIN!"
		style = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	} else {
		banner = "CPU WINS!"
		style = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	}

	bannerX := (screenW - len(banner)) / 2
	r.screen.DrawText(bannerX, screenH/2-1, banner, style)

	again := "Press ENTER for a rematch | 'q' to quit"
	againX := (screenW - len(again)) / 2
	r.screen.DrawText(againX, screenH/2+1, again, tcell.StyleDefault.Foreground(tcell.ColorGray))
}

// RenderError displays an error screen and waits for the caller to decide
// what to do next.
func (r *Renderer) RenderError(err string) {
	r.screen.Clear()
	screenW, screenH := r.screen.Size()

	title := "ERROR"
	titleX := (screenW - len(title)) / 2
	r.screen.DrawText(titleX, screenH/2-2, title, tcell.StyleDefault.Bold(true).Foreground(tcell.ColorRed))

	maxErrLen := screenW - 4
	msg := err
	if len(msg) > maxErrLen {
		msg = msg[:maxErrLen-3] + "..."
	}
	msgX := (screenW - len(msg)) / 2
	r.screen.DrawText(msgX, screenH/2, msg, tcell.StyleDefault.Foreground(tcell.ColorWhite))

	hint := "Press any key to exit"
	hintX := (screenW - len(hint)) / 2
	r.screen.DrawText(hintX, screenH/2+3, hint, tcell.StyleDefault.Foreground(tcell.ColorGray))

	r.screen.Show()
}
