package game

import (
	"math/rand"

	"github.com/diegok/solopong/internal/snapshot"
)

// Court dimensions and match constants.
const (
	CourtWidth  = 800.0
	CourtHeight = 600.0
	CourtMargin = 20.0 // gap between each paddle and its baseline

	// MaxFrameDelta bounds dt so a stalled frame cannot teleport entities
	// through paddles or walls.
	MaxFrameDelta = 0.05

	DefaultPointsToWin = 11
)

// Match owns the ball, both paddles and the scores, and runs one simulation
// tick at a time. All motion is scaled by dt, so the tick rate of the caller
// doesn't change gameplay.
type Match struct {
	Width  float64
	Height float64

	Ball     *Ball
	Player   *Paddle // left side, human input
	Opponent *Paddle // right side, AI controlled
	ai       *AI

	LeftScore   int
	RightScore  int
	PointsToWin int

	Phase       snapshot.Phase
	ServingSide snapshot.Side
	Winner      snapshot.Side

	rng *rand.Rand
}

// NewMatch creates a match ready for its opening serve. The random source is
// injected so serve angles and AI aim are reproducible under a fixed seed.
func NewMatch(pointsToWin int, rng *rand.Rand) *Match {
	m := &Match{
		Width:       CourtWidth,
		Height:      CourtHeight,
		PointsToWin: pointsToWin,
		rng:         rng,
	}

	m.Player = NewPaddle(snapshot.SideLeft, CourtMargin, CourtHeight)
	m.Opponent = NewPaddle(snapshot.SideRight, CourtWidth-CourtMargin-PaddleWidth, CourtHeight)
	m.ai = NewAI(m.Opponent, rng)
	m.Ball = NewBall(CourtWidth/2, CourtHeight/2)

	m.Phase = snapshot.PhaseWaitingServe
	m.ServingSide = snapshot.Side(rng.Intn(2)) // opening serve to a random side

	return m
}

// Update runs one simulation tick. dt is in seconds and gets clamped before
// any motion math; dir is the human paddle's held direction.
func (m *Match) Update(dt float64, dir snapshot.Direction) {
	dt = clampDelta(dt)

	m.Player.ApplyInput(dir, dt)
	m.ai.Update(dt, m.Ball, m.Phase == snapshot.PhaseInPlay)

	if m.Phase != snapshot.PhaseInPlay {
		return
	}

	m.Ball.Advance(dt)

	// Walls resolve before paddles: a ball arriving in a corner gets its
	// vertical direction fixed first, then the paddle sets the exit angle.
	m.Ball.CollideWalls(m.Height)
	if !m.Ball.CollidePaddle(m.Player) {
		m.Ball.CollidePaddle(m.Opponent)
	}

	m.checkScore()
}

// OutOfBounds reports which baseline the ball has fully crossed, if any.
func (m *Match) OutOfBounds() (snapshot.Side, bool) {
	if m.Ball.X+m.Ball.Half() < 0 {
		return snapshot.SideLeft, true
	}
	if m.Ball.X-m.Ball.Half() > m.Width {
		return snapshot.SideRight, true
	}
	return 0, false
}

// checkScore awards a point when the ball leaves the court, parks the ball
// and hands the serve to the side that conceded.
func (m *Match) checkScore() {
	out, scored := m.OutOfBounds()
	if !scored {
		return
	}

	if out == snapshot.SideLeft {
		m.RightScore++
	} else {
		m.LeftScore++
	}
	m.ServingSide = out

	m.Ball.Stop(m.Width/2, m.Height/2)

	if m.LeftScore >= m.PointsToWin || m.RightScore >= m.PointsToWin {
		m.Phase = snapshot.PhaseOver
		if m.LeftScore >= m.PointsToWin {
			m.Winner = snapshot.SideLeft
		} else {
			m.Winner = snapshot.SideRight
		}
		return
	}

	m.Phase = snapshot.PhaseWaitingServe
}

// Serve puts the ball back in play toward the serving side. Returns false
// when the match isn't waiting for a serve.
func (m *Match) Serve() bool {
	if m.Phase != snapshot.PhaseWaitingServe {
		return false
	}

	m.Ball.Serve(m.Width/2, m.Height/2, m.ServingSide, m.rng)
	m.Phase = snapshot.PhaseInPlay
	return true
}

// Reset starts a fresh match: scores cleared, entities recentered, a new
// random opening serve. The AI keeps its controller state; there is nothing
// in it worth resetting.
func (m *Match) Reset() {
	m.LeftScore = 0
	m.RightScore = 0
	m.Player.Y = m.Height / 2
	m.Opponent.Y = m.Height / 2
	m.Ball.Stop(m.Width/2, m.Height/2)
	m.Phase = snapshot.PhaseWaitingServe
	m.ServingSide = snapshot.Side(m.rng.Intn(2))
}

// Snapshot returns a read-only copy of the state for rendering.
func (m *Match) Snapshot() snapshot.MatchState {
	return snapshot.MatchState{
		Ball: snapshot.BallState{
			X: m.Ball.X, Y: m.Ball.Y,
			VX: m.Ball.VX, VY: m.Ball.VY,
			Size: m.Ball.Size,
		},
		Player:      paddleState(m.Player),
		Opponent:    paddleState(m.Opponent),
		LeftScore:   m.LeftScore,
		RightScore:  m.RightScore,
		CourtWidth:  m.Width,
		CourtHeight: m.Height,
		PointsToWin: m.PointsToWin,
		Phase:       m.Phase,
		ServingSide: m.ServingSide,
		Winner:      m.Winner,
	}
}

func paddleState(p *Paddle) snapshot.PaddleState {
	return snapshot.PaddleState{
		Side:   p.Side,
		X:      p.X,
		Y:      p.Y,
		Width:  p.Width,
		Height: p.Height,
	}
}

// clampDelta bounds the frame delta to a sane, non-negative value.
func clampDelta(dt float64) float64 {
	if dt < 0 {
		return 0
	}
	if dt > MaxFrameDelta {
		return MaxFrameDelta
	}
	return dt
}
