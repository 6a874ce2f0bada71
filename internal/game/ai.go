package game

import (
	"math"
	"math/rand"
)

// AI tuning constants. The values are chosen so the opponent is competent
// but beatable: it reacts late, aims with a drifting error, and cannot move
// faster than a human.
const (
	ReactionDelay         = 0.12 // seconds between target recomputations
	AimOffsetMax          = 22.0 // court units of aim error
	OffsetRefreshInterval = 0.6  // seconds between aim offset resamples
	RecenterRate          = 3.0  // 1/s decay of the idle target toward center
)

// AI drives the opponent paddle. It runs three independent countdown timers:
// the reaction delay gates how often it re-reads the ball, the offset refresh
// drifts its aim error over time, and per-tick smoothing caps how quickly the
// paddle itself can respond. Keeping the three independent is what makes the
// opponent feel human.
type AI struct {
	paddle *Paddle
	rng    *rand.Rand

	targetY      float64
	aimOffset    float64
	reactionLeft float64 // countdown to the next target recomputation
	offsetLeft   float64 // countdown to the next aim offset resample
}

func NewAI(paddle *Paddle, rng *rand.Rand) *AI {
	return &AI{
		paddle:  paddle,
		rng:     rng,
		targetY: paddle.CourtHeight / 2,
	}
}

// Update advances the controller by dt seconds and moves the AI paddle.
// inPlay is false while the match waits for a serve; the paddle recenters
// during that time just as it does when the ball moves away.
func (ai *AI) Update(dt float64, ball *Ball, inPlay bool) {
	// The aim error drifts on its own clock, independent of decisions.
	ai.offsetLeft -= dt
	if ai.offsetLeft <= 0 {
		ai.offsetLeft = OffsetRefreshInterval
		ai.aimOffset = (ai.rng.Float64()*2 - 1) * AimOffsetMax
	}

	if inPlay && ball.VX > 0 {
		ai.reactionLeft -= dt
		if ai.reactionLeft <= 0 {
			ai.reactionLeft = ReactionDelay
			ai.targetY = ai.predictY(ball) + ai.aimOffset
		}
		ai.paddle.MoveTowards(ai.targetY, AIMaxSpeed, dt)
		return
	}

	// Ball moving away: let the target decay back to the court center and
	// follow it at the slower recenter speed.
	center := ai.paddle.CourtHeight / 2
	decay := RecenterRate * dt
	if decay > 1 {
		decay = 1
	}
	ai.targetY += (center - ai.targetY) * decay
	ai.paddle.MoveTowards(ai.targetY, RecenterSpeed, dt)
}

// predictY extrapolates the ball linearly to the paddle's front plane,
// folding the straight-line path back into the court with a triangle wave to
// account for top/bottom wall bounces along the way.
func (ai *AI) predictY(ball *Ball) float64 {
	if ball.VX == 0 {
		return ball.Y
	}
	timeToPlane := (ai.paddle.X - ball.X) / ball.VX
	if timeToPlane <= 0 {
		return ball.Y
	}

	projected := ball.Y + ball.VY*timeToPlane

	// The ball center travels within [half, courtHeight-half]; reflecting
	// off both walls repeats with period twice that span.
	half := ball.Half()
	span := ai.paddle.CourtHeight - ball.Size
	period := 2 * span

	folded := math.Mod(projected-half, period)
	if folded < 0 {
		folded += period
	}
	if folded > span {
		folded = period - folded
	}
	return folded + half
}
