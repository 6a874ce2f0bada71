package game

import (
	"math"
	"math/rand"

	"github.com/diegok/solopong/internal/snapshot"
)

// Ball physics constants, in court units and units per second.
const (
	BallSize         = 12.0
	InitialBallSpeed = 360.0
	MaxBallSpeed     = 720.0
	SpeedUpFactor    = 1.05               // applied on every paddle hit
	MaxBounceAngle   = 50 * math.Pi / 180 // steepest exit angle off a paddle edge
	MaxServeAngle    = 30 * math.Pi / 180
)

// Ball is the ball in flight. X,Y is the center, velocity is units/second.
type Ball struct {
	X, Y   float64
	VX, VY float64
	Size   float64
}

func NewBall(x, y float64) *Ball {
	return &Ball{X: x, Y: y, Size: BallSize}
}

// Advance moves the ball by its velocity over dt seconds.
func (b *Ball) Advance(dt float64) {
	b.X += b.VX * dt
	b.Y += b.VY * dt
}

// Half returns the distance from the ball's center to any of its edges.
func (b *Ball) Half() float64 {
	return b.Size / 2
}

// CollideWalls reflects the ball off the top and bottom court bounds. A
// bounce only happens when the ball is actually moving toward the wall it
// crossed, and the ball's edge is placed back exactly on the boundary.
func (b *Ball) CollideWalls(courtHeight float64) bool {
	bounced := false

	if b.Y-b.Half() <= 0 && b.VY < 0 {
		b.Y = b.Half()
		b.VY = -b.VY
		bounced = true
	}
	if b.Y+b.Half() >= courtHeight && b.VY > 0 {
		b.Y = courtHeight - b.Half()
		b.VY = -b.VY
		bounced = true
	}

	return bounced
}

// CollidePaddle bounces the ball off a paddle when their boxes overlap while
// the ball moves toward that paddle's side. The exit angle depends on where
// the ball struck relative to the paddle center, so edge hits come off
// steeper, and speed grows by SpeedUpFactor up to MaxBallSpeed.
func (b *Ball) CollidePaddle(p *Paddle) bool {
	if !b.overlaps(p) {
		return false
	}

	// Only collide when the ball is heading at the paddle, never when it is
	// already on its way back out.
	if p.Side == snapshot.SideLeft && b.VX >= 0 {
		return false
	}
	if p.Side == snapshot.SideRight && b.VX <= 0 {
		return false
	}

	// Impact offset from paddle center, -1 at the top edge to 1 at the bottom
	offset := (b.Y - p.Y) / (p.Height / 2)
	if offset < -1 {
		offset = -1
	}
	if offset > 1 {
		offset = 1
	}

	speed := b.Speed() * SpeedUpFactor
	if speed > MaxBallSpeed {
		speed = MaxBallSpeed
	}

	angle := offset * MaxBounceAngle
	b.VX = speed * math.Cos(angle)
	b.VY = speed * math.Sin(angle)

	// Send the ball back toward the other side and nudge it clear of the
	// paddle so the same hit cannot register again next tick.
	if p.Side == snapshot.SideLeft {
		b.X = p.X + p.Width + b.Half()
	} else {
		b.VX = -b.VX
		b.X = p.X - b.Half()
	}

	return true
}

func (b *Ball) overlaps(p *Paddle) bool {
	return b.X+b.Half() >= p.X && b.X-b.Half() <= p.X+p.Width &&
		b.Y+b.Half() >= p.Top() && b.Y-b.Half() <= p.Bottom()
}

// Speed returns the velocity magnitude.
func (b *Ball) Speed() float64 {
	return math.Sqrt(b.VX*b.VX + b.VY*b.VY)
}

// Serve places the ball at the given point and launches it toward the given
// side at InitialBallSpeed, with a random angle within MaxServeAngle off
// horizontal so rallies don't degenerate into straight lines.
func (b *Ball) Serve(centerX, centerY float64, toward snapshot.Side, rng *rand.Rand) {
	b.X = centerX
	b.Y = centerY

	angle := (rng.Float64()*2 - 1) * MaxServeAngle
	b.VX = InitialBallSpeed * math.Cos(angle)
	b.VY = InitialBallSpeed * math.Sin(angle)
	if toward == snapshot.SideLeft {
		b.VX = -b.VX
	}
}

// Stop parks the ball at the given point with zero velocity (between points).
func (b *Ball) Stop(centerX, centerY float64) {
	b.X = centerX
	b.Y = centerY
	b.VX = 0
	b.VY = 0
}
