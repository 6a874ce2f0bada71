package game

import "github.com/diegok/solopong/internal/snapshot"

// Paddle dimensions and speeds, in court units and units per second.
const (
	PaddleWidth  = 12.0
	PaddleHeight = 100.0

	PlayerSpeed   = 420.0 // human paddle
	AIMaxSpeed    = 400.0 // AI while tracking the ball
	RecenterSpeed = 200.0 // AI while the ball moves away

	// SmoothGain converts distance-to-target into desired velocity before
	// the speed clamp applies, so the paddle eases off as it nears its
	// target instead of reversing instantly.
	SmoothGain = 6.0
)

// Paddle is one player's paddle. X is the fixed left edge for its side,
// Y is the vertical center and the only coordinate that moves.
type Paddle struct {
	Side        snapshot.Side
	X           float64
	Y           float64
	Width       float64
	Height      float64
	Velocity    float64 // current signed vertical speed
	CourtHeight float64
}

func NewPaddle(side snapshot.Side, x, courtHeight float64) *Paddle {
	return &Paddle{
		Side:        side,
		X:           x,
		Y:           courtHeight / 2,
		Width:       PaddleWidth,
		Height:      PaddleHeight,
		CourtHeight: courtHeight,
	}
}

// ApplyInput moves the paddle from a held direction at PlayerSpeed.
func (p *Paddle) ApplyInput(dir snapshot.Direction, dt float64) {
	switch dir {
	case snapshot.DirUp:
		p.Velocity = -PlayerSpeed
	case snapshot.DirDown:
		p.Velocity = PlayerSpeed
	default:
		p.Velocity = 0
	}

	p.Y += p.Velocity * dt
	p.Clamp()
}

// MoveTowards steers the paddle toward targetY using proportional control
// clamped to maxSpeed. Velocity scales with remaining distance, which gives
// the smoothing the AI relies on to avoid inhuman direction snaps.
func (p *Paddle) MoveTowards(targetY, maxSpeed, dt float64) {
	desired := SmoothGain * (targetY - p.Y)
	if desired > maxSpeed {
		desired = maxSpeed
	}
	if desired < -maxSpeed {
		desired = -maxSpeed
	}

	p.Velocity = desired
	p.Y += p.Velocity * dt
	p.Clamp()
}

// Clamp keeps the whole paddle body inside the court.
func (p *Paddle) Clamp() {
	half := p.Height / 2
	if p.Y < half {
		p.Y = half
	}
	if p.Y > p.CourtHeight-half {
		p.Y = p.CourtHeight - half
	}
}

func (p *Paddle) Top() float64 {
	return p.Y - p.Height/2
}

func (p *Paddle) Bottom() float64 {
	return p.Y + p.Height/2
}
