// Package snapshot defines the read-only state types the game core hands to
// the renderer each frame. The UI never mutates these; it only draws them.
package snapshot

// Direction represents paddle movement direction
type Direction int

const (
	DirNone Direction = 0
	DirUp   Direction = 1
	DirDown Direction = 2
)

// Side identifies one half of the court. The human plays the left side,
// the AI plays the right side.
type Side int

const (
	SideLeft  Side = 0
	SideRight Side = 1
)

// Other returns the opposite side.
func (s Side) Other() Side {
	if s == SideLeft {
		return SideRight
	}
	return SideLeft
}

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// Phase is the match lifecycle state.
type Phase int

const (
	PhaseWaitingServe Phase = iota // ball parked at center, waiting for serve key
	PhaseInPlay                    // ball live
	PhaseOver                      // someone reached the points-to-win
)

// BallState represents the ball's position and velocity
type BallState struct {
	X    float64
	Y    float64
	VX   float64
	VY   float64
	Size float64
}

// PaddleState represents a paddle's position and dimensions
type PaddleState struct {
	Side   Side
	X      float64
	Y      float64 // center
	Width  float64
	Height float64
}

// MatchState is the complete per-frame view of a match.
type MatchState struct {
	Ball        BallState
	Player      PaddleState // left paddle, human
	Opponent    PaddleState // right paddle, AI
	LeftScore   int
	RightScore  int
	CourtWidth  float64
	CourtHeight float64
	PointsToWin int
	Phase       Phase
	ServingSide Side
	Winner      Side // meaningful only when Phase == PhaseOver
}
