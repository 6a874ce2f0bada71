package game

import (
	"math"
	"math/rand"
	"testing"

	"github.com/diegok/solopong/internal/snapshot"
)

func TestBall_Advance(t *testing.T) {
	ball := NewBall(10.0, 20.0)
	ball.VX = 100.0
	ball.VY = -50.0

	ball.Advance(0.1)

	if math.Abs(ball.X-20.0) > 1e-9 {
		t.Errorf("expected X=20.0, got %f", ball.X)
	}
	if math.Abs(ball.Y-15.0) > 1e-9 {
		t.Errorf("expected Y=15.0, got %f", ball.Y)
	}
}

func TestBall_CollideWalls_Top(t *testing.T) {
	ball := NewBall(100.0, 2.0) // top edge at -4, past the bound
	ball.VX = 100.0
	ball.VY = -100.0

	if !ball.CollideWalls(CourtHeight) {
		t.Fatal("expected a bounce off the top wall")
	}

	if ball.VY != 100.0 {
		t.Errorf("expected VY=100 after bounce, got %f", ball.VY)
	}
	if ball.VX != 100.0 {
		t.Errorf("expected VX unchanged, got %f", ball.VX)
	}
	if ball.Y-ball.Half() != 0 {
		t.Errorf("expected top edge exactly on the boundary, got %f", ball.Y-ball.Half())
	}
}

func TestBall_CollideWalls_Bottom(t *testing.T) {
	ball := NewBall(100.0, CourtHeight-2.0)
	ball.VX = 50.0
	ball.VY = 100.0

	if !ball.CollideWalls(CourtHeight) {
		t.Fatal("expected a bounce off the bottom wall")
	}

	if ball.VY != -100.0 {
		t.Errorf("expected VY=-100 after bounce, got %f", ball.VY)
	}
	if ball.Y+ball.Half() != CourtHeight {
		t.Errorf("expected bottom edge exactly on the boundary, got %f", ball.Y+ball.Half())
	}
}

func TestBall_CollideWalls_MovingAway(t *testing.T) {
	// Ball overlapping the top bound but already heading down must not bounce
	ball := NewBall(100.0, 2.0)
	ball.VX = 100.0
	ball.VY = 100.0

	if ball.CollideWalls(CourtHeight) {
		t.Error("expected no bounce when moving away from the wall")
	}
	if ball.VY != 100.0 {
		t.Errorf("expected VY unchanged, got %f", ball.VY)
	}
}

func TestBall_CollidePaddle_LeftReflects(t *testing.T) {
	paddle := NewPaddle(snapshot.SideLeft, 20.0, CourtHeight)
	ball := NewBall(paddle.X+paddle.Width+2, paddle.Y)
	ball.VX = -360.0
	ball.VY = 0.0

	if !ball.CollidePaddle(paddle) {
		t.Fatal("expected a collision")
	}

	if ball.VX <= 0 {
		t.Errorf("expected VX > 0 after bouncing off the left paddle, got %f", ball.VX)
	}
	// Ball must be nudged clear of the paddle face
	if ball.X-ball.Half() < paddle.X+paddle.Width {
		t.Errorf("expected ball clear of the paddle, left edge at %f", ball.X-ball.Half())
	}
}

func TestBall_CollidePaddle_RightReflects(t *testing.T) {
	paddle := NewPaddle(snapshot.SideRight, CourtWidth-20.0-PaddleWidth, CourtHeight)
	ball := NewBall(paddle.X-2, paddle.Y)
	ball.VX = 360.0
	ball.VY = 0.0

	if !ball.CollidePaddle(paddle) {
		t.Fatal("expected a collision")
	}

	if ball.VX >= 0 {
		t.Errorf("expected VX < 0 after bouncing off the right paddle, got %f", ball.VX)
	}
	if ball.X+ball.Half() > paddle.X {
		t.Errorf("expected ball clear of the paddle, right edge at %f", ball.X+ball.Half())
	}
}

func TestBall_CollidePaddle_MovingAway(t *testing.T) {
	paddle := NewPaddle(snapshot.SideLeft, 20.0, CourtHeight)
	ball := NewBall(paddle.X+paddle.Width+2, paddle.Y)
	ball.VX = 360.0 // already heading back out

	if ball.CollidePaddle(paddle) {
		t.Error("expected no collision when the ball moves away from the paddle")
	}
}

func TestBall_CollidePaddle_CenterHitIsFlat(t *testing.T) {
	paddle := NewPaddle(snapshot.SideLeft, 20.0, CourtHeight)
	ball := NewBall(paddle.X+paddle.Width+2, paddle.Y) // exact center
	ball.VX = -360.0
	ball.VY = 0.0

	ball.CollidePaddle(paddle)

	if math.Abs(ball.VY) > 1e-9 {
		t.Errorf("expected flat bounce for a center hit, got VY=%f", ball.VY)
	}
}

func TestBall_CollidePaddle_EdgeHitIsSteep(t *testing.T) {
	paddle := NewPaddle(snapshot.SideLeft, 20.0, CourtHeight)
	// Strike near the paddle's bottom edge
	ball := NewBall(paddle.X+paddle.Width+2, paddle.Y+paddle.Height/2-5)
	ball.VX = -360.0
	ball.VY = 0.0

	ball.CollidePaddle(paddle)

	if ball.VY <= 0 {
		t.Errorf("expected downward deflection for a bottom edge hit, got VY=%f", ball.VY)
	}
	// Exit angle must stay within the configured maximum
	angle := math.Atan2(math.Abs(ball.VY), math.Abs(ball.VX))
	if angle > MaxBounceAngle+1e-9 {
		t.Errorf("exit angle %f exceeds max %f", angle, MaxBounceAngle)
	}
}

func TestBall_CollidePaddle_SpeedsUp(t *testing.T) {
	paddle := NewPaddle(snapshot.SideLeft, 20.0, CourtHeight)
	ball := NewBall(paddle.X+paddle.Width+2, paddle.Y)
	ball.VX = -InitialBallSpeed

	ball.CollidePaddle(paddle)

	want := InitialBallSpeed * SpeedUpFactor
	if math.Abs(ball.Speed()-want) > 1e-6 {
		t.Errorf("expected speed %f after hit, got %f", want, ball.Speed())
	}
}

func TestBall_CollidePaddle_SpeedCap(t *testing.T) {
	paddle := NewPaddle(snapshot.SideLeft, 20.0, CourtHeight)
	ball := NewBall(0, paddle.Y)
	ball.VX = -InitialBallSpeed

	// Repeated hits must never drive the ball past MaxBallSpeed
	for i := 0; i < 50; i++ {
		ball.X = paddle.X + paddle.Width + 2
		ball.Y = paddle.Y
		ball.VX = -math.Abs(ball.VX)

		ball.CollidePaddle(paddle)

		if ball.Speed() > MaxBallSpeed+1e-9 {
			t.Fatalf("speed %f exceeds cap %f after %d hits", ball.Speed(), MaxBallSpeed, i+1)
		}
	}

	if math.Abs(ball.Speed()-MaxBallSpeed) > 1e-6 {
		t.Errorf("expected speed pinned at the cap, got %f", ball.Speed())
	}
}

func TestBall_Serve(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	tests := []struct {
		name   string
		toward snapshot.Side
	}{
		{"toward left", snapshot.SideLeft},
		{"toward right", snapshot.SideRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ball := NewBall(0, 0)
			ball.Serve(CourtWidth/2, CourtHeight/2, tt.toward, rng)

			if ball.X != CourtWidth/2 || ball.Y != CourtHeight/2 {
				t.Errorf("expected ball at center, got (%f, %f)", ball.X, ball.Y)
			}
			if tt.toward == snapshot.SideLeft && ball.VX >= 0 {
				t.Errorf("expected VX < 0 when serving left, got %f", ball.VX)
			}
			if tt.toward == snapshot.SideRight && ball.VX <= 0 {
				t.Errorf("expected VX > 0 when serving right, got %f", ball.VX)
			}
			if math.Abs(ball.Speed()-InitialBallSpeed) > 1e-6 {
				t.Errorf("expected serve speed %f, got %f", InitialBallSpeed, ball.Speed())
			}

			// Serve angle stays within the configured cone
			maxVY := InitialBallSpeed * math.Sin(MaxServeAngle)
			if math.Abs(ball.VY) > maxVY+1e-9 {
				t.Errorf("serve VY %f exceeds the %f bound", ball.VY, maxVY)
			}
		})
	}
}

func TestBall_Stop(t *testing.T) {
	ball := NewBall(10, 10)
	ball.VX = 300
	ball.VY = -100

	ball.Stop(CourtWidth/2, CourtHeight/2)

	if ball.VX != 0 || ball.VY != 0 {
		t.Errorf("expected zero velocity, got (%f, %f)", ball.VX, ball.VY)
	}
	if ball.X != CourtWidth/2 || ball.Y != CourtHeight/2 {
		t.Errorf("expected ball at center, got (%f, %f)", ball.X, ball.Y)
	}
}
