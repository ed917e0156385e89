package pong

import (
	"math"
	"math/rand"
	"testing"

	"github.com/mvasiliev/arcade-core/internal/config"
	"github.com/mvasiliev/arcade-core/internal/core"
)

func perfectAI() config.AITier {
	return config.AITier{
		ReactionTime:       0.1,
		PredictionAccuracy: 1.0,
		SpeedMultiplier:    1.0,
		ErrorMargin:        80,
		MakeMistakes:       false,
	}
}

func TestPredictBallYStraightLine(t *testing.T) {
	cfg := testConfig()
	rng := rand.New(rand.NewSource(1))

	b := Ball{
		Pos: core.Vec2{X: 400, Y: 300},
		Vel: core.Vec2{X: 400, Y: 50},
	}
	paddleX := 764.0

	// Perfect accuracy with no mistakes: the prediction is exact.
	got := PredictBallY(b, paddleX, perfectAI(), cfg, rng)
	want := 300 + 50*(paddleX-400)/400

	if math.Abs(got-want) > 1e-9 {
		t.Errorf("PredictBallY = %v, want %v", got, want)
	}
}

func TestPredictBallYFoldsWallBounce(t *testing.T) {
	cfg := testConfig()
	rng := rand.New(rand.NewSource(1))

	b := Ball{
		Pos: core.Vec2{X: 400, Y: 500},
		Vel: core.Vec2{X: 400, Y: 300},
	}
	paddleX := 764.0

	got := PredictBallY(b, paddleX, perfectAI(), cfg, rng)

	raw := 500 + 300*(paddleX-400)/400
	want := 2*cfg.Court.Height - raw // reflected off the bottom wall

	if math.Abs(got-want) > 1e-9 {
		t.Errorf("PredictBallY = %v, want %v (raw %v)", got, want, raw)
	}
}

func TestPredictBallYBallMovingAway(t *testing.T) {
	cfg := testConfig()
	rng := rand.New(rand.NewSource(1))

	b := Ball{
		Pos: core.Vec2{X: 400, Y: 250},
		Vel: core.Vec2{X: -400, Y: 0}, // moving toward the left paddle
	}

	// Predicting for the right paddle while the ball recedes: fall back to
	// the ball's current Y.
	if got := PredictBallY(b, 764, perfectAI(), cfg, rng); got != 250 {
		t.Errorf("Receding ball should predict current Y=250, got %v", got)
	}

	b.Vel.X = 0
	if got := PredictBallY(b, 764, perfectAI(), cfg, rng); got != 250 {
		t.Errorf("Stationary ball should predict current Y=250, got %v", got)
	}
}

func TestPredictBallYClampsToCourt(t *testing.T) {
	cfg := testConfig()
	ai := perfectAI()
	ai.PredictionAccuracy = 0
	ai.ErrorMargin = 10000 // force predictions far outside the court

	rng := rand.New(rand.NewSource(7))
	b := Ball{
		Pos: core.Vec2{X: 400, Y: 300},
		Vel: core.Vec2{X: 400, Y: 0},
	}

	for i := 0; i < 50; i++ {
		y := PredictBallY(b, 764, ai, cfg, rng)
		if y < 0 || y > cfg.Court.Height {
			t.Fatalf("Prediction %v outside court [0, %v]", y, cfg.Court.Height)
		}
	}
}

func TestUpdateAITracksBall(t *testing.T) {
	cfg := testConfig()
	rng := rand.New(rand.NewSource(1))
	dt := 1.0 / 60

	p := Paddle{
		Side:   SideRight,
		Pos:    core.Vec2{X: 764, Y: 260},
		Width:  cfg.Paddle.Width,
		Height: cfg.Paddle.Height,
		IsAI:   true,
	}
	b := Ball{
		Pos: core.Vec2{X: 200, Y: 100},
		Vel: core.Vec2{X: 300, Y: 0}, // approaching, flat trajectory at y=100
	}

	before := math.Abs(p.CenterY() - 100)
	for i := 0; i < 120; i++ { // 2 seconds
		p = UpdateAI(p, b, perfectAI(), cfg, dt, rng)
	}
	after := math.Abs(p.CenterY() - 100)

	if after >= before {
		t.Errorf("AI paddle did not close on the ball: before=%v after=%v", before, after)
	}
	if after > 15 {
		t.Errorf("AI paddle should be near the intercept, off by %v", after)
	}
}

func TestUpdateAIStaysInCourt(t *testing.T) {
	cfg := testConfig()
	rng := rand.New(rand.NewSource(3))
	dt := 1.0 / 60

	p := Paddle{
		Side:   SideRight,
		Pos:    core.Vec2{X: 764, Y: 0},
		Width:  cfg.Paddle.Width,
		Height: cfg.Paddle.Height,
		IsAI:   true,
	}
	b := Ball{
		Pos: core.Vec2{X: 100, Y: 0},
		Vel: core.Vec2{X: 500, Y: -500}, // aimed at the top corner
	}

	for i := 0; i < 300; i++ {
		p = UpdateAI(p, b, perfectAI(), cfg, dt, rng)
		if p.Pos.Y < 0 || p.Pos.Y+p.Height > cfg.Court.Height {
			t.Fatalf("Paddle out of bounds at y=%v", p.Pos.Y)
		}
	}
}
