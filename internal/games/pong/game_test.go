package pong

import (
	"math/rand"
	"testing"

	"github.com/mvasiliev/arcade-core/internal/core"
)

func TestDeterminism(t *testing.T) {
	// Two games with the same seed and the same inputs must produce
	// identical snapshots tick for tick.
	rc := core.RuntimeConfig{
		Seed:    12345,
		ScreenW: 80,
		ScreenH: 24,
	}

	g1 := New()
	g1.Reset(rc)

	g2 := New()
	g2.Reset(rc)

	input := core.NewInputFrame()
	for i := 0; i < 600; i++ {
		input.Clear()
		if i == 0 {
			input.Set(core.ActionStart)
		}
		if i > 100 && i < 160 {
			input.Set(core.ActionUp)
		}
		if i > 300 && i < 360 {
			input.Set(core.ActionDown)
		}

		g1.Step(input)
		g2.Step(input)
	}

	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("Snapshot mismatch:\n  %+v\n  %+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestStartFromMenu(t *testing.T) {
	cfg := testConfig()
	rng := rand.New(rand.NewSource(1))
	s := NewState(cfg, perfectAI(), "test-session")

	if s.Phase != core.PhaseMenu {
		t.Fatalf("Fresh state should be in menu, got %v", s.Phase)
	}

	// Ticks without Start stay in the menu.
	s = Advance(cfg, s, Input{}, 1.0/60, rng)
	if s.Phase != core.PhaseMenu {
		t.Errorf("Phase changed without Start: %v", s.Phase)
	}

	s = Advance(cfg, s, Input{Start: true}, 1.0/60, rng)
	if s.Phase != core.PhasePlaying {
		t.Errorf("Expected playing phase after Start, got %v", s.Phase)
	}
	if s.BallInPlay {
		t.Error("Ball should wait out the serve delay")
	}
	if s.ServeTimer != cfg.Gameplay.ServeDelay {
		t.Errorf("Serve timer = %v, want %v", s.ServeTimer, cfg.Gameplay.ServeDelay)
	}
}

func TestServeCountdownLaunchesBall(t *testing.T) {
	cfg := testConfig()
	rng := rand.New(rand.NewSource(2))
	s := NewState(cfg, perfectAI(), "test-session")
	s = Advance(cfg, s, Input{Start: true}, 1.0/60, rng)

	dt := 1.0 / 60
	ticks := int(cfg.Gameplay.ServeDelay/dt) + 2
	for i := 0; i < ticks; i++ {
		s = Advance(cfg, s, Input{}, dt, rng)
	}

	if !s.BallInPlay {
		t.Fatal("Ball should be in play after the serve delay")
	}
	if s.Ball.Speed() == 0 {
		t.Error("Launched ball has zero velocity")
	}

	// Ball launches away from the serving side.
	if s.ServingSide == SideLeft && s.Ball.Vel.X <= 0 {
		t.Errorf("Left serve should travel right, got vx=%v", s.Ball.Vel.X)
	}
	if s.ServingSide == SideRight && s.Ball.Vel.X >= 0 {
		t.Errorf("Right serve should travel left, got vx=%v", s.Ball.Vel.X)
	}
}

func TestGoalAwardsPointAndHandsServe(t *testing.T) {
	cfg := testConfig()
	rng := rand.New(rand.NewSource(3))
	s := NewState(cfg, perfectAI(), "test-session")
	s.Phase = core.PhasePlaying
	s.BallInPlay = true

	// Ball about to cross the left boundary, clear of the left paddle.
	s.Ball.Pos = core.Vec2{X: 3, Y: 50}
	s.Ball.Vel = core.Vec2{X: -400, Y: 0}
	s.Ball.RallyCount = 4

	s = Advance(cfg, s, Input{}, 1.0/60, rng)

	if s.RightScore.Score != 1 {
		t.Errorf("Right score = %d, want 1", s.RightScore.Score)
	}
	if s.LeftScore.Score != 0 {
		t.Errorf("Left score = %d, want 0", s.LeftScore.Score)
	}
	if s.RightScore.RalliesWon != 1 {
		t.Errorf("Right rallies won = %d, want 1", s.RightScore.RalliesWon)
	}
	if s.RightScore.LongestRally != 4 {
		t.Errorf("Right longest rally = %d, want 4", s.RightScore.LongestRally)
	}

	// The conceding side serves next, after a fresh countdown.
	if s.BallInPlay {
		t.Error("Ball should leave play after a goal")
	}
	if s.ServingSide != SideLeft {
		t.Errorf("Serving side = %v, want left (conceded)", s.ServingSide)
	}
	if s.Ball.SpeedMultiplier != 1 {
		t.Errorf("Speed multiplier should reset on serve, got %v", s.Ball.SpeedMultiplier)
	}
	if s.Ball.RallyCount != 0 {
		t.Errorf("Rally count should reset on serve, got %d", s.Ball.RallyCount)
	}
}

func TestWinEndsGame(t *testing.T) {
	cfg := testConfig()
	rng := rand.New(rand.NewSource(4))
	s := NewState(cfg, perfectAI(), "test-session")
	s.Phase = core.PhasePlaying
	s.BallInPlay = true
	s.LeftScore.Score = cfg.Gameplay.WinScore - 1

	// Left side scores the match point.
	s.Ball.Pos = core.Vec2{X: cfg.Court.Width - 3, Y: 50}
	s.Ball.Vel = core.Vec2{X: 400, Y: 0}

	s = Advance(cfg, s, Input{}, 1.0/60, rng)

	if s.Phase != core.PhaseGameOver {
		t.Fatalf("Expected game over, got %v", s.Phase)
	}
	if !s.Win.HasWinner || s.Win.Winner != SideLeft {
		t.Errorf("Win = %+v, want left winner", s.Win)
	}

	// Game over is terminal: further ticks change nothing but the counter.
	before := s
	s = Advance(cfg, s, Input{Start: true, Left: MoveUp}, 1.0/60, rng)
	if s.Phase != core.PhaseGameOver {
		t.Errorf("Game over should be terminal, got %v", s.Phase)
	}
	if s.LeftScore != before.LeftScore || s.RightScore != before.RightScore {
		t.Error("Scores changed after game over")
	}
}

func TestPauseRoundTrip(t *testing.T) {
	cfg := testConfig()
	rng := rand.New(rand.NewSource(5))
	s := NewState(cfg, perfectAI(), "test-session")
	s.Phase = core.PhasePlaying
	s.BallInPlay = true
	s.Ball.Pos = core.Vec2{X: 400, Y: 300}
	s.Ball.Vel = core.Vec2{X: 400, Y: 100}

	s = Advance(cfg, s, Input{Pause: true}, 1.0/60, rng)
	if s.Phase != core.PhasePaused {
		t.Fatalf("Expected paused, got %v", s.Phase)
	}

	// Simulation is frozen while paused.
	frozen := s.Ball
	s = Advance(cfg, s, Input{}, 1.0/60, rng)
	if s.Ball != frozen {
		t.Error("Ball moved while paused")
	}

	s = Advance(cfg, s, Input{Pause: true}, 1.0/60, rng)
	if s.Phase != core.PhasePlaying {
		t.Errorf("Expected playing after unpause, got %v", s.Phase)
	}
}

func TestHumanPaddleStaysInCourt(t *testing.T) {
	cfg := testConfig()
	rng := rand.New(rand.NewSource(6))
	s := NewState(cfg, perfectAI(), "test-session")
	s.Phase = core.PhasePlaying
	s.BallInPlay = true
	s.Ball.Pos = core.Vec2{X: 400, Y: 300}
	s.Ball.Vel = core.Vec2{X: 50, Y: 0}

	// Hold up well past the time needed to reach the wall.
	for i := 0; i < 600; i++ {
		s = Advance(cfg, s, Input{Left: MoveUp}, 1.0/60, rng)
		if s.Left.Pos.Y < 0 {
			t.Fatalf("Paddle above court at y=%v", s.Left.Pos.Y)
		}
	}
	if s.Left.Pos.Y != 0 {
		t.Errorf("Paddle should rest at the top wall, got y=%v", s.Left.Pos.Y)
	}

	for i := 0; i < 600; i++ {
		s = Advance(cfg, s, Input{Left: MoveDown}, 1.0/60, rng)
		if s.Left.Pos.Y+s.Left.Height > cfg.Court.Height {
			t.Fatalf("Paddle below court at y=%v", s.Left.Pos.Y)
		}
	}
}

func TestScoresMonotone(t *testing.T) {
	rc := core.RuntimeConfig{Seed: 777, ScreenW: 80, ScreenH: 24}

	g := New()
	g.Reset(rc)

	input := core.NewInputFrame()
	input.Set(core.ActionStart)
	g.Step(input)
	input.Clear()

	prevL, prevR := 0, 0
	for i := 0; i < 20000; i++ {
		g.Step(input)
		snap := g.Snapshot()
		if snap.LeftScore < prevL || snap.RightScore < prevR {
			t.Fatalf("Score decreased at tick %d: left %d->%d right %d->%d",
				i, prevL, snap.LeftScore, prevR, snap.RightScore)
		}
		prevL, prevR = snap.LeftScore, snap.RightScore
		if snap.Phase == core.PhaseGameOver {
			break
		}
	}
}

func TestBallSpeedBoundedDuringPlay(t *testing.T) {
	cfg := testConfig()
	rc := core.RuntimeConfig{Seed: 99, ScreenW: 80, ScreenH: 24}

	g := New()
	g.Reset(rc)

	input := core.NewInputFrame()
	input.Set(core.ActionStart)
	g.Step(input)
	input.Clear()

	for i := 0; i < 10000; i++ {
		g.Step(input)
		snap := g.Snapshot()
		speed := core.Vec2{X: snap.BallVelX, Y: snap.BallVelY}.Len()
		if snap.BallInPlay && speed > cfg.Ball.MaxSpeed+1e-6 {
			t.Fatalf("Ball speed %v exceeds max %v at tick %d", speed, cfg.Ball.MaxSpeed, i)
		}
		if snap.Phase == core.PhaseGameOver {
			break
		}
	}
}
