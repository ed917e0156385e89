package pong

import (
	"math"
	"math/rand"

	"github.com/mvasiliev/arcade-core/internal/config"
	"github.com/mvasiliev/arcade-core/internal/core"
)

// StartGame transitions from the menu into play and sets up the opening
// serve. The serving side is chosen by the RNG; afterwards the conceding
// side always serves.
func StartGame(cfg config.PongConfig, s State, rng *rand.Rand) State {
	if s.Phase != core.PhaseMenu {
		return s
	}
	s.Phase = core.PhasePlaying

	side := SideLeft
	if rng.Float64() < 0.5 {
		side = SideRight
	}
	return beginServe(cfg, s, side)
}

// beginServe parks the ball at court center and starts the serve delay
// countdown. The ball launches away from the serving side once the timer
// runs out.
func beginServe(cfg config.PongConfig, s State, server Side) State {
	s.Ball = Ball{
		Pos:             core.Vec2{X: cfg.Court.Width / 2, Y: cfg.Court.Height / 2},
		Radius:          cfg.Ball.Radius,
		SpeedMultiplier: 1.0,
	}
	s.BallInPlay = false
	s.ServeTimer = cfg.Gameplay.ServeDelay
	s.ServingSide = server
	return s
}

// launchBall puts the ball in play, traveling away from the server at a
// random shallow angle.
func launchBall(cfg config.PongConfig, s State, rng *rand.Rand) State {
	dir := 1.0 // serving from the left sends the ball right
	if s.ServingSide == SideRight {
		dir = -1.0
	}

	// Up to ±30° off horizontal keeps opening rallies playable.
	angle := (rng.Float64()*2 - 1) * 30 * math.Pi / 180
	s.Ball.Vel = core.Vec2{
		X: math.Cos(angle) * cfg.Ball.ServeSpeed * dir,
		Y: math.Sin(angle) * cfg.Ball.ServeSpeed,
	}
	s.BallInPlay = true
	return s
}

// Advance computes one simulation step. It is pure apart from draws on rng:
// given the same config, state, input, dt, and RNG stream it always
// produces the same next state.
func Advance(cfg config.PongConfig, s State, in Input, dt float64, rng *rand.Rand) State {
	s.Tick++

	switch s.Phase {
	case core.PhaseMenu:
		if in.Start {
			return StartGame(cfg, s, rng)
		}
		return s
	case core.PhasePaused:
		if in.Pause || in.Start {
			s.Phase = core.PhasePlaying
		}
		return s
	case core.PhaseGameOver:
		return s
	}

	if in.Pause {
		s.Phase = core.PhasePaused
		return s
	}

	// Paddles always move, even during the serve countdown.
	s.Left = movePaddle(s.Left, in.Left, cfg.Paddle.Speed, cfg, dt)
	if s.Right.IsAI {
		s.Right = UpdateAI(s.Right, s.Ball, s.AI, cfg, dt, rng)
	} else {
		s.Right = movePaddle(s.Right, in.Right, cfg.Paddle.Speed, cfg, dt)
	}

	if !s.BallInPlay {
		s.ServeTimer -= dt
		if s.ServeTimer <= 0 {
			s = launchBall(cfg, s, rng)
		}
		return s
	}

	s.Ball = UpdateBallPosition(s.Ball, dt)

	switch hit := DetectCollisions(s.Ball, s.Left, s.Right, cfg); hit {
	case CollisionLeftPaddle:
		s.Ball = HandlePaddleCollision(s.Ball, s.Left, cfg)
		s.Ball = IncreaseBallSpeed(s.Ball, cfg)
		s.LeftScore.TotalHits++
	case CollisionRightPaddle:
		s.Ball = HandlePaddleCollision(s.Ball, s.Right, cfg)
		s.Ball = IncreaseBallSpeed(s.Ball, cfg)
		s.RightScore.TotalHits++
	case CollisionWallTop, CollisionWallBottom:
		s.Ball = HandleWallCollision(s.Ball, hit, cfg)
	case CollisionGoalLeft:
		s = applyGoal(cfg, s, SideRight)
	case CollisionGoalRight:
		s = applyGoal(cfg, s, SideLeft)
	}

	return s
}

// applyGoal credits the scorer, records rally statistics, checks the win
// condition, and either ends the game or hands the serve to the conceding
// side.
func applyGoal(cfg config.PongConfig, s State, scorer Side) State {
	rally := s.Ball.RallyCount

	if scorer == SideLeft {
		s.LeftScore.Score++
		s.LeftScore.RalliesWon++
		if rally > s.LeftScore.LongestRally {
			s.LeftScore.LongestRally = rally
		}
	} else {
		s.RightScore.Score++
		s.RightScore.RalliesWon++
		if rally > s.RightScore.LongestRally {
			s.RightScore.LongestRally = rally
		}
	}

	s.Win = CheckWinCondition(s.LeftScore, s.RightScore, cfg.Gameplay.WinScore)
	if s.Win.HasWinner {
		s.Phase = core.PhaseGameOver
		s.BallInPlay = false
		s.Ball.Vel = core.Vec2{}
		return s
	}

	return beginServe(cfg, s, scorer.Opponent())
}
