package pong

import (
	"math/rand"

	"github.com/mvasiliev/arcade-core/internal/config"
	"github.com/mvasiliev/arcade-core/internal/core"
)

// PredictBallY estimates where the ball will cross the plane x=paddleX,
// assuming straight-line travel with at most one wall bounce folded in.
// Imperfection is injected per difficulty tier: a uniform error scaled by
// (1 - accuracy) and, on a mistake roll, a gross offset of a full paddle
// height. Returns the current ball Y when the ball moves away from the
// paddle or is horizontally stationary.
func PredictBallY(b Ball, paddleX float64, ai config.AITier, cfg config.PongConfig, rng *rand.Rand) float64 {
	dx := paddleX - b.Pos.X
	if b.Vel.X == 0 || dx*b.Vel.X <= 0 {
		return b.Pos.Y
	}

	t := dx / b.Vel.X
	y := b.Pos.Y + b.Vel.Y*t

	// Fold a single wall bounce. Deeper reflections are rare at normal
	// speeds and the error injection below swamps them anyway.
	if y < 0 {
		y = -y
	} else if y > cfg.Court.Height {
		y = 2*cfg.Court.Height - y
	}

	errRange := (1 - ai.PredictionAccuracy) * ai.ErrorMargin
	y += (rng.Float64()*2 - 1) * errRange

	if ai.MakeMistakes && rng.Float64() < ai.MistakeChance {
		sign := 1.0
		if rng.Float64() < 0.5 {
			sign = -1.0
		}
		y += sign * cfg.Paddle.Height
	}

	return core.ClampF(y, 0, cfg.Court.Height)
}

// UpdateAI advances the AI paddle for one tick. The paddle re-predicts the
// intercept on its reaction-time cadence, drifts back to court center at
// half speed while the ball travels away, and holds still inside a small
// dead zone around its target to avoid jitter.
func UpdateAI(p Paddle, b Ball, ai config.AITier, cfg config.PongConfig, dt float64, rng *rand.Rand) Paddle {
	const deadZone = 5.0

	ballApproaching := (p.Side == SideRight && b.Vel.X > 0) ||
		(p.Side == SideLeft && b.Vel.X < 0)

	p.RetargetIn -= dt
	if p.RetargetIn <= 0 {
		p.RetargetIn = ai.ReactionTime
		if ballApproaching {
			p.TargetY = PredictBallY(b, paddleFaceX(p), ai, cfg, rng)
		} else {
			p.TargetY = cfg.Court.Height / 2
		}
	}

	maxSpeed := cfg.Paddle.Speed * ai.SpeedMultiplier
	if !ballApproaching {
		maxSpeed /= 2
	}

	diff := p.TargetY - p.CenterY()
	intent := MoveNone
	if diff > deadZone {
		intent = MoveDown
	} else if diff < -deadZone {
		intent = MoveUp
	}

	return movePaddle(p, intent, maxSpeed, cfg, dt)
}

// paddleFaceX is the x coordinate of the paddle face the ball strikes.
func paddleFaceX(p Paddle) float64 {
	if p.Side == SideLeft {
		return p.Pos.X + p.Width
	}
	return p.Pos.X
}

// movePaddle applies acceleration-based movement toward the intent and
// clamps the paddle inside the court.
func movePaddle(p Paddle, intent MoveIntent, maxSpeed float64, cfg config.PongConfig, dt float64) Paddle {
	switch intent {
	case MoveUp:
		p.Vel -= cfg.Paddle.Acceleration * dt
	case MoveDown:
		p.Vel += cfg.Paddle.Acceleration * dt
	default:
		// Decelerate toward rest when no input is held.
		decel := cfg.Paddle.Acceleration * dt
		if p.Vel > decel {
			p.Vel -= decel
		} else if p.Vel < -decel {
			p.Vel += decel
		} else {
			p.Vel = 0
		}
	}

	p.Vel = core.ClampF(p.Vel, -maxSpeed, maxSpeed)
	p.Pos.Y += p.Vel * dt

	if p.Pos.Y < 0 {
		p.Pos.Y = 0
		p.Vel = 0
	}
	if p.Pos.Y+p.Height > cfg.Court.Height {
		p.Pos.Y = cfg.Court.Height - p.Height
		p.Vel = 0
	}
	return p
}
