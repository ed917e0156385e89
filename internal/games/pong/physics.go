package pong

import (
	"math"

	"github.com/mvasiliev/arcade-core/internal/config"
	"github.com/mvasiliev/arcade-core/internal/core"
)

// CollisionKind identifies the outcome of a collision sweep.
type CollisionKind int

const (
	CollisionNone CollisionKind = iota
	CollisionLeftPaddle
	CollisionRightPaddle
	CollisionWallTop
	CollisionWallBottom
	CollisionGoalLeft  // Ball crossed the left boundary; right side scores
	CollisionGoalRight // Ball crossed the right boundary; left side scores
)

// String returns a human-readable collision name.
func (c CollisionKind) String() string {
	switch c {
	case CollisionLeftPaddle:
		return "paddle-left"
	case CollisionRightPaddle:
		return "paddle-right"
	case CollisionWallTop:
		return "wall-top"
	case CollisionWallBottom:
		return "wall-bottom"
	case CollisionGoalLeft:
		return "goal-left"
	case CollisionGoalRight:
		return "goal-right"
	default:
		return "none"
	}
}

// UpdateBallPosition integrates the ball forward by dt. Pure Euler step,
// no bounds clamp.
func UpdateBallPosition(b Ball, dt float64) Ball {
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))
	return b
}

// DetectCollisions checks collisions in priority order: left paddle while
// the ball moves leftward, right paddle while it moves rightward, the
// top/bottom walls, then the goals.
func DetectCollisions(b Ball, left, right Paddle, cfg config.PongConfig) CollisionKind {
	if b.Vel.X < 0 && circleHitsRect(b, left.Rect()) {
		return CollisionLeftPaddle
	}
	if b.Vel.X > 0 && circleHitsRect(b, right.Rect()) {
		return CollisionRightPaddle
	}
	if b.Pos.Y-b.Radius <= 0 && b.Vel.Y < 0 {
		return CollisionWallTop
	}
	if b.Pos.Y+b.Radius >= cfg.Court.Height && b.Vel.Y > 0 {
		return CollisionWallBottom
	}
	if b.Pos.X <= 0 {
		return CollisionGoalLeft
	}
	if b.Pos.X >= cfg.Court.Width {
		return CollisionGoalRight
	}
	return CollisionNone
}

// circleHitsRect is a circle-vs-AABB closest-point test on squared
// distances, avoiding the sqrt.
func circleHitsRect(b Ball, r core.RectF) bool {
	cx, cy := r.ClosestPoint(b.Pos.X, b.Pos.Y)
	dx := b.Pos.X - cx
	dy := b.Pos.Y - cy
	return dx*dx+dy*dy <= b.Radius*b.Radius
}

// HandlePaddleCollision computes the bounce off a paddle: the exit angle
// comes from the normalized hit offset (-1..1 across the paddle height)
// scaled by the maximum bounce angle, the paddle's own velocity adds spin to
// the vertical component, and the horizontal direction flips away from the
// paddle. Callers pair this with IncreaseBallSpeed.
func HandlePaddleCollision(b Ball, p Paddle, cfg config.PongConfig) Ball {
	offset := core.ClampF((b.Pos.Y-p.CenterY())/(p.Height/2), -1, 1)
	angle := offset * cfg.Physics.MaxBounceDeg * math.Pi / 180

	speed := math.Max(b.Speed(), cfg.Ball.MinSpeed)

	dir := 1.0
	if p.Side == SideRight {
		dir = -1.0
	}

	b.Vel = core.Vec2{
		X: math.Cos(angle) * speed * dir,
		Y: math.Sin(angle)*speed + p.Vel*cfg.Physics.SpinFactor,
	}
	b.Vel = clampSpeed(b.Vel, cfg.Ball.MinSpeed, cfg.Ball.MaxSpeed)

	// Reposition flush against the paddle face to avoid re-triggering the
	// overlap test next tick.
	if p.Side == SideLeft {
		b.Pos.X = p.Pos.X + p.Width + b.Radius
	} else {
		b.Pos.X = p.Pos.X - b.Radius
	}

	b.RallyCount++
	b.LastHitBy = p.Side
	return b
}

// IncreaseBallSpeed applies the rally speed ramp: multiply the current speed
// by (1 + SpeedIncreasePerHit), with the cumulative multiplier capped at
// MaxSpeedMultiplier and the resulting speed capped at MaxSpeed.
func IncreaseBallSpeed(b Ball, cfg config.PongConfig) Ball {
	inc := 1 + cfg.Physics.SpeedIncreasePerHit

	if b.SpeedMultiplier >= cfg.Physics.MaxSpeedMultiplier {
		b.Vel = clampSpeed(b.Vel, cfg.Ball.MinSpeed, cfg.Ball.MaxSpeed)
		return b
	}

	b.SpeedMultiplier = math.Min(b.SpeedMultiplier*inc, cfg.Physics.MaxSpeedMultiplier)
	b.Vel = clampSpeed(b.Vel.Scale(inc), cfg.Ball.MinSpeed, cfg.Ball.MaxSpeed)
	return b
}

// HandleWallCollision inverts the vertical velocity with damping and
// repositions the ball exactly at the wall to avoid penetration.
func HandleWallCollision(b Ball, wall CollisionKind, cfg config.PongConfig) Ball {
	b.Vel.Y = -b.Vel.Y * cfg.Physics.WallDamping

	switch wall {
	case CollisionWallTop:
		b.Pos.Y = b.Radius
	case CollisionWallBottom:
		b.Pos.Y = cfg.Court.Height - b.Radius
	}

	// Damping must never collapse the ball below the minimum speed.
	b.Vel = clampSpeed(b.Vel, cfg.Ball.MinSpeed, cfg.Ball.MaxSpeed)
	return b
}

// CheckWinCondition ends the game when either side reaches the target.
// It runs immediately after every score increment, so ties are impossible.
func CheckWinCondition(left, right PlayerScore, targetScore int) WinCondition {
	win := WinCondition{TargetScore: targetScore}
	switch {
	case left.Score >= targetScore:
		win.HasWinner = true
		win.Winner = SideLeft
	case right.Score >= targetScore:
		win.HasWinner = true
		win.Winner = SideRight
	}
	return win
}

// clampSpeed rescales v so its magnitude lies within [min, max]. A zero
// vector is floored to min along the positive X axis rather than producing
// NaN.
func clampSpeed(v core.Vec2, min, max float64) core.Vec2 {
	speed := v.Len()
	if speed < min {
		return v.WithLen(min)
	}
	if speed > max {
		return v.WithLen(max)
	}
	return v
}
