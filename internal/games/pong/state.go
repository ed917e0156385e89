// Package pong implements the Pong simulation core: a deterministic,
// side-effect-free state-transition engine. Advance consumes a state value,
// an input snapshot, a time delta and an injected RNG, and returns the next
// state; it performs no I/O and holds no hidden fields. The Game adapter in
// adapter.go is the only bridge to the platform layer.
package pong

import (
	"github.com/mvasiliev/arcade-core/internal/config"
	"github.com/mvasiliev/arcade-core/internal/core"
)

// Side identifies one half of the court.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

// String returns a human-readable side name.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}

// Opponent returns the opposite side. SideNone maps to itself.
func (s Side) Opponent() Side {
	switch s {
	case SideLeft:
		return SideRight
	case SideRight:
		return SideLeft
	default:
		return SideNone
	}
}

// MoveIntent is a discrete per-tick paddle movement request.
type MoveIntent int

const (
	MoveUp   MoveIntent = -1
	MoveNone MoveIntent = 0
	MoveDown MoveIntent = 1
)

// Input is the per-tick input snapshot for the Pong engine. How the intents
// are derived (keyboard, touch, network) is the host's business.
type Input struct {
	Left  MoveIntent // Ignored while the left paddle is AI-driven
	Right MoveIntent // Ignored while the right paddle is AI-driven
	Start bool       // Leave the menu and begin play
	Pause bool       // Toggle pause while playing
}

// AIConfig tunes the computer opponent. Immutable per difficulty tier,
// selected at game start.
type AIConfig = config.AITier

// Paddle is one player's paddle. Pos is the top-left corner in court
// coordinates; Vel is vertical velocity in pixels/second.
type Paddle struct {
	Side   Side
	Pos    core.Vec2
	Vel    float64
	Width  float64
	Height float64
	IsAI   bool

	// AI steering state. TargetY is the top coordinate the paddle is
	// steering toward; RetargetIn counts down to the next ball re-read.
	TargetY    float64
	RetargetIn float64
}

// Rect returns the paddle's bounding rectangle.
func (p Paddle) Rect() core.RectF {
	return core.RectF{X: p.Pos.X, Y: p.Pos.Y, W: p.Width, H: p.Height}
}

// CenterY returns the paddle's vertical center.
func (p Paddle) CenterY() float64 {
	return p.Pos.Y + p.Height/2
}

// Ball is the ball's full kinematic state.
type Ball struct {
	Pos             core.Vec2
	Vel             core.Vec2
	Radius          float64
	SpeedMultiplier float64 // Rally speed ramp, monotone up to the cap, reset on point
	RallyCount      int     // Paddle hits since the last serve
	LastHitBy       Side
}

// Speed returns the ball's current scalar speed.
func (b Ball) Speed() float64 {
	return b.Vel.Len()
}

// PlayerScore tracks one side's scoring statistics. All fields are
// monotonically non-decreasing within a game.
type PlayerScore struct {
	Side         Side
	Score        int
	RalliesWon   int
	TotalHits    int
	LongestRally int
}

// WinCondition is terminal once HasWinner is set; the engine stops mutating
// gameplay fields from then on.
type WinCondition struct {
	TargetScore int
	HasWinner   bool
	Winner      Side
}

// State is the complete Pong game state. It is replaced wholesale each tick.
type State struct {
	Phase core.Phase
	Tick  uint64

	Ball  Ball
	Left  Paddle
	Right Paddle

	LeftScore  PlayerScore
	RightScore PlayerScore
	Win        WinCondition

	// Serve sub-state, nested inside the playing phase.
	BallInPlay  bool
	ServeTimer  float64 // Seconds until the ball launches
	ServingSide Side    // The side that conceded the last point

	AI        AIConfig
	SessionID string // Opaque, minted once per game start by the host
}

// NewState builds a fresh game state: paddles centered, ball at court center
// with zero velocity, phase at menu. The right paddle is the AI opponent.
func NewState(cfg config.PongConfig, ai AIConfig, sessionID string) State {
	paddleY := (cfg.Court.Height - cfg.Paddle.Height) / 2

	return State{
		Phase: core.PhaseMenu,
		Ball: Ball{
			Pos:             core.Vec2{X: cfg.Court.Width / 2, Y: cfg.Court.Height / 2},
			Radius:          cfg.Ball.Radius,
			SpeedMultiplier: 1,
			LastHitBy:       SideNone,
		},
		Left: Paddle{
			Side:   SideLeft,
			Pos:    core.Vec2{X: cfg.Paddle.Offset, Y: paddleY},
			Width:  cfg.Paddle.Width,
			Height: cfg.Paddle.Height,
		},
		Right: Paddle{
			Side:   SideRight,
			Pos:    core.Vec2{X: cfg.Court.Width - cfg.Paddle.Offset - cfg.Paddle.Width, Y: paddleY},
			Width:  cfg.Paddle.Width,
			Height: cfg.Paddle.Height,
			IsAI:   true,
		},
		LeftScore:  PlayerScore{Side: SideLeft},
		RightScore: PlayerScore{Side: SideRight},
		Win:        WinCondition{TargetScore: cfg.Gameplay.WinScore},
		AI:         ai,
		SessionID:  sessionID,
	}
}
