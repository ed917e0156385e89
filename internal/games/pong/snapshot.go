package pong

import "github.com/mvasiliev/arcade-core/internal/core"

// Snapshot captures the simulation state for determinism testing and
// replay. The session ID is deliberately excluded: it comes from the host,
// not from the seeded RNG stream.
type Snapshot struct {
	Tick        uint64
	Phase       core.Phase
	BallX       float64
	BallY       float64
	BallVelX    float64
	BallVelY    float64
	BallMult    float64
	RallyCount  int
	LeftY       float64
	RightY      float64
	LeftScore   int
	RightScore  int
	BallInPlay  bool
	ServingSide Side
	HasWinner   bool
	Winner      Side
}

// TakeSnapshot flattens the state into a comparable snapshot.
func TakeSnapshot(s State) Snapshot {
	return Snapshot{
		Tick:        s.Tick,
		Phase:       s.Phase,
		BallX:       s.Ball.Pos.X,
		BallY:       s.Ball.Pos.Y,
		BallVelX:    s.Ball.Vel.X,
		BallVelY:    s.Ball.Vel.Y,
		BallMult:    s.Ball.SpeedMultiplier,
		RallyCount:  s.Ball.RallyCount,
		LeftY:       s.Left.Pos.Y,
		RightY:      s.Right.Pos.Y,
		LeftScore:   s.LeftScore.Score,
		RightScore:  s.RightScore.Score,
		BallInPlay:  s.BallInPlay,
		ServingSide: s.ServingSide,
		HasWinner:   s.Win.HasWinner,
		Winner:      s.Win.Winner,
	}
}
