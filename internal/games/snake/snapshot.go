package snake

import "github.com/mvasiliev/arcade-core/internal/core"

// Snapshot captures the simulation state for determinism testing and
// replay. The session ID is deliberately excluded: it comes from the host,
// not from the seeded RNG stream.
type Snapshot struct {
	Tick      uint64
	Phase     core.Phase
	Score     int
	Combo     int
	MaxCombo  int
	Level     int
	FoodEaten int
	TotalFood int
	SnakeLen  int
	HeadX     int
	HeadY     int
	Dir       Direction
	NextDir   Direction
	FoodX     int
	FoodY     int
	FoodType  FoodType
	Interval  float64
	End       EndReason
}

// TakeSnapshot flattens the state into a comparable snapshot.
func TakeSnapshot(s State) Snapshot {
	return Snapshot{
		Tick:      s.Tick,
		Phase:     s.Phase,
		Score:     s.Score,
		Combo:     s.Combo,
		MaxCombo:  s.MaxCombo,
		Level:     s.Level,
		FoodEaten: s.FoodEaten,
		TotalFood: s.TotalFood,
		SnakeLen:  len(s.Segments),
		HeadX:     s.Head().X,
		HeadY:     s.Head().Y,
		Dir:       s.Dir,
		NextDir:   s.NextDir,
		FoodX:     s.Food.Pos.X,
		FoodY:     s.Food.Pos.Y,
		FoodType:  s.Food.Type,
		Interval:  s.Interval,
		End:       s.End,
	}
}
