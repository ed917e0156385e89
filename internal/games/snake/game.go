package snake

import (
	"math"
	"math/rand"

	"github.com/mvasiliev/arcade-core/internal/config"
	"github.com/mvasiliev/arcade-core/internal/core"
)

// BufferDirection records a requested heading for the next movement tick.
// The request is validated against the ACTIVE direction, not the previously
// buffered one, so two quick inputs within a single movement tick cannot
// smuggle in a reversal.
func BufferDirection(s State, dir Direction) State {
	if !s.Dir.Opposite(dir) {
		s.NextDir = dir
	}
	return s
}

// CalculateScore returns the points awarded for one food item:
// base points scaled by the level multiplier and the combo bonus, rounded
// to the nearest integer.
func CalculateScore(cfg config.SnakeConfig, basePoints, level, combo int) int {
	levelScale := 1 + float64(level-1)*cfg.Scoring.LevelMultiplier
	comboScale := 1 + float64(combo)*0.1
	return int(math.Round(float64(basePoints) * levelScale * comboScale))
}

// CalculateSpeed returns the movement interval for a level. The curve is
// linear in the level and floored at the minimum interval.
func CalculateSpeed(cfg config.SnakeConfig, level int) float64 {
	iv := cfg.Speed.BaseInterval - float64(level-1)*cfg.Speed.ReductionPerLevel
	return math.Max(iv, cfg.Speed.MinInterval)
}

// SpawnFood places a new food item on a random free cell. It tries random
// cells up to gridSize² times, then falls back to a linear scan; ok is
// false only when no free cell exists, which means the snake has filled
// the grid.
func SpawnFood(cfg config.SnakeConfig, s State, rng *rand.Rand) (Food, bool) {
	size := cfg.Grid.Size

	var pos Segment
	found := false
	for i := 0; i < size*size; i++ {
		c := Segment{X: rng.Intn(size), Y: rng.Intn(size)}
		if !s.Occupies(c) {
			pos, found = c, true
			break
		}
	}
	if !found {
		for y := 0; y < size && !found; y++ {
			for x := 0; x < size; x++ {
				c := Segment{X: x, Y: y}
				if !s.Occupies(c) {
					pos, found = c, true
					break
				}
			}
		}
	}
	if !found {
		return Food{}, false
	}

	f := Food{Pos: pos, Type: FoodNormal, Points: cfg.Food.NormalPoints}
	roll := rng.Float64()
	switch {
	case roll < cfg.Food.GoldenChance:
		f = Food{Pos: pos, Type: FoodGolden, Points: cfg.Food.GoldenPoints, Timed: true, TTL: cfg.Food.GoldenTTL}
	case roll < cfg.Food.GoldenChance+cfg.Food.BonusChance:
		f = Food{Pos: pos, Type: FoodBonus, Points: cfg.Food.BonusPoints, Timed: true, TTL: cfg.Food.BonusTTL}
	}
	return f, true
}

// MoveSnake executes one movement tick: apply the buffered heading, step
// the head one cell, resolve wall/self/food collisions, and update score,
// combo, level, and speed. On a fatal collision the state is returned with
// the end reason set and the body unchanged.
func MoveSnake(cfg config.SnakeConfig, s State, rng *rand.Rand) State {
	s.Dir = s.NextDir

	dx, dy := s.Dir.Delta()
	head := s.Head()
	newHead := Segment{X: head.X + dx, Y: head.Y + dy}

	size := cfg.Grid.Size
	if cfg.Grid.WallsWrap {
		newHead.X = (newHead.X + size) % size
		newHead.Y = (newHead.Y + size) % size
	} else if newHead.X < 0 || newHead.X >= size || newHead.Y < 0 || newHead.Y >= size {
		s.End = EndWallCollision
		s.Phase = core.PhaseGameOver
		return s
	}

	eating := newHead == s.Food.Pos

	// Self collision. The tail cell is exempt unless the snake grows this
	// tick, because it vacates as the head arrives.
	checkLen := len(s.Segments)
	if !eating {
		checkLen--
	}
	for i := 0; i < checkLen; i++ {
		if s.Segments[i] == newHead {
			s.End = EndSelfCollision
			s.Phase = core.PhaseGameOver
			return s
		}
	}

	segs := make([]Segment, 0, len(s.Segments)+1)
	segs = append(segs, newHead)
	if eating {
		segs = append(segs, s.Segments...)
	} else {
		segs = append(segs, s.Segments[:len(s.Segments)-1]...)
	}
	s.Segments = segs

	if !eating {
		s.Combo = 0
		return s
	}

	s.Combo++
	if s.Combo > s.MaxCombo {
		s.MaxCombo = s.Combo
	}
	s.Score += CalculateScore(cfg, s.Food.Points, s.Level, s.Combo)
	s.FoodEaten++
	s.TotalFood++

	if s.FoodEaten >= cfg.Scoring.FoodPerLevel {
		s.Level++
		s.FoodEaten = 0
		s.Interval = CalculateSpeed(cfg, s.Level)
	}

	if len(s.Segments) >= size*size {
		s.End = EndGridFull
		s.Phase = core.PhaseGameOver
		return s
	}

	food, ok := SpawnFood(cfg, s, rng)
	if !ok {
		s.End = EndGridFull
		s.Phase = core.PhaseGameOver
		return s
	}
	s.Food = food
	return s
}

// Advance computes one simulation step. Continuous dt accumulates toward
// the movement interval; zero or more movement ticks fire per call. Pure
// apart from draws on rng.
func Advance(cfg config.SnakeConfig, s State, in Input, dt float64, rng *rand.Rand) State {
	s.Tick++

	switch s.Phase {
	case core.PhaseMenu:
		if in.Start {
			s.Phase = core.PhasePlaying
			food, ok := SpawnFood(cfg, s, rng)
			if !ok {
				s.End = EndGridFull
				s.Phase = core.PhaseGameOver
				return s
			}
			s.Food = food
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

	if in.HasDir {
		s = BufferDirection(s, in.Dir)
	}

	// Timed food tiers decay back to a plain item in place.
	if s.Food.Timed {
		s.Food.TTL -= dt
		if s.Food.TTL <= 0 {
			s.Food.Type = FoodNormal
			s.Food.Points = cfg.Food.NormalPoints
			s.Food.Timed = false
			s.Food.TTL = 0
		}
	}

	s.Accum += dt
	for s.Accum >= s.Interval {
		s.Accum -= s.Interval
		s = MoveSnake(cfg, s, rng)
		if s.Phase == core.PhaseGameOver {
			s.Accum = 0
			break
		}
	}

	return s
}
