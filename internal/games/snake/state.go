// Package snake implements the Snake simulation core: a deterministic grid
// engine driven by a fixed-timestep accumulator. Continuous time feeds
// Advance, which fires discrete movement ticks whenever the accumulated
// time crosses the current move interval. All randomness flows through the
// injected RNG, so a seed fully determines a run.
package snake

import (
	"github.com/mvasiliev/arcade-core/internal/config"
	"github.com/mvasiliev/arcade-core/internal/core"
)

// Direction is the snake's movement heading on the grid.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Opposite reports whether o is the reverse of d. A buffered direction that
// reverses the active heading is rejected, since the head would collide
// with the neck.
func (d Direction) Opposite(o Direction) bool {
	return (d == DirUp && o == DirDown) ||
		(d == DirDown && o == DirUp) ||
		(d == DirLeft && o == DirRight) ||
		(d == DirRight && o == DirLeft)
}

// Delta returns the grid offset of one step in this direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 1, 0
	}
}

// Segment is one cell of the snake's body.
type Segment struct {
	X, Y int
}

// FoodType distinguishes the food tiers.
type FoodType int

const (
	FoodNormal FoodType = iota
	FoodBonus
	FoodGolden
)

// String returns a human-readable food type name.
func (f FoodType) String() string {
	switch f {
	case FoodBonus:
		return "bonus"
	case FoodGolden:
		return "golden"
	default:
		return "normal"
	}
}

// Food is the current food item. Timed tiers expire back to a normal item:
// TTL counts down in seconds and only applies when Timed is set.
type Food struct {
	Pos    Segment
	Type   FoodType
	Points int
	Timed  bool
	TTL    float64
}

// EndReason records why a run ended.
type EndReason int

const (
	EndNone EndReason = iota
	EndWallCollision
	EndSelfCollision
	EndGridFull // the snake fills every cell; counts as a win
)

// String returns a human-readable end reason.
func (r EndReason) String() string {
	switch r {
	case EndWallCollision:
		return "wall"
	case EndSelfCollision:
		return "self"
	case EndGridFull:
		return "grid-full"
	default:
		return "none"
	}
}

// Input is the per-tick input snapshot for the Snake engine.
type Input struct {
	Dir    Direction // Requested heading
	HasDir bool      // Whether Dir carries a request this tick
	Start  bool
	Pause  bool
}

// State is the complete Snake game state, replaced wholesale each tick.
type State struct {
	Phase core.Phase
	Tick  uint64

	// Head at index 0.
	Segments []Segment
	Dir      Direction
	NextDir  Direction // Buffered heading, applied on the next movement tick

	Food Food

	Score     int
	Combo     int // Consecutive movement ticks that ate food
	MaxCombo  int // Best combo reached this run
	Level     int
	FoodEaten int // Food eaten within the current level
	TotalFood int // Food eaten over the whole run

	// Movement cadence. Accum collects wall-clock dt; a movement tick
	// fires each time it crosses Interval.
	Accum    float64
	Interval float64

	End       EndReason
	SessionID string
}

// NewState builds a fresh game state: a snake of the configured initial
// length laid out horizontally at grid center, heading right, phase at menu.
func NewState(cfg config.SnakeConfig, sessionID string) State {
	mid := cfg.Grid.Size / 2
	segs := make([]Segment, cfg.Grid.InitialLength)
	for i := range segs {
		segs[i] = Segment{X: mid - i, Y: mid}
	}

	return State{
		Phase:     core.PhaseMenu,
		Segments:  segs,
		Dir:       DirRight,
		NextDir:   DirRight,
		Level:     1,
		Interval:  cfg.Speed.BaseInterval,
		SessionID: sessionID,
	}
}

// Head returns the snake's head cell.
func (s State) Head() Segment {
	return s.Segments[0]
}

// Occupies reports whether any segment covers the given cell.
func (s State) Occupies(c Segment) bool {
	for _, seg := range s.Segments {
		if seg == c {
			return true
		}
	}
	return false
}
