package snake

import (
	"math/rand"
	"testing"

	"github.com/mvasiliev/arcade-core/internal/config"
	"github.com/mvasiliev/arcade-core/internal/core"
)

func testConfig() config.SnakeConfig {
	return config.DefaultSnakeConfig()
}

// playingState builds a minimal in-play state with the snake at grid
// center heading right and the food parked out of the way.
func playingState(cfg config.SnakeConfig) State {
	s := NewState(cfg, "test-session")
	s.Phase = core.PhasePlaying
	s.Food = Food{Pos: Segment{X: 0, Y: 0}, Type: FoodNormal, Points: cfg.Food.NormalPoints}
	return s
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed and inputs must produce identical
	// snapshots.
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
	for i := 0; i < 2000; i++ {
		input.Clear()
		if i == 0 {
			input.Set(core.ActionStart)
		}
		if i == 100 {
			input.Set(core.ActionDown)
		}
		if i == 200 {
			input.Set(core.ActionLeft)
		}
		if i == 300 {
			input.Set(core.ActionUp)
		}

		g1.Step(input)
		g2.Step(input)
	}

	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("Snapshot mismatch:\n  %+v\n  %+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestBufferDirectionRejectsReversal(t *testing.T) {
	cfg := testConfig()
	s := playingState(cfg)

	if s.Dir != DirRight {
		t.Fatalf("Expected initial direction right, got %v", s.Dir)
	}

	// Reversal of the active heading is dropped.
	s = BufferDirection(s, DirLeft)
	if s.NextDir == DirLeft {
		t.Error("Reversal from right to left should be rejected")
	}

	// A perpendicular turn is accepted.
	s = BufferDirection(s, DirDown)
	if s.NextDir != DirDown {
		t.Errorf("Expected buffered direction down, got %v", s.NextDir)
	}

	// Two quick inputs within one movement tick: down then left. Left is
	// valid against the still-active rightward heading? No - it reverses
	// it, so it must be dropped even though NextDir is down.
	s = BufferDirection(s, DirLeft)
	if s.NextDir != DirDown {
		t.Errorf("Reversal should be checked against the active heading, got %v", s.NextDir)
	}
}

func TestMoveSnakeGrowsOnFood(t *testing.T) {
	cfg := testConfig()
	rng := rand.New(rand.NewSource(1))
	s := playingState(cfg)

	head := s.Head()
	s.Food = Food{Pos: Segment{X: head.X + 1, Y: head.Y}, Type: FoodNormal, Points: cfg.Food.NormalPoints}

	lenBefore := len(s.Segments)
	s = MoveSnake(cfg, s, rng)

	if len(s.Segments) != lenBefore+1 {
		t.Errorf("Length = %d, want %d", len(s.Segments), lenBefore+1)
	}
	if s.Head() != (Segment{X: head.X + 1, Y: head.Y}) {
		t.Errorf("Head = %+v, want the food cell", s.Head())
	}
	if s.Score == 0 {
		t.Error("Eating should award points")
	}
	if s.FoodEaten != 1 {
		t.Errorf("FoodEaten = %d, want 1", s.FoodEaten)
	}
}

func TestMoveSnakeTailFollows(t *testing.T) {
	cfg := testConfig()
	rng := rand.New(rand.NewSource(1))
	s := playingState(cfg)

	tail := s.Segments[len(s.Segments)-1]
	lenBefore := len(s.Segments)

	s = MoveSnake(cfg, s, rng)

	if len(s.Segments) != lenBefore {
		t.Errorf("Length changed on a plain move: %d -> %d", lenBefore, len(s.Segments))
	}
	if s.Occupies(tail) {
		t.Error("Old tail cell should be vacated")
	}
}

func TestWallCollisionEndsGame(t *testing.T) {
	cfg := testConfig()
	cfg.Grid.WallsWrap = false
	rng := rand.New(rand.NewSource(1))

	s := playingState(cfg)
	edge := Segment{X: cfg.Grid.Size - 1, Y: 5}
	s.Segments = []Segment{edge, {X: edge.X - 1, Y: 5}, {X: edge.X - 2, Y: 5}}
	s.Dir, s.NextDir = DirRight, DirRight

	s = MoveSnake(cfg, s, rng)

	if s.Phase != core.PhaseGameOver {
		t.Fatalf("Expected game over, got %v", s.Phase)
	}
	if s.End != EndWallCollision {
		t.Errorf("End = %v, want wall", s.End)
	}
	// The fatal move must not be applied.
	if s.Head() != edge {
		t.Errorf("Head moved on a fatal collision: %+v", s.Head())
	}
	if len(s.Segments) != 3 {
		t.Errorf("Body changed on a fatal collision: len=%d", len(s.Segments))
	}
}

func TestWrapReentersOppositeEdge(t *testing.T) {
	cfg := testConfig()
	cfg.Grid.WallsWrap = true
	rng := rand.New(rand.NewSource(1))

	s := playingState(cfg)
	edge := Segment{X: cfg.Grid.Size - 1, Y: 5}
	s.Segments = []Segment{edge, {X: edge.X - 1, Y: 5}, {X: edge.X - 2, Y: 5}}
	s.Dir, s.NextDir = DirRight, DirRight

	s = MoveSnake(cfg, s, rng)

	if s.Phase == core.PhaseGameOver {
		t.Fatal("Wrap mode should not end at the wall")
	}
	if s.Head() != (Segment{X: 0, Y: 5}) {
		t.Errorf("Head = %+v, want wrap to x=0", s.Head())
	}
}

func TestSelfCollisionEndsGame(t *testing.T) {
	cfg := testConfig()
	rng := rand.New(rand.NewSource(1))

	s := playingState(cfg)
	// Head about to run into its own body one cell up.
	s.Segments = []Segment{
		{X: 5, Y: 5},
		{X: 4, Y: 5},
		{X: 4, Y: 4},
		{X: 5, Y: 4},
		{X: 6, Y: 4},
	}
	s.Dir, s.NextDir = DirUp, DirUp

	s = MoveSnake(cfg, s, rng)

	if s.End != EndSelfCollision {
		t.Fatalf("End = %v, want self collision", s.End)
	}
	if s.Phase != core.PhaseGameOver {
		t.Errorf("Expected game over, got %v", s.Phase)
	}
}

func TestTailCellIsSafeOnPlainMove(t *testing.T) {
	cfg := testConfig()
	rng := rand.New(rand.NewSource(1))

	s := playingState(cfg)
	// A closed 2x2 loop: the head steps onto the tail cell, which vacates
	// in the same tick.
	s.Segments = []Segment{
		{X: 5, Y: 5},
		{X: 4, Y: 5},
		{X: 4, Y: 6},
		{X: 5, Y: 6},
	}
	s.Dir, s.NextDir = DirDown, DirDown

	s = MoveSnake(cfg, s, rng)

	if s.End != EndNone {
		t.Fatalf("Stepping onto the vacating tail should be safe, got %v", s.End)
	}
	if s.Head() != (Segment{X: 5, Y: 6}) {
		t.Errorf("Head = %+v, want the old tail cell", s.Head())
	}
}

func TestComboBuildsAndResets(t *testing.T) {
	cfg := testConfig()
	rng := rand.New(rand.NewSource(1))
	s := playingState(cfg)

	feed := func() {
		head := s.Head()
		s.Food = Food{Pos: Segment{X: head.X + 1, Y: head.Y}, Type: FoodNormal, Points: cfg.Food.NormalPoints}
		s = MoveSnake(cfg, s, rng)
	}

	feed()
	if s.Combo != 1 {
		t.Errorf("Combo after first food = %d, want 1", s.Combo)
	}
	feed()
	if s.Combo != 2 {
		t.Errorf("Combo after second food = %d, want 2", s.Combo)
	}
	feed()
	if s.Combo != 3 {
		t.Errorf("Combo after third food = %d, want 3", s.Combo)
	}

	// A movement tick without food breaks the streak.
	s.Food = Food{Pos: Segment{X: 0, Y: 0}, Type: FoodNormal, Points: cfg.Food.NormalPoints}
	s = MoveSnake(cfg, s, rng)
	if s.Combo != 0 {
		t.Errorf("Combo after a plain move = %d, want 0", s.Combo)
	}
	if s.MaxCombo != 3 {
		t.Errorf("MaxCombo = %d, want 3 to survive the streak break", s.MaxCombo)
	}
}

func TestCalculateScore(t *testing.T) {
	cfg := testConfig() // level multiplier 0.5

	tests := []struct {
		name  string
		base  int
		level int
		combo int
		want  int
	}{
		{"base case", 10, 1, 0, 10},
		{"level scales", 10, 3, 0, 20},
		{"combo scales", 10, 1, 3, 13},
		{"level and combo", 10, 2, 2, 18},
		{"golden at level 1", 50, 1, 1, 55},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculateScore(cfg, tt.base, tt.level, tt.combo); got != tt.want {
				t.Errorf("CalculateScore(%d, %d, %d) = %d, want %d",
					tt.base, tt.level, tt.combo, got, tt.want)
			}
		})
	}
}

func TestCalculateSpeedFloor(t *testing.T) {
	cfg := testConfig()

	if got := CalculateSpeed(cfg, 1); got != cfg.Speed.BaseInterval {
		t.Errorf("Level 1 interval = %v, want base %v", got, cfg.Speed.BaseInterval)
	}

	// Far along the curve the interval pins to the floor.
	if got := CalculateSpeed(cfg, 50); got != cfg.Speed.MinInterval {
		t.Errorf("Level 50 interval = %v, want floor %v", got, cfg.Speed.MinInterval)
	}

	// Monotone non-increasing.
	prev := CalculateSpeed(cfg, 1)
	for lvl := 2; lvl <= 20; lvl++ {
		cur := CalculateSpeed(cfg, lvl)
		if cur > prev {
			t.Fatalf("Interval increased at level %d: %v > %v", lvl, cur, prev)
		}
		prev = cur
	}
}

func TestLevelUpSpeedsUp(t *testing.T) {
	cfg := testConfig()
	rng := rand.New(rand.NewSource(1))
	s := playingState(cfg)
	s.FoodEaten = cfg.Scoring.FoodPerLevel - 1

	head := s.Head()
	s.Food = Food{Pos: Segment{X: head.X + 1, Y: head.Y}, Type: FoodNormal, Points: cfg.Food.NormalPoints}
	s = MoveSnake(cfg, s, rng)

	if s.Level != 2 {
		t.Fatalf("Level = %d, want 2", s.Level)
	}
	if s.FoodEaten != 0 {
		t.Errorf("FoodEaten should reset on level up, got %d", s.FoodEaten)
	}
	if want := CalculateSpeed(cfg, 2); s.Interval != want {
		t.Errorf("Interval = %v, want %v", s.Interval, want)
	}
}

func TestSpawnFoodValidity(t *testing.T) {
	cfg := testConfig()
	cfg.Grid.Size = 4
	rng := rand.New(rand.NewSource(99))

	s := playingState(cfg)
	s.Segments = []Segment{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0},
		{X: 2, Y: 1}, {X: 1, Y: 1}, {X: 0, Y: 1},
	}

	for i := 0; i < 200; i++ {
		f, ok := SpawnFood(cfg, s, rng)
		if !ok {
			t.Fatal("Grid reported full with free cells remaining")
		}
		if s.Occupies(f.Pos) {
			t.Fatalf("Food spawned on the snake at %+v", f.Pos)
		}
		if f.Pos.X < 0 || f.Pos.X >= cfg.Grid.Size || f.Pos.Y < 0 || f.Pos.Y >= cfg.Grid.Size {
			t.Fatalf("Food out of bounds at %+v", f.Pos)
		}
	}
}

func TestGridFullIsAWin(t *testing.T) {
	cfg := testConfig()
	cfg.Grid.Size = 2
	cfg.Scoring.FoodPerLevel = 100 // keep the level fixed for this test
	rng := rand.New(rand.NewSource(1))

	s := playingState(cfg)
	s.Segments = []Segment{
		{X: 0, Y: 1},
		{X: 0, Y: 0},
		{X: 1, Y: 0},
	}
	s.Dir, s.NextDir = DirRight, DirRight
	s.Food = Food{Pos: Segment{X: 1, Y: 1}, Type: FoodNormal, Points: cfg.Food.NormalPoints}

	s = MoveSnake(cfg, s, rng)

	if s.End != EndGridFull {
		t.Fatalf("End = %v, want grid full", s.End)
	}
	if s.Phase != core.PhaseGameOver {
		t.Errorf("Expected game over, got %v", s.Phase)
	}
	if len(s.Segments) != 4 {
		t.Errorf("Length = %d, want the full grid", len(s.Segments))
	}
}

func TestTimedFoodDecaysToNormal(t *testing.T) {
	cfg := testConfig()
	rng := rand.New(rand.NewSource(1))

	s := playingState(cfg)
	s.Interval = 10 // no movement ticks during this test
	s.Food = Food{Pos: Segment{X: 0, Y: 0}, Type: FoodGolden, Points: cfg.Food.GoldenPoints, Timed: true, TTL: 0.1}

	for i := 0; i < 12; i++ {
		s = Advance(cfg, s, Input{}, 0.01, rng)
	}

	if s.Food.Type != FoodNormal {
		t.Errorf("Food type = %v, want decay to normal", s.Food.Type)
	}
	if s.Food.Points != cfg.Food.NormalPoints {
		t.Errorf("Food points = %d, want %d", s.Food.Points, cfg.Food.NormalPoints)
	}
	if s.Food.Timed {
		t.Error("Decayed food should no longer be timed")
	}
	if s.Food.Pos != (Segment{X: 0, Y: 0}) {
		t.Errorf("Decay should not move the food, got %+v", s.Food.Pos)
	}
}

func TestPauseFreezesMovement(t *testing.T) {
	cfg := testConfig()
	rng := rand.New(rand.NewSource(1))
	s := playingState(cfg)

	s = Advance(cfg, s, Input{Pause: true}, 0.01, rng)
	if s.Phase != core.PhasePaused {
		t.Fatalf("Expected paused, got %v", s.Phase)
	}

	head := s.Head()
	for i := 0; i < 100; i++ {
		s = Advance(cfg, s, Input{}, cfg.Speed.BaseInterval, rng)
	}
	if s.Head() != head {
		t.Error("Snake moved while paused")
	}

	s = Advance(cfg, s, Input{Pause: true}, 0.01, rng)
	if s.Phase != core.PhasePlaying {
		t.Errorf("Expected playing after unpause, got %v", s.Phase)
	}
}

func TestAccumulatorFiresOnInterval(t *testing.T) {
	cfg := testConfig()
	rng := rand.New(rand.NewSource(1))
	s := playingState(cfg)

	head := s.Head()
	dt := cfg.Speed.BaseInterval / 4

	// Three quarter-intervals: no movement yet.
	for i := 0; i < 3; i++ {
		s = Advance(cfg, s, Input{}, dt, rng)
	}
	if s.Head() != head {
		t.Fatal("Snake moved before the interval elapsed")
	}

	// A full interval on top definitely crosses the threshold.
	s = Advance(cfg, s, Input{}, cfg.Speed.BaseInterval, rng)
	if s.Head() == head {
		t.Error("Snake should move once the interval elapses")
	}
}
