package snake

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/mvasiliev/arcade-core/internal/config"
	"github.com/mvasiliev/arcade-core/internal/core"
	"github.com/mvasiliev/arcade-core/internal/registry"
)

// Game adapts the pure simulation to the registry interface. It owns the
// current state, the seeded RNG, and the mapping from grid cells to screen
// cells; every rule lives in Advance and the functions under it.
type Game struct {
	cfg     config.SnakeConfig
	rng     *rand.Rand
	state   State
	dt      float64
	screenW int
	screenH int
}

// CLI-selected options applied on the next Reset.
var (
	configPath       string
	difficultyPreset string
	wrapOverride     *bool
)

// SetConfigPath sets the config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset selects the speed preset used on the next Reset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetWallsWrap overrides the configured wall behavior on the next Reset.
func SetWallsWrap(wrap bool) {
	wrapOverride = &wrap
}

// New creates a new Snake game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "snake" }

// Title returns the display name.
func (g *Game) Title() string { return "Snake" }

// Reset initializes/restarts the game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := config.LoadSnake(configPath)
	if err != nil {
		cfg = config.DefaultSnakeConfig()
	}
	if difficultyPreset != "" {
		config.ApplySnakePreset(&cfg, config.ParsePreset(difficultyPreset))
	}
	if wrapOverride != nil {
		cfg.Grid.WallsWrap = *wrapOverride
	}

	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.dt = rc.Dt()
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH

	g.state = NewState(cfg, uuid.NewString())
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if input.Has(core.ActionRestart) && g.state.Phase == core.PhaseGameOver {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: int(1/g.dt + 0.5),
		})
		return core.StepResult{State: g.State()}
	}

	in := Input{
		Start: input.Has(core.ActionStart) || input.Has(core.ActionConfirm),
		Pause: input.Has(core.ActionPause),
	}
	switch {
	case input.Has(core.ActionUp):
		in.Dir, in.HasDir = DirUp, true
	case input.Has(core.ActionDown):
		in.Dir, in.HasDir = DirDown, true
	case input.Has(core.ActionLeft):
		in.Dir, in.HasDir = DirLeft, true
	case input.Has(core.ActionRight):
		in.Dir, in.HasDir = DirRight, true
	}

	g.state = Advance(g.cfg, g.state, in, g.dt, g.rng)
	return core.StepResult{State: g.State()}
}

// State reports the session summary for the platform layer.
func (g *Game) State() core.GameState {
	outcome := ""
	if g.state.End != EndNone {
		outcome = g.state.End.String()
	}
	return core.GameState{
		Score:     g.state.Score,
		GameOver:  g.state.Phase == core.PhaseGameOver,
		Paused:    g.state.Phase == core.PhasePaused,
		Outcome:   outcome,
		SessionID: g.state.SessionID,
	}
}

// Snapshot returns the current simulation snapshot for determinism
// verification.
func (g *Game) Snapshot() Snapshot {
	return TakeSnapshot(g.state)
}

const hudHeight = 2

// Render draws the grid centered on the destination screen. Each grid cell
// maps to two screen columns so cells look square in a terminal.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	size := g.cfg.Grid.Size
	cellW := 2
	needW := size*cellW + 2
	needH := size + hudHeight + 2
	if dst.Width() < needW || dst.Height() < needH {
		dst.DrawTextCenteredColored(dst.Height()/2, "Window too small", core.ColorYellow)
		return
	}

	offX := (dst.Width() - size*cellW) / 2
	offY := hudHeight + 1
	dst.DrawBox(core.NewRect(offX-1, offY-1, size*cellW+2, size+2))

	if g.state.Phase != core.PhaseMenu {
		fx := offX + g.state.Food.Pos.X*cellW
		fy := offY + g.state.Food.Pos.Y
		dst.SetColored(fx, fy, foodRune(g.state.Food.Type), foodColor(g.state.Food.Type))
	}

	for i, seg := range g.state.Segments {
		ch := '▒'
		color := core.ColorGreen
		if i == 0 {
			ch = '█'
			color = core.ColorBrightGreen
		}
		x := offX + seg.X*cellW
		y := offY + seg.Y
		dst.SetColored(x, y, ch, color)
		dst.SetColored(x+1, y, ch, color)
	}

	switch g.state.Phase {
	case core.PhaseMenu:
		dst.DrawTextCenteredColored(dst.Height()/2, "SNAKE", core.ColorBrightGreen)
		dst.DrawTextCenteredColored(dst.Height()/2+2, "Press Enter to start", core.ColorWhite)
	case core.PhasePaused:
		dst.DrawTextCenteredColored(dst.Height()/2, "Paused", core.ColorYellow)
		dst.DrawTextCenteredColored(dst.Height()/2+1, "Press P to continue", core.ColorGray)
	case core.PhaseGameOver:
		title := "Game Over"
		if g.state.End == EndGridFull {
			title = "You Win!"
		}
		dst.DrawTextCenteredColored(dst.Height()/2, title, core.ColorBrightYellow)
		dst.DrawTextCenteredColored(dst.Height()/2+1, fmt.Sprintf("Score: %d", g.state.Score), core.ColorWhite)
		dst.DrawTextCenteredColored(dst.Height()/2+2, "Press R to restart", core.ColorGray)
	}
}

func foodRune(t FoodType) rune {
	switch t {
	case FoodBonus:
		return '◆'
	case FoodGolden:
		return '★'
	default:
		return '●'
	}
}

func foodColor(t FoodType) core.Color {
	switch t {
	case FoodBonus:
		return core.ColorCyan
	case FoodGolden:
		return core.ColorBrightYellow
	default:
		return core.ColorRed
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Snake — Score: %d  Level: %d  Combo: x%d  Length: %d",
		g.state.Score, g.state.Level, g.state.Combo, len(g.state.Segments))
	if g.state.Food.Timed {
		hud += fmt.Sprintf("  %s %.1fs", g.state.Food.Type, g.state.Food.TTL)
	}
	dst.DrawTextColored(0, 0, hud, core.ColorWhite)
	for x := 0; x < dst.Width(); x++ {
		dst.Set(x, 1, '─')
	}
}
