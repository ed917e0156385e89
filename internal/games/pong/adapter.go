package pong

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/mvasiliev/arcade-core/internal/config"
	"github.com/mvasiliev/arcade-core/internal/core"
	"github.com/mvasiliev/arcade-core/internal/registry"
)

// Game is the thin shell that adapts the pure simulation to the registry
// interface. All gameplay logic lives in Advance and the functions it
// calls; the shell only holds the current state, the RNG, and the render
// mapping from court coordinates to screen cells.
type Game struct {
	cfg     config.PongConfig
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
)

// SetConfigPath sets the config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset selects the AI tier used on the next Reset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// New creates a new Pong game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("pong", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "pong" }

// Title returns the display name.
func (g *Game) Title() string { return "Pong" }

// Reset initializes/restarts the game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := config.LoadPong(configPath)
	if err != nil {
		cfg = config.DefaultPongConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPongPreset(&cfg, config.ParsePreset(difficultyPreset))
	}

	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.dt = rc.Dt()
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH

	// The session ID identifies this run in the score store. It is minted
	// here, outside the simulation, so it never touches the RNG stream.
	tier := cfg.AI.Tier(config.ParsePreset(difficultyPreset))
	g.state = NewState(cfg, tier, uuid.NewString())
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
	if input.Has(core.ActionUp) {
		in.Left = MoveUp
	} else if input.Has(core.ActionDown) {
		in.Left = MoveDown
	}

	g.state = Advance(g.cfg, g.state, in, g.dt, g.rng)
	return core.StepResult{State: g.State()}
}

// State reports the session summary for the platform layer.
func (g *Game) State() core.GameState {
	outcome := ""
	if g.state.Win.HasWinner {
		outcome = "loss"
		if g.state.Win.Winner == SideLeft {
			outcome = "win"
		}
	}
	return core.GameState{
		Score:     g.state.LeftScore.Score,
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

// Render draws the court scaled into the destination screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	fieldH := dst.Height() - hudHeight
	if dst.Width() < 20 || fieldH < 8 {
		dst.DrawTextCenteredColored(dst.Height()/2, "Window too small", core.ColorYellow)
		return
	}

	sx := float64(dst.Width()) / g.cfg.Court.Width
	sy := float64(fieldH) / g.cfg.Court.Height

	// Center line
	midX := dst.Width() / 2
	for y := hudHeight; y < dst.Height(); y += 2 {
		dst.SetColored(midX, y, '┊', core.ColorGray)
	}

	g.renderPaddle(dst, g.state.Left, sx, sy)
	g.renderPaddle(dst, g.state.Right, sx, sy)

	if g.state.BallInPlay {
		bx := int(g.state.Ball.Pos.X * sx)
		by := hudHeight + int(g.state.Ball.Pos.Y*sy)
		dst.SetColored(bx, by, '●', core.ColorBrightYellow)
	}

	switch {
	case g.state.Phase == core.PhaseMenu:
		dst.DrawTextCenteredColored(dst.Height()/2, "PONG", core.ColorBrightGreen)
		dst.DrawTextCenteredColored(dst.Height()/2+2, "Press Enter to start", core.ColorWhite)
	case g.state.Phase == core.PhasePaused:
		dst.DrawTextCenteredColored(dst.Height()/2, "Paused", core.ColorYellow)
		dst.DrawTextCenteredColored(dst.Height()/2+1, "Press P to continue", core.ColorGray)
	case g.state.Phase == core.PhaseGameOver:
		winner := "You win!"
		if g.state.Win.Winner == SideRight {
			winner = "AI wins!"
		}
		dst.DrawTextCenteredColored(dst.Height()/2, winner, core.ColorBrightYellow)
		dst.DrawTextCenteredColored(dst.Height()/2+1, "Press R to restart", core.ColorGray)
	case !g.state.BallInPlay && g.state.Phase == core.PhasePlaying:
		msg := fmt.Sprintf("Serve in %.1f", g.state.ServeTimer)
		dst.DrawTextCenteredColored(dst.Height()/2+3, msg, core.ColorGray)
	}
}

func (g *Game) renderPaddle(dst *core.Screen, p Paddle, sx, sy float64) {
	x := int(p.Pos.X * sx)
	top := hudHeight + int(p.Pos.Y*sy)
	h := core.Max(1, int(p.Height*sy))
	color := core.ColorCyan
	if p.IsAI {
		color = core.ColorMagenta
	}
	for i := 0; i < h; i++ {
		dst.SetColored(x, top+i, '█', color)
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Pong — You: %d  AI: %d  Rally: %d  First to %d",
		g.state.LeftScore.Score, g.state.RightScore.Score,
		g.state.Ball.RallyCount, g.cfg.Gameplay.WinScore)
	dst.DrawTextColored(0, 0, hud, core.ColorWhite)
	for x := 0; x < dst.Width(); x++ {
		dst.Set(x, 1, '─')
	}
}
