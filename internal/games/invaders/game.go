// Package invaders implements Alien Attack: the player glides along the
// left edge and shoots aliens drifting in from the right. A level ends once
// its whole spawn budget has been killed or has escaped; touching an alien
// ends the game.
package invaders

import (
	"math/rand"

	"github.com/vovakirdan/alien-attack/internal/config"
	"github.com/vovakirdan/alien-attack/internal/core"
	"github.com/vovakirdan/alien-attack/internal/registry"
)

// Game adapts a Session to the registry.Game interface. It owns the tick
// counter and the pause flag; everything else lives in the session.
type Game struct {
	id      string
	title   string
	classic bool // Fixed-step movement instead of glide

	runtime core.RuntimeConfig
	cfg     config.InvadersConfig
	session *Session
	tick    int
	paused  bool
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names fall back to
// the config default.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// New creates an Alien Attack game with glide movement.
func New() *Game {
	return &Game{id: "invaders", title: "Alien Attack"}
}

// NewClassic creates the fixed-step variant.
func NewClassic() *Game {
	return &Game{id: "invaders_classic", title: "Alien Attack Classic", classic: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Reset starts a new session sized to the runtime screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = g.loadConfig()

	world := World{
		Cols:     runtime.ScreenW,
		Rows:     runtime.ScreenH,
		CellSize: g.cfg.World.CellSize,
	}
	g.session = NewSession(g.cfg, world, rand.New(rand.NewSource(runtime.Seed)))
	g.tick = 0
	g.paused = false
}

func (g *Game) loadConfig() config.InvadersConfig {
	cfg, err := config.LoadInvaders(configPath)
	if err != nil {
		cfg = config.DefaultInvadersConfig()
	}
	if g.classic {
		classic := config.ClassicInvadersConfig()
		cfg.Player.Motion = classic.Player.Motion
		cfg.Player.Cadence = classic.Player.Cadence
	}
	if difficultyPreset != "" {
		config.ApplyInvadersPreset(&cfg, difficultyPreset)
	}
	return cfg
}

// Step advances the game by one tick. Actions in the frame are queued in
// order; the session consumes at most one of them per tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session == nil || !g.session.Running() {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	for _, a := range in.Actions {
		if a != core.ActionPause {
			g.session.Push(a)
		}
	}

	g.tick++
	events := g.session.Advance(g.tick)
	return core.StepResult{State: g.State(), Events: events}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.Draw(NewScreenRenderer(dst))
}

// Draw hands the live entities and the HUD to r.
func (g *Game) Draw(r Renderer) {
	if g.session == nil {
		return
	}
	r.DrawEntities(g.session.Entities())
	r.DrawOverlay(g.HUD())
}

// HUD returns the overlay values for the current tick.
func (g *Game) HUD() HUD {
	if g.session == nil {
		return HUD{}
	}
	st := g.session.Stats()
	return HUD{
		Level:     st.Level,
		Kills:     st.Kills,
		Escaped:   st.Escaped,
		Remaining: st.Remaining,
		Score:     st.Score,
		Paused:    g.paused,
		GameOver:  !st.Running,
	}
}

// CellSize returns the configured pixels per grid cell.
func (g *Game) CellSize() int {
	return max(g.cfg.World.CellSize, 1)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	st := g.session.Stats()
	return core.GameState{
		Score:    st.Score,
		Level:    st.Level,
		GameOver: !st.Running,
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("invaders", func() registry.Game {
		return New()
	})
	registry.Register("invaders_classic", func() registry.Game {
		return NewClassic()
	})
}
