// Package window runs a game in a desktop window through Ebiten. The game
// still renders into a cell screen; each cell becomes a cellSize square.
package window

import (
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/alien-attack/internal/core"
	"github.com/vovakirdan/alien-attack/internal/platform"
	"github.com/vovakirdan/alien-attack/internal/registry"
)

// DefaultCellSize is used when the game does not report its own.
const DefaultCellSize = 10

var background = color.RGBA{0xf4, 0xf4, 0xf4, 0xff}

// Options carries the optional collaborators of a window.
type Options struct {
	Logger *log.Logger
	Cues   platform.CuePlayer
}

// cellSizer is implemented by games with a pixel scale of their own.
type cellSizer interface {
	CellSize() int
}

// keyBinding maps physical keys to an action.
type keyBinding struct {
	keys   []ebiten.Key
	action core.Action
}

var bindings = []keyBinding{
	{[]ebiten.Key{ebiten.KeyW, ebiten.KeyUp}, core.ActionUp},
	{[]ebiten.Key{ebiten.KeyS, ebiten.KeyDown}, core.ActionDown},
	{[]ebiten.Key{ebiten.KeyA, ebiten.KeyLeft}, core.ActionLeft},
	{[]ebiten.Key{ebiten.KeyD, ebiten.KeyRight}, core.ActionRight},
	{[]ebiten.Key{ebiten.KeySpace}, core.ActionFire},
	{[]ebiten.Key{ebiten.KeyP, ebiten.KeyEscape}, core.ActionPause},
	{[]ebiten.Key{ebiten.KeyR}, core.ActionRestart},
	{[]ebiten.Key{ebiten.KeyQ}, core.ActionQuit},
}

// Window adapts a registry.Game to ebiten.Game.
type Window struct {
	game     registry.Game
	config   core.RuntimeConfig
	cellSize int
	buf      *core.Screen
	state    core.GameState
	observer *platform.Observer
}

// Run opens a window sized to cfg.ScreenW x cfg.ScreenH cells and blocks
// until it is closed or the user quits.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	w := New(game, cfg, opts)

	ebiten.SetWindowSize(cfg.ScreenW*w.cellSize, cfg.ScreenH*w.cellSize)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetTPS(max(cfg.TickRate, 1))

	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

// New resets game for a cfg-sized playfield.
func New(game registry.Game, cfg core.RuntimeConfig, opts Options) *Window {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	w := &Window{
		game:     game,
		config:   cfg,
		buf:      core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		observer: platform.NewObserver(game.ID(), opts.Logger, opts.Cues),
	}
	game.Reset(cfg)
	w.state = game.State()

	w.cellSize = DefaultCellSize
	if cs, ok := game.(cellSizer); ok && cs.CellSize() > 0 {
		w.cellSize = cs.CellSize()
	}
	return w
}

// Update runs one simulation tick. Ebiten calls it at the configured TPS.
func (w *Window) Update() error {
	frame := core.NewInputFrame()
	for _, b := range bindings {
		for _, k := range b.keys {
			if inpututil.IsKeyJustPressed(k) {
				frame.Set(b.action)
				break
			}
		}
	}

	if frame.Has(core.ActionQuit) {
		return ebiten.Termination
	}

	if frame.Has(core.ActionRestart) && w.state.GameOver {
		w.config.Seed = time.Now().UnixNano()
		w.game.Reset(w.config)
		w.state = w.game.State()
		w.observer.Restarted(w.config.Seed)
		return nil
	}

	result := w.game.Step(frame)
	w.state = result.State
	w.observer.Observe(result)
	return nil
}

// Draw paints block cells as filled squares and everything else as text.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	w.game.Render(w.buf)

	cs := float32(w.cellSize)
	for y := 0; y < w.buf.Height(); y++ {
		for x := 0; x < w.buf.Width(); x++ {
			cell := w.buf.GetCell(x, y)
			switch cell.Rune {
			case ' ':
			case core.BlockRune:
				vector.DrawFilledRect(screen, float32(x)*cs, float32(y)*cs, cs, cs, cell.Color.RGBA(), false)
			default:
				// Baseline sits near the bottom of the cell
				text.Draw(screen, string(cell.Rune), basicfont.Face7x13, x*w.cellSize, (y+1)*w.cellSize, textColor(cell.Color))
			}
		}
	}
}

func textColor(c core.Color) color.Color {
	if c == core.ColorDefault {
		return color.Black
	}
	return c.RGBA()
}

// Layout keeps the logical screen at the playfield size.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.buf.Width() * w.cellSize, w.buf.Height() * w.cellSize
}
