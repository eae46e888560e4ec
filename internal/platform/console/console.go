// Package console runs a game directly on the terminal through tcell, without
// Bubble Tea. A ticker drives the simulation and a goroutine feeds key
// events into the loop.
package console

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/alien-attack/internal/core"
	"github.com/vovakirdan/alien-attack/internal/platform"
	"github.com/vovakirdan/alien-attack/internal/registry"
)

// Options carries the optional collaborators of a Runner.
type Options struct {
	Logger *log.Logger
	Cues   platform.CuePlayer
}

// Runner owns the tcell screen and drives one game.
type Runner struct {
	screen   tcell.Screen
	game     registry.Game
	config   core.RuntimeConfig
	buf      *core.Screen
	frame    core.InputFrame
	state    core.GameState
	observer *platform.Observer
}

// Run opens the terminal, plays game until the user quits and restores the
// terminal.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("console: new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("console: init screen: %w", err)
	}
	defer screen.Fini()

	r := NewRunner(screen, game, cfg, opts)
	r.Loop()
	return nil
}

// NewRunner sizes the game to the screen and resets it. The screen must
// already be initialized.
func NewRunner(screen tcell.Screen, game registry.Game, cfg core.RuntimeConfig, opts Options) *Runner {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if w, h := screen.Size(); w > 0 && h > 0 {
		cfg.ScreenW, cfg.ScreenH = w, h
	}

	r := &Runner{
		screen:   screen,
		game:     game,
		config:   cfg,
		buf:      core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		frame:    core.NewInputFrame(),
		observer: platform.NewObserver(game.ID(), opts.Logger, opts.Cues),
	}
	game.Reset(cfg)
	r.state = game.State()
	return r
}

// Loop runs until a quit key is pressed.
func (r *Runner) Loop() {
	ticker := time.NewTicker(time.Second / time.Duration(max(r.config.TickRate, 1)))
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := r.screen.PollEvent()
			if ev == nil {
				// Screen finalized
				close(events)
				return
			}
			events <- ev
		}
	}()

	r.Draw()
	for {
		select {
		case ev, ok := <-events:
			if !ok || !r.HandleEvent(ev) {
				return
			}
		case <-ticker.C:
			r.Tick()
			r.Draw()
		}
	}
}

// HandleEvent buffers key input and reacts to resizes. It returns false
// when the user asked to quit.
func (r *Runner) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		action, quit := MapKey(ev)
		if quit {
			return false
		}
		if action == core.ActionRestart && !r.state.GameOver {
			return true
		}
		r.frame.Set(action)

	case *tcell.EventResize:
		r.screen.Sync()
		w, h := r.screen.Size()
		r.config.ScreenW, r.config.ScreenH = w, h
		r.buf.Resize(w, h)
		if !r.state.GameOver {
			r.game.Reset(r.config)
			r.state = r.game.State()
		}
	}
	return true
}

// Tick steps the game once with the buffered input.
func (r *Runner) Tick() {
	if r.frame.Has(core.ActionRestart) && r.state.GameOver {
		r.config.Seed = time.Now().UnixNano()
		r.game.Reset(r.config)
		r.state = r.game.State()
		r.observer.Restarted(r.config.Seed)
		r.frame.Clear()
		return
	}

	result := r.game.Step(r.frame)
	r.state = result.State
	r.observer.Observe(result)
	r.frame.Clear()
}

// Draw renders the game into the tcell screen.
func (r *Runner) Draw() {
	r.game.Render(r.buf)
	for y := 0; y < r.buf.Height(); y++ {
		for x := 0; x < r.buf.Width(); x++ {
			cell := r.buf.GetCell(x, y)
			r.screen.SetContent(x, y, cell.Rune, nil, styleFor(cell.Color))
		}
	}
	r.screen.Show()
}

func styleFor(c core.Color) tcell.Style {
	if c == core.ColorDefault {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(tcell.PaletteColor(int(c.ANSI())))
}

// MapKey translates a tcell key event to an action and reports quit keys.
func MapKey(ev *tcell.EventKey) (core.Action, bool) {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return core.ActionQuit, true
	case tcell.KeyUp:
		return core.ActionUp, false
	case tcell.KeyDown:
		return core.ActionDown, false
	case tcell.KeyLeft:
		return core.ActionLeft, false
	case tcell.KeyRight:
		return core.ActionRight, false
	case tcell.KeyEscape:
		return core.ActionPause, false
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return core.ActionQuit, true
		case 'w':
			return core.ActionUp, false
		case 's':
			return core.ActionDown, false
		case 'a':
			return core.ActionLeft, false
		case 'd':
			return core.ActionRight, false
		case ' ':
			return core.ActionFire, false
		case 'p':
			return core.ActionPause, false
		case 'r':
			return core.ActionRestart, false
		}
	}
	return core.ActionNone, false
}
