package console

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/alien-attack/internal/core"
	"github.com/vovakirdan/alien-attack/internal/games/invaders"
)

func TestMapKey(t *testing.T) {
	tests := []struct {
		name   string
		ev     *tcell.EventKey
		action core.Action
		quit   bool
	}{
		{"up arrow", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), core.ActionUp, false},
		{"d", tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), core.ActionRight, false},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), core.ActionFire, false},
		{"esc", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), core.ActionPause, false},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), core.ActionQuit, true},
		{"ctrl+c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), core.ActionQuit, true},
		{"other", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := MapKey(tc.ev)
			if action != tc.action || quit != tc.quit {
				t.Errorf("MapKey = (%v, %v), expected (%v, %v)", action, quit, tc.action, tc.quit)
			}
		})
	}
}

func newSimRunner(t *testing.T) (*Runner, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(sim.Fini)
	sim.SetSize(80, 24)

	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 20, Seed: 7}
	return NewRunner(sim, invaders.New(), cfg, Options{}), sim
}

func rowText(s tcell.Screen, y, width int) string {
	var sb strings.Builder
	for x := 0; x < width; x++ {
		r, _, _, _ := s.GetContent(x, y)
		sb.WriteRune(r)
	}
	return sb.String()
}

func TestRunnerDrawsHUD(t *testing.T) {
	r, sim := newSimRunner(t)
	r.Draw()

	if row := rowText(sim, 0, 80); !strings.Contains(row, "Level: 1") {
		t.Errorf("top row = %q", row)
	}
	if r, _, _, _ := sim.GetContent(3, 5); r != core.BlockRune {
		t.Errorf("player cell = %q, expected a block", r)
	}
}

func TestRunnerQuitAndInput(t *testing.T) {
	r, _ := newSimRunner(t)

	if !r.HandleEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)) {
		t.Fatal("fire should not quit")
	}
	r.Tick()
	g := r.game.(*invaders.Game)
	if g.Snapshot().Projectile != 1 {
		t.Errorf("expected a projectile after firing, got %d", g.Snapshot().Projectile)
	}

	if r.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Error("q should quit")
	}
}
