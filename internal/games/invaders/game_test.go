package invaders

import (
	"strings"
	"testing"

	"github.com/vovakirdan/alien-attack/internal/core"
	"github.com/vovakirdan/alien-attack/internal/registry"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{Seed: seed, ScreenW: 80, ScreenH: 24, TickRate: 20}
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{"invaders", "invaders_classic"} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q): %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, expected %q", g.ID(), id)
		}
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed and inputs should stay identical
	g1 := New()
	g1.Reset(testRuntime(12345))
	g2 := New()
	g2.Reset(testRuntime(12345))

	script := map[int]core.Action{
		10: core.ActionDown, 20: core.ActionFire, 25: core.ActionFire,
		40: core.ActionUp, 60: core.ActionRight, 80: core.ActionFire,
	}

	input := core.NewInputFrame()
	for i := 0; i < 600; i++ {
		input.Clear()
		if a, ok := script[i]; ok {
			input.Set(a)
		}
		g1.Step(input)
		g2.Step(input)

		if s1, s2 := g1.Snapshot(), g2.Snapshot(); s1 != s2 {
			t.Fatalf("tick %d: snapshots diverged\n%+v\n%+v", i, s1, s2)
		}
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	empty := core.NewInputFrame()

	g.Step(empty)
	g.Step(pause)
	if !g.State().Paused {
		t.Fatal("pause should toggle on")
	}
	frozen := g.Snapshot()

	fire := core.NewInputFrame()
	fire.Set(core.ActionFire)
	for i := 0; i < 5; i++ {
		g.Step(fire)
	}
	if g.Snapshot() != frozen {
		t.Error("paused game should not change")
	}

	g.Step(pause)
	if g.State().Paused {
		t.Error("pause should toggle off")
	}
	if g.Snapshot().Tick != frozen.Tick+1 {
		t.Errorf("unpausing step should tick, got %d", g.Snapshot().Tick)
	}
}

func TestGameOverFreezesStep(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	g.session.entities = append(g.session.entities, NewAdversary(core.Point{X: 3, Y: 6}, 1))

	res := g.Step(core.NewInputFrame())
	if !res.State.GameOver {
		t.Fatal("collision should end the game")
	}
	if countKind(res.Events, core.EventGameOver) != 1 {
		t.Errorf("expected a game over event, got %v", res.Events)
	}

	snap := g.Snapshot()
	res = g.Step(core.NewInputFrame())
	if len(res.Events) != 0 || g.Snapshot() != snap {
		t.Error("Step after game over should be a no-op")
	}
}

func TestClassicMovesImmediately(t *testing.T) {
	g := NewClassic()
	g.Reset(testRuntime(1))
	start := g.Snapshot()

	in := core.NewInputFrame()
	in.Set(core.ActionRight)
	g.Step(in)

	snap := g.Snapshot()
	if snap.PlayerX != start.PlayerX+g.cfg.Player.StepSize {
		t.Errorf("PlayerX = %d, expected %d", snap.PlayerX, start.PlayerX+g.cfg.Player.StepSize)
	}
	if snap.GoalX != 0 {
		t.Errorf("classic movement should not leave a goal, got %d", snap.GoalX)
	}
}

func TestFrameActionsQueueInOrder(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	in := core.NewInputFrame()
	in.Set(core.ActionFire)
	in.Set(core.ActionFire)
	in.Set(core.ActionFire)
	g.Step(in)
	if g.Snapshot().Projectile != 1 {
		t.Errorf("one action per tick, got %d projectiles", g.Snapshot().Projectile)
	}

	empty := core.NewInputFrame()
	g.Step(empty)
	g.Step(empty)
	if g.Snapshot().Projectile != 3 {
		t.Errorf("queued shots should fire on later ticks, got %d", g.Snapshot().Projectile)
	}
}

type recordingRenderer struct {
	entities []Entity
	huds     []HUD
}

func (r *recordingRenderer) DrawEntities(entities []Entity) {
	r.entities = append(r.entities, entities...)
}

func (r *recordingRenderer) DrawOverlay(hud HUD) {
	r.huds = append(r.huds, hud)
}

func TestDrawUsesRenderPort(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	r := &recordingRenderer{}
	g.Draw(r)

	if len(r.entities) != 1 || r.entities[0].Variant != VariantPlayer {
		t.Errorf("expected only the player, got %d entities", len(r.entities))
	}
	if len(r.huds) != 1 {
		t.Fatalf("overlay drawn %d times, expected 1", len(r.huds))
	}
	if want := (HUD{Level: 1, Remaining: 20}); r.huds[0] != want {
		t.Errorf("HUD = %+v, expected %+v", r.huds[0], want)
	}
}

func TestRenderToScreen(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Level: 1  Killed: 0  Escaped: 0  Remaining: 20  Score: 0") {
		t.Errorf("HUD row = %q", screen.Row(0))
	}

	// Player footprint origin is (1,5); pixel (2,0) is black
	cell := screen.GetCell(3, 5)
	if cell.Rune != core.BlockRune || cell.Color != core.ColorBlack {
		t.Errorf("player cell = %+v", cell)
	}
	if screen.Get(0, 5) != ' ' {
		t.Error("cells outside the footprint should stay blank")
	}
}

func TestRenderGameOverMessage(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	g.session.entities = append(g.session.entities, NewAdversary(core.Point{X: 3, Y: 6}, 1))
	g.Step(core.NewInputFrame())

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over box should be drawn")
	}
}
