package registry

import (
	"testing"

	"github.com/vovakirdan/alien-attack/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string { return g.id }
func (g stubGame) Title() string { return "Stub " + g.id }
func (g stubGame) Reset(core.RuntimeConfig) {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen) {}
func (g stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_b", func() Game { return stubGame{id: "stub_b"} })
	Register("stub_a", func() Game { return stubGame{id: "stub_a"} })

	if !Exists("stub_a") || Exists("missing") {
		t.Error("Exists reports the wrong registrations")
	}

	g, err := Create("stub_b")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "stub_b" {
		t.Errorf("ID() = %q", g.ID())
	}
	if _, err := Create("missing"); err == nil {
		t.Error("Create should fail for unknown IDs")
	}

	ids := IDs()
	if len(ids) < 2 || ids[0] != "stub_a" || ids[1] != "stub_b" {
		t.Errorf("IDs() = %v, expected sorted stub_a, stub_b", ids)
	}
	for _, info := range List() {
		if info.ID == "stub_a" && info.Title != "Stub stub_a" {
			t.Errorf("title = %q", info.Title)
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", func() Game { return stubGame{id: "stub_dup"} })
	defer func() {
		if recover() == nil {
			t.Error("duplicate registration should panic")
		}
	}()
	Register("stub_dup", func() Game { return stubGame{id: "stub_dup"} })
}
