package invaders

import (
	"fmt"

	"github.com/vovakirdan/alien-attack/internal/core"
)

// HUD is the overlay shown on top of the playfield.
type HUD struct {
	Level     int
	Kills     int
	Escaped   int
	Remaining int
	Score     int
	Paused    bool
	GameOver  bool
}

// Text returns the status line.
func (h HUD) Text() string {
	return fmt.Sprintf("Level: %d  Killed: %d  Escaped: %d  Remaining: %d  Score: %d",
		h.Level, h.Kills, h.Escaped, h.Remaining, h.Score)
}

// Renderer is the display port. DrawEntities is called once per frame with
// the live entities, then DrawOverlay with the HUD.
type Renderer interface {
	DrawEntities(entities []Entity)
	DrawOverlay(hud HUD)
}

// ScreenRenderer draws onto a cell screen: one block rune per footprint
// pixel, the HUD on the top row.
type ScreenRenderer struct {
	dst *core.Screen
}

// NewScreenRenderer creates a renderer targeting dst.
func NewScreenRenderer(dst *core.Screen) *ScreenRenderer {
	return &ScreenRenderer{dst: dst}
}

// DrawEntities paints each entity's footprint at its offset. Cells outside
// the screen are clipped.
func (r *ScreenRenderer) DrawEntities(entities []Entity) {
	for i := range entities {
		for _, p := range entities[i].Cells() {
			r.dst.SetCell(p.X, p.Y, core.BlockRune, p.Color)
		}
	}
}

// DrawOverlay writes the status line and, when relevant, a centered
// pause or game-over box.
func (r *ScreenRenderer) DrawOverlay(hud HUD) {
	r.dst.DrawHLine(0, 0, r.dst.Width(), ' ', core.ColorDefault)
	r.dst.DrawTextColor(1, 0, hud.Text(), core.ColorBrightYellow)

	switch {
	case hud.GameOver:
		r.drawCenteredMessage("GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", hud.Score))
	case hud.Paused:
		r.drawCenteredMessage("PAUSED", "Press P to resume")
	}
}

func (r *ScreenRenderer) drawCenteredMessage(title, subtitle string) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((r.dst.Width()-boxW)/2, (r.dst.Height()-boxH)/2, boxW, boxH)

	r.dst.DrawRect(box, ' ')
	r.dst.DrawBox(box)
	r.dst.DrawText(box.X+(boxW-len(title))/2, box.Y+1, title)
	r.dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle)
}
