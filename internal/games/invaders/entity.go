package invaders

import (
	"github.com/EngoEngine/ecs"

	"github.com/vovakirdan/alien-attack/internal/core"
)

// Variant selects an entity's update rule and interaction rules.
type Variant int

const (
	VariantPlayer Variant = iota + 1
	VariantAdversary
	VariantProjectile
)

// String returns a human-readable name for the variant.
func (v Variant) String() string {
	switch v {
	case VariantPlayer:
		return "player"
	case VariantAdversary:
		return "adversary"
	case VariantProjectile:
		return "projectile"
	default:
		return "unknown"
	}
}

// Outcome is what an entity's update asks the session to do with it.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeDelete
	OutcomeGameOver
)

// Entity is one live object in the playfield. The footprint is shared and
// never mutated; Offset and Goal change as the entity updates.
type Entity struct {
	ecs.BasicEntity

	Variant Variant
	Sprite  *Sprite
	Offset  core.Point // Grid position of the footprint origin
	Cadence int        // Acts on ticks where tick%Cadence == 0
	Goal    core.Point // Pending glide displacement, player only
}

func newEntity(v Variant, s *Sprite, at core.Point, cadence int) Entity {
	return Entity{
		BasicEntity: ecs.NewBasic(),
		Variant:     v,
		Sprite:      s,
		Offset:      at,
		Cadence:     max(cadence, 1),
	}
}

// NewPlayer creates the player entity at the given grid position.
func NewPlayer(at core.Point, cadence int) Entity {
	return newEntity(VariantPlayer, PlayerSprite, at, cadence)
}

// NewAdversary creates an alien at the given grid position.
func NewAdversary(at core.Point, cadence int) Entity {
	return newEntity(VariantAdversary, AdversarySprite, at, cadence)
}

// NewProjectile creates a bullet at the given grid position.
func NewProjectile(at core.Point, cadence int) Entity {
	return newEntity(VariantProjectile, ProjectileSprite, at, cadence)
}

// Eligible reports whether the entity acts on this tick.
func (e *Entity) Eligible(tick int) bool {
	return tick%max(e.Cadence, 1) == 0
}

// Bounds returns the entity's bounding box in pixel space.
func (e *Entity) Bounds(cellSize int) core.Rect {
	left, top := e.Sprite.Left(), e.Sprite.Top()
	return core.NewRect(
		(left.X+e.Offset.X)*cellSize,
		(top.Y+e.Offset.Y)*cellSize,
		e.Sprite.Width()*cellSize,
		e.Sprite.Height()*cellSize,
	)
}

// Cells returns the footprint translated to the current offset.
func (e *Entity) Cells() []Pixel {
	px := e.Sprite.Pixels()
	for i := range px {
		px[i].X += e.Offset.X
		px[i].Y += e.Offset.Y
	}
	return px
}
