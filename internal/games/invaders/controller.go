package invaders

import (
	"math/rand"

	"github.com/vovakirdan/alien-attack/internal/config"
	"github.com/vovakirdan/alien-attack/internal/core"
)

// Controller turns consumed input actions into intents on the player.
type Controller struct {
	motion            config.Motion
	maxNudge          int
	stepSize          int
	projectileCadence int
	rng               *rand.Rand
}

// NewController creates a controller from the player and projectile config.
func NewController(cfg config.InvadersConfig, rng *rand.Rand) *Controller {
	return &Controller{
		motion:            cfg.Player.Motion,
		maxNudge:          cfg.Player.MaxNudge,
		stepSize:          cfg.Player.StepSize,
		projectileCadence: cfg.Projectile.Cadence,
		rng:               rng,
	}
}

// direction maps movement actions to a unit vector.
var direction = map[core.Action]core.Point{
	core.ActionUp:    {X: 0, Y: -1},
	core.ActionDown:  {X: 0, Y: 1},
	core.ActionLeft:  {X: -1, Y: 0},
	core.ActionRight: {X: 1, Y: 0},
}

// Handle applies a to the player. When a fires, the new projectile is
// returned with ok set; the caller adds it to the live list.
func (c *Controller) Handle(a core.Action, player *Entity) (projectile Entity, ok bool) {
	if dir, move := direction[a]; move {
		c.move(player, dir)
		return Entity{}, false
	}
	if a != core.ActionFire {
		return Entity{}, false
	}

	right := player.Sprite.Right()
	at := core.Point{
		X: right.X + player.Offset.X + 1,
		Y: right.Y + player.Offset.Y,
	}
	return NewProjectile(at, c.projectileCadence), true
}

func (c *Controller) move(player *Entity, dir core.Point) {
	if c.motion == config.MotionStep {
		player.Offset = player.Offset.Add(core.Point{X: dir.X * c.stepSize, Y: dir.Y * c.stepSize})
		return
	}
	// Presses compound: the nudge is added to whatever is still pending
	nudge := c.rng.Intn(c.maxNudge + 1)
	player.Goal = player.Goal.Add(core.Point{X: dir.X * nudge, Y: dir.Y * nudge})
}
