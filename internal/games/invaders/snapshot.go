package invaders

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick       int
	Level      int
	Kills      int
	Escaped    int
	Remaining  int
	Score      int
	Running    bool
	Paused     bool
	PlayerX    int
	PlayerY    int
	GoalX      int
	GoalY      int
	Adversary  int // Live adversaries
	Projectile int // Live projectiles
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	st := g.session.Stats()
	snap := Snapshot{
		Tick:      g.tick,
		Level:     st.Level,
		Kills:     st.Kills,
		Escaped:   st.Escaped,
		Remaining: st.Remaining,
		Score:     st.Score,
		Running:   st.Running,
		Paused:    g.paused,
	}

	if p, ok := g.session.Player(); ok {
		snap.PlayerX, snap.PlayerY = p.Offset.X, p.Offset.Y
		snap.GoalX, snap.GoalY = p.Goal.X, p.Goal.Y
	}
	for _, e := range g.session.Entities() {
		switch e.Variant {
		case VariantAdversary:
			snap.Adversary++
		case VariantProjectile:
			snap.Projectile++
		}
	}
	return snap
}
