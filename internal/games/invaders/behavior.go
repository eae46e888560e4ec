package invaders

import (
	"math/rand"

	"github.com/vovakirdan/alien-attack/internal/core"
)

// update runs one tick of e's behavior given the entities it currently
// intersects. Only e is mutated.
func update(e *Entity, hits []Entity, tick int, rng *rand.Rand) Outcome {
	switch e.Variant {
	case VariantAdversary:
		return updateAdversary(e, hits, tick, rng)
	case VariantProjectile:
		return updateProjectile(e, hits, tick)
	case VariantPlayer:
		updatePlayer(e, tick)
	}
	return OutcomeNone
}

func updateAdversary(e *Entity, hits []Entity, tick int, rng *rand.Rand) Outcome {
	// First matching hit in list order decides
	for i := range hits {
		switch hits[i].Variant {
		case VariantProjectile:
			return OutcomeDelete
		case VariantPlayer:
			return OutcomeGameOver
		}
	}

	if e.Eligible(tick) {
		jitter := 1
		if rng.Intn(2) == 0 {
			jitter = -1
		}
		e.Offset = e.Offset.Add(core.Point{X: -1, Y: jitter})
	}
	return OutcomeNone
}

func updateProjectile(e *Entity, hits []Entity, tick int) Outcome {
	for i := range hits {
		if hits[i].Variant == VariantAdversary {
			return OutcomeDelete
		}
	}

	if e.Eligible(tick) {
		e.Offset.X++
	}
	return OutcomeNone
}

// updatePlayer consumes the pending goal: the whole remaining value is
// applied, then it shrinks one unit toward zero.
func updatePlayer(e *Entity, tick int) {
	if !e.Eligible(tick) {
		return
	}
	if e.Goal.X != 0 {
		e.Offset.X += e.Goal.X
		e.Goal.X -= core.Sign(e.Goal.X)
	}
	if e.Goal.Y != 0 {
		e.Offset.Y += e.Goal.Y
		e.Goal.Y -= core.Sign(e.Goal.Y)
	}
}
