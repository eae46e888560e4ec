package invaders

import (
	"math/rand"

	"github.com/vovakirdan/alien-attack/internal/config"
	"github.com/vovakirdan/alien-attack/internal/core"
)

// World is the playfield size in grid cells plus the pixel scale used for
// intersection math.
type World struct {
	Cols     int
	Rows     int
	CellSize int
}

// PixelWidth returns the playfield width in pixel space.
func (w World) PixelWidth() int {
	return w.Cols * w.CellSize
}

// Stats holds the session counters.
//
// Kills and Escaped count the current level and reset when it advances.
// Score spans the whole session: +1 per kill, -1 per escape.
type Stats struct {
	Level     int
	Kills     int
	Escaped   int
	Remaining int // Adversaries still to spawn this level
	Score     int
	Running   bool
}

// Session is one play-through: the live entity list, the counters and the
// spawn scheduler. It is driven one tick at a time by Advance and is not
// safe for concurrent use.
type Session struct {
	cfg        config.InvadersConfig
	world      World
	difficulty *config.DifficultyManager
	controller *Controller
	queue      *Queue
	rng        *rand.Rand

	entities []Entity
	playerID uint64
	stats    Stats
}

// NewSession starts a session with the player on the left edge, vertically
// centered.
func NewSession(cfg config.InvadersConfig, world World, rng *rand.Rand) *Session {
	world.CellSize = max(world.CellSize, 1)
	difficulty := config.NewDifficultyManager(cfg)
	level := difficulty.StartLevel()

	player := NewPlayer(core.Point{
		X: 1,
		Y: max((world.Rows-PlayerSprite.Height())/2, 0),
	}, cfg.Player.Cadence)

	return &Session{
		cfg:        cfg,
		world:      world,
		difficulty: difficulty,
		controller: NewController(cfg, rng),
		queue:      NewQueue(cfg.Input.QueueSize),
		rng:        rng,
		entities:   []Entity{player},
		playerID:   player.ID(),
		stats: Stats{
			Level:     level,
			Remaining: difficulty.Budget(level),
			Running:   true,
		},
	}
}

// Push buffers an input action for a later tick.
func (s *Session) Push(a core.Action) {
	s.queue.Push(a)
}

// Pending returns the number of buffered input actions.
func (s *Session) Pending() int {
	return s.queue.Len()
}

// Advance runs one tick: consume one buffered action, resolve every entity
// against the tick-start snapshot, then spawn or advance the level. After
// the game is lost Advance does nothing.
func (s *Session) Advance(tick int) []core.Event {
	if !s.stats.Running {
		return nil
	}

	s.consumeInput()
	events := s.resolve(tick)
	if !s.stats.Running {
		return events
	}
	return append(events, s.schedule(tick)...)
}

func (s *Session) consumeInput() {
	a, ok := s.queue.Pop()
	if !ok {
		return
	}
	player := s.player()
	if player == nil {
		return
	}
	if p, fired := s.controller.Handle(a, player); fired {
		s.entities = append(s.entities, p)
	}
}

func (s *Session) resolve(tick int) []core.Event {
	var events []core.Event
	cs := s.world.CellSize
	snapshot := s.entities

	hits := make([][]Entity, len(snapshot))
	for i := range snapshot {
		hits[i] = Intersections(&snapshot[i], snapshot, cs)
	}

	next := make([]Entity, 0, len(snapshot))
	for i := range snapshot {
		e := snapshot[i]
		switch update(&e, hits[i], tick, s.rng) {
		case OutcomeGameOver:
			if s.stats.Running {
				s.stats.Running = false
				events = append(events, s.event(core.EventGameOver, tick))
			}
			continue
		case OutcomeDelete:
			if e.Variant == VariantAdversary {
				s.stats.Kills++
				s.stats.Score++
				events = append(events, s.event(core.EventKill, tick))
			}
			continue
		}

		switch {
		case e.Variant == VariantAdversary && e.Bounds(cs).X < 0:
			s.stats.Escaped++
			s.stats.Score--
			events = append(events, s.event(core.EventEscape, tick))
		case e.Variant == VariantProjectile && e.Bounds(cs).X > s.world.PixelWidth():
			// Off the far edge, no bookkeeping
		default:
			next = append(next, e)
		}
	}

	s.entities = next
	return events
}

func (s *Session) schedule(tick int) []core.Event {
	level := s.stats.Level
	if s.stats.Remaining > 0 {
		if s.rng.Float64() <= s.cfg.Spawn.Threshold {
			return nil
		}
		at := core.Point{
			X: s.world.Cols - s.cfg.Adversary.SpawnMargin,
			Y: s.rng.Intn(max(s.world.Rows, 1)),
		}
		s.entities = append(s.entities, NewAdversary(at, s.difficulty.Cadence(level)))
		s.stats.Remaining--
		return []core.Event{s.event(core.EventSpawn, tick)}
	}

	if s.stats.Kills+s.stats.Escaped != s.difficulty.Budget(level) {
		return nil
	}
	s.stats.Level = s.difficulty.NextLevel(level)
	s.stats.Kills = 0
	s.stats.Escaped = 0
	s.stats.Remaining = s.difficulty.Budget(s.stats.Level)
	return []core.Event{s.event(core.EventLevelUp, tick)}
}

func (s *Session) event(kind core.EventKind, tick int) core.Event {
	return core.Event{Kind: kind, Tick: tick, Level: s.stats.Level}
}

func (s *Session) player() *Entity {
	for i := range s.entities {
		if s.entities[i].ID() == s.playerID {
			return &s.entities[i]
		}
	}
	return nil
}

// Player returns a copy of the player entity.
func (s *Session) Player() (Entity, bool) {
	if p := s.player(); p != nil {
		return *p, true
	}
	return Entity{}, false
}

// Entities returns a copy of the live entity list in update order.
func (s *Session) Entities() []Entity {
	return append([]Entity(nil), s.entities...)
}

// Stats returns the current counters.
func (s *Session) Stats() Stats {
	return s.stats
}

// Running reports whether the session is still in play.
func (s *Session) Running() bool {
	return s.stats.Running
}

// World returns the playfield geometry.
func (s *Session) World() World {
	return s.world
}
