// Package sound plays short synthesized tones for game events.
package sound

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/alien-attack/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Tone is a sine beep.
type Tone struct {
	Freq     float64
	Duration time.Duration
}

// DefaultTones maps event kinds to their cue. Kinds without an entry are silent.
var DefaultTones = map[core.EventKind]Tone{
	core.EventKill:     {Freq: 880, Duration: 50 * time.Millisecond},
	core.EventEscape:   {Freq: 220, Duration: 80 * time.Millisecond},
	core.EventLevelUp:  {Freq: 1320, Duration: 150 * time.Millisecond},
	core.EventGameOver: {Freq: 110, Duration: 400 * time.Millisecond},
}

// Cues plays event tones through the system speaker.
type Cues struct {
	mu     sync.Mutex
	tones  map[core.EventKind]Tone
	active bool
}

// Open initializes the speaker. The returned Cues must be closed.
func Open() (*Cues, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("sound: init speaker: %w", err)
	}
	return &Cues{tones: DefaultTones, active: true}, nil
}

// Streamer builds the sample stream for a tone.
func Streamer(t Tone) (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, t.Freq)
	if err != nil {
		return nil, fmt.Errorf("sound: tone %.0f Hz: %w", t.Freq, err)
	}
	return beep.Take(sampleRate.N(t.Duration), sine), nil
}

// Play starts the tone for kind without blocking.
func (c *Cues) Play(kind core.EventKind) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.active {
		return
	}
	t, ok := c.tones[kind]
	if !ok {
		return
	}
	s, err := Streamer(t)
	if err != nil {
		return
	}
	speaker.Play(s)
}

// Close stops playback and releases the speaker.
func (c *Cues) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.active {
		return
	}
	c.active = false
	speaker.Clear()
	speaker.Close()
}
