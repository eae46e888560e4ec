package invaders

import (
	"errors"

	"github.com/vovakirdan/alien-attack/internal/core"
)

// Pixel is one colored cell of a footprint, relative to the entity offset.
type Pixel struct {
	X, Y  int
	Color core.Color
}

// Sprite is an immutable, non-empty footprint. Its boundary pixels are found
// once at construction; when several pixels share an extreme coordinate the
// first one in footprint order wins.
type Sprite struct {
	pixels []Pixel
	left   Pixel
	right  Pixel
	top    Pixel
	bottom Pixel
}

// ErrEmptySprite is returned when a footprint has no pixels.
var ErrEmptySprite = errors.New("invaders: sprite needs at least one pixel")

// NewSprite builds a footprint from pixels. The slice is copied.
func NewSprite(pixels []Pixel) (*Sprite, error) {
	if len(pixels) == 0 {
		return nil, ErrEmptySprite
	}

	s := &Sprite{pixels: append([]Pixel(nil), pixels...)}
	s.left, s.right, s.top, s.bottom = pixels[0], pixels[0], pixels[0], pixels[0]
	for _, p := range pixels[1:] {
		if p.X < s.left.X {
			s.left = p
		}
		if p.X > s.right.X {
			s.right = p
		}
		if p.Y < s.top.Y {
			s.top = p
		}
		if p.Y > s.bottom.Y {
			s.bottom = p
		}
	}
	return s, nil
}

// mustSprite is NewSprite for the built-in footprints.
func mustSprite(pixels ...Pixel) *Sprite {
	s, err := NewSprite(pixels)
	if err != nil {
		panic(err)
	}
	return s
}

// Pixels returns a copy of the footprint in its original order.
func (s *Sprite) Pixels() []Pixel {
	return append([]Pixel(nil), s.pixels...)
}

// Len returns the number of pixels in the footprint.
func (s *Sprite) Len() int {
	return len(s.pixels)
}

// Left returns the leftmost pixel.
func (s *Sprite) Left() Pixel { return s.left }

// Right returns the rightmost pixel.
func (s *Sprite) Right() Pixel { return s.right }

// Top returns the topmost pixel (smallest y; y grows downward).
func (s *Sprite) Top() Pixel { return s.top }

// Bottom returns the bottommost pixel (largest y).
func (s *Sprite) Bottom() Pixel { return s.bottom }

// Width returns the footprint width in cells.
func (s *Sprite) Width() int {
	return s.right.X - s.left.X + 1
}

// Height returns the footprint height in cells.
func (s *Sprite) Height() int {
	return s.bottom.Y - s.top.Y + 1
}

var (
	red    = core.ColorRed
	black  = core.ColorBlack
	white  = core.ColorBrightWhite
	teal   = core.ColorTeal
	indigo = core.ColorIndigo
)

// AdversarySprite is the alien footprint.
var AdversarySprite = mustSprite(
	Pixel{1, 0, red}, Pixel{2, 0, red}, Pixel{3, 0, red},
	Pixel{0, 1, black}, Pixel{1, 1, black}, Pixel{2, 1, black}, Pixel{3, 1, black}, Pixel{4, 1, black},
	Pixel{1, 2, black}, Pixel{2, 2, black}, Pixel{3, 2, black},
	Pixel{2, 3, red},
)

// ProjectileSprite is a single pink cell.
var ProjectileSprite = mustSprite(
	Pixel{0, 0, core.ColorPink},
)

// PlayerSprite is the pilot footprint.
var PlayerSprite = mustSprite(
	Pixel{2, 0, black}, Pixel{4, 0, black}, Pixel{3, 0, black},
	Pixel{2, 1, teal}, Pixel{3, 1, white}, Pixel{4, 1, teal},
	Pixel{2, 2, white}, Pixel{3, 2, white}, Pixel{4, 2, white},
	Pixel{3, 3, white},
	Pixel{1, 4, black}, Pixel{2, 4, indigo}, Pixel{3, 4, black}, Pixel{4, 4, black}, Pixel{5, 4, black},
	Pixel{0, 5, indigo}, Pixel{1, 5, black}, Pixel{2, 5, indigo}, Pixel{3, 5, indigo},
	Pixel{4, 5, indigo}, Pixel{5, 5, indigo}, Pixel{6, 5, indigo}, Pixel{7, 5, indigo},
	Pixel{1, 6, white}, Pixel{2, 6, white}, Pixel{3, 6, indigo}, Pixel{4, 6, black}, Pixel{5, 6, white},
	Pixel{2, 7, indigo}, Pixel{3, 7, black}, Pixel{4, 7, black},
	Pixel{2, 8, black}, Pixel{4, 8, black},
	Pixel{2, 9, black}, Pixel{4, 9, black},
	Pixel{2, 10, black}, Pixel{4, 10, black},
	Pixel{2, 12, red}, Pixel{4, 12, red},
	Pixel{2, 13, red}, Pixel{4, 13, red},
)
