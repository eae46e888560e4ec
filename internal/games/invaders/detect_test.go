package invaders

import (
	"testing"

	"github.com/vovakirdan/alien-attack/internal/core"
)

const testCell = 10

func TestOverlapsIsSymmetric(t *testing.T) {
	alien := NewAdversary(core.Point{X: 10, Y: 10}, 1)
	for x := 0; x <= 20; x++ {
		for y := 0; y <= 20; y++ {
			for _, other := range []Entity{
				NewProjectile(core.Point{X: x, Y: y}, 1),
				NewPlayer(core.Point{X: x, Y: y}, 1),
			} {
				ab := Overlaps(&alien, &other, testCell)
				ba := Overlaps(&other, &alien, testCell)
				if ab != ba {
					t.Fatalf("%v at (%d,%d): Overlaps = %v one way, %v the other", other.Variant, x, y, ab, ba)
				}
			}
		}
	}
}

func TestOverlapsEdges(t *testing.T) {
	// Alien at (10,10) spans cells x 10..14 and y 10..13
	alien := NewAdversary(core.Point{X: 10, Y: 10}, 1)

	tests := []struct {
		name string
		at   core.Point
		want bool
	}{
		{"inside", core.Point{X: 12, Y: 11}, true},
		{"touching right edge", core.Point{X: 15, Y: 12}, true},
		{"past right edge", core.Point{X: 16, Y: 12}, false},
		{"touching bottom edge", core.Point{X: 12, Y: 14}, true},
		{"past bottom edge", core.Point{X: 12, Y: 15}, false},
		{"touching left edge", core.Point{X: 9, Y: 12}, true},
		{"past left edge", core.Point{X: 8, Y: 12}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewProjectile(tc.at, 1)
			if got := Overlaps(&alien, &p, testCell); got != tc.want {
				t.Errorf("Overlaps = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestIntersectionsExcludesSelfAndKeepsOrder(t *testing.T) {
	alien := NewAdversary(core.Point{X: 10, Y: 10}, 1)
	first := NewProjectile(core.Point{X: 11, Y: 11}, 1)
	far := NewProjectile(core.Point{X: 40, Y: 40}, 1)
	second := NewProjectile(core.Point{X: 12, Y: 12}, 1)
	all := []Entity{first, alien, far, second}

	hits := Intersections(&alien, all, testCell)
	if len(hits) != 2 {
		t.Fatalf("got %d hits, expected 2", len(hits))
	}
	if hits[0].ID() != first.ID() || hits[1].ID() != second.ID() {
		t.Error("hits should follow list order")
	}
	for _, h := range hits {
		if h.ID() == alien.ID() {
			t.Error("an entity should never intersect itself")
		}
	}

	if got := Intersections(&alien, []Entity{alien}, testCell); len(got) != 0 {
		t.Errorf("lone entity got %d hits", len(got))
	}
}

func TestBoundsUsesFootprintAndOffset(t *testing.T) {
	alien := NewAdversary(core.Point{X: 3, Y: -2}, 1)
	want := core.NewRect(30, -20, 50, 40)
	if got := alien.Bounds(testCell); got != want {
		t.Errorf("Bounds = %+v, expected %+v", got, want)
	}
}
