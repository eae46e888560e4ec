package invaders

// Intersections returns every entity in all whose bounding box touches e's,
// in list order. e itself is skipped by ID.
//
// Each query is O(n), so a full tick is O(n²). That is fine for the few
// dozen entities a level holds.
func Intersections(e *Entity, all []Entity, cellSize int) []Entity {
	var hits []Entity
	box := e.Bounds(cellSize)
	for i := range all {
		if all[i].ID() == e.ID() {
			continue
		}
		if box.Touches(all[i].Bounds(cellSize)) {
			hits = append(hits, all[i])
		}
	}
	return hits
}

// Overlaps reports whether two entities' bounding boxes touch.
func Overlaps(a, b *Entity, cellSize int) bool {
	return a.Bounds(cellSize).Touches(b.Bounds(cellSize))
}
