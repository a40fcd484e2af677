package model

import (
	"fmt"

	"github.com/Faultbox/facetcraft/pkg/math"
)

// CoordinateTable is an ordered list of unique points. A point's insertion
// index is its identity. No two entries are ever exactly equal.
type CoordinateTable struct {
	points []math.Vec3
	index  map[math.Vec3]int
}

// Len returns the number of stored points.
func (t *CoordinateTable) Len() int {
	return len(t.points)
}

// At returns the point stored at i.
func (t *CoordinateTable) At(i int) math.Vec3 {
	return t.points[i]
}

// Points returns a copy of the stored points in index order.
func (t *CoordinateTable) Points() []math.Vec3 {
	out := make([]math.Vec3, len(t.points))
	copy(out, t.points)
	return out
}

// Lookup returns the index of p if it is stored.
func (t *CoordinateTable) Lookup(p math.Vec3) (int, bool) {
	i, ok := t.index[p]
	return i, ok
}

// Insert returns the index of p, appending it if it is not stored yet.
func (t *CoordinateTable) Insert(p math.Vec3) int {
	if i, ok := t.Lookup(p); ok {
		return i
	}
	if t.index == nil {
		t.index = make(map[math.Vec3]int)
	}
	i := len(t.points)
	t.points = append(t.points, p)
	t.index[p] = i
	return i
}

// Set moves the point at i to p. Moving onto another stored point is
// rejected so the table stays unique.
func (t *CoordinateTable) Set(i int, p math.Vec3) error {
	if i < 0 || i >= len(t.points) {
		return fmt.Errorf("%w: %d of %d", ErrCoordinateRange, i, len(t.points))
	}
	old := t.points[i]
	if old == p {
		return nil
	}
	if j, ok := t.index[p]; ok {
		return fmt.Errorf("%w: %v at index %d", ErrCoordinateExists, p, j)
	}
	delete(t.index, old)
	t.points[i] = p
	t.index[p] = i
	return nil
}

// Reset empties the table.
func (t *CoordinateTable) Reset() {
	t.points = nil
	t.index = nil
}

// Rebuild replaces the table with points, merging exact duplicates. The
// returned slice maps each input position to its index in the new table.
func (t *CoordinateTable) Rebuild(points []math.Vec3) []int {
	t.Reset()
	remap := make([]int, len(points))
	for i, p := range points {
		remap[i] = t.Insert(p)
	}
	return remap
}

func (t *CoordinateTable) clone() CoordinateTable {
	c := CoordinateTable{}
	c.Rebuild(t.points)
	return c
}
