package grid

import "github.com/Faultbox/facetcraft/pkg/math"

// Lattice is a count x count x count block of cells centered on the origin.
type Lattice struct {
	unit  float32
	count int
	cells []*Cell
}

// NewLattice builds the lattice. Cells are ordered by X, then Y, then Z.
func NewLattice(unit float32, count int) *Lattice {
	l := &Lattice{}
	l.Define(unit, count)
	return l
}

// Define rebuilds every cell for a new unit size and count.
func (l *Lattice) Define(unit float32, count int) {
	if count < 0 {
		count = 0
	}
	l.unit = unit
	l.count = count
	l.cells = make([]*Cell, 0, count*count*count)

	half := -unit * float32(count) / 2
	origin := math.Vec3{X: half, Y: half, Z: half}
	for i := 0; i < count; i++ {
		for j := 0; j < count; j++ {
			for k := 0; k < count; k++ {
				offset := math.Vec3{X: unit * float32(i), Y: unit * float32(j), Z: unit * float32(k)}
				l.cells = append(l.cells, NewCell(origin.Add(offset), unit))
			}
		}
	}
}

// Unit returns the cell width.
func (l *Lattice) Unit() float32 {
	return l.unit
}

// Count returns the number of cells along each axis.
func (l *Lattice) Count() int {
	return l.count
}

// Cells returns the cells.
func (l *Lattice) Cells() []*Cell {
	return l.cells
}

// Bounds returns the extent of the whole lattice.
func (l *Lattice) Bounds() (min, max math.Vec3) {
	h := l.unit * float32(l.count) / 2
	return math.Vec3{X: -h, Y: -h, Z: -h}, math.Vec3{X: h, Y: h, Z: h}
}

// CellAt returns the cell containing p. A point on a shared boundary
// belongs to the first cell in lattice order.
func (l *Lattice) CellAt(p math.Vec3) (*Cell, bool) {
	for _, c := range l.cells {
		if c.Contains(p) {
			return c, true
		}
	}
	return nil, false
}

// Primitives returns every side of every cell, highlighting the cell that
// contains pointer.
func (l *Lattice) Primitives(pointer *math.Vec3) []Primitive {
	out := make([]Primitive, 0, len(l.cells)*6)
	for _, c := range l.cells {
		out = append(out, c.Primitives(pointer)...)
	}
	return out
}
