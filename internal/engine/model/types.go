// Package model implements the facet mesh kernel: a deduplicated coordinate
// table, faces of colored facets, normals, subdivision, pose animation and
// owned sub-models.
package model

import (
	"errors"

	"github.com/Faultbox/facetcraft/pkg/math"
)

// Mesh errors.
var (
	ErrCoordinateExists = errors.New("coordinate already exists in the table")
	ErrCoordinateRange  = errors.New("coordinate index out of range")
	ErrSelfReference    = errors.New("mesh cannot own itself or an ancestor")
	ErrInvalidAxis      = errors.New("axis must be 0 (x), 1 (y) or 2 (z)")
)

var (
	// DefaultColor is fuchsia, the color of facets added without one.
	DefaultColor = math.Vec3{X: 1, Y: 0, Z: 1}
	// DefaultNormal is +Z.
	DefaultNormal = math.Vec3{X: 0, Y: 0, Z: 1}
)

// Facet is one corner of a face: a coordinate index plus its color and normal.
type Facet struct {
	Vertex int
	Color  math.Vec3
	Normal math.Vec3
}

// NewFacet returns a facet with the default normal.
func NewFacet(vertex int, color math.Vec3) Facet {
	return Facet{Vertex: vertex, Color: color, Normal: DefaultNormal}
}

// Index addresses one facet as a (face, facet) pair.
type Index struct {
	Face  int
	Facet int
}

// NoSelection is the reserved index meaning nothing is selected.
var NoSelection = Index{Face: -1, Facet: -1}

// IsNone reports whether idx is the NoSelection sentinel.
func (idx Index) IsNone() bool {
	return idx == NoSelection
}

// DrawMode selects how a face is rasterized.
type DrawMode int

// Draw modes.
const (
	DrawPolygon DrawMode = iota
	DrawLineLoop
)

// String returns a human-readable draw mode name.
func (d DrawMode) String() string {
	switch d {
	case DrawPolygon:
		return "polygon"
	case DrawLineLoop:
		return "line-loop"
	default:
		return "unknown"
	}
}

// Bounds holds the axis-aligned bounding box of the mesh coordinates.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Center returns the midpoint of the box.
func (b Bounds) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the box extent per axis.
func (b Bounds) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}
