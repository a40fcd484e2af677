// Package grid provides the axis-aligned cells drawn as the editor's
// backdrop lattice and used to locate the 3D cursor.
package grid

import "github.com/Faultbox/facetcraft/pkg/math"

// Face tags one side of a cell.
type Face int

// Cell sides.
const (
	Front Face = iota
	Right
	Back
	Left
	Top
	Bottom
)

// Faces lists every side in draw order.
var Faces = [6]Face{Front, Right, Back, Left, Top, Bottom}

// String returns the side name.
func (f Face) String() string {
	switch f {
	case Front:
		return "front"
	case Right:
		return "right"
	case Back:
		return "back"
	case Left:
		return "left"
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// Normal returns the outward unit normal of the side.
func (f Face) Normal() math.Vec3 {
	switch f {
	case Front:
		return math.Vec3{X: 0, Y: 0, Z: 1}
	case Right:
		return math.Vec3{X: 1, Y: 0, Z: 0}
	case Back:
		return math.Vec3{X: 0, Y: 0, Z: -1}
	case Left:
		return math.Vec3{X: -1, Y: 0, Z: 0}
	case Top:
		return math.Vec3{X: 0, Y: 1, Z: 0}
	case Bottom:
		return math.Vec3{X: 0, Y: -1, Z: 0}
	default:
		return math.Vec3{}
	}
}

// Side is one square face of a cell with its own four corners.
type Side struct {
	Face        Face
	BottomLeft  math.Vec3
	BottomRight math.Vec3
	TopRight    math.Vec3
	TopLeft     math.Vec3
}

// NewSide computes the corners of a side from its bottom-left corner.
// Front and back sides span X and Y, left and right span Z and Y, top and
// bottom span X and Z.
func NewSide(face Face, bottomLeft math.Vec3, width float32) Side {
	s := Side{Face: face, BottomLeft: bottomLeft}
	switch face {
	case Front, Back:
		s.BottomRight = bottomLeft.Add(math.Vec3{X: width})
		s.TopRight = bottomLeft.Add(math.Vec3{X: width, Y: width})
		s.TopLeft = bottomLeft.Add(math.Vec3{Y: width})
	case Right, Left:
		s.BottomRight = bottomLeft.Add(math.Vec3{Z: width})
		s.TopRight = bottomLeft.Add(math.Vec3{Y: width, Z: width})
		s.TopLeft = bottomLeft.Add(math.Vec3{Y: width})
	case Top, Bottom:
		s.BottomRight = bottomLeft.Add(math.Vec3{X: width})
		s.TopRight = bottomLeft.Add(math.Vec3{X: width, Z: width})
		s.TopLeft = bottomLeft.Add(math.Vec3{Z: width})
	}
	return s
}

// Project drops the axis the side is perpendicular to.
func (f Face) Project(p math.Vec3) math.Vec2 {
	switch f {
	case Front, Back:
		return p.XY()
	case Right, Left:
		return math.Vec2{X: p.Z, Y: p.Y}
	default:
		return p.XZ()
	}
}

// Contains reports whether p projects inside the side's rectangle, bounds
// inclusive. Only the two axes the side spans are tested.
func (s Side) Contains(p math.Vec3) bool {
	if s.Face < Front || s.Face > Bottom {
		return false
	}
	return s.Face.Project(p).InRect(s.Face.Project(s.BottomLeft), s.Face.Project(s.TopRight))
}

// Corners returns the corners in the winding that makes the side face
// outward.
func (s Side) Corners() [4]math.Vec3 {
	switch s.Face {
	case Back, Right, Top:
		return [4]math.Vec3{s.BottomRight, s.BottomLeft, s.TopLeft, s.TopRight}
	default:
		return [4]math.Vec3{s.BottomLeft, s.BottomRight, s.TopRight, s.TopLeft}
	}
}
