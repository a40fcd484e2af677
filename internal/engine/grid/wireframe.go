package grid

import "github.com/Faultbox/facetcraft/pkg/math"

// BoxWireframeVertexCount is the number of vertices for a box wireframe (12 edges x 2).
const BoxWireframeVertexCount = 24

// BoxWireframe returns line endpoints for the 12 edges of the box spanned
// by min and max.
func BoxWireframe(min, max math.Vec3) []math.Vec3 {
	return []math.Vec3{
		// Bottom
		{X: min.X, Y: min.Y, Z: min.Z}, {X: max.X, Y: min.Y, Z: min.Z},
		{X: max.X, Y: min.Y, Z: min.Z}, {X: max.X, Y: min.Y, Z: max.Z},
		{X: max.X, Y: min.Y, Z: max.Z}, {X: min.X, Y: min.Y, Z: max.Z},
		{X: min.X, Y: min.Y, Z: max.Z}, {X: min.X, Y: min.Y, Z: min.Z},
		// Top
		{X: min.X, Y: max.Y, Z: min.Z}, {X: max.X, Y: max.Y, Z: min.Z},
		{X: max.X, Y: max.Y, Z: min.Z}, {X: max.X, Y: max.Y, Z: max.Z},
		{X: max.X, Y: max.Y, Z: max.Z}, {X: min.X, Y: max.Y, Z: max.Z},
		{X: min.X, Y: max.Y, Z: max.Z}, {X: min.X, Y: max.Y, Z: min.Z},
		// Vertical
		{X: min.X, Y: min.Y, Z: min.Z}, {X: min.X, Y: max.Y, Z: min.Z},
		{X: max.X, Y: min.Y, Z: min.Z}, {X: max.X, Y: max.Y, Z: min.Z},
		{X: max.X, Y: min.Y, Z: max.Z}, {X: max.X, Y: max.Y, Z: max.Z},
		{X: min.X, Y: min.Y, Z: max.Z}, {X: min.X, Y: max.Y, Z: max.Z},
	}
}

// LineLoopSegments expands a closed loop of corners into line segment
// endpoints, two per edge.
func LineLoopSegments(corners [4]math.Vec3) []math.Vec3 {
	out := make([]math.Vec3, 0, 8)
	for i := range corners {
		out = append(out, corners[i], corners[(i+1)%len(corners)])
	}
	return out
}

// QuadTriangles splits a quad into two triangles with the same winding.
func QuadTriangles(corners [4]math.Vec3) []math.Vec3 {
	return []math.Vec3{
		corners[0], corners[1], corners[2],
		corners[0], corners[2], corners[3],
	}
}
