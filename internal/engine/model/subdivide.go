package model

import "github.com/Faultbox/facetcraft/pkg/math"

// FaceResolution replaces the open face with a fan of triangles around its
// first vertex. Each edge not touching that anchor is split into polygons
// linear segments, and each segment forms one triangle with the anchor.
// Colors are interpolated along the edge. It is a no-op unless the open
// face has at least three facets and polygons >= 2. The last triangle is
// left open.
func (m *Mesh) FaceResolution(polygons int) {
	last := len(m.faces) - 1
	if len(m.faces[last]) < 3 || polygons < 2 {
		return
	}

	facets := m.faces[last]
	points := make([]math.Vec3, len(facets))
	for i, f := range facets {
		points[i] = m.coords.At(f.Vertex)
	}

	m.faces[last] = []Facet{}
	m.vertexCount -= len(facets)

	count := float32(polygons)
	anchor, anchorColor := points[0], facets[0].Color

	for i := 2; i < len(points); i++ {
		wall, wallColor := points[i-1], facets[i-1].Color
		step := points[i].Sub(wall).Div(count)
		colorStep := facets[i].Color.Sub(wallColor).Div(count)

		if wall == anchor || wall.Add(step.Scale(count)) == anchor {
			continue
		}

		for j := 0; j < polygons; j++ {
			m.PushFace()
			m.AddVertex(anchor, anchorColor)
			m.AddVertex(wall, wallColor)
			wall = wall.Add(step)
			wallColor = wallColor.Add(colorStep)
			m.AddVertex(wall, wallColor)
		}
	}
}
