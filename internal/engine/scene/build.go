package scene

import (
	"github.com/Faultbox/facetcraft/internal/engine/grid"
	"github.com/Faultbox/facetcraft/internal/engine/model"
	"github.com/Faultbox/facetcraft/pkg/math"
)

// MeshOptions controls how a mesh tree is turned into batches.
type MeshOptions struct {
	// Wireframe draws every face as a line loop regardless of draw mode.
	Wireframe bool
	// Selected facet of the root mesh is drawn in SelectedColor.
	Selected      model.Index
	SelectedColor math.Vec3
	// OpenFacePoints marks each facet of the root's open face with a point
	// so a face in progress stays visible before it can form a polygon.
	OpenFacePoints bool
	LineWidth      float32
}

// DefaultMeshOptions returns options with no selection.
func DefaultMeshOptions() MeshOptions {
	return MeshOptions{
		Selected:      model.NoSelection,
		SelectedColor: math.Vec3{X: 1, Y: 1, Z: 1},
		LineWidth:     2,
	}
}

// MeshBatches builds batches for m and all of its sub-models. The mesh
// itself is not modified; selection coloring is applied to the copy of the
// vertex data only.
func MeshBatches(m *model.Mesh, parent math.Mat4, opts MeshOptions) []*Batch {
	var out []*Batch

	m.Walk(parent, func(mesh *model.Mesh, modelMat math.Mat4) {
		root := mesh == m
		wire := opts.Wireframe || mesh.DrawMode() == model.DrawLineLoop

		tris := NewBatch(Triangles)
		tris.Model = modelMat
		tris.Lit = true

		lines := NewBatch(Lines)
		lines.Model = modelMat
		lines.Lit = true
		lines.LineWidth = opts.LineWidth

		for fi := 0; fi < mesh.FaceCount(); fi++ {
			face := mesh.Face(fi)
			verts := make([]Vertex, len(face))
			for j, f := range face {
				c := f.Color
				if root && opts.Selected == (model.Index{Face: fi, Facet: j}) {
					c = opts.SelectedColor
				}
				verts[j] = Vertex{Position: mesh.Coordinate(f.Vertex), Color: math.RGBA(c, 1), Normal: f.Normal}
			}

			if wire || len(verts) < 3 {
				appendLoop(lines, verts)
				continue
			}
			appendFan(tris, verts)
		}

		out = append(out, tris, lines)

		if root && opts.OpenFacePoints {
			pts := NewBatch(Points)
			pts.Model = modelMat
			pts.PointSize = 5
			for j, f := range mesh.OpenFace() {
				c := f.Color
				if opts.Selected == (model.Index{Face: mesh.FaceCount() - 1, Facet: j}) {
					c = opts.SelectedColor
				}
				pts.Add(Vertex{Position: mesh.Coordinate(f.Vertex), Color: math.RGBA(c, 1), Normal: f.Normal})
			}
			out = append(out, pts)
		}
	})

	return out
}

// appendFan triangulates a convex polygon around its first vertex.
func appendFan(b *Batch, verts []Vertex) {
	for i := 2; i < len(verts); i++ {
		b.Add(verts[0], verts[i-1], verts[i])
	}
}

// appendLoop adds a closed outline. Two vertices give one segment.
func appendLoop(b *Batch, verts []Vertex) {
	switch len(verts) {
	case 0, 1:
		return
	case 2:
		b.Add(verts[0], verts[1])
		return
	}
	for i := range verts {
		b.Add(verts[i], verts[(i+1)%len(verts)])
	}
}

// GridBatches converts lattice primitives into an opaque line batch and a
// translucent triangle batch.
func GridBatches(prims []grid.Primitive) (lines, quads *Batch) {
	lines = NewBatch(Lines)
	quads = NewBatch(Triangles)
	quads.Translucent = true
	quads.Lit = true

	for _, p := range prims {
		switch p.Mode {
		case grid.Quad:
			for _, pos := range grid.QuadTriangles(p.Corners) {
				quads.Add(Vertex{Position: pos, Color: p.Color, Normal: p.Normal})
			}
		default:
			for _, pos := range grid.LineLoopSegments(p.Corners) {
				lines.Add(Vertex{Position: pos, Color: p.Color, Normal: p.Normal})
			}
		}
	}
	return lines, quads
}

// Axes draws unit X, Y and Z axes in red, green and blue.
func Axes(length float32) *Batch {
	b := NewBatch(Lines)
	axes := [3]math.Vec3{{X: 1}, {Y: 1}, {Z: 1}}
	for _, a := range axes {
		c := math.RGBA(a, 1)
		b.Add(
			Vertex{Color: c, Normal: a},
			Vertex{Position: a.Scale(length), Color: c, Normal: a},
		)
	}
	return b
}

// Cursor draws the 3D cursor: a white point with spokes along the axes and
// diagonals in the XY and ZY planes.
func Cursor(p math.Vec3) []*Batch {
	const (
		length = 0.2
		offset = 0.05
	)

	point := NewBatch(Points)
	point.PointSize = 4
	point.Add(Vertex{Position: p, Color: math.Vec4{X: 1, Y: 1, Z: 1, W: 1}, Normal: math.Vec3{Z: 1}})

	spokes := NewBatch(Lines)
	gray := math.Vec4{X: 0.3, Y: 0.3, Z: 0.3, W: 1}
	spoke := func(dir math.Vec3, l float32) {
		spokes.Add(
			Vertex{Position: p.Add(dir.Scale(offset)), Color: gray, Normal: math.Vec3{Z: 1}},
			Vertex{Position: p.Add(dir.Scale(offset + l)), Color: gray, Normal: math.Vec3{Z: 1}},
		)
	}

	for _, d := range []math.Vec3{{Y: 1}, {Y: -1}, {Z: 1}, {Z: -1}, {X: 1}, {X: -1}} {
		spoke(d, length)
	}
	for _, d := range []math.Vec3{
		{X: -1, Y: -1}, {X: 1, Y: 1}, {X: -1, Y: 1}, {X: 1, Y: -1},
		{Z: -1, Y: -1}, {Z: 1, Y: 1}, {Z: -1, Y: 1}, {Z: 1, Y: -1},
	} {
		spoke(d, length/1.5)
	}

	return []*Batch{point, spokes}
}

// LightMarker draws the light source as a small glowing cube centered on p.
func LightMarker(p math.Vec3) *Batch {
	c := grid.NewCell(p.Sub(math.Vec3{X: 0.1, Y: 0.1, Z: 0.1}), 0.2)
	c.Solid = true
	c.Highlight = math.Vec3{X: 1, Y: 1, Z: 1}
	c.Translucency = 1

	_, quads := GridBatches(c.Primitives(nil))
	quads.Translucent = false
	quads.Emissive = 0.4
	return quads
}

// Box outlines the box spanned by min and max.
func Box(min, max math.Vec3, color math.Vec4) *Batch {
	b := NewBatch(Lines)
	for _, pos := range grid.BoxWireframe(min, max) {
		b.Add(Vertex{Position: pos, Color: color, Normal: math.Vec3{Z: 1}})
	}
	return b
}
