package scene

import (
	"testing"

	"github.com/Faultbox/facetcraft/internal/engine/grid"
	"github.com/Faultbox/facetcraft/internal/engine/model"
	"github.com/Faultbox/facetcraft/pkg/math"
)

// createTestQuad returns a mesh with one closed square and an open face
// holding a single facet.
func createTestQuad() *model.Mesh {
	m := model.New()
	m.AddVertex(math.Vec3{}, model.DefaultColor)
	m.AddVertex(math.Vec3{X: 1}, model.DefaultColor)
	m.AddVertex(math.Vec3{X: 1, Y: 1}, model.DefaultColor)
	m.AddVertex(math.Vec3{Y: 1}, model.DefaultColor)
	m.PushFace()
	m.AddVertex(math.Vec3{Z: 1}, model.DefaultColor)
	return m
}

func TestMeshBatchesPolygon(t *testing.T) {
	m := createTestQuad()
	batches := MeshBatches(m, math.Identity(), DefaultMeshOptions())
	if len(batches) != 2 {
		t.Fatalf("got %d batches, want 2", len(batches))
	}

	tris, lines := batches[0], batches[1]
	if tris.Mode != Triangles || tris.Len() != 6 {
		t.Errorf("triangles: mode %v, %d vertices", tris.Mode, tris.Len())
	}
	if !tris.Lit {
		t.Error("mesh triangles should be lit")
	}
	// The single-facet open face cannot form an outline.
	if lines.Len() != 0 {
		t.Errorf("lines has %d vertices, want 0", lines.Len())
	}
}

func TestMeshBatchesWireframe(t *testing.T) {
	m := createTestQuad()
	opts := DefaultMeshOptions()
	opts.Wireframe = true
	opts.OpenFacePoints = true

	batches := MeshBatches(m, math.Identity(), opts)
	if len(batches) != 3 {
		t.Fatalf("got %d batches, want 3", len(batches))
	}
	if batches[0].Len() != 0 {
		t.Errorf("wireframe emitted %d triangle vertices", batches[0].Len())
	}
	if batches[1].Len() != 8 {
		t.Errorf("square outline has %d vertices, want 8", batches[1].Len())
	}
	if pts := batches[2]; pts.Mode != Points || pts.Len() != 1 {
		t.Errorf("open face points: mode %v, %d vertices", pts.Mode, pts.Len())
	}

	m.SetDrawMode(model.DrawLineLoop)
	batches = MeshBatches(m, math.Identity(), DefaultMeshOptions())
	if batches[0].Len() != 0 || batches[1].Len() != 8 {
		t.Error("line loop draw mode should produce an outline")
	}
}

func TestMeshBatchesSelection(t *testing.T) {
	m := createTestQuad()
	opts := DefaultMeshOptions()
	opts.Selected = model.Index{Face: 0, Facet: 0}

	tris := MeshBatches(m, math.Identity(), opts)[0]
	white := math.Vec4{X: 1, Y: 1, Z: 1, W: 1}
	if tris.Vertices[0].Color != white {
		t.Errorf("selected facet color = %v, want white", tris.Vertices[0].Color)
	}
	if tris.Vertices[1].Color != math.RGBA(model.DefaultColor, 1) {
		t.Errorf("unselected facet color = %v", tris.Vertices[1].Color)
	}
	if c := m.VertexColor(opts.Selected); c != model.DefaultColor {
		t.Errorf("mesh color was modified to %v", c)
	}
}

func TestMeshBatchesSubmodels(t *testing.T) {
	m := createTestQuad()
	child := createTestQuad()
	child.SetPosition(math.Vec3{X: 5})
	if err := m.AddSubmodel(child); err != nil {
		t.Fatal(err)
	}

	batches := MeshBatches(m, math.Identity(), DefaultMeshOptions())
	if len(batches) != 4 {
		t.Fatalf("got %d batches, want 4", len(batches))
	}
	origin := batches[2].Model.TransformVec3(math.Vec3{})
	if origin != (math.Vec3{X: 5}) {
		t.Errorf("child batch origin = %v, want (5,0,0)", origin)
	}
}

func TestGridBatches(t *testing.T) {
	l := grid.NewLattice(1, 2)
	pointer := math.Vec3{X: 0.5, Y: 0.5, Z: 0.5}

	lines, quads := GridBatches(l.Primitives(&pointer))
	// One highlighted cell: 6 sides x 2 triangles. Seven plain cells: 6 sides x 4 edges.
	if quads.Len() != 36 {
		t.Errorf("quads has %d vertices, want 36", quads.Len())
	}
	if lines.Len() != 7*6*8 {
		t.Errorf("lines has %d vertices, want %d", lines.Len(), 7*6*8)
	}
	if !quads.Translucent {
		t.Error("highlight quads should be translucent")
	}
}

func TestAppendFloats(t *testing.T) {
	b := NewBatch(Points)
	b.Add(Vertex{
		Position: math.Vec3{X: 1, Y: 2, Z: 3},
		Color:    math.Vec4{X: 4, Y: 5, Z: 6, W: 7},
		Normal:   math.Vec3{X: 8, Y: 9, Z: 10},
	})

	got := b.AppendFloats(nil)
	if len(got) != FloatsPerVertex {
		t.Fatalf("got %d floats, want %d", len(got), FloatsPerVertex)
	}
	for i, v := range got {
		if v != float32(i+1) {
			t.Errorf("float %d = %v, want %d", i, v, i+1)
		}
	}
}

func TestFrame(t *testing.T) {
	f := NewFrame()
	f.AddWorld(Axes(1), NewBatch(Lines), nil)
	f.AddWorld(Cursor(math.Vec3{})...)
	f.AddOverlay(LightMarker(math.Vec3{}))

	if len(f.World) != 3 {
		t.Errorf("World has %d batches, want 3 (empty ones dropped)", len(f.World))
	}
	// Axes 6, cursor point 1, cursor spokes 14 x 2, light cube 36.
	if n := f.VertexCount(); n != 6+1+28+36 {
		t.Errorf("VertexCount = %d", n)
	}
}

func TestBox(t *testing.T) {
	b := Box(math.Vec3{}, math.Vec3{X: 1, Y: 2, Z: 3}, math.Vec4{W: 1})
	if b.Mode != Lines {
		t.Errorf("Mode = %v, want lines", b.Mode)
	}
	if b.Len() != grid.BoxWireframeVertexCount {
		t.Errorf("Len = %d, want %d", b.Len(), grid.BoxWireframeVertexCount)
	}
}
