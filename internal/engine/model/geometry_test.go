package model

import (
	"testing"

	"github.com/Faultbox/facetcraft/pkg/math"
)

func TestCalculateNormalsRightHandRule(t *testing.T) {
	m := createTestTriangle()
	m.PushFace()

	for j, f := range m.Face(0) {
		if f.Normal.Distance(math.Vec3{Z: 1}) > 1e-6 {
			t.Errorf("facet %d normal = %v, want +Z", j, f.Normal)
		}
	}

	// Reversed winding points the other way.
	r := New()
	r.AddVertex(math.Vec3{}, DefaultColor)
	r.AddVertex(math.Vec3{Y: 1}, DefaultColor)
	r.AddVertex(math.Vec3{X: 1}, DefaultColor)
	r.CalculateNormals()
	if n := r.Face(0)[0].Normal; n.Distance(math.Vec3{Z: -1}) > 1e-6 {
		t.Errorf("reversed normal = %v, want -Z", n)
	}
}

func TestCalculateNormalsSmallFace(t *testing.T) {
	m := New()
	custom := math.Vec3{X: 1}
	m.AddVertexWithNormal(math.Vec3{}, DefaultColor, custom)
	m.AddVertex(math.Vec3{X: 1}, DefaultColor)
	m.CalculateNormals()

	face := m.Face(0)
	if face[0].Normal != custom || face[1].Normal != DefaultNormal {
		t.Errorf("two-facet face normals changed: %+v", face)
	}
}

func TestRecalculateNormals(t *testing.T) {
	m := createTestTriangle()
	m.PushFace()
	m.EditVertex(Index{Face: 0, Facet: 0}, Facet{Vertex: 0, Color: DefaultColor, Normal: math.Vec3{Y: 1}})

	m.RecalculateNormals()
	if n := m.Face(0)[0].Normal; n.Distance(math.Vec3{Z: 1}) > 1e-6 {
		t.Errorf("normal = %v, want +Z", n)
	}
}

func TestFlushNormals(t *testing.T) {
	m := New()
	m.AddVertex(math.Vec3{}, DefaultColor)
	m.AddVertex(math.Vec3{Y: 1}, DefaultColor)
	m.AddVertex(math.Vec3{X: 1}, DefaultColor)

	m.FlushNormals()
	if m.NormalsDirty() {
		t.Fatal("flag still set after FlushNormals")
	}
	if n := m.OpenFace()[0].Normal; n.Distance(math.Vec3{Z: -1}) > 1e-6 {
		t.Errorf("normal = %v, want -Z", n)
	}

	// Nothing pending: a manual edit survives.
	m.EditVertex(Index{Face: 0, Facet: 0}, Facet{Vertex: 0, Color: DefaultColor, Normal: math.Vec3{Y: 1}})
	m.FlushNormals()
	if n := m.OpenFace()[0].Normal; n != (math.Vec3{Y: 1}) {
		t.Errorf("normal = %v, want the edited +Y", n)
	}
}

func TestFaceResolutionSquare(t *testing.T) {
	m := New()
	m.AddVertex(math.Vec3{X: 0, Y: 0}, DefaultColor)
	m.AddVertex(math.Vec3{X: 1, Y: 0}, DefaultColor)
	m.AddVertex(math.Vec3{X: 1, Y: 1}, DefaultColor)
	m.AddVertex(math.Vec3{X: 0, Y: 1}, DefaultColor)

	m.FaceResolution(2)

	if m.FaceCount() != 4 {
		t.Fatalf("FaceCount = %d, want 4", m.FaceCount())
	}
	if m.VertexCount() != 12 {
		t.Errorf("VertexCount = %d, want 12", m.VertexCount())
	}
	if m.CoordinateCount() != 6 {
		t.Errorf("CoordinateCount = %d, want 6 (corners plus two midpoints)", m.CoordinateCount())
	}

	want := [][3]math.Vec3{
		{{}, {X: 1}, {X: 1, Y: 0.5}},
		{{}, {X: 1, Y: 0.5}, {X: 1, Y: 1}},
		{{}, {X: 1, Y: 1}, {X: 0.5, Y: 1}},
		{{}, {X: 0.5, Y: 1}, {Y: 1}},
	}
	for i, tri := range want {
		face := m.Face(i)
		if len(face) != 3 {
			t.Fatalf("face %d has %d facets", i, len(face))
		}
		for j, p := range tri {
			if got := m.Coordinate(face[j].Vertex); got != p {
				t.Errorf("face %d facet %d = %v, want %v", i, j, got, p)
			}
		}
	}

	// Closed triangles got normals from PushFace; the last one is still open.
	if n := m.Face(0)[0].Normal; n.Distance(math.Vec3{Z: 1}) > 1e-6 {
		t.Errorf("closed triangle normal = %v", n)
	}
	if !m.NormalsDirty() {
		t.Error("last triangle should still be pending normals")
	}
}

func TestFaceResolutionInterpolatesColor(t *testing.T) {
	black, white := math.Vec3{}, math.Vec3{X: 1, Y: 1, Z: 1}
	m := New()
	m.AddVertex(math.Vec3{}, black)
	m.AddVertex(math.Vec3{X: 1}, black)
	m.AddVertex(math.Vec3{Y: 1}, white)

	m.FaceResolution(4)
	if m.FaceCount() != 4 {
		t.Fatalf("FaceCount = %d, want 4", m.FaceCount())
	}
	if c := m.Face(1)[2].Color; c != (math.Vec3{X: 0.5, Y: 0.5, Z: 0.5}) {
		t.Errorf("midpoint color = %v, want gray", c)
	}
}

func TestFaceResolutionNoop(t *testing.T) {
	m := createTestTriangle()
	m.FaceResolution(1)
	if m.FaceCount() != 1 || len(m.Face(0)) != 3 {
		t.Error("FaceResolution(1) should be a no-op")
	}

	small := New()
	small.AddVertex(math.Vec3{}, DefaultColor)
	small.AddVertex(math.Vec3{X: 1}, DefaultColor)
	small.FaceResolution(3)
	if small.FaceCount() != 1 || len(small.Face(0)) != 2 {
		t.Error("FaceResolution on two facets should be a no-op")
	}
}

func TestFaceResolutionSkipsAnchorEdges(t *testing.T) {
	// The second vertex repeats the anchor, so the only walked edge starts at
	// the anchor and is skipped.
	m := New()
	m.AddVertex(math.Vec3{}, DefaultColor)
	m.AddVertex(math.Vec3{}, DefaultColor)
	m.AddVertex(math.Vec3{X: 1}, DefaultColor)

	m.FaceResolution(2)
	if m.FaceCount() != 1 || len(m.Face(0)) != 0 {
		t.Errorf("expected a single empty face, got %d faces", m.FaceCount())
	}
	if m.VertexCount() != 0 {
		t.Errorf("VertexCount = %d, want 0", m.VertexCount())
	}
}

func TestTranslate(t *testing.T) {
	m := createTestTriangle()
	if err := m.Translate(1, 2); err != nil {
		t.Fatal(err)
	}
	if m.Coordinate(1) != (math.Vec3{X: 1, Y: 2}) {
		t.Errorf("Coordinate(1) = %v", m.Coordinate(1))
	}
	if err := m.Translate(3, 1); err == nil {
		t.Error("expected error for axis 3")
	}
}

func TestTransformCoordsMerges(t *testing.T) {
	m := createTestTriangle()
	m.TransformCoords(func(p math.Vec3) math.Vec3 {
		return math.Vec3{X: p.X}
	})

	if m.CoordinateCount() != 2 {
		t.Fatalf("CoordinateCount = %d, want 2", m.CoordinateCount())
	}
	face := m.Face(0)
	if face[0].Vertex != face[2].Vertex {
		t.Errorf("collapsed points should share an index: %+v", face)
	}
}

func TestMirror(t *testing.T) {
	m := createTestTriangle()
	m.PushFace()

	if err := m.Mirror(0); err != nil {
		t.Fatal(err)
	}

	face := m.Face(0)
	got := []math.Vec3{
		m.Coordinate(face[0].Vertex),
		m.Coordinate(face[1].Vertex),
		m.Coordinate(face[2].Vertex),
	}
	want := []math.Vec3{{Y: 1}, {X: -1}, {}}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("facet %d at %v, want %v", i, got[i], want[i])
		}
	}
	// Reversing the winding keeps the normal on +Z.
	if n := face[0].Normal; n.Distance(math.Vec3{Z: 1}) > 1e-6 {
		t.Errorf("normal = %v, want +Z", n)
	}
}

func TestMerge(t *testing.T) {
	m := createTestTriangle()
	other := New()
	other.AddVertex(math.Vec3{X: 1}, math.Vec3{Y: 1})
	other.AddVertex(math.Vec3{X: 2}, math.Vec3{Y: 1})
	other.AddVertex(math.Vec3{X: 2, Y: 2}, math.Vec3{Y: 1})
	other.PushFace()

	m.Merge(other)

	// The source's empty open face closes the merged face.
	if m.FaceCount() != 3 {
		t.Errorf("FaceCount = %d, want 3", m.FaceCount())
	}
	if m.CoordinateCount() != 5 {
		t.Errorf("CoordinateCount = %d, want 5 (shared point merged)", m.CoordinateCount())
	}
	if m.VertexCount() != 6 {
		t.Errorf("VertexCount = %d, want 6", m.VertexCount())
	}
	if c := m.Face(1)[0].Color; c != (math.Vec3{Y: 1}) {
		t.Errorf("merged color = %v", c)
	}

	m.Merge(m)
	if m.FaceCount() != 5 {
		t.Errorf("self merge FaceCount = %d, want 5", m.FaceCount())
	}
}

func TestAxisIndex(t *testing.T) {
	for name, want := range map[string]int{"x": 0, "Y": 1, "zed": 2} {
		if got, err := AxisIndex(name); err != nil || got != want {
			t.Errorf("AxisIndex(%q) = %d, %v", name, got, err)
		}
	}
	if _, err := AxisIndex(""); err == nil {
		t.Error("expected error for empty axis")
	}
}
