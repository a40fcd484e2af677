package model

import (
	"fmt"

	"github.com/Faultbox/facetcraft/pkg/math"
)

// Mesh is an editable polygon mesh. Faces are ordered lists of facets; the
// last face is the open one that AddVertex appends to. A mesh always has at
// least one face. Mesh is not safe for concurrent use.
type Mesh struct {
	coords      CoordinateTable
	faces       [][]Facet
	vertexCount int
	needNormals bool
	drawMode    DrawMode
	pose        Pose
	children    []*Mesh
}

// New returns an empty mesh with one empty face and the default pose.
func New() *Mesh {
	m := &Mesh{}
	m.initialize()
	return m
}

// NewFromData builds a mesh from raw coordinate and face tables. Duplicate
// coordinates are merged and facet indices remapped accordingly.
func NewFromData(coords []math.Vec3, faces [][]Facet) (*Mesh, error) {
	m := New()
	if err := m.replace(coords, faces); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Mesh) initialize() {
	m.faces = [][]Facet{{}}
	m.vertexCount = 0
	m.needNormals = false
	m.drawMode = DrawPolygon
	m.pose = DefaultPose()
}

// replace swaps in new tables after validating every facet index. On error
// the mesh is unchanged.
func (m *Mesh) replace(coords []math.Vec3, faces [][]Facet) error {
	for i, face := range faces {
		for j, f := range face {
			if f.Vertex < 0 || f.Vertex >= len(coords) {
				return fmt.Errorf("facet (%d, %d): %w: %d of %d", i, j, ErrCoordinateRange, f.Vertex, len(coords))
			}
		}
	}

	var table CoordinateTable
	remap := table.Rebuild(coords)

	out := make([][]Facet, 0, len(faces)+1)
	for _, face := range faces {
		nf := make([]Facet, len(face))
		for j, f := range face {
			f.Vertex = remap[f.Vertex]
			nf[j] = f
		}
		out = append(out, nf)
	}
	if len(out) == 0 {
		out = append(out, []Facet{})
	}

	m.coords = table
	m.faces = out
	m.needNormals = false
	m.recount()
	return nil
}

func (m *Mesh) recount() {
	n := 0
	for _, face := range m.faces {
		n += len(face)
	}
	m.vertexCount = n
}

// Clear resets the mesh to its freshly constructed state, dropping
// sub-models and the pose.
func (m *Mesh) Clear() {
	m.coords.Reset()
	m.faces = nil
	m.children = nil
	m.initialize()
}

// AddVertex appends a facet for p to the open face and marks its normals
// for recomputation. p reuses an existing coordinate index when one is
// exactly equal.
func (m *Mesh) AddVertex(p, color math.Vec3) Index {
	idx := m.appendFacet(p, color, DefaultNormal)
	m.needNormals = true
	return idx
}

// AddVertexWithNormal appends a facet with an explicit normal.
func (m *Mesh) AddVertexWithNormal(p, color, normal math.Vec3) Index {
	return m.appendFacet(p, color, normal)
}

func (m *Mesh) appendFacet(p, color, normal math.Vec3) Index {
	id := m.coords.Insert(p)
	last := len(m.faces) - 1
	m.faces[last] = append(m.faces[last], Facet{Vertex: id, Color: color, Normal: normal})
	m.vertexCount++
	return Index{Face: last, Facet: len(m.faces[last]) - 1}
}

// RemoveVertex erases the facet at idx. An invalid index is a no-op and
// returns false. The coordinate stays in the table.
func (m *Mesh) RemoveVertex(idx Index) bool {
	if !m.Valid(idx) {
		return false
	}
	face := m.faces[idx.Face]
	m.faces[idx.Face] = append(face[:idx.Facet], face[idx.Facet+1:]...)
	m.vertexCount--
	return true
}

// PushFace closes the open face and starts a new one. An empty open face is
// left as is. Pending normals are computed before the face is closed.
func (m *Mesh) PushFace() {
	if len(m.faces[len(m.faces)-1]) > 0 {
		if m.needNormals {
			m.CalculateNormals()
		}
		m.faces = append(m.faces, []Facet{})
	}
	m.needNormals = false
}

// PopFace drops the open face. The last remaining face is emptied instead.
func (m *Mesh) PopFace() {
	if len(m.faces) > 1 {
		m.faces = m.faces[:len(m.faces)-1]
	} else {
		m.faces[0] = []Facet{}
	}
	m.needNormals = false
	m.recount()
}

// EditCoord moves coordinate i to p. Every facet referencing i follows.
// It fails with ErrCoordinateExists when p is already stored at another index.
func (m *Mesh) EditCoord(i int, p math.Vec3) error {
	return m.coords.Set(i, p)
}

// EditVertex overwrites the facet at idx. It returns false when idx is
// invalid or f references a coordinate that does not exist.
func (m *Mesh) EditVertex(idx Index, f Facet) bool {
	if !m.Valid(idx) || f.Vertex < 0 || f.Vertex >= m.coords.Len() {
		return false
	}
	m.faces[idx.Face][idx.Facet] = f
	return true
}

// SetVertexColor recolors the facet at idx.
func (m *Mesh) SetVertexColor(idx Index, color math.Vec3) bool {
	if !m.Valid(idx) {
		return false
	}
	m.faces[idx.Face][idx.Facet].Color = color
	return true
}

// VertexColor returns the color of the facet at idx, or DefaultColor.
func (m *Mesh) VertexColor(idx Index) math.Vec3 {
	if !m.Valid(idx) {
		return DefaultColor
	}
	return m.faces[idx.Face][idx.Facet].Color
}

// Valid reports whether idx addresses an existing facet.
func (m *Mesh) Valid(idx Index) bool {
	if idx.Face < 0 || idx.Facet < 0 || idx.Face >= len(m.faces) {
		return false
	}
	return idx.Facet < len(m.faces[idx.Face])
}

// Facet returns the facet at idx.
func (m *Mesh) Facet(idx Index) (Facet, bool) {
	if !m.Valid(idx) {
		return Facet{}, false
	}
	return m.faces[idx.Face][idx.Facet], true
}

// Coordinates returns a copy of the coordinate table.
func (m *Mesh) Coordinates() []math.Vec3 {
	return m.coords.Points()
}

// Coordinate returns the point stored at i.
func (m *Mesh) Coordinate(i int) math.Vec3 {
	return m.coords.At(i)
}

// CoordinateCount returns the number of unique coordinates.
func (m *Mesh) CoordinateCount() int {
	return m.coords.Len()
}

// FacetPosition resolves the coordinate of the facet at idx.
func (m *Mesh) FacetPosition(idx Index) (math.Vec3, bool) {
	f, ok := m.Facet(idx)
	if !ok {
		return math.Vec3{}, false
	}
	return m.coords.At(f.Vertex), true
}

// FaceCount returns the number of faces including the open one.
func (m *Mesh) FaceCount() int {
	return len(m.faces)
}

// Face returns a copy of face i.
func (m *Mesh) Face(i int) []Facet {
	out := make([]Facet, len(m.faces[i]))
	copy(out, m.faces[i])
	return out
}

// Faces returns a deep copy of all faces.
func (m *Mesh) Faces() [][]Facet {
	out := make([][]Facet, len(m.faces))
	for i := range m.faces {
		out[i] = m.Face(i)
	}
	return out
}

// OpenFace returns a copy of the face under construction.
func (m *Mesh) OpenFace() []Facet {
	return m.Face(len(m.faces) - 1)
}

// VertexCount returns the total number of facets across all faces.
func (m *Mesh) VertexCount() int {
	return m.vertexCount
}

// NormalsDirty reports whether the open face has facets without computed normals.
func (m *Mesh) NormalsDirty() bool {
	return m.needNormals
}

// DrawMode returns how faces are rasterized.
func (m *Mesh) DrawMode() DrawMode {
	return m.drawMode
}

// SetDrawMode changes how faces are rasterized.
func (m *Mesh) SetDrawMode(d DrawMode) {
	m.drawMode = d
}

// Bounds returns the bounding box of the coordinate table.
func (m *Mesh) Bounds() (Bounds, bool) {
	if m.coords.Len() == 0 {
		return Bounds{}, false
	}
	b := Bounds{Min: m.coords.At(0), Max: m.coords.At(0)}
	for _, p := range m.coords.points[1:] {
		for axis := 0; axis < 3; axis++ {
			v := p.Axis(axis)
			if v < b.Min.Axis(axis) {
				b.Min = b.Min.WithAxis(axis, v)
			}
			if v > b.Max.Axis(axis) {
				b.Max = b.Max.WithAxis(axis, v)
			}
		}
	}
	return b, true
}

// Next returns the facet after idx in face-major order, wrapping around.
// An invalid idx selects the first facet. NoSelection is returned when the
// mesh has no facets.
func (m *Mesh) Next(idx Index) Index {
	if m.vertexCount == 0 {
		return NoSelection
	}
	if !m.Valid(idx) {
		return m.first()
	}
	if idx.Facet+1 < len(m.faces[idx.Face]) {
		return Index{Face: idx.Face, Facet: idx.Facet + 1}
	}
	n := len(m.faces)
	for step := 1; step <= n; step++ {
		f := (idx.Face + step) % n
		if len(m.faces[f]) > 0 {
			return Index{Face: f, Facet: 0}
		}
	}
	return idx
}

// Prev returns the facet before idx in face-major order, wrapping around.
func (m *Mesh) Prev(idx Index) Index {
	if m.vertexCount == 0 {
		return NoSelection
	}
	if !m.Valid(idx) {
		return m.first()
	}
	if idx.Facet > 0 {
		return Index{Face: idx.Face, Facet: idx.Facet - 1}
	}
	n := len(m.faces)
	for step := 1; step <= n; step++ {
		f := (idx.Face - step + n) % n
		if len(m.faces[f]) > 0 {
			return Index{Face: f, Facet: len(m.faces[f]) - 1}
		}
	}
	return idx
}

func (m *Mesh) first() Index {
	for i, face := range m.faces {
		if len(face) > 0 {
			return Index{Face: i, Facet: 0}
		}
	}
	return NoSelection
}

// Clone returns a deep copy of the mesh including its sub-models.
func (m *Mesh) Clone() *Mesh {
	c := &Mesh{
		coords:      m.coords.clone(),
		faces:       m.Faces(),
		vertexCount: m.vertexCount,
		needNormals: m.needNormals,
		drawMode:    m.drawMode,
		pose:        m.pose,
	}
	if len(m.children) > 0 {
		c.children = make([]*Mesh, len(m.children))
		for i, child := range m.children {
			c.children[i] = child.Clone()
		}
	}
	return c
}
