package model

// CalculateNormals computes per-facet normals for the open face. Faces with
// fewer than three facets keep their current normals.
func (m *Mesh) CalculateNormals() {
	m.faceNormals(len(m.faces) - 1)
}

// FlushNormals computes the open face's normals if an edit left them
// pending and clears the pending flag.
func (m *Mesh) FlushNormals() {
	if m.needNormals {
		m.CalculateNormals()
		m.needNormals = false
	}
}

// RecalculateNormals computes normals for every face.
func (m *Mesh) RecalculateNormals() {
	for i := range m.faces {
		m.faceNormals(i)
	}
	m.needNormals = false
}

// faceNormals sets normal[i] = normalize((b - a) x (c - b)) where a, b, c are
// the coordinates of facets i, i+1 and i+2, wrapping around the face.
func (m *Mesh) faceNormals(fi int) {
	face := m.faces[fi]
	n := len(face)
	if n < 3 {
		return
	}
	for i := range face {
		a := m.coords.At(face[i].Vertex)
		b := m.coords.At(face[(i+1)%n].Vertex)
		c := m.coords.At(face[(i+2)%n].Vertex)
		face[i].Normal = b.Sub(a).Cross(c.Sub(b)).Normalize()
	}
}
