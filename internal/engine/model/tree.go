package model

import "github.com/Faultbox/facetcraft/pkg/math"

// AddSubmodel stores a deep copy of child as a sub-model. Adding the mesh
// to itself or to one of its own sub-models fails with ErrSelfReference.
func (m *Mesh) AddSubmodel(child *Mesh) error {
	if child.contains(m) {
		return ErrSelfReference
	}
	m.children = append(m.children, child.Clone())
	return nil
}

// contains reports whether target is m or one of its descendants.
func (m *Mesh) contains(target *Mesh) bool {
	if m == target {
		return true
	}
	for _, c := range m.children {
		if c.contains(target) {
			return true
		}
	}
	return false
}

// RemoveSubmodel drops the i-th sub-model.
func (m *Mesh) RemoveSubmodel(i int) bool {
	if i < 0 || i >= len(m.children) {
		return false
	}
	m.children = append(m.children[:i], m.children[i+1:]...)
	return true
}

// SubmodelCount returns the number of direct sub-models.
func (m *Mesh) SubmodelCount() int {
	return len(m.children)
}

// Submodel returns the i-th sub-model. The returned mesh is owned by m.
func (m *Mesh) Submodel(i int) *Mesh {
	return m.children[i]
}

// Walk visits m and every sub-model depth first with the matrix that places
// its faces, starting from parent.
func (m *Mesh) Walk(parent math.Mat4, fn func(mesh *Mesh, model math.Mat4)) {
	fn(m, parent.Mul(m.pose.ModelMatrix()))
	frame := parent.Mul(m.pose.ChildMatrix())
	for _, c := range m.children {
		c.Walk(frame, fn)
	}
}
