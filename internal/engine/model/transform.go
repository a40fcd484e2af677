package model

import (
	"fmt"

	"github.com/Faultbox/facetcraft/pkg/math"
)

// TransformCoords moves every coordinate through fn at once. Coordinates
// that land on the same point are merged and facets follow the merge.
func (m *Mesh) TransformCoords(fn func(math.Vec3) math.Vec3) {
	moved := make([]math.Vec3, m.coords.Len())
	for i, p := range m.coords.points {
		moved[i] = fn(p)
	}
	remap := m.coords.Rebuild(moved)
	for _, face := range m.faces {
		for j := range face {
			face[j].Vertex = remap[face[j].Vertex]
		}
	}
}

func checkAxis(axis int) error {
	if axis < 0 || axis > 2 {
		return fmt.Errorf("%w: %d", ErrInvalidAxis, axis)
	}
	return nil
}

// Translate moves every coordinate by distance along axis.
func (m *Mesh) Translate(axis int, distance float32) error {
	if err := checkAxis(axis); err != nil {
		return err
	}
	offset := math.Vec3{}.WithAxis(axis, distance)
	m.TransformCoords(func(p math.Vec3) math.Vec3 {
		return p.Add(offset)
	})
	return nil
}

// Mirror negates every coordinate along axis. The winding of every face is
// reversed so faces keep pointing outward, and normals are recomputed.
func (m *Mesh) Mirror(axis int) error {
	if err := checkAxis(axis); err != nil {
		return err
	}
	m.TransformCoords(func(p math.Vec3) math.Vec3 {
		return p.WithAxis(axis, -p.Axis(axis))
	})
	for _, face := range m.faces {
		for i, j := 0, len(face)-1; i < j; i, j = i+1, j-1 {
			face[i], face[j] = face[j], face[i]
		}
	}
	m.RecalculateNormals()
	return nil
}

// Merge appends every face of other to m, one new face per source face.
// Coordinates are deduplicated against m and normals are recomputed as each
// face is closed.
func (m *Mesh) Merge(other *Mesh) {
	if other == m {
		other = m.Clone()
	}
	for _, face := range other.faces {
		m.PushFace()
		for _, f := range face {
			m.AddVertex(other.coords.At(f.Vertex), f.Color)
		}
	}
}

// AxisIndex parses "x", "y" or "z" (any case) into an axis index.
func AxisIndex(name string) (int, error) {
	if len(name) > 0 {
		switch name[0] {
		case 'x', 'X':
			return 0, nil
		case 'y', 'Y':
			return 1, nil
		case 'z', 'Z':
			return 2, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrInvalidAxis, name)
}
