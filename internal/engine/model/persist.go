package model

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/Faultbox/facetcraft/pkg/formats"
)

// AutoNamePrefix is the stem of generated model file names.
const AutoNamePrefix = "model_"

// AvailableName returns the first of model_0, model_1, ... in dir that
// cannot be opened for reading.
func AvailableName(dir string) string {
	for i := 0; ; i++ {
		name := filepath.Join(dir, AutoNamePrefix+strconv.Itoa(i))
		f, err := os.Open(name)
		if err != nil {
			return name
		}
		f.Close()
	}
}

// ToModel3D snapshots the mesh into a model file document. Pending normals
// are computed first.
func (m *Mesh) ToModel3D() *formats.Model3D {
	m.FlushNormals()

	doc := &formats.Model3D{
		Coordinates: m.coords.Points(),
		Faces:       make([][]formats.Model3DFacet, len(m.faces)),
	}
	for i, face := range m.faces {
		out := make([]formats.Model3DFacet, len(face))
		for j, f := range face {
			out[j] = formats.Model3DFacet{Vertex: f.Vertex, Color: f.Color, Normal: f.Normal}
		}
		doc.Faces[i] = out
	}
	return doc
}

// FromModel3D builds a mesh from a decoded model file.
func FromModel3D(doc *formats.Model3D) (*Mesh, error) {
	return NewFromData(doc.Coordinates, facetsFromModel3D(doc))
}

func facetsFromModel3D(doc *formats.Model3D) [][]Facet {
	faces := make([][]Facet, len(doc.Faces))
	for i, face := range doc.Faces {
		out := make([]Facet, len(face))
		for j, f := range face {
			out[j] = Facet{Vertex: f.Vertex, Color: f.Color, Normal: f.Normal}
		}
		faces[i] = out
	}
	return faces
}

// MarshalText encodes the mesh in model file format.
func (m *Mesh) MarshalText() ([]byte, error) {
	return m.ToModel3D().MarshalText()
}

// Save writes the mesh to path and returns the name it was written to. An
// empty path picks a free model_N name in the working directory. The file
// is replaced atomically.
func (m *Mesh) Save(path string) (string, error) {
	if path == "" {
		path = AvailableName("")
	}

	data, err := m.MarshalText()
	if err != nil {
		return "", fmt.Errorf("encoding model: %w", err)
	}

	if err := writeFileAtomic(path, data); err != nil {
		return "", fmt.Errorf("saving model: %w", err)
	}
	return path, nil
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	_, werr := tmp.Write(data)
	cerr := tmp.Close()
	if err := errors.Join(werr, cerr); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

// Load replaces the mesh geometry with the content of a model file. On any
// error the mesh is left cleared. Sub-models are dropped and the pose reset.
func (m *Mesh) Load(path string) error {
	m.Clear()

	doc, err := formats.ParseModel3DFile(path)
	if err != nil {
		return err
	}
	return m.LoadModel3D(doc)
}

// LoadModel3D replaces the mesh geometry with a decoded document. On error
// the mesh is left cleared.
func (m *Mesh) LoadModel3D(doc *formats.Model3D) error {
	m.Clear()
	return m.replace(doc.Coordinates, facetsFromModel3D(doc))
}

// Equal reports whether two meshes hold the same coordinates and faces.
// Pose and sub-models are not compared.
func (m *Mesh) Equal(other *Mesh) bool {
	if m.coords.Len() != other.coords.Len() || len(m.faces) != len(other.faces) {
		return false
	}
	for i, p := range m.coords.points {
		if other.coords.At(i) != p {
			return false
		}
	}
	for i, face := range m.faces {
		if len(face) != len(other.faces[i]) {
			return false
		}
		for j, f := range face {
			if other.faces[i][j] != f {
				return false
			}
		}
	}
	return true
}
