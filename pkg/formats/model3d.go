// Package formats provides the text codec for facetcraft model files.
package formats

import (
	"bytes"
	"errors"
	"fmt"
	gomath "math"
	"os"
	"strconv"
	"strings"

	"github.com/Faultbox/facetcraft/pkg/math"
)

// Model3DHeader opens every model file.
const Model3DHeader = "model3d="

// Grammar delimiters. None of them may appear inside an encoded tuple.
const (
	model3DSectionSep = "::"
	model3DIndexSep   = ", "
	model3DTripleSep  = "; "
	model3DReserved   = ",;{}:"
)

// Section names used in syntax errors.
const (
	SectionCoordinates = "coordinates"
	SectionIndices     = "indices"
	SectionColors      = "colors"
	SectionNormals     = "normals"
)

// Model3D format errors.
var (
	ErrInvalidModel3DHeader = errors.New("invalid model3d header: expected 'model3d='")
	ErrUnencodableValue     = errors.New("value cannot be encoded in model3d text")
	ErrMissingSection       = errors.New("missing section")
	ErrMalformedGroup       = errors.New("malformed brace group")
	ErrCountMismatch        = errors.New("group size does not match facet indices")
	ErrVertexOutOfRange     = errors.New("vertex index out of range")
)

// Model3DSyntaxError locates a parse failure inside a model file.
// Group and Item are -1 when they do not apply.
type Model3DSyntaxError struct {
	Section string
	Group   int
	Item    int
	Err     error
}

func (e *Model3DSyntaxError) Error() string {
	switch {
	case e.Group >= 0 && e.Item >= 0:
		return fmt.Sprintf("model3d %s: group %d item %d: %v", e.Section, e.Group, e.Item, e.Err)
	case e.Group >= 0:
		return fmt.Sprintf("model3d %s: group %d: %v", e.Section, e.Group, e.Err)
	case e.Item >= 0:
		return fmt.Sprintf("model3d %s: item %d: %v", e.Section, e.Item, e.Err)
	default:
		return fmt.Sprintf("model3d %s: %v", e.Section, e.Err)
	}
}

func (e *Model3DSyntaxError) Unwrap() error {
	return e.Err
}

func syntaxError(section string, group, item int, err error) error {
	return &Model3DSyntaxError{Section: section, Group: group, Item: item, Err: err}
}

// Model3DFacet is one stored facet: a coordinate index with its color and normal.
type Model3DFacet struct {
	Vertex int
	Color  math.Vec3
	Normal math.Vec3
}

// Model3D is the decoded content of a model file.
type Model3D struct {
	Coordinates []math.Vec3
	Faces       [][]Model3DFacet
}

// FacetCount returns the number of facets across all faces.
func (m *Model3D) FacetCount() int {
	n := 0
	for _, face := range m.Faces {
		n += len(face)
	}
	return n
}

// Validate checks that every facet references a stored coordinate.
func (m *Model3D) Validate() error {
	for i, face := range m.Faces {
		for j, f := range face {
			if f.Vertex < 0 || f.Vertex >= len(m.Coordinates) {
				return syntaxError(SectionIndices, i, j,
					fmt.Errorf("%w: %d of %d", ErrVertexOutOfRange, f.Vertex, len(m.Coordinates)))
			}
		}
	}
	return nil
}

// MarshalText encodes the model. Every face is written, empty ones as "{}",
// so the face list survives a round trip unchanged.
func (m *Model3D) MarshalText() ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString(Model3DHeader)

	for i, c := range m.Coordinates {
		s, err := encodeTriple(c)
		if err != nil {
			return nil, syntaxError(SectionCoordinates, -1, i, err)
		}
		buf.WriteString(s)
	}

	var indices, colors, normals strings.Builder
	for i, face := range m.Faces {
		indices.WriteByte('{')
		colors.WriteByte('{')
		normals.WriteByte('{')
		for j, f := range face {
			if j > 0 {
				indices.WriteString(model3DIndexSep)
				colors.WriteString(model3DTripleSep)
				normals.WriteString(model3DTripleSep)
			}
			indices.WriteString(strconv.Itoa(f.Vertex))

			c, err := encodeTriple(f.Color)
			if err != nil {
				return nil, syntaxError(SectionColors, i, j, err)
			}
			colors.WriteString(c)

			n, err := encodeTriple(f.Normal)
			if err != nil {
				return nil, syntaxError(SectionNormals, i, j, err)
			}
			normals.WriteString(n)
		}
		indices.WriteByte('}')
		colors.WriteByte('}')
		normals.WriteByte('}')
	}

	buf.WriteString(model3DSectionSep)
	buf.WriteString(indices.String())
	buf.WriteString(model3DSectionSep)
	buf.WriteString(colors.String())
	buf.WriteString(model3DSectionSep)
	buf.WriteString(normals.String())

	return buf.Bytes(), nil
}

func encodeTriple(v math.Vec3) (string, error) {
	for _, c := range v.Array() {
		if f := float64(c); gomath.IsNaN(f) || gomath.IsInf(f, 0) {
			return "", fmt.Errorf("%w: %v", ErrUnencodableValue, v)
		}
	}
	s := v.String()
	if err := math.CheckTuple(s, model3DReserved); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnencodableValue, err)
	}
	return s, nil
}

// ParseModel3D decodes a model file.
func ParseModel3D(data []byte) (*Model3D, error) {
	text := string(data)
	if !strings.HasPrefix(text, Model3DHeader) {
		return nil, ErrInvalidModel3DHeader
	}

	sections := strings.Split(text[len(Model3DHeader):], model3DSectionSep)
	names := []string{SectionCoordinates, SectionIndices, SectionColors, SectionNormals}
	if len(sections) < len(names) {
		return nil, syntaxError(names[len(sections)], -1, -1, ErrMissingSection)
	}
	if len(sections) > len(names) {
		return nil, syntaxError(SectionNormals, -1, -1,
			fmt.Errorf("%w: %d trailing sections", ErrMalformedGroup, len(sections)-len(names)))
	}

	coords, err := parseCoordinates(sections[0])
	if err != nil {
		return nil, err
	}

	faces, err := parseIndices(sections[1], len(coords))
	if err != nil {
		return nil, err
	}

	if err := parseTriples(SectionColors, sections[2], faces, func(f *Model3DFacet, v math.Vec3) { f.Color = v }); err != nil {
		return nil, err
	}
	if err := parseTriples(SectionNormals, sections[3], faces, func(f *Model3DFacet, v math.Vec3) { f.Normal = v }); err != nil {
		return nil, err
	}

	return &Model3D{Coordinates: coords, Faces: faces}, nil
}

// ParseModel3DFile reads and decodes a model file from disk.
func ParseModel3DFile(path string) (*Model3D, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading model file: %w", err)
	}
	return ParseModel3D(data)
}

func parseCoordinates(s string) ([]math.Vec3, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if !strings.HasSuffix(s, ")") {
		return nil, syntaxError(SectionCoordinates, -1, -1, math.ErrMalformedTuple)
	}

	parts := strings.Split(s, ")")
	parts = parts[:len(parts)-1]
	coords := make([]math.Vec3, 0, len(parts))
	for i, p := range parts {
		v, err := math.ParseVec3(p + ")")
		if err != nil {
			return nil, syntaxError(SectionCoordinates, -1, i, err)
		}
		coords = append(coords, v)
	}
	return coords, nil
}

// splitGroups splits "{a}{b}{}" into ["a", "b", ""].
func splitGroups(section, s string) ([]string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if !strings.HasSuffix(s, "}") {
		return nil, syntaxError(section, -1, -1, fmt.Errorf("%w: missing closing brace", ErrMalformedGroup))
	}

	parts := strings.Split(s, "}")
	parts = parts[:len(parts)-1]
	for i, p := range parts {
		if !strings.HasPrefix(p, "{") || strings.Contains(p[1:], "{") {
			return nil, syntaxError(section, i, -1, fmt.Errorf("%w: %q", ErrMalformedGroup, p+"}"))
		}
		parts[i] = p[1:]
	}
	return parts, nil
}

func parseIndices(s string, coordCount int) ([][]Model3DFacet, error) {
	groups, err := splitGroups(SectionIndices, s)
	if err != nil {
		return nil, err
	}

	faces := make([][]Model3DFacet, len(groups))
	for i, g := range groups {
		if strings.TrimSpace(g) == "" {
			faces[i] = []Model3DFacet{}
			continue
		}
		items := strings.Split(g, ",")
		face := make([]Model3DFacet, len(items))
		for j, item := range items {
			idx, err := strconv.Atoi(strings.TrimSpace(item))
			if err != nil {
				return nil, syntaxError(SectionIndices, i, j, fmt.Errorf("%w: %q", math.ErrInvalidNumber, item))
			}
			if idx < 0 || idx >= coordCount {
				return nil, syntaxError(SectionIndices, i, j,
					fmt.Errorf("%w: %d of %d", ErrVertexOutOfRange, idx, coordCount))
			}
			face[j] = Model3DFacet{Vertex: idx}
		}
		faces[i] = face
	}
	return faces, nil
}

func parseTriples(section, s string, faces [][]Model3DFacet, set func(*Model3DFacet, math.Vec3)) error {
	groups, err := splitGroups(section, s)
	if err != nil {
		return err
	}
	if len(groups) != len(faces) {
		return syntaxError(section, -1, -1,
			fmt.Errorf("%w: %d groups for %d faces", ErrCountMismatch, len(groups), len(faces)))
	}

	for i, g := range groups {
		var items []string
		if strings.TrimSpace(g) != "" {
			items = strings.Split(g, ";")
		}
		if len(items) != len(faces[i]) {
			return syntaxError(section, i, -1,
				fmt.Errorf("%w: %d values for %d facets", ErrCountMismatch, len(items), len(faces[i])))
		}
		for j, item := range items {
			v, err := math.ParseVec3(item)
			if err != nil {
				return syntaxError(section, i, j, err)
			}
			set(&faces[i][j], v)
		}
	}
	return nil
}
