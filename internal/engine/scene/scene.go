// Package scene turns editor geometry into flat vertex batches ready for
// upload. Nothing here touches OpenGL, so frames can be built and checked
// without a context.
package scene

import (
	"github.com/Faultbox/facetcraft/pkg/math"
)

// Mode is the primitive type of a batch.
type Mode int

// Batch modes.
const (
	Triangles Mode = iota
	Lines
	Points
)

func (m Mode) String() string {
	switch m {
	case Triangles:
		return "triangles"
	case Lines:
		return "lines"
	case Points:
		return "points"
	default:
		return "unknown"
	}
}

// FloatsPerVertex is the interleaved vertex layout size: position (3),
// color (4), normal (3).
const FloatsPerVertex = 10

// Vertex is one interleaved vertex.
type Vertex struct {
	Position math.Vec3
	Color    math.Vec4
	Normal   math.Vec3
}

// Batch is a run of vertices drawn with one call.
type Batch struct {
	Mode  Mode
	Model math.Mat4

	// Lit batches are shaded by the point light when lighting is on.
	Lit bool
	// Emissive adds a constant glow, used for the light marker.
	Emissive float32
	// Translucent batches are drawn after opaque ones without depth writes.
	Translucent bool
	LineWidth   float32
	PointSize   float32

	Vertices []Vertex
}

// NewBatch creates an empty batch with an identity model matrix.
func NewBatch(mode Mode) *Batch {
	return &Batch{
		Mode:      mode,
		Model:     math.Identity(),
		LineWidth: 1,
		PointSize: 1,
	}
}

// Add appends vertices.
func (b *Batch) Add(v ...Vertex) {
	b.Vertices = append(b.Vertices, v...)
}

// Len returns the vertex count.
func (b *Batch) Len() int {
	return len(b.Vertices)
}

// Empty reports whether there is nothing to draw.
func (b *Batch) Empty() bool {
	return len(b.Vertices) == 0
}

// AppendFloats appends the interleaved vertex data to dst.
func (b *Batch) AppendFloats(dst []float32) []float32 {
	for _, v := range b.Vertices {
		dst = append(dst,
			v.Position.X, v.Position.Y, v.Position.Z,
			v.Color.X, v.Color.Y, v.Color.Z, v.Color.W,
			v.Normal.X, v.Normal.Y, v.Normal.Z,
		)
	}
	return dst
}

// Light is the single point light of a frame.
type Light struct {
	Enabled  bool
	Position math.Vec3
	Diffuse  math.Vec3
	Specular math.Vec3
	Ambient  math.Vec3
}

// Frame is everything drawn in one pass: the perspective world batches and
// the orthographic overlay.
type Frame struct {
	View       math.Mat4
	Projection math.Mat4
	Eye        math.Vec3
	Light      Light

	World []*Batch

	// Overlay batches are drawn last in OverlayProjection space with depth
	// testing off.
	OverlayProjection math.Mat4
	Overlay           []*Batch
}

// NewFrame creates a frame with identity matrices.
func NewFrame() *Frame {
	return &Frame{
		View:              math.Identity(),
		Projection:        math.Identity(),
		OverlayProjection: math.Identity(),
	}
}

// AddWorld appends non-empty world batches.
func (f *Frame) AddWorld(batches ...*Batch) {
	for _, b := range batches {
		if b != nil && !b.Empty() {
			f.World = append(f.World, b)
		}
	}
}

// AddOverlay appends non-empty overlay batches.
func (f *Frame) AddOverlay(batches ...*Batch) {
	for _, b := range batches {
		if b != nil && !b.Empty() {
			f.Overlay = append(f.Overlay, b)
		}
	}
}

// VertexCount returns the total number of vertices in the frame.
func (f *Frame) VertexCount() int {
	n := 0
	for _, b := range f.World {
		n += b.Len()
	}
	for _, b := range f.Overlay {
		n += b.Len()
	}
	return n
}
