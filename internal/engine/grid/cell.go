package grid

import "github.com/Faultbox/facetcraft/pkg/math"

// Default cell colors.
var (
	DefaultColor     = math.Vec3{X: 0, Y: 0.2, Z: 0}
	DefaultHighlight = math.Vec3{X: 0.6, Y: 0.6, Z: 0.6}
)

// DefaultTranslucency is the alpha of a highlighted cell.
const DefaultTranslucency = 0.4

// PrimitiveMode selects how a side is drawn.
type PrimitiveMode int

// Primitive modes.
const (
	LineLoop PrimitiveMode = iota
	Quad
)

// Primitive is the draw representation of one side.
type Primitive struct {
	Mode    PrimitiveMode
	Color   math.Vec4
	Normal  math.Vec3
	Corners [4]math.Vec3
}

// Cell is an axis-aligned cube made of six independent sides. The render
// state applies to all sides alike.
type Cell struct {
	corner math.Vec3
	width  float32
	sides  [6]Side

	Color        math.Vec3
	Highlight    math.Vec3
	Translucency float32
	Solid        bool
}

// NewCell builds a cell from its minimum corner and edge width.
func NewCell(corner math.Vec3, width float32) *Cell {
	c := &Cell{
		Color:        DefaultColor,
		Highlight:    DefaultHighlight,
		Translucency: DefaultTranslucency,
	}
	c.Initialize(corner, width)
	return c
}

// Initialize recomputes every side for a new corner and width.
func (c *Cell) Initialize(corner math.Vec3, width float32) {
	c.corner = corner
	c.width = width
	c.sides = [6]Side{
		NewSide(Front, corner.Add(math.Vec3{Z: width}), width),
		NewSide(Right, corner.Add(math.Vec3{X: width}), width),
		NewSide(Back, corner, width),
		NewSide(Left, corner, width),
		NewSide(Top, corner.Add(math.Vec3{Y: width}), width),
		NewSide(Bottom, corner, width),
	}
}

// SetPosition moves the cell.
func (c *Cell) SetPosition(corner math.Vec3) {
	c.Initialize(corner, c.width)
}

// SetWidth resizes the cell around its minimum corner.
func (c *Cell) SetWidth(width float32) {
	c.Initialize(c.corner, width)
}

// SetHighlight sets the color and alpha used when the cell is solid.
func (c *Cell) SetHighlight(color math.Vec3, translucency float32) {
	c.Highlight = color
	c.Translucency = translucency
}

// Corner returns the minimum corner.
func (c *Cell) Corner() math.Vec3 {
	return c.corner
}

// Width returns the edge width.
func (c *Cell) Width() float32 {
	return c.width
}

// Side returns the side tagged f.
func (c *Cell) Side(f Face) Side {
	return c.sides[f]
}

// Contains reports whether p lies in the cell, bounds inclusive. The front
// side bounds X and Y, the top side bounds X and Z.
func (c *Cell) Contains(p math.Vec3) bool {
	return c.sides[Front].Contains(p) && c.sides[Top].Contains(p)
}

// Primitives returns the six sides ready to draw. When pointer is inside
// the cell it is drawn solid in the highlight color for this call only.
func (c *Cell) Primitives(pointer *math.Vec3) []Primitive {
	solid := c.Solid
	if pointer != nil && c.Contains(*pointer) {
		solid = true
	}

	out := make([]Primitive, 0, len(c.sides))
	for _, s := range c.sides {
		p := Primitive{
			Mode:    LineLoop,
			Color:   math.RGBA(c.Color, 1),
			Normal:  s.Face.Normal(),
			Corners: s.Corners(),
		}
		if solid {
			p.Mode = Quad
			p.Color = math.RGBA(c.Highlight, c.Translucency)
		}
		out = append(out, p)
	}
	return out
}

// Bounds returns the minimum and maximum corners.
func (c *Cell) Bounds() (min, max math.Vec3) {
	return c.corner, c.corner.Add(math.Vec3{X: c.width, Y: c.width, Z: c.width})
}
