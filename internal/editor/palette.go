package editor

import (
	"github.com/Faultbox/facetcraft/internal/engine/scene"
	"github.com/Faultbox/facetcraft/pkg/math"
)

// Overlay space is a fixed 100 x 100 orthographic square stretched over
// the window, origin bottom left.
const (
	OverlayWidth  = 100
	OverlayHeight = 100
)

// Palette layout in overlay units.
const (
	PaletteHeight = 3.5
	// Each channel takes the values 0, 0.25, 0.5, 0.75 and 1.
	PaletteLevels = 5
	// Every color is drawn as this many adjacent stripes.
	paletteStripes     = 3
	paletteStripeWidth = 0.25
	paletteGap         = 0.12
)

// PaletteHit says what a click on the palette strip landed on.
type PaletteHit int

const (
	HitNone PaletteHit = iota
	HitColor
	HitAlphaDown
	HitAlphaUp
	HitGammaDown
	HitGammaUp
)

// Palette is the color strip along the bottom of the window. Swatch colors
// are scaled by Alpha and lifted by Gamma.
type Palette struct {
	Alpha float32
	Gamma float32
	Step  float32
}

// NewPalette returns a palette with the given levels.
func NewPalette(alpha, gamma, step float32) *Palette {
	if step <= 0 {
		step = 0.2
	}
	return &Palette{
		Alpha: math.Clamp(alpha, 0, 1),
		Gamma: math.Clamp(gamma, 0, 1),
		Step:  step,
	}
}

// Len returns the number of swatches.
func (p *Palette) Len() int {
	return PaletteLevels * PaletteLevels * PaletteLevels
}

// Color returns swatch i. Red varies slowest, blue fastest.
func (p *Palette) Color(i int) math.Vec3 {
	const unit = 1.0 / (PaletteLevels - 1)
	base := math.Vec3{
		X: float32(i/(PaletteLevels*PaletteLevels)) * unit,
		Y: float32(i/PaletteLevels%PaletteLevels) * unit,
		Z: float32(i%PaletteLevels) * unit,
	}
	return base.Scale(p.Alpha).Add(math.Vec3{X: p.Gamma, Y: p.Gamma, Z: p.Gamma})
}

func swatchWidth() float32 {
	return paletteStripes * paletteStripeWidth
}

// SwatchesEnd is the overlay X where the controls begin.
func (p *Palette) SwatchesEnd() float32 {
	return float32(p.Len()) * swatchWidth()
}

func (p *Palette) controlWidth() float32 {
	return (OverlayWidth - p.SwatchesEnd()) / 2
}

// Hit classifies a click at overlay coordinates. For HitColor the swatch
// index is returned as well.
func (p *Palette) Hit(x, y float32) (PaletteHit, int) {
	if y < 0 || y > PaletteHeight || x < 0 || x >= OverlayWidth {
		return HitNone, -1
	}

	end := p.SwatchesEnd()
	if x < end {
		return HitColor, int(x / swatchWidth())
	}

	lower := y <= PaletteHeight/2
	if x < end+p.controlWidth() {
		if lower {
			return HitAlphaDown, -1
		}
		return HitAlphaUp, -1
	}
	if lower {
		return HitGammaDown, -1
	}
	return HitGammaUp, -1
}

// Adjust applies an alpha or gamma control hit. Levels stay within [0, 1].
func (p *Palette) Adjust(hit PaletteHit) {
	switch hit {
	case HitAlphaDown:
		p.Alpha = math.Clamp(p.Alpha-p.Step, 0, 1)
	case HitAlphaUp:
		p.Alpha = math.Clamp(p.Alpha+p.Step, 0, 1)
	case HitGammaDown:
		p.Gamma = math.Clamp(p.Gamma-p.Step, 0, 1)
	case HitGammaUp:
		p.Gamma = math.Clamp(p.Gamma+p.Step, 0, 1)
	}
}

// Batches draws the strip: a black backing, the swatches, and the two
// plus/minus controls filled with the current color.
func (p *Palette) Batches(current math.Vec3) []*scene.Batch {
	quads := scene.NewBatch(scene.Triangles)
	lines := scene.NewBatch(scene.Lines)
	up := math.Vec3{Z: 1}

	quad := func(x0, y0, x1, y1 float32, c math.Vec3) {
		corners := [4]math.Vec3{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
		for _, pos := range []math.Vec3{corners[0], corners[1], corners[2], corners[0], corners[2], corners[3]} {
			quads.Add(scene.Vertex{Position: pos, Color: math.RGBA(c, 1), Normal: up})
		}
	}
	line := func(x0, y0, x1, y1 float32, c math.Vec3) {
		lines.Add(
			scene.Vertex{Position: math.Vec3{X: x0, Y: y0}, Color: math.RGBA(c, 1), Normal: up},
			scene.Vertex{Position: math.Vec3{X: x1, Y: y1}, Color: math.RGBA(c, 1), Normal: up},
		)
	}

	quad(0, 0, OverlayWidth, PaletteHeight, math.Vec3{})

	for i := 0; i < p.Len(); i++ {
		x := float32(i) * swatchWidth()
		quad(x, 0, x+swatchWidth(), PaletteHeight, p.Color(i))
	}

	x := p.SwatchesEnd()
	w := p.controlWidth() - paletteGap/2
	black := math.Vec3{}
	for i := 0; i < 2; i++ {
		// Plus on the upper half, minus on the lower.
		quad(x, PaletteHeight/2+paletteGap, x+w, PaletteHeight, current)
		line(x+w/4, PaletteHeight*3/4, x+w*3/4, PaletteHeight*3/4, black)
		line(x+w/2, PaletteHeight-0.25, x+w/2, PaletteHeight/2+paletteGap+0.25, black)

		quad(x, 0, x+w, PaletteHeight/2-paletteGap, current)
		line(x+w/4, PaletteHeight/4, x+w*3/4, PaletteHeight/4, black)

		x += w + paletteGap
	}

	return []*scene.Batch{quads, lines}
}

// ScreenToOverlay converts window pixels (origin top left) to overlay
// units (origin bottom left).
func ScreenToOverlay(px, py, width, height int) (x, y float32) {
	if width <= 0 || height <= 0 {
		return -1, -1
	}
	x = float32(px) * OverlayWidth / float32(width)
	y = float32(height-py) * OverlayHeight / float32(height)
	return x, y
}
