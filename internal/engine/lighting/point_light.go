// Package lighting holds the editor's single point light.
package lighting

import (
	"github.com/Faultbox/facetcraft/internal/engine/scene"
	"github.com/Faultbox/facetcraft/pkg/math"
)

// Default light settings.
var (
	DefaultDiffuse  = math.Vec3{X: 1, Y: 1, Z: 1}
	DefaultSpecular = math.Vec3{X: 1, Y: 1, Z: 1}
)

// DefaultAmbient is the global ambient level.
const DefaultAmbient = 0.2

// PointLight is a positional light with white diffuse and specular terms.
type PointLight struct {
	Position math.Vec3
	Diffuse  math.Vec3
	Specular math.Vec3
}

// Rig is the light as the editor controls it: on/off, where it sits, and
// how bright the unlit side of the scene is.
type Rig struct {
	Light   PointLight
	Ambient float32
	Enabled bool

	home math.Vec3
}

// NewRig places the light one unit along each axis from the origin.
func NewRig(unit float32) *Rig {
	r := &Rig{home: math.Vec3{X: unit, Y: unit, Z: unit}}
	r.Reset()
	return r
}

// Reset moves the light back to its starting position and restores the
// default colors. The enabled state is kept.
func (r *Rig) Reset() {
	r.Light = PointLight{
		Position: r.home,
		Diffuse:  DefaultDiffuse,
		Specular: DefaultSpecular,
	}
	r.Ambient = DefaultAmbient
}

// SetHome changes the reset position, e.g. after the grid is redefined.
func (r *Rig) SetHome(unit float32) {
	r.home = math.Vec3{X: unit, Y: unit, Z: unit}
}

// Toggle switches lighting on or off and returns the new state.
func (r *Rig) Toggle() bool {
	r.Enabled = !r.Enabled
	return r.Enabled
}

// Move shifts the light position.
func (r *Rig) Move(delta math.Vec3) {
	r.Light.Position = r.Light.Position.Add(delta)
}

// AdjustAmbient changes the ambient level, clamped to [0, 1].
func (r *Rig) AdjustAmbient(delta float32) {
	r.Ambient = math.Clamp(r.Ambient+delta, 0, 1)
}

// SceneLight converts the rig for a frame.
func (r *Rig) SceneLight() scene.Light {
	return scene.Light{
		Enabled:  r.Enabled,
		Position: r.Light.Position,
		Diffuse:  r.Light.Diffuse,
		Specular: r.Light.Specular,
		Ambient:  math.Vec3{X: r.Ambient, Y: r.Ambient, Z: r.Ambient},
	}
}
