package model

import (
	gomath "math"

	"github.com/Faultbox/facetcraft/pkg/math"
)

// Pose places a mesh in its parent's space and drives its rotation toward a
// target orientation, one step per tick. Angles are in degrees.
type Pose struct {
	Position        math.Vec3
	Axis            math.Vec3
	Orientation     float32
	Target          float32
	Speed           float32
	SmartRotate     bool
	Anchored        bool
	AnimateChildren bool
}

// DefaultPose returns the pose of a new mesh.
func DefaultPose() Pose {
	return Pose{
		Axis:            math.Vec3{X: 0, Y: 1, Z: 0},
		Speed:           1.5,
		SmartRotate:     true,
		AnimateChildren: true,
	}
}

// Step advances the orientation by one tick.
//
// With smart rotation the orientation is kept in [0, 360) and moves along
// the shorter arc toward the target, stopping on it. Without smart rotation
// the orientation advances by Speed until it equals the target exactly.
func (p *Pose) Step() {
	if !p.SmartRotate {
		if p.Orientation != p.Target {
			p.Orientation += p.Speed
		}
		return
	}

	p.Orientation = math.WrapDegrees(p.Orientation)
	diff := math.ShortestArc(p.Orientation, math.WrapDegrees(p.Target))
	if diff == 0 {
		return
	}

	step := float32(gomath.Abs(float64(p.Speed)))
	if abs := float32(gomath.Abs(float64(diff))); abs < step {
		step = abs
	}
	if diff < 0 {
		step = -step
	}
	p.Orientation = math.WrapDegrees(p.Orientation + step)
}

// Rotation returns the rotation about Axis by the current orientation.
func (p Pose) Rotation() math.Mat4 {
	return math.RotateAxis(p.Axis, p.Orientation)
}

// ModelMatrix places the mesh's own faces. Anchored meshes translate but do
// not rotate.
func (p Pose) ModelMatrix() math.Mat4 {
	t := math.Translate(p.Position)
	if p.Anchored {
		return t
	}
	return t.Mul(p.Rotation())
}

// ChildMatrix is the frame sub-models are placed in. Sub-models always
// follow the rotation, anchored or not.
func (p Pose) ChildMatrix() math.Mat4 {
	return math.Translate(p.Position).Mul(p.Rotation())
}

// Pose returns the mesh's pose.
func (m *Mesh) Pose() Pose {
	return m.pose
}

// SetPose replaces the whole pose.
func (m *Mesh) SetPose(p Pose) {
	m.pose = p
}

// SetPosition moves the mesh.
func (m *Mesh) SetPosition(pos math.Vec3) {
	m.pose.Position = pos
}

// SetAxis sets the rotation axis.
func (m *Mesh) SetAxis(axis math.Vec3) {
	m.pose.Axis = axis
}

// SetOrientation sets the target orientation. With smart rotation the target
// is wrapped into [0, 360).
func (m *Mesh) SetOrientation(deg float32) {
	if m.pose.SmartRotate {
		deg = math.WrapDegrees(deg)
	}
	m.pose.Target = deg
}

// SetSpeed sets the rotation step per tick in degrees.
func (m *Mesh) SetSpeed(deg float32) {
	m.pose.Speed = deg
}

// EnableSmartRotate toggles shortest-arc rotation.
func (m *Mesh) EnableSmartRotate(on bool) {
	m.pose.SmartRotate = on
}

// Anchor stops the mesh's own faces from rotating.
func (m *Mesh) Anchor(on bool) {
	m.pose.Anchored = on
}

// SetChildAnimation controls whether Tick reaches sub-models.
func (m *Mesh) SetChildAnimation(on bool) {
	m.pose.AnimateChildren = on
}

// ToggleChildAnimations flips whether Tick reaches sub-models.
func (m *Mesh) ToggleChildAnimations() {
	m.pose.AnimateChildren = !m.pose.AnimateChildren
}

// Tick advances the pose by one frame, then the sub-models when child
// animation is enabled.
func (m *Mesh) Tick() {
	m.pose.Step()
	if !m.pose.AnimateChildren {
		return
	}
	for _, c := range m.children {
		c.Tick()
	}
}
