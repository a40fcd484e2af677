// Package camera provides the editor's orbit camera.
package camera

import (
	gomath "math"

	"github.com/Faultbox/facetcraft/pkg/math"
)

// OrbitCamera orbits around a center point.
type OrbitCamera struct {
	// Center point to orbit around
	Center math.Vec3

	// Spherical coordinates
	Distance  float32 // Distance from center
	RotationX float32 // Pitch (vertical angle, radians)
	RotationY float32 // Yaw (horizontal angle, radians)
	Roll      float32 // Rotation around the view axis (radians)

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32
	KeyStep         float32 // Rotation per key press (radians)

	home float32
}

// NewOrbitCamera creates a camera looking down -Z at the origin from the
// given distance.
func NewOrbitCamera(distance float32) *OrbitCamera {
	if distance <= 0 {
		distance = 7
	}
	c := &OrbitCamera{
		MinDistance:     0.5,
		MaxDistance:     distance * 20,
		MinPitch:        -1.5,
		MaxPitch:        1.5,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
		KeyStep:         math.Radians(1),
		home:            distance,
	}
	c.Reset()
	return c
}

// Reset returns the camera to its starting view.
func (c *OrbitCamera) Reset() {
	c.Center = math.Vec3{}
	c.Distance = c.home
	c.RotationX = 0
	c.RotationY = 0
	c.Roll = 0
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	x := c.Distance * float32(gomath.Cos(float64(c.RotationX))*gomath.Sin(float64(c.RotationY)))
	y := c.Distance * float32(gomath.Sin(float64(c.RotationX)))
	z := c.Distance * float32(gomath.Cos(float64(c.RotationX))*gomath.Cos(float64(c.RotationY)))

	return c.Center.Add(math.Vec3{X: x, Y: y, Z: z})
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	view := math.LookAt(c.Position(), c.Center, math.Vec3{Y: 1})
	if c.Roll == 0 {
		return view
	}
	return math.RotateAxis(math.Vec3{Z: 1}, -c.Roll*180/gomath.Pi).Mul(view)
}

// HandleDrag updates rotation based on mouse drag delta.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.Rotate(-deltaX*c.DragSensitivity, deltaY*c.DragSensitivity)
}

// Rotate turns the camera by yaw and pitch radians, clamping pitch.
func (c *OrbitCamera) Rotate(yaw, pitch float32) {
	c.RotationY += yaw
	c.RotationX = math.Clamp(c.RotationX+pitch, c.MinPitch, c.MaxPitch)
}

// RollBy spins the view around its axis.
func (c *OrbitCamera) RollBy(angle float32) {
	c.Roll += angle
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	c.Distance = math.Clamp(c.Distance, c.MinDistance, c.MaxDistance)
}

// HandleMovement pans the center point in the camera's frame: right along
// the screen X axis, up along world Y, forward into the screen.
func (c *OrbitCamera) HandleMovement(forward, right, up float32) {
	dirX := float32(gomath.Sin(float64(c.RotationY)))
	dirZ := float32(gomath.Cos(float64(c.RotationY)))

	// Right direction (perpendicular to forward)
	rightX := float32(gomath.Cos(float64(c.RotationY)))
	rightZ := float32(-gomath.Sin(float64(c.RotationY)))

	c.Center.X += -dirX*forward + rightX*right
	c.Center.Z += -dirZ*forward + rightZ*right
	c.Center.Y += up
}

// SetCenter sets the camera's center point.
func (c *OrbitCamera) SetCenter(center math.Vec3) {
	c.Center = center
}

// FitToBounds centers the camera on a box and backs off far enough to see
// all of it.
func (c *OrbitCamera) FitToBounds(min, max math.Vec3) {
	c.Center = min.Add(max).Scale(0.5)

	size := max.Sub(min)
	maxSize := size.X
	if size.Y > maxSize {
		maxSize = size.Y
	}
	if size.Z > maxSize {
		maxSize = size.Z
	}

	c.Distance = math.Clamp(maxSize*1.5, c.MinDistance, c.MaxDistance)
	c.RotationX = 0
	c.RotationY = 0
	c.Roll = 0
}
