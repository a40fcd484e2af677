package camera

import (
	"testing"

	"github.com/Faultbox/facetcraft/pkg/math"
)

func TestNewOrbitCamera(t *testing.T) {
	c := NewOrbitCamera(7)
	if got := c.Position(); got.Distance(math.Vec3{Z: 7}) > 1e-5 {
		t.Errorf("Position = %v, want (0,0,7)", got)
	}

	// The origin sits straight ahead, 7 units down -Z in view space.
	p := c.ViewMatrix().TransformVec3(math.Vec3{})
	if p.Distance(math.Vec3{Z: -7}) > 1e-5 {
		t.Errorf("origin in view space = %v, want (0,0,-7)", p)
	}

	if d := NewOrbitCamera(0).Distance; d != 7 {
		t.Errorf("fallback distance = %v, want 7", d)
	}
}

func TestRotateClampsPitch(t *testing.T) {
	c := NewOrbitCamera(5)
	c.Rotate(0, 10)
	if c.RotationX != c.MaxPitch {
		t.Errorf("RotationX = %v, want %v", c.RotationX, c.MaxPitch)
	}
	c.Rotate(0, -20)
	if c.RotationX != c.MinPitch {
		t.Errorf("RotationX = %v, want %v", c.RotationX, c.MinPitch)
	}
}

func TestHandleZoomClamps(t *testing.T) {
	c := NewOrbitCamera(5)
	for i := 0; i < 100; i++ {
		c.HandleZoom(1)
	}
	if c.Distance != c.MinDistance {
		t.Errorf("Distance = %v, want %v", c.Distance, c.MinDistance)
	}
}

func TestHandleMovementAndReset(t *testing.T) {
	c := NewOrbitCamera(5)
	c.HandleMovement(0, 1, 2)
	if c.Center != (math.Vec3{X: 1, Y: 2}) {
		t.Errorf("Center = %v, want (1,2,0)", c.Center)
	}

	c.HandleMovement(1, 0, 0)
	if c.Center.Distance(math.Vec3{X: 1, Y: 2, Z: -1}) > 1e-6 {
		t.Errorf("forward should move into the screen: %v", c.Center)
	}

	c.Rotate(1, 1)
	c.RollBy(0.5)
	c.Reset()
	if c.Center != (math.Vec3{}) || c.RotationX != 0 || c.RotationY != 0 || c.Roll != 0 || c.Distance != 5 {
		t.Errorf("Reset left %+v", c)
	}
}

func TestRollKeepsCenter(t *testing.T) {
	c := NewOrbitCamera(5)
	c.RollBy(math.Radians(90))

	// Rolling spins the picture around the view axis.
	p := c.ViewMatrix().TransformVec3(math.Vec3{X: 1})
	if p.Distance(math.Vec3{Y: -1, Z: -5}) > 1e-5 {
		t.Errorf("rolled (1,0,0) = %v, want (0,-1,-5)", p)
	}
}

func TestFitToBounds(t *testing.T) {
	c := NewOrbitCamera(5)
	c.FitToBounds(math.Vec3{X: -1, Y: 0, Z: -1}, math.Vec3{X: 3, Y: 2, Z: 1})
	if c.Center != (math.Vec3{X: 1, Y: 1}) {
		t.Errorf("Center = %v", c.Center)
	}
	if c.Distance != 6 {
		t.Errorf("Distance = %v, want 6", c.Distance)
	}
}
