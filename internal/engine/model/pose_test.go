package model

import (
	"errors"
	"testing"

	"github.com/Faultbox/facetcraft/pkg/math"
)

func TestSmartRotateShortArc(t *testing.T) {
	m := New()
	m.SetSpeed(5)
	p := m.Pose()
	p.Orientation = 350
	m.SetPose(p)
	m.SetOrientation(10)

	want := []float32{355, 0, 5, 10, 10}
	for i, w := range want {
		m.Tick()
		if got := m.Pose().Orientation; got != w {
			t.Fatalf("tick %d: orientation = %v, want %v", i, got, w)
		}
	}
}

func TestSmartRotateClockwise(t *testing.T) {
	p := DefaultPose()
	p.Speed = 5
	p.Orientation = 10
	p.Target = 350

	p.Step()
	if p.Orientation != 5 {
		t.Errorf("orientation = %v, want 5", p.Orientation)
	}
	p.Step()
	p.Step()
	if p.Orientation != 355 {
		t.Errorf("orientation = %v, want 355", p.Orientation)
	}
}

func TestSmartRotateStopsOnTarget(t *testing.T) {
	p := DefaultPose()
	p.Target = 2
	p.Speed = 1.5

	p.Step()
	p.Step()
	if p.Orientation != 2 {
		t.Errorf("orientation = %v, want 2", p.Orientation)
	}
}

func TestSetOrientationWraps(t *testing.T) {
	m := New()
	m.SetOrientation(-90)
	if got := m.Pose().Target; got != 270 {
		t.Errorf("Target = %v, want 270", got)
	}

	m.EnableSmartRotate(false)
	m.SetOrientation(-90)
	if got := m.Pose().Target; got != -90 {
		t.Errorf("Target without smart rotate = %v, want -90", got)
	}
}

func TestPlainRotateSpins(t *testing.T) {
	m := New()
	m.EnableSmartRotate(false)
	m.SetSpeed(10)
	m.SetOrientation(15)

	for i := 0; i < 3; i++ {
		m.Tick()
	}
	if got := m.Pose().Orientation; got != 30 {
		t.Errorf("orientation = %v, want 30", got)
	}

	m.SetOrientation(30)
	m.Tick()
	if got := m.Pose().Orientation; got != 30 {
		t.Errorf("orientation on target = %v, want 30", got)
	}
}

func TestTickChildren(t *testing.T) {
	parent := New()
	child := New()
	child.SetSpeed(10)
	child.SetOrientation(90)
	if err := parent.AddSubmodel(child); err != nil {
		t.Fatal(err)
	}

	parent.Tick()
	if got := parent.Submodel(0).Pose().Orientation; got != 10 {
		t.Errorf("child orientation = %v, want 10", got)
	}

	parent.ToggleChildAnimations()
	parent.Tick()
	if got := parent.Submodel(0).Pose().Orientation; got != 10 {
		t.Errorf("child advanced with animation off: %v", got)
	}
}

func TestPoseMatrices(t *testing.T) {
	p := DefaultPose()
	p.Position = math.Vec3{X: 5}
	p.Orientation = 90

	got := p.ModelMatrix().TransformVec3(math.Vec3{X: 1})
	if got.Distance(math.Vec3{X: 5, Z: -1}) > 1e-5 {
		t.Errorf("ModelMatrix * (1,0,0) = %v, want (5,0,-1)", got)
	}

	p.Anchored = true
	got = p.ModelMatrix().TransformVec3(math.Vec3{X: 1})
	if got.Distance(math.Vec3{X: 6}) > 1e-5 {
		t.Errorf("anchored ModelMatrix * (1,0,0) = %v, want (6,0,0)", got)
	}
	got = p.ChildMatrix().TransformVec3(math.Vec3{X: 1})
	if got.Distance(math.Vec3{X: 5, Z: -1}) > 1e-5 {
		t.Errorf("ChildMatrix still rotates: got %v", got)
	}
}

func TestAddSubmodelRejectsCycles(t *testing.T) {
	m := New()
	if err := m.AddSubmodel(m); !errors.Is(err, ErrSelfReference) {
		t.Errorf("self add error = %v, want ErrSelfReference", err)
	}

	if err := m.AddSubmodel(New()); err != nil {
		t.Fatal(err)
	}
	owned := m.Submodel(0)
	if err := owned.AddSubmodel(m); !errors.Is(err, ErrSelfReference) {
		t.Errorf("ancestor add error = %v, want ErrSelfReference", err)
	}
}

func TestAddSubmodelCopies(t *testing.T) {
	m := New()
	child := createTestTriangle()
	if err := m.AddSubmodel(child); err != nil {
		t.Fatal(err)
	}
	child.Clear()
	if m.Submodel(0).VertexCount() != 3 {
		t.Error("sub-model should be an independent copy")
	}

	if !m.RemoveSubmodel(0) || m.SubmodelCount() != 0 {
		t.Error("RemoveSubmodel failed")
	}
	if m.RemoveSubmodel(0) {
		t.Error("RemoveSubmodel on empty list should return false")
	}
}

func TestWalk(t *testing.T) {
	root := New()
	root.SetPosition(math.Vec3{Y: 1})
	child := New()
	child.SetPosition(math.Vec3{X: 2})
	if err := root.AddSubmodel(child); err != nil {
		t.Fatal(err)
	}

	var origins []math.Vec3
	root.Walk(math.Identity(), func(_ *Mesh, model math.Mat4) {
		origins = append(origins, model.TransformVec3(math.Vec3{}))
	})

	want := []math.Vec3{{Y: 1}, {X: 2, Y: 1}}
	if len(origins) != len(want) {
		t.Fatalf("visited %d meshes, want %d", len(origins), len(want))
	}
	for i := range want {
		if origins[i] != want[i] {
			t.Errorf("mesh %d origin = %v, want %v", i, origins[i], want[i])
		}
	}
}
