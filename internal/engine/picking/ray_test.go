package picking

import (
	"testing"

	"github.com/Faultbox/facetcraft/internal/engine/grid"
	"github.com/Faultbox/facetcraft/internal/engine/model"
	"github.com/Faultbox/facetcraft/pkg/math"
)

func TestScreenToRayIdentity(t *testing.T) {
	r := ScreenToRay(400, 300, 800, 600, math.Identity())
	if r.Origin.Distance(math.Vec3{Z: -1}) > 1e-6 {
		t.Errorf("Origin = %v, want (0,0,-1)", r.Origin)
	}
	if r.Direction.Distance(math.Vec3{Z: 1}) > 1e-6 {
		t.Errorf("Direction = %v, want +Z", r.Direction)
	}

	// Top-left pixel maps to NDC (-1, 1).
	r = ScreenToRay(0, 0, 800, 600, math.Identity())
	if r.Origin.Distance(math.Vec3{X: -1, Y: 1, Z: -1}) > 1e-6 {
		t.Errorf("corner Origin = %v", r.Origin)
	}
}

func TestScreenToRayPerspective(t *testing.T) {
	proj := math.Perspective(math.Radians(45), 800.0/600.0, 1, 100)
	view := math.LookAt(math.Vec3{Z: 10}, math.Vec3{}, math.Vec3{Y: 1})
	inv := proj.Mul(view).Inverse()

	r := ScreenToRay(400, 300, 800, 600, inv)
	if r.Direction.Distance(math.Vec3{Z: -1}) > 1e-4 {
		t.Errorf("center ray direction = %v, want -Z", r.Direction)
	}
	if r.Origin.Distance(math.Vec3{Z: 9}) > 1e-3 {
		t.Errorf("center ray origin = %v, want near plane at z=9", r.Origin)
	}
}

func TestIntersectAABB(t *testing.T) {
	box := NewAABB(math.Vec3{X: 1, Y: 1, Z: 1}, math.Vec3{X: -1, Y: -1, Z: -1})
	if box.Min != (math.Vec3{X: -1, Y: -1, Z: -1}) {
		t.Fatalf("NewAABB did not order corners: %+v", box)
	}

	tests := []struct {
		name  string
		ray   Ray
		wantT float32
		hit   bool
	}{
		{"front", Ray{Origin: math.Vec3{Z: 5}, Direction: math.Vec3{Z: -1}}, 4, true},
		{"inside", Ray{Origin: math.Vec3{}, Direction: math.Vec3{X: 1}}, 1, true},
		{"behind", Ray{Origin: math.Vec3{Z: 5}, Direction: math.Vec3{Z: 1}}, 0, false},
		{"parallel miss", Ray{Origin: math.Vec3{X: 2, Z: 5}, Direction: math.Vec3{Z: -1}}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, hit := tt.ray.IntersectAABB(box)
			if hit != tt.hit {
				t.Fatalf("hit = %v, want %v", hit, tt.hit)
			}
			if hit && got != tt.wantT {
				t.Errorf("t = %v, want %v", got, tt.wantT)
			}
		})
	}
}

func TestIntersectPlaneZ(t *testing.T) {
	r := Ray{Origin: math.Vec3{X: 1, Y: 2, Z: 4}, Direction: math.Vec3{Z: -1}}
	p, ok := r.IntersectPlaneZ(1)
	if !ok || p != (math.Vec3{X: 1, Y: 2, Z: 1}) {
		t.Errorf("IntersectPlaneZ = %v, %v", p, ok)
	}

	r.Direction = math.Vec3{X: 1}
	if _, ok := r.IntersectPlaneZ(1); ok {
		t.Error("parallel ray should miss")
	}
}

func TestTransformAABB(t *testing.T) {
	local := AABB{Max: math.Vec3{X: 2, Y: 1, Z: 1}}
	m := math.Translate(math.Vec3{Y: 3}).Mul(math.RotateAxis(math.Vec3{Y: 1}, 90))

	got := TransformAABB(local, m)
	want := AABB{Min: math.Vec3{Y: 3, Z: -2}, Max: math.Vec3{X: 1, Y: 4}}
	if got.Min.Distance(want.Min) > 1e-5 || got.Max.Distance(want.Max) > 1e-5 {
		t.Errorf("TransformAABB = %+v, want %+v", got, want)
	}
}

func TestPickCell(t *testing.T) {
	l := grid.NewLattice(1, 5)
	r := Ray{Origin: math.Vec3{X: 0.7, Y: 0.7, Z: 10}, Direction: math.Vec3{Z: -1}}

	c, dist, ok := PickCell(r, l)
	if !ok {
		t.Fatal("expected a hit")
	}
	if c.Corner() != (math.Vec3{X: 0.5, Y: 0.5, Z: 1.5}) {
		t.Errorf("picked cell at %v, want the front cell", c.Corner())
	}
	if dist != 7.5 {
		t.Errorf("distance = %v, want 7.5", dist)
	}

	r.Origin.X = 10
	if _, _, ok := PickCell(r, l); ok {
		t.Error("ray beside the lattice should miss")
	}
}

func TestPickFacet(t *testing.T) {
	m := model.New()
	m.AddVertex(math.Vec3{}, model.DefaultColor)
	m.AddVertex(math.Vec3{X: 1}, model.DefaultColor)
	m.PushFace()
	m.AddVertex(math.Vec3{X: 1}, model.DefaultColor)

	r := Ray{Origin: math.Vec3{X: 1.05, Z: 5}, Direction: math.Vec3{Z: -1}}
	idx, ok := PickFacet(r, m, math.Identity(), 0.1)
	if !ok || idx != (model.Index{Face: 0, Facet: 1}) {
		t.Errorf("PickFacet = %+v, %v", idx, ok)
	}

	if _, ok := PickFacet(r, m, math.Translate(math.Vec3{Y: 3}), 0.1); ok {
		t.Error("translated mesh should not be picked")
	}
}
