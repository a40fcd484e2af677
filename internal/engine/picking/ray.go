// Package picking casts rays from the screen into the editor scene.
package picking

import (
	gomath "math"

	"github.com/Faultbox/facetcraft/internal/engine/grid"
	"github.com/Faultbox/facetcraft/internal/engine/model"
	"github.com/Faultbox/facetcraft/pkg/math"
)

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3 // Normalized direction
}

// AABB represents an axis-aligned bounding box.
type AABB struct {
	Min math.Vec3
	Max math.Vec3
}

// ScreenToRay converts screen coordinates to a world-space ray.
// screenX, screenY are pixel coordinates, viewportW/H are viewport dimensions.
// invViewProj is the inverse of the view-projection matrix.
func ScreenToRay(screenX, screenY, viewportW, viewportH float32, invViewProj math.Mat4) Ray {
	// Convert screen coords to normalized device coords (-1 to 1)
	ndcX := 2.0*screenX/viewportW - 1.0
	ndcY := 1.0 - 2.0*screenY/viewportH // Flip Y

	nearWorld := unproject(invViewProj, math.Vec4{X: ndcX, Y: ndcY, Z: -1, W: 1})
	farWorld := unproject(invViewProj, math.Vec4{X: ndcX, Y: ndcY, Z: 1, W: 1})

	return Ray{Origin: nearWorld, Direction: farWorld.Sub(nearWorld).Normalize()}
}

func unproject(invViewProj math.Mat4, p math.Vec4) math.Vec3 {
	w := invViewProj.MulVec4(p)
	if w.W != 0 {
		return w.XYZ().Div(w.W)
	}
	return w.XYZ()
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) math.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// IntersectPlane intersects the ray with the plane through point with the
// given normal. Hits behind the origin are rejected.
func (r Ray) IntersectPlane(point, normal math.Vec3) (t float32, ok bool) {
	denom := r.Direction.Dot(normal)
	if gomath.Abs(float64(denom)) < 0.001 {
		return 0, false // Ray parallel to plane
	}

	t = point.Sub(r.Origin).Dot(normal) / denom
	if t < 0 {
		return 0, false // Intersection behind ray origin
	}
	return t, true
}

// IntersectPlaneZ intersects the ray with the plane z = planeZ, the plane the
// editor cursor moves in by default.
func (r Ray) IntersectPlaneZ(planeZ float32) (math.Vec3, bool) {
	t, ok := r.IntersectPlane(math.Vec3{Z: planeZ}, math.Vec3{Z: 1})
	if !ok {
		return math.Vec3{}, false
	}
	p := r.At(t)
	p.Z = planeZ
	return p, true
}

// IntersectAABB tests ray intersection with an axis-aligned bounding box.
// Returns the distance to intersection (t) and whether intersection occurred.
// If the ray starts inside the box, returns the exit distance.
func (r Ray) IntersectAABB(box AABB) (t float32, hit bool) {
	tmin := float32(-gomath.MaxFloat32)
	tmax := float32(gomath.MaxFloat32)

	for axis := 0; axis < 3; axis++ {
		o, d := r.Origin.Axis(axis), r.Direction.Axis(axis)
		lo, hi := box.Min.Axis(axis), box.Max.Axis(axis)

		if d == 0 {
			if o < lo || o > hi {
				return 0, false
			}
			continue
		}

		t1 := (lo - o) / d
		t2 := (hi - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}

	// Return entry point, or exit point if starting inside
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}

// NewAABB creates an AABB from two opposite corners in any order.
func NewAABB(a, b math.Vec3) AABB {
	box := AABB{Min: a, Max: b}
	for axis := 0; axis < 3; axis++ {
		lo, hi := a.Axis(axis), b.Axis(axis)
		if lo > hi {
			box.Min = box.Min.WithAxis(axis, hi)
			box.Max = box.Max.WithAxis(axis, lo)
		}
	}
	return box
}

// TransformAABB moves a local box into world space with the given model
// matrix. The result is the box around all eight transformed corners.
func TransformAABB(local AABB, modelMat math.Mat4) AABB {
	var out AABB
	for i := 0; i < 8; i++ {
		c := local.Min
		if i&1 != 0 {
			c.X = local.Max.X
		}
		if i&2 != 0 {
			c.Y = local.Max.Y
		}
		if i&4 != 0 {
			c.Z = local.Max.Z
		}
		p := modelMat.TransformVec3(c)
		if i == 0 {
			out = AABB{Min: p, Max: p}
			continue
		}
		for axis := 0; axis < 3; axis++ {
			v := p.Axis(axis)
			if v < out.Min.Axis(axis) {
				out.Min = out.Min.WithAxis(axis, v)
			}
			if v > out.Max.Axis(axis) {
				out.Max = out.Max.WithAxis(axis, v)
			}
		}
	}
	return out
}

// PickCell returns the nearest lattice cell hit by the ray.
func PickCell(r Ray, l *grid.Lattice) (*grid.Cell, float32, bool) {
	var best *grid.Cell
	bestT := float32(gomath.MaxFloat32)

	for _, c := range l.Cells() {
		lo, hi := c.Bounds()
		t, hit := r.IntersectAABB(AABB{Min: lo, Max: hi})
		if hit && t < bestT {
			best, bestT = c, t
		}
	}
	if best == nil {
		return nil, 0, false
	}
	return best, bestT, true
}

// PickFacet returns the facet of m whose coordinate passes closest to the
// ray, within radius world units. Faces are searched in order so the first
// facet referencing the closest coordinate wins.
func PickFacet(r Ray, m *model.Mesh, modelMat math.Mat4, radius float32) (model.Index, bool) {
	best := model.NoSelection
	bestDist := radius

	for fi := 0; fi < m.FaceCount(); fi++ {
		for j, f := range m.Face(fi) {
			p := modelMat.TransformVec3(m.Coordinate(f.Vertex))
			t := p.Sub(r.Origin).Dot(r.Direction)
			if t < 0 {
				continue
			}
			if d := r.At(t).Distance(p); d < bestDist {
				best, bestDist = model.Index{Face: fi, Facet: j}, d
			}
		}
	}
	return best, !best.IsNone()
}
