package editor

import (
	"github.com/Faultbox/facetcraft/internal/engine/picking"
	"github.com/Faultbox/facetcraft/internal/engine/scene"
	"github.com/Faultbox/facetcraft/pkg/math"
)

// pickRadius is how close, in world units, a click ray must pass to a
// coordinate to select its facet.
const pickRadius = 0.15

var slotOutline = math.Vec4{X: 0.4, Y: 0.4, Z: 0.4, W: 1}

// Projection returns the perspective projection for a viewport.
func (s *Session) Projection(width, height int) math.Mat4 {
	aspect := float32(1)
	if width > 0 && height > 0 {
		aspect = float32(width) / float32(height)
	}
	return math.Perspective(math.Radians(s.FOV), aspect, s.Near, s.Far)
}

// Frame builds everything to draw for a viewport of the given size.
func (s *Session) Frame(width, height int) *scene.Frame {
	f := scene.NewFrame()
	f.Projection = s.Projection(width, height)
	f.View = s.Camera.ViewMatrix()
	f.Eye = s.Camera.Position()
	f.Light = s.Light.SceneLight()
	f.OverlayProjection = math.Ortho(0, OverlayWidth, 0, OverlayHeight, -1, 1)

	if s.ShowAxis {
		f.AddWorld(scene.Axes(s.Lattice.Unit()))
	}
	f.AddWorld(scene.Cursor(s.Cursor)...)
	if s.Light.Enabled {
		f.AddWorld(scene.LightMarker(s.Light.Light.Position))
	}

	if s.ShowWorking {
		opts := scene.DefaultMeshOptions()
		opts.Wireframe = s.Wireframe
		opts.Selected = s.Selected
		opts.OpenFacePoints = true
		f.AddWorld(scene.MeshBatches(s.Working, math.Identity(), opts)...)
	}

	for _, i := range s.Slots.Visible() {
		m := s.Slots.Get(i).Mesh
		opts := scene.DefaultMeshOptions()
		opts.Wireframe = s.Wireframe
		f.AddWorld(scene.MeshBatches(m, math.Identity(), opts)...)

		// Parked models get a dim outline so they read as not editable.
		if b, ok := m.Bounds(); ok {
			box := scene.Box(b.Min, b.Max, slotOutline)
			box.Model = m.Pose().ModelMatrix()
			f.AddWorld(box)
		}
	}

	// Translucent cells go last so they blend over the meshes.
	if s.ShowGrid {
		var pointer *math.Vec3
		if s.Highlight {
			pointer = &s.Cursor
		}
		lines, quads := scene.GridBatches(s.Lattice.Primitives(pointer))
		f.AddWorld(lines, quads)
	}

	f.AddOverlay(s.Palette.Batches(s.Color)...)
	return f
}

// Click handles a left click at window pixel coordinates. A click on the
// palette picks a color or adjusts it. Otherwise the click selects the
// working facet under the pointer, or moves the cursor to the center of
// the grid cell it hits.
func (s *Session) Click(px, py, width, height int) {
	if x, y := ScreenToOverlay(px, py, width, height); s.ClickPalette(x, y) {
		return
	}

	invViewProj := s.Projection(width, height).Mul(s.Camera.ViewMatrix()).Inverse()
	ray := picking.ScreenToRay(float32(px), float32(py), float32(width), float32(height), invViewProj)

	if s.ShowWorking {
		modelMat := s.Working.Pose().ModelMatrix()
		if idx, hit := picking.PickFacet(ray, s.Working, modelMat, pickRadius); hit {
			s.Selected = idx
			return
		}
	}

	if !s.ShowGrid {
		return
	}
	if cell, _, hit := picking.PickCell(ray, s.Lattice); hit {
		half := cell.Width() / 2
		s.Cursor = cell.Corner().Add(math.Vec3{X: half, Y: half, Z: half})
	}
}
