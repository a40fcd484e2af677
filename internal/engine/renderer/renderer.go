// Package renderer provides OpenGL rendering functionality.
package renderer

import (
	"fmt"
	"unsafe"

	"go.uber.org/zap"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/facetcraft/internal/engine/renderer/shaders"
	"github.com/Faultbox/facetcraft/internal/engine/scene"
	"github.com/Faultbox/facetcraft/internal/engine/shader"
	"github.com/Faultbox/facetcraft/internal/logger"
	"github.com/Faultbox/facetcraft/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
	VSync  bool
}

var uniformNames = []string{
	"uMVP", "uModel", "uPointSize",
	"uLit", "uLightEnabled", "uLightPos", "uLightDiffuse", "uLightSpecular",
	"uAmbient", "uEye", "uEmissive",
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config

	program *shader.Program

	// One streaming buffer reused by every batch.
	vao     uint32
	vbo     uint32
	vboSize int
	scratch []float32
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
	}

	// Initialize OpenGL
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	// Log OpenGL info
	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.Enable(gl.LINE_SMOOTH)
	gl.ClearColor(0, 0, 0, 1)

	var err error
	r.program, err = shader.NewProgram(shaders.MeshVertexShader, shaders.MeshFragmentShader, uniformNames...)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}

	r.createBuffers()
	r.Resize(cfg.Width, cfg.Height)

	logger.Debug("shader program created", zap.Uint32("program", r.program.ID))
	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.program != nil {
		r.program.Delete()
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Size returns the current viewport size.
func (r *Renderer) Size() (int, int) {
	return r.config.Width, r.config.Height
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// End finishes the current frame.
func (r *Renderer) End() {
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

// DrawFrame draws world batches (opaque first, then translucent without
// depth writes) and then the overlay with depth testing off.
func (r *Renderer) DrawFrame(f *scene.Frame) {
	r.program.Use()
	r.setLight(f.Light, f.Eye)

	viewProj := f.Projection.Mul(f.View)
	for _, b := range f.World {
		if !b.Translucent {
			r.DrawBatch(b, viewProj)
		}
	}

	gl.DepthMask(false)
	for _, b := range f.World {
		if b.Translucent {
			r.DrawBatch(b, viewProj)
		}
	}
	gl.DepthMask(true)

	gl.Disable(gl.DEPTH_TEST)
	r.program.SetBool("uLightEnabled", false)
	for _, b := range f.Overlay {
		r.DrawBatch(b, f.OverlayProjection)
	}
	gl.Enable(gl.DEPTH_TEST)
}

func (r *Renderer) setLight(l scene.Light, eye math.Vec3) {
	r.program.SetBool("uLightEnabled", l.Enabled)
	r.program.SetVec3("uLightPos", l.Position)
	r.program.SetVec3("uLightDiffuse", l.Diffuse)
	r.program.SetVec3("uLightSpecular", l.Specular)
	r.program.SetVec3("uAmbient", l.Ambient)
	r.program.SetVec3("uEye", eye)
}

// DrawBatch uploads and draws one batch. The program must be in use.
func (r *Renderer) DrawBatch(b *scene.Batch, viewProj math.Mat4) {
	if b.Empty() {
		return
	}

	r.scratch = b.AppendFloats(r.scratch[:0])
	r.upload(r.scratch)

	r.program.SetMat4("uMVP", viewProj.Mul(b.Model))
	r.program.SetMat4("uModel", b.Model)
	r.program.SetBool("uLit", b.Lit)
	r.program.SetFloat("uEmissive", b.Emissive)
	r.program.SetFloat("uPointSize", b.PointSize)

	gl.BindVertexArray(r.vao)
	count := int32(b.Len())
	switch b.Mode {
	case scene.Triangles:
		gl.DrawArrays(gl.TRIANGLES, 0, count)
	case scene.Lines:
		gl.LineWidth(b.LineWidth)
		gl.DrawArrays(gl.LINES, 0, count)
	case scene.Points:
		gl.DrawArrays(gl.POINTS, 0, count)
	}
}

func (r *Renderer) upload(data []float32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	size := len(data) * 4
	if size > r.vboSize {
		gl.BufferData(gl.ARRAY_BUFFER, size, unsafe.Pointer(&data[0]), gl.STREAM_DRAW)
		r.vboSize = size
		return
	}
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, size, unsafe.Pointer(&data[0]))
}

// createBuffers sets up the interleaved position/color/normal layout.
func (r *Renderer) createBuffers() {
	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	stride := int32(scene.FloatsPerVertex * 4)

	// Position attribute (location = 0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, nil)
	gl.EnableVertexAttribArray(0)

	// Color attribute (location = 1)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, stride, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(1)

	// Normal attribute (location = 2)
	gl.VertexAttribPointer(2, 3, gl.FLOAT, false, stride, gl.PtrOffset(7*4))
	gl.EnableVertexAttribArray(2)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	logger.Debug("vertex buffers created",
		zap.Uint32("vao", r.vao),
		zap.Uint32("vbo", r.vbo),
	)
}
