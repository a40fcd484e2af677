// Package editor holds the modeler's state and every command that changes
// it. It draws nothing itself: Frame turns the state into scene batches and
// the host feeds it commands decoded from input.
package editor

import (
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Faultbox/facetcraft/internal/config"
	"github.com/Faultbox/facetcraft/internal/engine/camera"
	"github.com/Faultbox/facetcraft/internal/engine/grid"
	"github.com/Faultbox/facetcraft/internal/engine/lighting"
	"github.com/Faultbox/facetcraft/internal/engine/model"
	"github.com/Faultbox/facetcraft/internal/logger"
	"github.com/Faultbox/facetcraft/pkg/math"
)

// Update is a state change computed off the main loop. It runs on the loop
// goroutine when the session drains its queue.
type Update func(s *Session)

// updateQueueSize bounds how many finished tasks and reloads can wait for
// the next frame before senders block.
const updateQueueSize = 32

// Session is the editor state. All fields are owned by the main loop;
// background work hands results back through Post.
type Session struct {
	Working     *model.Mesh
	WorkingPath string
	Selected    model.Index
	Color       math.Vec3

	Slots   *Slots
	Palette *Palette
	Lattice *grid.Lattice
	Light   *lighting.Rig
	Camera  *camera.OrbitCamera

	Cursor     math.Vec3
	CursorStep float32

	// LightEdit routes the cursor keys to the light.
	LightEdit   bool
	ShowWorking bool
	ShowGrid    bool
	ShowAxis    bool
	Highlight   bool
	Wireframe   bool

	// Unsaved is set by edits and cleared by a save, a load or an explicit
	// discard.
	Unsaved bool

	ModelDir    string
	FOV         float32
	Near        float32
	Far         float32
	RotateSpeed float32

	updates chan Update
	quit    bool
	watcher *SlotWatcher
	log     *zap.Logger
}

// NewSession builds the startup state from configuration.
func NewSession(cfg *config.Config) *Session {
	s := &Session{
		Working:     model.New(),
		Selected:    model.NoSelection,
		Color:       math.Vec3{X: cfg.Editor.SelectedColor[0], Y: cfg.Editor.SelectedColor[1], Z: cfg.Editor.SelectedColor[2]},
		Slots:       NewSlots(),
		Palette:     NewPalette(cfg.Palette.Alpha, cfg.Palette.Gamma, cfg.Palette.Step),
		Lattice:     grid.NewLattice(cfg.Grid.Unit, cfg.Grid.Count),
		Light:       lighting.NewRig(cfg.Grid.Unit),
		Camera:      camera.NewOrbitCamera(0),
		ShowWorking: true,
		ShowGrid:    cfg.Editor.ShowGrid,
		ShowAxis:    cfg.Editor.ShowAxis,
		Highlight:   cfg.Editor.Highlight,
		Wireframe:   cfg.Editor.Wireframe,
		ModelDir:    cfg.Files.ModelDir,
		FOV:         cfg.Window.FOV,
		Near:        cfg.Window.Near,
		Far:         cfg.Window.Far,
		RotateSpeed: cfg.Editor.RotateSpeed,
		updates:     make(chan Update, updateQueueSize),
		log:         logger.Named("editor"),
	}
	s.Light.Enabled = cfg.Lighting.Enabled
	s.Light.Ambient = math.Clamp(cfg.Lighting.Ambient, 0, 1)
	s.setCursorStep(cfg.Editor.CursorStep)
	return s
}

func (s *Session) setCursorStep(step float32) {
	if step <= 0 {
		step = s.Lattice.Unit() / 10
	}
	s.CursorStep = step
}

// Post queues an update for the main loop. It blocks while the queue is
// full, so it must not be called from the loop goroutine itself.
func (s *Session) Post(u Update) {
	s.updates <- u
}

// Apply runs every queued update and returns how many ran.
func (s *Session) Apply() int {
	n := 0
	for {
		select {
		case u := <-s.updates:
			u(s)
			n++
		default:
			return n
		}
	}
}

// Tick advances animations by one frame.
func (s *Session) Tick() {
	s.Working.Tick()
	s.Slots.Tick()
}

// Quit reports whether a quit was confirmed.
func (s *Session) Quit() bool {
	return s.quit
}

// Caption names the working model for a title bar: its file name, or
// "untitled" before the first save, with a trailing '*' while unsaved.
func (s *Session) Caption() string {
	name := "untitled"
	if s.WorkingPath != "" {
		name = filepath.Base(s.WorkingPath)
	}
	if s.Unsaved {
		name += " *"
	}
	return name
}

// SetWatcher attaches a watcher that follows slot files.
func (s *Session) SetWatcher(w *SlotWatcher) {
	s.watcher = w
}

// MoveCursor steps the cursor, or the light in light edit mode, by whole
// cursor steps along each axis.
func (s *Session) MoveCursor(dx, dy, dz int) {
	delta := math.Vec3{X: float32(dx), Y: float32(dy), Z: float32(dz)}.Scale(s.CursorStep)
	if s.LightEdit {
		s.Light.Move(delta)
		return
	}
	s.Cursor = s.Cursor.Add(delta)
}

// ResetView puts the camera, cursor and light back where they started.
func (s *Session) ResetView() {
	s.Camera.Reset()
	s.Cursor = math.Vec3{}
	s.Light.Reset()
}

// AddVertex adds a facet at the cursor in the selected color.
func (s *Session) AddVertex() {
	s.Working.AddVertex(s.Cursor, s.Color)
	s.Unsaved = true
}

// ConnectSelected adds the selected facet's coordinate to the open face
// again, in the selected color. This is how shared corners are made.
func (s *Session) ConnectSelected() {
	pos, ok := s.Working.FacetPosition(s.Selected)
	if !ok {
		return
	}
	s.Working.AddVertex(pos, s.Color)
	s.Unsaved = true
}

// RemoveSelected deletes the selected facet and clears the selection.
func (s *Session) RemoveSelected() {
	if s.Working.RemoveVertex(s.Selected) {
		s.Unsaved = true
	}
	s.Selected = model.NoSelection
}

// ClearWorking empties the working mesh. The result counts as saved since
// there is nothing to lose.
func (s *Session) ClearWorking() {
	s.Working.Clear()
	s.Selected = model.NoSelection
	s.Unsaved = false
}

// PushFace closes the open face.
func (s *Session) PushFace() {
	s.Working.PushFace()
	s.Selected = model.NoSelection
	s.Unsaved = true
}

// PopFace reopens the last closed face.
func (s *Session) PopFace() {
	s.Working.PopFace()
	s.Selected = model.NoSelection
	s.Unsaved = true
}

// SelectNext moves the selection forward.
func (s *Session) SelectNext() {
	s.Selected = s.Working.Next(s.Selected)
}

// SelectPrev moves the selection backward.
func (s *Session) SelectPrev() {
	s.Selected = s.Working.Prev(s.Selected)
}

// ClearSelection drops the selection.
func (s *Session) ClearSelection() {
	s.Selected = model.NoSelection
}

// Select sets the selection if idx is valid.
func (s *Session) Select(idx model.Index) bool {
	if !s.Working.Valid(idx) {
		return false
	}
	s.Selected = idx
	return true
}

// PickColor makes c the selected color and paints the selected facet.
func (s *Session) PickColor(c math.Vec3) {
	s.Color = c
	if s.Working.SetVertexColor(s.Selected, c) {
		s.Unsaved = true
	}
}

// ClickPalette handles a click at overlay coordinates and reports whether
// it landed on the palette.
func (s *Session) ClickPalette(x, y float32) bool {
	hit, i := s.Palette.Hit(x, y)
	switch hit {
	case HitNone:
		return false
	case HitColor:
		s.PickColor(s.Palette.Color(i))
	default:
		s.Palette.Adjust(hit)
	}
	return true
}

// ToggleSlot shows or hides slot i. Empty slots stay hidden.
func (s *Session) ToggleSlot(i int) {
	s.Slots.Toggle(i)
}

// SwapSlot exchanges the working mesh with slot i without asking. Callers
// check Unsaved first.
func (s *Session) SwapSlot(i int) {
	if !s.Slots.Valid(i) {
		return
	}
	s.Working, s.WorkingPath = s.Slots.Swap(i, s.Working, s.WorkingPath)
	s.Selected = model.NoSelection
	s.Unsaved = false
	s.follow(i)
	s.log.Debug("swapped working model", zap.Int("slot", i+1), zap.String("path", s.WorkingPath))
}

// SetSlot replaces the content of slot i, e.g. when its file is loaded.
func (s *Session) SetSlot(i int, m *model.Mesh, path string) {
	if !s.Slots.Valid(i) {
		return
	}
	s.Slots.Set(i, m, path)
	s.follow(i)
}

func (s *Session) follow(i int) {
	if s.watcher == nil {
		return
	}
	if err := s.watcher.Watch(i, s.Slots.Get(i).Path); err != nil {
		s.log.Warn("cannot watch slot file", zap.Int("slot", i+1), zap.Error(err))
	}
}

// DefineGrid rebuilds the lattice. The cursor step and light home follow
// the new unit.
func (s *Session) DefineGrid(unit float32, count int) {
	s.Lattice.Define(unit, count)
	s.CursorStep = unit / 10
	s.Light.SetHome(unit)
}

// ToggleWorking shows or hides the working mesh.
func (s *Session) ToggleWorking() { s.ShowWorking = !s.ShowWorking }

// ToggleGrid shows or hides the lattice.
func (s *Session) ToggleGrid() { s.ShowGrid = !s.ShowGrid }

// ToggleAxis shows or hides the axes.
func (s *Session) ToggleAxis() { s.ShowAxis = !s.ShowAxis }

// ToggleHighlight turns cell highlighting under the cursor on or off.
func (s *Session) ToggleHighlight() { s.Highlight = !s.Highlight }

// ToggleWireframe switches between filled and outlined faces.
func (s *Session) ToggleWireframe() { s.Wireframe = !s.Wireframe }

// ToggleLighting switches the point light.
func (s *Session) ToggleLighting() { s.Light.Toggle() }

// ToggleLightEdit routes the cursor keys to the light or back.
func (s *Session) ToggleLightEdit() { s.LightEdit = !s.LightEdit }

// PanView moves the camera center.
func (s *Session) PanView(forward, right, up float32) {
	s.Camera.HandleMovement(forward, right, up)
}

// TurnView rotates the camera by whole key steps.
func (s *Session) TurnView(yaw, pitch, roll int) {
	step := s.Camera.KeyStep
	s.Camera.Rotate(float32(yaw)*step, float32(pitch)*step)
	if roll != 0 {
		s.Camera.RollBy(float32(roll) * step)
	}
}

// ToggleSpin puts the working model on a turntable, or sends it back to its
// rest orientation along the shorter arc.
func (s *Session) ToggleSpin() {
	p := s.Working.Pose()
	if p.SmartRotate {
		p.SmartRotate = false
		p.Speed = s.RotateSpeed
		// Never reached, so the model keeps turning.
		p.Target = -1
	} else {
		p.SmartRotate = true
		p.Target = 0
	}
	s.Working.SetPose(p)
}
