package editor

import (
	"github.com/Faultbox/facetcraft/internal/engine/model"
)

// SlotCount is the number of parked models, bound to keys 1-9 and F1-F9.
const SlotCount = 9

// Slot is a parked model. Path is the file it was loaded from or last
// saved to, empty if it only exists in memory.
type Slot struct {
	Mesh    *model.Mesh
	Visible bool
	Path    string
}

// Slots holds the parked models.
type Slots struct {
	slots [SlotCount]Slot
}

// NewSlots returns nine empty, hidden slots.
func NewSlots() *Slots {
	s := &Slots{}
	for i := range s.slots {
		s.slots[i].Mesh = model.New()
	}
	return s
}

// Valid reports whether i names a slot.
func (s *Slots) Valid(i int) bool {
	return i >= 0 && i < SlotCount
}

// Get returns slot i. It panics on an invalid index like a slice would.
func (s *Slots) Get(i int) *Slot {
	return &s.slots[i]
}

// Toggle flips the visibility of slot i. An empty slot stays hidden.
func (s *Slots) Toggle(i int) bool {
	if !s.Valid(i) {
		return false
	}
	sl := &s.slots[i]
	if sl.Mesh.VertexCount() == 0 {
		sl.Visible = false
		return false
	}
	sl.Visible = !sl.Visible
	return sl.Visible
}

// Swap exchanges the working mesh with slot i and returns the mesh that
// was parked there. The slot is hidden afterwards.
func (s *Slots) Swap(i int, working *model.Mesh, workingPath string) (*model.Mesh, string) {
	sl := &s.slots[i]
	out, outPath := sl.Mesh, sl.Path
	sl.Mesh = working
	sl.Path = workingPath
	sl.Visible = false
	return out, outPath
}

// Set replaces the mesh in slot i, keeping its visibility.
func (s *Slots) Set(i int, m *model.Mesh, path string) {
	s.slots[i].Mesh = m
	s.slots[i].Path = path
}

// Visible returns the indices of the slots currently drawn.
func (s *Slots) Visible() []int {
	var out []int
	for i := range s.slots {
		if s.slots[i].Visible {
			out = append(out, i)
		}
	}
	return out
}

// Tick advances the pose of every slot.
func (s *Slots) Tick() {
	for i := range s.slots {
		s.slots[i].Mesh.Tick()
	}
}
