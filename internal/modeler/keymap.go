package modeler

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/facetcraft/internal/editor"
	"github.com/Faultbox/facetcraft/internal/engine/input"
)

// functionKeys swap the working model with slots 1-9.
var functionKeys = map[sdl.Keycode]int{
	sdl.K_F1: 0, sdl.K_F2: 1, sdl.K_F3: 2,
	sdl.K_F4: 3, sdl.K_F5: 4, sdl.K_F6: 5,
	sdl.K_F7: 6, sdl.K_F8: 7, sdl.K_F9: 8,
}

// keyCommand decodes keys that do not produce text. Printable keys arrive
// as text events and go through editor.CharCommand instead.
func keyCommand(key sdl.Keycode, mod input.Mod) (editor.Command, bool) {
	if slot, ok := functionKeys[key]; ok {
		return editor.Command{Op: editor.OpSwapSlot, Slot: slot}, true
	}

	var op editor.Op
	switch key {
	case sdl.K_BACKSPACE:
		op = editor.OpResetView
	case sdl.K_RETURN, sdl.K_KP_ENTER:
		op = editor.OpSave
	case sdl.K_ESCAPE:
		op = editor.OpClearSelection
	case sdl.K_TAB:
		op = editor.OpSelectNext
		if mod.Has(input.ModShift) {
			op = editor.OpSelectPrev
		}
	case sdl.K_LEFT, sdl.K_RIGHT, sdl.K_UP, sdl.K_DOWN:
		op = arrowOp(key, mod)
	}
	return editor.Command{Op: op}, op != editor.OpNone
}

// arrowOp picks what an arrow does: plain arrows pan, shift moves in and
// out, ctrl rotates and alt rolls.
func arrowOp(key sdl.Keycode, mod input.Mod) editor.Op {
	left := key == sdl.K_LEFT
	up := key == sdl.K_UP
	horizontal := left || key == sdl.K_RIGHT

	switch {
	case mod.Has(input.ModCtrl):
		switch {
		case horizontal && left:
			return editor.OpYawLeft
		case horizontal:
			return editor.OpYawRight
		case up:
			return editor.OpPitchUp
		default:
			return editor.OpPitchDown
		}
	case mod.Has(input.ModAlt):
		switch {
		case horizontal && left:
			return editor.OpRollLeft
		case horizontal:
			return editor.OpRollRight
		}
		return editor.OpNone
	case mod.Has(input.ModShift) && !horizontal:
		if up {
			return editor.OpPanIn
		}
		return editor.OpPanOut
	}

	switch {
	case horizontal && left:
		return editor.OpPanLeft
	case horizontal:
		return editor.OpPanRight
	case up:
		return editor.OpPanUp
	default:
		return editor.OpPanDown
	}
}
