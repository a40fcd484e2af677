package editor

import (
	"errors"

	"go.uber.org/zap"
)

// Op is an editor command.
type Op int

// Commands. Slot commands carry the slot in Command.Slot.
const (
	OpNone Op = iota

	OpCursorUp
	OpCursorDown
	OpCursorLeft
	OpCursorRight
	OpCursorIn
	OpCursorOut

	OpPanLeft
	OpPanRight
	OpPanUp
	OpPanDown
	OpPanIn
	OpPanOut
	OpYawLeft
	OpYawRight
	OpPitchUp
	OpPitchDown
	OpRollLeft
	OpRollRight
	OpResetView

	OpAddVertex
	OpConnectSelected
	OpRemoveSelected
	OpClearWorking
	OpPushFace
	OpPopFace
	OpSelectNext
	OpSelectPrev
	OpClearSelection

	OpToggleWorking
	OpToggleGrid
	OpToggleAxis
	OpToggleHighlight
	OpToggleWireframe
	OpToggleLighting
	OpToggleLightEdit
	OpToggleSpin
	OpAmbientUp
	OpAmbientDown
	OpToggleSlot
	OpSwapSlot

	OpDefineGrid
	OpFaceResolution
	OpSave
	OpLoad
	OpMerge
	OpTranslate
	OpMirror
	OpQuit
)

var opNames = map[Op]string{
	OpDefineGrid:     "grid",
	OpFaceResolution: "resolution",
	OpSave:           "save",
	OpLoad:           "load",
	OpMerge:          "merge",
	OpTranslate:      "translate",
	OpMirror:         "mirror",
	OpQuit:           "quit",
	OpSwapSlot:       "swap",
}

// Command is an Op with its argument.
type Command struct {
	Op   Op
	Slot int
}

// CharBindings maps typed characters to commands. Digits and function keys
// are handled by CharCommand and the host respectively.
var CharBindings = map[rune]Op{
	'w': OpCursorUp,
	's': OpCursorDown,
	'a': OpCursorLeft,
	'd': OpCursorRight,
	'W': OpCursorIn,
	'S': OpCursorOut,
	' ': OpAddVertex,
	'f': OpConnectSelected,
	'c': OpRemoveSelected,
	'C': OpClearWorking,
	'p': OpPushFace,
	'P': OpPopFace,
	'o': OpToggleWorking,
	'g': OpToggleGrid,
	'G': OpDefineGrid,
	'x': OpToggleAxis,
	'h': OpToggleHighlight,
	'm': OpToggleWireframe,
	't': OpToggleLighting,
	'T': OpToggleLightEdit,
	'R': OpToggleSpin,
	']': OpAmbientUp,
	'[': OpAmbientDown,
	'r': OpFaceResolution,
	'l': OpLoad,
	'M': OpMerge,
	'>': OpTranslate,
	'<': OpMirror,
	'q': OpQuit,
}

// CharCommand decodes a typed character. Digits 1-9 toggle slots.
func CharCommand(r rune) (Command, bool) {
	if r >= '1' && r <= '9' {
		return Command{Op: OpToggleSlot, Slot: int(r - '1')}, true
	}
	op, ok := CharBindings[r]
	if !ok {
		return Command{}, false
	}
	return Command{Op: op}, true
}

// ambientStep is how much one key press changes the ambient level.
const ambientStep = 0.05

// Controller executes commands against a session, running dialogs on a
// TaskRunner.
type Controller struct {
	Session *Session
	Tasks   *TaskRunner
}

// NewController pairs a session with a runner.
func NewController(s *Session, r *TaskRunner) *Controller {
	return &Controller{Session: s, Tasks: r}
}

// Execute runs a command. Commands that need to ask something start a
// task and return at once; ErrTaskInFlight means one is already asking.
func (c *Controller) Execute(cmd Command) error {
	s := c.Session

	switch cmd.Op {
	case OpCursorUp:
		s.MoveCursor(0, 1, 0)
	case OpCursorDown:
		s.MoveCursor(0, -1, 0)
	case OpCursorLeft:
		s.MoveCursor(-1, 0, 0)
	case OpCursorRight:
		s.MoveCursor(1, 0, 0)
	case OpCursorIn:
		s.MoveCursor(0, 0, -1)
	case OpCursorOut:
		s.MoveCursor(0, 0, 1)

	case OpPanLeft:
		s.PanView(0, -s.CursorStep, 0)
	case OpPanRight:
		s.PanView(0, s.CursorStep, 0)
	case OpPanUp:
		s.PanView(0, 0, s.CursorStep)
	case OpPanDown:
		s.PanView(0, 0, -s.CursorStep)
	case OpPanIn:
		s.PanView(s.CursorStep, 0, 0)
	case OpPanOut:
		s.PanView(-s.CursorStep, 0, 0)
	case OpYawLeft:
		s.TurnView(-1, 0, 0)
	case OpYawRight:
		s.TurnView(1, 0, 0)
	case OpPitchUp:
		s.TurnView(0, 1, 0)
	case OpPitchDown:
		s.TurnView(0, -1, 0)
	case OpRollLeft:
		s.TurnView(0, 0, -1)
	case OpRollRight:
		s.TurnView(0, 0, 1)
	case OpResetView:
		s.ResetView()

	case OpAddVertex:
		s.AddVertex()
	case OpConnectSelected:
		s.ConnectSelected()
	case OpRemoveSelected:
		s.RemoveSelected()
	case OpClearWorking:
		s.ClearWorking()
	case OpPushFace:
		s.PushFace()
	case OpPopFace:
		s.PopFace()
	case OpSelectNext:
		s.SelectNext()
	case OpSelectPrev:
		s.SelectPrev()
	case OpClearSelection:
		s.ClearSelection()

	case OpToggleWorking:
		s.ToggleWorking()
	case OpToggleGrid:
		s.ToggleGrid()
	case OpToggleAxis:
		s.ToggleAxis()
	case OpToggleHighlight:
		s.ToggleHighlight()
	case OpToggleWireframe:
		s.ToggleWireframe()
	case OpToggleLighting:
		s.ToggleLighting()
	case OpToggleLightEdit:
		s.ToggleLightEdit()
	case OpToggleSpin:
		s.ToggleSpin()
	case OpAmbientUp:
		s.Light.AdjustAmbient(ambientStep)
	case OpAmbientDown:
		s.Light.AdjustAmbient(-ambientStep)
	case OpToggleSlot:
		s.ToggleSlot(cmd.Slot)

	case OpSwapSlot:
		if !s.Slots.Valid(cmd.Slot) {
			return nil
		}
		if !s.Unsaved {
			s.SwapSlot(cmd.Slot)
			return nil
		}
		return c.start(cmd.Op, s.SwapTask(cmd.Slot))
	case OpDefineGrid:
		return c.start(cmd.Op, s.GridTask())
	case OpFaceResolution:
		return c.start(cmd.Op, s.ResolutionTask())
	case OpSave:
		return c.start(cmd.Op, s.SaveTask())
	case OpLoad:
		return c.start(cmd.Op, s.LoadTask())
	case OpMerge:
		return c.start(cmd.Op, s.MergeTask())
	case OpTranslate:
		return c.start(cmd.Op, s.TranslateTask())
	case OpMirror:
		return c.start(cmd.Op, s.MirrorTask())
	case OpQuit:
		return c.start(cmd.Op, s.QuitTask())
	}
	return nil
}

func (c *Controller) start(op Op, task Task) error {
	_, err := c.Tasks.Start(opNames[op], task)
	if errors.Is(err, ErrTaskInFlight) {
		c.Session.log.Info("finish the open prompt first", zap.String("command", opNames[op]))
	}
	return err
}
