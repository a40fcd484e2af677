package editor

import (
	"context"
	"errors"
	"testing"

	"github.com/Faultbox/facetcraft/pkg/math"
)

func createTestController(answers ...string) *Controller {
	s := createTestSession()
	return NewController(s, NewTaskRunner(context.Background(), newScriptedPrompter(answers...), s.Post))
}

func TestCharCommand(t *testing.T) {
	tests := []struct {
		char rune
		want Command
		ok   bool
	}{
		{'w', Command{Op: OpCursorUp}, true},
		{'S', Command{Op: OpCursorOut}, true},
		{' ', Command{Op: OpAddVertex}, true},
		{'1', Command{Op: OpToggleSlot, Slot: 0}, true},
		{'9', Command{Op: OpToggleSlot, Slot: 8}, true},
		{'0', Command{}, false},
		{'z', Command{}, false},
		{'>', Command{Op: OpTranslate}, true},
		{'q', Command{Op: OpQuit}, true},
	}

	for _, tt := range tests {
		got, ok := CharCommand(tt.char)
		if got != tt.want || ok != tt.ok {
			t.Errorf("CharCommand(%q) = %+v, %v; want %+v, %v", tt.char, got, ok, tt.want, tt.ok)
		}
	}
}

func TestExecuteImmediate(t *testing.T) {
	c := createTestController()
	s := c.Session

	for _, op := range []Op{OpCursorRight, OpCursorRight, OpCursorUp, OpAddVertex, OpCursorIn, OpAddVertex} {
		if err := c.Execute(Command{Op: op}); err != nil {
			t.Fatalf("Execute(%v): %v", op, err)
		}
	}
	if s.Working.VertexCount() != 2 {
		t.Errorf("VertexCount = %d, want 2", s.Working.VertexCount())
	}
	if want := (math.Vec3{X: 0.2, Y: 0.1, Z: -0.1}); !near(s.Cursor, want) {
		t.Errorf("Cursor = %v, want %v", s.Cursor, want)
	}

	c.Execute(Command{Op: OpSelectNext})
	c.Execute(Command{Op: OpRemoveSelected})
	if s.Working.VertexCount() != 1 {
		t.Errorf("VertexCount after remove = %d, want 1", s.Working.VertexCount())
	}

	c.Execute(Command{Op: OpAmbientUp})
	if d := s.Light.Ambient - 0.25; d > 1e-6 || d < -1e-6 {
		t.Errorf("Ambient = %v, want 0.25", s.Light.Ambient)
	}

	c.Execute(Command{Op: OpYawRight})
	c.Execute(Command{Op: OpResetView})
	if s.Camera.RotationY != 0 || s.Cursor != (math.Vec3{}) {
		t.Error("reset view did not restore camera and cursor")
	}
}

func TestExecuteSwapSlot(t *testing.T) {
	t.Run("saved swaps at once", func(t *testing.T) {
		c := createTestController()
		c.Session.SetSlot(0, createTestTriangle(), "")

		if err := c.Execute(Command{Op: OpSwapSlot, Slot: 0}); err != nil {
			t.Fatal(err)
		}
		if c.Session.Working.VertexCount() != 3 {
			t.Error("swap did not happen immediately")
		}
		if c.Tasks.Busy() {
			t.Error("saved swap should not start a task")
		}
	})

	t.Run("unsaved asks first", func(t *testing.T) {
		c := createTestController("yes")
		c.Session.SetSlot(0, createTestTriangle(), "")
		c.Session.AddVertex()

		if err := c.Execute(Command{Op: OpSwapSlot, Slot: 0}); err != nil {
			t.Fatal(err)
		}
		c.Tasks.Wait()
		if c.Session.Working.VertexCount() != 1 {
			t.Fatal("swap happened before the update was applied")
		}
		c.Session.Apply()
		if c.Session.Working.VertexCount() != 3 {
			t.Error("confirmed swap not applied")
		}
	})

	t.Run("invalid slot", func(t *testing.T) {
		c := createTestController()
		if err := c.Execute(Command{Op: OpSwapSlot, Slot: 12}); err != nil {
			t.Errorf("err = %v", err)
		}
	})
}

func TestExecuteTaskInFlight(t *testing.T) {
	c := createTestController()
	release := make(chan struct{})
	started := make(chan struct{})
	if _, err := c.Tasks.Start("hold", func(ctx context.Context, p Prompter) (Update, error) {
		close(started)
		<-release
		return nil, nil
	}); err != nil {
		t.Fatal(err)
	}
	<-started

	if err := c.Execute(Command{Op: OpSave}); !errors.Is(err, ErrTaskInFlight) {
		t.Errorf("err = %v, want ErrTaskInFlight", err)
	}
	// Immediate commands still work while a prompt is open.
	if err := c.Execute(Command{Op: OpAddVertex}); err != nil {
		t.Errorf("immediate command failed: %v", err)
	}

	close(release)
	c.Tasks.Wait()
}

func TestExecuteQuit(t *testing.T) {
	c := createTestController("y")

	if err := c.Execute(Command{Op: OpQuit}); err != nil {
		t.Fatal(err)
	}
	c.Tasks.Wait()
	c.Session.Apply()
	if !c.Session.Quit() {
		t.Error("confirmed quit not applied")
	}
}
