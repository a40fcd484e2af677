package editor

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/facetcraft/internal/engine/model"
)

// Prompts shown by the dialogs.
const (
	promptDiscard = "Continue without saving? (yes/no) "
	promptQuit    = "Are you sure you want to quit? (y/n) "
)

// askDiscard asks whether unsaved work may be thrown away. With nothing
// unsaved it does not ask.
func askDiscard(ctx context.Context, p Prompter, unsaved bool) (bool, error) {
	if !unsaved {
		return true, nil
	}
	return confirm(ctx, p, promptDiscard)
}

func askAxis(ctx context.Context, p Prompter, question string) (int, error) {
	answer, err := p.Ask(ctx, question)
	if err != nil {
		return 0, err
	}
	return model.AxisIndex(strings.TrimSpace(answer))
}

func askFloat(ctx context.Context, p Prompter, question string) (float32, error) {
	answer, err := p.Ask(ctx, question)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(answer), 32)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", answer)
	}
	return float32(v), nil
}

func askInt(ctx context.Context, p Prompter, question string) (int, error) {
	answer, err := p.Ask(ctx, question)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil {
		return 0, fmt.Errorf("not a whole number: %q", answer)
	}
	return v, nil
}

// resolvePath makes a relative model name relative to dir.
func resolvePath(dir, name string) string {
	if name == "" || filepath.IsAbs(name) || dir == "" {
		return name
	}
	return filepath.Join(dir, name)
}

// SaveTask asks for a file name and writes a snapshot of the working mesh.
// An empty answer picks the next free model_N name in the model directory.
// Pending normals are settled on the working mesh itself, not just the
// snapshot.
func (s *Session) SaveTask() Task {
	s.Working.FlushNormals()
	snapshot := s.Working.Clone()
	dir := s.ModelDir

	return func(ctx context.Context, p Prompter) (Update, error) {
		name, err := p.Ask(ctx, "[SAVE] Enter filename: ")
		if err != nil {
			return nil, err
		}
		name = strings.TrimSpace(name)
		if name == "" {
			name = model.AvailableName(dir)
		} else {
			name = resolvePath(dir, name)
		}

		saved, err := snapshot.Save(name)
		if err != nil {
			return nil, err
		}
		return func(s *Session) {
			s.WorkingPath = saved
			s.Unsaved = false
			s.log.Info("model saved", zap.String("path", saved))
		}, nil
	}
}

// LoadTask replaces the working mesh with a file. A file that fails to
// parse still replaces it, with an empty mesh.
func (s *Session) LoadTask() Task {
	unsaved := s.Unsaved
	dir := s.ModelDir

	return func(ctx context.Context, p Prompter) (Update, error) {
		ok, err := askDiscard(ctx, p, unsaved)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrCancelled
		}

		name, err := p.Ask(ctx, "[LOAD] Enter filename: ")
		if err != nil {
			return nil, err
		}
		path := resolvePath(dir, strings.TrimSpace(name))

		m := model.New()
		loadErr := m.Load(path)
		return func(s *Session) {
			s.Working = m
			s.WorkingPath = ""
			if loadErr == nil {
				s.WorkingPath = path
			}
			s.Selected = model.NoSelection
			s.Unsaved = false
		}, loadErr
	}
}

// LoadSlotTask loads a file into slot i, e.g. one named on the command
// line. The slot is shown once loaded.
func (s *Session) LoadSlotTask(i int, path string) Task {
	path = resolvePath(s.ModelDir, path)

	return func(ctx context.Context, p Prompter) (Update, error) {
		m := model.New()
		if err := m.Load(path); err != nil {
			return nil, err
		}
		return func(s *Session) {
			s.SetSlot(i, m, path)
			s.Slots.Get(i).Visible = true
		}, nil
	}
}

// LoadSlots loads files into slots 1, 2, ... in parallel and shows them.
// A file that fails to load leaves its slot empty; the failures are
// returned together once every file has been tried.
func (s *Session) LoadSlots(ctx context.Context, paths []string) error {
	if len(paths) > SlotCount {
		return fmt.Errorf("%d model files given, at most %d fit", len(paths), SlotCount)
	}

	updates := make([]Update, len(paths))
	errs := make([]error, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, path := range paths {
		task := s.LoadSlotTask(i, path)
		g.Go(func() error {
			u, err := task(gctx, nil)
			if err != nil {
				errs[i] = fmt.Errorf("slot %d: %w", i+1, err)
				return nil
			}
			updates[i] = u
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, u := range updates {
		if u != nil {
			u(s)
		}
	}
	return errors.Join(errs...)
}

// GridTask asks for a new cell size and count.
func (s *Session) GridTask() Task {
	return func(ctx context.Context, p Prompter) (Update, error) {
		unit, err := askFloat(ctx, p, "Enter the new unit size: ")
		if err != nil {
			return nil, err
		}
		if unit <= 0 {
			return nil, fmt.Errorf("unit size must be positive, got %g", unit)
		}

		count, err := askInt(ctx, p, "Enter the number of units along each axis: ")
		if err != nil {
			return nil, err
		}
		if count < 0 {
			return nil, fmt.Errorf("unit count must not be negative, got %d", count)
		}

		return func(s *Session) { s.DefineGrid(unit, count) }, nil
	}
}

// MergeTask appends a slot's geometry to the working mesh. Slots are
// numbered from 1 in the prompt.
func (s *Session) MergeTask() Task {
	unsaved := s.Unsaved

	return func(ctx context.Context, p Prompter) (Update, error) {
		ok, err := askDiscard(ctx, p, unsaved)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrCancelled
		}

		n, err := askInt(ctx, p, fmt.Sprintf("Merge with which model (1-%d)? ", SlotCount))
		if err != nil {
			return nil, err
		}
		if n < 1 || n > SlotCount {
			return nil, fmt.Errorf("no model %d", n)
		}

		return func(s *Session) {
			s.Working.Merge(s.Slots.Get(n - 1).Mesh)
			s.Selected = model.NoSelection
			s.Unsaved = true
		}, nil
	}
}

// ResolutionTask splits the open face into a fan of triangles.
func (s *Session) ResolutionTask() Task {
	size := len(s.Working.OpenFace())

	return func(ctx context.Context, p Prompter) (Update, error) {
		n, err := askInt(ctx, p, fmt.Sprintf("Set current face (size: %d) to how many polygons? ", size))
		if err != nil {
			return nil, err
		}
		if n < 2 {
			return nil, fmt.Errorf("polygon count must be at least 2, got %d", n)
		}
		return func(s *Session) {
			s.Working.FaceResolution(n)
			s.Selected = model.NoSelection
			s.Unsaved = true
		}, nil
	}
}

// TranslateTask moves the working mesh along one axis.
func (s *Session) TranslateTask() Task {
	return func(ctx context.Context, p Prompter) (Update, error) {
		axis, err := askAxis(ctx, p, "Translate along which axis (x/y/z)? ")
		if err != nil {
			return nil, err
		}
		dist, err := askFloat(ctx, p, "By how much? ")
		if err != nil {
			return nil, err
		}
		return func(s *Session) {
			if err := s.Working.Translate(axis, dist); err != nil {
				s.log.Error("translate failed", zap.Error(err))
				return
			}
			s.Unsaved = true
		}, nil
	}
}

// MirrorTask reflects the working mesh across the plane through the origin
// normal to one axis.
func (s *Session) MirrorTask() Task {
	return func(ctx context.Context, p Prompter) (Update, error) {
		axis, err := askAxis(ctx, p, "Mirror across which axis (x/y/z)? ")
		if err != nil {
			return nil, err
		}
		return func(s *Session) {
			if err := s.Working.Mirror(axis); err != nil {
				s.log.Error("mirror failed", zap.Error(err))
				return
			}
			s.Unsaved = true
		}, nil
	}
}

// SwapTask asks before swapping away unsaved work.
func (s *Session) SwapTask(i int) Task {
	unsaved := s.Unsaved

	return func(ctx context.Context, p Prompter) (Update, error) {
		ok, err := askDiscard(ctx, p, unsaved)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrCancelled
		}
		return func(s *Session) { s.SwapSlot(i) }, nil
	}
}

// QuitTask confirms quitting, and then discarding unsaved work.
func (s *Session) QuitTask() Task {
	unsaved := s.Unsaved

	return func(ctx context.Context, p Prompter) (Update, error) {
		ok, err := confirm(ctx, p, promptQuit)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrCancelled
		}
		ok, err = askDiscard(ctx, p, unsaved)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrCancelled
		}
		return func(s *Session) {
			s.Unsaved = false
			s.quit = true
		}, nil
	}
}
