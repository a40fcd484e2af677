// Package modeler runs the editor in an SDL window: it owns the window,
// renderer and input, and turns input into editor commands each frame.
package modeler

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/facetcraft/internal/config"
	"github.com/Faultbox/facetcraft/internal/editor"
	"github.com/Faultbox/facetcraft/internal/engine/input"
	"github.com/Faultbox/facetcraft/internal/engine/renderer"
	"github.com/Faultbox/facetcraft/internal/engine/window"
	"github.com/Faultbox/facetcraft/internal/logger"
)

// Title is the window title.
const Title = "Facetcraft"

// Modeler is the running editor.
type Modeler struct {
	cfg      *config.Config
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input

	session    *editor.Session
	controller *editor.Controller
	watcher    *editor.SlotWatcher

	ctx    context.Context
	cancel context.CancelFunc

	// prompting mirrors whether a dialog owns the terminal.
	prompting bool
	log       *zap.Logger
}

// New creates the window and editor state and loads the slot files named
// in cfg.
func New(cfg *config.Config) (*Modeler, error) {
	log := logger.Named("modeler")
	log.Info("initializing modeler",
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.Bool("fullscreen", cfg.Window.Fullscreen),
	)

	m := &Modeler{cfg: cfg, log: log}
	m.ctx, m.cancel = context.WithCancel(context.Background())

	// Create window (this also creates OpenGL context)
	var err error
	m.window, err = window.New(window.Config{
		Title:      Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
		Samples:    cfg.Window.Samples,
	})
	if err != nil {
		m.cancel()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	width, height := m.window.GetSize()
	m.renderer, err = renderer.New(renderer.Config{
		Width:  width,
		Height: height,
		VSync:  cfg.Window.VSync,
	})
	if err != nil {
		m.window.Close()
		m.cancel()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	m.input = input.New()
	m.window.StartTextInput()

	m.session = editor.NewSession(cfg)
	tasks := editor.NewTaskRunner(m.ctx, editor.NewConsolePrompter(os.Stdin, os.Stdout), m.session.Post)
	m.controller = editor.NewController(m.session, tasks)

	if cfg.Files.Watch {
		m.watcher, err = editor.NewSlotWatcher(m.session.Post)
		if err != nil {
			log.Warn("file watching disabled", zap.Error(err))
		} else {
			m.session.SetWatcher(m.watcher)
			go m.watcher.Run(m.ctx)
		}
	}

	if err := m.session.LoadSlots(m.ctx, cfg.Files.Slots); err != nil {
		log.Warn("some model files could not be loaded", zap.Error(err))
	}

	log.Info("modeler initialized")
	return m, nil
}

// Run processes input and draws until a quit is confirmed.
func (m *Modeler) Run() error {
	var frameBudget time.Duration
	if !m.cfg.Window.VSync && m.cfg.Window.FPSLimit > 0 {
		frameBudget = time.Second / time.Duration(m.cfg.Window.FPSLimit)
	}

	frameCount := 0
	fpsTimer := time.Now()

	m.log.Info("starting main loop")

	for !m.session.Quit() {
		start := time.Now()

		if m.input.Update() {
			// Closing the window asks like q does.
			m.execute(editor.Command{Op: editor.OpQuit})
		}
		for _, e := range m.input.Events() {
			m.handle(e)
		}

		m.session.Apply()
		m.session.Tick()
		m.syncPrompt()
		m.window.SetTitle(Title + " - " + m.session.Caption())

		m.render()
		m.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			m.log.Debug("fps", zap.Int("count", frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}

		if frameBudget > 0 {
			if rest := frameBudget - time.Since(start); rest > 0 {
				time.Sleep(rest)
			}
		}
	}

	m.log.Info("quit confirmed")
	return nil
}

func (m *Modeler) handle(e input.Event) {
	switch e.Type {
	case input.EventWindowResize:
		m.renderer.Resize(e.Width, e.Height)

	case input.EventText:
		if cmd, ok := editor.CharCommand(e.Char); ok {
			m.execute(cmd)
		}

	case input.EventKeyDown:
		if cmd, ok := keyCommand(e.Key, e.Mod); ok {
			m.execute(cmd)
		}

	case input.EventMouseDown:
		if e.Button == input.ButtonLeft {
			w, h := m.renderer.Size()
			m.session.Click(e.MouseX, e.MouseY, w, h)
		}

	case input.EventMouseMove:
		if e.Held&sdl.ButtonRMask() != 0 {
			m.session.Camera.HandleDrag(float32(e.RelX), float32(e.RelY))
		}

	case input.EventMouseWheel:
		m.session.Camera.HandleZoom(e.Scroll)
	}
}

func (m *Modeler) execute(cmd editor.Command) {
	err := m.controller.Execute(cmd)
	if err != nil && !errors.Is(err, editor.ErrTaskInFlight) {
		m.log.Error("command failed", zap.Error(err))
	}
}

// syncPrompt minimizes the window while a dialog waits for the terminal
// and brings it back afterwards.
func (m *Modeler) syncPrompt() {
	busy := m.controller.Tasks.Busy()
	if busy == m.prompting {
		return
	}
	m.prompting = busy
	if busy {
		m.window.Minimize()
	} else {
		m.window.Restore()
	}
}

func (m *Modeler) render() {
	w, h := m.renderer.Size()
	m.renderer.Begin()
	m.renderer.DrawFrame(m.session.Frame(w, h))
	m.renderer.End()
}

// Close releases the window and stops background work. A dialog blocked on
// the terminal is abandoned.
func (m *Modeler) Close() {
	m.log.Info("closing modeler")

	m.cancel()
	if m.watcher != nil {
		if err := m.watcher.Close(); err != nil {
			m.log.Warn("closing file watcher", zap.Error(err))
		}
	}
	if m.renderer != nil {
		m.renderer.Close()
	}
	if m.window != nil {
		m.window.Close()
	}
}
