// Package window opens the modeler's SDL2 window with an OpenGL 4.1 core
// context and keeps it out of the way while the terminal asks questions.
package window

import (
	"fmt"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/facetcraft/internal/logger"
)

func init() {
	// SDL and GL must stay on the thread that created the context.
	runtime.LockOSThread()
}

// Config describes the window to open.
type Config struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	VSync      bool
	// Samples is the multisample count for smoothing facet edges. Zero
	// disables multisampling. A driver that refuses the count gets a
	// window without it.
	Samples int
}

// Window owns the SDL window and its GL context.
type Window struct {
	sdlWindow *sdl.Window
	glContext sdl.GLContext
	title     string
	log       *zap.Logger
}

type glAttribute struct {
	attr  sdl.GLattr
	value int
}

// contextAttributes request a 4.1 core profile, the newest macOS offers.
func contextAttributes(samples int) []glAttribute {
	attrs := []glAttribute{
		{sdl.GL_CONTEXT_MAJOR_VERSION, 4},
		{sdl.GL_CONTEXT_MINOR_VERSION, 1},
		{sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE},
		{sdl.GL_DOUBLEBUFFER, 1},
		{sdl.GL_DEPTH_SIZE, 24},
	}
	if samples > 0 {
		attrs = append(attrs,
			glAttribute{sdl.GL_MULTISAMPLEBUFFERS, 1},
			glAttribute{sdl.GL_MULTISAMPLESAMPLES, samples},
		)
	} else {
		attrs = append(attrs,
			glAttribute{sdl.GL_MULTISAMPLEBUFFERS, 0},
			glAttribute{sdl.GL_MULTISAMPLESAMPLES, 0},
		)
	}
	return attrs
}

// New initializes SDL and opens the window. The GL context is current on
// return.
func New(cfg Config) (*Window, error) {
	w := &Window{title: cfg.Title, log: logger.Named("window")}

	w.log.Info("initializing SDL2")
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("SDL_Init failed: %w", err)
	}

	err := w.open(cfg, cfg.Samples)
	if err != nil && cfg.Samples > 0 {
		w.log.Warn("multisampling unavailable, retrying without it",
			zap.Int("samples", cfg.Samples),
			zap.Error(err),
		)
		err = w.open(cfg, 0)
	}
	if err != nil {
		sdl.Quit()
		return nil, err
	}

	interval := 0
	if cfg.VSync {
		interval = 1
	}
	if err := sdl.GLSetSwapInterval(interval); err != nil {
		w.log.Warn("cannot set swap interval", zap.Int("interval", interval), zap.Error(err))
	}

	w.log.Info("window created",
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("fullscreen", cfg.Fullscreen),
		zap.Bool("vsync", cfg.VSync),
		zap.Int("samples", cfg.Samples),
	)
	return w, nil
}

// open creates the window and context. On failure nothing is left open.
func (w *Window) open(cfg Config, samples int) error {
	for _, a := range contextAttributes(samples) {
		if err := sdl.GLSetAttribute(a.attr, a.value); err != nil {
			return fmt.Errorf("SDL_GL_SetAttribute(%d): %w", a.attr, err)
		}
	}

	flags := uint32(sdl.WINDOW_OPENGL | sdl.WINDOW_RESIZABLE)
	if cfg.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}

	win, err := sdl.CreateWindow(cfg.Title,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width), int32(cfg.Height), flags)
	if err != nil {
		return fmt.Errorf("SDL_CreateWindow failed: %w", err)
	}

	ctx, err := win.GLCreateContext()
	if err != nil {
		win.Destroy()
		return fmt.Errorf("SDL_GL_CreateContext failed: %w", err)
	}

	w.sdlWindow, w.glContext = win, ctx
	return nil
}

// Close destroys the context and window and shuts SDL down. Calling it
// twice is harmless.
func (w *Window) Close() {
	if w.sdlWindow == nil {
		return
	}
	w.log.Info("closing window")

	sdl.GLDeleteContext(w.glContext)
	w.sdlWindow.Destroy()
	w.sdlWindow, w.glContext = nil, nil
	sdl.Quit()
}

// SwapBuffers presents the frame.
func (w *Window) SwapBuffers() {
	w.sdlWindow.GLSwap()
}

// GetSize returns the window size in the units mouse and resize events
// use.
func (w *Window) GetSize() (int, int) {
	width, height := w.sdlWindow.GetSize()
	return int(width), int(height)
}

// SetTitle changes the title bar text. Repeating the current title is a
// no-op so the host can call it every frame.
func (w *Window) SetTitle(title string) {
	if title == w.title {
		return
	}
	w.title = title
	w.sdlWindow.SetTitle(title)
}

// Minimize iconifies the window while the console has the user's attention.
func (w *Window) Minimize() {
	w.sdlWindow.Minimize()
}

// Restore brings the window back after Minimize.
func (w *Window) Restore() {
	w.sdlWindow.Restore()
	w.sdlWindow.Raise()
}

// StartTextInput enables SDL text events so typed characters arrive with
// their shift state applied.
func (w *Window) StartTextInput() {
	sdl.StartTextInput()
}
