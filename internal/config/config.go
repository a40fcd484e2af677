// Package config handles editor configuration loading and management.
package config

// Config holds all editor settings.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Editor   EditorConfig   `yaml:"editor"`
	Grid     GridConfig     `yaml:"grid"`
	Palette  PaletteConfig  `yaml:"palette"`
	Lighting LightingConfig `yaml:"lighting"`
	Files    FilesConfig    `yaml:"files"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// WindowConfig holds display and projection settings.
type WindowConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Fullscreen bool    `yaml:"fullscreen"`
	VSync      bool    `yaml:"vsync"`
	FPSLimit   int     `yaml:"fps_limit"`
	FOV        float32 `yaml:"fov"` // Vertical field of view in degrees
	Near       float32 `yaml:"near"`
	Far        float32 `yaml:"far"`
	Samples    int     `yaml:"samples"` // Multisample count, 0 disables
}

// EditorConfig holds display toggles and editing defaults.
type EditorConfig struct {
	ShowAxis      bool       `yaml:"show_axis"`
	ShowGrid      bool       `yaml:"show_grid"`
	Highlight     bool       `yaml:"highlight"`
	Wireframe     bool       `yaml:"wireframe"`
	SelectedColor [3]float32 `yaml:"selected_color,flow"`
	// CursorStep is how far one key press moves the cursor. Zero means a
	// tenth of the grid unit.
	CursorStep  float32 `yaml:"cursor_step"`
	RotateSpeed float32 `yaml:"rotate_speed"` // Degrees per frame
}

// GridConfig holds the reference lattice size.
type GridConfig struct {
	Unit  float32 `yaml:"unit"`
	Count int     `yaml:"count"`
}

// PaletteConfig holds the starting palette levels.
type PaletteConfig struct {
	Alpha float32 `yaml:"alpha"`
	Gamma float32 `yaml:"gamma"`
	Step  float32 `yaml:"step"`
}

// LightingConfig holds the point light defaults.
type LightingConfig struct {
	Enabled bool    `yaml:"enabled"`
	Ambient float32 `yaml:"ambient"`
}

// FilesConfig holds model file locations.
type FilesConfig struct {
	// ModelDir is where relative model names are resolved and where
	// unnamed saves are written.
	ModelDir string `yaml:"model_dir"`
	// Slots are model files loaded into slots 1-9 at startup.
	Slots []string `yaml:"slots"`
	// Watch reloads slot models when their files change on disk.
	Watch bool `yaml:"watch"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:      800,
			Height:     600,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   60,
			FOV:        45,
			Near:       1,
			Far:        100,
			Samples:    4,
		},
		Editor: EditorConfig{
			ShowAxis:      true,
			ShowGrid:      true,
			Highlight:     true,
			Wireframe:     false,
			SelectedColor: [3]float32{1, 0, 0},
			CursorStep:    0,
			RotateSpeed:   1.5,
		},
		Grid: GridConfig{
			Unit:  1,
			Count: 5,
		},
		Palette: PaletteConfig{
			Alpha: 1,
			Gamma: 0,
			Step:  0.2,
		},
		Lighting: LightingConfig{
			Enabled: false,
			Ambient: 0.2,
		},
		Files: FilesConfig{
			ModelDir: ".",
			Watch:    true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
