package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Test window defaults
	if cfg.Window.Width != 800 {
		t.Errorf("expected width 800, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 600 {
		t.Errorf("expected height 600, got %d", cfg.Window.Height)
	}
	if cfg.Window.FOV != 45 || cfg.Window.Near != 1 || cfg.Window.Far != 100 {
		t.Errorf("unexpected projection defaults: %+v", cfg.Window)
	}
	if cfg.Window.Samples != 4 {
		t.Errorf("expected 4 samples, got %d", cfg.Window.Samples)
	}

	// Test grid defaults
	if cfg.Grid.Unit != 1 {
		t.Errorf("expected grid unit 1, got %f", cfg.Grid.Unit)
	}
	if cfg.Grid.Count != 5 {
		t.Errorf("expected grid count 5, got %d", cfg.Grid.Count)
	}

	// Test editor defaults
	if cfg.Editor.SelectedColor != [3]float32{1, 0, 0} {
		t.Errorf("expected red selected color, got %v", cfg.Editor.SelectedColor)
	}
	if !cfg.Editor.ShowGrid || !cfg.Editor.ShowAxis || !cfg.Editor.Highlight {
		t.Error("expected grid, axis and highlight on by default")
	}

	// Test palette defaults
	if cfg.Palette.Alpha != 1 || cfg.Palette.Gamma != 0 {
		t.Errorf("expected alpha 1 gamma 0, got %f %f", cfg.Palette.Alpha, cfg.Palette.Gamma)
	}

	// Test lighting defaults
	if cfg.Lighting.Enabled {
		t.Error("expected lighting off by default")
	}

	// Test logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config does not validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
window:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false

editor:
  wireframe: true
  selected_color: [0, 1, 0]
  rotate_speed: 3

grid:
  unit: 0.5
  count: 8

palette:
  alpha: 0.6
  gamma: 0.2

lighting:
  enabled: true
  ambient: 0.4

files:
  model_dir: "models"
  slots: ["a.m3d", "b.m3d"]
  watch: false

logging:
  level: "debug"
  log_file: "modeler.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Width != 1920 || cfg.Window.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if !cfg.Window.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	// Keys missing from the file keep their defaults.
	if cfg.Window.FOV != 45 {
		t.Errorf("expected default fov 45, got %f", cfg.Window.FOV)
	}

	if !cfg.Editor.Wireframe {
		t.Error("expected wireframe to be true")
	}
	if cfg.Editor.SelectedColor != [3]float32{0, 1, 0} {
		t.Errorf("expected green selected color, got %v", cfg.Editor.SelectedColor)
	}

	if cfg.Grid.Unit != 0.5 || cfg.Grid.Count != 8 {
		t.Errorf("expected grid 0.5 x 8, got %f x %d", cfg.Grid.Unit, cfg.Grid.Count)
	}

	if cfg.Palette.Alpha != 0.6 {
		t.Errorf("expected palette alpha 0.6, got %f", cfg.Palette.Alpha)
	}

	if !cfg.Lighting.Enabled || cfg.Lighting.Ambient != 0.4 {
		t.Errorf("unexpected lighting %+v", cfg.Lighting)
	}

	if cfg.Files.ModelDir != "models" {
		t.Errorf("expected model dir 'models', got %s", cfg.Files.ModelDir)
	}
	if len(cfg.Files.Slots) != 2 || cfg.Files.Slots[1] != "b.m3d" {
		t.Errorf("unexpected slots %v", cfg.Files.Slots)
	}
	if cfg.Files.Watch {
		t.Error("expected watch to be false")
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
grid:
  unit: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero unit", func(c *Config) { c.Grid.Unit = 0 }},
		{"negative count", func(c *Config) { c.Grid.Count = -1 }},
		{"zero width", func(c *Config) { c.Window.Width = 0 }},
		{"far before near", func(c *Config) { c.Window.Far = 0.5 }},
		{"negative samples", func(c *Config) { c.Window.Samples = -1 }},
		{"too many samples", func(c *Config) { c.Window.Samples = 32 }},
		{"too many slots", func(c *Config) { c.Files.Slots = make([]string, MaxSlots+1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("window:\n  width: 1024\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(cfg *Config) {
				if !cfg.Window.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "windowed flag",
			setup: func() {
				*flagWindowed = true
			},
			verify: func(cfg *Config) {
				if cfg.Window.Fullscreen {
					t.Error("expected fullscreen to be false with windowed flag")
				}
			},
			teardown: func() { *flagWindowed = false },
		},
		{
			name: "grid flags",
			setup: func() {
				*flagGridUnit = 2
				*flagGridCount = 3
			},
			verify: func(cfg *Config) {
				if cfg.Grid.Unit != 2 || cfg.Grid.Count != 3 {
					t.Errorf("expected grid 2 x 3, got %f x %d", cfg.Grid.Unit, cfg.Grid.Count)
				}
			},
			teardown: func() {
				*flagGridUnit = 0
				*flagGridCount = 0
			},
		},
		{
			name:  "models flag",
			setup: func() { *flagModels = "/tmp/models" },
			verify: func(cfg *Config) {
				if cfg.Files.ModelDir != "/tmp/models" {
					t.Errorf("expected model dir /tmp/models, got %s", cfg.Files.ModelDir)
				}
			},
			teardown: func() { *flagModels = "" },
		},
		{
			name:  "watch flag",
			setup: func() { *flagWatch = "off" },
			verify: func(cfg *Config) {
				if cfg.Files.Watch {
					t.Error("expected watch to be disabled")
				}
			},
			teardown: func() { *flagWatch = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
window:
  width: 1600
  height: 900
grid:
  count: 7
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width should be from flag (1920), not file (1600)
	if cfg.Window.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Window.Width)
	}
	// Height should be from file (900) since no flag override
	if cfg.Window.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Window.Height)
	}
	if cfg.Grid.Count != 7 {
		t.Errorf("expected grid count 7 from file, got %d", cfg.Grid.Count)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("grid:\n  unit: -1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); err == nil {
		t.Error("expected Load to reject a negative grid unit")
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := Default()
	cfg.Grid.Count = 11

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload: %v", err)
	}
	if loaded.Grid.Count != 11 {
		t.Errorf("expected grid count 11, got %d", loaded.Grid.Count)
	}
}

func TestSaveToOmitsSlots(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := Default()
	cfg.Files.Slots = []string{"a", "b"}

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}
	if len(cfg.Files.Slots) != 2 {
		t.Error("SaveTo modified the receiver")
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload: %v", err)
	}
	if len(loaded.Files.Slots) != 0 {
		t.Errorf("expected no slots in saved config, got %v", loaded.Files.Slots)
	}
}
