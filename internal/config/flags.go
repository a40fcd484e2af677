package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagModels     = flag.String("models", "", "Directory for model files")
	flagGridUnit   = flag.Float64("grid-unit", 0, "Grid cell width")
	flagGridCount  = flag.Int("grid-count", 0, "Grid cells per side")
	flagWatch      = flag.String("watch", "", "Reload slot models on change (true/false)")
	flagWrite      = flag.Bool("write-config", false, "Write the effective config to the config file and exit")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// WriteConfig reports whether --write-config was given.
func WriteConfig() bool {
	return *flagWrite
}

// SlotArgs returns positional arguments, treated as model files to load
// into slots.
func SlotArgs() []string {
	return flag.Args()
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWindowed {
		cfg.Window.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Window.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
	if *flagModels != "" {
		cfg.Files.ModelDir = *flagModels
	}
	if *flagGridUnit > 0 {
		cfg.Grid.Unit = float32(*flagGridUnit)
	}
	if *flagGridCount > 0 {
		cfg.Grid.Count = *flagGridCount
	}
	switch *flagWatch {
	case "true", "on", "1":
		cfg.Files.Watch = true
	case "false", "off", "0":
		cfg.Files.Watch = false
	}
	if args := SlotArgs(); len(args) > 0 {
		cfg.Files.Slots = args
	}
}
