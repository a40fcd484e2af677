// Package main is the entry point for the Facetcraft modeler.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/facetcraft/internal/config"
	"github.com/Faultbox/facetcraft/internal/editor"
	"github.com/Faultbox/facetcraft/internal/logger"
	"github.com/Faultbox/facetcraft/internal/modeler"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if config.WriteConfig() {
		path := config.ConfigPath()
		if path == "" {
			path = config.DefaultPath()
		}
		if err := cfg.SaveTo(path); err != nil {
			fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", path)
		return
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Facetcraft ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	// Prompts are answered in this terminal, so the bindings go here too.
	fmt.Print(editor.Help)

	m, err := modeler.New(cfg)
	if err != nil {
		logger.Error("failed to create modeler", zap.Error(err))
		os.Exit(1)
	}
	defer m.Close()

	if err := m.Run(); err != nil {
		logger.Error("modeler error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("modeler closed normally")
}
