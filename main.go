package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"soilindex/config"
	"soilindex/logging"
	"soilindex/ml"
	"soilindex/soil"
	"soilindex/tui"
)

func main() {
	configPath := flag.String("config", "", "path to config file (default: search config.yaml, configs/soilindex.yaml)")
	flag.Parse()

	// 1. Load config
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 2. Logger
	logger, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// 3. Models
	provider, err := ml.NewProvider(cfg.Provider(), logger)
	if err != nil {
		logger.Error("failed to load models", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error loading models: %v\n", err)
		os.Exit(1)
	}
	defer provider.Close()
	logger.Info("models ready",
		zap.String("mode", string(provider.Mode())),
		zap.String("cc", cfg.Models.CCPath),
		zap.String("si", cfg.Models.SIPath))

	// 4. Form
	model := tui.New(soil.NewRunner(provider), tui.NewOSC52Clipboard(), logger)
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		logger.Error("form exited", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("exiting")
}
