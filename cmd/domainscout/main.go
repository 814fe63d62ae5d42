package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"domainscout/internal/api"
	"domainscout/internal/clipboard"
	"domainscout/internal/config"
	"domainscout/internal/logging"
	"domainscout/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	// Diagnostics are best-effort: a broken log dir must not keep the
	// UI from starting.
	logger, err := logging.NewLogger(cfg.LogDir)
	if err != nil {
		logger = zap.NewNop()
	}
	defer func() { _ = logger.Sync() }()

	client := api.NewClient(cfg.APIBase, cfg.HTTPTimeout, logger)
	client.BareAvailable = cfg.BareAvailable

	logger.Info("tui_start", zap.String("api_base", cfg.APIBase))

	m := ui.NewSearch(client, clipboard.System{}, logger)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintln(os.Stderr, "ui:", err)
		os.Exit(1)
	}
}
