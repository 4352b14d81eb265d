package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tmercier/leadline/internal/api"
	"github.com/tmercier/leadline/internal/app"
	"github.com/tmercier/leadline/internal/config"
	"github.com/tmercier/leadline/internal/state"
)

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if !cfg.HasAPIConfig() {
		return fmt.Errorf("no backend configured: set api.url and api.apikey in config.toml")
	}

	stateMgr, err := state.Open()
	if err != nil {
		return fmt.Errorf("opening state: %w", err)
	}
	defer stateMgr.Close()

	client := api.NewClient(cfg.API.URL, cfg.API.APIKey)
	m := app.New(cfg, client, stateMgr)

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
