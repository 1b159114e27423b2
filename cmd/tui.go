package cmd

import (
	"fmt"

	"github.com/JackSaady/photo-pricing-compass/internal/config"
	"github.com/JackSaady/photo-pricing-compass/internal/store"
	"github.com/JackSaady/photo-pricing-compass/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive dashboard",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	s, err := store.Open(dbPath(cfg))
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	app, err := tui.NewApp(s, cfg)
	if err != nil {
		return err
	}
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
