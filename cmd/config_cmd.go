// Package cmd implements the compass CLI commands.
package cmd

import (
	"fmt"

	"github.com/JackSaady/photo-pricing-compass/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Currency: %s\n", cfg.General.Currency)
	fmt.Printf("    Database: %s\n", dbPath(cfg))
	fmt.Println()

	fmt.Println("  [Advisor]")
	apiKey := config.GetAdvisorKey(cfg)
	if apiKey != "" {
		fmt.Printf("    API key: %s\n", maskAPIKey(apiKey))
	} else {
		fmt.Println("    API key: not configured (set GEMINI_API_KEY)")
	}
	fmt.Printf("    Model:   %s\n", cfg.Advisor.Model)
	if cfg.Advisor.BaseURL != "" {
		fmt.Printf("    Base URL: %s\n", cfg.Advisor.BaseURL)
	}
	fmt.Println()

	fmt.Println("  Run `compass setup` to reconfigure.")
	return nil
}
