// Package initcmd provides the init command for wikimark.
package initcmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/open-wiki-collective/wikimark/internal/config"
)

// NewCmdInit creates the init command.
func NewCmdInit() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize wikimark configuration",
		Long: `Initialize wikimark with your rendering preferences.

This command will guide you through the rendering options and save
the configuration to ~/.config/wikimark/config.yml.`,
		Example: `  # Interactive setup
  wikimark init`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runInit()
		},
	}

	return cmd
}

func runInit() error {
	configPath := config.DefaultConfigPath()

	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil {
		var overwrite bool
		err := huh.NewConfirm().
			Title("Configuration already exists").
			Description(fmt.Sprintf("Overwrite %s?", configPath)).
			Value(&overwrite).
			Run()
		if err != nil {
			return err
		}
		if !overwrite {
			fmt.Println("Initialization cancelled.")
			return nil
		}
	}

	cfg := config.Default()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("GitHub Flavored Markdown").
				Description("Enable tables, strikethrough, autolinks, and task lists").
				Value(&cfg.GFM),

			huh.NewConfirm().
				Title("Hard wraps").
				Description("Render single newlines as <br>").
				Value(&cfg.HardWraps),

			huh.NewSelect[string]().
				Title("Log level").
				Options(
					huh.NewOption("error", "error"),
					huh.NewOption("warn", "warn"),
					huh.NewOption("info", "info"),
					huh.NewOption("debug", "debug"),
				).
				Value(&cfg.LogLevel),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := cfg.Save(configPath); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	fmt.Printf("Configuration saved to %s\n", configPath)
	return nil
}
