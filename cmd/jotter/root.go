package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jotter-app/jotter"
	"github.com/jotter-app/jotter/internal/platform"
	"github.com/jotter-app/jotter/internal/ui"
	"github.com/jotter-app/jotter/pkg/core"
)

var (
	verbose    bool
	configFile string
)

// rootCmd represents the base command. Without a subcommand it launches
// the interactive TUI.
var rootCmd = &cobra.Command{
	Use:   "jotter",
	Short: "A tiny in-memory notes application",
	Long: `Jotter keeps an ordered collection of notes in memory and lets you
create, edit and delete them from a terminal UI or from subcommands.
The collection is seeded from an optional jotter.yaml and resets on exit.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		service, err := newService()
		if err != nil {
			return err
		}

		uiCfg, err := platform.UI(platform.WithConfigFile(configFile))
		if err != nil {
			return err
		}

		model := ui.NewModel(service, ui.NewStyles(uiCfg.Theme))
		p := tea.NewProgram(model, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("TUI failed: %w", err)
		}
		return nil
	},
}

// newService builds the note service the way every subcommand needs it:
// seeded from the config file, logging through the default slog handler.
func newService() (*core.Service, error) {
	return jotter.New(
		jotter.WithConfigFile(configFile),
		jotter.WithLogger(slog.Default()),
	)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", platform.DefaultConfigFile, "Config file with seed notes and preferences")
}
