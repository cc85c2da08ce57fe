package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/decklist-exporter/internal/backend"
	"github.com/mcoot/decklist-exporter/internal/logger"
)

var (
	cfg    *Config
	client *backend.Client
	svcLog *slog.Logger
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "deckexport",
		Short: "CLI tool for the decklist exporter",
		Long: `deckexport submits decklists, manages registered players and stores the
event PIN, using the same backend API as the web front-end.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfg.Output != "text" && cfg.Output != "json" {
				return fmt.Errorf("invalid output format %q: must be text or json", cfg.Output)
			}

			// Service logs only surface with --verbose
			svcLog = slog.New(slog.NewJSONHandler(io.Discard, nil))
			if cfg.Verbose {
				svcLog = logger.New(cmd.ErrOrStderr(), "debug")
			}

			client = backend.New(cfg.ServerURL, backend.WithTimeout(cfg.Timeout))
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Backend URL (env: DECKEXPORT_SERVER)")
	rootCmd.PersistentFlags().StringVar(&cfg.PinFile, "pin-file", cfg.PinFile, "PIN token file path (env: DECKEXPORT_PIN_FILE)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")
	rootCmd.PersistentFlags().BoolVar(&cfg.RequirePhone, "require-phone", cfg.RequirePhone, "Require a phone number on submit (env: DECKEXPORT_REQUIRE_PHONE)")
	rootCmd.PersistentFlags().DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "Backend request timeout")

	// Add subcommands
	rootCmd.AddCommand(newSubmitCmd())
	rootCmd.AddCommand(newPlayersCmd())
	rootCmd.AddCommand(newPinCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
