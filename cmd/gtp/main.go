package main

import (
	"fmt"
	"os"

	"gtp/internal/cli"
	"gtp/internal/cli/commands"
	"gtp/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create initial config with defaults
	cfg := config.New()

	// Create root command
	rootCmd := &cobra.Command{
		Use:     "gtp",
		Short:   "Parallel Go test processor",
		Long:    `A parallel processor for Go test suites. Discovers test packages, runs them concurrently, and turns the runner output into structured, per-test reports.`,
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.LoadFile(); err != nil {
				return err
			}
			return cfg.LoadModulePath()
		},
	}

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
