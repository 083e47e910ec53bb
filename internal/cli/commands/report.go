package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"gtp/internal/config"
	"gtp/internal/report"
	"gtp/internal/storage"
)

// ReportCommand handles the report command
type ReportCommand struct {
	config  *config.Config
	storage storage.Storage
	junit   *report.JUnitWriter
}

// NewReportCommand creates a new ReportCommand
func NewReportCommand(cfg *config.Config, st storage.Storage, junit *report.JUnitWriter) *ReportCommand {
	return &ReportCommand{
		config:  cfg,
		storage: st,
		junit:   junit,
	}
}

// Execute runs the command
func (rc *ReportCommand) Execute(cmd *cobra.Command, args []string) error {
	results, err := rc.storage.Load()
	if err != nil {
		return err
	}

	path, err := rc.junit.Write(results.Classes, rc.config.GetReportDir())
	if err != nil {
		return err
	}

	color.Green("Report written to %s", path)
	return nil
}
