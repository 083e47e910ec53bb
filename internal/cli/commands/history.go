package commands

import (
	"github.com/spf13/cobra"

	"gtp/internal/config"
	"gtp/internal/storage"
	"gtp/internal/ui"
)

// HistoryCommand handles the history command
type HistoryCommand struct {
	config    *config.Config
	history   *storage.HistoryStorage
	formatter *ui.Formatter
}

// NewHistoryCommand creates a new HistoryCommand
func NewHistoryCommand(cfg *config.Config, history *storage.HistoryStorage, formatter *ui.Formatter) *HistoryCommand {
	return &HistoryCommand{
		config:    cfg,
		history:   history,
		formatter: formatter,
	}
}

// Execute runs the command
func (hc *HistoryCommand) Execute(cmd *cobra.Command, args []string) error {
	limit := 10
	if flag := cmd.Flags().Lookup("limit"); flag != nil {
		if n, err := cmd.Flags().GetInt("limit"); err == nil {
			limit = n
		}
	}

	runs, err := hc.history.RecentRuns(limit)
	if err != nil {
		return err
	}

	hc.formatter.PrintRunHistory(runs)
	return nil
}
