package commands

import (
	"gtp/internal/cli"
	"gtp/internal/config"
	"gtp/internal/discovery"
	"gtp/internal/execution"
	"gtp/internal/extract"
	"gtp/internal/report"
	"gtp/internal/storage"
	"gtp/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Run      *RunCommand
	List     *ListCommand
	Failures *FailuresCommand
	Report   *ReportCommand
	History  *HistoryCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	// One counter per invocation keeps record and class IDs unique
	// across every package processed in this run.
	counter := extract.NewCounter()
	extractor := extract.NewExtractor(counter)

	scanner := discovery.NewScanner(cfg.SkipDirs)
	filter := discovery.NewFilter()
	testCaseParser := discovery.NewParser()
	runner := execution.NewRunner(cfg)
	scheduler := execution.NewRoundRobinScheduler()
	executor := execution.NewWorkerPool(cfg, runner, scheduler)
	jsonStorage := storage.NewJSONStorage(cfg)
	history := storage.NewHistoryStorage(cfg)
	formatter := ui.NewFormatter(cfg, testCaseParser)
	junitWriter := report.NewJUnitWriter()
	errorViewer := ui.NewErrorViewer(cfg, jsonStorage)

	return &Commands{
		Run:      NewRunCommand(cfg, scanner, filter, executor, extractor, jsonStorage, history, junitWriter, formatter, errorViewer),
		List:     NewListCommand(cfg, scanner, filter, formatter),
		Failures: NewFailuresCommand(cfg, jsonStorage, errorViewer),
		Report:   NewReportCommand(cfg, jsonStorage, junitWriter),
		History:  NewHistoryCommand(cfg, history, formatter),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// Run command
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run Go tests in parallel",
		Long:  "Discover test packages and execute `go test -v` for each using parallel workers",
		RunE:  c.Run.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			// Update config with flags after parsing
			cfg.Flags = flags.ToConfigFlags()
			if flags.Workers > 0 {
				cfg.Workers = flags.Workers
			}
			return nil
		},
	}
	runCmd.Flags().IntVarP(&flags.Workers, "workers", "w", config.DefaultWorkers, "Number of parallel workers")
	runCmd.Flags().StringVarP(&flags.TestPath, "test-path", "t", "", "Path to the folder where test detection should start")
	runCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter test files by name pattern (supports wildcards, e.g., '*extract*' or '*parser_test.go')")
	runCmd.Flags().StringVarP(&flags.RunFilter, "run", "r", "", "Regexp passed to the runner to select test functions")
	runCmd.Flags().BoolVar(&flags.FailFast, "fail-fast", false, "Stop on first failing package")
	runCmd.Flags().BoolVar(&flags.History, "history", false, "Record the run summary in the history database")
	runCmd.Flags().BoolVar(&flags.OpenView, "open-failures", false, "Open the failures viewer when the run finishes with failures")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List discovered tests",
		Long:  "Scan and list all test files without executing them",
		RunE:  c.List.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter test files by name pattern (supports wildcards)")
	listCmd.Flags().StringVarP(&flags.TestPath, "test-path", "t", "", "Path to the folder where test detection should start")
	listCmd.Flags().BoolVarP(&flags.TestCases, "test-cases", "c", false, "List test functions instead of test files")
	rootCmd.AddCommand(listCmd)

	// Failures command
	failuresCmd := &cobra.Command{
		Use:   "failures",
		Short: "View test failures interactively",
		Long:  "Display test failures from the last test run in an interactive viewer",
		RunE:  c.Failures.Execute,
	}
	rootCmd.AddCommand(failuresCmd)

	// Report command
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Render the last run as a JUnit XML report",
		Long:  "Re-render the stored results of the last test run into a JUnit XML report",
		RunE:  c.Report.Execute,
	}
	rootCmd.AddCommand(reportCmd)

	// History command
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent test runs",
		Long:  "List summaries of recent test runs recorded in the history database",
		RunE:  c.History.Execute,
	}
	historyCmd.Flags().IntVarP(&flags.Limit, "limit", "n", 10, "Maximum number of runs to show")
	rootCmd.AddCommand(historyCmd)
}
