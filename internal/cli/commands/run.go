package commands

import (
	"fmt"
	"strings"

	"gtp/internal/config"
	"gtp/internal/discovery"
	"gtp/internal/domain"
	"gtp/internal/execution"
	"gtp/internal/extract"
	"gtp/internal/report"
	"gtp/internal/storage"
	"gtp/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// RunCommand handles the run command
type RunCommand struct {
	config    *config.Config
	scanner   *discovery.Scanner
	filter    *discovery.Filter
	executor  *execution.WorkerPool
	extractor *extract.Extractor
	storage   storage.Storage
	history   *storage.HistoryStorage
	junit     *report.JUnitWriter
	formatter *ui.Formatter
	viewer    *ui.ErrorViewer
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	executor *execution.WorkerPool,
	extractor *extract.Extractor,
	st storage.Storage,
	history *storage.HistoryStorage,
	junit *report.JUnitWriter,
	formatter *ui.Formatter,
	viewer *ui.ErrorViewer,
) *RunCommand {
	return &RunCommand{
		config:    cfg,
		scanner:   scanner,
		filter:    filter,
		executor:  executor,
		extractor: extractor,
		storage:   st,
		history:   history,
		junit:     junit,
		formatter: formatter,
		viewer:    viewer,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	// Discover tests
	testPath := rc.config.GetTestPath()
	tests, err := rc.scanner.Scan(testPath)
	if err != nil {
		return err
	}

	// Filter tests
	tests = rc.filter.FilterByName(tests, rc.config.Flags.NameFilter)

	if len(tests) == 0 {
		color.Yellow("No tests to execute")
		return nil
	}

	// One runner invocation per package directory
	groups := discovery.GroupByPackage(tests)
	dirs := discovery.PackageDirs(groups)

	progressBar := ui.NewProgressBar(len(dirs))
	rc.executor.SetProgress(progressBar)

	results, duration, err := rc.executor.ExecuteWithOptions(dirs, rc.config.Flags.FailFast)
	if err != nil {
		return err
	}

	// Turn each package's captured output into class results
	var classes []domain.ClassResult
	for _, result := range results {
		ctx, err := rc.buildContext(result, groups[result.Dir])
		if err != nil {
			return err
		}
		extracted, err := rc.extractor.ExtractResults(ctx)
		if err != nil {
			return fmt.Errorf("extract results for %s: %w", result.ImportPath, err)
		}
		classes = append(classes, extracted...)
	}

	meta := domain.NewRunMeta(results, classes, duration, rc.config.Workers)
	output := &domain.RunOutput{Meta: meta, Classes: classes}

	if err := rc.storage.Save(output); err != nil {
		return fmt.Errorf("failed to save test results: %w", err)
	}

	reportPath, err := rc.junit.Write(classes, rc.config.GetReportDir())
	if err != nil {
		return err
	}

	if err := rc.formatter.PrintMetaStats(); err != nil {
		return err
	}
	color.White("Report: %s", reportPath)

	if rc.config.Flags.History {
		if err := rc.history.SaveRun(meta); err != nil {
			color.Red("Could not record run history: %v", err)
		}
	}

	failed := false
	for _, result := range results {
		if !result.Success {
			failed = true
			break
		}
	}

	if failed && rc.config.Flags.OpenView {
		if err := rc.viewer.View(output); err != nil {
			return err
		}
	}
	if failed {
		return fmt.Errorf("there are failed tests, see %s for details", reportPath)
	}
	return nil
}

// buildContext assembles the extraction input for one package: the raw
// captured output plus every source file a test name could resolve to.
func (rc *RunCommand) buildContext(result domain.PackageResult, testFiles []string) (domain.PackageContext, error) {
	sources, err := discovery.NonTestSources(result.Dir)
	if err != nil {
		return domain.PackageContext{}, err
	}

	paths := make([]string, 0, len(testFiles)+len(sources))
	paths = append(paths, testFiles...)
	paths = append(paths, sources...)

	files, err := discovery.LoadSourceFiles(paths)
	if err != nil {
		return domain.PackageContext{}, err
	}

	return domain.PackageContext{
		PackagePath: result.ImportPath,
		Stdout:      strings.Split(result.Output, "\n"),
		SourceFiles: files,
	}, nil
}
