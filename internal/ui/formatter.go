package ui

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/fatih/color"

	"gtp/internal/config"
	"gtp/internal/discovery"
	"gtp/internal/domain"
)

// Formatter formats and displays output
type Formatter struct {
	config *config.Config
	parser *discovery.Parser
}

// NewFormatter creates a new Formatter
func NewFormatter(cfg *config.Config, parser *discovery.Parser) *Formatter {
	return &Formatter{
		config: cfg,
		parser: parser,
	}
}

// PrintMetaStats reads and displays meta statistics from the JSON results file
func (f *Formatter) PrintMetaStats() error {
	outputPath := f.config.GetOutputPath()

	data, err := os.ReadFile(outputPath)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}

	var output domain.RunOutput
	if err := json.Unmarshal(data, &output); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}

	meta := output.Meta

	fmt.Print("\n")
	color.Cyan("╔═══════════════════════════════════════════════════════════════╗")
	color.Cyan("║                    Test Execution Statistics                  ║")
	color.Cyan("╚═══════════════════════════════════════════════════════════════╝\n")

	fmt.Println("┌─────────────────────────────────┬─────────────────────────────┐")

	fmt.Printf("│ %-31s │ ", "Total Packages")
	color.White("%-27d │\n", meta.TotalPackages)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Passed Packages")
	color.Green("%-27d │\n", meta.PassedPackages)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Failed Packages")
	color.Red("%-27d │\n", meta.FailedPackages)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Total Test Cases")
	color.White("%-27d │\n", meta.TotalTestCases)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Failed Test Cases")
	color.Red("%-27d │\n", meta.FailedTestCases)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Duration")
	durationStr := fmt.Sprintf("%.2fs", meta.DurationSeconds)
	color.White("%-27s │\n", durationStr)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Workers")
	color.White("%-27d │\n", meta.Workers)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Timestamp")
	color.White("%-27s │\n", meta.Timestamp)

	fmt.Println("└─────────────────────────────────┴─────────────────────────────┘")

	fmt.Println()
	if meta.FailedTestCases == 0 && meta.FailedPackages == 0 {
		color.Green("✓ All tests passed!")
	} else {
		color.Red("✗ %d package(s) failed with %d test case failure(s)", meta.FailedPackages, meta.FailedTestCases)
		fmt.Println()
		f.printFailedClassTree(output.Classes)
	}

	return nil
}

// printFailedClassTree prints failing classes grouped by their dotted
// namespace segments, with the failed test names underneath.
func (f *Formatter) printFailedClassTree(classes []domain.ClassResult) {
	type failedClass struct {
		name    string
		records []domain.TestRecord
	}

	var failing []failedClass
	for _, class := range classes {
		var failed []domain.TestRecord
		for _, record := range class.Records {
			if record.Outcome == domain.OutcomeFailure {
				failed = append(failed, record)
			}
		}
		if len(failed) > 0 {
			failing = append(failing, failedClass{name: class.Name, records: failed})
		}
	}
	if len(failing) == 0 {
		return
	}

	sort.Slice(failing, func(i, j int) bool { return failing[i].name < failing[j].name })

	for _, class := range failing {
		color.Yellow("%s", class.name)
		for i, record := range class.records {
			connector := "  |_"
			if i == len(class.records)-1 {
				connector = "   |_"
			}
			color.Red("%s %s (%dms)", connector, record.Name, record.DurationMillis)
		}
		fmt.Println()
	}
}

// PrintTestList lists discovered test files, or their test cases when
// testCases is set.
func (f *Formatter) PrintTestList(tests []string, testCases bool) error {
	if !testCases {
		color.Cyan("Found %d test file(s):\n", len(tests))
		for _, test := range tests {
			fmt.Printf("  %s\n", test)
		}
		return nil
	}

	total := 0
	for _, test := range tests {
		cases, err := f.parser.FindTestCases(test)
		if err != nil {
			return err
		}
		color.Yellow("%s", test)
		for _, tc := range cases {
			fmt.Printf("  %s\n", tc.Name)
		}
		total += len(cases)
	}
	color.Cyan("\n%d test case(s) in %d file(s)", total, len(tests))
	return nil
}

// PrintRunHistory renders recent run summaries as a compact table.
func (f *Formatter) PrintRunHistory(runs []domain.RunMeta) {
	if len(runs) == 0 {
		color.Yellow("No recorded runs")
		return
	}

	color.Cyan("%-25s %10s %10s %10s %10s %10s", "Timestamp", "Packages", "Failed", "Cases", "Failures", "Duration")
	for _, run := range runs {
		line := fmt.Sprintf("%-25s %10d %10d %10d %10d %9.2fs",
			run.Timestamp,
			run.TotalPackages,
			run.FailedPackages,
			run.TotalTestCases,
			run.FailedTestCases,
			run.DurationSeconds,
		)
		if run.FailedTestCases > 0 || run.FailedPackages > 0 {
			color.Red("%s", line)
		} else {
			fmt.Println(line)
		}
	}
}
