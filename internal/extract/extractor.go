// Package extract turns raw `go test -v` output into structured per-test
// results, grouped by the source file that declares each test.
package extract

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"gtp/internal/domain"
)

// A test run record looks like:
//
//	=== RUN   TestDiffToHTML
//	--- PASS: TestDiffToHTML (0.00s)
//
// The body between the two markers is matched non-greedily so one record
// can never swallow the next record's start marker.
var testRecordPattern = regexp.MustCompile(`(?s)=== RUN\s+(\w+)\n(.*?)--- (PASS|FAIL):\s+\w+\s+\((\d+(?:\.\d+)?)s\)`)

var outcomeByToken = map[string]domain.Outcome{
	"PASS": domain.OutcomeSuccess,
	"FAIL": domain.OutcomeFailure,
}

// Whole-package failure signatures. When one of these appears anywhere in
// the output the test binary never ran, so there are no per-test records
// to extract and the entire package is reported as a single failure.
const (
	setupFailedError       = "[setup failed]"
	buildFailedError       = "[build failed]"
	cannotLoadPackageError = "can't load package"
)

// ErrNoSourceFile is returned when a parsed test name cannot be located in
// any of the package's candidate source files.
var ErrNoSourceFile = errors.New("no source file declares test")

// Extractor parses captured runner output into class results. It is
// stateless apart from the injected identifier counter and safe to share
// across concurrently processed packages.
type Extractor struct {
	counter *Counter
}

// NewExtractor creates an Extractor drawing identifiers from counter.
func NewExtractor(counter *Counter) *Extractor {
	return &Extractor{counter: counter}
}

// ExtractResults parses the captured output of one package invocation.
// Whole-package failures (setup/build/load errors) short-circuit to a
// single synthetic failure record; otherwise individual test records are
// extracted and grouped by source file.
func (e *Extractor) ExtractResults(ctx domain.PackageContext) ([]domain.ClassResult, error) {
	switch {
	case stdoutContains(ctx, setupFailedError):
		return e.failResult(ctx, setupFailedError), nil
	case stdoutContains(ctx, buildFailedError):
		return e.failResult(ctx, buildFailedError), nil
	case stdoutContains(ctx, cannotLoadPackageError):
		return e.failResult(ctx, cannotLoadPackageError), nil
	}
	return e.testResults(ctx)
}

func stdoutContains(ctx domain.PackageContext, signature string) bool {
	for _, line := range ctx.Stdout {
		if strings.Contains(line, signature) {
			return true
		}
	}
	return false
}

// failResult wraps the entire captured output into one synthetic failure
// record named after the matched signature.
func (e *Extractor) failResult(ctx domain.PackageContext, reason string) []domain.ClassResult {
	message := strings.Join(ctx.Stdout, "\n")

	record := domain.TestRecord{
		ID:      e.counter.Next(),
		Name:    reason,
		Outcome: domain.OutcomeFailure,
		Message: message,
	}
	record.AddFailure(message, message, message)

	class := domain.ClassResult{
		ID:   e.counter.Next(),
		Name: ClassName(ctx.PackagePath, reason),
	}
	class.Add(record)

	return []domain.ClassResult{class}
}

func (e *Extractor) testResults(ctx domain.PackageContext) ([]domain.ClassResult, error) {
	stdout := stripTrailer(ctx.Stdout)

	records, err := e.extractRecords(stdout)
	if err != nil {
		return nil, err
	}

	grouped, order, err := groupBySourceFile(records, ctx.SourceFiles)
	if err != nil {
		return nil, err
	}

	results := make([]domain.ClassResult, 0, len(order))
	for _, file := range order {
		class := domain.ClassResult{
			ID:   e.counter.Next(),
			Name: ClassName(ctx.PackagePath, filepath.Base(file)),
		}
		for _, record := range grouped[file] {
			class.Add(record)
		}
		results = append(results, class)
	}
	return results, nil
}

// stripTrailer removes the package-level verdict and everything after it:
//
//	FAIL
//	coverage: 66.7% of statements
//	exit status 1
//	FAIL github.com/my/project/a 0.006s
//
// Only the last four lines are inspected, so a bare PASS/FAIL buried in a
// long failure message is never mistaken for the verdict.
func stripTrailer(stdout []string) string {
	for i := 1; i <= 4 && i <= len(stdout); i++ {
		line := strings.TrimSpace(stdout[len(stdout)-i])
		if line == "PASS" || line == "FAIL" {
			return strings.Join(stdout[:len(stdout)-i], "\n")
		}
	}
	return strings.Join(stdout, "\n")
}

// extractRecords finds every well-formed run/verdict pair in stdout. Free
// text between a record's end marker and the next record's start marker is
// appended to the earlier record's message.
func (e *Extractor) extractRecords(stdout string) ([]domain.TestRecord, error) {
	matches := testRecordPattern.FindAllStringSubmatchIndex(stdout, -1)

	records := make([]domain.TestRecord, 0, len(matches))
	for _, m := range matches {
		name := stdout[m[2]:m[3]]
		message := stdout[m[4]:m[5]]
		outcome := outcomeByToken[stdout[m[6]:m[7]]]

		seconds, err := strconv.ParseFloat(stdout[m[8]:m[9]], 64)
		if err != nil {
			return nil, fmt.Errorf("parse duration of %s: %w", name, err)
		}

		record := domain.TestRecord{
			ID:             e.counter.Next(),
			Name:           name,
			Outcome:        outcome,
			DurationMillis: toMilliseconds(seconds),
			Message:        message,
		}
		if outcome == domain.OutcomeFailure {
			record.AddFailure(message, message, message)
		}
		records = append(records, record)
	}

	for i := range records {
		end := matches[i][1]
		nextStart := len(stdout)
		if i < len(records)-1 {
			nextStart = matches[i+1][0]
		}
		// Adjacent zero-body records can abut; there is no gap then.
		if end >= nextStart {
			continue
		}
		records[i].Message += strings.TrimSpace(stdout[end:nextStart])
	}

	return records, nil
}

// groupBySourceFile partitions records by the file whose content mentions
// each test name. Candidate files are searched in sorted path order so the
// grouping is deterministic; within a file, records keep discovery order,
// and files are ordered by first appearance.
func groupBySourceFile(records []domain.TestRecord, sourceFiles map[string]string) (map[string][]domain.TestRecord, []string, error) {
	paths := make([]string, 0, len(sourceFiles))
	for path := range sourceFiles {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	grouped := make(map[string][]domain.TestRecord)
	var order []string
	for _, record := range records {
		file, err := findSourceFile(paths, sourceFiles, record.Name)
		if err != nil {
			return nil, nil, err
		}
		if _, seen := grouped[file]; !seen {
			order = append(order, file)
		}
		grouped[file] = append(grouped[file], record)
	}
	return grouped, order, nil
}

func findSourceFile(paths []string, contents map[string]string, testName string) (string, error) {
	for _, path := range paths {
		if strings.Contains(contents[path], testName) {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrNoSourceFile, testName)
}

// ClassName derives a dotted class name from a package path and file name:
// the package path is percent-escaped, dots become _DOT_, the escaped path
// separators become dots, and the file name gets the same dot treatment.
// github.com/my/project + a_test.go -> github_DOT_com.my.project.a_test_DOT_go
func ClassName(packagePath, fileName string) string {
	escaped := url.QueryEscape(packagePath)
	escaped = strings.ReplaceAll(escaped, ".", "_DOT_")
	escaped = strings.ReplaceAll(escaped, "%2F", ".")
	return escaped + "." + strings.ReplaceAll(fileName, ".", "_DOT_")
}

func toMilliseconds(seconds float64) int64 {
	return int64(math.Round(seconds * 1000))
}
