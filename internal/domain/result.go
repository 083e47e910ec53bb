package domain

import "time"

// PackageResult represents the outcome of one `go test` invocation for
// one package directory.
type PackageResult struct {
	Dir        string        // directory the runner was invoked in
	ImportPath string        // derived import path of the package
	Success    bool          // whether the runner exited zero
	ExitCode   int           // raw exit code
	Output     string        // combined stdout/stderr
	Error      error         // error if the process could not be started
	Duration   time.Duration // wall time of the invocation
}

// RunMeta contains metadata about a whole test run.
type RunMeta struct {
	TotalPackages   int     `json:"total_packages"`
	FailedPackages  int     `json:"failed_packages"`
	PassedPackages  int     `json:"passed_packages"`
	TotalTestCases  int     `json:"total_test_cases"`
	FailedTestCases int     `json:"failed_test_cases"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Workers         int     `json:"workers"`
	Timestamp       string  `json:"timestamp"`
}

// NewRunMeta summarizes one finished run.
func NewRunMeta(results []PackageResult, classes []ClassResult, duration time.Duration, workers int) RunMeta {
	meta := RunMeta{
		TotalPackages:   len(results),
		Duration:        duration.String(),
		DurationSeconds: duration.Seconds(),
		Workers:         workers,
		Timestamp:       time.Now().Format(time.RFC3339),
	}
	for _, result := range results {
		if result.Success {
			meta.PassedPackages++
		} else {
			meta.FailedPackages++
		}
	}
	for _, class := range classes {
		meta.TotalTestCases += len(class.Records)
		meta.FailedTestCases += class.FailureCount()
	}
	return meta
}

// RunOutput is the complete persisted structure for a test run.
type RunOutput struct {
	Meta    RunMeta       `json:"meta"`
	Classes []ClassResult `json:"classes"`
}

// FailedRecordRef indexes a failed record inside a RunOutput.
type FailedRecordRef struct {
	Class  int
	Record int
}

// FailedRecords returns references to all failed records across all
// classes, in stored order.
func (o *RunOutput) FailedRecords() []FailedRecordRef {
	var failed []FailedRecordRef
	for ci := range o.Classes {
		for ri := range o.Classes[ci].Records {
			if o.Classes[ci].Records[ri].Outcome == OutcomeFailure {
				failed = append(failed, FailedRecordRef{Class: ci, Record: ri})
			}
		}
	}
	return failed
}
