package extract

import "regexp"

var (
	passLinePattern = regexp.MustCompile(`(?m)^--- PASS:`)
	failLinePattern = regexp.MustCompile(`(?m)^--- FAIL:`)
)

// CountOutcomes gives a cheap pass/fail tally over raw runner output for
// live progress display. Structured results come from ExtractResults.
func CountOutcomes(output string) (passed, failed int) {
	passed = len(passLinePattern.FindAllStringIndex(output, -1))
	failed = len(failLinePattern.FindAllStringIndex(output, -1))
	return passed, failed
}
