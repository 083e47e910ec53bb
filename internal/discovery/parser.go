package discovery

import (
	"fmt"
	"os"
	"regexp"
	"sort"

	"gtp/internal/domain"
)

// Parser parses test files to extract test cases
type Parser struct{}

// NewParser creates a new Parser
func NewParser() *Parser {
	return &Parser{}
}

// Top-level test function declarations:
//
//	func TestCreateUser(t *testing.T)
//	func BenchmarkLookup(b *testing.B)
//	func FuzzParse(f *testing.F)
//	func ExampleScanner()
var testFuncPattern = regexp.MustCompile(`(?m)^func\s+((?:Test|Benchmark|Fuzz|Example)\w*)\s*\(`)

// FindTestCases finds all test functions declared in a test file
func (p *Parser) FindTestCases(filePath string) ([]domain.TestCase, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading file %s: %w", filePath, err)
	}

	namesMap := make(map[string]bool) // Use map to avoid duplicates

	matches := testFuncPattern.FindAllStringSubmatch(string(content), -1)
	for _, match := range matches {
		if len(match) > 1 {
			namesMap[match[1]] = true
		}
	}

	var names []string
	for name := range namesMap {
		names = append(names, name)
	}

	// Sort for consistent output
	sort.Strings(names)

	testCases := make([]domain.TestCase, 0, len(names))
	for _, name := range names {
		testCases = append(testCases, domain.TestCase{Name: name, FilePath: filePath})
	}

	return testCases, nil
}
