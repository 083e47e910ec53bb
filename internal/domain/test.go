package domain

// TestCase represents a single test function within a test file.
type TestCase struct {
	Name     string // Test function name
	FilePath string // Path to the test file containing this case
}
