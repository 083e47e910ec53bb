package discovery

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestParser_FindTestCases(t *testing.T) {
	parser := NewParser()

	tmpDir, err := os.MkdirTemp("", "gtp-parse-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	testFile := filepath.Join(tmpDir, "user_test.go")
	content := `package user

import "testing"

func TestCreateUser(t *testing.T) {
	// test code
}

func TestUpdateUser(t *testing.T) {}

func BenchmarkLookup(b *testing.B) {}

func FuzzParse(f *testing.F) {}

func ExampleScanner() {}

func helperFunc(t *testing.T) {
	// not a test
}

// func TestCommentedOut(t *testing.T) {}
`
	if err := os.WriteFile(testFile, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	t.Run("finds test functions", func(t *testing.T) {
		testCases, err := parser.FindTestCases(testFile)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		expected := []string{
			"BenchmarkLookup",
			"ExampleScanner",
			"FuzzParse",
			"TestCreateUser",
			"TestUpdateUser",
		}
		names := make([]string, 0, len(testCases))
		for _, tc := range testCases {
			names = append(names, tc.Name)
			if tc.FilePath != testFile {
				t.Errorf("expected file path %s, got %s", testFile, tc.FilePath)
			}
		}
		if !reflect.DeepEqual(names, expected) {
			t.Errorf("expected %v, got %v", expected, names)
		}
	})

	t.Run("returns error for non-existent file", func(t *testing.T) {
		_, err := parser.FindTestCases(filepath.Join(tmpDir, "missing_test.go"))
		if err == nil {
			t.Error("expected error for non-existent file")
		}
	})
}
