package discovery

import (
	"os"
	"path/filepath"
	"testing"
)

func TestScanner_Scan(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "gtp-scan-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	files := []string{
		"a/a_test.go",
		"a/a.go",
		"b/b_test.go",
		"vendor/dep/dep_test.go",
		".hidden/h_test.go",
		"c/helper.go",
	}
	for _, f := range files {
		path := filepath.Join(tmpDir, f)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("failed to create dir: %v", err)
		}
		if err := os.WriteFile(path, []byte("package x"), 0644); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}
	}

	scanner := NewScanner([]string{"vendor"})

	t.Run("finds test files, skips vendor and hidden dirs", func(t *testing.T) {
		found, err := scanner.Scan(tmpDir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(found) != 2 {
			t.Fatalf("expected 2 test files, got %d: %v", len(found), found)
		}
		for _, f := range found {
			base := filepath.Base(f)
			if base != "a_test.go" && base != "b_test.go" {
				t.Errorf("unexpected file found: %s", f)
			}
		}
	})

	t.Run("returns error for non-existent root", func(t *testing.T) {
		_, err := scanner.Scan(filepath.Join(tmpDir, "missing"))
		if err == nil {
			t.Error("expected error for non-existent root")
		}
	})

	t.Run("returns error when root is a file", func(t *testing.T) {
		_, err := scanner.Scan(filepath.Join(tmpDir, "a", "a.go"))
		if err == nil {
			t.Error("expected error when root is a file")
		}
	})
}
