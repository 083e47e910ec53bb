package discovery

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestGroupByPackage(t *testing.T) {
	files := []string{
		"/p/a/one_test.go",
		"/p/a/two_test.go",
		"/p/b/three_test.go",
	}

	groups := GroupByPackage(files)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if len(groups["/p/a"]) != 2 || len(groups["/p/b"]) != 1 {
		t.Errorf("unexpected grouping: %v", groups)
	}

	dirs := PackageDirs(groups)
	if !reflect.DeepEqual(dirs, []string{"/p/a", "/p/b"}) {
		t.Errorf("expected sorted dirs, got %v", dirs)
	}
}

func TestNonTestSources(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "gtp-pkg-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	files := []string{"a.go", "a_test.go", "_gen.go", ".hidden.go", "doc.txt"}
	for _, f := range files {
		if err := os.WriteFile(filepath.Join(tmpDir, f), []byte("package a"), 0644); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}
	}
	if err := os.Mkdir(filepath.Join(tmpDir, "sub.go"), 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}

	sources, err := NonTestSources(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sources) != 1 || filepath.Base(sources[0]) != "a.go" {
		t.Errorf("expected only a.go, got %v", sources)
	}
}

func TestLoadSourceFiles(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "gtp-pkg-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	path := filepath.Join(tmpDir, "a.go")
	if err := os.WriteFile(path, []byte("package a\nfunc TestX() {}"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	contents, err := LoadSourceFiles([]string{path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if contents[path] != "package a\nfunc TestX() {}" {
		t.Errorf("unexpected content: %q", contents[path])
	}

	t.Run("missing file is an error", func(t *testing.T) {
		if _, err := LoadSourceFiles([]string{filepath.Join(tmpDir, "missing.go")}); err == nil {
			t.Error("expected error for missing file")
		}
	})
}

func TestImportPath(t *testing.T) {
	tests := []struct {
		name       string
		root       string
		dir        string
		modulePath string
		expected   string
	}{
		{
			name:       "nested package with module path",
			root:       "/p",
			dir:        "/p/internal/extract",
			modulePath: "github.com/my/project",
			expected:   "github.com/my/project/internal/extract",
		},
		{
			name:       "module root package",
			root:       "/p",
			dir:        "/p",
			modulePath: "github.com/my/project",
			expected:   "github.com/my/project",
		},
		{
			name:       "no module path falls back to relative dir",
			root:       "/p",
			dir:        "/p/internal/extract",
			modulePath: "",
			expected:   "internal/extract",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ImportPath(tt.root, tt.dir, tt.modulePath)
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}
