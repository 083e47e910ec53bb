package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfig_GetTestPath(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected string
	}{
		{
			name: "default path",
			config: &Config{
				ProjectPath: ".",
				TestPath:    ".",
				Flags:       Flags{},
			},
			expected: ".",
		},
		{
			name: "with test path flag",
			config: &Config{
				ProjectPath: "/project",
				TestPath:    ".",
				Flags:       Flags{TestPath: "internal"},
			},
			expected: filepath.Join("/project", "internal"),
		},
		{
			name: "with absolute test path flag",
			config: &Config{
				ProjectPath: "/project",
				TestPath:    ".",
				Flags:       Flags{TestPath: "/elsewhere/pkg"},
			},
			expected: "/elsewhere/pkg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.config.GetTestPath()
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestConfig_LoadFile(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "gtp-config-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	yaml := `test_path: internal
report_dir: build/reports
workers: 8
skip_dirs:
  - vendor
  - third_party
`
	if err := os.WriteFile(filepath.Join(tmpDir, ConfigFileName), []byte(yaml), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg := New()
	cfg.ProjectPath = tmpDir
	if err := cfg.LoadFile(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.TestPath != "internal" {
		t.Errorf("expected test path internal, got %q", cfg.TestPath)
	}
	if cfg.ReportDir != "build/reports" {
		t.Errorf("expected report dir build/reports, got %q", cfg.ReportDir)
	}
	if cfg.Workers != 8 {
		t.Errorf("expected 8 workers, got %d", cfg.Workers)
	}
	if len(cfg.SkipDirs) != 2 || cfg.SkipDirs[1] != "third_party" {
		t.Errorf("unexpected skip dirs: %v", cfg.SkipDirs)
	}

	t.Run("missing file is not an error", func(t *testing.T) {
		cfg := New()
		cfg.ProjectPath = filepath.Join(tmpDir, "nowhere")
		if err := cfg.LoadFile(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestConfig_LoadModulePath(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "gtp-config-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	gomod := "module github.com/my/project\n\ngo 1.22\n"
	if err := os.WriteFile(filepath.Join(tmpDir, "go.mod"), []byte(gomod), 0644); err != nil {
		t.Fatalf("failed to write go.mod: %v", err)
	}

	cfg := New()
	cfg.ProjectPath = tmpDir
	if err := cfg.LoadModulePath(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.PackagePrefix != "github.com/my/project" {
		t.Errorf("expected module path github.com/my/project, got %q", cfg.PackagePrefix)
	}

	t.Run("missing go.mod leaves prefix empty", func(t *testing.T) {
		cfg := New()
		cfg.ProjectPath = filepath.Join(tmpDir, "nowhere")
		if err := cfg.LoadModulePath(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		if cfg.PackagePrefix != "" {
			t.Errorf("expected empty prefix, got %q", cfg.PackagePrefix)
		}
	})
}
