package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string
	TestPath    string

	// Module path from go.mod, used to derive package import paths
	PackagePrefix string

	// Toolchain binary used to run tests
	GoBinary string

	// Output settings
	OutputJSONFile string
	OutputJSONDir  string
	ReportDir      string

	// Execution settings
	Workers int

	// Directories to skip when scanning
	SkipDirs []string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	Workers    int
	TestPath   string
	NameFilter string
	RunFilter  string
	TestCases  bool
	FailFast   bool
	History    bool
	OpenView   bool
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		ProjectPath:    DefaultProjectPath,
		TestPath:       DefaultTestPath,
		GoBinary:       DefaultGoBinary,
		OutputJSONFile: DefaultOutputJSONFile,
		OutputJSONDir:  DefaultOutputJSONDir,
		ReportDir:      DefaultReportDir,
		Workers:        DefaultWorkers,
		Flags:          Flags{Workers: DefaultWorkers},
	}
	cfg.SkipDirs = make([]string, len(DefaultSkipDirs))
	copy(cfg.SkipDirs, DefaultSkipDirs)
	return cfg
}

// fileConfig mirrors the optional gtp.yaml project file.
type fileConfig struct {
	TestPath  string   `yaml:"test_path"`
	ReportDir string   `yaml:"report_dir"`
	Workers   int      `yaml:"workers"`
	GoBinary  string   `yaml:"go_binary"`
	SkipDirs  []string `yaml:"skip_dirs"`
}

// LoadFile applies settings from gtp.yaml in the project directory, if it
// exists. Flags still take precedence; callers apply them afterwards.
func (c *Config) LoadFile() error {
	path := filepath.Join(c.ProjectPath, ConfigFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read %s: %w", ConfigFileName, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse %s: %w", ConfigFileName, err)
	}

	if fc.TestPath != "" {
		c.TestPath = fc.TestPath
	}
	if fc.ReportDir != "" {
		c.ReportDir = fc.ReportDir
	}
	if fc.Workers > 0 {
		c.Workers = fc.Workers
	}
	if fc.GoBinary != "" {
		c.GoBinary = fc.GoBinary
	}
	if len(fc.SkipDirs) > 0 {
		c.SkipDirs = fc.SkipDirs
	}
	return nil
}

// LoadModulePath reads the module path from the project's go.mod so
// package directories can be mapped to import paths. Missing go.mod is
// not an error; import paths then fall back to relative directories.
func (c *Config) LoadModulePath() error {
	path := filepath.Join(c.ProjectPath, "go.mod")
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("open go.mod: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "module ") {
			c.PackagePrefix = strings.TrimSpace(strings.TrimPrefix(line, "module "))
			return nil
		}
	}
	return scanner.Err()
}

// GetTestPath returns the test path, using flag if provided
func (c *Config) GetTestPath() string {
	if c.Flags.TestPath != "" {
		if filepath.IsAbs(c.Flags.TestPath) {
			return c.Flags.TestPath
		}
		return filepath.Join(c.ProjectPath, c.Flags.TestPath)
	}
	return filepath.Join(c.ProjectPath, c.TestPath)
}

// GetOutputPath returns the full path to the output JSON file. Resolves to
// an absolute path so run and failures always read/write the same file
// regardless of cwd.
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.ProjectPath, c.OutputJSONDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// GetReportDir returns the directory XML reports are written to.
func (c *Config) GetReportDir() string {
	p := filepath.Join(c.ProjectPath, c.ReportDir)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
