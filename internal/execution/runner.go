package execution

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"time"

	"gtp/internal/config"
	"gtp/internal/discovery"
	"gtp/internal/domain"
)

// Runner executes the test runner for a single package directory
type Runner struct {
	config *config.Config
}

// NewRunner creates a new Runner
func NewRunner(cfg *config.Config) *Runner {
	return &Runner{config: cfg}
}

// Run executes `go test -v` in one package directory and captures its
// combined output and exit code. The exit code is only ever interpreted
// as zero vs non-zero.
func (r *Runner) Run(dir string) domain.PackageResult {
	args := []string{"test", "-v"}
	if r.config.Flags.RunFilter != "" {
		args = append(args, "-run", r.config.Flags.RunFilter)
	}

	ctx := context.Background()
	cmd := exec.CommandContext(ctx, r.config.GoBinary, args...)
	cmd.Dir = dir
	cmd.Env = os.Environ()

	start := time.Now()
	output, err := cmd.CombinedOutput()

	result := domain.PackageResult{
		Dir:        dir,
		ImportPath: discovery.ImportPath(r.config.ProjectPath, dir, r.config.PackagePrefix),
		Success:    err == nil,
		Output:     string(output),
		Duration:   time.Since(start),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
		} else {
			// The process never ran (missing binary, bad dir, ...).
			result.Error = err
			result.ExitCode = -1
		}
	}

	return result
}
