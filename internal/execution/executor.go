package execution

import (
	"time"

	"gtp/internal/domain"
)

// Executor executes package tests and returns results
type Executor interface {
	Execute(dirs []string) ([]domain.PackageResult, time.Duration, error)
}
