package execution

import (
	"context"
	"sync"
	"time"

	"gtp/internal/config"
	"gtp/internal/domain"
	"gtp/internal/extract"
	"gtp/internal/ui"
)

// WorkerPool manages a pool of workers for parallel package execution
type WorkerPool struct {
	config    *config.Config
	runner    *Runner
	scheduler Scheduler
	progress  *ui.ProgressBar
}

// NewWorkerPool creates a new WorkerPool
func NewWorkerPool(cfg *config.Config, runner *Runner, scheduler Scheduler) *WorkerPool {
	return &WorkerPool{
		config:    cfg,
		runner:    runner,
		scheduler: scheduler,
	}
}

// SetProgress sets the progress bar for the worker pool
func (wp *WorkerPool) SetProgress(progress *ui.ProgressBar) {
	wp.progress = progress
}

// Execute runs all packages in parallel (no fail-fast).
func (wp *WorkerPool) Execute(dirs []string) ([]domain.PackageResult, time.Duration, error) {
	return wp.ExecuteWithOptions(dirs, false)
}

// ExecuteWithOptions executes packages with optional fail-fast (stop on
// first failing package).
func (wp *WorkerPool) ExecuteWithOptions(dirs []string, failFast bool) ([]domain.PackageResult, time.Duration, error) {
	if len(dirs) == 0 {
		return nil, 0, nil
	}
	if !failFast {
		return wp.executeAll(dirs)
	}
	return wp.executeFailFast(dirs)
}

func (wp *WorkerPool) workerCount() int {
	count := wp.config.Workers
	if count <= 0 {
		count = 1
	}
	return count
}

// executeAll runs every package, distributing them round-robin across the
// workers.
func (wp *WorkerPool) executeAll(dirs []string) ([]domain.PackageResult, time.Duration, error) {
	workerCount := wp.workerCount()
	distribution := wp.scheduler.Schedule(dirs, workerCount)
	results := make(chan domain.PackageResult, len(dirs))

	var mu sync.Mutex
	var completed, passedCases, failedCases int
	startTime := time.Now()

	var wg sync.WaitGroup
	for _, assigned := range distribution {
		wg.Add(1)
		go func(assigned []string) {
			defer wg.Done()
			for _, dir := range assigned {
				result := wp.runner.Run(dir)
				results <- result

				mu.Lock()
				completed++
				p, f := extract.CountOutcomes(result.Output)
				if p == 0 && f == 0 && !result.Success {
					// No per-test markers at all; count the package itself.
					f = 1
				}
				passedCases += p
				failedCases += f
				if wp.progress != nil {
					wp.progress.Update(completed, passedCases, failedCases)
				}
				mu.Unlock()
			}
		}(assigned)
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	var allResults []domain.PackageResult
	for result := range results {
		allResults = append(allResults, result)
	}
	if wp.progress != nil {
		wp.progress.Finish()
	}
	return allResults, time.Since(startTime), nil
}

// executeFailFast runs packages and stops handing out work after the
// first failure.
func (wp *WorkerPool) executeFailFast(dirs []string) ([]domain.PackageResult, time.Duration, error) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	queue := make(chan string, 1)
	results := make(chan domain.PackageResult, len(dirs))

	go func() {
		defer close(queue)
		for _, dir := range dirs {
			select {
			case <-ctx.Done():
				return
			case queue <- dir:
			}
		}
	}()

	var mu sync.Mutex
	var completed, passedCases, failedCases int
	var seenFailure bool
	startTime := time.Now()

	var wg sync.WaitGroup
	for i := 0; i < wp.workerCount(); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for dir := range queue {
				result := wp.runner.Run(dir)

				mu.Lock()
				done := seenFailure
				mu.Unlock()
				if done {
					continue
				}
				results <- result

				mu.Lock()
				completed++
				p, f := extract.CountOutcomes(result.Output)
				if p == 0 && f == 0 && !result.Success {
					f = 1
				}
				passedCases += p
				failedCases += f
				if wp.progress != nil {
					wp.progress.Update(completed, passedCases, failedCases)
				}
				if !result.Success {
					seenFailure = true
					cancel()
				}
				mu.Unlock()
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	var allResults []domain.PackageResult
	for result := range results {
		allResults = append(allResults, result)
	}
	if wp.progress != nil {
		wp.progress.Finish()
	}
	return allResults, time.Since(startTime), nil
}
