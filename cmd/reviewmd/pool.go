package main

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/alnah/go-reviewmd/internal/config"
)

// ErrInvalidWorkerCount is returned for --workers outside 0..config.MaxWorkers.
var ErrInvalidWorkerCount = errors.New("invalid worker count")

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > config.MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, config.MaxWorkers)
	}
	return nil
}

// resolvePoolSize determines how many documents are rewritten at once.
// Priority: explicit count > GOMAXPROCS (adjusted by automaxprocs for
// containers). Never more workers than jobs, never less than one.
func resolvePoolSize(workers, jobs int) int {
	n := workers
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	if n > config.MaxWorkers {
		n = config.MaxWorkers
	}
	if n > jobs {
		n = jobs
	}
	if n < 1 {
		return 1
	}
	return n
}
