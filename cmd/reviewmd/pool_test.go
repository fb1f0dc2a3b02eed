package main

import (
	"errors"
	"runtime"
	"testing"

	"github.com/alnah/go-reviewmd/internal/config"
)

func TestResolvePoolSize(t *testing.T) {
	t.Parallel()

	auto := runtime.GOMAXPROCS(0)
	if auto > config.MaxWorkers {
		auto = config.MaxWorkers
	}

	tests := []struct {
		name    string
		workers int
		jobs    int
		want    int
	}{
		{"explicit", 4, 10, 4},
		{"capped by jobs", 8, 3, 3},
		{"capped by max", config.MaxWorkers + 10, 100, config.MaxWorkers},
		{"auto", 0, 1000, auto},
		{"auto single job", 0, 1, 1},
		{"no jobs still one worker", 2, 0, 1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := resolvePoolSize(tt.workers, tt.jobs); got != tt.want {
				t.Errorf("resolvePoolSize(%d, %d) = %d, want %d", tt.workers, tt.jobs, got, tt.want)
			}
		})
	}
}

func TestValidateWorkers(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 1, config.MaxWorkers} {
		if err := validateWorkers(n); err != nil {
			t.Errorf("validateWorkers(%d) = %v, want nil", n, err)
		}
	}
	for _, n := range []int{-1, config.MaxWorkers + 1} {
		if err := validateWorkers(n); !errors.Is(err, ErrInvalidWorkerCount) {
			t.Errorf("validateWorkers(%d) = %v, want ErrInvalidWorkerCount", n, err)
		}
	}
}
