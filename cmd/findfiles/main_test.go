package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/harrison/findfiles/internal/executor"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"config error", errors.New("invalid configuration"), exitError},
		{"commands failed", executor.ErrCommandsFailed, exitCommandsFailed},
		{"wrapped commands failed", fmt.Errorf("%w (1 of 3)", executor.ErrCommandsFailed), exitCommandsFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCode(tt.err); got != tt.want {
				t.Errorf("exitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
