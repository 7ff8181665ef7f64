package executor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Spawner starts a command line as a child process and blocks until it
// exits. A non-nil error means no process ran; the exit code of a process
// that did run is returned without an error.
type Spawner interface {
	Spawn(ctx context.Context, commandLine string) (exitCode int, err error)
}

// OSSpawner runs command lines as operating system processes. The line is
// split into words by SplitCommandLine and the first word names the
// program. No shell is involved, so pipes and redirections are passed
// through as arguments.
type OSSpawner struct {
	Dir    string
	Stdin  io.Reader
	Stdout io.Writer // os.Stdout when nil
	Stderr io.Writer // os.Stderr when nil
}

// NewOSSpawner creates a spawner whose children inherit stdout and stderr.
func NewOSSpawner() *OSSpawner {
	return &OSSpawner{}
}

// Spawn implements Spawner.
func (s *OSSpawner) Spawn(ctx context.Context, commandLine string) (int, error) {
	args, err := SplitCommandLine(commandLine)
	if err != nil {
		return -1, fmt.Errorf("failed to parse command line: %w", err)
	}
	if len(args) == 0 {
		return -1, errors.New("empty command line")
	}

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Dir = s.Dir
	cmd.Stdin = s.Stdin
	cmd.Stdout = s.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = s.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Start(); err != nil {
		return -1, err
	}

	if err := cmd.Wait(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return -1, ctxErr
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// Command ran and returned a non-zero exit code
			return exitErr.ExitCode(), nil
		}
		return -1, err
	}

	return 0, nil
}
