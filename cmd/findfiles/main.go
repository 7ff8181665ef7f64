package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/harrison/findfiles/internal/cmd"
	"github.com/harrison/findfiles/internal/executor"
)

// Exit codes
const (
	exitError          = 1 // configuration or I/O error
	exitCommandsFailed = 2 // search ran but one or more commands failed
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := cmd.NewRootCommand()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	if errors.Is(err, executor.ErrCommandsFailed) {
		return exitCommandsFailed
	}
	return exitError
}
