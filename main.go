package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/thenoetrevino/taskdeck/cmd"
	"github.com/thenoetrevino/taskdeck/internal/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := cmd.Execute(ctx)
	cancel()
	os.Exit(cli.ExitCode(err))
}
