// Package main provides the entry point for the sourdough CLI.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/charmbracelet/fang"

	"sourdough-tracker/internal/cli"
	"sourdough-tracker/internal/errors"
)

// version is set via ldflags at build time
var version = "dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := cli.NewRootCommand(cli.DefaultServiceFactory)
	defer root.Close()

	cmd := root.Command()
	cmd.SetArgs(args)

	err := fang.Execute(ctx, cmd, fang.WithVersion(version))
	return errors.ExitCode(err)
}
