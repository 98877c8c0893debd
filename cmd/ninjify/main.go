// Package main is the entry point for the ninjify generator.
package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.trai.ch/ninjify/cmd/ninjify/commands"
	"go.trai.ch/ninjify/internal/adapters/graphfile"
	"go.trai.ch/ninjify/internal/adapters/logger"
	"go.trai.ch/ninjify/internal/app"
	"go.trai.ch/ninjify/internal/core/ports"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	log := newLogger(stderr)
	loader := graphfile.NewLoader(log)
	a := app.New(loader, log)

	cli := commands.New(a)
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)

	if err := cli.Execute(ctx); err != nil {
		log.Error(err)
		return 1
	}
	return 0
}

func newLogger(stderr io.Writer) ports.Logger {
	log := logger.New().(*logger.Logger)
	log.SetOutput(stderr)
	return log
}
