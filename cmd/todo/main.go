// Package main is the entry point for the todo CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"todo/internal/backend/jsonfile"
	"todo/internal/cli"
	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/log"
	"todo/internal/service"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The session blocks on stdin, so an interrupt exits directly.
	// Every save is an atomic rename, so the task file is never half written.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
		fmt.Fprintln(os.Stdout)
		os.Exit(exitcode.Interrupted)
	}()

	factory := func(ctx context.Context, cfg *config.Config, logger *log.Logger) (service.Service, error) {
		return jsonfile.New(ctx, cfg, logger)
	}

	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)

	code := dispatcher.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	os.Exit(code)
}
