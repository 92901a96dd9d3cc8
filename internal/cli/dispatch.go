// Package cli parses the command line and drives the interactive session.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/log"
	"todo/internal/prompt"
	"todo/internal/service"
)

// Version is the application version. Set at build time.
var Version = "0.1.0"

// ServiceFactory opens the task backend from config.
// Used to inject the backend during dispatch.
type ServiceFactory func(ctx context.Context, cfg *config.Config, logger *log.Logger) (service.Service, error)

// Dispatcher handles command-line parsing and dispatch.
type Dispatcher struct {
	registry *commands.Registry
	factory  ServiceFactory
}

// NewDispatcher creates a new dispatcher with the given registry and service factory.
func NewDispatcher(registry *commands.Registry, factory ServiceFactory) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		factory:  factory,
	}
}

// Run parses arguments, then either prints help/version or runs the
// interactive session reading from in.
// Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	fs := flag.NewFlagSet("todo", flag.ContinueOnError)
	fs.SetOutput(io.Discard) // We handle errors ourselves

	var taskFile string
	var configPath string
	var quiet bool
	var debug bool

	fs.StringVar(&taskFile, "file", "", "")
	fs.StringVar(&configPath, "config", "", "")
	fs.BoolVar(&quiet, "quiet", false, "")
	fs.BoolVar(&debug, "debug", false, "")

	if err := fs.Parse(args); err != nil {
		reportFlagError(errOut, err)
		return exitcode.UserError
	}

	positional := fs.Args()
	if len(positional) > 0 {
		switch positional[0] {
		case "help":
			fmt.Fprint(out, helpText)
			return exitcode.Success
		case "version":
			fmt.Fprintf(out, "todo %s\n", Version)
			return exitcode.Success
		default:
			fmt.Fprintf(errOut, "error: unknown command: %s\n", positional[0])
			return exitcode.UserError
		}
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.ConfigError
	}
	if taskFile != "" {
		cfg.TaskFile = taskFile
	}
	cfg.Quiet = quiet
	cfg.Debug = debug

	logger := log.New(errOut, cfg.Level())
	logger.Debugf("task file: %s", cfg.TaskFile)

	svc, err := d.factory(ctx, cfg, logger)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return exitcode.Interrupted
		}
		fmt.Fprintf(errOut, "error: failed to load tasks: %v\n", err)
		return exitcode.IOError
	}

	env := &commands.Env{
		Config:  cfg,
		Service: svc,
		Prompt:  prompt.New(in, out),
		Out:     out,
		Log:     logger,
	}

	if err := NewSession(d.registry, env).Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return exitcode.Interrupted
		}
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.IOError
	}
	return exitcode.Success
}

// reportFlagError prints a flag parse error in the CLI's error format.
func reportFlagError(errOut io.Writer, err error) {
	errStr := err.Error()

	if errors.Is(err, flag.ErrHelp) {
		fmt.Fprintln(errOut, "error: run 'todo help' for usage")
		return
	}

	if strings.HasPrefix(errStr, "flag needs an argument:") {
		flagName := strings.TrimSpace(strings.TrimPrefix(errStr, "flag needs an argument:"))
		fmt.Fprintf(errOut, "error: flag needs an argument: %s\n", flagName)
		return
	}

	if strings.HasPrefix(errStr, "flag provided but not defined:") {
		flagName := strings.TrimPrefix(errStr, "flag provided but not defined: ")
		fmt.Fprintf(errOut, "error: unknown flag: %s\n", flagName)
		return
	}

	fmt.Fprintf(errOut, "error: %s\n", errStr)
}

const helpText = `Usage:
  todo [flags]            Start the interactive task menu
  todo [flags] help       Print usage
  todo [flags] version    Print version

Flags:
  --file <path>     Task file (default todo.json, env TODO_FILE)
  --config <path>   YAML config file (default $XDG_CONFIG_HOME/todo/config.yaml)
  --quiet           Suppress confirmation messages
  --debug           Print debug logs to stderr
`
