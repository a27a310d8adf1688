// Command moneyctl performs exact money arithmetic from the command line.
//
// Usage:
//
//	moneyctl [flags] <command> [arguments]
//
// Amounts are given in minor units of currency ("EUR 1050" is EUR 10.50),
// or in decimal notation when the --decimal flag is set. For example:
//
//	moneyctl split EUR 10000 3
//	moneyctl --decimal --rounding half-even mul EUR 19.99 0.075
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/govalues/money/v2/internal/config"
	"github.com/govalues/money/v2/internal/logger"
	"github.com/spf13/pflag"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the exit code.
func run(args []string, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("moneyctl", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.SetInterspersed(false) // negative amounts after the command are not flags
	configPath := fs.String("config", "", "YAML configuration file")
	config.RegisterFlags(fs)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: moneyctl [flags] <command> [arguments]\n\nCommands:\n")
		for _, c := range commands {
			fmt.Fprintf(stderr, "  %-9s %-22s %s\n", c.name, c.args, c.help)
		}
		fmt.Fprintf(stderr, "\nFlags:\n%s", fs.FlagUsages())
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "moneyctl: %v\n", err)
		fs.Usage()
		return 2
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			fmt.Fprintf(stderr, "moneyctl: %v\n", err)
			return 1
		}
	}
	if err := cfg.ApplyFlags(fs); err != nil {
		fmt.Fprintf(stderr, "moneyctl: %v\n", err)
		return 2
	}

	log := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: stderr,
	})

	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}
	name, rest := fs.Arg(0), fs.Args()[1:]
	ctx := logger.WithCommand(context.Background(), name)

	a, err := newApp(cfg, stdout, log)
	if err != nil {
		log.ErrorContext(ctx, "failed to initialize", "error", err)
		fmt.Fprintf(stderr, "moneyctl: %v\n", err)
		return 1
	}

	log.DebugContext(ctx, "running command", "args", rest, "rounding", a.mode.String(), "decimal", cfg.Decimal)
	if err := a.exec(ctx, name, rest); err != nil {
		log.DebugContext(ctx, "command failed", "error", err)
		fmt.Fprintf(stderr, "moneyctl: %v\n", err)
		if errors.Is(err, errUsage) {
			return 2
		}
		return 1
	}
	return 0
}
