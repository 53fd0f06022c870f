package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/errbell/errbell/internal/cli"
	"github.com/errbell/errbell/internal/config"
)

const quickStart = `errbell - ring a bell when your command fails

Quick start:
  errbell run -- make test              Wrap a command, ring on failure
  make 2>&1 | errbell watch             Watch a piped stream
  errbell tmux -t work:0.0              Watch a tmux pane
  errbell ring                          Sound check

For help:
  errbell --help                        All commands and flags
`

func main() {
	// Show quick start if no args provided
	if len(os.Args) == 1 {
		fmt.Print(quickStart)
		return
	}

	// Load configuration from files/environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		cfg = config.Default()
	}

	var c cli.CLI

	// Apply config defaults before parsing; CLI flags override them
	vars := kong.Vars{
		"config_format": cfg.Format,
		"config_window": cfg.Window().String(),
	}

	ctx := kong.Parse(&c,
		kong.Name("errbell"),
		kong.Description("errbell: watch live command output and ring an alert on failure"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}),
		vars,
	)

	globals := cli.NewGlobalsWithConfig(&c, cfg)
	if err := ctx.Run(globals); err != nil {
		// Mirror a wrapped command's exit code
		var ee *cli.ExitError
		if errors.As(err, &ee) {
			os.Exit(ee.Code)
		}
		os.Exit(1)
	}
}
