// Package cli implements the errbell command surface: wrap a command, watch
// a stream or tmux pane, and manage the detector's persisted state.
package cli

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/errbell/errbell/internal/config"
	"github.com/errbell/errbell/internal/detect"
	"github.com/errbell/errbell/internal/notify"
)

// CLI is the root kong command tree
type CLI struct {
	Format  string `help:"Output format: text or ndjson" enum:"text,ndjson" default:"${config_format}"`
	Quiet   bool   `short:"q" help:"Suppress non-essential output"`
	Verbose bool   `short:"v" help:"Enable verbose debug logging"`

	Run      RunCmd      `cmd:"" help:"Run a command and ring when its output or exit code signals failure"`
	Watch    WatchCmd    `cmd:"" help:"Watch stdin for failure output (pipe mode)"`
	Tmux     TmuxCmd     `cmd:"" help:"Watch a tmux pane for failure output"`
	Patterns PatternsCmd `cmd:"" help:"List the failure signature table"`
	Toggle   ToggleCmd   `cmd:"" help:"Toggle detection on or off"`
	Enable   EnableCmd   `cmd:"" help:"Enable detection"`
	Disable  DisableCmd  `cmd:"" help:"Disable detection"`
	Ring     RingCmd     `cmd:"" help:"Fire the configured alert once (sound check)"`
	Config   ConfigCmd   `cmd:"" help:"Show configuration"`
}

// Globals carries per-invocation settings and IO into command Run methods
type Globals struct {
	Format  string
	Quiet   bool
	Verbose bool
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	Config  *config.Config

	logger *debugLogger
}

// NewGlobalsWithConfig merges parsed flags with loaded configuration.
// An empty format falls back to text on a terminal, ndjson otherwise.
func NewGlobalsWithConfig(c *CLI, cfg *config.Config) *Globals {
	format := c.Format
	if format == "" {
		format = cfg.Format
	}
	if format == "" {
		if isatty.IsTerminal(os.Stdout.Fd()) {
			format = "text"
		} else {
			format = "ndjson"
		}
	}

	g := &Globals{
		Format:  format,
		Quiet:   c.Quiet || cfg.Quiet,
		Verbose: c.Verbose || cfg.Verbose,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Config:  cfg,
	}
	g.logger = newDebugLogger(g)
	return g
}

// Debug logs a verbose debug message
func (g *Globals) Debug(format string, args ...interface{}) {
	g.logger.Debug(format, args...)
}

// DetectorFlags are the flags shared by every stream-watching command.
type DetectorFlags struct {
	Sound  string `help:"Shell command that plays the alert (default from config)"`
	Bell   bool   `help:"Ring the terminal bell instead of running a sound command"`
	Window string `help:"Minimum time between alerts" default:"${config_window}"`
	State  string `help:"Path to the persisted enabled-state file"`
}

// buildDetector assembles a detector from flags, config, and the persisted
// enabled state.
func (f *DetectorFlags) buildDetector(globals *Globals) (*detect.Detector, error) {
	window, err := time.ParseDuration(f.Window)
	if err != nil {
		return nil, outputError(globals, "INVALID_WINDOW", "invalid window duration: "+err.Error())
	}

	statePath, err := statePathOrDefault(f.State)
	if err != nil {
		return nil, outputError(globals, "STATE_PATH", err.Error())
	}

	det, err := detect.New(detect.Options{
		Window:        window,
		Enabled:       resolveEnabled(globals.Config, statePath),
		ExtraPatterns: globals.Config.ExtraPatterns,
		Notifier:      f.notifier(globals),
		Logger:        globals.logger.Sugared(),
	})
	if err != nil {
		return nil, outputError(globals, "INVALID_PATTERN", err.Error())
	}

	globals.Debug("detector ready: window=%s enabled=%v", window, det.Enabled())
	return det, nil
}

// notifier picks the alert channel: explicit bell, explicit sound command,
// configured sound command, then terminal bell as the fallback.
func (f *DetectorFlags) notifier(globals *Globals) notify.Notifier {
	if f.Bell {
		return notify.NewBell(globals.Stderr)
	}
	command := f.Sound
	if command == "" {
		command = globals.Config.SoundCommand
	}
	if command == "" {
		return notify.NewBell(globals.Stderr)
	}
	return notify.NewCommand(command)
}

// ExitError carries a wrapped command's exit code out through kong so the
// process can mirror it.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return "command exited with nonzero status"
}
