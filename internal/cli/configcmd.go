package cli

import (
	"encoding/json"
	"fmt"

	"github.com/errbell/errbell/internal/config"
)

// ConfigCmd groups configuration inspection subcommands.
type ConfigCmd struct {
	Show ConfigShowCmd `cmd:"" default:"1" help:"Show current configuration"`
	Path ConfigPathCmd `cmd:"" help:"Show which config file is in use"`
}

// ConfigShowCmd prints the effective configuration.
type ConfigShowCmd struct{}

// Run executes the config show command
func (c *ConfigShowCmd) Run(globals *Globals) error {
	cfg := globals.Config

	if globals.Format == "ndjson" {
		return json.NewEncoder(globals.Stdout).Encode(map[string]interface{}{
			"type":           "config",
			"format":         cfg.Format,
			"quiet":          cfg.Quiet,
			"verbose":        cfg.Verbose,
			"enabled":        cfg.Enabled,
			"window_ms":      cfg.WindowMS,
			"sound_command":  cfg.SoundCommand,
			"extra_patterns": cfg.ExtraPatterns,
		})
	}

	fmt.Fprintln(globals.Stdout, "Current Configuration:")
	fmt.Fprintf(globals.Stdout, "  format: %s\n", cfg.Format)
	fmt.Fprintf(globals.Stdout, "  enabled: %v\n", cfg.Enabled)
	fmt.Fprintf(globals.Stdout, "  window_ms: %d\n", cfg.WindowMS)
	fmt.Fprintf(globals.Stdout, "  sound_command: %s\n", cfg.SoundCommand)
	for _, p := range cfg.ExtraPatterns {
		fmt.Fprintf(globals.Stdout, "  extra_pattern: %s\n", p)
	}
	return nil
}

// ConfigPathCmd prints the path of the loaded config file.
type ConfigPathCmd struct{}

// Run executes the config path command
func (c *ConfigPathCmd) Run(globals *Globals) error {
	path := config.ConfigFile()

	if globals.Format == "ndjson" {
		return json.NewEncoder(globals.Stdout).Encode(map[string]string{
			"type": "config_path",
			"path": path,
		})
	}

	if path == "" {
		fmt.Fprintln(globals.Stdout, "No configuration file found (using defaults)")
	} else {
		fmt.Fprintf(globals.Stdout, "Config file: %s\n", path)
	}
	return nil
}
