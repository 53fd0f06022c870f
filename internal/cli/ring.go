package cli

import (
	"context"
	"encoding/json"
	"fmt"
)

// RingCmd fires the configured alert once, bypassing classification.
// Useful as a sound check after changing sound_command.
type RingCmd struct {
	Sound string `help:"Shell command that plays the alert (default from config)"`
	Bell  bool   `help:"Ring the terminal bell instead of running a sound command"`
}

// Run executes the ring command
func (c *RingCmd) Run(globals *Globals) error {
	flags := &DetectorFlags{Sound: c.Sound, Bell: c.Bell}
	if err := flags.notifier(globals).Notify(context.Background()); err != nil {
		return outputError(globals, "RING_FAILED", err.Error())
	}

	if globals.Format == "ndjson" {
		return json.NewEncoder(globals.Stdout).Encode(map[string]string{"type": "ring"})
	}
	if !globals.Quiet {
		fmt.Fprintln(globals.Stdout, "Alert fired")
	}
	return nil
}
