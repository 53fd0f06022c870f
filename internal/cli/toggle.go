package cli

import (
	"encoding/json"
	"fmt"
)

// ToggleCmd flips the persisted enabled flag.
type ToggleCmd struct {
	State string `help:"Path to the persisted enabled-state file"`
}

// Run executes the toggle command
func (c *ToggleCmd) Run(globals *Globals) error {
	path, err := statePathOrDefault(c.State)
	if err != nil {
		return outputError(globals, "STATE_PATH", err.Error())
	}
	return writeEnabled(globals, path, !resolveEnabled(globals.Config, path))
}

// EnableCmd turns detection on.
type EnableCmd struct {
	State string `help:"Path to the persisted enabled-state file"`
}

// Run executes the enable command
func (c *EnableCmd) Run(globals *Globals) error {
	path, err := statePathOrDefault(c.State)
	if err != nil {
		return outputError(globals, "STATE_PATH", err.Error())
	}
	return writeEnabled(globals, path, true)
}

// DisableCmd turns detection off.
type DisableCmd struct {
	State string `help:"Path to the persisted enabled-state file"`
}

// Run executes the disable command
func (c *DisableCmd) Run(globals *Globals) error {
	path, err := statePathOrDefault(c.State)
	if err != nil {
		return outputError(globals, "STATE_PATH", err.Error())
	}
	return writeEnabled(globals, path, false)
}

func writeEnabled(globals *Globals, path string, enabled bool) error {
	if err := saveDetectorState(path, newDetectorState(enabled)); err != nil {
		return outputError(globals, "STATE_WRITE_FAILED", err.Error())
	}

	if globals.Format == "ndjson" {
		return json.NewEncoder(globals.Stdout).Encode(map[string]interface{}{
			"type":    "detector_state",
			"enabled": enabled,
		})
	}
	if enabled {
		fmt.Fprintln(globals.Stdout, "Detection enabled")
	} else {
		fmt.Fprintln(globals.Stdout, "Detection disabled")
	}
	return nil
}
