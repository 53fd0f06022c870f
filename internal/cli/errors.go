package cli

import (
	"encoding/json"
	"errors"
	"fmt"
)

// outputError normalizes error emission across commands, keeping ndjson
// output machine-readable for scripted callers.
func outputError(globals *Globals, code, message string) error {
	if globals != nil && globals.Format == "ndjson" {
		json.NewEncoder(globals.Stdout).Encode(map[string]string{
			"type":    "error",
			"code":    code,
			"message": message,
		})
	} else if globals != nil {
		fmt.Fprintf(globals.Stderr, "Error [%s]: %s\n", code, message)
	}
	return errors.New(message)
}
