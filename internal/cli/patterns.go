package cli

import (
	"encoding/json"

	"github.com/olekukonko/tablewriter"

	"github.com/errbell/errbell/internal/detect"
)

// PatternsCmd lists the failure signature table, including any extra
// patterns from configuration.
type PatternsCmd struct{}

// Run executes the patterns command
func (c *PatternsCmd) Run(globals *Globals) error {
	matcher, err := detect.NewMatcher(globals.Config.ExtraPatterns...)
	if err != nil {
		return outputError(globals, "INVALID_PATTERN", err.Error())
	}
	sigs := matcher.Signatures()

	if globals.Format == "ndjson" {
		enc := json.NewEncoder(globals.Stdout)
		for _, s := range sigs {
			if err := enc.Encode(map[string]string{
				"type":     "signature",
				"name":     s.Name,
				"category": s.Category,
				"expr":     s.Expr,
			}); err != nil {
				return err
			}
		}
		return nil
	}

	table := tablewriter.NewWriter(globals.Stdout)
	table.Header("Name", "Category", "Expression")
	for _, s := range sigs {
		table.Append(s.Name, s.Category, s.Expr)
	}
	return table.Render()
}
