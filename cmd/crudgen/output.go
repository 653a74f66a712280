package main

import (
	"encoding/json"
	"io"

	"github.com/hlop3z/crudgen/internal/cli"
)

// setupOutput selects the output mode for this invocation. --json wins over
// terminal detection.
func setupOutput() {
	if jsonOutput {
		cli.SetDefault(cli.NewConfigWithMode(cli.ModeJSON))
		return
	}
	cli.SetDefault(cli.DefaultConfig())
}

// writeJSON prints v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
