// Package commands implements the pitchctl CLI.
package commands

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the pitchctl command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "pitchctl",
		Short:        "Pitch practice tooling: score a pitch transcript from the terminal",
		SilenceUsage: true,
	}

	root.AddCommand(analyzeCmd(), fallbackCmd())
	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

func writeJSON(w io.Writer, v interface{}, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
