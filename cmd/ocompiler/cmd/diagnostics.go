package cmd

import (
	"fmt"
	"os"

	"github.com/mharuska/ocompiler/internal/diag"
	"github.com/spf13/cobra"
)

// printDiagnostics writes bag's contents to stderr in the wire format,
// followed by a one-line summary (spec §6).
func printDiagnostics(bag *diag.Bag) {
	if out := diag.FormatAll(bag, colorEnabled); out != "" {
		fmt.Fprintln(os.Stderr, out)
	}
	fmt.Fprintln(os.Stderr, diag.Summary(bag))
}

// colorEnabled is set from the persistent --color flag by bindColorFlag,
// which each subcommand's RunE calls first.
var colorEnabled bool

func bindColorFlag(cmd *cobra.Command) {
	colorEnabled, _ = cmd.Flags().GetBool("color")
}
