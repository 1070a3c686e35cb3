// Package cmd implements the ocompiler driver: an informative CLI wrapper
// around the compiler pipeline, grounded on the teacher's
// cmd/dwscript/cmd/root.go structure. This driver sits outside the
// specification's scope (spec §1); it exists only to make the pipeline
// runnable end-to-end.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "ocompiler",
	Short: "Front-end and optimizer for the O language",
	Long: `ocompiler lexes, parses, checks, and optionally optimizes programs
written in O, a small class-based language with no infix operators: every
arithmetic and comparison operation is an ordinary method call.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
`, GitCommit))
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().Bool("color", false, "color diagnostic output")
}

func readSource(args []string) (src, filename string, err error) {
	filename = args[0]
	content, err := os.ReadFile(filename)
	if err != nil {
		return "", "", fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return string(content), filename, nil
}
