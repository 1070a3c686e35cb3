package cmd

import (
	"fmt"

	"github.com/mharuska/ocompiler/internal/pipeline"
	"github.com/mharuska/ocompiler/internal/printer"
	"github.com/spf13/cobra"
)

var (
	compileOptimize bool
	compilePrintAST bool
)

var compileCmd = &cobra.Command{
	Use:   "compile [file]",
	Short: "Run the full pipeline (lex, parse, check, optimize) over an O file",
	Long: `compile runs every pipeline stage in order and stops at the first
stage that reports a fatal diagnostic (spec §2): lexing, then parsing, then
semantic analysis, then — when --optimize is set — the AST optimizer.`,
	Args: cobra.ExactArgs(1),
	RunE: runCompile,
}

func init() {
	rootCmd.AddCommand(compileCmd)
	compileCmd.Flags().BoolVar(&compileOptimize, "optimize", false, "run the AST optimizer after semantic analysis")
	compileCmd.Flags().BoolVar(&compilePrintAST, "print-ast", false, "print the resulting AST (optimized, if --optimize was set)")
}

func runCompile(cmd *cobra.Command, args []string) error {
	bindColorFlag(cmd)
	src, filename, err := readSource(args)
	if err != nil {
		return err
	}

	result, bag := pipeline.Compile(src, filename, pipeline.Options{Optimize: compileOptimize})
	if len(bag.All()) > 0 {
		printDiagnostics(bag)
	}
	if result == nil {
		return fmt.Errorf("compilation failed with %d error(s)", bag.Errors())
	}

	if compilePrintAST {
		prog := result.Program
		if result.Optimized != nil {
			prog = result.Optimized
		}
		fmt.Println(printer.Program(prog))
	} else {
		fmt.Printf("%s: ok (%d class(es))\n", filename, len(result.Program.Classes))
	}
	return nil
}
