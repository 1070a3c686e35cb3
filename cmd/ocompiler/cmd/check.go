package cmd

import (
	"fmt"

	"github.com/mharuska/ocompiler/internal/diag"
	"github.com/mharuska/ocompiler/internal/lexer"
	"github.com/mharuska/ocompiler/internal/parser"
	"github.com/mharuska/ocompiler/internal/semantic"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Run the full semantic checker over an O file and report diagnostics",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	bindColorFlag(cmd)
	src, filename, err := readSource(args)
	if err != nil {
		return err
	}

	tokens, lexBag := lexer.Lex(src, filename)
	if lexBag.HasErrors() {
		printDiagnostics(lexBag)
		return fmt.Errorf("lexing failed with %d error(s)", lexBag.Errors())
	}

	prog, syntaxErr := parser.Parse(tokens, filename)
	if syntaxErr != nil {
		bag := diag.NewBag()
		bag.Add(syntaxErr.ToDiagnostic())
		printDiagnostics(bag)
		return fmt.Errorf("parsing failed: %s", syntaxErr.Error())
	}

	_, bag := semantic.Analyze(prog)
	if bag.HasErrors() {
		printDiagnostics(bag)
		return fmt.Errorf("semantic analysis failed with %d error(s)", bag.Errors())
	}
	if len(bag.All()) > 0 {
		printDiagnostics(bag)
	}
	fmt.Printf("%s: ok\n", filename)
	return nil
}
