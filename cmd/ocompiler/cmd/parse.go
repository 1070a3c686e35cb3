package cmd

import (
	"fmt"

	"github.com/mharuska/ocompiler/internal/diag"
	"github.com/mharuska/ocompiler/internal/lexer"
	"github.com/mharuska/ocompiler/internal/parser"
	"github.com/mharuska/ocompiler/internal/printer"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse an O file and print the resulting AST",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
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

	fmt.Println(printer.Program(prog))
	return nil
}
