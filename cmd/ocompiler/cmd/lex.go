package cmd

import (
	"fmt"

	"github.com/mharuska/ocompiler/internal/lexer"
	"github.com/spf13/cobra"
)

var (
	lexShowPos  bool
	lexShowType bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize an O file and print the resulting tokens",
	Args:  cobra.ExactArgs(1),
	RunE:  runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
	lexCmd.Flags().BoolVar(&lexShowPos, "show-pos", false, "show token positions (line:column)")
	lexCmd.Flags().BoolVar(&lexShowType, "show-type", false, "show token type names")
}

func runLex(cmd *cobra.Command, args []string) error {
	bindColorFlag(cmd)
	src, filename, err := readSource(args)
	if err != nil {
		return err
	}

	tokens, bag := lexer.Lex(src, filename)
	for _, tok := range tokens {
		printToken(tok)
	}

	if bag.HasErrors() {
		printDiagnostics(bag)
		return fmt.Errorf("lexing failed with %d error(s)", bag.Errors())
	}
	return nil
}

func printToken(tok lexer.Token) {
	output := ""
	if lexShowType {
		output += fmt.Sprintf("[%-12s]", tok.Type)
	}
	if tok.Literal == "" {
		output += fmt.Sprintf(" %s", tok.Type)
	} else {
		output += fmt.Sprintf(" %q", tok.Literal)
	}
	if lexShowPos {
		output += fmt.Sprintf(" @%d:%d", tok.Pos.Line, tok.Pos.Column)
	}
	fmt.Println(output)
}
