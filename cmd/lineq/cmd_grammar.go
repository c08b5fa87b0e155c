package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/lineq/grammar"
	"github.com/spf13/cobra"
)

func newGrammarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grammar",
		Short: "Equation-language grammar tools",
	}

	cmd.AddCommand(newGrammarCheckCmd())
	cmd.AddCommand(newGrammarTokensCmd())

	return cmd
}

func newGrammarCheckCmd() *cobra.Command {
	var printSource bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify the embedded EBNF grammar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := grammar.Load(); err != nil {
				return err
			}
			if printSource {
				fmt.Print(grammar.Source())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&printSource, "print", false, "print the grammar source after verifying it")

	return cmd
}

func newGrammarTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens [file]",
		Short: "Tokenize a document with the grammar-driven reference lexer",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, _, err := readInput(args)
			if err != nil {
				return err
			}

			g, err := grammar.Load()
			if err != nil {
				return err
			}

			tokens, err := grammar.NewLexer(g, content).Tokenize()
			if err != nil {
				return err
			}
			for _, tok := range tokens {
				fmt.Fprintln(os.Stdout, tok)
			}
			return nil
		},
	}
}
