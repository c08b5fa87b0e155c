package main

import (
	"os"

	"github.com/spf13/cobra"
)

// version is reported by the LSP server during initialization.
const version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:     "lineq",
		Short:   "A notepad for systems of linear equations",
		Version: version,
	}

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newSolveCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newFmtCmd())
	rootCmd.AddCommand(newScanCmd())
	rootCmd.AddCommand(newGrammarCmd())
	rootCmd.AddCommand(newLSPCmd())
	rootCmd.AddCommand(newUICmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
