package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/lineq/document"
	"github.com/dhamidi/lineq/format"
	"github.com/spf13/cobra"
)

func newFmtCmd() *cobra.Command {
	var fmtOverwrite bool

	cmd := &cobra.Command{
		Use:   "fmt [file]",
		Short: "Re-render an equation document in canonical form",
		Long: `Re-render an equation document to stdout: unit coefficients are elided,
repeated terms are merged and constants move to the right-hand side.

If no file is provided, reads from stdin.
Use -w to overwrite the file in place (requires a file argument).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if fmtOverwrite && len(args) == 0 {
				return fmt.Errorf("-w requires a file argument")
			}

			content, name, err := readInput(args)
			if err != nil {
				return err
			}

			result := document.Parse(content)
			if len(result.Diagnostics) > 0 {
				d := result.Diagnostics[0]
				return fmt.Errorf("%s:%d:%d: %s", name, d.Line+1, d.Offset+1, d.Status)
			}
			if result.Incomplete {
				return fmt.Errorf("%s: last equation is not finished", name)
			}

			output := format.Text(result.System)
			if fmtOverwrite {
				return os.WriteFile(name, []byte(output), 0644)
			}
			_, err = os.Stdout.WriteString(output)
			return err
		},
	}

	cmd.Flags().BoolVarP(&fmtOverwrite, "write", "w", false, "overwrite the file in place")

	return cmd
}
