package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/lineq/document"
	"github.com/dhamidi/lineq/format"
	"github.com/dhamidi/lineq/solve"
	"github.com/spf13/cobra"
)

func newSolveCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Parse an equation document and solve it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
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

			sol, err := solve.Solve(result.System)
			if err != nil {
				return err
			}

			switch outputFormat {
			case "json":
				if err := format.EncodeSolution(os.Stdout, sol); err != nil {
					return fmt.Errorf("encode: %w", err)
				}
				fmt.Println()
			case "text":
				for i, v := range sol.Vars {
					fmt.Printf("%s = %g\n", v, sol.Values[i])
				}
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (text, json)")

	return cmd
}
