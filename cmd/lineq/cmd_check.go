package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/lineq/document"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>...",
		Short: "Check equation documents and report problems",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			problems := 0
			for _, name := range args {
				content, err := os.ReadFile(name)
				if err != nil {
					return fmt.Errorf("read file: %w", err)
				}
				result := document.Parse(content)
				for _, d := range result.Diagnostics {
					fmt.Printf("%s:%d:%d: %s\n", name, d.Line+1, d.Offset+1, d.Status)
					problems++
				}
				if result.Incomplete {
					fmt.Printf("%s: last equation is not finished\n", name)
					problems++
				}
			}
			if problems > 0 {
				return fmt.Errorf("%d problem(s) found", problems)
			}
			return nil
		},
	}
}
