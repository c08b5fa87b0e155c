package main

import (
	"fmt"

	"github.com/dhamidi/lineq/project"
	"github.com/dhamidi/lineq/scanner"
	"github.com/spf13/cobra"
)

func newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [path]",
		Short: "Scan a project for equation documents and solve them",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}

			proj, err := project.LoadFrom(root)
			if err != nil {
				return err
			}
			if len(proj.Documents) == 0 {
				return fmt.Errorf("no %s documents under %s", proj.Config.Extension, root)
			}

			s := scanner.New()
			id := s.Submit(scanner.Request{Path: root, Tolerance: proj.Config.Tolerance})
			result, ok := s.Wait(id)
			if !ok {
				return fmt.Errorf("scan %s lost", id)
			}

			for _, doc := range result.Documents {
				fmt.Printf("%s: %d equation(s), %d variable(s)\n",
					doc.Path, doc.Equations, len(doc.Variables))
				for _, d := range doc.Diagnostics {
					fmt.Printf("  %d:%d: %s\n", d.Line+1, d.Offset+1, d.Status)
				}
				if doc.Incomplete {
					fmt.Println("  last equation is not finished")
				}
				if doc.Solved() {
					for _, p := range doc.Pairs() {
						fmt.Printf("  %s = %g\n", p.Name, p.Value)
					}
				} else if doc.SolveError != "" {
					fmt.Printf("  %s\n", doc.SolveError)
				}
				if doc.VerifyError != "" {
					fmt.Printf("  %s\n", doc.VerifyError)
				}
			}
			for _, e := range result.Errors {
				fmt.Println(e)
			}
			if result.Status == scanner.StatusFailed {
				return fmt.Errorf("scan failed: %s", result.Error)
			}
			return nil
		},
	}
	return cmd
}
