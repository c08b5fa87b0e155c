package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dhamidi/lineq/document"
	"github.com/dhamidi/lineq/format"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse an equation document and dump the resulting system",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, name, err := readInput(args)
			if err != nil {
				return err
			}

			result := document.Parse(content)
			for _, d := range result.Diagnostics {
				fmt.Fprintf(os.Stderr, "%s:%d:%d: %s\n", name, d.Line+1, d.Offset+1, d.Status)
			}

			var encoder format.Encoder
			switch outputFormat {
			case "json":
				encoder = format.NewJSONEncoder(os.Stdout)
			case "text":
				encoder = format.NewTextEncoder(os.Stdout)
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			if err := encoder.Encode(result.System); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			fmt.Println()

			if len(result.Diagnostics) > 0 {
				return fmt.Errorf("%s has errors", name)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format (json, text)")

	return cmd
}

// readInput returns the document text from the file argument, or from stdin
// when no argument was given.
func readInput(args []string) (content []byte, name string, err error) {
	if len(args) == 0 {
		content, err = io.ReadAll(os.Stdin)
		if err != nil {
			return nil, "", fmt.Errorf("read stdin: %w", err)
		}
		return content, "(stdin)", nil
	}
	name = args[0]
	content, err = os.ReadFile(name)
	if err != nil {
		return nil, "", fmt.Errorf("read file: %w", err)
	}
	return content, name, nil
}
