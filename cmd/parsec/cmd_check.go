package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/dhamidi/parsec/calc"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:           "check <file>",
		Short:         "Parse an expression file and report lines that do not parse",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]

			data, err := os.ReadFile(filename)
			if err != nil {
				return fmt.Errorf("read file: %w", err)
			}

			bad := 0
			for i, line := range strings.Split(string(data), "\n") {
				trimmed := strings.TrimSpace(line)
				if trimmed == "" || strings.HasPrefix(trimmed, "#") {
					continue
				}
				if _, err := calc.Eval(line); err != nil {
					bad++
					if !quiet {
						fmt.Printf("%s:%d: %v\n", filename, i+1, err)
					}
				}
			}

			if bad > 0 {
				return fmt.Errorf("%d lines failed to parse", bad)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress per-line output")

	return cmd
}
