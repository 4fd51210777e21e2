package main

import (
	"fmt"
	"strings"

	"github.com/dhamidi/parsec/calc"
	"github.com/spf13/cobra"
)

func newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <expression>...",
		Short: "Evaluate an arithmetic expression",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := strings.Join(args, " ")

			result, err := calc.Eval(input)
			if err != nil {
				return fmt.Errorf("eval %q: %w", input, err)
			}

			fmt.Println(result)
			return nil
		},
	}
}
