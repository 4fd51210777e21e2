package main

import (
	"github.com/dhamidi/parsec/langserver"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
)

func newLSPCmd() *cobra.Command {
	var verbosity int

	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		RunE: func(cmd *cobra.Command, args []string) error {
			commonlog.Configure(verbosity, nil)
			server := langserver.New("0.1.0")
			return server.RunStdio()
		},
	}

	cmd.Flags().IntVar(&verbosity, "verbosity", 0, "log verbosity (higher is noisier)")

	return cmd
}
