package main

import (
	"fmt"

	hjarta "github.com/0xalexb/hjarta-config"

	"github.com/spf13/cobra"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of hjarta",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "hjarta version %s (compiled at %s)\n", hjarta.Version, hjarta.CompiledAt)
		},
	}
}
