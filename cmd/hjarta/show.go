package main

import (
	"fmt"

	yamlparser "github.com/0xalexb/hjarta-config/config/parser/yaml"

	"github.com/spf13/cobra"
)

func newShowCommand(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the loaded configuration tree as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := opts.load(cmd)
			if err != nil {
				return err
			}

			data, err := yamlparser.Encode(root.ToExportView())
			if err != nil {
				return fmt.Errorf("encoding configuration: %w", err)
			}

			_, err = cmd.OutOrStdout().Write(data)
			if err != nil {
				return fmt.Errorf("writing output: %w", err)
			}

			return nil
		},
	}
}
