package main

import (
	"fmt"

	"github.com/0xalexb/hjarta-config/config"

	"github.com/spf13/cobra"
)

func newValidateCommand(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check every section of the configuration",
		Long: `Loads the configuration file, rejecting values that fail their binding rules,
then re-checks every stored rule in every section.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := opts.load(cmd)
			if err != nil {
				return err
			}

			err = config.ValidateTree(root)
			if err != nil {
				for _, failure := range config.Failures(err) {
					fmt.Fprintf(cmd.ErrOrStderr(), "  %s\n", failure)
				}

				return fmt.Errorf("configuration is invalid: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s is valid\n", opts.file)

			return nil
		},
	}
}
