package main

import (
	"fmt"

	hjarta "github.com/0xalexb/hjarta-config"
	"github.com/0xalexb/hjarta-config/config"
	filefetcher "github.com/0xalexb/hjarta-config/config/fetcher/file"

	"github.com/spf13/cobra"
)

const defaultConfigFile = "hjarta.yaml"

type cliOptions struct {
	file      string
	logLevel  string
	logFormat string
}

func newRootCommand() *cobra.Command {
	opts := &cliOptions{}

	cmd := &cobra.Command{
		Use:           "hjarta",
		Short:         "Inspect and validate typed configuration",
		Long:          `hjarta binds YAML documents to typed, validated configuration sections.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.file, "file", "f", defaultConfigFile,
		fmt.Sprintf("configuration file (%q reads stdin)", filefetcher.StdinPath))
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	flags.StringVar(&opts.logFormat, "log-format", "text", "log format: json or text")

	cmd.AddCommand(
		newShowCommand(opts),
		newValidateCommand(opts),
		newServiceCommand(opts),
		newVersionCommand(),
	)

	return cmd
}

// load runs a short-lived App that fills a fresh root section from the configured file.
func (o *cliOptions) load(cmd *cobra.Command) (*config.Section, error) {
	root := config.NewSection()

	app := hjarta.NewApp(
		hjarta.WithLogLevel(o.logLevel),
		hjarta.WithLogFormat(o.logFormat),
		hjarta.WithLogOutput(cmd.ErrOrStderr()),
		hjarta.WithRootSection(root),
		hjarta.WithConfigFile(o.file, bindings()...),
	)

	err := app.Start()
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", o.file, err)
	}

	err = app.Stop()
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", o.file, err)
	}

	return root, nil
}
