package hjarta

import (
	"io"

	"github.com/0xalexb/hjarta-config/config"
	filefetcher "github.com/0xalexb/hjarta-config/config/fetcher/file"
	yamlparser "github.com/0xalexb/hjarta-config/config/parser/yaml"

	"go.uber.org/fx"
)

// Options holds configuration settings for the application.
type Options struct {
	Modules   []fx.Option
	LogLevel  string
	LogFormat string
	LogOutput io.Writer
	Root      *config.Section
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithModules adds Fx modules to the application.
func WithModules(modules ...fx.Option) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, modules...)
	}
}

// WithLogLevel sets the log level for the application.
// Valid levels are: "debug", "info", "warn", "error".
// If not set or invalid, defaults to "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithLogFormat selects "json" (default) or "text" log output.
func WithLogFormat(format string) Option {
	return func(opts *Options) {
		opts.LogFormat = format
	}
}

// WithLogOutput redirects application logs. Defaults to os.Stderr.
func WithLogOutput(w io.Writer) Option {
	return func(opts *Options) {
		opts.LogOutput = w
	}
}

// WithRootSection supplies the root configuration section instead of a fresh locking one.
func WithRootSection(root *config.Section) Option {
	return func(opts *Options) {
		opts.Root = root
	}
}

// WithConfigFile loads the YAML file at path into the root section at startup.
// Each binding maps a colon-separated document path to a typed key. A path of "-" reads stdin.
func WithConfigFile(path string, bindings ...Binding) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, ConfigModule(path, bindings...))
	}
}

// Binding is re-exported so callers of WithConfigFile need not import config.
type Binding = config.Binding

// ConfigModule provides the YAML parser and file fetcher and loads the bindings into
// the container's root section.
func ConfigModule(path string, bindings ...Binding) fx.Option {
	return fx.Module("config",
		fx.Provide(
			fx.Annotate(
				yamlparser.NewParser,
				fx.As(new(config.Parser)),
			),
		),
		fx.Provide(
			fx.Annotate(
				filefetcher.NewFetcher(path),
				fx.As(new(config.DataFetcher)),
			),
		),
		fx.Invoke(func(root *config.Section, parser config.Parser, fetcher config.DataFetcher) error {
			return config.Load(root, parser, fetcher, bindings...)
		}),
	)
}
