// Package hjarta wires the configuration core into a go.uber.org/fx application.
//
// An App owns a single root *config.Section. Options load YAML files into it through typed
// bindings, and modules receive the section, the *slog.Logger and the logging.LoggerConfig
// through dependency injection.
package hjarta
