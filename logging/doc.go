// Package logging builds the structured log/slog logger shared by the App and the CLI.
// Output is JSON by default with text as an alternative, and the "error" attribute key is
// written as "err" in both formats.
package logging
