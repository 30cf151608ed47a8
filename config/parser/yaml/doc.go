// Package yaml provides a YAML parser and encoder for the config package.
//
// This package uses github.com/goccy/go-yaml for YAML parsing with native
// PathString support for efficient path navigation. The parser converts
// colon-separated paths (e.g., "database:url") to YAML path format
// (e.g., "$.database.url") internally, and reports missing paths with an
// error that wraps config.ErrPathNotFound so that config.BindDefault can
// fall back to its default.
//
// Usage:
//
//	parser := yaml.NewParser()
//	var port int
//	err := parser.Parse(data, &port, "server:port")
//
//	out, err := yaml.Encode(section.ToExportView())
//
// Path Conversion:
//   - Empty path "" -> unmarshal entire document
//   - Single key "key" -> "$.key"
//   - Nested path "database:url" -> "$.database.url"
package yaml
