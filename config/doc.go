// Package config provides hierarchical configuration sections over a type-indexed store.
//
// A Section owns a store.Store and a set of named child sections. Children are created
// lazily on first lookup, so callers never pre-declare the tree:
//
//	root := config.NewSection()
//	db := root.Section("database")
//	err := config.Put(db, typekey.Of[string]("url"), "db://host")
//
// Sections are isolated: a value written to "database" is not visible from the root.
//
// # Validation
//
// Section.ValidateAll re-runs the validators registered at this level only. ValidateTree
// composes it recursively over the whole tree and combines every failure into one error.
//
// # Loading
//
// The package keeps four extension points for collaborators that fill sections from
// external data:
//   - Parser: deserializes raw data into a value, with path navigation support
//   - DataFetcher: retrieves raw config data (file, stdin, etc.)
//   - Validator: validates a parsed struct value
//   - Defaulter: applies default values to a parsed struct value
//
// A Binding ties a colon-separated path to a typed key. Paths use colon (:) as the
// separator, and every segment but the last names a section:
//
//	"port"                -> root section, parsed from config["port"]
//	"database:url"        -> section "database", parsed from config["database"]["url"]
//	"database:pool:size"  -> section "database" > "pool"
//
// Provider wraps Load in an Fx-friendly constructor:
//
//	provider := config.Provider(
//	    config.Bind(typekey.Of[int]("port"), "server:port", validate.Range(1024, 65535)),
//	)
//	root, err := provider(yamlparser.NewParser(), fetcher)
package config
