// Package file provides cached DataFetcher implementations for the config package.
//
// The data is read once at construction time and cached; every Fetch returns a
// private copy, so a loaded configuration is consistent throughout the application
// lifecycle and callers cannot mutate the cache.
//
// Usage:
//
//	fetcher, err := file.NewFetcher("/path/to/config.yaml")()
//	fetcher, err := file.NewFetcher(file.StdinPath)() // reads standard input
//	fetcher := file.Static([]byte("server:\n  port: 8080\n"))
//
// Error Handling:
//   - Construction returns error if the file cannot be read or the path is a directory
//   - Errors include the path for easier debugging
//   - Use errors.Is(err, file.ErrPathIsDirectory) to check for directory errors
package file
