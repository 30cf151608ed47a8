package file

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// StdinPath is the path that makes NewFetcher read standard input.
const StdinPath = "-"

// ErrPathIsDirectory is returned when the path provided to the Fetcher points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// Fetcher implements config.DataFetcher over data read once at construction time.
type Fetcher struct {
	source string
	data   []byte
}

// NewFetcher returns a constructor function that creates a Fetcher for fpath.
// The file is read at construction time and cached. The constructor form lets an
// Fx container control when the read happens.
func NewFetcher(fpath string) func() (*Fetcher, error) {
	return func() (*Fetcher, error) {
		if fpath == StdinPath {
			return FromReader("stdin", os.Stdin)
		}

		cleanPath := filepath.Clean(fpath)

		stat, err := os.Stat(cleanPath)
		if err != nil {
			return nil, fmt.Errorf("stat file %q: %w", cleanPath, err)
		}

		if stat.IsDir() {
			return nil, fmt.Errorf("path %q: %w", cleanPath, ErrPathIsDirectory)
		}

		data, err := os.ReadFile(cleanPath) // #nosec G304 -- path is cleaned and validated
		if err != nil {
			return nil, fmt.Errorf("reading file %q: %w", cleanPath, err)
		}

		return &Fetcher{source: cleanPath, data: data}, nil
	}
}

// FromReader drains r and caches its contents. The name is reported by Source.
func FromReader(name string, r io.Reader) (*Fetcher, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}

	return &Fetcher{source: name, data: data}, nil
}

// Static returns a Fetcher over a private copy of data.
func Static(data []byte) *Fetcher {
	owned := make([]byte, len(data))
	copy(owned, data)

	return &Fetcher{source: "static", data: owned}
}

// Source returns the cleaned file path, or the reader name for non-file fetchers.
func (f *Fetcher) Source() string {
	return f.source
}

// Fetch returns a copy of the cached configuration data.
func (f *Fetcher) Fetch() ([]byte, error) {
	result := make([]byte, len(f.data))
	copy(result, f.data)

	return result, nil
}
