package file

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBrokenReader = errors.New("broken reader")

type brokenReader struct{}

func (brokenReader) Read([]byte) (int, error) {
	return 0, errBrokenReader
}

func writeConfig(t *testing.T, name string, content []byte) string {
	t.Helper()

	configPath := filepath.Join(t.TempDir(), name)

	err := os.WriteFile(configPath, content, 0o600)
	require.NoError(t, err)

	return configPath
}

func TestNewFetcher_Success(t *testing.T) {
	t.Parallel()

	content := []byte("server:\n  port: 8080\n")
	configPath := writeConfig(t, "config.yaml", content)

	fetcher, err := NewFetcher(configPath)()
	require.NoError(t, err)

	data, err := fetcher.Fetch()

	require.NoError(t, err)
	assert.Equal(t, content, data)
	assert.Equal(t, configPath, fetcher.Source())
}

func TestNewFetcher_CleansPath(t *testing.T) {
	t.Parallel()

	configPath := writeConfig(t, "config.yaml", []byte("a: 1\n"))
	dirty := filepath.Dir(configPath) + "/./sub/../config.yaml"

	fetcher, err := NewFetcher(dirty)()

	require.NoError(t, err)
	assert.Equal(t, configPath, fetcher.Source())
}

func TestNewFetcher_Errors(t *testing.T) {
	t.Parallel()

	t.Run("file not found", func(t *testing.T) {
		t.Parallel()

		fetcher, err := NewFetcher("/nonexistent/path/config.yaml")()

		require.Error(t, err)
		assert.Nil(t, fetcher)
		assert.Contains(t, err.Error(), "stat file")
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("path is directory", func(t *testing.T) {
		t.Parallel()

		fetcher, err := NewFetcher(t.TempDir())()

		require.Error(t, err)
		assert.Nil(t, fetcher)
		assert.ErrorIs(t, err, ErrPathIsDirectory)
	})
}

func TestNewFetcher_ReadsOnce(t *testing.T) {
	t.Parallel()

	configPath := writeConfig(t, "config.yaml", []byte("version: 1\n"))

	fetcher, err := NewFetcher(configPath)()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(configPath, []byte("version: 2\n"), 0o600))

	data, err := fetcher.Fetch()

	require.NoError(t, err)
	assert.Equal(t, "version: 1\n", string(data))
}

func TestFetcher_Fetch_ReturnsCopy(t *testing.T) {
	t.Parallel()

	fetcher := Static([]byte("name: original\n"))

	first, err := fetcher.Fetch()
	require.NoError(t, err)

	first[0] = 'X'

	second, err := fetcher.Fetch()

	require.NoError(t, err)
	assert.Equal(t, "name: original\n", string(second))
}

func TestStatic_CopiesInput(t *testing.T) {
	t.Parallel()

	input := []byte("a: 1\n")
	fetcher := Static(input)

	input[0] = 'b'

	data, err := fetcher.Fetch()

	require.NoError(t, err)
	assert.Equal(t, "a: 1\n", string(data))
	assert.Equal(t, "static", fetcher.Source())
}

func TestFromReader(t *testing.T) {
	t.Parallel()

	fetcher, err := FromReader("pipe", strings.NewReader("port: 9000\n"))
	require.NoError(t, err)

	data, err := fetcher.Fetch()

	require.NoError(t, err)
	assert.Equal(t, "port: 9000\n", string(data))
	assert.Equal(t, "pipe", fetcher.Source())

	_, err = FromReader("broken", brokenReader{})
	require.ErrorIs(t, err, errBrokenReader)
}
