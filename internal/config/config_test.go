package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-chain/internal/config"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := writeFile(t, `
verbose: true
ensure_name: true
jobs: 2
top: 3
min_length: 4
graph_dir: /tmp/graphs
stop_words: [the, a]
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, &config.Config{
		Verbose:    true,
		EnsureName: true,
		Jobs:       2,
		Top:        3,
		MinLength:  4,
		GraphDir:   "/tmp/graphs",
		StopWords:  []string{"the", "a"},
	}, cfg)
}

func TestLoadKeepsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load(writeFile(t, "top: 5\n"))
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Top)
	assert.Equal(t, config.DefaultJobs, cfg.Jobs)
	assert.Equal(t, config.DefaultMinLength, cfg.MinLength)
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		path     func(t *testing.T) string
		expected error
	}{
		"missing file": {path: func(t *testing.T) string {
			t.Helper()

			return filepath.Join(t.TempDir(), "missing.yaml")
		}},
		"invalid yaml": {path: func(t *testing.T) string {
			t.Helper()

			return writeFile(t, "jobs: [")
		}},
		"invalid jobs": {path: func(t *testing.T) string {
			t.Helper()

			return writeFile(t, "jobs: 0")
		}, expected: config.ErrInvalidJobs},
		"invalid top": {path: func(t *testing.T) string {
			t.Helper()

			return writeFile(t, "top: -1")
		}, expected: config.ErrInvalidTop},
		"invalid min length": {path: func(t *testing.T) string {
			t.Helper()

			return writeFile(t, "min_length: 0")
		}, expected: config.ErrInvalidMinLength},
	}

	for name, tc := range tcs {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := config.Load(tc.path(t))
			require.Error(t, err)

			if tc.expected != nil {
				assert.ErrorIs(t, err, tc.expected)
			}
		})
	}
}

func TestDefaultPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "config.yaml", filepath.Base(config.DefaultPath()))
	assert.Equal(t, config.AppName, filepath.Base(filepath.Dir(config.DefaultPath())))
}
