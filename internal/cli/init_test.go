package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/rf/internal/config"
	"github.com/rileyhilliard/rf/internal/errors"
)

// chdir is a stand-in for testing.T.Chdir, which requires Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestInitCommand(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	require.NoError(t, initCommand(false))

	path := filepath.Join(dir, config.ConfigFileName)
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	// The generated file starts with the commented header.
	assert.True(t, strings.HasPrefix(string(data), "# rf configuration"))

	// And it loads back as a valid config equal to the defaults.
	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.NoError(t, config.Validate(cfg))
	assert.Equal(t, config.DefaultConfig(), cfg)
}

func TestInitCommandRefusesToOverwrite(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	path := filepath.Join(dir, config.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("disk_path: /srv\n"), 0644))

	err := initCommand(false)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
	assert.Contains(t, err.Error(), "already exists")

	// The existing file is untouched.
	data, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, "disk_path: /srv\n", string(data))
}

func TestInitCommandForceOverwrites(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	path := filepath.Join(dir, config.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("disk_path: /srv\n"), 0644))

	require.NoError(t, initCommand(true))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/", cfg.DiskPath)
}
