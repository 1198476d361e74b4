package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDataFilePrecedence(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvDataFile, filepath.Join(dir, "from-env.txt"))

	// Flag wins over everything.
	got, err := ResolveDataFile(filepath.Join(dir, "from-flag.txt"), filepath.Join(dir, "from-config.txt"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "from-flag.txt"), got)

	// Config value wins over env.
	got, err = ResolveDataFile("", filepath.Join(dir, "from-config.txt"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "from-config.txt"), got)

	// Env wins over default.
	got, err = ResolveDataFile("", "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "from-env.txt"), got)
}

func TestResolveDataFileDefault(t *testing.T) {
	t.Setenv(EnvDataFile, "")
	got, err := ResolveDataFile("", "")
	require.NoError(t, err)

	cwd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cwd, DefaultDataFileName), got)
}

func TestResolveConfigDir(t *testing.T) {
	dir := t.TempDir()

	got, err := ResolveConfigDir(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, got)

	t.Setenv(EnvConfigDir, filepath.Join(dir, "cfg"))
	got, err = ResolveConfigDir("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "cfg"), got)
}
