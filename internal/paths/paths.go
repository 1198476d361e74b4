// Package paths resolves where the catalog data file and the libcat
// configuration live.
package paths

import (
	"os"
	"path/filepath"
)

// DefaultDataFileName is the catalog file written next to wherever libcat
// runs when nothing overrides it.
const DefaultDataFileName = "library_data.txt"

// DefaultConfigDirName is the CWD-relative configuration directory.
const DefaultConfigDirName = ".libcat"

// Environment variable names for overrides.
const (
	EnvDataFile  = "LIBCAT_DATA_FILE"
	EnvConfigDir = "LIBCAT_CONFIG_DIR"
)

// ResolveDataFile returns the data file location following the precedence
// chain: --data-file flag > config.yaml data_file > LIBCAT_DATA_FILE env >
// library_data.txt in the current directory.
func ResolveDataFile(flag, configValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configValue != "" {
		return filepath.Abs(configValue)
	}
	if env := os.Getenv(EnvDataFile); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultDataFileName), nil
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > LIBCAT_CONFIG_DIR env > $(CWD)/.libcat.
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultConfigDirName), nil
}
