// Config loading for the libcat CLI.
package main

import (
	"fmt"

	"github.com/spf13/viper"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	// Config keys recognized in config.yaml.
	cfgKeyDataFile = "data_file"
)

// loadConfig reads config.yaml from the resolved config directory using
// Viper. A missing directory or config file is not an error; defaults and
// environment overrides still apply.
func loadConfig(configDir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}
