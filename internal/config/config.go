// Package config loads tally settings from an optional .tally config file
// and TALLY_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	keyDB          = "db"
	keyLogUseCases = "log_use_cases"

	// DefaultDBPath is used when neither the config file nor TALLY_DB set one.
	DefaultDBPath = "~/.tally/tally.db"
)

// Config holds resolved runtime settings.
type Config struct {
	DBPath      string
	LogUseCases bool
	// ConfigFile is the file that was read, empty when none was found.
	ConfigFile string
}

// Load reads configuration with the default search path: TALLY_CONFIG_PATH
// when set, the working directory, then the home directory.
func Load() (*Config, error) {
	return LoadWith(viper.New(), os.Getenv("TALLY_CONFIG_PATH"))
}

// LoadWith reads configuration into v. overridePath, when non-empty, is
// searched before the default locations.
func LoadWith(v *viper.Viper, overridePath string) (*Config, error) {
	v.SetDefault(keyDB, DefaultDBPath)
	v.SetDefault(keyLogUseCases, false)
	v.SetConfigName(".tally") // .yaml, .json and .toml are all accepted
	v.SetEnvPrefix("TALLY")
	v.AutomaticEnv()

	if overridePath != "" {
		v.AddConfigPath(overridePath)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	dbPath, err := expandDBPath(v.GetString(keyDB))
	if err != nil {
		return nil, err
	}

	return &Config{
		DBPath:      dbPath,
		LogUseCases: v.GetBool(keyLogUseCases),
		ConfigFile:  v.ConfigFileUsed(),
	}, nil
}

func expandDBPath(p string) (string, error) {
	if p == "" {
		p = DefaultDBPath
	}
	if p == ":memory:" {
		return p, nil
	}
	expanded, err := homedir.Expand(p)
	if err != nil {
		return "", fmt.Errorf("expanding db path %q: %w", p, err)
	}
	return expanded, nil
}
