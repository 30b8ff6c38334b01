package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// DBConfig holds the sqlite file path (plus optional driver pragmas after a
// "?"). The file is created on first open, so only presence is checked here.
type DBConfig struct {
	ConnectionString string `mapstructure:"connection_string"`
}

func (config DBConfig) validate() error {
	path, _, _ := strings.Cut(config.ConnectionString, "?")
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("missing variable: db connection string")
	}
	return nil
}

func (config DBConfig) bindEnvironmentVariables() error {
	return viper.BindEnv("db.connection_string", "DB_CONNECTION_STRING")
}
