package config

import (
	"errors"
	"fmt"
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port                 int     `mapstructure:"port"`
	MetricsPort          int     `mapstructure:"metrics_port"`
	ClientOrigin         string  `mapstructure:"client_origin"`
	RateLimitPerSecond   float64 `mapstructure:"rate_limit_per_second"`
	RateLimitBurst       int     `mapstructure:"rate_limit_burst"`
	ShutdownTimeoutInSec int     `mapstructure:"shutdown_timeout_in_sec"`
}

func (config ServerConfig) validate() error {
	var errs []error

	if config.Port == 0 {
		errs = append(errs, fmt.Errorf("missing variable: server port"))
	}
	if config.RateLimitPerSecond < 0 {
		errs = append(errs, fmt.Errorf("rate_limit_per_second must not be negative"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("multiple errors occurred: %w", errors.Join(errs...))
	}

	return nil
}

func (config ServerConfig) bindEnvironmentVariables() error {

	err := viper.BindEnv("server.port", "PORT")
	if err != nil {
		return err
	}

	err = viper.BindEnv("server.metrics_port", "METRICS_PORT")
	if err != nil {
		return err
	}

	return viper.BindEnv("server.client_origin", "CLIENT_ORIGIN")
}
