package config

import "github.com/spf13/viper"

// TelegramConfig is optional: with an empty token the telegram delivery
// channel stays disabled and notifications go through the live hub only.
type TelegramConfig struct {
	Token string `mapstructure:"token"`
}

func (config TelegramConfig) bindEnvironmentVariables() error {
	return viper.BindEnv("telegram.token", "TELEGRAM_TOKEN")
}
