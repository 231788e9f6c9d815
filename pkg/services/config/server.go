package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// ServerConfig is the web server configuration file.
type ServerConfig struct {
	Host            string `mapstructure:"host"`
	Port            string `mapstructure:"port"`
	Profile         string `mapstructure:"profile"`
	ProfilesPath    string `mapstructure:"profiles_path"`
	ReportRoot      string `mapstructure:"report_root"`
	ShutdownSeconds int    `mapstructure:"shutdown_seconds"`
}

func LoadServerConfig(path string) (*ServerConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("port", "8080")
	v.SetDefault("shutdown_seconds", 10)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg ServerConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse server config: %w", err)
	}
	return &cfg, nil
}
