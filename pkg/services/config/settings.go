// Package config loads process settings from the environment and an optional
// settings file.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/de-tools/report-views/pkg/services/clock"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "REPORTING"

type Settings struct {
	Env                  string   `mapstructure:"env"`
	DebugDefaultDatetime string   `mapstructure:"debug_default_datetime"`
	ProductsPath         string   `mapstructure:"products_path"`
	LocalePath           string   `mapstructure:"locale_path"`
	ServerHost           string   `mapstructure:"server_host"`
	ServerPort           string   `mapstructure:"server_port"`
	AllowedOrigins       []string `mapstructure:"allowed_origins"`
}

// Load reads settings from REPORTING_* environment variables, layered over the
// file at path when path is not empty.
func Load(path string) (*Settings, error) {
	v := viper.New()

	v.SetDefault("env", string(clock.ModeProduction))
	v.SetDefault("debug_default_datetime", "")
	v.SetDefault("products_path", "")
	v.SetDefault("locale_path", "")
	v.SetDefault("server_host", "localhost")
	v.SetDefault("server_port", "8080")
	v.SetDefault("allowed_origins", []string{"*"})

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read settings file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	return &s, nil
}

// Clock returns the clock settings implied by s.
func (s *Settings) Clock() clock.Settings {
	return clock.Settings{
		Mode:         clock.Mode(strings.ToLower(s.Env)),
		DebugInstant: s.DebugDefaultDatetime,
	}
}
