// Package config provides configuration loading and validation for timefang.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/Sumatoshi-tech/timefang/pkg/worklog"
)

// Sentinel validation errors.
var (
	ErrInvalidFormat = errors.New("invalid output format")
	ErrInvalidLimit  = errors.New("commit limit must not be negative")
)

// Config holds all configuration for timefang.
type Config struct {
	Report  ReportConfig  `mapstructure:"report"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ReportConfig holds report-command configuration.
type ReportConfig struct {
	Format      string `mapstructure:"format"`
	Since       string `mapstructure:"since"`
	Limit       int    `mapstructure:"limit"`
	FirstParent bool   `mapstructure:"first_parent"`
	Silent      bool   `mapstructure:"silent"`
	NoColor     bool   `mapstructure:"no_color"`
}

// LoggingConfig holds logging-specific configuration.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// LoadConfig loads configuration from an optional file and TIMEFANG_*
// environment variables. A missing config file is not an error.
func LoadConfig(configPath string) (*Config, error) {
	viperCfg := viper.New()

	setDefaults(viperCfg)

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName("timefang")
		viperCfg.SetConfigType("yaml")
		viperCfg.AddConfigPath(".")
	}

	viperCfg.SetEnvPrefix("TIMEFANG")
	viperCfg.AutomaticEnv()
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFoundErr) {
			return nil, fmt.Errorf("failed to read config file: %w", readErr)
		}
	}

	var config Config

	unmarshalErr := viperCfg.Unmarshal(&config)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", unmarshalErr)
	}

	validateErr := validateConfig(&config)
	if validateErr != nil {
		return nil, fmt.Errorf("invalid configuration: %w", validateErr)
	}

	return &config, nil
}

func setDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("report.format", worklog.FormatText)
	viperCfg.SetDefault("report.since", "")
	viperCfg.SetDefault("report.limit", 0)
	viperCfg.SetDefault("report.first_parent", false)
	viperCfg.SetDefault("report.silent", false)
	viperCfg.SetDefault("report.no_color", false)

	viperCfg.SetDefault("logging.level", "info")
}

func validateConfig(config *Config) error {
	_, err := worklog.ValidateFormat(config.Report.Format)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidFormat, config.Report.Format)
	}

	if config.Report.Limit < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidLimit, config.Report.Limit)
	}

	return nil
}
