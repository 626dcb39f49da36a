package config

import (
	"strings"

	"github.com/dwrod/fmpsdk/core/fmpclient"
	"github.com/dwrod/fmpsdk/core/logging"
	"github.com/dwrod/fmpsdk/core/types"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	// FileName is the config file looked up, without extension, in the config path and ".".
	FileName  = "fmp"
	EnvPrefix = "FMP"
)

// Config holds the command line client settings. Environment variables take
// precedence over the file, e.g. FMP_API_KEY over api_key.
type Config struct {
	APIKey    string `mapstructure:"api_key" validate:"required"`
	BaseURL   string `mapstructure:"base_url" validate:"required,url"`
	RateLimit int    `mapstructure:"rate_limit" validate:"gte=0"`
	LogLevel  string `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	Output    string `mapstructure:"output" validate:"oneof=json tsv markdown"`
}

var defaults = map[string]any{
	"api_key":    "",
	"base_url":   types.DefaultBaseHost,
	"rate_limit": 0,
	"log_level":  "info",
	"output":     string(types.DefaultFormat),
}

// LoadEnv loads variables from envFile into the process environment without
// overriding ones already set. It reports whether the file was read.
func LoadEnv(envFile string) bool {
	if err := godotenv.Load(envFile); err != nil {
		logging.L().Debug("no env file loaded, using system environment variables",
			zap.String("file", envFile), zap.Error(err))
		return false
	}
	return true
}

// Load reads fmp.yaml from configPath (if present) and the FMP_* environment,
// then validates the result. A missing file is not an error; a missing API key is.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(FileName)
	v.SetConfigType("yaml")
	if configPath != "" {
		v.AddConfigPath(configPath)
	}
	v.AddConfigPath(".")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrapf(err, "error reading config file %s.yaml", FileName)
		}
		logging.L().Debug("config file not found, using only environment variables",
			zap.String("path", configPath))
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	cfg.Output = strings.ToLower(cfg.Output)
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	validate := validator.New()
	return errors.Wrap(validate.Struct(c), "invalid config")
}

// ClientOptions translates the settings into client options.
func (c *Config) ClientOptions() []fmpclient.Option {
	return []fmpclient.Option{
		fmpclient.WithBaseURL(c.BaseURL),
		fmpclient.WithRateLimit(c.RateLimit),
	}
}
