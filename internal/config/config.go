// Package config reads chartviz settings from the environment.
package config

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/DjordjeVuckovic/chunkviz/internal/viz/chart"
	"github.com/DjordjeVuckovic/chunkviz/pkg/config/env"
	"github.com/DjordjeVuckovic/chunkviz/pkg/logger"
	"github.com/DjordjeVuckovic/chunkviz/pkg/utils"
	"github.com/kelseyhightower/envconfig"
)

const DefaultEnvFile = ".env"

type Config struct {
	Env       string `envconfig:"ENV" default:"local"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`

	ResultDir   string `envconfig:"CHARTVIZ_RESULT_DIR" default:"data/result"`
	ImageFormat string `envconfig:"CHARTVIZ_IMAGE_FORMAT" default:"png"`
	Workers     int    `envconfig:"CHARTVIZ_WORKERS" default:"1"`

	Port        string   `envconfig:"PORT" default:"8080"`
	CorsOrigins []string `envconfig:"CORS_ORIGINS"`
	UseHTTP2    bool     `envconfig:"USE_HTTP2" default:"false"`
}

// Load reads the .env file, then the process environment.
func Load() (*Config, error) {
	if err := env.LoadDotEnv(DefaultEnvFile); err != nil {
		return nil, err
	}
	return FromEnv()
}

// FromEnv reads the process environment only.
func FromEnv() (*Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return nil, fmt.Errorf("process env config: %w", err)
	}

	c.CorsOrigins = utils.TrimAll(c.CorsOrigins)
	if len(c.CorsOrigins) == 0 {
		c.CorsOrigins = []string{"*"}
	}

	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) validate() error {
	if err := logger.Validate(c.LogLevel, c.LogFormat); err != nil {
		return err
	}
	if !chart.IsSupportedFormat(c.ImageFormat) {
		return fmt.Errorf("CHARTVIZ_IMAGE_FORMAT: unsupported image format %q", c.ImageFormat)
	}
	if c.Workers < 1 {
		return fmt.Errorf("CHARTVIZ_WORKERS must be at least 1, got %d", c.Workers)
	}
	if err := ValidatePort(c.Port); err != nil {
		return fmt.Errorf("invalid port: %w", err)
	}
	return nil
}

func ValidatePort(port string) error {
	portNum, err := strconv.Atoi(port)

	if err != nil {
		return errors.New("port must be a number")
	}

	if portNum < 1 || portNum > 65535 {
		return errors.New("port must be between 1 and 65535")
	}

	return nil
}
