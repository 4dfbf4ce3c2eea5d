package server

import (
	"fmt"

	"github.com/DjordjeVuckovic/chunkviz/internal/config"
)

type Config struct {
	Port        string
	UseHttp2    bool
	CorsOrigins []string
	// ResultDir is the chart tree that is browsed.
	ResultDir string
}

// NewConfig takes the server settings from the application config, with dir
// overriding the result dir when set.
func NewConfig(c *config.Config, dir, port string) (*Config, error) {
	sc := &Config{
		Port:        c.Port,
		UseHttp2:    c.UseHTTP2,
		CorsOrigins: c.CorsOrigins,
		ResultDir:   c.ResultDir,
	}
	if dir != "" {
		sc.ResultDir = dir
	}
	if port != "" {
		sc.Port = port
	}
	if err := config.ValidatePort(sc.Port); err != nil {
		return nil, fmt.Errorf("invalid port: %w", err)
	}
	if len(sc.CorsOrigins) == 0 {
		sc.CorsOrigins = []string{"*"}
	}
	return sc, nil
}
