package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables that override the config file.
const (
	EnvHome         = "CARBONTRACE_HOME"
	EnvProjectDir   = "CARBONTRACE_PROJECT_DIR"
	EnvOutputFormat = "CARBONTRACE_OUTPUT_FORMAT"
	EnvLogLevel     = "CARBONTRACE_LOG_LEVEL"
	EnvLogFormat    = "CARBONTRACE_LOG_FORMAT"
	EnvData         = "CARBONTRACE_DATA"
	EnvServeAddr    = "CARBONTRACE_SERVE_ADDR"
)

// LoadDotEnv loads variables from the given .env files (default ./.env)
// without overriding variables already set. Missing files are not an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return err
		}
	}
	return nil
}

// ApplyEnv overlays CARBONTRACE_* environment variables onto c.
func (c *Config) ApplyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvOutputFormat)); v != "" {
		c.Output.DefaultFormat = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		c.Logging.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFormat)); v != "" {
		c.Logging.Format = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvData)); v != "" {
		c.Data.Path = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvServeAddr)); v != "" {
		c.Serve.Addr = v
	}
}
