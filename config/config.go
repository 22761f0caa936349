// CLAUDE:SUMMARY Process configuration for resumecp: defaults, optional YAML file, .env files and environment overrides.
// Package config loads the resumecp process configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/hazyhaar/resumecp/resume"
)

// Config holds the full resumecp configuration.
type Config struct {
	// Port the HTTP server listens on (default: 8085).
	Port string `yaml:"port"`

	// Token is the bearer token required on /mcp.
	Token string `yaml:"token"`

	// Identity is returned verbatim by the validate tool.
	Identity string `yaml:"identity"`

	LogLevel string `yaml:"log_level"` // debug | info | warn | error
	Debug    bool   `yaml:"debug"`

	Resume resume.Config `yaml:"resume"`
}

// Default returns a Config with defaults applied and no secrets.
func Default() *Config {
	return &Config{
		Port:     "8085",
		LogLevel: "info",
		Resume:   resume.Config{Dir: "."},
	}
}

// Load builds the configuration: defaults, then the YAML file at path (a
// missing file is not an error), then environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDotEnv loads .env style files into the process environment. Variables
// already set win. Missing files are skipped.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	str("PORT", &c.Port)
	str("MCP_TOKEN", &c.Token)
	str("PHONE_NUMBER", &c.Identity)
	str("LOG_LEVEL", &c.LogLevel)
	str("RESUME_DIR", &c.Resume.Dir)
	str("RESUME_OWNER_NAME", &c.Resume.OwnerName)
	str("RESUME_LOCATION", &c.Resume.Location)
	str("RESUME_PORTFOLIO", &c.Resume.PortfolioToken)

	if v, ok := lookup("DEBUG"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("DEBUG=%q: %w", v, err)
		}
		c.Debug = b
	}
	return nil
}

// Validate checks that the required secrets are present.
func (c *Config) Validate() error {
	var errs []error
	if c.Token == "" {
		errs = append(errs, errors.New("token is required (MCP_TOKEN)"))
	}
	if c.Identity == "" {
		errs = append(errs, errors.New("identity is required (PHONE_NUMBER)"))
	}
	if c.Port == "" {
		errs = append(errs, errors.New("port is required"))
	}
	return errors.Join(errs...)
}

// SlogLevel maps LogLevel to a slog.Level. Unknown values mean info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
