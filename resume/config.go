// CLAUDE:SUMMARY Configuration struct and defaults for the resume normalization pipeline.
package resume

import "log/slog"

// Config configures the resume pipeline.
type Config struct {
	// Dir is the directory searched for candidate resume files (default: ".").
	Dir string `json:"dir" yaml:"dir"`

	// MaxFileSize is the maximum file size to process (default: 10 MB).
	MaxFileSize int64 `json:"max_file_size" yaml:"max_file_size"`

	// MinContentChars is the minimum number of non-whitespace characters an
	// extraction must yield (default: 50).
	MinContentChars int `json:"min_content_chars" yaml:"min_content_chars"`

	// OwnerName is used as the fallback title and as the known-word list for
	// PDF character artifact repair.
	OwnerName string `json:"owner_name" yaml:"owner_name"`

	// Location is the literal location string that marks a contact line.
	Location string `json:"location" yaml:"location"`

	// PortfolioToken is the portfolio URL fragment that ends the contact block.
	PortfolioToken string `json:"portfolio_token" yaml:"portfolio_token"`

	// Logger for debug/error messages.
	Logger *slog.Logger `json:"-" yaml:"-"`
}

func (c *Config) defaults() {
	if c.Dir == "" {
		c.Dir = "."
	}
	if c.MaxFileSize <= 0 {
		c.MaxFileSize = 10 * 1024 * 1024
	}
	if c.MinContentChars <= 0 {
		c.MinContentChars = 50
	}
	if c.OwnerName == "" {
		c.OwnerName = "JOHN SMITH"
	}
	if c.Location == "" {
		c.Location = "Kolkata, India"
	}
	if c.PortfolioToken == "" {
		c.PortfolioToken = "portfolio.vercel.app"
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// DefaultConfig returns a Config with every default applied.
func DefaultConfig() Config {
	var c Config
	c.defaults()
	return c
}
