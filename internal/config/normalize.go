package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeLayout()
	c.normalizeText()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.StateDir) == "" {
		c.Paths.StateDir = defaultStateDir()
	}
	if c.Paths.StateDir, err = expandPath(c.Paths.StateDir); err != nil {
		return fmt.Errorf("paths.state_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeLayout() {
	c.Layout.Title = strings.TrimSpace(c.Layout.Title)
	c.Layout.FontFamily = strings.TrimSpace(c.Layout.FontFamily)
	if c.Layout.FontFamily == "" {
		c.Layout.FontFamily = defaultFontFamily
	}
}

func (c *Config) normalizeText() {
	c.Text.Normalize = strings.ToLower(strings.TrimSpace(c.Text.Normalize))
	if c.Text.Normalize == "" {
		c.Text.Normalize = defaultTextNormalize
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
