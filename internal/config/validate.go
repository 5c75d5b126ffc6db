package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLayout(); err != nil {
		return err
	}
	if err := c.validateText(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateLayout() error {
	if c.Layout.MaxTracks < 0 {
		return errors.New("layout.max_tracks must be >= 0 (0 fits lanes to the screen height)")
	}
	if err := c.LayoutConfig().Validate(); err != nil {
		return fmt.Errorf("layout.%w", err)
	}
	return nil
}

func (c *Config) validateText() error {
	switch c.Text.Normalize {
	case NormalizeNone, NormalizeNFC, NormalizeNFKC:
		return nil
	default:
		return fmt.Errorf("text.normalize: unsupported value %q (use none, nfc, or nfkc)", c.Text.Normalize)
	}
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (use console or json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
