package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"scrollsub/internal/layout"
)

//go:embed sample_config.toml
var sampleConfig string

// Text normalization forms accepted by [text] normalize.
const (
	NormalizeNone = "none"
	NormalizeNFC  = "nfc"
	NormalizeNFKC = "nfkc"
)

// Paths contains directory configuration.
type Paths struct {
	StateDir string `toml:"state_dir"`
}

// Layout mirrors layout.Config. MaxTracks of zero fits as many lanes as the
// screen height allows.
type Layout struct {
	Title              string  `toml:"title"`
	ScreenWidth        float64 `toml:"screen_width"`
	ScreenHeight       float64 `toml:"screen_height"`
	FontFamily         string  `toml:"font_family"`
	BaseFontSize       float64 `toml:"base_font_size"`
	FontSizeMultiplier float64 `toml:"font_size_multiplier"`
	LineHeightRatio    float64 `toml:"line_height_ratio"`
	TopMargin          float64 `toml:"top_margin"`
	MaxTracks          int     `toml:"max_tracks"`
}

// Text controls comment text preprocessing.
type Text struct {
	Normalize string `toml:"normalize"`
}

// History controls the conversion history database.
type History struct {
	Enabled bool `toml:"enabled"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
	// File additionally appends logs to scrollsub.log in the state directory.
	File bool `toml:"file"`
}

// Config encapsulates all configuration values for scrollsub.
//
// Configuration sections:
//   - Paths: state directory (history database, log file)
//   - Layout: canvas, font, and lane geometry
//   - Text: Unicode normalization applied to comment text
//   - History: conversion history recording
//   - Logging: log format, level, and file output
type Config struct {
	Paths   Paths   `toml:"paths"`
	Layout  Layout  `toml:"layout"`
	Text    Text    `toml:"text"`
	History History `toml:"history"`
	Logging Logging `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/scrollsub/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded. Unknown keys are rejected.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			var strict *toml.StrictMissingError
			if errors.As(err, &strict) {
				return nil, "", false, fmt.Errorf("parse config: unknown keys: %s", unknownKeys(strict))
			}
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func unknownKeys(strict *toml.StrictMissingError) string {
	keys := make([]string, 0, len(strict.Errors))
	for _, decodeErr := range strict.Errors {
		keys = append(keys, strings.Join(decodeErr.Key(), "."))
	}
	return strings.Join(keys, ", ")
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("scrollsub.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the state directory.
func (c *Config) EnsureDirectories() error {
	if strings.TrimSpace(c.Paths.StateDir) == "" {
		return errors.New("paths.state_dir must be set")
	}
	if err := os.MkdirAll(c.Paths.StateDir, 0o755); err != nil {
		return fmt.Errorf("create directory %q: %w", c.Paths.StateDir, err)
	}
	return nil
}

// HistoryPath returns the conversion history database location.
func (c *Config) HistoryPath() string {
	return filepath.Join(c.Paths.StateDir, "history.db")
}

// LogPath returns the log file location used when logging.file is set.
func (c *Config) LogPath() string {
	return filepath.Join(c.Paths.StateDir, "scrollsub.log")
}

// LayoutConfig converts the [layout] section into the converter's record.
func (c *Config) LayoutConfig() layout.Config {
	lc := layout.Config{
		Title:              c.Layout.Title,
		ScreenWidth:        c.Layout.ScreenWidth,
		ScreenHeight:       c.Layout.ScreenHeight,
		FontFamily:         c.Layout.FontFamily,
		BaseFontSize:       c.Layout.BaseFontSize,
		FontSizeMultiplier: c.Layout.FontSizeMultiplier,
		LineHeightRatio:    c.Layout.LineHeightRatio,
		TopMargin:          c.Layout.TopMargin,
		MaxTracks:          c.Layout.MaxTracks,
	}
	if lc.MaxTracks == 0 {
		lc.MaxTracks = layout.FitTracks(lc)
	}
	return lc
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
