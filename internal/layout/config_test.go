package layout

import (
	"math"
	"strings"
	"testing"
)

func validConfig() Config {
	return Config{
		Title:              "Test",
		ScreenWidth:        1920,
		ScreenHeight:       1080,
		FontFamily:         "Noto Sans CJK SC",
		BaseFontSize:       25,
		FontSizeMultiplier: 1,
		LineHeightRatio:    1.2,
		TopMargin:          0,
		MaxTracks:          2,
	}
}

func TestConfigValidateAcceptsDefaults(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}

func TestConfigValidateRejectsBadFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"zero width", func(c *Config) { c.ScreenWidth = 0 }, "screen_width"},
		{"negative height", func(c *Config) { c.ScreenHeight = -1 }, "screen_height"},
		{"nan font size", func(c *Config) { c.BaseFontSize = math.NaN() }, "base_font_size"},
		{"zero multiplier", func(c *Config) { c.FontSizeMultiplier = 0 }, "font_size_multiplier"},
		{"infinite ratio", func(c *Config) { c.LineHeightRatio = math.Inf(1) }, "line_height_ratio"},
		{"negative margin", func(c *Config) { c.TopMargin = -5 }, "top_margin"},
		{"no tracks", func(c *Config) { c.MaxTracks = 0 }, "max_tracks"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.field) {
				t.Fatalf("expected error to mention %s, got %v", tc.field, err)
			}
		})
	}
}
