package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	defaultScreenWidth        = 1920
	defaultScreenHeight       = 1080
	defaultFontFamily         = "Microsoft YaHei"
	defaultBaseFontSize       = 25
	defaultFontSizeMultiplier = 1.0
	defaultLineHeightRatio    = 1.2
	defaultTopMargin          = 0
	defaultMaxTracks          = 12
	defaultTextNormalize      = NormalizeNone
	defaultHistoryEnabled     = true
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			StateDir: defaultStateDir(),
		},
		Layout: Layout{
			ScreenWidth:        defaultScreenWidth,
			ScreenHeight:       defaultScreenHeight,
			FontFamily:         defaultFontFamily,
			BaseFontSize:       defaultBaseFontSize,
			FontSizeMultiplier: defaultFontSizeMultiplier,
			LineHeightRatio:    defaultLineHeightRatio,
			TopMargin:          defaultTopMargin,
			MaxTracks:          defaultMaxTracks,
		},
		Text: Text{
			Normalize: defaultTextNormalize,
		},
		History: History{
			Enabled: defaultHistoryEnabled,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

func defaultStateDir() string {
	if base, ok := os.LookupEnv("XDG_STATE_HOME"); ok && strings.TrimSpace(base) != "" {
		return filepath.Join(base, "scrollsub")
	}
	return "~/.local/state/scrollsub"
}
