package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"scrollsub/internal/config"
)

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("XDG_STATE_HOME", "")
	t.Chdir(t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantState := filepath.Join(tempHome, ".local", "state", "scrollsub")
	if cfg.Paths.StateDir != wantState {
		t.Fatalf("unexpected state dir: got %q want %q", cfg.Paths.StateDir, wantState)
	}
	if cfg.HistoryPath() != filepath.Join(wantState, "history.db") {
		t.Fatalf("unexpected history path: %q", cfg.HistoryPath())
	}
	if !cfg.History.Enabled {
		t.Fatal("expected history enabled by default")
	}
	if cfg.Text.Normalize != config.NormalizeNone {
		t.Fatalf("expected no normalization by default, got %q", cfg.Text.Normalize)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}

	lc := cfg.LayoutConfig()
	if lc.ScreenWidth != 1920 || lc.ScreenHeight != 1080 {
		t.Fatalf("unexpected canvas %vx%v", lc.ScreenWidth, lc.ScreenHeight)
	}
	if lc.MaxTracks != config.Default().Layout.MaxTracks {
		t.Fatalf("unexpected max tracks %d", lc.MaxTracks)
	}
	if err := lc.Validate(); err != nil {
		t.Fatalf("default layout should validate: %v", err)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	info, err := os.Stat(cfg.Paths.StateDir)
	if err != nil || !info.IsDir() {
		t.Fatalf("expected state dir to exist: %v", err)
	}
}

func TestLoadHonoursXDGStateHome(t *testing.T) {
	stateHome := t.TempDir()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", stateHome)
	t.Chdir(t.TempDir())

	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Paths.StateDir != filepath.Join(stateHome, "scrollsub") {
		t.Fatalf("unexpected state dir: %q", cfg.Paths.StateDir)
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "scrollsub.toml")

	type payload struct {
		Paths struct {
			StateDir string `toml:"state_dir"`
		} `toml:"paths"`
		Layout struct {
			Title     string  `toml:"title"`
			Width     float64 `toml:"screen_width"`
			MaxTracks int     `toml:"max_tracks"`
		} `toml:"layout"`
		Text struct {
			Normalize string `toml:"normalize"`
		} `toml:"text"`
		Logging struct {
			Format string `toml:"format"`
		} `toml:"logging"`
	}
	custom := payload{}
	custom.Paths.StateDir = filepath.Join(tempDir, "state")
	custom.Layout.Title = "  Custom Title "
	custom.Layout.Width = 1280
	custom.Layout.MaxTracks = 5
	custom.Text.Normalize = "NFC"
	custom.Logging.Format = "JSON"
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, configPath)
	}
	if cfg.Layout.Title != "Custom Title" {
		t.Fatalf("expected trimmed title, got %q", cfg.Layout.Title)
	}
	if cfg.Layout.ScreenWidth != 1280 {
		t.Fatalf("expected width override, got %v", cfg.Layout.ScreenWidth)
	}
	if cfg.Layout.ScreenHeight != 1080 {
		t.Fatalf("expected default height to survive, got %v", cfg.Layout.ScreenHeight)
	}
	if cfg.LayoutConfig().MaxTracks != 5 {
		t.Fatalf("expected 5 tracks, got %d", cfg.LayoutConfig().MaxTracks)
	}
	if cfg.Text.Normalize != config.NormalizeNFC {
		t.Fatalf("expected normalized enum, got %q", cfg.Text.Normalize)
	}
	if cfg.Logging.Format != "json" {
		t.Fatalf("expected json format, got %q", cfg.Logging.Format)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "scrollsub.toml")
	content := "[layout]\nscreen_width = 1920\nlane_count = 4\n"
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, _, _, err := config.Load(configPath)
	if err == nil {
		t.Fatal("expected unknown key to be rejected")
	}
	if !strings.Contains(err.Error(), "lane_count") {
		t.Fatalf("expected error to name the unknown key, got %v", err)
	}
}

func TestLoadRejectsInvalidLayout(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "scrollsub.toml")
	content := "[layout]\nbase_font_size = 0\n"
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, _, _, err := config.Load(configPath)
	if err == nil || !strings.Contains(err.Error(), "layout.base_font_size") {
		t.Fatalf("expected layout.base_font_size error, got %v", err)
	}
}

func TestLayoutConfigAutoFitsTracks(t *testing.T) {
	cfg := config.Default()
	cfg.Layout.MaxTracks = 0
	lc := cfg.LayoutConfig()
	if lc.MaxTracks != 36 {
		t.Fatalf("expected 36 auto-fit lanes, got %d", lc.MaxTracks)
	}
}

func TestValidateRejectsBadEnums(t *testing.T) {
	cfg := config.Default()
	cfg.Text.Normalize = "nfd"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected unsupported normalization to fail")
	}

	cfg = config.Default()
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected unsupported log format to fail")
	}

	cfg = config.Default()
	cfg.Layout.MaxTracks = -1
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected negative max tracks to fail")
	}
}

func TestCreateSampleIsLoadable(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("sample config should load: %v", err)
	}
	if !exists {
		t.Fatal("expected sample config to exist")
	}
	if cfg.Layout.MaxTracks != config.Default().Layout.MaxTracks {
		t.Fatalf("unexpected sample max tracks %d", cfg.Layout.MaxTracks)
	}
}
