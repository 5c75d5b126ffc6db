package testsupport

import (
	"path/filepath"
	"testing"

	"scrollsub/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	cfg *config.Config
}

// NewConfig produces a default config whose state directory is a fresh temp
// directory, then applies opts.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.StateDir = filepath.Join(base, "state")

	builder := &configBuilder{cfg: &cfgVal}
	for _, opt := range opts {
		opt(builder)
	}
	return builder.cfg
}

// WithMaxTracks overrides the lane count on the test config.
func WithMaxTracks(tracks int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Layout.MaxTracks = tracks
	}
}

// WithHistoryDisabled turns off conversion history recording.
func WithHistoryDisabled() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.History.Enabled = false
	}
}
