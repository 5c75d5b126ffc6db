package layout

import "testing"

func TestNewMetrics(t *testing.T) {
	cfg := validConfig()
	cfg.FontSizeMultiplier = 2
	cfg.TopMargin = 10
	m := NewMetrics(cfg)
	if m.FontSize != 50 {
		t.Fatalf("expected font size 50, got %v", m.FontSize)
	}
	if m.LaneHeight != 60 {
		t.Fatalf("expected lane height 60, got %v", m.LaneHeight)
	}
	if got := m.LaneCenter(0); got != 40 {
		t.Fatalf("expected lane 0 centre 40, got %v", got)
	}
	if got := m.LaneCenter(2); got != 160 {
		t.Fatalf("expected lane 2 centre 160, got %v", got)
	}
}

func TestEffectiveFontSizeFallsBackToBase(t *testing.T) {
	cfg := validConfig()
	cfg.FontSizeMultiplier = 1.5
	m := NewMetrics(cfg)
	if got := m.EffectiveFontSize(0); got != 37.5 {
		t.Fatalf("expected base fallback 37.5, got %v", got)
	}
	if got := m.EffectiveFontSize(20); got != 30 {
		t.Fatalf("expected 30, got %v", got)
	}
}

func TestFitTracks(t *testing.T) {
	cfg := validConfig()
	if got := FitTracks(cfg); got != 36 {
		t.Fatalf("expected 36 lanes for 1080px at 30px, got %d", got)
	}
	cfg.TopMargin = 1070
	if got := FitTracks(cfg); got != 1 {
		t.Fatalf("expected at least one lane, got %d", got)
	}
}
