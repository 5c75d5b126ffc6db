package layout

import "math"

// GlyphWidthRatio approximates a full-width glyph's advance as a fraction of
// the font size.
const GlyphWidthRatio = 0.6

// Metrics holds the rendering constants derived from a Config.
type Metrics struct {
	ScreenWidth        float64
	ScreenHeight       float64
	BaseFontSize       float64
	FontSizeMultiplier float64
	FontSize           float64
	LaneHeight         float64
	TopMargin          float64
	Tracks             int
}

// NewMetrics derives layout constants from cfg. cfg is expected to be valid.
func NewMetrics(cfg Config) Metrics {
	fontSize := cfg.BaseFontSize * cfg.FontSizeMultiplier
	return Metrics{
		ScreenWidth:        cfg.ScreenWidth,
		ScreenHeight:       cfg.ScreenHeight,
		BaseFontSize:       cfg.BaseFontSize,
		FontSizeMultiplier: cfg.FontSizeMultiplier,
		FontSize:           fontSize,
		LaneHeight:         fontSize * cfg.LineHeightRatio,
		TopMargin:          cfg.TopMargin,
		Tracks:             cfg.MaxTracks,
	}
}

// EffectiveFontSize applies the multiplier to an event's font size, falling
// back to the base size when the event has none.
func (m Metrics) EffectiveFontSize(eventFontSize float64) float64 {
	size := eventFontSize
	if size <= 0 {
		size = m.BaseFontSize
	}
	return size * m.FontSizeMultiplier
}

// LaneCenter returns the vertical centre of lane.
func (m Metrics) LaneCenter(lane int) float64 {
	return m.TopMargin + float64(lane)*m.LaneHeight + m.LaneHeight/2
}

// FitTracks returns how many whole lanes fit between the top margin and the
// bottom of the screen, never less than one. MaxTracks in cfg is ignored.
func FitTracks(cfg Config) int {
	laneHeight := cfg.BaseFontSize * cfg.FontSizeMultiplier * cfg.LineHeightRatio
	if !(laneHeight > 0) {
		return 1
	}
	usable := cfg.ScreenHeight - cfg.TopMargin
	lanes := int(math.Floor(usable / laneHeight))
	if lanes < 1 {
		return 1
	}
	return lanes
}
