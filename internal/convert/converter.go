package convert

import (
	"cmp"
	"log/slog"
	"slices"

	"scrollsub/internal/ass"
	"scrollsub/internal/danmaku"
	"scrollsub/internal/layout"
	"scrollsub/internal/logging"
)

// Skip records a comment that produced no dialogue line.
type Skip struct {
	Event  danmaku.Event
	Reason layout.SkipReason
}

// Result is the outcome of one conversion.
type Result struct {
	Document   string
	Placements []layout.Placement
	Skipped    []Skip
	Total      int
	Placed     int
	Overflowed int
}

// Option customizes a Converter.
type Option func(*Converter)

// WithNormalization selects the Unicode form applied to comment text before
// layout. Unknown forms leave text untouched.
func WithNormalization(form string) Option {
	return func(c *Converter) {
		c.normalize = form
	}
}

// Converter renders comment batches with a fixed layout.
type Converter struct {
	cfg       layout.Config
	metrics   layout.Metrics
	normalize string
	logger    *slog.Logger
}

// New validates cfg and returns a converter bound to it. Validation failures
// are returned as *ConfigError.
func New(cfg layout.Config, logger *slog.Logger, opts ...Option) (*Converter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, &ConfigError{Err: err}
	}
	c := &Converter{
		cfg:     cfg,
		metrics: layout.NewMetrics(cfg),
		logger:  logging.NewComponentLogger(logger, "convert"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Metrics returns the layout constants the converter renders with.
func (c *Converter) Metrics() layout.Metrics {
	return c.metrics
}

// Title returns the script title the converter writes.
func (c *Converter) Title() string {
	return c.cfg.Title
}

// Convert lays out events and renders the script. The events slice is not
// modified. A batch where every comment is skipped still yields a
// header-only document.
func (c *Converter) Convert(events []danmaku.Event) (*Result, error) {
	if len(events) == 0 {
		return nil, ErrEmptyInput
	}

	sorted := make([]danmaku.Event, len(events))
	copy(sorted, events)
	slices.SortStableFunc(sorted, func(a, b danmaku.Event) int {
		return cmp.Compare(a.StartMS, b.StartMS)
	})
	normalizeText(sorted, c.normalize)

	allocation := layout.Allocate(sorted, c.metrics)
	script := c.buildScript(allocation.Placements)

	result := &Result{
		Document:   script.Render(),
		Placements: allocation.Placements,
		Skipped:    make([]Skip, 0, len(allocation.Skipped)),
		Total:      len(events),
		Placed:     len(allocation.Placements),
		Overflowed: allocation.Overflowed(),
	}
	for _, skip := range allocation.Skipped {
		result.Skipped = append(result.Skipped, Skip{Event: skip.Event, Reason: skip.Reason})
		c.logger.Debug("comment skipped",
			logging.String(logging.FieldEventType, "comment_skipped"),
			logging.Int64("start_ms", skip.Event.StartMS),
			logging.Int64("duration_ms", skip.Event.DurationMS),
			logging.String("reason", string(skip.Reason)),
		)
	}
	if result.Overflowed > 0 {
		logging.WarnWithContext(c.logger, "lanes exhausted; comments overlap", "lane_overflow",
			logging.Int("overflowed_events", result.Overflowed),
			logging.Int("max_tracks", c.metrics.Tracks),
			logging.String(logging.FieldErrorHint, "raise layout.max_tracks or lower font_size_multiplier"),
			logging.String(logging.FieldImpact, "some comments are drawn over earlier ones"),
		)
	}
	c.logger.Debug("conversion finished",
		logging.String(logging.FieldEventType, "conversion_finished"),
		logging.Int("total_events", result.Total),
		logging.Int("placed_events", result.Placed),
		logging.Int("skipped_events", len(result.Skipped)),
	)
	return result, nil
}

func (c *Converter) buildScript(placements []layout.Placement) *ass.Script {
	script := &ass.Script{
		Title:    c.cfg.Title,
		PlayResX: c.metrics.ScreenWidth,
		PlayResY: c.metrics.ScreenHeight,
		Style: ass.Style{
			Name:     ass.DefaultStyleName,
			FontName: c.cfg.FontFamily,
			FontSize: c.metrics.FontSize,
		},
		Events: make([]ass.Dialogue, 0, len(placements)),
	}
	for _, p := range placements {
		script.Events = append(script.Events, ass.Dialogue{
			StartMS:  p.StartMS,
			EndMS:    p.EndMS,
			StartX:   p.StartX,
			EndX:     p.EndX,
			Y:        p.Y,
			FontSize: p.FontSize,
			Color:    p.Event.Style.Color,
			Text:     p.Event.Text,
		})
	}
	return script
}

// Convert renders events with cfg using a throwaway Converter.
func Convert(events []danmaku.Event, cfg layout.Config) (string, error) {
	converter, err := New(cfg, nil)
	if err != nil {
		return "", err
	}
	result, err := converter.Convert(events)
	if err != nil {
		return "", err
	}
	return result.Document, nil
}
