package main

import (
	"github.com/spf13/cobra"

	"scrollsub/internal/config"
	"scrollsub/internal/convert"
	"scrollsub/internal/layout"
)

// layoutFlags are per-invocation overrides of the [layout] section.
type layoutFlags struct {
	title        string
	maxTracks    int
	screenWidth  float64
	screenHeight float64
}

func (f *layoutFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.title, "title", "", "Script title (defaults to layout.title or the input file name)")
	cmd.Flags().IntVar(&f.maxTracks, "max-tracks", 0, "Number of lanes; 0 fits lanes to the screen height")
	cmd.Flags().Float64Var(&f.screenWidth, "screen-width", 0, "Canvas width in pixels")
	cmd.Flags().Float64Var(&f.screenHeight, "screen-height", 0, "Canvas height in pixels")
}

// resolve merges the configured layout with any flags the user set. Lane
// auto-fitting runs after the overrides so a new height changes the fit.
func (f *layoutFlags) resolve(cmd *cobra.Command, cfg *config.Config, source string) layout.Config {
	lc := cfg.LayoutConfig()
	tracks := cfg.Layout.MaxTracks

	flags := cmd.Flags()
	if flags.Changed("title") {
		lc.Title = f.title
	}
	if flags.Changed("max-tracks") {
		tracks = f.maxTracks
	}
	if flags.Changed("screen-width") {
		lc.ScreenWidth = f.screenWidth
	}
	if flags.Changed("screen-height") {
		lc.ScreenHeight = f.screenHeight
	}

	lc.MaxTracks = tracks
	if tracks == 0 {
		lc.MaxTracks = layout.FitTracks(lc)
	}
	if lc.Title == "" {
		lc.Title = convert.DeriveTitle(source)
	}
	return lc
}

func newConverter(cmd *cobra.Command, ctx *commandContext, flags *layoutFlags, source string) (*convert.Converter, *config.Config, error) {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return nil, nil, err
	}
	logger, err := ctx.ensureLogger()
	if err != nil {
		return nil, nil, err
	}
	converter, err := convert.New(flags.resolve(cmd, cfg, source), logger, convert.WithNormalization(cfg.Text.Normalize))
	if err != nil {
		return nil, nil, err
	}
	return converter, cfg, nil
}
