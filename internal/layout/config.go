package layout

import (
	"errors"
	"fmt"
	"math"
)

// Config describes the canvas and text geometry for one conversion.
type Config struct {
	Title              string
	ScreenWidth        float64
	ScreenHeight       float64
	FontFamily         string
	BaseFontSize       float64
	FontSizeMultiplier float64
	LineHeightRatio    float64
	TopMargin          float64
	MaxTracks          int
}

type namedValue struct {
	key   string
	value float64
}

// Validate reports the first field that cannot drive a layout.
func (c Config) Validate() error {
	if err := ensurePositive(
		namedValue{"screen_width", c.ScreenWidth},
		namedValue{"screen_height", c.ScreenHeight},
		namedValue{"base_font_size", c.BaseFontSize},
		namedValue{"font_size_multiplier", c.FontSizeMultiplier},
		namedValue{"line_height_ratio", c.LineHeightRatio},
	); err != nil {
		return err
	}
	if !(c.TopMargin >= 0) || math.IsInf(c.TopMargin, 0) {
		return errors.New("top_margin must be a finite number >= 0")
	}
	if c.MaxTracks < 1 {
		return errors.New("max_tracks must be at least 1")
	}
	return nil
}

func ensurePositive(values ...namedValue) error {
	for _, v := range values {
		if !(v.value > 0) || math.IsInf(v.value, 0) {
			return fmt.Errorf("%s must be a finite positive number", v.key)
		}
	}
	return nil
}
