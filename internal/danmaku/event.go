package danmaku

// Style holds the optional per-comment presentation overrides. A FontSize of
// zero or below and an empty Color mean "not supplied".
type Style struct {
	FontSize float64 `json:"fontSize,omitempty"`
	Color    string  `json:"color,omitempty"`
}

// Event is one timestamped comment.
type Event struct {
	StartMS    int64  `json:"start_ms"`
	DurationMS int64  `json:"duration_ms"`
	Text       string `json:"text"`
	Style      Style  `json:"style"`
}

// EndMS returns the time the comment leaves the screen.
func (e Event) EndMS() int64 {
	return e.StartMS + e.DurationMS
}

// HasFontSize reports whether the comment overrides the base font size.
func (e Event) HasFontSize() bool {
	return e.Style.FontSize > 0
}
