package ass

import (
	"io"
	"math"
	"strconv"
	"strings"
)

// DefaultStyleName names the single style every dialogue line references.
const DefaultStyleName = "Danmaku"

const (
	styleFormat = "Format: Name, Fontname, Fontsize, PrimaryColour, SecondaryColour, OutlineColour, BackColour, Bold, Italic, Underline, StrikeOut, ScaleX, ScaleY, Spacing, Angle, BorderStyle, Outline, Shadow, Alignment, MarginL, MarginR, MarginV, Encoding"
	eventFormat = "Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text"

	outlineColour = "&H00000000"
	backColour    = "&H00000000"
	outlineWidth  = 1
	shadowDepth   = 0
	// Motion coordinates address the glyph centre.
	alignmentMiddleCenter = 5
)

// Style carries the configurable columns of the single script style. All
// other columns are fixed.
type Style struct {
	Name     string
	FontName string
	FontSize float64
}

// Dialogue is one horizontally moving comment line.
type Dialogue struct {
	StartMS  int64
	EndMS    int64
	StartX   float64
	EndX     float64
	Y        float64
	FontSize float64
	Color    string
	Text     string
}

// Script is a complete ASS document: header, style, and dialogue lines in
// the order they should be written.
type Script struct {
	Title    string
	PlayResX float64
	PlayResY float64
	Style    Style
	Events   []Dialogue
}

// Render returns the script text.
func (s *Script) Render() string {
	var b strings.Builder
	b.Grow(512 + len(s.Events)*96)
	s.writeHeader(&b)
	for _, event := range s.Events {
		s.writeDialogue(&b, event)
	}
	return b.String()
}

// WriteTo writes the rendered script to w.
func (s *Script) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.Render())
	return int64(n), err
}

func (s *Script) styleName() string {
	if name := strings.TrimSpace(s.Style.Name); name != "" {
		return name
	}
	return DefaultStyleName
}

func (s *Script) writeHeader(b *strings.Builder) {
	b.WriteString("[Script Info]\n")
	b.WriteString("Title: ")
	b.WriteString(singleLine(s.Title))
	b.WriteString("\nScriptType: v4.00+\n")
	b.WriteString("WrapStyle: 2\n")
	b.WriteString("ScaledBorderAndShadow: yes\n")
	b.WriteString("PlayResX: ")
	b.WriteString(FormatNumber(s.PlayResX))
	b.WriteString("\nPlayResY: ")
	b.WriteString(FormatNumber(s.PlayResY))
	b.WriteString("\n\n")

	b.WriteString("[V4+ Styles]\n")
	b.WriteString(styleFormat)
	b.WriteString("\nStyle: ")
	columns := []string{
		s.styleName(),
		s.Style.FontName,
		FormatNumber(s.Style.FontSize),
		DefaultColor,
		DefaultColor,
		outlineColour,
		backColour,
		"0", "0", "0", "0",
		"100", "100",
		"0", "0",
		"1",
		strconv.Itoa(outlineWidth),
		strconv.Itoa(shadowDepth),
		strconv.Itoa(alignmentMiddleCenter),
		"0", "0", "0",
		"1",
	}
	b.WriteString(strings.Join(columns, ","))
	b.WriteString("\n\n")

	b.WriteString("[Events]\n")
	b.WriteString(eventFormat)
	b.WriteByte('\n')
}

func (s *Script) writeDialogue(b *strings.Builder, d Dialogue) {
	y := FormatNumber(d.Y)
	b.WriteString("Dialogue: 0,")
	b.WriteString(FormatTimecode(d.StartMS))
	b.WriteByte(',')
	b.WriteString(FormatTimecode(d.EndMS))
	b.WriteByte(',')
	b.WriteString(s.styleName())
	b.WriteString(",,0,0,0,,{\\move(")
	b.WriteString(FormatNumber(d.StartX))
	b.WriteByte(',')
	b.WriteString(y)
	b.WriteByte(',')
	b.WriteString(FormatNumber(d.EndX))
	b.WriteByte(',')
	b.WriteString(y)
	b.WriteString(")\\c")
	b.WriteString(HexToColor(d.Color))
	b.WriteString("&\\fs")
	b.WriteString(FormatNumber(d.FontSize))
	b.WriteByte('}')
	b.WriteString(singleLine(d.Text))
	b.WriteByte('\n')
}

var lineBreaks = strings.NewReplacer("\r\n", `\N`, "\n", `\N`, "\r", `\N`)

// singleLine keeps every value on one physical line; the format is line
// oriented and a raw newline would start a bogus record.
func singleLine(value string) string {
	return lineBreaks.Replace(value)
}

// FormatNumber prints v rounded to two decimals without trailing zeros.
func FormatNumber(v float64) string {
	rounded := math.Round(v*100) / 100
	if rounded == 0 {
		rounded = 0 // drop negative zero
	}
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}
