package ass

import "strings"

// DefaultColor is opaque white, used whenever a colour is missing or not in
// #RRGGBB form.
const DefaultColor = "&H00FFFFFF"

// HexToColor converts #RRGGBB into the script's &H00BBGGRR literal.
//
// Only the leading '#' is checked. Pairs are sliced by position and missing
// pairs come out empty, so malformed input degrades into a short literal
// instead of an error.
func HexToColor(hex string) string {
	if !strings.HasPrefix(hex, "#") {
		return DefaultColor
	}
	red := hexPair(hex, 1)
	green := hexPair(hex, 3)
	blue := hexPair(hex, 5)
	return "&H00" + strings.ToUpper(blue+green+red)
}

func hexPair(value string, start int) string {
	if start >= len(value) {
		return ""
	}
	end := min(start+2, len(value))
	return value[start:end]
}
