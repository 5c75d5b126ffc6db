package convert

import (
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"scrollsub/internal/config"
	"scrollsub/internal/danmaku"
)

// DefaultTitle is used when no title can be derived from the input name.
const DefaultTitle = "Danmaku"

// normalizeText rewrites event text in place using the named Unicode form.
func normalizeText(events []danmaku.Event, form string) {
	var f norm.Form
	switch form {
	case config.NormalizeNFC:
		f = norm.NFC
	case config.NormalizeNFKC:
		f = norm.NFKC
	default:
		return
	}
	for i := range events {
		events[i].Text = f.String(events[i].Text)
	}
}

// DeriveTitle builds a script title from an input file name, e.g.
// "live_stream-2024.json" becomes "Live Stream 2024". Stdin and names with
// no letters or digits yield DefaultTitle.
func DeriveTitle(sourcePath string) string {
	if sourcePath == "" || sourcePath == "-" {
		return DefaultTitle
	}
	base := filepath.Base(sourcePath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	words := strings.FieldsFunc(base, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	if len(words) == 0 {
		return DefaultTitle
	}
	return cases.Title(language.Und).String(strings.Join(words, " "))
}
