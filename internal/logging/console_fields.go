package logging

import (
	"log/slog"
	"strings"
)

type infoField struct {
	label string
	value string
}

// Keys shown first, in this order, on info lines.
var infoHighlightKeys = []string{
	FieldEventType,
	FieldSource,
	"output",
	"total_events",
	"placed_events",
	"skipped_events",
	"overflowed_events",
	"max_tracks",
	"reason",
	"error",
	FieldErrorHint,
	FieldImpact,
}

const maxInfoValueLen = 120

// selectInfoFields orders attributes for info output and counts the ones
// hidden as debug-only or too long.
func selectInfoFields(attrs []kv) ([]infoField, int) {
	if len(attrs) == 0 {
		return nil, 0
	}
	used := make([]bool, len(attrs))
	result := make([]infoField, 0, len(attrs))
	hidden := 0

	add := func(idx int) {
		used[idx] = true
		attr := attrs[idx]
		if isDebugOnlyKey(attr.key) {
			hidden++
			return
		}
		value := formatInfoValue(attr.value)
		if len(value) > maxInfoValueLen && attr.key != "error" {
			hidden++
			return
		}
		result = append(result, infoField{label: displayLabel(attr.key), value: value})
	}

	for _, key := range infoHighlightKeys {
		for idx, attr := range attrs {
			if !used[idx] && attr.key == key {
				add(idx)
				break
			}
		}
	}
	for idx := range attrs {
		if !used[idx] {
			add(idx)
		}
	}
	return result, hidden
}

func formatInfoValue(v slog.Value) string {
	v = v.Resolve()
	if v.Kind() == slog.KindBool {
		if v.Bool() {
			return "yes"
		}
		return "no"
	}
	return formatValue(v)
}

func isDebugOnlyKey(key string) bool {
	switch key {
	case "", FieldRunID, FieldTrack, "document_sha256":
		return true
	}
	return strings.HasSuffix(key, "_px")
}

func displayLabel(key string) string {
	switch key {
	case FieldEventType:
		return "Event"
	case FieldErrorHint:
		return "Hint"
	case FieldSource:
		return "Source"
	case "total_events":
		return "Comments"
	case "placed_events":
		return "Placed"
	case "skipped_events":
		return "Skipped"
	case "overflowed_events":
		return "Overflowed"
	case "max_tracks":
		return "Lanes"
	default:
		return titleizeKey(key)
	}
}

func titleizeKey(key string) string {
	parts := strings.FieldsFunc(key, func(r rune) bool {
		return r == '_' || r == '-' || r == '.'
	})
	for i, part := range parts {
		lower := strings.ToLower(part)
		parts[i] = strings.ToUpper(lower[:1]) + lower[1:]
	}
	return strings.Join(parts, " ")
}
