package ass

import "fmt"

const (
	centisPerSecond = 100
	centisPerMinute = 60 * centisPerSecond
	centisPerHour   = 60 * centisPerMinute
)

// FormatTimecode renders a millisecond offset as H:MM:SS.CC. Negative input
// is clamped to zero. Centiseconds are rounded half-up; a remainder that
// rounds to a full second carries into the seconds field.
func FormatTimecode(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	centis := ms/10 + (ms%10+5)/10
	hours := centis / centisPerHour
	centis -= hours * centisPerHour
	minutes := centis / centisPerMinute
	centis -= minutes * centisPerMinute
	seconds := centis / centisPerSecond
	centis -= seconds * centisPerSecond
	return fmt.Sprintf("%d:%02d:%02d.%02d", hours, minutes, seconds, centis)
}
