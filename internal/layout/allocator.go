package layout

import (
	"errors"
	"fmt"
	"math"
	"unicode/utf8"

	"scrollsub/internal/danmaku"
)

// SkipReason classifies why a comment produced no placement.
type SkipReason string

const (
	SkipNonPositiveDuration SkipReason = "non_positive_duration"
	SkipEmptyText           SkipReason = "empty_text"
	SkipNonPositiveSpeed    SkipReason = "non_positive_speed"
)

// SkipError reports a comment the allocator declined to place. It is a
// per-comment outcome, not a conversion failure.
type SkipError struct {
	Reason SkipReason
	Event  danmaku.Event
}

func (e *SkipError) Error() string {
	return fmt.Sprintf("skip comment at %dms: %s", e.Event.StartMS, e.Reason)
}

// Placement is the scheduling decision for one comment plus the motion
// geometry needed to render it.
type Placement struct {
	Event     danmaku.Event
	Track     int
	FontSize  float64
	TextWidth float64
	StartX    float64
	EndX      float64
	Y         float64
	StartMS   int64
	EndMS     int64
	// ExitMS is when the lane became available again, rounded up.
	ExitMS int64
	// Overflow marks placements made onto a lane that was still occupied.
	Overflow bool
}

// Allocator holds per-lane availability for a single conversion.
type Allocator struct {
	metrics Metrics
	freeAt  []float64
}

// NewAllocator returns an allocator with every lane free at time zero.
func NewAllocator(m Metrics) *Allocator {
	tracks := m.Tracks
	if tracks < 1 {
		tracks = 1
	}
	return &Allocator{metrics: m, freeAt: make([]float64, tracks)}
}

// Place assigns ev to a lane. Events must arrive in ascending StartMS order.
// A *SkipError is returned for comments that cannot scroll.
func (a *Allocator) Place(ev danmaku.Event) (Placement, error) {
	if ev.DurationMS <= 0 {
		return Placement{}, &SkipError{Reason: SkipNonPositiveDuration, Event: ev}
	}
	if ev.Text == "" {
		return Placement{}, &SkipError{Reason: SkipEmptyText, Event: ev}
	}

	fontSize := a.metrics.EffectiveFontSize(ev.Style.FontSize)
	textWidth := float64(utf8.RuneCountInString(ev.Text)) * fontSize * GlyphWidthRatio
	speed := (a.metrics.ScreenWidth + textWidth) / float64(ev.DurationMS)
	if !(speed > 0) {
		return Placement{}, &SkipError{Reason: SkipNonPositiveSpeed, Event: ev}
	}
	clearMS := textWidth / speed

	start := float64(ev.StartMS)
	lane, overflow := a.selectLane(start)
	freeAt := start + clearMS
	a.freeAt[lane] = freeAt

	return Placement{
		Event:     ev,
		Track:     lane,
		FontSize:  fontSize,
		TextWidth: textWidth,
		StartX:    a.metrics.ScreenWidth + textWidth/2,
		EndX:      -textWidth / 2,
		Y:         a.metrics.LaneCenter(lane),
		StartMS:   ev.StartMS,
		EndMS:     ev.EndMS(),
		ExitMS:    int64(math.Ceil(freeAt)),
		Overflow:  overflow,
	}, nil
}

// selectLane returns the first lane free at start. When none is, the lane
// that frees up earliest is taken and overflow is reported.
func (a *Allocator) selectLane(start float64) (int, bool) {
	for lane, free := range a.freeAt {
		if free <= start {
			return lane, false
		}
	}
	earliest := 0
	for lane := 1; lane < len(a.freeAt); lane++ {
		if a.freeAt[lane] < a.freeAt[earliest] {
			earliest = lane
		}
	}
	return earliest, true
}

// FreeAt returns a copy of the per-lane availability times.
func (a *Allocator) FreeAt() []float64 {
	out := make([]float64, len(a.freeAt))
	copy(out, a.freeAt)
	return out
}

// Allocation is the outcome of placing a sorted batch of comments.
type Allocation struct {
	Placements []Placement
	Skipped    []*SkipError
}

// Overflowed counts placements made under lane exhaustion.
func (a Allocation) Overflowed() int {
	count := 0
	for _, p := range a.Placements {
		if p.Overflow {
			count++
		}
	}
	return count
}

// Allocate places events, which must already be sorted by StartMS, with a
// fresh allocator.
func Allocate(events []danmaku.Event, m Metrics) Allocation {
	allocator := NewAllocator(m)
	result := Allocation{Placements: make([]Placement, 0, len(events))}
	for _, ev := range events {
		placement, err := allocator.Place(ev)
		if err != nil {
			var skip *SkipError
			if errors.As(err, &skip) {
				result.Skipped = append(result.Skipped, skip)
			}
			continue
		}
		result.Placements = append(result.Placements, placement)
	}
	return result
}
