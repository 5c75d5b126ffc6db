package main

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"scrollsub/internal/ass"
	"scrollsub/internal/convert"
	"scrollsub/internal/layout"
)

const inspectTextWidth = 32

type placementView struct {
	Track    int     `json:"track"`
	Start    string  `json:"start"`
	End      string  `json:"end"`
	ExitMS   int64   `json:"exit_ms"`
	Y        float64 `json:"y"`
	FontSize float64 `json:"font_size"`
	Overflow bool    `json:"overflow"`
	Text     string  `json:"text"`
}

type skipView struct {
	StartMS int64  `json:"start_ms"`
	Reason  string `json:"reason"`
	Text    string `json:"text"`
}

type inspectView struct {
	Tracks     int             `json:"tracks"`
	LaneHeight float64         `json:"lane_height"`
	Placements []placementView `json:"placements"`
	Skipped    []skipView      `json:"skipped"`
}

func newInspectCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool
	var flags layoutFlags

	cmd := &cobra.Command{
		Use:   "inspect <events.json|->",
		Short: "Show the lane assignment for a comment file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := strings.TrimSpace(args[0])
			converter, _, err := newConverter(cmd, ctx, &flags, source)
			if err != nil {
				return err
			}
			events, err := readEvents(cmd, source)
			if err != nil {
				return err
			}
			result, err := converter.Convert(events)
			if err != nil {
				return fmt.Errorf("inspect %s: %w", source, err)
			}

			view := buildInspectView(converter.Metrics(), result)
			if jsonOutput {
				return writeJSON(cmd, view)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Lanes: %d (height %s px)\n", view.Tracks, ass.FormatNumber(view.LaneHeight))
			if len(view.Placements) > 0 {
				fmt.Fprintln(out, renderPlacementTable(view.Placements))
			} else {
				fmt.Fprintln(out, "No comments placed.")
			}
			if len(view.Skipped) > 0 {
				fmt.Fprintln(out, renderSkipTable(view.Skipped))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	flags.register(cmd)
	return cmd
}

func buildInspectView(m layout.Metrics, result *convert.Result) inspectView {
	view := inspectView{
		Tracks:     m.Tracks,
		LaneHeight: m.LaneHeight,
		Placements: make([]placementView, 0, len(result.Placements)),
		Skipped:    make([]skipView, 0, len(result.Skipped)),
	}
	for _, p := range result.Placements {
		view.Placements = append(view.Placements, placementView{
			Track:    p.Track,
			Start:    ass.FormatTimecode(p.StartMS),
			End:      ass.FormatTimecode(p.EndMS),
			ExitMS:   p.ExitMS,
			Y:        p.Y,
			FontSize: p.FontSize,
			Overflow: p.Overflow,
			Text:     p.Event.Text,
		})
	}
	for _, s := range result.Skipped {
		view.Skipped = append(view.Skipped, skipView{
			StartMS: s.Event.StartMS,
			Reason:  string(s.Reason),
			Text:    s.Event.Text,
		})
	}
	return view
}

func renderPlacementTable(rows []placementView) string {
	headers := []string{"Lane", "Start", "End", "Free At", "Overlap", "Text"}
	aligns := []columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft, alignLeft}
	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells = append(cells, []string{
			strconv.Itoa(row.Track),
			row.Start,
			row.End,
			ass.FormatTimecode(row.ExitMS),
			yesNo(row.Overflow),
			truncateText(row.Text, inspectTextWidth),
		})
	}
	return renderTable(headers, cells, aligns)
}

func renderSkipTable(rows []skipView) string {
	headers := []string{"Skipped At", "Reason", "Text"}
	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells = append(cells, []string{
			ass.FormatTimecode(row.StartMS),
			row.Reason,
			truncateText(row.Text, inspectTextWidth),
		})
	}
	return renderTable(headers, cells, nil)
}

func truncateText(value string, limit int) string {
	value = strings.ReplaceAll(value, "\n", " ")
	if utf8.RuneCountInString(value) <= limit {
		return value
	}
	runes := []rune(value)
	return string(runes[:limit-1]) + "…"
}
