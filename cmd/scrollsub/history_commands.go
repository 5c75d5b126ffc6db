package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"scrollsub/internal/history"
)

type runView struct {
	ID         string `json:"id"`
	CreatedAt  string `json:"created_at"`
	Source     string `json:"source"`
	Output     string `json:"output"`
	Title      string `json:"title"`
	Total      int    `json:"total_events"`
	Placed     int    `json:"placed_events"`
	Skipped    int    `json:"skipped_events"`
	Overflowed int    `json:"overflowed_events"`
	MaxTracks  int    `json:"max_tracks"`
	SHA256     string `json:"document_sha256"`
}

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var jsonOutput bool

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded conversions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withHistory(func(store *history.Store) error {
				runs, err := store.List(cmd.Context(), limit)
				if err != nil {
					return err
				}
				views := make([]runView, 0, len(runs))
				for _, run := range runs {
					views = append(views, toRunView(run))
				}
				if jsonOutput {
					return writeJSON(cmd, views)
				}
				out := cmd.OutOrStdout()
				if len(views) == 0 {
					fmt.Fprintln(out, "No conversions recorded.")
					return nil
				}
				fmt.Fprintln(out, renderHistoryTable(views))
				return nil
			})
		},
	}
	historyCmd.Flags().IntVarP(&limit, "limit", "n", history.DefaultListLimit, "Maximum number of runs to show")
	historyCmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	historyCmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded conversions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withHistory(func(store *history.Store) error {
				removed, err := store.Clear(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d conversion(s)\n", removed)
				return nil
			})
		},
	})

	return historyCmd
}

func toRunView(run *history.Run) runView {
	return runView{
		ID:         run.ID,
		CreatedAt:  run.CreatedAt.Format(time.RFC3339),
		Source:     run.Source,
		Output:     run.Output,
		Title:      run.Title,
		Total:      run.TotalEvents,
		Placed:     run.PlacedEvents,
		Skipped:    run.SkippedEvents,
		Overflowed: run.Overflowed,
		MaxTracks:  run.MaxTracks,
		SHA256:     run.DocumentSHA256,
	}
}

func renderHistoryTable(rows []runView) string {
	headers := []string{"ID", "When", "Source", "Output", "Placed", "Skipped", "Overlap", "Lanes"}
	aligns := []columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight}
	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		id := row.ID
		if len(id) > 8 {
			id = id[:8]
		}
		cells = append(cells, []string{
			id,
			row.CreatedAt,
			row.Source,
			row.Output,
			fmt.Sprintf("%d/%d", row.Placed, row.Total),
			strconv.Itoa(row.Skipped),
			strconv.Itoa(row.Overflowed),
			strconv.Itoa(row.MaxTracks),
		})
	}
	return renderTable(headers, cells, aligns)
}
