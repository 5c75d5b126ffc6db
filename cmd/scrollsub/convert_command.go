package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"scrollsub/internal/convert"
	"scrollsub/internal/history"
	"scrollsub/internal/logging"
	"scrollsub/internal/output"
)

func newConvertCommand(ctx *commandContext) *cobra.Command {
	var outputPath string
	var noHistory bool
	var flags layoutFlags

	cmd := &cobra.Command{
		Use:   "convert <events.json|->",
		Short: "Convert a comment file into an ASS script",
		Long: "Convert lays out every comment on horizontal lanes and writes an ASS script.\n" +
			"Comments that cannot scroll (zero duration, empty text) are skipped and counted.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := strings.TrimSpace(args[0])
			converter, cfg, err := newConverter(cmd, ctx, &flags, source)
			if err != nil {
				return err
			}
			events, err := readEvents(cmd, source)
			if err != nil {
				return err
			}
			result, err := converter.Convert(events)
			if err != nil {
				return fmt.Errorf("convert %s: %w", source, err)
			}

			target := strings.TrimSpace(outputPath)
			if target == "" || target == "-" {
				if _, err := io.WriteString(cmd.OutOrStdout(), result.Document); err != nil {
					return fmt.Errorf("write document: %w", err)
				}
				target = "-"
			} else if err := output.WriteFile(target, []byte(result.Document)); err != nil {
				return fmt.Errorf("write %s: %w", target, err)
			}

			logger, _ := ctx.ensureLogger()
			logger = logging.NewComponentLogger(logger, "cli")
			if cfg.History.Enabled && !noHistory {
				run, err := recordRun(cmd.Context(), ctx, source, target, converter, result)
				if err != nil {
					logging.WarnWithContext(logger, "history not recorded", "history_write_failed",
						logging.Error(err),
						logging.String(logging.FieldErrorHint, "check paths.state_dir permissions or run with --no-history"),
						logging.String(logging.FieldImpact, "conversion succeeded but is missing from history"),
					)
				} else {
					logger.Debug("conversion recorded", logging.String(logging.FieldRunID, run.ID))
				}
			}

			logger.Info("conversion complete",
				logging.String(logging.FieldEventType, "conversion_complete"),
				logging.String(logging.FieldSource, source),
				logging.String("output", target),
				logging.Int("total_events", result.Total),
				logging.Int("placed_events", result.Placed),
				logging.Int("skipped_events", len(result.Skipped)),
				logging.Int("overflowed_events", result.Overflowed),
			)

			w, colorize := statusWriter(cmd)
			for _, line := range conversionSummary(result, converter.Metrics().Tracks, target, colorize) {
				fmt.Fprintln(w, line)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the script to this file instead of stdout")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "Do not record this run in the history database")
	flags.register(cmd)
	return cmd
}

func recordRun(ctx context.Context, cc *commandContext, source, target string, converter *convert.Converter, result *convert.Result) (*history.Run, error) {
	var recorded *history.Run
	err := cc.withHistory(func(store *history.Store) error {
		var err error
		recorded, err = store.Record(ctx, history.Run{
			Source:         source,
			Output:         target,
			Title:          converter.Title(),
			TotalEvents:    result.Total,
			PlacedEvents:   result.Placed,
			SkippedEvents:  len(result.Skipped),
			Overflowed:     result.Overflowed,
			MaxTracks:      converter.Metrics().Tracks,
			DocumentSHA256: history.DocumentDigest(result.Document),
		})
		return err
	})
	return recorded, err
}

func conversionSummary(result *convert.Result, tracks int, target string, colorize bool) []string {
	lines := renderSectionHeader("Conversion", colorize)
	destination := target
	if destination == "-" {
		destination = "stdout"
	}
	lines = append(lines, renderStatusLine("Output", statusInfo, destination, colorize))

	placedKind := statusOK
	if result.Placed == 0 {
		placedKind = statusWarn
	}
	lines = append(lines, renderStatusLine("Placed", placedKind, fmt.Sprintf("%d of %d comments", result.Placed, result.Total), colorize))

	if skipped := len(result.Skipped); skipped > 0 {
		lines = append(lines, renderStatusLine("Skipped", statusWarn, fmt.Sprintf("%d comments could not scroll", skipped), colorize))
	}
	overflowKind := statusOK
	overflowMsg := fmt.Sprintf("none across %d lanes", tracks)
	if result.Overflowed > 0 {
		overflowKind = statusWarn
		overflowMsg = fmt.Sprintf("%d comments share a busy lane (%d lanes)", result.Overflowed, tracks)
	}
	lines = append(lines, renderStatusLine("Overlap", overflowKind, overflowMsg, colorize))
	return lines
}
