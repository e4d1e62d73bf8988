package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ivtree/internal/input"
	"github.com/katalvlaran/ivtree/internal/report"
	"github.com/katalvlaran/ivtree/sweep"
)

func rectsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rects <file.yaml>",
		Short: "Report intersecting rectangles",
		Long: `Report every pair of rectangles in the file's "rectangles" section that
overlap or touch. Rectangles sharing only a corner count as intersecting.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.load(args[0])
			if err != nil {
				return err
			}
			a.logger.Info("input loaded", "path", args[0], "rectangles", len(doc.Rectangles))

			start := time.Now()
			pairs, err := sweep.RectangleIntersections(doc.SweepRectangles(), a.sweepOptions(cmd)...)
			if err != nil {
				return fmt.Errorf("rects: %w", err)
			}
			a.logger.Info("sweep finished", "pairs", len(pairs), "elapsed", time.Since(start))

			return report.Pairs(cmd.OutOrStdout(), pairs, a.cfg.Format(), a.cfg.Output.MaxRows)
		},
	}
}

func segmentsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "segments <file.yaml>",
		Short: "Report crossings of horizontal and vertical segments",
		Long: `Report every (horizontal, vertical) pair of segments in the file's
"segments" section that cross or touch. Parallel segments are never paired.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.load(args[0])
			if err != nil {
				return err
			}
			a.logger.Info("input loaded", "path", args[0], "segments", len(doc.Segments))

			start := time.Now()
			pairs, err := sweep.OrthogonalIntersections(doc.SweepSegments(), a.sweepOptions(cmd)...)
			if err != nil {
				return fmt.Errorf("segments: %w", err)
			}
			a.logger.Info("sweep finished", "pairs", len(pairs), "elapsed", time.Since(start))

			return report.Pairs(cmd.OutOrStdout(), pairs, a.cfg.Format(), a.cfg.Output.MaxRows)
		},
	}
}

func (a *app) load(path string) (*input.Document, error) {
	doc, err := input.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load input: %w", err)
	}

	return doc, nil
}

// sweepOptions ties the sweep to the command context and logs each pair at
// debug level.
func (a *app) sweepOptions(cmd *cobra.Command) []sweep.Option {
	return []sweep.Option{
		sweep.WithContext(cmd.Context()),
		sweep.WithOnIntersection(func(p sweep.Pair) {
			a.logger.Debug("intersection", "a", p.A, "b", p.B)
		}),
	}
}
