package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ivtree/internal/report"
)

func queryCmd(a *app) *cobra.Command {
	var (
		lo, hi int
		first  bool
	)

	cmd := &cobra.Command{
		Use:   "query <file.yaml> --lo N --hi M",
		Short: "List stored intervals overlapping [lo, hi]",
		Long: `Load the file's "intervals" section into an interval tree and list every
entry overlapping the closed query interval [lo, hi], ordered by (lo, hi).
With --first only the label of one overlapping entry is printed.
A query with lo > hi is empty.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.load(args[0])
			if err != nil {
				return err
			}

			tree, err := doc.IntervalTree()
			if err != nil {
				return fmt.Errorf("query: %w", err)
			}
			a.logger.Info("tree built", "path", args[0], "intervals", tree.Len())

			out := cmd.OutOrStdout()
			if first {
				label, ok := tree.FindIntersection(lo, hi)
				if !ok {
					a.logger.Debug("no intersection", "lo", lo, "hi", hi)
					fmt.Fprintf(out, "no interval overlaps [%d, %d]\n", lo, hi)

					return nil
				}
				fmt.Fprintln(out, label)

				return nil
			}

			entries := tree.Intersecting(lo, hi)
			a.logger.Info("query finished", "lo", lo, "hi", hi, "matches", len(entries))

			return report.Entries(out, entries, a.cfg.Format(), a.cfg.Output.MaxRows)
		},
	}

	fs := cmd.Flags()
	fs.IntVar(&lo, flagLo, 0, "query lower bound (inclusive)")
	fs.IntVar(&hi, flagHi, 0, "query upper bound (inclusive)")
	fs.BoolVar(&first, flagFirst, false, "print one overlapping label instead of all entries")
	_ = cmd.MarkFlagRequired(flagLo)
	_ = cmd.MarkFlagRequired(flagHi)

	return cmd
}
