package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/netisu/lighthouse/diorama"
	"github.com/netisu/lighthouse/tower"
	"github.com/spf13/cobra"
)

func newStatsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print the tier table, beam counts and mesh totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.build(cmd)
			if err != nil {
				return err
			}
			return writeStats(cmd.OutOrStdout(), d)
		},
	}
	addSceneFlags(cmd)
	return cmd
}

func writeStats(out io.Writer, d *diorama.Diorama) error {
	l := d.Lattice
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "TIER\tHEIGHT\tRADIUS")
	for _, t := range l.Tiers {
		fmt.Fprintf(tw, "%d\t%.3f\t%.3f\n", t.Index, t.Height, t.Radius)
	}
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "BEAM KIND\tCOUNT")
	for _, k := range tower.Kinds() {
		fmt.Fprintf(tw, "%s\t%d\n", k, l.Count(k))
	}
	fmt.Fprintf(tw, "total\t%d\n", len(l.Beams))
	fmt.Fprintf(tw, "skipped\t%d\n", l.Skipped)
	fmt.Fprintln(tw)

	st := d.Scene.Stats()
	fmt.Fprintf(tw, "objects\t%d\n", st.Objects)
	fmt.Fprintf(tw, "meshes\t%d\n", st.Meshes)
	fmt.Fprintf(tw, "triangles\t%d\n", st.Triangles)
	fmt.Fprintf(tw, "bounds\t%.2f %.2f %.2f .. %.2f %.2f %.2f\n",
		st.Bounds.Min.X, st.Bounds.Min.Y, st.Bounds.Min.Z,
		st.Bounds.Max.X, st.Bounds.Max.Y, st.Bounds.Max.Z)
	return tw.Flush()
}
