package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oukeidos/withseekbar/internal/geometry"
)

func newLayoutCmd() *cobra.Command {
	opts := barOptions{}
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the track, progress and thumb rectangles for a view size",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, &opts)
			if err != nil {
				return err
			}
			l := geometry.Compute(opts.width, opts.height, cfg.Progress, cfg.Max, cfg.ThumbSizeRatio, cfg.ReverseProgress)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "orientation: %s\n", l.Orientation)
			fmt.Fprintf(out, "progress:    %d/%d (reverse=%t)\n", cfg.Progress, cfg.Max, cfg.ReverseProgress)
			fmt.Fprintf(out, "radius:      %s\n", num(l.Radius))
			fmt.Fprintf(out, "available:   %s\n", num(l.Available))
			fmt.Fprintf(out, "filled:      %s\n", num(l.ProgressLength))
			fmt.Fprintln(out, formatRect("background", l.Background))
			fmt.Fprintln(out, formatRect("fill", l.Progress))
			fmt.Fprintln(out, formatRect("thumb", l.Thumb))
			return nil
		},
	}
	addBarFlags(cmd, &opts)
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	return cmd
}
