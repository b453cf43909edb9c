package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oukeidos/withseekbar/internal/seekbar"
)

type dragOptions struct {
	bar   barOptions
	from  string
	moves []string
}

func newDragCmd() *cobra.Command {
	opts := dragOptions{}
	cmd := &cobra.Command{
		Use:   "drag",
		Short: "Replay a press, moves and release and print the callbacks",
		Example: `  seekbar drag --from 20,20 --to 180,20
  seekbar drag --width 40 --height 200 --from 20,180 --to 20,100 --to 20,20`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDrag(cmd, &opts)
		},
	}
	addBarFlags(cmd, &opts.bar)
	cmd.Flags().StringVar(&opts.from, "from", "", "Press position as x,y (required)")
	cmd.Flags().StringArrayVar(&opts.moves, "to", nil, "Move position as x,y (repeatable)")
	_ = cmd.MarkFlagRequired("from")
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	return cmd
}

func runDrag(cmd *cobra.Command, opts *dragOptions) error {
	cfg, err := resolveConfig(cmd, &opts.bar)
	if err != nil {
		return err
	}
	events, err := dragEvents(opts.from, opts.moves)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	m := seekbar.New(cfg)
	m.Resize(opts.bar.width, opts.bar.height)
	m.OnProgressChanged = func(progress, max int) {
		fmt.Fprintf(out, "  changed    %d/%d\n", progress, max)
	}
	m.OnProgressConfirmed = func(progress, max int) {
		fmt.Fprintf(out, "  confirmed  %d/%d\n", progress, max)
	}

	fmt.Fprintf(out, "start %d/%d\n", m.Progress(), m.Max())
	for _, ev := range events {
		consumed := m.Handle(ev)
		fmt.Fprintf(out, "%-6s (%s,%s) consumed=%t\n", ev.Action, num(ev.X), num(ev.Y), consumed)
	}
	fmt.Fprintf(out, "final %d/%d\n", m.Progress(), m.Max())
	return nil
}

func dragEvents(from string, moves []string) ([]seekbar.Event, error) {
	x, y, err := parsePoint(from)
	if err != nil {
		return nil, err
	}
	events := []seekbar.Event{{Action: seekbar.ActionDown, X: x, Y: y}}
	for _, mv := range moves {
		if x, y, err = parsePoint(mv); err != nil {
			return nil, err
		}
		events = append(events, seekbar.Event{Action: seekbar.ActionMove, X: x, Y: y})
	}
	return append(events, seekbar.Event{Action: seekbar.ActionUp, X: x, Y: y}), nil
}
