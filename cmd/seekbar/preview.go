package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/oukeidos/withseekbar/internal/geometry"
	"github.com/oukeidos/withseekbar/internal/preview"
)

var terminalWidth = func() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 0
	}
	return w
}

const defaultPreviewCols = 40

func newPreviewCmd() *cobra.Command {
	opts := barOptions{}
	var cols, rows int
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Draw the seek bar in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, &opts)
			if err != nil {
				return err
			}
			if cols <= 0 {
				cols = previewCols(terminalWidth())
			}
			if rows <= 0 {
				rows = previewRows(opts.width, opts.height, cols)
			}
			l := geometry.Compute(opts.width, opts.height, cfg.Progress, cfg.Max, cfg.ThumbSizeRatio, cfg.ReverseProgress)
			fmt.Fprint(cmd.OutOrStdout(), preview.Render(l, preview.Options{
				Cols:            cols,
				Rows:            rows,
				ProgressColor:   cfg.ProgressColor,
				BackgroundColor: cfg.ProgressBackgroundColor,
				ThumbColor:      cfg.ThumbColor,
				Caption:         fmt.Sprintf("%d / %d", cfg.Progress, cfg.Max),
			}))
			return nil
		},
	}
	addBarFlags(cmd, &opts)
	cmd.Flags().IntVar(&cols, "cols", 0, "Columns to draw (default: terminal width, capped at 80)")
	cmd.Flags().IntVar(&rows, "rows", 0, "Rows to draw (default: keep the view aspect)")
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	return cmd
}

func previewCols(termWidth int) int {
	switch {
	case termWidth <= 0:
		return defaultPreviewCols
	case termWidth > 80:
		return 80
	default:
		return termWidth
	}
}

// previewRows keeps the view aspect for terminal cells about twice as tall
// as they are wide.
func previewRows(width, height float32, cols int) int {
	if width <= 0 {
		return 1
	}
	rows := int(float32(cols)*height/width/2 + 0.5)
	return max(rows, 1)
}
