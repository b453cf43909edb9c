package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAboutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "about",
		Short: "Show a short description",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "seekbar: pill shaped drag-to-seek widget for fyne")
			fmt.Fprintln(out, "Track, progress fill and oval thumb laid out from the view size;")
			fmt.Fprintln(out, "horizontal when wider than tall, vertical when taller than wide.")
		},
	}
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	return cmd
}
