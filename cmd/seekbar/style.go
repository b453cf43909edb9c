package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/oukeidos/withseekbar/internal/apperrors"
	"github.com/oukeidos/withseekbar/internal/files"
	"github.com/oukeidos/withseekbar/internal/logger"
	"github.com/oukeidos/withseekbar/internal/prompt"
	"github.com/oukeidos/withseekbar/internal/seekbar"
	"github.com/oukeidos/withseekbar/internal/style"
)

func newStyleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "style",
		Short: "Check or resolve seek bar style files",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(newStyleCheckCmd(), newStyleShowCmd(), newStyleInitCmd(prompt.DefaultConfirmer()))
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	return cmd
}

func newStyleCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Validate every attribute in a style file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := style.LoadFile(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if err := values.Validate(); err != nil {
				var joined interface{ Unwrap() []error }
				if errors.As(err, &joined) {
					for _, e := range joined.Unwrap() {
						fmt.Fprintf(out, "  %s\n", apperrors.PublicMessage(e))
					}
				}
				return fmt.Errorf("%s: style is invalid", args[0])
			}
			fmt.Fprintf(out, "%s: ok\n", args[0])
			return nil
		},
	}
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	return cmd
}

func newStyleShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <file>",
		Short: "Print the configuration a style file resolves to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := style.LoadFile(args[0])
			if err != nil {
				return err
			}
			cfg := seekbar.ConfigFromAttributes(values).Normalize()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-26s %d\n", seekbar.AttrProgress, cfg.Progress)
			fmt.Fprintf(out, "%-26s %d\n", seekbar.AttrMax, cfg.Max)
			fmt.Fprintf(out, "%-26s %s\n", seekbar.AttrProgressColor, style.FormatColor(cfg.ProgressColor))
			fmt.Fprintf(out, "%-26s %s\n", seekbar.AttrProgressBackgroundColor, style.FormatColor(cfg.ProgressBackgroundColor))
			fmt.Fprintf(out, "%-26s %s\n", seekbar.AttrThumbColor, style.FormatColor(cfg.ThumbColor))
			fmt.Fprintf(out, "%-26s %s\n", seekbar.AttrThumbSizeRatio, num(cfg.ThumbSizeRatio))
			fmt.Fprintf(out, "%-26s %t\n", seekbar.AttrReverseProgress, cfg.ReverseProgress)
			return nil
		},
	}
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	return cmd
}

func newStyleInitCmd(confirmer prompt.Confirmer) *cobra.Command {
	var opts barOptions
	var force bool
	cmd := &cobra.Command{
		Use:   "init <file>",
		Short: "Write a style file from the defaults and bar flags",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			format, err := style.FormatFromPath(path)
			if err != nil {
				return err
			}
			cfg, err := resolveConfig(cmd, &opts)
			if err != nil {
				return err
			}

			if _, err := os.Stat(path); err == nil {
				ok, err := confirmer.ConfirmOverwrite(path, force)
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}
			} else if !errors.Is(err, fs.ErrNotExist) {
				return err
			}

			err = files.WriteAtomic(path, 0644, func(w io.Writer) error {
				return style.Encode(w, cfg, format)
			})
			if err != nil {
				return err
			}
			logger.Info("Style file written", "path", path, "format", format)
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	addBarFlags(cmd, &opts)
	cmd.Flags().BoolVarP(&force, "yes", "y", false, "Overwrite an existing file without asking")
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	return cmd
}
