package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/oukeidos/withseekbar/internal/apperrors"
	"github.com/oukeidos/withseekbar/internal/cleanup"
	"github.com/oukeidos/withseekbar/internal/logger"
	"github.com/oukeidos/withseekbar/internal/version"
)

type globalOptions struct {
	logLevel    string
	logFilePath string
}

func execute() {
	cmd := newRootCmd()
	err := cmd.Execute()
	if cleanupErr := cleanup.RunAll(); cleanupErr != nil {
		fmt.Fprintln(os.Stderr, cleanupErr)
		if err == nil {
			err = cleanupErr
		}
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", apperrors.PublicMessage(err))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := globalOptions{}

	cmd := &cobra.Command{
		Use:   "seekbar",
		Short: "Inspect and exercise the pill seek bar layout and drag mapping",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(&opts)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if hasAnyFlagSet(cmd) {
				_ = cmd.Usage()
				return fmt.Errorf("a command is required")
			}
			return cmd.Help()
		},
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Version = version.Info()
	cmd.SetVersionTemplate("{{.Version}}\n")
	cmd.SetUsageTemplate(rootUsageTemplate)

	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	cmd.PersistentFlags().StringVar(&opts.logFilePath, "log-file", "", "Path to save machine-readable JSONL logs")

	cmd.AddCommand(
		newAboutCmd(),
		newLayoutCmd(),
		newDragCmd(),
		newPreviewCmd(),
		newStyleCmd(),
	)

	return cmd
}

func setupLogging(opts *globalOptions) error {
	level, err := logger.ParseLevel(opts.logLevel)
	if err != nil {
		return err
	}
	if opts.logFilePath == "" {
		logger.Init(level, nil)
		return nil
	}
	f, err := os.OpenFile(opts.logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	cleanup.Register(f.Close)
	logger.Init(level, f)
	return nil
}

func hasAnyFlagSet(cmd *cobra.Command) bool {
	changed := false
	cmd.Flags().Visit(func(_ *pflag.Flag) {
		changed = true
	})
	return changed
}
