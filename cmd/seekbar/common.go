package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oukeidos/withseekbar/internal/geometry"
	"github.com/oukeidos/withseekbar/internal/seekbar"
	"github.com/oukeidos/withseekbar/internal/style"
)

// barOptions are the view size and configuration flags shared by layout,
// drag, preview and style init.
type barOptions struct {
	width     float32
	height    float32
	progress  int
	max       int
	ratio     float32
	reverse   bool
	stylePath string
}

func addBarFlags(cmd *cobra.Command, opts *barOptions) {
	def := seekbar.DefaultConfig()
	cmd.Flags().Float32Var(&opts.width, "width", 200, "View width")
	cmd.Flags().Float32Var(&opts.height, "height", 40, "View height")
	cmd.Flags().IntVar(&opts.progress, "progress", def.Progress, "Initial progress")
	cmd.Flags().IntVar(&opts.max, "max", def.Max, "Maximum progress")
	cmd.Flags().Float32Var(&opts.ratio, "ratio", def.ThumbSizeRatio, "Thumb size as a fraction of track thickness (0-1)")
	cmd.Flags().BoolVar(&opts.reverse, "reverse", def.ReverseProgress, "Reverse the progress direction")
	cmd.Flags().StringVar(&opts.stylePath, "style", "", "TOML or YAML style file with initial attributes")
}

// resolveConfig starts from the style file (or defaults) and applies only the
// flags the user set explicitly.
func resolveConfig(cmd *cobra.Command, opts *barOptions) (seekbar.Config, error) {
	if opts.width < 0 || opts.height < 0 {
		return seekbar.Config{}, fmt.Errorf("width and height must not be negative")
	}

	cfg := seekbar.DefaultConfig()
	if opts.stylePath != "" {
		values, err := style.LoadFile(opts.stylePath)
		if err != nil {
			return seekbar.Config{}, err
		}
		cfg = seekbar.ConfigFromAttributes(values)
	}

	flags := cmd.Flags()
	if flags.Changed("progress") {
		cfg.Progress = opts.progress
	}
	if flags.Changed("max") {
		cfg.Max = opts.max
	}
	if flags.Changed("ratio") {
		cfg.ThumbSizeRatio = opts.ratio
	}
	if flags.Changed("reverse") {
		cfg.ReverseProgress = opts.reverse
	}
	return cfg.Normalize(), nil
}

// parsePoint parses "x,y".
func parsePoint(s string) (x, y float32, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("point %q must be x,y", s)
	}
	fx, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 32)
	if err != nil {
		return 0, 0, fmt.Errorf("point %q: bad x: %w", s, err)
	}
	fy, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 32)
	if err != nil {
		return 0, 0, fmt.Errorf("point %q: bad y: %w", s, err)
	}
	return float32(fx), float32(fy), nil
}

func formatRect(name string, r geometry.Rect) string {
	return fmt.Sprintf("%-11s left=%-7s top=%-7s right=%-7s bottom=%s",
		name+":", num(r.Left), num(r.Top), num(r.Right), num(r.Bottom))
}

func num(f float32) string {
	return strconv.FormatFloat(float64(f), 'f', -1, 32)
}
