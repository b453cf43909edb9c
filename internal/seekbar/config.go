package seekbar

import (
	"image/color"

	"github.com/oukeidos/withseekbar/internal/logger"
)

// Attribute keys understood by ConfigFromAttributes.
const (
	AttrProgress                = "progress"
	AttrMax                     = "max"
	AttrProgressColor           = "progress_color"
	AttrProgressBackgroundColor = "progress_background_color"
	AttrThumbColor              = "thumb_color"
	AttrThumbSizeRatio          = "thumb_size_ratio"
	AttrReverseProgress         = "reverse_progress"
)

// AttrKeys lists every attribute key in declaration order.
var AttrKeys = []string{
	AttrProgress,
	AttrMax,
	AttrProgressColor,
	AttrProgressBackgroundColor,
	AttrThumbColor,
	AttrThumbSizeRatio,
	AttrReverseProgress,
}

const (
	DefaultMax            = 100
	DefaultThumbSizeRatio = float32(0.7)
)

var (
	DefaultProgressColor           color.Color = color.NRGBA{R: 0xff, A: 0xff}
	DefaultProgressBackgroundColor color.Color = color.NRGBA{B: 0xff, A: 0xff}
	DefaultThumbColor              color.Color = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// Config holds the seven user facing settings of a seek bar.
type Config struct {
	Progress                int
	Max                     int
	ProgressColor           color.Color
	ProgressBackgroundColor color.Color
	ThumbColor              color.Color
	// ThumbSizeRatio is the thumb diameter as a fraction of track thickness.
	ThumbSizeRatio  float32
	ReverseProgress bool
}

func DefaultConfig() Config {
	return Config{
		Max:                     DefaultMax,
		ProgressColor:           DefaultProgressColor,
		ProgressBackgroundColor: DefaultProgressBackgroundColor,
		ThumbColor:              DefaultThumbColor,
		ThumbSizeRatio:          DefaultThumbSizeRatio,
	}
}

// Attributes is a read-only bag of initial values. Each getter returns def
// when the key is absent or malformed.
type Attributes interface {
	Int(key string, def int) int
	Float(key string, def float32) float32
	Bool(key string, def bool) bool
	Color(key string, def color.Color) color.Color
}

// ConfigFromAttributes reads every attribute on top of DefaultConfig.
func ConfigFromAttributes(a Attributes) Config {
	cfg := DefaultConfig()
	if a == nil {
		return cfg
	}
	cfg.Progress = a.Int(AttrProgress, cfg.Progress)
	cfg.Max = a.Int(AttrMax, cfg.Max)
	cfg.ProgressColor = a.Color(AttrProgressColor, cfg.ProgressColor)
	cfg.ProgressBackgroundColor = a.Color(AttrProgressBackgroundColor, cfg.ProgressBackgroundColor)
	cfg.ThumbColor = a.Color(AttrThumbColor, cfg.ThumbColor)
	cfg.ThumbSizeRatio = a.Float(AttrThumbSizeRatio, cfg.ThumbSizeRatio)
	cfg.ReverseProgress = a.Bool(AttrReverseProgress, cfg.ReverseProgress)
	return cfg
}

// Normalize returns cfg with max at least 1, progress in [0, max], the thumb
// ratio in [0, 1] and nil colors replaced by defaults.
func (cfg Config) Normalize() Config {
	cfg.Max = normalizeMax(cfg.Max)
	cfg.Progress = clamp(cfg.Progress, 0, cfg.Max)
	cfg.ThumbSizeRatio = normalizeRatio(cfg.ThumbSizeRatio)
	if cfg.ProgressColor == nil {
		cfg.ProgressColor = DefaultProgressColor
	}
	if cfg.ProgressBackgroundColor == nil {
		cfg.ProgressBackgroundColor = DefaultProgressBackgroundColor
	}
	if cfg.ThumbColor == nil {
		cfg.ThumbColor = DefaultThumbColor
	}
	return cfg
}

func normalizeMax(v int) int {
	if v < 1 {
		logger.Warn("Seek bar max clamped", "requested", v, "effective", 1)
		return 1
	}
	return v
}

func normalizeRatio(v float32) float32 {
	switch {
	case v != v: // NaN
		logger.Warn("Thumb size ratio reset", "requested", v, "effective", DefaultThumbSizeRatio)
		return DefaultThumbSizeRatio
	case v < 0:
		logger.Warn("Thumb size ratio clamped", "requested", v, "effective", 0)
		return 0
	case v > 1:
		logger.Warn("Thumb size ratio clamped", "requested", v, "effective", 1)
		return 1
	}
	return v
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
