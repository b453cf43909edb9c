// Package style provides the attribute bags a seek bar reads its initial
// configuration from: plain maps, TOML or YAML style files and fyne
// preferences.
package style

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/oukeidos/withseekbar/internal/apperrors"
	"github.com/oukeidos/withseekbar/internal/logger"
	"github.com/oukeidos/withseekbar/internal/seekbar"
)

// Values is a decoded attribute map. Keys are matched case-insensitively with
// '-' and '_' treated alike. Getters fall back to the supplied default and
// log a warning when a value is present but malformed.
type Values map[string]any

var _ seekbar.Attributes = Values(nil)

func normalizeKey(k string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(k)), "-", "_")
}

func (v Values) lookup(key string) (any, bool) {
	if raw, ok := v[key]; ok {
		return raw, true
	}
	want := normalizeKey(key)
	for k, raw := range v {
		if normalizeKey(k) == want {
			return raw, true
		}
	}
	return nil, false
}

func (v Values) Int(key string, def int) int {
	raw, ok := v.lookup(key)
	if !ok {
		return def
	}
	n, err := toInt(raw)
	if err != nil {
		logger.Warn("Malformed style attribute, using default", "key", key, "error", err, "default", def)
		return def
	}
	return n
}

func (v Values) Float(key string, def float32) float32 {
	raw, ok := v.lookup(key)
	if !ok {
		return def
	}
	f, err := toFloat(raw)
	if err != nil {
		logger.Warn("Malformed style attribute, using default", "key", key, "error", err, "default", def)
		return def
	}
	return f
}

func (v Values) Bool(key string, def bool) bool {
	raw, ok := v.lookup(key)
	if !ok {
		return def
	}
	b, err := toBool(raw)
	if err != nil {
		logger.Warn("Malformed style attribute, using default", "key", key, "error", err, "default", def)
		return def
	}
	return b
}

func (v Values) Color(key string, def color.Color) color.Color {
	raw, ok := v.lookup(key)
	if !ok {
		return def
	}
	c, err := toColor(raw)
	if err != nil {
		logger.Warn("Malformed style attribute, using default", "key", key, "error", err)
		return def
	}
	return c
}

// Validate checks every known attribute strictly and reports unknown keys.
// All problems are returned together.
func (v Values) Validate() error {
	known := make(map[string]bool, len(seekbar.AttrKeys))
	for _, k := range seekbar.AttrKeys {
		known[k] = true
	}

	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var errs []error
	for _, k := range keys {
		nk := normalizeKey(k)
		if !known[nk] {
			errs = append(errs, apperrors.Invalid(k, "unknown attribute"))
			continue
		}
		if err := validateValue(nk, v[k]); err != nil {
			errs = append(errs, apperrors.Invalid(k, err.Error()))
		}
	}
	if err := v.validateProgressRange(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// validateProgressRange reports a progress above max. A missing max means
// the default; an invalid one is already reported on its own.
func (v Values) validateProgressRange() error {
	raw, ok := v.lookup(seekbar.AttrProgress)
	if !ok {
		return nil
	}
	progress, err := toInt(raw)
	if err != nil {
		return nil
	}
	limit := seekbar.DefaultMax
	if raw, ok := v.lookup(seekbar.AttrMax); ok {
		if limit, err = toInt(raw); err != nil || limit < 1 {
			return nil
		}
	}
	if progress > limit {
		return apperrors.Invalid(seekbar.AttrProgress, fmt.Sprintf("must not exceed max %d, got %d", limit, progress))
	}
	return nil
}

func validateValue(key string, raw any) error {
	switch key {
	case seekbar.AttrProgress:
		n, err := toInt(raw)
		if err == nil && n < 0 {
			err = fmt.Errorf("must not be negative, got %d", n)
		}
		return err
	case seekbar.AttrMax:
		n, err := toInt(raw)
		if err == nil && n < 1 {
			err = fmt.Errorf("must be at least 1, got %d", n)
		}
		return err
	case seekbar.AttrThumbSizeRatio:
		f, err := toFloat(raw)
		if err == nil && (f < 0 || f > 1) {
			err = fmt.Errorf("must be within [0, 1], got %v", f)
		}
		return err
	case seekbar.AttrReverseProgress:
		_, err := toBool(raw)
		return err
	default:
		_, err := toColor(raw)
		return err
	}
}

func toInt(raw any) (int, error) {
	switch n := raw.(type) {
	case int:
		return n, nil
	case int64:
		if n > math.MaxInt32 || n < math.MinInt32 {
			return 0, fmt.Errorf("integer %d out of range", n)
		}
		return int(n), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("expected an integer, got %v", n)
		}
		return int(n), nil
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, fmt.Errorf("expected an integer, got %q", n)
		}
		return i, nil
	}
	return 0, fmt.Errorf("expected an integer, got %T", raw)
}

func toFloat(raw any) (float32, error) {
	switch n := raw.(type) {
	case float64:
		return float32(n), nil
	case float32:
		return n, nil
	case int:
		return float32(n), nil
	case int64:
		return float32(n), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 32)
		if err != nil {
			return 0, fmt.Errorf("expected a number, got %q", n)
		}
		return float32(f), nil
	}
	return 0, fmt.Errorf("expected a number, got %T", raw)
}

func toBool(raw any) (bool, error) {
	switch b := raw.(type) {
	case bool:
		return b, nil
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(b))
		if err != nil {
			return false, fmt.Errorf("expected true or false, got %q", b)
		}
		return parsed, nil
	}
	return false, fmt.Errorf("expected true or false, got %T", raw)
}

func toColor(raw any) (color.Color, error) {
	switch c := raw.(type) {
	case string:
		return ParseColor(c)
	case color.Color:
		return c, nil
	}
	return nil, fmt.Errorf("expected a #RRGGBB color, got %T", raw)
}
