package style

import (
	"image/color"

	"fyne.io/fyne/v2"

	"github.com/oukeidos/withseekbar/internal/logger"
	"github.com/oukeidos/withseekbar/internal/seekbar"
)

// Preferences reads attributes from fyne app preferences. Colors are stored
// as strings. Nothing is written back.
type Preferences struct {
	prefs  fyne.Preferences
	prefix string
}

var _ seekbar.Attributes = (*Preferences)(nil)

// NewPreferences reads keys as prefix+key, e.g. "seekbar.max".
func NewPreferences(prefs fyne.Preferences, prefix string) *Preferences {
	return &Preferences{prefs: prefs, prefix: prefix}
}

func (p *Preferences) Int(key string, def int) int {
	return p.prefs.IntWithFallback(p.prefix+key, def)
}

func (p *Preferences) Float(key string, def float32) float32 {
	return float32(p.prefs.FloatWithFallback(p.prefix+key, float64(def)))
}

func (p *Preferences) Bool(key string, def bool) bool {
	return p.prefs.BoolWithFallback(p.prefix+key, def)
}

func (p *Preferences) Color(key string, def color.Color) color.Color {
	s := p.prefs.String(p.prefix + key)
	if s == "" {
		return def
	}
	c, err := ParseColor(s)
	if err != nil {
		logger.Warn("Malformed color preference, using default", "key", p.prefix+key, "error", err)
		return def
	}
	return c
}
