// Package preview rasterises a seek bar layout into terminal cells.
package preview

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"

	"github.com/oukeidos/withseekbar/internal/geometry"
)

const (
	GlyphThumb      = '●'
	GlyphProgress   = '█'
	GlyphBackground = '░'
	GlyphEmpty      = ' '
)

// Options controls the size and colors of a rendering.
type Options struct {
	Cols, Rows int

	ProgressColor   color.Color
	BackgroundColor color.Color
	ThumbColor      color.Color

	// Caption is centered under the bar when set.
	Caption string
}

// Grid samples the layout at the center of each cell and returns one glyph
// per cell. Thumb wins over progress, progress over background. A grid with
// no columns has empty rows; no rows gives nil.
func Grid(l geometry.Layout, cols, rows int) [][]rune {
	if rows <= 0 {
		return nil
	}
	grid := make([][]rune, rows)
	if cols <= 0 {
		return grid
	}
	w, h := l.Background.Width(), l.Background.Height()
	for r := range grid {
		grid[r] = make([]rune, cols)
		y := (float32(r) + 0.5) * h / float32(rows)
		for c := range grid[r] {
			x := (float32(c) + 0.5) * w / float32(cols)
			grid[r][c] = sample(l, x, y)
		}
	}
	return grid
}

func sample(l geometry.Layout, x, y float32) rune {
	switch {
	case geometry.InOval(l.Thumb, x, y):
		return GlyphThumb
	case geometry.InPill(l.Progress, l.Radius, x, y):
		return GlyphProgress
	case geometry.InPill(l.Background, l.Radius, x, y):
		return GlyphBackground
	default:
		return GlyphEmpty
	}
}

// Render draws the layout with lipgloss foreground colors. Color output
// follows lipgloss' terminal detection, so redirected output is plain text.
func Render(l geometry.Layout, opts Options) string {
	styles := map[rune]lipgloss.Style{
		GlyphThumb:      styleFor(opts.ThumbColor),
		GlyphProgress:   styleFor(opts.ProgressColor),
		GlyphBackground: styleFor(opts.BackgroundColor),
	}

	var b strings.Builder
	for _, row := range Grid(l, opts.Cols, opts.Rows) {
		var line strings.Builder
		for _, g := range row {
			if st, ok := styles[g]; ok {
				line.WriteString(st.Render(string(g)))
				continue
			}
			line.WriteRune(g)
		}
		b.WriteString(strings.TrimRight(line.String(), " "))
		b.WriteByte('\n')
	}

	if opts.Caption != "" {
		b.WriteString(center(opts.Caption, opts.Cols))
		b.WriteByte('\n')
	}
	return b.String()
}

func styleFor(c color.Color) lipgloss.Style {
	st := lipgloss.NewStyle()
	if c == nil {
		return st
	}
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return st
	}
	return st.Foreground(lipgloss.Color(cf.Hex()))
}

// center pads s so it sits in the middle of width display columns.
func center(s string, width int) string {
	pad := (width - uniseg.StringWidth(s)) / 2
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}
