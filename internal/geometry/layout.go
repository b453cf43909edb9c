// Package geometry computes the pill-shaped track, progress fill and thumb
// rectangles of a seek bar. It has no rendering dependencies so the layout can
// be checked without a canvas.
package geometry

import "math"

type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
	// Square views have no travel. They are laid out like a vertical bar.
	Square
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case Square:
		return "square"
	default:
		return "unknown"
	}
}

// OrientationOf picks the track's long axis from the view size.
func OrientationOf(width, height float32) Orientation {
	switch {
	case width > height:
		return Horizontal
	case width < height:
		return Vertical
	default:
		return Square
	}
}

// Rect is an axis aligned rectangle in view coordinates.
type Rect struct {
	Left, Top, Right, Bottom float32
}

func (r Rect) Width() float32  { return r.Right - r.Left }
func (r Rect) Height() float32 { return r.Bottom - r.Top }

// Contains reports whether (x, y) lies inside r, edges included.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.Left && x <= r.Right && y >= r.Top && y <= r.Bottom
}

// InPill reports whether (x, y) lies inside r drawn as a rounded rect with
// the given corner radius.
func InPill(r Rect, radius, x, y float32) bool {
	if !r.Contains(x, y) {
		return false
	}
	radius = min(radius, r.Width()/2, r.Height()/2)
	if radius <= 0 {
		return true
	}
	cx := clampf(x, r.Left+radius, r.Right-radius)
	cy := clampf(y, r.Top+radius, r.Bottom-radius)
	dx, dy := x-cx, y-cy
	return dx*dx+dy*dy <= radius*radius
}

// InOval reports whether (x, y) lies inside the oval inscribed in r.
func InOval(r Rect, x, y float32) bool {
	rx, ry := r.Width()/2, r.Height()/2
	if rx <= 0 || ry <= 0 {
		return false
	}
	dx := (x - (r.Left + rx)) / rx
	dy := (y - (r.Top + ry)) / ry
	return dx*dx+dy*dy <= 1
}

// Layout is the result of Compute.
type Layout struct {
	Orientation Orientation
	// Radius is half the track thickness and the corner radius of both pills.
	Radius float32
	// Available is the straight travel distance |width-height|.
	Available float32
	// ProgressLength is the part of Available covered by the current progress.
	ProgressLength float32

	Background Rect
	Progress   Rect
	Thumb      Rect
}

// Compute lays out a seek bar of the given size. progress is clamped to
// [0, max]; a non-positive max yields an empty progress length.
func Compute(width, height float32, progress, max int, thumbRatio float32, reverse bool) Layout {
	l := Layout{
		Orientation: OrientationOf(width, height),
		Radius:      min(width, height) / 2,
		Available:   float32(math.Abs(float64(width - height))),
	}
	if max > 0 {
		progress = clampi(progress, 0, max)
		l.ProgressLength = l.Available * float32(progress) / float32(max)
	}
	thumbRatio = clampf(thumbRatio, 0, 1)

	pad := l.Radius
	pl := l.ProgressLength
	inset := pad * (1 - thumbRatio)
	side := pad * 2 * thumbRatio

	l.Background = Rect{Right: width, Bottom: height}

	if l.Orientation == Horizontal {
		if !reverse {
			l.Progress = Rect{Left: 0, Top: 0, Right: pl + pad*2, Bottom: height}
			l.Thumb.Left = pl + inset
		} else {
			l.Progress = Rect{Left: l.Available - pl, Top: 0, Right: width, Bottom: height}
			l.Thumb.Left = l.Available - pl + inset
		}
		l.Thumb.Top = inset
		l.Thumb.Right = l.Thumb.Left + side
		l.Thumb.Bottom = height - inset
		return l
	}

	if !reverse {
		l.Progress = Rect{Left: 0, Top: l.Available - pl, Right: width, Bottom: height}
		l.Thumb.Top = l.Available - pl + inset
	} else {
		l.Progress = Rect{Left: 0, Top: 0, Right: width, Bottom: pl + pad*2}
		l.Thumb.Top = pl + inset
	}
	l.Thumb.Left = inset
	l.Thumb.Right = width - inset
	l.Thumb.Bottom = l.Thumb.Top + side
	return l
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampi(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
