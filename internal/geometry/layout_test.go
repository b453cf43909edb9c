package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-4

func assertRect(t *testing.T, want, got Rect, name string) {
	t.Helper()
	assert.InDelta(t, want.Left, got.Left, eps, "%s.Left", name)
	assert.InDelta(t, want.Top, got.Top, eps, "%s.Top", name)
	assert.InDelta(t, want.Right, got.Right, eps, "%s.Right", name)
	assert.InDelta(t, want.Bottom, got.Bottom, eps, "%s.Bottom", name)
}

func TestOrientationOf(t *testing.T) {
	tests := []struct {
		w, h float32
		want Orientation
	}{
		{200, 40, Horizontal},
		{40, 200, Vertical},
		{50, 50, Square},
		{0, 0, Square},
	}
	for _, tc := range tests {
		if got := OrientationOf(tc.w, tc.h); got != tc.want {
			t.Fatalf("OrientationOf(%v, %v) = %v, want %v", tc.w, tc.h, got, tc.want)
		}
	}
}

func TestCompute_HorizontalScenario(t *testing.T) {
	l := Compute(200, 40, 0, 100, 0.5, false)
	require.Equal(t, Horizontal, l.Orientation)
	assert.InDelta(t, 20, l.Radius, eps)
	assert.InDelta(t, 160, l.Available, eps)
	assert.InDelta(t, 0, l.ProgressLength, eps)

	assertRect(t, Rect{0, 0, 200, 40}, l.Background, "background")
	assertRect(t, Rect{0, 0, 40, 40}, l.Progress, "progress")
	// inset = 20*(1-0.5) = 10, side = 20
	assertRect(t, Rect{10, 10, 30, 30}, l.Thumb, "thumb")
}

func TestCompute_HorizontalHalf(t *testing.T) {
	l := Compute(200, 40, 50, 100, 1, false)
	assert.InDelta(t, 80, l.ProgressLength, eps)
	assertRect(t, Rect{0, 0, 120, 40}, l.Progress, "progress")
	assertRect(t, Rect{80, 0, 120, 40}, l.Thumb, "thumb")
}

func TestCompute_HorizontalReversed(t *testing.T) {
	l := Compute(200, 40, 25, 100, 0.5, true)
	// progressLength = 40
	assertRect(t, Rect{120, 0, 200, 40}, l.Progress, "progress")
	assertRect(t, Rect{130, 10, 150, 30}, l.Thumb, "thumb")
}

func TestCompute_Vertical(t *testing.T) {
	l := Compute(40, 200, 25, 100, 0.5, false)
	require.Equal(t, Vertical, l.Orientation)
	assertRect(t, Rect{0, 120, 40, 200}, l.Progress, "progress")
	assertRect(t, Rect{10, 130, 30, 150}, l.Thumb, "thumb")
}

func TestCompute_VerticalReversed(t *testing.T) {
	l := Compute(40, 200, 25, 100, 0.5, true)
	assertRect(t, Rect{0, 0, 40, 80}, l.Progress, "progress")
	assertRect(t, Rect{10, 50, 30, 70}, l.Thumb, "thumb")
}

func TestCompute_FullProgressStaysInTrack(t *testing.T) {
	for _, reverse := range []bool{false, true} {
		for _, size := range [][2]float32{{200, 40}, {40, 200}} {
			l := Compute(size[0], size[1], 100, 100, 0.7, reverse)
			assert.True(t, l.Background.Contains(l.Thumb.Left, l.Thumb.Top), "thumb top-left outside track %+v", l)
			assert.True(t, l.Background.Contains(l.Thumb.Right, l.Thumb.Bottom), "thumb bottom-right outside track %+v", l)
			assert.InDelta(t, l.Thumb.Width(), l.Thumb.Height(), eps)
		}
	}
}

func TestCompute_SquareHasNoTravel(t *testing.T) {
	l := Compute(50, 50, 60, 100, 0.7, false)
	require.Equal(t, Square, l.Orientation)
	assert.InDelta(t, 0, l.Available, eps)
	assert.InDelta(t, 0, l.ProgressLength, eps)
	assertRect(t, Rect{0, 0, 50, 50}, l.Progress, "progress")
}

func TestCompute_GuardsInvalidInput(t *testing.T) {
	l := Compute(200, 40, 50, 0, 0.7, false)
	assert.InDelta(t, 0, l.ProgressLength, eps)

	l = Compute(200, 40, 500, 100, 0.7, false)
	assert.InDelta(t, 160, l.ProgressLength, eps)

	l = Compute(200, 40, -5, 100, 0.7, false)
	assert.InDelta(t, 0, l.ProgressLength, eps)

	l = Compute(200, 40, 0, 100, 3, false)
	assertRect(t, Rect{0, 0, 40, 40}, l.Thumb, "thumb")
}

func TestHitTests(t *testing.T) {
	r := Rect{0, 0, 200, 40}
	assert.True(t, InPill(r, 20, 100, 20))
	assert.True(t, InPill(r, 20, 20, 1))
	assert.False(t, InPill(r, 20, 1, 1), "corner outside the rounded cap")
	assert.False(t, InPill(r, 20, 250, 20))

	thumb := Rect{10, 10, 30, 30}
	assert.True(t, InOval(thumb, 20, 20))
	assert.False(t, InOval(thumb, 11, 11))
	assert.False(t, InOval(Rect{}, 0, 0))
}
