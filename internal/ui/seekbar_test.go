package ui

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/test"
	"github.com/google/uuid"

	"github.com/oukeidos/withseekbar/internal/seekbar"
)

func pointer(x, y float32) fyne.PointEvent {
	return fyne.PointEvent{Position: fyne.NewPos(x, y)}
}

func dragEvent(x, y, dx, dy float32) *fyne.DragEvent {
	return &fyne.DragEvent{PointEvent: pointer(x, y), Dragged: fyne.Delta{DX: dx, DY: dy}}
}

func TestSeekBar_MouseDragScenario(t *testing.T) {
	test.NewTempApp(t)

	s := NewSeekBar()
	s.Resize(fyne.NewSize(200, 40))

	var changed, confirmed []int
	taps := 0
	s.OnProgressChanged = func(got *SeekBar, progress, max int) {
		if got != s || max != 100 {
			t.Fatalf("unexpected callback args: %p %d", got, max)
		}
		changed = append(changed, progress)
	}
	s.OnTapped = func() { taps++ }
	var confirmedGesture uuid.UUID
	s.OnProgressConfirmed = func(got *SeekBar, progress, _ int) {
		confirmed = append(confirmed, progress)
		confirmedGesture = got.GestureID()
	}

	s.MouseDown(&desktop.MouseEvent{PointEvent: pointer(20, 20), Button: desktop.MouseButtonPrimary})
	s.Dragged(dragEvent(100, 20, 80, 0))
	s.Dragged(dragEvent(180, 20, 80, 0))
	s.DragEnd()
	s.MouseUp(&desktop.MouseEvent{PointEvent: pointer(180, 20), Button: desktop.MouseButtonPrimary})

	if s.Progress() != 100 {
		t.Fatalf("progress = %d, want 100", s.Progress())
	}
	if len(changed) != 2 || changed[0] != 50 || changed[1] != 100 {
		t.Fatalf("changed = %v, want [50 100]", changed)
	}
	if len(confirmed) != 1 || confirmed[0] != 100 {
		t.Fatalf("confirmed = %v, want [100]", confirmed)
	}
	if taps != 1 {
		t.Fatalf("taps = %d, want 1", taps)
	}
	if confirmedGesture == (uuid.UUID{}) || confirmedGesture != s.GestureID() {
		t.Fatalf("confirm should carry the press gesture id, got %v", confirmedGesture)
	}
}

func TestSeekBar_DragWithoutPressStartsAtPreviousPosition(t *testing.T) {
	test.NewTempApp(t)

	cfg := seekbar.DefaultConfig()
	cfg.ReverseProgress = true
	cfg.Progress = 100
	s := NewSeekBarWithConfig(cfg)
	s.Resize(fyne.NewSize(200, 40))

	s.Dragged(dragEvent(100, 20, 80, 0))
	s.DragEnd()

	if s.Progress() != 50 {
		t.Fatalf("progress = %d, want 50", s.Progress())
	}
}

func TestSeekBar_TouchVertical(t *testing.T) {
	test.NewTempApp(t)

	s := NewSeekBar()
	s.Resize(fyne.NewSize(40, 200))

	confirmed := 0
	s.OnProgressConfirmed = func(_ *SeekBar, _, _ int) { confirmed++ }

	s.TouchDown(&mobile.TouchEvent{PointEvent: pointer(20, 180)})
	s.Dragged(dragEvent(20, 100, 0, -80))
	s.TouchUp(&mobile.TouchEvent{PointEvent: pointer(20, 100)})
	s.DragEnd()

	if s.Progress() != 50 {
		t.Fatalf("progress = %d, want 50", s.Progress())
	}
	if confirmed != 1 {
		t.Fatalf("confirmed %d times, want 1", confirmed)
	}
}

func TestSeekBar_TouchCancelDoesNotConfirm(t *testing.T) {
	test.NewTempApp(t)

	s := NewSeekBar()
	s.Resize(fyne.NewSize(200, 40))
	confirmed := 0
	s.OnProgressConfirmed = func(_ *SeekBar, _, _ int) { confirmed++ }

	s.TouchDown(&mobile.TouchEvent{PointEvent: pointer(20, 20)})
	s.TouchCancel(&mobile.TouchEvent{PointEvent: pointer(20, 20)})
	s.DragEnd()

	if confirmed != 0 {
		t.Fatalf("cancel confirmed %d times", confirmed)
	}
}

func TestSeekBar_SecondaryButtonIgnored(t *testing.T) {
	test.NewTempApp(t)

	s := NewSeekBar()
	s.Resize(fyne.NewSize(200, 40))
	confirmed := 0
	s.OnProgressConfirmed = func(_ *SeekBar, _, _ int) { confirmed++ }

	s.MouseDown(&desktop.MouseEvent{PointEvent: pointer(20, 20), Button: desktop.MouseButtonSecondary})
	s.MouseUp(&desktop.MouseEvent{PointEvent: pointer(20, 20), Button: desktop.MouseButtonSecondary})
	if confirmed != 0 {
		t.Fatalf("secondary click confirmed progress")
	}
}

func TestSeekBarRenderer_Layout(t *testing.T) {
	test.NewTempApp(t)

	cfg := seekbar.DefaultConfig()
	cfg.Progress = 25
	cfg.ThumbSizeRatio = 0.5
	s := NewSeekBarWithConfig(cfg)
	s.Resize(fyne.NewSize(200, 40))

	r := test.WidgetRenderer(s).(*seekBarRenderer)
	r.Layout(s.Size())

	if got := r.background.Size(); got != fyne.NewSize(200, 40) {
		t.Fatalf("background size = %v", got)
	}
	if r.background.CornerRadius != 20 || r.progress.CornerRadius != 20 {
		t.Fatalf("corner radius = %v/%v, want 20", r.background.CornerRadius, r.progress.CornerRadius)
	}
	// progressLength = 160 * 25 / 100 = 40
	if got := r.progress.Size(); got != fyne.NewSize(80, 40) {
		t.Fatalf("progress size = %v, want 80x40", got)
	}
	if got := r.thumb.Position(); got != fyne.NewPos(50, 10) {
		t.Fatalf("thumb position = %v, want (50,10)", got)
	}
	if got := r.thumb.Size(); got != fyne.NewSize(20, 20) {
		t.Fatalf("thumb size = %v, want 20x20", got)
	}

	objects := r.Objects()
	if len(objects) != 3 {
		t.Fatalf("objects = %d, want 3", len(objects))
	}
	if _, ok := objects[2].(*canvas.Circle); !ok {
		t.Fatalf("thumb should be drawn last as an oval")
	}
}

func TestSeekBar_SettersRefreshRenderer(t *testing.T) {
	test.NewTempApp(t)

	s := NewSeekBar()
	s.Resize(fyne.NewSize(200, 40))
	r := test.WidgetRenderer(s).(*seekBarRenderer)

	green := color.NRGBA{G: 255, A: 255}
	s.SetThumbColor(green)
	if r.thumb.FillColor != green {
		t.Fatalf("thumb fill = %v, want %v", r.thumb.FillColor, green)
	}

	s.SetProgress(100)
	s.SetReverseProgress(true)
	// Reversed full progress starts the fill at 0.
	if got := r.progress.Position().X; got != 0 {
		t.Fatalf("progress left = %v, want 0", got)
	}
	s.SetProgress(0)
	if got := r.progress.Position().X; got != 160 {
		t.Fatalf("progress left = %v, want 160", got)
	}
}
