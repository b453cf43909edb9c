// Package ui provides SeekBar, a fyne widget drawing a pill shaped track with
// a progress fill and a draggable oval thumb.
package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
	"github.com/google/uuid"

	"github.com/oukeidos/withseekbar/internal/geometry"
	"github.com/oukeidos/withseekbar/internal/seekbar"
)

// SeekBar orients itself by its size: wider than tall is horizontal, taller
// than wide is vertical.
type SeekBar struct {
	widget.BaseWidget

	model *seekbar.Model

	// OnProgressChanged fires on every progress assignment, dragging included.
	OnProgressChanged func(s *SeekBar, progress, max int)
	// OnProgressConfirmed fires once when the pointer is released.
	OnProgressConfirmed func(s *SeekBar, progress, max int)
	// OnTapped fires on every release, before OnProgressConfirmed.
	OnTapped func()
}

var (
	_ fyne.Widget       = (*SeekBar)(nil)
	_ fyne.Draggable    = (*SeekBar)(nil)
	_ fyne.Tappable     = (*SeekBar)(nil)
	_ desktop.Mouseable = (*SeekBar)(nil)
	_ mobile.Touchable  = (*SeekBar)(nil)
)

// NewSeekBar returns a seek bar with the default configuration.
func NewSeekBar() *SeekBar {
	return NewSeekBarWithConfig(seekbar.DefaultConfig())
}

// NewSeekBarFromAttributes reads the initial configuration from a bag.
func NewSeekBarFromAttributes(a seekbar.Attributes) *SeekBar {
	return NewSeekBarWithConfig(seekbar.ConfigFromAttributes(a))
}

func NewSeekBarWithConfig(cfg seekbar.Config) *SeekBar {
	s := &SeekBar{model: seekbar.New(cfg)}
	s.model.OnProgressChanged = func(progress, max int) {
		if s.OnProgressChanged != nil {
			s.OnProgressChanged(s, progress, max)
		}
	}
	s.model.OnProgressConfirmed = func(progress, max int) {
		if s.OnProgressConfirmed != nil {
			s.OnProgressConfirmed(s, progress, max)
		}
	}
	s.model.OnClick = func() {
		if s.OnTapped != nil {
			s.OnTapped()
		}
	}
	s.model.SetInvalidator(s.Refresh)
	s.ExtendBaseWidget(s)
	return s
}

// Layout returns the geometry used for the last draw.
func (s *SeekBar) Layout() geometry.Layout { return s.model.Layout() }

func (s *SeekBar) Progress() int { return s.model.Progress() }

// SetProgress clamps v to [0, Max] and notifies OnProgressChanged.
func (s *SeekBar) SetProgress(v int) { s.model.SetProgress(v) }

func (s *SeekBar) Max() int { return s.model.Max() }

// SetMax stores v (at least 1) and clamps the current progress to it.
func (s *SeekBar) SetMax(v int) { s.model.SetMax(v) }

func (s *SeekBar) ProgressColor() color.Color { return s.model.ProgressColor() }

func (s *SeekBar) SetProgressColor(c color.Color) { s.model.SetProgressColor(c) }

func (s *SeekBar) ProgressBackgroundColor() color.Color {
	return s.model.ProgressBackgroundColor()
}

func (s *SeekBar) SetProgressBackgroundColor(c color.Color) {
	s.model.SetProgressBackgroundColor(c)
}

func (s *SeekBar) ThumbColor() color.Color { return s.model.ThumbColor() }

func (s *SeekBar) SetThumbColor(c color.Color) { s.model.SetThumbColor(c) }

func (s *SeekBar) ThumbSizeRatio() float32 { return s.model.ThumbSizeRatio() }

func (s *SeekBar) SetThumbSizeRatio(v float32) { s.model.SetThumbSizeRatio(v) }

func (s *SeekBar) ReverseProgress() bool { return s.model.ReverseProgress() }

func (s *SeekBar) SetReverseProgress(v bool) { s.model.SetReverseProgress(v) }

// Resize keeps the model's size in step with the widget so drags started
// before the first draw still scale correctly.
func (s *SeekBar) Resize(size fyne.Size) {
	s.model.Resize(size.Width, size.Height)
	s.BaseWidget.Resize(size)
}

// GestureID identifies the current or most recent press, for correlating
// OnProgressChanged and OnProgressConfirmed calls.
func (s *SeekBar) GestureID() uuid.UUID { return s.model.GestureID() }

func (s *SeekBar) handle(action seekbar.Action, pos fyne.Position) bool {
	return s.model.Handle(seekbar.Event{Action: action, X: pos.X, Y: pos.Y})
}

func (s *SeekBar) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	s.handle(seekbar.ActionDown, e.Position)
}

func (s *SeekBar) MouseUp(e *desktop.MouseEvent) {
	s.handle(seekbar.ActionUp, e.Position)
}

func (s *SeekBar) TouchDown(e *mobile.TouchEvent) {
	s.handle(seekbar.ActionDown, e.Position)
}

func (s *SeekBar) TouchUp(e *mobile.TouchEvent) {
	s.handle(seekbar.ActionUp, e.Position)
}

func (s *SeekBar) TouchCancel(e *mobile.TouchEvent) {
	s.handle(seekbar.ActionCancel, e.Position)
}

// Dragged moves the thumb. A drag that arrives without a preceding press
// starts the gesture where the pointer was before this delta.
func (s *SeekBar) Dragged(e *fyne.DragEvent) {
	if s.model.State() != seekbar.StateDragging {
		s.handle(seekbar.ActionDown, e.Position.Subtract(e.Dragged))
	}
	s.handle(seekbar.ActionMove, e.Position)
}

func (s *SeekBar) DragEnd() {
	s.model.Handle(seekbar.Event{Action: seekbar.ActionUp})
}

// Tapped is handled through MouseUp and TouchUp.
func (s *SeekBar) Tapped(_ *fyne.PointEvent) {}

func (s *SeekBar) CreateRenderer() fyne.WidgetRenderer {
	s.ExtendBaseWidget(s)
	r := &seekBarRenderer{
		s:          s,
		background: canvas.NewRectangle(s.model.ProgressBackgroundColor()),
		progress:   canvas.NewRectangle(s.model.ProgressColor()),
		thumb:      canvas.NewCircle(s.model.ThumbColor()),
	}
	r.Layout(s.Size())
	return r
}

type seekBarRenderer struct {
	s          *SeekBar
	background *canvas.Rectangle
	progress   *canvas.Rectangle
	thumb      *canvas.Circle
}

func (r *seekBarRenderer) Layout(size fyne.Size) {
	r.s.model.Resize(size.Width, size.Height)
	l := r.s.model.Layout()

	place(r.background, l.Background)
	r.background.CornerRadius = l.Radius
	place(r.progress, l.Progress)
	r.progress.CornerRadius = l.Radius
	place(r.thumb, l.Thumb)
}

func place(o fyne.CanvasObject, rect geometry.Rect) {
	o.Move(fyne.NewPos(rect.Left, rect.Top))
	o.Resize(fyne.NewSize(rect.Width(), rect.Height()))
}

func (r *seekBarRenderer) MinSize() fyne.Size { return fyne.NewSize(40, 20) }

func (r *seekBarRenderer) Refresh() {
	r.background.FillColor = r.s.model.ProgressBackgroundColor()
	r.progress.FillColor = r.s.model.ProgressColor()
	r.thumb.FillColor = r.s.model.ThumbColor()
	r.Layout(r.s.Size())

	canvas.Refresh(r.background)
	canvas.Refresh(r.progress)
	canvas.Refresh(r.thumb)
}

func (r *seekBarRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.progress, r.thumb}
}

func (r *seekBarRenderer) Destroy() {}
