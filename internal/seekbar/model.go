// Package seekbar holds the state of a pill shaped seek bar: its
// configuration, the touch gesture state machine and the change callbacks.
// It does not draw; a host widget supplies the size, forwards pointer events
// and redraws when the model asks for it.
//
// A Model is not safe for concurrent use. All calls are expected on the UI
// goroutine.
package seekbar

import (
	"image/color"

	"github.com/google/uuid"

	"github.com/oukeidos/withseekbar/internal/geometry"
)

type State int

const (
	StateIdle State = iota
	StateDragging
)

func (s State) String() string {
	if s == StateDragging {
		return "dragging"
	}
	return "idle"
}

// ProgressFunc receives the progress and max after a change or on release.
type ProgressFunc func(progress, max int)

type Model struct {
	cfg           Config
	width, height float32

	state        State
	downX, downY float32
	downProgress int
	gestureID    uuid.UUID

	// OnProgressChanged fires on every progress assignment, including each
	// drag move, even if the clamped value did not change.
	OnProgressChanged ProgressFunc
	// OnProgressConfirmed fires once when a gesture is released.
	OnProgressConfirmed ProgressFunc
	// OnClick fires on release before OnProgressConfirmed.
	OnClick func()

	invalidate func()
}

// New returns a model for the normalized cfg.
func New(cfg Config) *Model {
	return &Model{cfg: cfg.Normalize()}
}

// SetInvalidator registers the redraw request invoked by every setter and
// progress change.
func (m *Model) SetInvalidator(fn func()) {
	m.invalidate = fn
}

func (m *Model) redraw() {
	if m.invalidate != nil {
		m.invalidate()
	}
}

// Config returns a copy of the current configuration.
func (m *Model) Config() Config { return m.cfg }

// Resize records the current view size. It does not request a redraw; the
// host calls it from its own layout pass.
func (m *Model) Resize(width, height float32) {
	m.width, m.height = width, height
}

func (m *Model) Size() (width, height float32) { return m.width, m.height }

// Layout computes the track, progress and thumb rectangles for the current
// size and configuration.
func (m *Model) Layout() geometry.Layout {
	return geometry.Compute(m.width, m.height, m.cfg.Progress, m.cfg.Max, m.cfg.ThumbSizeRatio, m.cfg.ReverseProgress)
}

func (m *Model) State() State { return m.state }

func (m *Model) Progress() int { return m.cfg.Progress }

// SetProgress clamps v to [0, max], stores it, notifies OnProgressChanged and
// requests a redraw.
func (m *Model) SetProgress(v int) {
	m.cfg.Progress = clamp(v, 0, m.cfg.Max)
	if m.OnProgressChanged != nil {
		m.OnProgressChanged(m.cfg.Progress, m.cfg.Max)
	}
	m.redraw()
}

func (m *Model) Max() int { return m.cfg.Max }

// SetMax stores v (at least 1) and re-clamps the progress without firing
// OnProgressChanged.
func (m *Model) SetMax(v int) {
	m.cfg.Max = normalizeMax(v)
	m.cfg.Progress = clamp(m.cfg.Progress, 0, m.cfg.Max)
	m.redraw()
}

func (m *Model) ProgressColor() color.Color { return m.cfg.ProgressColor }

func (m *Model) SetProgressColor(c color.Color) {
	if c == nil {
		c = DefaultProgressColor
	}
	m.cfg.ProgressColor = c
	m.redraw()
}

func (m *Model) ProgressBackgroundColor() color.Color { return m.cfg.ProgressBackgroundColor }

func (m *Model) SetProgressBackgroundColor(c color.Color) {
	if c == nil {
		c = DefaultProgressBackgroundColor
	}
	m.cfg.ProgressBackgroundColor = c
	m.redraw()
}

func (m *Model) ThumbColor() color.Color { return m.cfg.ThumbColor }

func (m *Model) SetThumbColor(c color.Color) {
	if c == nil {
		c = DefaultThumbColor
	}
	m.cfg.ThumbColor = c
	m.redraw()
}

func (m *Model) ThumbSizeRatio() float32 { return m.cfg.ThumbSizeRatio }

func (m *Model) SetThumbSizeRatio(v float32) {
	m.cfg.ThumbSizeRatio = normalizeRatio(v)
	m.redraw()
}

func (m *Model) ReverseProgress() bool { return m.cfg.ReverseProgress }

func (m *Model) SetReverseProgress(v bool) {
	m.cfg.ReverseProgress = v
	m.redraw()
}
