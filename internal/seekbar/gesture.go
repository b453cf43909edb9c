package seekbar

import (
	"math"

	"github.com/google/uuid"

	"github.com/oukeidos/withseekbar/internal/geometry"
	"github.com/oukeidos/withseekbar/internal/logger"
)

type Action int

const (
	ActionDown Action = iota
	ActionMove
	ActionUp
	ActionCancel
)

func (a Action) String() string {
	switch a {
	case ActionDown:
		return "down"
	case ActionMove:
		return "move"
	case ActionUp:
		return "up"
	case ActionCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// Event is a single pointer event in view coordinates.
type Event struct {
	Action Action
	X, Y   float32
}

// Handle feeds one pointer event through the drag state machine and reports
// whether the event was consumed.
func (m *Model) Handle(ev Event) bool {
	switch ev.Action {
	case ActionDown:
		m.downX, m.downY = ev.X, ev.Y
		m.downProgress = m.cfg.Progress
		m.state = StateDragging
		m.gestureID = uuid.New()
		logger.Debug("Seek gesture started", "gesture", m.gestureID, "x", ev.X, "y", ev.Y, "progress", m.downProgress)
		return true

	case ActionMove:
		if m.state != StateDragging {
			return false
		}
		m.move(ev.X, ev.Y)
		return true

	case ActionUp:
		if m.state != StateDragging {
			return false
		}
		m.state = StateIdle
		logger.Debug("Seek gesture released", "gesture", m.gestureID, "progress", m.cfg.Progress)
		if m.OnClick != nil {
			m.OnClick()
		}
		if m.OnProgressConfirmed != nil {
			m.OnProgressConfirmed(m.cfg.Progress, m.cfg.Max)
		}
		return true

	case ActionCancel:
		if m.state != StateDragging {
			return false
		}
		m.state = StateIdle
		logger.Debug("Seek gesture canceled", "gesture", m.gestureID)
		return true
	}
	return false
}

// move converts the pointer offset from the down position into progress.
// Orientation is taken from the current size on every move.
func (m *Model) move(x, y float32) {
	available := m.width - m.height
	if available < 0 {
		available = -available
	}

	switch geometry.OrientationOf(m.width, m.height) {
	case geometry.Square:
		return

	case geometry.Horizontal:
		if x < 0 {
			return
		}
		delta := x - m.downX
		if m.cfg.ReverseProgress {
			delta = -delta
		}
		m.SetProgress(m.offset(m.scale(delta, available)))

	case geometry.Vertical:
		if y > m.height {
			return
		}
		delta := y - m.downY
		if m.cfg.ReverseProgress {
			delta = -delta
		}
		// A non-reversed vertical bar fills from the bottom, so moving up grows it.
		m.SetProgress(m.offset(-m.scale(delta, available)))
	}
}

// scale maps a pointer offset to whole progress steps, truncated toward zero
// and saturated at one full track in either direction.
func (m *Model) scale(delta, available float32) int {
	if available <= 0 {
		return 0
	}
	full := float64(m.cfg.Max)
	step := math.Trunc(full * float64(delta) / float64(available))
	switch {
	case step >= full:
		return m.cfg.Max
	case step <= -full:
		return -m.cfg.Max
	}
	return int(step)
}

// offset adds step to the progress at the start of the gesture, saturating
// at 0 and max. step is within [-max, max].
func (m *Model) offset(step int) int {
	switch {
	case step > 0 && m.downProgress > m.cfg.Max-step:
		return m.cfg.Max
	case step < 0 && m.downProgress < -step:
		return 0
	}
	return m.downProgress + step
}

// GestureID identifies the current or most recent gesture. It is the zero
// UUID before the first press.
func (m *Model) GestureID() uuid.UUID { return m.gestureID }
