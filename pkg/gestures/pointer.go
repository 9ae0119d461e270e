// Package gestures defines the normalized pointer-event shape shared by
// chart widgets. Mouse and touch input are dispatched to widgets as a single
// event type; widgets never see raw platform events.
package gestures

import "fmt"

// PointerPhase identifies what a pointer did.
type PointerPhase int

const (
	// PhaseDown is a press inside the widget.
	PhaseDown PointerPhase = iota
	// PhaseMove is movement while pressed inside the widget.
	PhaseMove
	// PhaseUp is a release after PhaseDown.
	PhaseUp
	// PhaseEnter is a hover entering the widget bounds.
	PhaseEnter
	// PhaseLeave is a hover leaving the widget bounds.
	PhaseLeave
	// PhaseDownOutside is a press that happened outside the widget bounds
	// while this widget had pointer interest (e.g. mid-drag).
	PhaseDownOutside
	// PhaseDoubleClick is a double press inside the widget.
	PhaseDoubleClick
)

func (p PointerPhase) String() string {
	switch p {
	case PhaseDown:
		return "down"
	case PhaseMove:
		return "move"
	case PhaseUp:
		return "up"
	case PhaseEnter:
		return "enter"
	case PhaseLeave:
		return "leave"
	case PhaseDownOutside:
		return "down_outside"
	case PhaseDoubleClick:
		return "double_click"
	default:
		return fmt.Sprintf("PointerPhase(%d)", int(p))
	}
}

// PointerEvent is a normalized pointer event in widget-local logical
// coordinates.
type PointerEvent struct {
	Phase PointerPhase
	X     float64
	Y     float64
}

// PointerHandler receives pointer events routed from the dispatcher.
type PointerHandler interface {
	HandlePointer(event PointerEvent)
}

// Cursor is a pointer-cursor style hint.
type Cursor int

const (
	CursorDefault Cursor = iota
	CursorEWResize
)

func (c Cursor) String() string {
	switch c {
	case CursorDefault:
		return "default"
	case CursorEWResize:
		return "ew-resize"
	default:
		return fmt.Sprintf("Cursor(%d)", int(c))
	}
}
