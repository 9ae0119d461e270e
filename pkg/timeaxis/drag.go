package timeaxis

import (
	"github.com/go-drift/charts/pkg/chart"
	"github.com/go-drift/charts/pkg/gestures"
)

// dragController translates pointer events on the axis into time-scale
// scale commands. Two states, Idle and Dragging, plus a pressed flag.
//
// The pressed flag is armed on every pointer-down, including one whose drag
// guard fails, so a guard-failed down still requires a later up to clear it
// and that up still runs the end-drag guard. The up-guard is asymmetric on
// purpose: EndScaleTime fires even when the drag option has been disabled
// mid-drag, as long as the scale is not simultaneously empty with the option
// off. Both behaviors match the interaction model this axis was built
// against; do not regularize them without a product decision.
type dragController struct {
	model     Model
	options   *chart.Options
	setCursor func(gestures.Cursor)

	pressed  bool
	dragging bool
}

func (d *dragController) handlePointer(event gestures.PointerEvent) {
	switch event.Phase {
	case gestures.PhaseDown:
		d.pointerDown(event.X)
	case gestures.PhaseMove:
		d.pointerMove(event.X)
	case gestures.PhaseUp:
		d.pointerUp()
	case gestures.PhaseDownOutside:
		d.pointerDownOutside()
	case gestures.PhaseDoubleClick:
		d.doubleClick()
	case gestures.PhaseEnter:
		d.hoverEnter()
	case gestures.PhaseLeave:
		d.hoverLeave()
	}
}

func (d *dragController) pointerDown(x float64) {
	if d.pressed {
		return
	}
	d.pressed = true
	if d.model.IsEmpty() || !d.options.HandleScale.TimeAxisDrag {
		return
	}
	d.model.StartScaleTime(x)
	d.dragging = true
}

func (d *dragController) pointerMove(x float64) {
	if !d.dragging {
		return
	}
	if d.model.IsEmpty() || !d.options.HandleScale.TimeAxisDrag {
		return
	}
	d.model.ScaleTimeTo(x)
}

func (d *dragController) pointerUp() {
	if !d.pressed {
		return
	}
	d.pressed = false
	d.dragging = false
	if d.model.IsEmpty() && !d.options.HandleScale.TimeAxisDrag {
		return
	}
	d.model.EndScaleTime()
}

// pointerDownOutside cancels an in-progress drag when the pointer presses
// outside the axis.
func (d *dragController) pointerDownOutside() {
	wasDragging := d.dragging
	d.pressed = false
	d.dragging = false
	if !wasDragging {
		return
	}
	if !d.model.IsEmpty() && d.options.HandleScale.TimeAxisDrag {
		d.model.EndScaleTime()
	}
}

// doubleClick resets the time scale when enabled. It never touches drag state.
func (d *dragController) doubleClick() {
	if d.options.HandleScale.DoubleClickReset {
		d.model.ResetTimeScale()
	}
}

func (d *dragController) hoverEnter() {
	if d.setCursor == nil {
		return
	}
	if d.options.HandleScale.TimeAxisDrag {
		d.setCursor(gestures.CursorEWResize)
	}
}

func (d *dragController) hoverLeave() {
	if d.setCursor == nil {
		return
	}
	d.setCursor(gestures.CursorDefault)
}

// cancel force-ends an in-flight drag on widget teardown so the model never
// leaks an open scale operation.
func (d *dragController) cancel() {
	if d.dragging {
		d.model.EndScaleTime()
	}
	d.pressed = false
	d.dragging = false
}
