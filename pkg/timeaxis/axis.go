package timeaxis

import (
	"math"

	"github.com/go-drift/charts/pkg/chart"
	"github.com/go-drift/charts/pkg/errors"
	"github.com/go-drift/charts/pkg/gestures"
	"github.com/go-drift/charts/pkg/graphics"
	"github.com/go-drift/charts/pkg/surface"
)

// Axis is the time-axis widget. It is constructed once per chart and lives
// for the chart's lifetime; the surrounding widget feeds it sizes, pointer
// events, and paint requests.
type Axis struct {
	model   Model
	options *chart.Options
	factory surface.Factory

	comp  *compositor
	cache fontGeometryCache
	ticks tickRenderer
	drag  dragController

	leftStub   *axisStub
	rightStub  *axisStub
	leftScale  chart.PriceScaleOptions
	rightScale chart.PriceScaleOptions

	sources []LabelSource

	released bool
}

// New creates the axis. onLightUpdate runs whenever either surface's bitmap
// changes (resize or pixel-ratio change); it must trigger a re-layout, not a
// synchronous paint. setCursor receives hover cursor hints and may be nil.
func New(
	model Model,
	options *chart.Options,
	factory surface.Factory,
	onLightUpdate func(),
	setCursor func(gestures.Cursor),
) *Axis {
	a := &Axis{
		model:   model,
		options: options,
		factory: factory,
	}
	a.comp = newCompositor(factory, onLightUpdate)
	a.ticks = tickRenderer{cache: &a.cache}
	a.drag = dragController{model: model, options: options, setCursor: setCursor}
	return a
}

// SetFontManager overrides the font manager used for label measurement.
// Defaults to graphics.DefaultFontManager.
func (a *Axis) SetFontManager(m *graphics.FontManager) {
	a.cache.fonts = m
}

// SetSizes resizes both drawing surfaces in lockstep (no-op for an unchanged
// logical size) and forwards the stub widths to whichever corner stubs exist.
// Stub widths are forwarded on every call, even when the axis size is
// unchanged, because price-axis widths resize independently.
func (a *Axis) SetSizes(size graphics.Size, leftStubWidth, rightStubWidth float64) {
	if a.released {
		return
	}
	a.comp.Resize(size)
	if a.leftStub != nil {
		a.leftStub.SetSize(graphics.Size{Width: leftStubWidth, Height: size.Height})
	}
	if a.rightStub != nil {
		a.rightStub.SetSize(graphics.Size{Width: rightStubWidth, Height: size.Height})
	}
}

// OptimalHeight returns the axis height that fits the configured font:
// border, tick, font size, and both paddings, ceiling-rounded.
func (a *Axis) OptimalHeight() float64 {
	geom := a.geometry()
	return math.Ceil(geom.BorderSize + geom.TickLength + geom.FontSize + geom.PaddingTop + geom.PaddingBottom)
}

// Paint repaints the axis at the requested invalidation level: None is a
// no-op, Cursor repaints only the overlay, any other level repaints base and
// overlay. Zero-area surfaces paint nothing.
func (a *Axis) Paint(level chart.InvalidationLevel) {
	defer errors.Recover("timeaxis.Axis.Paint")
	if a.released || level == chart.InvalidationNone {
		return
	}
	size := a.comp.Size()
	if size.IsEmpty() {
		return
	}
	geom := a.geometry()

	if level != chart.InvalidationCursor {
		a.paintBase(geom, size)
		if a.leftStub != nil {
			a.leftStub.Paint()
		}
		if a.rightStub != nil {
			a.rightStub.Paint()
		}
	}

	canvas, ratio := a.comp.Overlay()
	paintOverlay(canvas, a.sources, geom, ratio, size)
}

// HandlePointer routes a normalized pointer event to the drag controller.
func (a *Axis) HandlePointer(event gestures.PointerEvent) {
	if a.released {
		return
	}
	a.drag.handlePointer(event)
}

// AddLabelSource registers a source of transient time-axis labels
// (e.g. the crosshair).
func (a *Axis) AddLabelSource(source LabelSource) {
	a.sources = append(a.sources, source)
}

// RemoveLabelSource unregisters a previously added source.
func (a *Axis) RemoveLabelSource(source LabelSource) {
	for i, s := range a.sources {
		if s == source {
			a.sources = append(a.sources[:i], a.sources[i+1:]...)
			return
		}
	}
}

// Release cancels any in-flight drag, destroys the corner stubs, and frees
// both surfaces exactly once. No notification received afterwards causes a
// draw or a model call.
func (a *Axis) Release() {
	if a.released {
		return
	}
	a.released = true
	a.drag.cancel()
	if a.leftStub != nil {
		a.leftStub.Release()
		a.leftStub = nil
	}
	if a.rightStub != nil {
		a.rightStub.Release()
		a.rightStub = nil
	}
	a.comp.Release()
	a.sources = nil
}

func (a *Axis) geometry() Geometry {
	return a.cache.get(a.options.Layout.FontSize, a.options.Layout.FontFamily)
}

// paintBase repaints the background, border line, and ticks. Marks is called
// exactly once per full paint, before any emptiness-dependent drawing, since
// it regenerates the model's tick content.
func (a *Axis) paintBase(geom Geometry, size graphics.Size) {
	canvas, ratio := a.comp.Base()
	marks := a.model.Marks()
	scaleOptions := a.model.Options()

	canvas.Save()
	defer canvas.Restore()

	physicalWidth := math.Ceil(size.Width * ratio)
	physicalHeight := math.Ceil(size.Height * ratio)
	canvas.DrawRect(
		graphics.RectFromLTWH(0, 0, physicalWidth, physicalHeight),
		graphics.FillPaint(a.options.Layout.Background),
	)
	if scaleOptions.BorderVisible {
		borderHeight := math.Max(1, math.Floor(ratio))
		canvas.DrawRect(
			graphics.RectFromLTWH(0, 0, physicalWidth, borderHeight),
			graphics.FillPaint(a.options.TimeScale.BorderColor),
		)
	}
	a.ticks.paint(
		canvas, marks, geom, ratio,
		scaleOptions.BorderVisible,
		a.options.TimeScale.BorderColor,
		a.options.Layout.TextColor,
	)
}
