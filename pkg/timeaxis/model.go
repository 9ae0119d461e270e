// Package timeaxis renders the horizontal time axis of an interactive chart
// and mediates pointer-driven time-scale interaction.
//
// The package owns tick layout and styling, a two-surface compositor that
// separates full repaints from cheap overlay updates, font-metric geometry
// caching, and the drag state machine that turns horizontal pointer motion
// into time-scale commands. The time→coordinate mapping itself belongs to the
// time-scale model, consumed here through the Model interface.
package timeaxis

import (
	"github.com/go-drift/charts/pkg/chart"
	"github.com/go-drift/charts/pkg/graphics"
)

// TickMark is a labeled reference point on the time axis. Marks are produced
// by the time-scale model, ordered left-to-right by coordinate, and immutable
// for the duration of a paint cycle.
type TickMark struct {
	// Coordinate is the logical x position of the mark.
	Coordinate float64
	// Weight is a relative emphasis rank (day start > hour start). It is not
	// globally normalized; only the maximum of the visible set matters.
	Weight int
	// Label is the rendered text.
	Label string
}

// Model is the time-scale model consumed by the axis. It owns the
// time→coordinate mapping, tick generation, and the drag anchor.
type Model interface {
	// IsEmpty reports whether the scale has no visible data.
	IsEmpty() bool

	// Marks regenerates and returns the visible tick marks in coordinate
	// order. It is side-effecting and must be called at least once per
	// full paint cycle.
	Marks() []TickMark

	// Options returns the time-scale model options.
	Options() chart.TimeScaleOptions

	// StartScaleTime anchors a horizontal scale drag at x.
	StartScaleTime(x float64)

	// ScaleTimeTo continues a scale drag at x.
	ScaleTimeTo(x float64)

	// EndScaleTime finishes a scale drag.
	EndScaleTime()

	// ResetTimeScale restores the default time scale.
	ResetTimeScale()
}

// LabelView draws one transient label (e.g. the crosshair time) onto the
// axis overlay. The view owns its content; the axis only supplies geometry.
type LabelView interface {
	Draw(canvas graphics.Canvas, geom Geometry, pixelRatio float64)
}

// LabelSource produces the time-axis label views for one data source.
type LabelSource interface {
	TimeAxisViews() []LabelView
}
