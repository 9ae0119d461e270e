// Package chart holds the chart-wide options store shared by every pane and
// axis widget, plus the repaint invalidation levels.
package chart

import "github.com/go-drift/charts/pkg/graphics"

// LayoutOptions describes chart-wide colors and fonts.
type LayoutOptions struct {
	Background graphics.Color
	TextColor  graphics.Color
	FontSize   float64
	FontFamily string
}

// TimeScaleOptions describes the horizontal axis appearance.
type TimeScaleOptions struct {
	BorderVisible bool
	BorderColor   graphics.Color
}

// HandleScaleOptions describes which pointer interactions may mutate scales.
type HandleScaleOptions struct {
	// TimeAxisDrag enables scaling the time scale by dragging the axis.
	TimeAxisDrag bool
	// DoubleClickReset enables resetting the time scale on double-click.
	DoubleClickReset bool
}

// PriceScaleOptions describes one vertical price axis.
type PriceScaleOptions struct {
	Visible       bool
	BorderVisible bool
}

// Options is the chart-wide options store.
type Options struct {
	Layout          LayoutOptions
	TimeScale       TimeScaleOptions
	HandleScale     HandleScaleOptions
	LeftPriceScale  PriceScaleOptions
	RightPriceScale PriceScaleOptions
}

// DefaultOptions returns the standard light theme.
func DefaultOptions() *Options {
	return &Options{
		Layout: LayoutOptions{
			Background: graphics.ColorWhite,
			TextColor:  graphics.RGB(0x19, 0x19, 0x19),
			FontSize:   12,
			FontFamily: "sans-serif",
		},
		TimeScale: TimeScaleOptions{
			BorderVisible: true,
			BorderColor:   graphics.RGB(0x2B, 0x2B, 0x43),
		},
		HandleScale: HandleScaleOptions{
			TimeAxisDrag:     true,
			DoubleClickReset: true,
		},
		LeftPriceScale:  PriceScaleOptions{Visible: false, BorderVisible: true},
		RightPriceScale: PriceScaleOptions{Visible: true, BorderVisible: true},
	}
}
