package timeaxis

import (
	"math"

	"github.com/go-drift/charts/pkg/chart"
	"github.com/go-drift/charts/pkg/graphics"
	"github.com/go-drift/charts/pkg/surface"
)

// axisStub fills the corner between the time axis and one price axis. It has
// no data content: it paints the chart background and, when both axes agree,
// the border line, sized to the price axis width so the panes stay aligned.
type axisStub struct {
	surf     surface.Surface
	size     graphics.Size
	options  *chart.Options
	released bool

	// borderVisible ANDs the owning price scale's border flag with the time
	// scale's border flag; the stub shows a border only when both agree.
	borderVisible func() bool
}

func newAxisStub(factory surface.Factory, options *chart.Options, borderVisible func() bool) *axisStub {
	return &axisStub{
		surf:          factory(),
		options:       options,
		borderVisible: borderVisible,
	}
}

// SetSize resizes the stub's surface; equal sizes are a no-op.
func (s *axisStub) SetSize(size graphics.Size) {
	if s.released || size == s.size {
		return
	}
	s.size = size
	s.surf.Resize(size)
}

// Width returns the stub's logical width.
func (s *axisStub) Width() float64 {
	return s.size.Width
}

// BorderVisible reports whether the stub currently shows its border line.
func (s *axisStub) BorderVisible() bool {
	return s.borderVisible()
}

// Paint fills the stub's background and draws the border line along the top
// edge when visible. Zero-area stubs paint nothing.
func (s *axisStub) Paint() {
	if s.released || s.size.IsEmpty() {
		return
	}
	canvas := s.surf.Canvas()
	ratio := s.surf.PixelRatio()
	physicalWidth := math.Ceil(s.size.Width * ratio)
	physicalHeight := math.Ceil(s.size.Height * ratio)

	canvas.Save()
	defer canvas.Restore()
	canvas.DrawRect(
		graphics.RectFromLTWH(0, 0, physicalWidth, physicalHeight),
		graphics.FillPaint(s.options.Layout.Background),
	)
	if s.borderVisible() {
		borderHeight := math.Max(1, math.Floor(ratio))
		canvas.DrawRect(
			graphics.RectFromLTWH(0, 0, physicalWidth, borderHeight),
			graphics.FillPaint(s.options.TimeScale.BorderColor),
		)
	}
}

// Release frees the stub's surface exactly once.
func (s *axisStub) Release() {
	if s.released {
		return
	}
	s.released = true
	s.surf.Release()
}
