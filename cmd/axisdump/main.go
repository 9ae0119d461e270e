// Package main renders a time axis headlessly and dumps the recorded drawing
// operations. Useful for eyeballing renderer changes without a GPU surface.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-drift/charts/pkg/chart"
	"github.com/go-drift/charts/pkg/graphics"
	"github.com/go-drift/charts/pkg/surface"
	"github.com/go-drift/charts/pkg/timeaxis"
)

// staticModel serves a fixed set of tick marks; a headless dump has no
// interactive time scale behind it.
type staticModel struct {
	marks []timeaxis.TickMark
	opts  chart.TimeScaleOptions
}

func (m *staticModel) IsEmpty() bool                   { return len(m.marks) == 0 }
func (m *staticModel) Marks() []timeaxis.TickMark      { return m.marks }
func (m *staticModel) Options() chart.TimeScaleOptions { return m.opts }
func (m *staticModel) StartScaleTime(float64)          {}
func (m *staticModel) ScaleTimeTo(float64)             {}
func (m *staticModel) EndScaleTime()                   {}
func (m *staticModel) ResetTimeScale()                 {}

func main() {
	width := flag.Float64("width", 640, "axis width in logical pixels")
	ratio := flag.Float64("ratio", 2, "device pixel ratio")
	configPath := flag.String("config", "", "optional yaml theme file")
	flag.Parse()

	options := chart.DefaultOptions()
	if *configPath != "" {
		loaded, err := chart.LoadOptions(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading options: %v\n", err)
			os.Exit(1)
		}
		options = loaded
	}

	model := &staticModel{
		opts: options.TimeScale,
		marks: []timeaxis.TickMark{
			{Coordinate: 80, Weight: 21, Label: "09:30"},
			{Coordinate: 200, Weight: 20, Label: "10:00"},
			{Coordinate: 320, Weight: 20, Label: "10:30"},
			{Coordinate: 440, Weight: 30, Label: "11:00"},
			{Coordinate: 560, Weight: 20, Label: "11:30"},
		},
	}

	var surfaces []*surface.InMemory
	factory := func() surface.Surface {
		s := surface.NewInMemory(*ratio)
		surfaces = append(surfaces, s)
		return s
	}

	axis := timeaxis.New(model, options, factory, nil, nil)
	defer axis.Release()

	axis.SetSizes(graphics.Size{Width: *width, Height: axis.OptimalHeight()}, 0, 0)
	axis.Paint(chart.InvalidationFull)

	names := []string{"base", "overlay"}
	for i, s := range surfaces {
		frame := s.Frame()
		bitmap := s.BitmapSize()
		fmt.Printf("%s surface (%dx%d bitmap, ratio %g):\n", names[i], bitmap.Width, bitmap.Height, s.PixelRatio())
		for _, op := range frame.Ops() {
			fmt.Printf("  %#v\n", op)
		}
	}
}
