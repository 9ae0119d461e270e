package timeaxis

import (
	"fmt"

	"github.com/go-drift/charts/pkg/chart"
	"github.com/go-drift/charts/pkg/graphics"
	"github.com/go-drift/charts/pkg/surface"
)

// fakeModel records every time-scale command it receives.
type fakeModel struct {
	empty      bool
	marks      []TickMark
	scaleOpts  chart.TimeScaleOptions
	marksCalls int
	commands   []string
}

func newFakeModel() *fakeModel {
	return &fakeModel{scaleOpts: chart.TimeScaleOptions{BorderVisible: true}}
}

func (m *fakeModel) IsEmpty() bool { return m.empty }

func (m *fakeModel) Marks() []TickMark {
	m.marksCalls++
	return m.marks
}

func (m *fakeModel) Options() chart.TimeScaleOptions { return m.scaleOpts }

func (m *fakeModel) StartScaleTime(x float64) {
	m.commands = append(m.commands, fmt.Sprintf("start:%g", x))
}

func (m *fakeModel) ScaleTimeTo(x float64) {
	m.commands = append(m.commands, fmt.Sprintf("scale:%g", x))
}

func (m *fakeModel) EndScaleTime() {
	m.commands = append(m.commands, "end")
}

func (m *fakeModel) ResetTimeScale() {
	m.commands = append(m.commands, "reset")
}

// fakeFactory hands out in-memory surfaces and remembers them, in creation
// order, so tests can inspect frames and release state. The axis creates the
// base surface first and the overlay second.
type fakeFactory struct {
	ratio   float64
	created []*surface.InMemory
}

func (f *fakeFactory) new() surface.Surface {
	ratio := f.ratio
	if ratio == 0 {
		ratio = 1
	}
	s := surface.NewInMemory(ratio)
	f.created = append(f.created, s)
	return s
}

func (f *fakeFactory) base() *surface.InMemory    { return f.created[0] }
func (f *fakeFactory) overlay() *surface.InMemory { return f.created[1] }

// fakeLabelView records a line so tests can see the delegation happened.
type fakeLabelView struct {
	drawn int
}

func (v *fakeLabelView) Draw(canvas graphics.Canvas, geom Geometry, pixelRatio float64) {
	v.drawn++
	canvas.DrawLine(
		graphics.Offset{X: 0, Y: 0},
		graphics.Offset{X: 1, Y: 1},
		graphics.FillPaint(graphics.ColorBlack),
	)
}

type fakeLabelSource struct {
	views []LabelView
}

func (s *fakeLabelSource) TimeAxisViews() []LabelView { return s.views }

// opsOfType filters a display list down to ops of one concrete type.
func opsOfType[T graphics.DisplayOp](dl *graphics.DisplayList) []T {
	var out []T
	for _, op := range dl.Ops() {
		if typed, ok := op.(T); ok {
			out = append(out, typed)
		}
	}
	return out
}
