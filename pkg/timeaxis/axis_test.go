package timeaxis

import (
	"testing"

	"github.com/go-drift/charts/pkg/chart"
	"github.com/go-drift/charts/pkg/errors"
	"github.com/go-drift/charts/pkg/gestures"
	"github.com/go-drift/charts/pkg/graphics"
)

func newAxisForTest(ratio float64) (*Axis, *fakeModel, *fakeFactory, *chart.Options) {
	model := newFakeModel()
	factory := &fakeFactory{ratio: ratio}
	options := chart.DefaultOptions()
	axis := New(model, options, factory.new, nil, nil)
	return axis, model, factory, options
}

func TestAxis_OptimalHeight(t *testing.T) {
	axis, _, _, _ := newAxisForTest(1)
	defer axis.Release()

	// 1 border + 3 tick + 12 font + 5 top + 5 bottom
	if got := axis.OptimalHeight(); got != 26 {
		t.Fatalf("expected height 26, got %g", got)
	}
}

func TestAxis_FullPaintRendersBaseAndOverlay(t *testing.T) {
	axis, model, factory, _ := newAxisForTest(2)
	defer axis.Release()
	model.marks = []TickMark{{Coordinate: 20, Weight: 10, Label: "10:00"}}

	axis.SetSizes(graphics.Size{Width: 100, Height: 26}, 0, 0)
	axis.Paint(chart.InvalidationFull)

	if model.marksCalls != 1 {
		t.Fatalf("expected Marks called exactly once, got %d", model.marksCalls)
	}

	base := factory.base().Frame()
	rects := opsOfType[graphics.OpDrawRect](base)
	if len(rects) != 2 {
		t.Fatalf("expected background and border rects, got %d", len(rects))
	}
	if bg := rects[0].Rect; bg.Width() != 200 || bg.Height() != 52 {
		t.Fatalf("expected 200x52 background, got %gx%g", bg.Width(), bg.Height())
	}
	if border := rects[1].Rect; border.Height() != 2 {
		t.Fatalf("expected border height 2 at ratio 2, got %g", border.Height())
	}
	if paths := opsOfType[graphics.OpDrawPath](base); len(paths) != 1 {
		t.Fatalf("expected one batched tick path, got %d", len(paths))
	}
	if texts := opsOfType[graphics.OpDrawTextLine](base); len(texts) != 1 {
		t.Fatalf("expected one label, got %d", len(texts))
	}

	overlay := factory.overlay().Frame()
	clears := opsOfType[graphics.OpClearRect](overlay)
	if len(clears) != 1 {
		t.Fatalf("expected the overlay cleared, got %d clears", len(clears))
	}
	if c := clears[0].Rect; c.Width() != 200 || c.Height() != 52 {
		t.Fatalf("expected 200x52 clear, got %gx%g", c.Width(), c.Height())
	}
}

func TestAxis_CursorPaintTouchesOnlyOverlay(t *testing.T) {
	axis, model, factory, _ := newAxisForTest(1)
	defer axis.Release()
	model.marks = []TickMark{{Coordinate: 20, Weight: 10, Label: "10:00"}}

	axis.SetSizes(graphics.Size{Width: 100, Height: 26}, 0, 0)
	axis.Paint(chart.InvalidationCursor)

	if model.marksCalls != 0 {
		t.Fatalf("expected Marks untouched on a cursor paint, got %d calls", model.marksCalls)
	}
	if ops := factory.base().Frame().Ops(); len(ops) != 0 {
		t.Fatalf("expected the base surface untouched, got %d ops", len(ops))
	}
	if clears := opsOfType[graphics.OpClearRect](factory.overlay().Frame()); len(clears) != 1 {
		t.Fatalf("expected overlay clear, got %d", len(clears))
	}
}

func TestAxis_PaintNoOps(t *testing.T) {
	axis, model, factory, _ := newAxisForTest(1)
	defer axis.Release()

	// Zero-area surfaces paint nothing at any level.
	axis.Paint(chart.InvalidationFull)
	if ops := factory.base().Frame().Ops(); len(ops) != 0 {
		t.Fatalf("expected no paint on a zero-size axis, got %d ops", len(ops))
	}

	axis.SetSizes(graphics.Size{Width: 100, Height: 26}, 0, 0)
	axis.Paint(chart.InvalidationNone)
	if ops := factory.base().Frame().Ops(); len(ops) != 0 {
		t.Fatalf("expected InvalidationNone to paint nothing, got %d ops", len(ops))
	}
	if model.marksCalls != 0 {
		t.Fatal("expected the model untouched")
	}
}

func TestAxis_SetSizesForwardsStubWidthsEveryCall(t *testing.T) {
	model := newFakeModel()
	factory := &fakeFactory{ratio: 1}
	options := chart.DefaultOptions()

	var lightUpdates int
	axis := New(model, options, factory.new, func() { lightUpdates++ }, nil)
	defer axis.Release()

	axis.SyncPriceScales(options.LeftPriceScale, options.RightPriceScale)

	size := graphics.Size{Width: 100, Height: 26}
	axis.SetSizes(size, 0, 70)
	if lightUpdates != 2 {
		t.Fatalf("expected one bitmap notification per surface, got %d", lightUpdates)
	}

	// Same axis size, new price-axis width: no reallocation, but the stub
	// still picks up the width.
	axis.SetSizes(size, 0, 80)
	if lightUpdates != 2 {
		t.Fatalf("expected no notifications for an unchanged size, got %d", lightUpdates)
	}
	if _, right := axis.StubWidths(); right != 80 {
		t.Fatalf("expected stub width 80, got %g", right)
	}
}

func TestAxis_PixelRatioChangeFiresLightUpdate(t *testing.T) {
	model := newFakeModel()
	factory := &fakeFactory{ratio: 1}
	options := chart.DefaultOptions()

	var lightUpdates int
	axis := New(model, options, factory.new, func() { lightUpdates++ }, nil)
	defer axis.Release()

	axis.SetSizes(graphics.Size{Width: 100, Height: 26}, 0, 0)
	lightUpdates = 0

	factory.base().SetPixelRatio(2)
	if lightUpdates != 1 {
		t.Fatalf("expected a DPI change to notify once, got %d", lightUpdates)
	}
}

func TestAxis_LabelSourcesAddRemove(t *testing.T) {
	axis, _, _, _ := newAxisForTest(1)
	defer axis.Release()

	viewA := &fakeLabelView{}
	viewB := &fakeLabelView{}
	sourceA := &fakeLabelSource{views: []LabelView{viewA}}
	sourceB := &fakeLabelSource{views: []LabelView{viewB}}
	axis.AddLabelSource(sourceA)
	axis.AddLabelSource(sourceB)

	axis.SetSizes(graphics.Size{Width: 100, Height: 26}, 0, 0)
	axis.Paint(chart.InvalidationCursor)
	if viewA.drawn != 1 || viewB.drawn != 1 {
		t.Fatalf("expected both views drawn, got %d/%d", viewA.drawn, viewB.drawn)
	}

	axis.RemoveLabelSource(sourceA)
	axis.Paint(chart.InvalidationCursor)
	if viewA.drawn != 1 || viewB.drawn != 2 {
		t.Fatalf("expected only the remaining view drawn, got %d/%d", viewA.drawn, viewB.drawn)
	}
}

func TestAxis_ReleaseTeardown(t *testing.T) {
	axis, model, factory, options := newAxisForTest(1)
	axis.SyncPriceScales(options.LeftPriceScale, options.RightPriceScale)
	axis.SetSizes(graphics.Size{Width: 100, Height: 26}, 0, 70)

	axis.HandlePointer(gestures.PointerEvent{Phase: gestures.PhaseDown, X: 5})
	axis.Release()

	// The in-flight drag ends cleanly.
	if got := model.commands[len(model.commands)-1]; got != "end" {
		t.Fatalf("expected release to end the drag, got %v", model.commands)
	}
	for i, s := range factory.created {
		if !s.Released() {
			t.Fatalf("expected surface %d released", i)
		}
	}

	commands := len(model.commands)
	axis.HandlePointer(gestures.PointerEvent{Phase: gestures.PhaseDown, X: 5})
	axis.Paint(chart.InvalidationFull)
	axis.SetSizes(graphics.Size{Width: 200, Height: 30}, 0, 0)
	if len(model.commands) != commands || model.marksCalls != 0 {
		t.Fatal("expected a released axis to ignore input and paint requests")
	}

	axis.Release()
	if len(model.commands) != commands {
		t.Fatal("expected the second release to issue nothing")
	}
}

type panicView struct{}

func (panicView) Draw(graphics.Canvas, Geometry, float64) {
	panic("label source misbehaved")
}

type capturePanicHandler struct {
	panics []*errors.PanicError
}

func (h *capturePanicHandler) HandleError(*errors.ChartError) {}

func (h *capturePanicHandler) HandlePanic(err *errors.PanicError) {
	h.panics = append(h.panics, err)
}

func TestAxis_PaintRecoversFromPanickingView(t *testing.T) {
	handler := &capturePanicHandler{}
	errors.SetHandler(handler)
	defer errors.SetHandler(nil)

	axis, _, _, _ := newAxisForTest(1)
	defer axis.Release()
	axis.AddLabelSource(&fakeLabelSource{views: []LabelView{panicView{}}})
	axis.SetSizes(graphics.Size{Width: 100, Height: 26}, 0, 0)

	axis.Paint(chart.InvalidationFull)

	if len(handler.panics) != 1 {
		t.Fatalf("expected the panic reported once, got %d", len(handler.panics))
	}
	if handler.panics[0].Op != "timeaxis.Axis.Paint" {
		t.Fatalf("unexpected op %q", handler.panics[0].Op)
	}
}
