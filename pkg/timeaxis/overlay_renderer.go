package timeaxis

import (
	"math"

	"github.com/go-drift/charts/pkg/graphics"
)

// paintOverlay fully clears the overlay surface's physical rectangle and
// delegates to each source's label views. There is no partial invalidation:
// the overlay carries only transient per-frame content (the crosshair time
// label), so clearing everything is cheaper than tracking damage.
//
// The renderer knows nothing about label content; each view draws itself
// inside its own save/restore scope so one view's canvas state never leaks
// into the next.
func paintOverlay(
	canvas graphics.Canvas,
	sources []LabelSource,
	geom Geometry,
	pixelRatio float64,
	size graphics.Size,
) {
	canvas.ClearRect(graphics.RectFromLTWH(
		0, 0,
		math.Ceil(size.Width*pixelRatio),
		math.Ceil(size.Height*pixelRatio),
	))

	for _, source := range sources {
		for _, view := range source.TimeAxisViews() {
			canvas.Save()
			view.Draw(canvas, geom, pixelRatio)
			canvas.Restore()
		}
	}
}
