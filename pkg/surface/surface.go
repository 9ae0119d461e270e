// Package surface models the bound drawing-surface resource a widget paints
// onto. A surface has a logical (layout) size and a physical bitmap size; the
// two are related by the device pixel ratio, which may be fractional and may
// change without a logical resize (e.g. the window moves to a different-DPI
// display).
package surface

import "github.com/go-drift/charts/pkg/graphics"

// BitmapSize is the physical pixel dimensions of a surface's backing store.
type BitmapSize struct {
	Width  int
	Height int
}

// Surface is an exclusively-owned drawing target.
//
// Implementations are single-threaded; all calls happen on the UI thread.
// Release frees the backing resource; no method may be called afterwards
// except Release itself, which is idempotent.
type Surface interface {
	// Canvas returns the draw target. Coordinates are physical pixels.
	Canvas() graphics.Canvas

	// LogicalSize returns the current layout size.
	LogicalSize() graphics.Size

	// BitmapSize returns the current physical backing size.
	BitmapSize() BitmapSize

	// PixelRatio returns bitmap width divided by logical width, recomputed
	// on every call since the ratio can change between resizes. Returns 1
	// while the logical width is zero.
	PixelRatio() float64

	// Resize sets the logical size, reallocating the bitmap to match the
	// current pixel ratio.
	Resize(size graphics.Size)

	// SetBitmapChangeHandler registers fn to run whenever the bitmap size
	// changes, from a logical resize or from a pixel-ratio change alone.
	// Pass nil to detach.
	SetBitmapChangeHandler(fn func(BitmapSize))

	// Release frees the backing resource exactly once.
	Release()
}

// Factory creates surfaces bound to the owning widget's container.
type Factory func() Surface
