package timeaxis

import (
	"github.com/go-drift/charts/pkg/graphics"
	"github.com/go-drift/charts/pkg/surface"
)

// compositor owns the axis's two same-sized drawing surfaces: the base
// surface for full repaints and the overlay surface for per-frame content.
// Logical-size-changed detection happens once here and fans out to both
// handles; each handle keeps its own pixel-ratio-aware bitmap.
type compositor struct {
	base    surface.Surface
	overlay surface.Surface
	size    graphics.Size

	// onLightUpdate runs after either surface's bitmap changes (including
	// pixel-ratio-only changes). It must not paint synchronously.
	onLightUpdate func()

	released bool
}

func newCompositor(factory surface.Factory, onLightUpdate func()) *compositor {
	c := &compositor{
		base:          factory(),
		overlay:       factory(),
		onLightUpdate: onLightUpdate,
	}
	c.base.SetBitmapChangeHandler(func(surface.BitmapSize) { c.lightUpdate() })
	c.overlay.SetBitmapChangeHandler(func(surface.BitmapSize) { c.lightUpdate() })
	return c
}

// Resize sets the logical size of both surfaces in lockstep. Equal sizes are
// a no-op so redundant layout passes never reallocate bitmaps.
func (c *compositor) Resize(size graphics.Size) {
	if c.released || size == c.size {
		return
	}
	c.size = size
	c.base.Resize(size)
	c.overlay.Resize(size)
}

// Size returns the current logical size.
func (c *compositor) Size() graphics.Size {
	return c.size
}

// Base returns the base canvas with its current pixel ratio. The ratio is
// recomputed per call because it can change between resizes.
func (c *compositor) Base() (graphics.Canvas, float64) {
	return c.base.Canvas(), c.base.PixelRatio()
}

// Overlay returns the overlay canvas with its current pixel ratio.
func (c *compositor) Overlay() (graphics.Canvas, float64) {
	return c.overlay.Canvas(), c.overlay.PixelRatio()
}

// Release detaches bitmap notifications and frees both surfaces exactly once.
func (c *compositor) Release() {
	if c.released {
		return
	}
	c.released = true
	c.onLightUpdate = nil
	c.base.SetBitmapChangeHandler(nil)
	c.overlay.SetBitmapChangeHandler(nil)
	c.base.Release()
	c.overlay.Release()
}

func (c *compositor) lightUpdate() {
	if c.released || c.onLightUpdate == nil {
		return
	}
	c.onLightUpdate()
}
