package surface

import (
	"math"

	"github.com/go-drift/charts/pkg/graphics"
)

// InMemory is a Surface backed by a recording canvas. It is the surface used
// in tests and headless rendering: everything drawn since the last Frame call
// is captured as a DisplayList.
type InMemory struct {
	recorder graphics.PictureRecorder
	canvas   graphics.Canvas
	logical  graphics.Size
	ratio    float64
	bitmap   BitmapSize
	onBitmap func(BitmapSize)
	released bool
}

// NewInMemory creates a zero-sized in-memory surface at the given device
// pixel ratio. Ratios <= 0 default to 1.
func NewInMemory(ratio float64) *InMemory {
	if ratio <= 0 {
		ratio = 1
	}
	s := &InMemory{ratio: ratio}
	s.canvas = s.recorder.BeginRecording(graphics.Size{})
	return s
}

// Canvas returns the recording draw target.
func (s *InMemory) Canvas() graphics.Canvas {
	return s.canvas
}

// LogicalSize returns the current layout size.
func (s *InMemory) LogicalSize() graphics.Size {
	return s.logical
}

// BitmapSize returns the current physical backing size.
func (s *InMemory) BitmapSize() BitmapSize {
	return s.bitmap
}

// PixelRatio returns bitmap width over logical width, or 1 when the surface
// has no logical width yet.
func (s *InMemory) PixelRatio() float64 {
	if s.logical.Width <= 0 {
		return 1
	}
	return float64(s.bitmap.Width) / s.logical.Width
}

// Resize sets the logical size and reallocates the bitmap at the current
// ratio. Fires the bitmap-change handler when the bitmap actually changed.
func (s *InMemory) Resize(size graphics.Size) {
	if s.released {
		return
	}
	s.logical = size
	s.updateBitmap()
}

// SetPixelRatio simulates a DPI change: the logical size is untouched but
// the bitmap is reallocated, firing the bitmap-change handler.
func (s *InMemory) SetPixelRatio(ratio float64) {
	if s.released || ratio <= 0 {
		return
	}
	s.ratio = ratio
	s.updateBitmap()
}

// SetBitmapChangeHandler registers fn for bitmap size changes; nil detaches.
func (s *InMemory) SetBitmapChangeHandler(fn func(BitmapSize)) {
	s.onBitmap = fn
}

// Frame ends the current recording and starts a new one, returning every
// operation drawn since the previous Frame call.
func (s *InMemory) Frame() *graphics.DisplayList {
	frame := s.recorder.EndRecording()
	physical := graphics.Size{
		Width:  float64(s.bitmap.Width),
		Height: float64(s.bitmap.Height),
	}
	s.canvas = s.recorder.BeginRecording(physical)
	return frame
}

// Release frees the surface. Further draws and resizes are ignored and the
// bitmap-change handler is detached.
func (s *InMemory) Release() {
	if s.released {
		return
	}
	s.released = true
	s.onBitmap = nil
	s.recorder.EndRecording()
}

// Released reports whether Release has been called.
func (s *InMemory) Released() bool {
	return s.released
}

func (s *InMemory) updateBitmap() {
	next := BitmapSize{
		Width:  int(math.Ceil(s.logical.Width * s.ratio)),
		Height: int(math.Ceil(s.logical.Height * s.ratio)),
	}
	if next == s.bitmap {
		return
	}
	s.bitmap = next
	physical := graphics.Size{Width: float64(next.Width), Height: float64(next.Height)}
	s.recorder.EndRecording()
	s.canvas = s.recorder.BeginRecording(physical)
	if s.onBitmap != nil {
		s.onBitmap(next)
	}
}
