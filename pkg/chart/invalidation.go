package chart

import "fmt"

// InvalidationLevel is the requested repaint scope for a widget.
type InvalidationLevel int

const (
	// InvalidationNone requests no repaint.
	InvalidationNone InvalidationLevel = iota
	// InvalidationCursor requests an overlay-only repaint (crosshair moved,
	// content unchanged).
	InvalidationCursor
	// InvalidationFull requests a repaint of base and overlay surfaces.
	InvalidationFull
)

func (l InvalidationLevel) String() string {
	switch l {
	case InvalidationNone:
		return "none"
	case InvalidationCursor:
		return "cursor"
	case InvalidationFull:
		return "full"
	default:
		return fmt.Sprintf("InvalidationLevel(%d)", int(l))
	}
}
