package graphics

// Canvas records or renders 2D drawing commands.
//
// Implementations keep a state stack for transforms and clips. Every stateful
// change (transform, clip, text style) must be scoped between Save and Restore
// so it cannot leak to sibling painters sharing the same canvas.
type Canvas interface {
	// Save pushes the current transform, clip, and text style state.
	Save()

	// Restore pops the most recent saved state.
	Restore()

	// Translate moves the origin by the given offset.
	Translate(dx, dy float64)

	// Scale scales the coordinate system by the given factors.
	Scale(sx, sy float64)

	// ClipRect restricts future drawing to the given rectangle.
	ClipRect(rect Rect)

	// Clear fills the entire canvas with the given color.
	Clear(color Color)

	// ClearRect resets the given rectangle to fully transparent pixels.
	ClearRect(rect Rect)

	// DrawRect draws a rectangle with the provided paint.
	DrawRect(rect Rect, paint Paint)

	// DrawLine draws a line segment with the provided paint.
	DrawLine(start, end Offset, paint Paint)

	// DrawPath draws a path with the provided paint. Use a single path for
	// batched shapes to keep them in one draw call.
	DrawPath(path *Path, paint Paint)

	// SetTextStyle sets the font used by subsequent DrawTextLine calls.
	SetTextStyle(style TextStyle)

	// DrawTextLine draws a single line of text with its baseline at position.
	DrawTextLine(text string, position Offset, color Color)

	// Size returns the size of the canvas in pixels.
	Size() Size
}
