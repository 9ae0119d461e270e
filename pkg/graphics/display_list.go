package graphics

// DisplayList is an immutable list of recorded drawing operations.
// It can be replayed onto any Canvas implementation, or inspected
// op-by-op in tests.
type DisplayList struct {
	ops  []DisplayOp
	size Size
}

// Replay plays the recorded operations onto the provided canvas.
func (d *DisplayList) Replay(canvas Canvas) {
	for _, op := range d.ops {
		op.execute(canvas)
	}
}

// Ops returns the recorded operations in draw order.
func (d *DisplayList) Ops() []DisplayOp {
	return d.ops
}

// Size returns the size recorded when the display list was created.
func (d *DisplayList) Size() Size {
	return d.size
}

// PictureRecorder records drawing commands into a display list.
type PictureRecorder struct {
	ops       []DisplayOp
	recording bool
	size      Size
}

// BeginRecording starts a new recording session.
func (r *PictureRecorder) BeginRecording(size Size) Canvas {
	r.ops = r.ops[:0]
	r.recording = true
	r.size = size
	return &recordingCanvas{recorder: r, size: size}
}

// EndRecording finishes the recording and returns a display list.
func (r *PictureRecorder) EndRecording() *DisplayList {
	if !r.recording {
		return &DisplayList{size: r.size}
	}
	r.recording = false
	ops := make([]DisplayOp, len(r.ops))
	copy(ops, r.ops)
	return &DisplayList{ops: ops, size: r.size}
}

func (r *PictureRecorder) append(op DisplayOp) {
	if !r.recording {
		return
	}
	r.ops = append(r.ops, op)
}

// DisplayOp is a single recorded canvas operation.
type DisplayOp interface {
	execute(canvas Canvas)
}

type recordingCanvas struct {
	recorder *PictureRecorder
	size     Size
}

func (c *recordingCanvas) Save() {
	c.recorder.append(OpSave{})
}

func (c *recordingCanvas) Restore() {
	c.recorder.append(OpRestore{})
}

func (c *recordingCanvas) Translate(dx, dy float64) {
	c.recorder.append(OpTranslate{Dx: dx, Dy: dy})
}

func (c *recordingCanvas) Scale(sx, sy float64) {
	c.recorder.append(OpScale{Sx: sx, Sy: sy})
}

func (c *recordingCanvas) ClipRect(rect Rect) {
	c.recorder.append(OpClipRect{Rect: rect})
}

func (c *recordingCanvas) Clear(color Color) {
	c.recorder.append(OpClear{Color: color})
}

func (c *recordingCanvas) ClearRect(rect Rect) {
	c.recorder.append(OpClearRect{Rect: rect})
}

func (c *recordingCanvas) DrawRect(rect Rect, paint Paint) {
	c.recorder.append(OpDrawRect{Rect: rect, Paint: paint})
}

func (c *recordingCanvas) DrawLine(start, end Offset, paint Paint) {
	c.recorder.append(OpDrawLine{Start: start, End: end, Paint: paint})
}

func (c *recordingCanvas) DrawPath(path *Path, paint Paint) {
	c.recorder.append(OpDrawPath{Path: deepCopyPath(path), Paint: paint})
}

func (c *recordingCanvas) SetTextStyle(style TextStyle) {
	c.recorder.append(OpSetTextStyle{Style: style})
}

func (c *recordingCanvas) DrawTextLine(text string, position Offset, color Color) {
	c.recorder.append(OpDrawTextLine{Text: text, Position: position, Color: color})
}

func (c *recordingCanvas) Size() Size {
	return c.size
}

// OpSave pushes canvas state.
type OpSave struct{}

func (OpSave) execute(canvas Canvas) { canvas.Save() }

// OpRestore pops canvas state.
type OpRestore struct{}

func (OpRestore) execute(canvas Canvas) { canvas.Restore() }

// OpTranslate moves the origin.
type OpTranslate struct {
	Dx, Dy float64
}

func (op OpTranslate) execute(canvas Canvas) { canvas.Translate(op.Dx, op.Dy) }

// OpScale scales the coordinate system.
type OpScale struct {
	Sx, Sy float64
}

func (op OpScale) execute(canvas Canvas) { canvas.Scale(op.Sx, op.Sy) }

// OpClipRect restricts drawing to a rectangle.
type OpClipRect struct {
	Rect Rect
}

func (op OpClipRect) execute(canvas Canvas) { canvas.ClipRect(op.Rect) }

// OpClear fills the canvas with a color.
type OpClear struct {
	Color Color
}

func (op OpClear) execute(canvas Canvas) { canvas.Clear(op.Color) }

// OpClearRect resets a rectangle to transparent.
type OpClearRect struct {
	Rect Rect
}

func (op OpClearRect) execute(canvas Canvas) { canvas.ClearRect(op.Rect) }

// OpDrawRect draws a rectangle.
type OpDrawRect struct {
	Rect  Rect
	Paint Paint
}

func (op OpDrawRect) execute(canvas Canvas) { canvas.DrawRect(op.Rect, op.Paint) }

// OpDrawLine draws a line segment.
type OpDrawLine struct {
	Start, End Offset
	Paint      Paint
}

func (op OpDrawLine) execute(canvas Canvas) { canvas.DrawLine(op.Start, op.End, op.Paint) }

// OpDrawPath draws a path.
type OpDrawPath struct {
	Path  *Path
	Paint Paint
}

func (op OpDrawPath) execute(canvas Canvas) { canvas.DrawPath(op.Path, op.Paint) }

// OpSetTextStyle sets the current font.
type OpSetTextStyle struct {
	Style TextStyle
}

func (op OpSetTextStyle) execute(canvas Canvas) { canvas.SetTextStyle(op.Style) }

// OpDrawTextLine draws a line of text.
type OpDrawTextLine struct {
	Text     string
	Position Offset
	Color    Color
}

func (op OpDrawTextLine) execute(canvas Canvas) {
	canvas.DrawTextLine(op.Text, op.Position, op.Color)
}

// deepCopyPath creates a fully independent copy of a Path so later mutation
// of the caller's path cannot alter the recording. Returns nil if path is nil.
func deepCopyPath(path *Path) *Path {
	if path == nil {
		return nil
	}
	pathCopy := &Path{Commands: make([]PathCommand, len(path.Commands))}
	for i, cmd := range path.Commands {
		pathCopy.Commands[i] = PathCommand{
			Op:   cmd.Op,
			Args: append([]float64(nil), cmd.Args...),
		}
	}
	return pathCopy
}
