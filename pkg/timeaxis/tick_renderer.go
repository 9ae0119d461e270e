package timeaxis

import (
	"math"

	"github.com/go-drift/charts/pkg/graphics"
)

// tickRenderer draws the tick glyphs and labels onto the base surface.
//
// Glyphs are batched into one path and filled with a single draw call to
// avoid antialiasing seams between adjacent ticks. Labels are drawn in two
// passes, regular then bold, so each pass sets the font exactly once and bold
// glyphs are never occluded by a later regular pass.
type tickRenderer struct {
	cache *fontGeometryCache
}

// maxTickWeight returns the emphasis threshold for the visible set.
//
// Weights strictly between 30 and 40 clamp to 30: a mid-tier boundary (hour
// start) must not render bold while a higher-frequency unweighted neighbor
// does not. The bounds and the clamp target are load-bearing.
func maxTickWeight(ticks []TickMark) int {
	maxWeight := ticks[0].Weight
	for _, mark := range ticks[1:] {
		if mark.Weight > maxWeight {
			maxWeight = mark.Weight
		}
	}
	if maxWeight > 30 && maxWeight < 40 {
		maxWeight = 30
	}
	return maxWeight
}

func (r *tickRenderer) paint(
	canvas graphics.Canvas,
	ticks []TickMark,
	geom Geometry,
	pixelRatio float64,
	borderVisible bool,
	borderColor graphics.Color,
	textColor graphics.Color,
) {
	if len(ticks) == 0 {
		return
	}
	maxWeight := maxTickWeight(ticks)

	if borderVisible {
		r.paintGlyphs(canvas, ticks, geom, pixelRatio, borderColor)
	}
	r.paintLabels(canvas, ticks, geom, pixelRatio, maxWeight, textColor)
}

// paintGlyphs draws the short vertical tick strokes, one batched path filled
// once, sized and offset so strokes stay crisp at fractional pixel ratios.
func (r *tickRenderer) paintGlyphs(
	canvas graphics.Canvas,
	ticks []TickMark,
	geom Geometry,
	pixelRatio float64,
	borderColor graphics.Color,
) {
	canvas.Save()
	defer canvas.Restore()

	tickWidth := math.Max(1, math.Floor(pixelRatio))
	tickOffset := math.Floor(pixelRatio * 0.5)
	tickLen := math.Round(geom.TickLength * pixelRatio)

	path := graphics.NewPath()
	for _, mark := range ticks {
		x := math.Round(mark.Coordinate*pixelRatio) - tickOffset
		path.AddRect(graphics.RectFromLTWH(x, 0, tickWidth, tickLen))
	}
	canvas.DrawPath(path, graphics.FillPaint(borderColor))
}

// paintLabels draws tick labels in logical units inside a scoped transform:
// first every tick below the emphasis threshold in the regular font, then
// every tick at or above it in the bold font.
func (r *tickRenderer) paintLabels(
	canvas graphics.Canvas,
	ticks []TickMark,
	geom Geometry,
	pixelRatio float64,
	maxWeight int,
	textColor graphics.Color,
) {
	canvas.Save()
	defer canvas.Restore()
	canvas.Scale(pixelRatio, pixelRatio)

	baseline := geom.BorderSize + geom.TickLength + geom.PaddingTop + geom.FontSize - geom.BaselineOffset

	regular := graphics.TextStyle{FontFamily: geom.FontFamily, FontSize: geom.FontSize}
	canvas.SetTextStyle(regular)
	for _, mark := range ticks {
		if mark.Weight < maxWeight {
			r.drawLabel(canvas, mark, baseline, textColor)
		}
	}

	bold := regular
	bold.FontWeight = graphics.FontWeightBold
	canvas.SetTextStyle(bold)
	for _, mark := range ticks {
		if mark.Weight >= maxWeight {
			r.drawLabel(canvas, mark, baseline, textColor)
		}
	}
}

func (r *tickRenderer) drawLabel(canvas graphics.Canvas, mark TickMark, baseline float64, textColor graphics.Color) {
	x := mark.Coordinate - r.cache.measure(mark.Label)/2
	canvas.DrawTextLine(mark.Label, graphics.Offset{X: x, Y: baseline}, textColor)
}
