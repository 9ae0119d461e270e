package timeaxis

import (
	"math"

	"github.com/go-drift/charts/pkg/graphics"
)

const (
	axisBorderSize = 1
	axisTickLength = 3
)

// Geometry is the font-derived layout of the axis: fixed border and tick
// sizes plus paddings and the baseline offset computed from the font size.
type Geometry struct {
	BorderSize float64
	TickLength float64
	FontSize   float64
	FontFamily string
	// Font is the derived font descriptor for the regular weight.
	Font string
	// BoldFont is the derived font descriptor for the bold weight.
	BoldFont string

	PaddingTop        float64
	PaddingBottom     float64
	PaddingHorizontal float64
	BaselineOffset    float64
}

// fontGeometryCache memoizes Geometry on the derived font string. It is a
// single-slot cache: a font change recomputes every derived field together
// and drops the text-width sub-cache keyed on the old font.
type fontGeometryCache struct {
	lastKey string
	value   Geometry
	widths  map[string]float64
	fonts   *graphics.FontManager
}

func (c *fontGeometryCache) get(fontSize float64, fontFamily string) Geometry {
	style := graphics.TextStyle{FontFamily: fontFamily, FontSize: fontSize}
	key := style.FontString()
	if key == c.lastKey {
		return c.value
	}
	c.lastKey = key
	c.widths = make(map[string]float64)
	c.value = Geometry{
		BorderSize: axisBorderSize,
		TickLength: axisTickLength,
		FontSize:   fontSize,
		FontFamily: fontFamily,
		Font:       key,
		BoldFont: graphics.TextStyle{
			FontFamily: fontFamily,
			FontSize:   fontSize,
			FontWeight: graphics.FontWeightBold,
		}.FontString(),
		PaddingTop:        math.Ceil(fontSize / 2.5),
		PaddingBottom:     math.Ceil(fontSize / 2.5),
		PaddingHorizontal: math.Ceil(fontSize / 2),
		BaselineOffset:    math.Round(fontSize / 5),
	}
	return c.value
}

// measure returns the width of text in the cached regular font, memoized
// until the font descriptor changes.
func (c *fontGeometryCache) measure(text string) float64 {
	if w, ok := c.widths[text]; ok {
		return w
	}
	manager := c.fonts
	if manager == nil {
		manager = graphics.DefaultFontManager()
	}
	w := manager.MeasureWidth(text, graphics.TextStyle{
		FontFamily: c.value.FontFamily,
		FontSize:   c.value.FontSize,
	})
	if c.widths == nil {
		c.widths = make(map[string]float64)
	}
	c.widths[text] = w
	return w
}
