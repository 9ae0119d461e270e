package graphics

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const (
	// defaultFontSize is used when no font size is specified.
	defaultFontSize = 12

	// fallbackAdvance approximates per-rune width, as a fraction of the font
	// size, for families with no registered face.
	fallbackAdvance = 0.6
)

// FontWeight represents a numeric font weight.
type FontWeight int

const (
	FontWeightNormal FontWeight = 400
	FontWeightBold   FontWeight = 700
)

// TextStyle describes the font used to render a line of text.
type TextStyle struct {
	FontFamily string
	FontSize   float64
	FontWeight FontWeight
}

// FontString returns the CSS-style font descriptor for the style, e.g.
// "12px Arial" or "bold 12px Arial". Two styles render identically iff
// their font strings are equal, so the string doubles as a cache key.
func (s TextStyle) FontString() string {
	size := s.FontSize
	if size <= 0 {
		size = defaultFontSize
	}
	if s.FontWeight >= FontWeightBold {
		return fmt.Sprintf("bold %gpx %s", size, s.FontFamily)
	}
	return fmt.Sprintf("%gpx %s", size, s.FontFamily)
}

// FontManager registers font faces and measures text width.
//
// Families without a registered face measure with a fixed-advance
// approximation so the toolkit stays usable headless.
type FontManager struct {
	mu    sync.RWMutex
	fonts map[string]*opentype.Font
	faces map[faceKey]font.Face
}

type faceKey struct {
	family string
	size   float64
}

var (
	defaultFontManager     *FontManager
	defaultFontManagerOnce sync.Once
)

// NewFontManager creates an empty font manager.
func NewFontManager() *FontManager {
	return &FontManager{
		fonts: make(map[string]*opentype.Font),
		faces: make(map[faceKey]font.Face),
	}
}

// DefaultFontManager returns the shared font manager.
func DefaultFontManager() *FontManager {
	defaultFontManagerOnce.Do(func() {
		defaultFontManager = NewFontManager()
	})
	return defaultFontManager
}

// RegisterFont registers a font family from TrueType/OpenType data.
func (m *FontManager) RegisterFont(family string, data []byte) error {
	if family == "" {
		return fmt.Errorf("font family required")
	}
	parsed, err := opentype.Parse(data)
	if err != nil {
		return fmt.Errorf("parse font %q: %w", family, err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fonts[family] = parsed
	return nil
}

// MeasureWidth returns the advance width of text in logical pixels for the
// given style.
func (m *FontManager) MeasureWidth(text string, style TextStyle) float64 {
	size := style.FontSize
	if size <= 0 {
		size = defaultFontSize
	}
	face := m.face(style.FontFamily, size)
	if face == nil {
		return float64(len([]rune(text))) * size * fallbackAdvance
	}
	return fixedToFloat(font.MeasureString(face, text))
}

// face resolves a cached face for the family at the given size, or nil when
// the family has no registered font.
func (m *FontManager) face(family string, size float64) font.Face {
	key := faceKey{family: family, size: size}
	m.mu.RLock()
	face, ok := m.faces[key]
	parsed := m.fonts[family]
	m.mu.RUnlock()
	if ok {
		return face
	}
	if parsed == nil {
		return nil
	}
	created, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil
	}
	m.mu.Lock()
	m.faces[key] = created
	m.mu.Unlock()
	return created
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
