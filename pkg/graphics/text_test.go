package graphics

import "testing"

func TestTextStyle_FontString(t *testing.T) {
	regular := TextStyle{FontFamily: "Arial", FontSize: 12}
	if got := regular.FontString(); got != "12px Arial" {
		t.Fatalf("expected %q, got %q", "12px Arial", got)
	}
	bold := TextStyle{FontFamily: "Arial", FontSize: 12, FontWeight: FontWeightBold}
	if got := bold.FontString(); got != "bold 12px Arial" {
		t.Fatalf("expected %q, got %q", "bold 12px Arial", got)
	}
}

func TestTextStyle_FontStringDefaultsSize(t *testing.T) {
	style := TextStyle{FontFamily: "Arial"}
	if got := style.FontString(); got != "12px Arial" {
		t.Fatalf("expected default size in %q", got)
	}
}

func TestFontManager_MeasureWidthFallback(t *testing.T) {
	m := NewFontManager()
	got := m.MeasureWidth("10:00", TextStyle{FontFamily: "Unregistered", FontSize: 12})
	want := 5 * 12 * fallbackAdvance
	if got != want {
		t.Fatalf("expected fallback width %g, got %g", want, got)
	}
}

func TestFontManager_MeasureWidthScalesWithSize(t *testing.T) {
	m := NewFontManager()
	small := m.MeasureWidth("ab", TextStyle{FontFamily: "X", FontSize: 10})
	large := m.MeasureWidth("ab", TextStyle{FontFamily: "X", FontSize: 20})
	if large != small*2 {
		t.Fatalf("expected width to scale with font size: %g vs %g", small, large)
	}
}

func TestFontManager_RegisterFontRejectsGarbage(t *testing.T) {
	m := NewFontManager()
	if err := m.RegisterFont("Broken", []byte("not a font")); err == nil {
		t.Fatal("expected parse error for invalid font data")
	}
	if err := m.RegisterFont("", nil); err == nil {
		t.Fatal("expected error for empty family name")
	}
}
