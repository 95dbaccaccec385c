package display

import "testing"

func TestSupported(t *testing.T) {
	for c := rune(0); c < 0x80; c++ {
		want := c == ' ' || (c >= 'A' && c <= 'Z')
		if v := Supported(c); v != want {
			t.Errorf("Supported(%q) = %t, expected %t", c, v, want)
		}
	}
	if Supported('É') {
		t.Error("expected non-ASCII letters to be unsupported")
	}
}

func TestGlyphs(t *testing.T) {
	if len(glyphs) != 27 {
		t.Fatalf("expected 27 glyphs, got %d", len(glyphs))
	}
	g, _ := glyph(' ')
	if *g != [glyphWidth]byte{} {
		t.Errorf("expected a blank space glyph, got % x", g[:])
	}
	for c := 'A'; c <= 'Z'; c++ {
		g, ok := glyph(c)
		if !ok {
			t.Fatalf("no glyph for %c", c)
		}
		var lit bool
		for _, col := range g {
			if col&0x80 != 0 {
				t.Errorf("glyph %c uses the eighth row: % x", c, g[:])
			}
			lit = lit || col != 0
		}
		if !lit {
			t.Errorf("glyph %c is blank", c)
		}
	}
}
