package sizer

import "testing"

import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/font/gofont/gobold"

import "github.com/tinne26/memetxt/fract"

func parseTestFont(t *testing.T) *sfnt.Font {
	t.Helper()
	font, err := sfnt.Parse(gobold.TTF)
	if err != nil { t.Fatal(err) }
	return font
}

func TestDefaultSizer(t *testing.T) {
	font := parseTestFont(t)
	var buffer sfnt.Buffer
	size := fract.FromInt(40)

	var sizer DefaultSizer
	sizer.NotifyChange(font, &buffer, size)
	ascent := sizer.Ascent(font, &buffer, size)
	descent := sizer.Descent(font, &buffer, size)
	height := sizer.LineHeight(font, &buffer, size)
	if ascent <= 0 || descent <= 0 {
		t.Fatalf("expected positive ascent and descent, got %v and %v", ascent, descent)
	}
	if height < ascent + descent {
		t.Fatalf("line height %v smaller than ascent + descent", height)
	}
	if sizer.LineGap(font, &buffer, size) != height - ascent - descent {
		t.Fatal("inconsistent line gap")
	}

	index, err := font.GlyphIndex(&buffer, 'M')
	if err != nil { t.Fatal(err) }
	advance := sizer.GlyphAdvance(font, &buffer, size, index)
	if advance <= 0 || advance > size*2 {
		t.Fatalf("unexpected advance %v for size %v", advance, size)
	}

	// doubling the size roughly doubles the metrics
	sizer.NotifyChange(font, &buffer, size*2)
	if diff := (sizer.Ascent(font, &buffer, size*2) - ascent*2).Abs(); diff > 2 {
		t.Fatalf("ascent didn't scale linearly (diff %d)", diff)
	}

	sizer.NotifyChange(nil, &buffer, size)
	if sizer.LineHeight(nil, &buffer, size) != 0 {
		t.Fatal("expected zeroed metrics after nil font notification")
	}
}

func TestPaddedKernSizer(t *testing.T) {
	font := parseTestFont(t)
	var buffer sfnt.Buffer
	size := fract.FromInt(40)

	a, err := font.GlyphIndex(&buffer, 'A')
	if err != nil { t.Fatal(err) }
	v, err := font.GlyphIndex(&buffer, 'V')
	if err != nil { t.Fatal(err) }

	var plain DefaultSizer
	var padded PaddedKernSizer
	padded.SetPadding(fract.FromInt(3))
	if padded.GetPadding() != fract.FromInt(3) { t.Fatal("padding not stored") }
	plain.NotifyChange(font, &buffer, size)
	padded.NotifyChange(font, &buffer, size)

	expected := plain.Kern(font, &buffer, size, a, v) + fract.FromInt(3)
	got := padded.Kern(font, &buffer, size, a, v)
	if got != expected { t.Fatalf("expected kern %v, got %v", expected, got) }
	if padded.GlyphAdvance(font, &buffer, size, a) != plain.GlyphAdvance(font, &buffer, size, a) {
		t.Fatal("padding must not affect advances")
	}
}
