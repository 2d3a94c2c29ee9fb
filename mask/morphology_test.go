package mask

import "image"
import "testing"
import "image/color"

import "github.com/tinne26/memetxt/fract"

func TestDilateErodeZeroRadius(t *testing.T) {
	src := image.NewAlpha(image.Rect(3, 3, 7, 7))
	src.Pix[5] = 200
	for _, result := range []*image.Alpha{ Dilate(src, 0), Erode(src, -1) } {
		if result.Rect != src.Rect || alphaSum(result) != 200 {
			t.Fatal("expected a plain copy")
		}
		if &result.Pix[0] == &src.Pix[0] { t.Fatal("expected a new buffer") }
	}
}

func TestDilateSinglePixel(t *testing.T) {
	src := image.NewAlpha(image.Rect(0, 0, 1, 1))
	src.Pix[0] = 255
	dilated := Dilate(src, 1)
	if dilated.Rect != image.Rect(-1, -1, 2, 2) {
		t.Fatalf("unexpected bounds %v", dilated.Rect)
	}
	if dilated.AlphaAt(0, 0).A != 255 || dilated.AlphaAt(1, 0).A != 255 || dilated.AlphaAt(0, -1).A != 255 {
		t.Fatal("expected full coverage on the pixel and its direct neighbours")
	}
	if a := dilated.AlphaAt(1, 1).A; a == 0 || a == 255 {
		t.Fatalf("expected partial diagonal coverage, got %d", a)
	}
	if dilated.AlphaAt(2, 0).A != 0 { t.Fatal("unexpected coverage 2px away") }

	// half transparent sources produce half transparent growth
	src.Pix[0] = 128
	dilated = Dilate(src, 1)
	if dilated.AlphaAt(1, 0).A != 128 { t.Fatalf("got %d", dilated.AlphaAt(1, 0).A) }
}

func TestErodeShrinks(t *testing.T) {
	src := image.NewAlpha(image.Rect(0, 0, 9, 9))
	for i := range src.Pix { src.Pix[i] = 255 }
	eroded := Erode(src, 1)
	if eroded.AlphaAt(4, 4).A != 255 { t.Fatal("expected the center to survive") }
	if eroded.AlphaAt(0, 4).A != 0 { t.Fatal("expected the border to be eroded") }
	if alphaSum(eroded) >= alphaSum(src) { t.Fatal("erosion must remove coverage") }
}

func TestHollowZeroThickness(t *testing.T) {
	src := image.NewAlpha(image.Rect(0, 0, 4, 4))
	for i := range src.Pix { src.Pix[i] = 255 }
	if alphaSum(Hollow(src, 0)) != 0 { t.Fatal("expected empty ring") }
}

var opaque, transparent = color.Alpha{255}, color.Alpha{0}

func maxAlphaDiff(a, b []uint8) int {
	var maxDiff int
	for i := range a {
		diff := int(a[i]) - int(b[i])
		if diff < 0 { diff = -diff }
		if diff > maxDiff { maxDiff = diff }
	}
	return maxDiff
}

func TestDistanceDilationMatchesKernel(t *testing.T) {
	src := image.NewAlpha(image.Rect(0, 0, 24, 24))
	for y := 4; y < 18; y++ {
		for x := 6; x < 14; x++ { src.SetAlpha(x, y, opaque) }
	}
	src.SetAlpha(20, 20, opaque)

	for _, radius := range []float64{ 1, 2.5, 4.5, 7 } {
		kernel := newDiscKernel(radius)
		scattered := dilateWith(src, kernel)
		padded := image.NewAlpha(scattered.Rect)
		for y := 0; y < 24; y++ {
			for x := 0; x < 24; x++ { padded.SetAlpha(x, y, src.AlphaAt(x, y)) }
		}
		spread := spreadByDistance(padded.Pix, padded.Rect.Dx(), padded.Rect.Dy(), radius)
		if diff := maxAlphaDiff(scattered.Pix, spread); diff > 1 {
			t.Fatalf("radius %.1f: distance dilation differs by %d", radius, diff)
		}
	}
}

func TestDistanceErosionMatchesKernel(t *testing.T) {
	src := image.NewAlpha(image.Rect(0, 0, 20, 20))
	for y := 2; y < 20; y++ {
		for x := 0; x < 18; x++ { src.SetAlpha(x, y, opaque) }
	}
	src.SetAlpha(10, 10, transparent)

	for _, radius := range []float64{ 1, 3, 5.5 } {
		scattered := erodeWith(src, newDiscKernel(radius))
		byDistance := image.NewAlpha(src.Rect)
		erodeByDistance(byDistance, src, radius)
		if diff := maxAlphaDiff(scattered.Pix, byDistance.Pix); diff > 1 {
			t.Fatalf("radius %.1f: distance erosion differs by %d", radius, diff)
		}
	}
}

func TestDistanceSpreadPartialValues(t *testing.T) {
	values := make([]uint8, 9*9)
	values[4*9 + 4] = 128
	spread := spreadByDistance(values, 9, 9, 2)
	if spread[4*9 + 4] != 128 { t.Fatalf("source value must be kept, got %d", spread[4*9 + 4]) }
	if spread[4*9 + 6] != 128 { t.Fatalf("expected half coverage 2px away, got %d", spread[4*9 + 6]) }
	if spread[4*9 + 8] != 0 { t.Fatalf("expected no coverage 4px away, got %d", spread[4*9 + 8]) }
}

func TestStrokeRasterizerMaxThickness(t *testing.T) {
	stroker := &StrokeRasterizer{}
	stroker.SetStroke(StrokeExterior, MaxStrokeThickness*4)
	if _, thickness := stroker.GetStroke(); thickness != fract.FromInt(MaxStrokeThickness) {
		t.Fatalf("expected thickness clamped to %v, got %v", MaxStrokeThickness, thickness)
	}

	square := polySegments([]float64{0, 0, 200, 0, 200, 200, 0, 200})
	mask, err := Rasterize(square, stroker, fract.Point{})
	if err != nil { t.Fatal(err) }
	if mask.Rect != image.Rect(-256, -256, 456, 456) {
		t.Fatalf("unexpected stroke mask bounds %v", mask.Rect)
	}
	for _, pt := range []image.Point{ {100, 100}, {-128, 100}, {-255, 100}, {100, 455} } {
		if mask.AlphaAt(pt.X, pt.Y).A != 255 {
			t.Fatalf("expected full coverage at %v, got %d", pt, mask.AlphaAt(pt.X, pt.Y).A)
		}
	}
	if mask.AlphaAt(-250, -250).A != 0 { t.Fatal("expected rounded stroke corners") }

	big := polySegments([]float64{0, 0, 600, 0, 600, 600, 0, 600})
	stroker.SetStroke(StrokeHollow, MaxStrokeThickness)
	ring, err := Rasterize(big, stroker, fract.Point{})
	if err != nil { t.Fatal(err) }
	if ring.Rect != image.Rect(-128, -128, 728, 728) {
		t.Fatalf("unexpected ring bounds %v", ring.Rect)
	}
	if ring.AlphaAt(300, 300).A != 0 { t.Fatal("hollow glyphs must not be filled") }
	for _, pt := range []image.Point{ {-64, 300}, {64, 300}, {300, 660} } {
		if ring.AlphaAt(pt.X, pt.Y).A != 255 {
			t.Fatalf("expected ring coverage at %v, got %d", pt, ring.AlphaAt(pt.X, pt.Y).A)
		}
	}
}
