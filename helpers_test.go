package memetxt

import "image"
import "image/color"
import "testing"

import "golang.org/x/image/draw"

var testImageColor = color.RGBA{40, 90, 160, 255}

func newSolidImage(width, height int, fill color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Rect, image.NewUniform(fill), image.Point{}, draw.Src)
	return img
}

func testStyle() TextStyle {
	style := DefaultStyle()
	style.FontName = "Go Bold"
	return style
}

func isWhitish(c color.RGBA) bool { return c.R > 200 && c.G > 200 && c.B > 200 }
func isBlackish(c color.RGBA) bool { return c.R < 40 && c.G < 40 && c.B < 40 }

func countPixels(img *image.RGBA, rect image.Rectangle, pred func(color.RGBA) bool) int {
	var count int
	rect = rect.Intersect(img.Rect)
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			if pred(img.RGBAAt(x, y)) { count += 1 }
		}
	}
	return count
}

func similarColors(a, b color.RGBA, tolerance uint8) bool {
	diff := func(x, y uint8) uint8 {
		if x > y { return x - y }
		return y - x
	}
	return diff(a.R, b.R) <= tolerance && diff(a.G, b.G) <= tolerance &&
		diff(a.B, b.B) <= tolerance && diff(a.A, b.A) <= tolerance
}

func mustRender(t *testing.T, renderer *Renderer, request *RenderRequest) *Result {
	t.Helper()
	result, err := renderer.Render(request)
	if err != nil { t.Fatalf("render failed: %s", err) }
	if result == nil || result.Image == nil { t.Fatal("render returned no image") }
	return result
}

// Returns the first differing pixel between the two images within the
// given rect, or false if they are equal.
func firstDiff(a, b *image.RGBA, rect image.Rectangle) (image.Point, bool) {
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			if a.RGBAAt(x, y) != b.RGBAAt(x, y) { return image.Pt(x, y), true }
		}
	}
	return image.Point{}, false
}
