package memetxt

import "errors"
import "strconv"
import "strings"

// Returned by [Renderer.Render]() when the request has no base image
// or the base image has empty bounds. No output is produced.
var ErrMissingImage = errors.New("memetxt: missing base image")

// Matches any [*InvalidCanvasError] through [errors.Is]().
var ErrInvalidCanvas = errors.New("memetxt: invalid canvas")

// Matches any [*InvalidStyleError] through [errors.Is]().
var ErrInvalidStyle = errors.New("memetxt: invalid caption style")

// Matches any [*FontResolutionError] through [errors.Is]().
var ErrFontResolution = errors.New("memetxt: font resolution failed")

// Matches any [*MissingGlyphsError] through [errors.Is]().
// Only used for [Result] warnings.
var ErrMissingGlyphs = errors.New("memetxt: missing glyphs")

// Returned when the canvas geometry of a request can't be rendered:
// non-positive dimensions, an invalid scale, malformed chrome or anchor
// rectangles, or chrome regions that leave no room for the image.
type InvalidCanvasError struct {
	Width  int
	Height int
	Reason string
}

func (self *InvalidCanvasError) Error() string {
	var builder strings.Builder
	builder.WriteString("memetxt: invalid canvas ")
	builder.WriteString(strconv.Itoa(self.Width))
	builder.WriteRune('x')
	builder.WriteString(strconv.Itoa(self.Height))
	if self.Reason != "" {
		builder.WriteString(": ")
		builder.WriteString(self.Reason)
	}
	return builder.String()
}

func (self *InvalidCanvasError) Is(target error) bool {
	return target == ErrInvalidCanvas
}

// Returned when a caption style can't be rendered within the renderer
// limits: a stroke width beyond [MaxStrokeWidth] or a font size that
// exceeds [MaxRenderedFontSize] once the render scale is applied.
type InvalidStyleError struct {
	Caption string // "top" or "bottom"
	Reason  string
}

func (self *InvalidStyleError) Error() string {
	return "memetxt: invalid " + self.Caption + " caption style: " + self.Reason
}

func (self *InvalidStyleError) Is(target error) bool {
	return target == ErrInvalidStyle
}

// Returned when a style requests a font that's not available in the
// renderer's font library. With [FontFallback], the same error is
// reported as a [Result] warning and the [Fallback] font is used.
type FontResolutionError struct {
	Name     string // requested font name
	Fallback string // documented fallback font name
}

func (self *FontResolutionError) Error() string {
	return "memetxt: font '" + self.Name + "' not found (fallback font is '" + self.Fallback + "')"
}

func (self *FontResolutionError) Is(target error) bool {
	return target == ErrFontResolution
}

// Warning for text runes that the resolved font can't represent.
// These runes are drawn with the font's .notdef glyph.
type MissingGlyphsError struct {
	Font  string
	Runes []rune
}

func (self *MissingGlyphsError) Error() string {
	return "memetxt: font '" + self.Font + "' is missing glyphs for " + strconv.QuoteToASCII(string(self.Runes))
}

func (self *MissingGlyphsError) Is(target error) bool {
	return target == ErrMissingGlyphs
}
