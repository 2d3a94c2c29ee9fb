package memetxt

import "math"
import "image/color"

// Placeholder captions shown by meme editors until the user types
// something. The renderer never injects them: hosts that want them
// in the output must set them as the overlay text explicitly.
const (
	PlaceholderTop    = "TOP"
	PlaceholderBottom = "BOTTOM"
)

// Default caption style values, matching the classic meme look.
const (
	DefaultFontName    = "HelveticaNeue-CondensedBlack"
	DefaultFontSize    = 40.0
	DefaultStrokeWidth = -3.0
)

// Maximum font size in pixels, before applying the render scale.
// Bigger sizes are clamped.
const MaxFontSize = 1024.0

// Maximum font size in output pixels, after applying the render scale.
// Requests beyond it are rejected with an [*InvalidStyleError].
const MaxRenderedFontSize = 2048.0

// Maximum absolute [TextStyle.StrokeWidth]. Requests beyond it are
// rejected with an [*InvalidStyleError].
const MaxStrokeWidth = 50.0

// Horizontal alignment of caption lines within their anchor.
// The zero value is [AlignCenter].
type HorzAlign uint8
const (
	AlignCenter HorzAlign = iota
	AlignLeft
	AlignRight
)

// String returns "center", "left" or "right".
func (self HorzAlign) String() string {
	switch self {
	case AlignCenter: return "center"
	case AlignLeft  : return "left"
	case AlignRight : return "right"
	default:
		return "HorzAlign(unknown)"
	}
}

// Parses "center", "left" or "right". Returns false if the name
// is not recognized.
func ParseHorzAlign(name string) (HorzAlign, bool) {
	switch name {
	case "center", "centre", "": return AlignCenter, true
	case "left"  : return AlignLeft, true
	case "right" : return AlignRight, true
	default:
		return AlignCenter, false
	}
}

// Style for a caption overlay. Styles are plain values and can be
// shared freely between overlays and goroutines.
//
// StrokeWidth is a percentage of the font size and keeps the sign
// convention of attributed strings on mobile platforms:
//  - Negative: the glyphs are filled and a stroke of |StrokeWidth|%
//    of the font size is drawn around them, exterior to the fill.
//  - Positive: hollow glyphs; a stroke band of StrokeWidth% of the
//    font size is drawn centered on the outline, without fill.
//  - Zero: fill only.
//
// Zero values are replaced by defaults when rendering: nil Fill is
// white, nil Stroke is black, non-positive FontSize is [DefaultFontSize]
// and an empty FontName selects the fallback font without error.
type TextStyle struct {
	Fill        color.Color
	Stroke      color.Color
	StrokeWidth float64
	FontName    string
	FontSize    float64
	Align       HorzAlign
	Tracking    float64 // extra pixels between glyphs
	Uppercase   bool
}

// Returns the classic meme caption style: white fill, black exterior
// stroke at -3, "HelveticaNeue-CondensedBlack" at 40px, centered.
func DefaultStyle() TextStyle {
	return TextStyle {
		Fill: color.White,
		Stroke: color.Black,
		StrokeWidth: DefaultStrokeWidth,
		FontName: DefaultFontName,
		FontSize: DefaultFontSize,
		Align: AlignCenter,
	}
}

func (self TextStyle) fillColor() color.Color {
	if self.Fill == nil { return color.White }
	return self.Fill
}

func (self TextStyle) strokeColor() color.Color {
	if self.Stroke == nil { return color.Black }
	return self.Stroke
}

// Returns the font size in pixels, with defaults and limits applied.
func (self TextStyle) fontSize() float64 {
	size := self.FontSize
	if !(size > 0) || math.IsInf(size, 0) { return DefaultFontSize }
	if size > MaxFontSize { return MaxFontSize }
	return size
}

// Returns the stroke thickness in pixels for the given pixel size.
func (self TextStyle) strokeThickness(pxSize float64) float64 {
	if math.IsNaN(self.StrokeWidth) { return 0 }
	return math.Abs(self.StrokeWidth)*pxSize/100
}

func (self TextStyle) tracking() float64 {
	if math.IsNaN(self.Tracking) || math.IsInf(self.Tracking, 0) { return 0 }
	return self.Tracking
}
