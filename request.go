package memetxt

import "math"
import "image"
import "strconv"
import "image/color"

import "github.com/tinne26/memetxt/fract"

// Maximum width and height of rendered images, in output pixels
// (after applying the request scale).
const MaxCanvasSize = 16384

// Maximum render scale.
const MaxScale = 8.0

// How the base image is fitted into its frame.
type ContentMode uint8
const (
	ScaleToFill ContentMode = iota // stretch to the frame (default)
	AspectFit // keep proportions, letterboxed with the background
	AspectFill // keep proportions, cropped to the frame
)

// String returns "fill", "fit" or "aspect-fill".
func (self ContentMode) String() string {
	switch self {
	case ScaleToFill: return "fill"
	case AspectFit  : return "fit"
	case AspectFill : return "aspect-fill"
	default:
		return "ContentMode(unknown)"
	}
}

// Parses the names returned by [ContentMode.String](). Returns false
// if the name is not recognized.
func ParseContentMode(name string) (ContentMode, bool) {
	switch name {
	case "fill", "": return ScaleToFill, true
	case "fit"     : return AspectFit, true
	case "aspect-fill", "cover": return AspectFill, true
	default:
		return ScaleToFill, false
	}
}

// A caption to draw on a meme.
//
// The anchor is a rectangle in canvas coordinates. Text is clipped
// to it, centered vertically and aligned horizontally as the style
// says. A zero anchor selects the standard top or bottom band for
// the canvas (see [StandardLayout]).
type TextOverlay struct {
	Text   string
	Style  TextStyle
	Anchor fract.Rect
}

// Everything needed to render a meme. Requests are read-only for
// the renderer and can be reused between calls.
//
// Chrome regions are rectangles in canvas coordinates occupied by
// navigation and tool bars while editing. They never appear in the
// output: the image frame is expanded into the space they occupy (see
// [EditingFrame]() and [RenderFrame]()).
type RenderRequest struct {
	Image  image.Image
	Top    *TextOverlay // nil for no caption
	Bottom *TextOverlay // nil for no caption
	Width  int // canvas width
	Height int // canvas height
	Chrome []fract.Rect
	ContentMode ContentMode
	Background color.Color // nil for black
	Scale float64 // output pixels per canvas unit; zero means 1
}

// Checks the request without rendering it. Errors are the same that
// [Renderer.Render]() would return, except font resolution errors.
func (self *RenderRequest) Validate() error {
	if self == nil || self.Image == nil || self.Image.Bounds().Empty() {
		return ErrMissingImage
	}

	invalid := func(reason string) error {
		return &InvalidCanvasError{ Width: self.Width, Height: self.Height, Reason: reason }
	}
	if self.Width <= 0 || self.Height <= 0 {
		return invalid("non-positive dimensions")
	}

	scale := self.scale()
	if math.IsNaN(scale) || math.IsInf(scale, 0) || scale <= 0 || scale > MaxScale {
		return invalid("scale out of range")
	}
	outWidth, outHeight := self.outputSize()
	if outWidth > MaxCanvasSize || outHeight > MaxCanvasSize {
		return invalid("output exceeds the maximum canvas size")
	}
	if outWidth <= 0 || outHeight <= 0 {
		return invalid("output rounds to an empty image")
	}

	for _, rect := range self.Chrome {
		if rect.Malformed() { return invalid("malformed chrome rectangle " + rect.String()) }
	}
	_, chromeHeight := chromeHeights(self.Width, self.Height, self.Chrome)
	if chromeHeight >= fract.FromInt(self.Height) {
		return invalid("chrome covers the whole canvas")
	}

	for _, overlay := range []*TextOverlay{ self.Top, self.Bottom } {
		if overlay != nil && overlay.Anchor.Malformed() {
			return invalid("malformed anchor " + overlay.Anchor.String())
		}
	}
	if self.ContentMode > AspectFill {
		return invalid("unknown content mode")
	}
	if err := validateStyle(self.Top, "top", scale); err != nil { return err }
	return validateStyle(self.Bottom, "bottom", scale)
}

func validateStyle(overlay *TextOverlay, caption string, scale float64) error {
	if overlay == nil { return nil }
	style := overlay.Style
	if math.IsInf(style.StrokeWidth, 0) || math.Abs(style.StrokeWidth) > MaxStrokeWidth {
		reason := "stroke width beyond " + strconv.FormatFloat(MaxStrokeWidth, 'g', -1, 64) + "%"
		return &InvalidStyleError{ Caption: caption, Reason: reason }
	}
	if style.fontSize()*scale > MaxRenderedFontSize {
		reason := "scaled font size beyond " + strconv.FormatFloat(MaxRenderedFontSize, 'g', -1, 64) + "px"
		return &InvalidStyleError{ Caption: caption, Reason: reason }
	}
	return nil
}

func (self *RenderRequest) scale() float64 {
	if self.Scale == 0 { return 1 }
	return self.Scale
}

func (self *RenderRequest) outputSize() (int, int) {
	scale := self.scale()
	width  := math.Round(float64(self.Width)*scale)
	height := math.Round(float64(self.Height)*scale)
	if width > MaxCanvasSize*2 || height > MaxCanvasSize*2 {
		return MaxCanvasSize + 1, MaxCanvasSize + 1
	}
	return int(width), int(height)
}

func (self *RenderRequest) background() color.Color {
	if self.Background == nil { return color.Black }
	return self.Background
}

// Returns the overlay anchor, replacing zero anchors with the
// standard band for the given position.
func (self *RenderRequest) anchorFor(overlay *TextOverlay, top bool) fract.Rect {
	if overlay.Anchor != (fract.Rect{}) { return overlay.Anchor }
	layout := NewStandardLayout(self.Width, self.Height)
	if top { return layout.TopAnchor() }
	return layout.BottomAnchor()
}
