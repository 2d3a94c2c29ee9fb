// Package params converts the loosely typed meme parameters received by
// the command line tool, the HTTP server and batch manifests into render
// requests. Colors are hex strings, alignments and content modes use
// their string names, and chrome is given as bar heights.
package params

import "image"
import "errors"
import "strconv"
import "strings"
import "image/color"

import "github.com/lucasb-eyer/go-colorful"

import "github.com/tinne26/memetxt"

// Returned by [ParseColor]() for unrecognized colors.
var ErrInvalidColor = errors.New("params: invalid color")

// Matches any [*InvalidError] through [errors.Is]().
var ErrInvalid = errors.New("params: invalid parameter")

// Returned when a parameter can't be converted.
type InvalidError struct {
	Field string
	Value string
}

func (self *InvalidError) Error() string {
	return "params: invalid " + self.Field + " '" + self.Value + "'"
}

func (self *InvalidError) Is(target error) bool {
	return target == ErrInvalid
}

var namedColors = map[string]color.RGBA {
	"white": {255, 255, 255, 255},
	"black": {0, 0, 0, 255},
	"transparent": {0, 0, 0, 0},
	"red": {255, 0, 0, 255},
	"yellow": {255, 255, 0, 255},
}

// Parses "#rgb" or "#rrggbb" hex colors, with or without the leading
// hash, and a few color names like "white" or "black".
func ParseColor(value string) (color.RGBA, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	if named, found := namedColors[value]; found { return named, nil }
	if !strings.HasPrefix(value, "#") { value = "#" + value }
	if len(value) != 4 && len(value) != 7 { return color.RGBA{}, ErrInvalidColor }

	parsed, err := colorful.Hex(value)
	if err != nil { return color.RGBA{}, ErrInvalidColor }
	r, g, b := parsed.RGB255()
	return color.RGBA{r, g, b, 255}, nil
}

// Caption style parameters. Zero fields keep the [memetxt.DefaultStyle]()
// values.
type Style struct {
	Font        string   `json:"font,omitempty"`
	Size        float64  `json:"size,omitempty"`
	Fill        string   `json:"fill,omitempty"`
	Stroke      string   `json:"stroke,omitempty"`
	StrokeWidth *float64 `json:"stroke_width,omitempty"`
	Align       string   `json:"align,omitempty"`
	Tracking    float64  `json:"tracking,omitempty"`
	Uppercase   bool     `json:"uppercase,omitempty"`
}

// Converts the parameters into a text style.
func (self *Style) TextStyle() (memetxt.TextStyle, error) {
	style := memetxt.DefaultStyle()
	if self == nil { return style, nil }

	if self.Font != "" { style.FontName = self.Font }
	if self.Size < 0 {
		return style, &InvalidError{ Field: "size", Value: strconv.FormatFloat(self.Size, 'g', -1, 64) }
	}
	if self.Size > 0 { style.FontSize = self.Size }
	if self.StrokeWidth != nil { style.StrokeWidth = *self.StrokeWidth }
	style.Tracking = self.Tracking
	style.Uppercase = self.Uppercase

	var err error
	if self.Fill != "" {
		style.Fill, err = parseStyleColor("fill", self.Fill)
		if err != nil { return style, err }
	}
	if self.Stroke != "" {
		style.Stroke, err = parseStyleColor("stroke", self.Stroke)
		if err != nil { return style, err }
	}

	var ok bool
	style.Align, ok = memetxt.ParseHorzAlign(strings.ToLower(self.Align))
	if !ok { return style, &InvalidError{ Field: "align", Value: self.Align } }
	return style, nil
}

func parseStyleColor(field, value string) (color.Color, error) {
	rgba, err := ParseColor(value)
	if err != nil { return nil, &InvalidError{ Field: field, Value: value } }
	return rgba, nil
}

// Canvas parameters. Nil bar heights use the standard layout values.
//
// When Width or Height are zero, the canvas is sized after the image:
// the image width, and the image height plus the chrome, so that the
// editing frame matches the image exactly.
type Canvas struct {
	Width        int      `json:"width,omitempty"`
	Height       int      `json:"height,omitempty"`
	NavBar       *int     `json:"nav_bar,omitempty"`
	ToolBar      *int     `json:"tool_bar,omitempty"`
	Mode         string   `json:"mode,omitempty"`
	Background   string   `json:"background,omitempty"`
	Scale        float64  `json:"scale,omitempty"`
	Placeholders bool     `json:"placeholders,omitempty"`
}

// Parameters for a whole meme.
type Meme struct {
	Top         string  `json:"top,omitempty"`
	Bottom      string  `json:"bottom,omitempty"`
	Style       *Style  `json:"style,omitempty"`
	TopStyle    *Style  `json:"top_style,omitempty"` // overrides Style
	BottomStyle *Style  `json:"bottom_style,omitempty"` // overrides Style
	Canvas      Canvas  `json:"canvas"`
}

// Builds the render request for the given base image.
func (self *Meme) Request(img image.Image) (*memetxt.RenderRequest, error) {
	if img == nil { return nil, memetxt.ErrMissingImage }
	layout := self.Canvas.layout(img.Bounds().Size())

	top, bottom := self.Top, self.Bottom
	if self.Canvas.Placeholders {
		if top == "" { top = memetxt.PlaceholderTop }
		if bottom == "" { bottom = memetxt.PlaceholderBottom }
	}

	topStyle, err := pickStyle(self.TopStyle, self.Style).TextStyle()
	if err != nil { return nil, err }
	bottomStyle, err := pickStyle(self.BottomStyle, self.Style).TextStyle()
	if err != nil { return nil, err }

	request := layout.Request(img, top, "", topStyle)
	if bottom != "" {
		request.Bottom = &memetxt.TextOverlay{ Text: bottom, Style: bottomStyle, Anchor: layout.BottomAnchor() }
	}

	var ok bool
	request.ContentMode, ok = memetxt.ParseContentMode(strings.ToLower(self.Canvas.Mode))
	if !ok { return nil, &InvalidError{ Field: "mode", Value: self.Canvas.Mode } }
	if self.Canvas.Background != "" {
		request.Background, err = parseStyleColor("background", self.Canvas.Background)
		if err != nil { return nil, err }
	}
	request.Scale = self.Canvas.Scale
	return request, nil
}

func pickStyle(specific, shared *Style) *Style {
	if specific != nil { return specific }
	return shared
}

func (self *Canvas) layout(imageSize image.Point) memetxt.StandardLayout {
	navBar, toolBar := memetxt.DefaultNavBarHeight, memetxt.DefaultToolBarHeight
	if self.NavBar != nil { navBar = max(*self.NavBar, 0) }
	if self.ToolBar != nil { toolBar = max(*self.ToolBar, 0) }

	width, height := self.Width, self.Height
	if width == 0 { width = imageSize.X }
	if height == 0 { height = imageSize.Y + navBar + toolBar }
	layout := memetxt.NewStandardLayout(width, height)
	layout.NavBarHeight = navBar
	layout.ToolBarHeight = toolBar
	return layout
}
