package memetxt

import "image"

import "github.com/tinne26/memetxt/fract"

// Default chrome and caption band sizes used by [NewStandardLayout]().
// The navigation and tool bars add up to 100 canvas units.
const (
	DefaultNavBarHeight  = 56
	DefaultToolBarHeight = 44
	DefaultBandHeight    = 72
	DefaultBandInset     = 16
)

// The layout of the classic meme editor screen: a navigation bar at
// the top, a tool bar at the bottom, and two caption bands inset from
// the top and bottom edges of the canvas.
//
// Caption anchors are given in canvas coordinates and don't move when
// the chrome is hidden for rendering.
type StandardLayout struct {
	Width  int
	Height int
	NavBarHeight  int
	ToolBarHeight int
	BandHeight int
	BandInset  int
}

// Creates a standard layout for the given canvas size, using the
// default chrome and band sizes.
func NewStandardLayout(width, height int) StandardLayout {
	return StandardLayout {
		Width: width,
		Height: height,
		NavBarHeight: DefaultNavBarHeight,
		ToolBarHeight: DefaultToolBarHeight,
		BandHeight: DefaultBandHeight,
		BandInset: DefaultBandInset,
	}
}

// Returns the chrome regions of the layout: the navigation bar and
// the tool bar. Zero height bars are omitted.
func (self StandardLayout) Chrome() []fract.Rect {
	var chrome []fract.Rect
	if self.NavBarHeight > 0 {
		chrome = append(chrome, fract.IntsToRect(0, 0, self.Width, self.NavBarHeight))
	}
	if self.ToolBarHeight > 0 {
		toolBarY := self.Height - self.ToolBarHeight
		chrome = append(chrome, fract.IntsToRect(0, toolBarY, self.Width, self.Height))
	}
	return chrome
}

// Returns the anchor for the top caption.
func (self StandardLayout) TopAnchor() fract.Rect {
	inset := self.inset()
	return fract.IntsToRect(inset, inset, self.Width - inset, inset + self.bandHeight())
}

// Returns the anchor for the bottom caption.
func (self StandardLayout) BottomAnchor() fract.Rect {
	inset := self.inset()
	bottom := self.Height - inset
	return fract.IntsToRect(inset, bottom - self.bandHeight(), self.Width - inset, bottom)
}

// Returns the frame of the base image while editing. See [EditingFrame]().
func (self StandardLayout) EditingFrame() fract.Rect {
	return EditingFrame(self.Width, self.Height, self.Chrome())
}

// Creates a render request for the given image and captions, using
// the same style for both. Empty captions are omitted.
func (self StandardLayout) Request(img image.Image, top, bottom string, style TextStyle) *RenderRequest {
	request := &RenderRequest {
		Image: img,
		Width: self.Width,
		Height: self.Height,
		Chrome: self.Chrome(),
	}
	if top != "" {
		request.Top = &TextOverlay{ Text: top, Style: style, Anchor: self.TopAnchor() }
	}
	if bottom != "" {
		request.Bottom = &TextOverlay{ Text: bottom, Style: style, Anchor: self.BottomAnchor() }
	}
	return request
}

// band sizes are clamped so the two bands always fit the canvas
func (self StandardLayout) inset() int {
	inset := self.BandInset
	if inset < 0 { inset = 0 }
	if inset > self.Width/4 { inset = self.Width/4 }
	if inset > self.Height/4 { inset = self.Height/4 }
	return inset
}

func (self StandardLayout) bandHeight() int {
	height := self.BandHeight
	maxHeight := self.Height/2 - self.inset()
	if height > maxHeight { height = maxHeight }
	if height < 0 { height = 0 }
	return height
}
