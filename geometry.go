package memetxt

import "sort"
import "image"

import "github.com/tinne26/memetxt/fract"

// Returns the height of the chrome in the upper half of the canvas and
// the combined height of all the chrome. Regions are clipped to the
// canvas first, and overlapping regions are merged into a single band,
// so each canvas row counts at most once. Merged bands are assigned to
// the top or the bottom by their vertical center.
func chromeHeights(canvasWidth, canvasHeight int, chrome []fract.Rect) (top, total fract.Unit) {
	canvas := fract.IntsToRect(0, 0, canvasWidth, canvasHeight)
	bands := make([]fract.Rect, 0, len(chrome))
	for _, rect := range chrome {
		clipped := rect.Intersect(canvas)
		if clipped.Empty() { continue }
		bands = append(bands, clipped)
	}
	sort.Slice(bands, func(i, j int) bool { return bands[i].Min.Y < bands[j].Min.Y })

	middle := canvas.CenterY()
	var band fract.Rect
	addBand := func() {
		total += band.Height()
		if band.CenterY() < middle { top += band.Height() }
	}
	for i, rect := range bands {
		if i > 0 && rect.Min.Y <= band.Max.Y { // overlapping or touching
			if rect.Max.Y > band.Max.Y { band.Max.Y = rect.Max.Y }
			continue
		}
		if i > 0 { addBand() }
		band = rect
	}
	if len(bands) > 0 { addBand() }
	return top, total
}

// Returns the frame of the base image while the chrome is visible:
// the image sits below the chrome in the upper half of the canvas, and
// its height is the canvas height minus the combined height of all the
// chrome regions.
func EditingFrame(canvasWidth, canvasHeight int, chrome []fract.Rect) fract.Rect {
	frame := fract.IntsToRect(0, 0, canvasWidth, canvasHeight)
	top, total := chromeHeights(canvasWidth, canvasHeight, chrome)
	frame.Min.Y += top
	frame.Max.Y = frame.Min.Y + fract.FromInt(canvasHeight) - total
	return frame
}

// Returns the frame the image takes when the chrome is hidden for
// rendering: the frame moves up by the height of the chrome above it
// and grows by the combined height of all the chrome regions. The
// chrome is measured as in [EditingFrame](), so the canvas size must
// be the same.
func RenderFrame(canvasWidth, canvasHeight int, editing fract.Rect, chrome []fract.Rect) fract.Rect {
	top, total := chromeHeights(canvasWidth, canvasHeight, chrome)
	editing.Min.Y -= top
	editing.Max.Y += total - top
	return editing
}

// The inverse of [RenderFrame](): given the frame with the chrome
// hidden, returns the frame once the chrome is shown again.
func RestoreFrame(canvasWidth, canvasHeight int, render fract.Rect, chrome []fract.Rect) fract.Rect {
	top, total := chromeHeights(canvasWidth, canvasHeight, chrome)
	render.Min.Y += top
	render.Max.Y -= total - top
	return render
}

// Computes where the image must be drawn within the given frame.
// The result can exceed the frame for [AspectFill].
func placeImage(frame image.Rectangle, imageSize image.Point, mode ContentMode) image.Rectangle {
	if mode == ScaleToFill || imageSize.X <= 0 || imageSize.Y <= 0 { return frame }

	frameWidth, frameHeight := frame.Dx(), frame.Dy()
	scaleX := float64(frameWidth)/float64(imageSize.X)
	scaleY := float64(frameHeight)/float64(imageSize.Y)
	scale := scaleX
	if (mode == AspectFit && scaleY < scaleX) || (mode == AspectFill && scaleY > scaleX) {
		scale = scaleY
	}

	width  := fract.FromFloat64Safe(float64(imageSize.X)*scale).ToIntHalfUp()
	height := fract.FromFloat64Safe(float64(imageSize.Y)*scale).ToIntHalfUp()
	if width  < 1 { width  = 1 }
	if height < 1 { height = 1 }
	x := frame.Min.X + (frameWidth - width)/2
	y := frame.Min.Y + (frameHeight - height)/2
	return image.Rect(x, y, x + width, y + height)
}
