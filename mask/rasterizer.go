package mask

import "image"

import "golang.org/x/image/font/sfnt"
import "github.com/tinne26/memetxt/fract"


// Rasterizer is an interface for 2D vector graphics rasterization to an
// alpha mask. It wraps the concrete [golang.org/x/image/vector.Rasterizer]
// type and allows post-processing the resulting masks (e.g. for strokes).
//
// Mask rasterizers can't be used concurrently and must tolerate
// coordinates out of bounds. Each render uses its own rasterizers.
type Rasterizer interface {
	// Rasterizes the given outline to an alpha mask. The outline must be
	// drawn at the given fractional position (always positive coords between
	// 0 and 0:63 (= 0.984375)).
	//
	// Notice that rasterizers might create masks bigger than Segments.Bounds()
	// to account for their own special effects, but they still can't affect
	// glyph bounds or advances (see sizer.Sizer for that).
	Rasterize(sfnt.Segments, fract.Point) (*image.Alpha, error)

	// The signature returns a uint64 that can be used with glyph caches
	// in order to tell rasterizers apart. When using multiple mask
	// rasterizers with a single cache, you normally want to make sure
	// that their signatures are different.
	Signature() uint64

	// Sets the function to be called when the Rasterizer configuration
	// or the signature change. Renderers use this to keep their cache
	// handlers in sync with the rasterizer.
	SetOnChangeFunc(func(Rasterizer))
}

type vectorTracer interface {
	// Move to the given coordinate.
	MoveTo(fract.Point)

	// Create a segment to the given coordinate.
	LineTo(fract.Point)

	// Conic Bézier curve (also called quadratic). The first parameter
	// is the control coordinate, and the second one the final target.
	QuadTo(fract.Point, fract.Point)

	// Cubic Bézier curve. The first two parameters are the control
	// coordinates, and the third one is the final target.
	CubeTo(fract.Point, fract.Point, fract.Point)
}

// A low level method to rasterize glyph masks.
//
// Returned masks have their coordinates adjusted so the mask is drawn at
// dot origin (0, 0) + the given fractional position by default. To draw it at
// a specific dot with a matching fractional position, translate the mask by
// dot.X.Floor() and dot.Y.Floor(). If you don't want to adjust the fractional
// pixel position, you can call Rasterize with a zero-value fract.Point{}.
//
// Only the fractional part of the given drawing coordinate will be
// considered. Meme captions are laid out at whole pixel positions.
//
// The image returned will be nil if the segments are empty or do
// not include any active lines or curves (e.g.: space glyphs).
func Rasterize(outline sfnt.Segments, rasterizer Rasterizer, dot fract.Point) (*image.Alpha, error) {
	// return nil if the outline doesn't include lines or curves
	for _, segment := range outline {
		if segment.Op == sfnt.SegmentOpMoveTo { continue }
		return rasterizer.Rasterize(outline, dot)
	}
	return nil, nil // nothing to draw
}

// Calls MoveTo(), LineTo(), QuadTo() and CubeTo() methods on the
// tracer, as corresponding, for each segment in the glyph outline.
func processOutline(tracer vectorTracer, outline sfnt.Segments) {
	for _, segment := range outline {
		switch segment.Op {
		case sfnt.SegmentOpMoveTo:
			tracer.MoveTo(segmentArg(segment, 0))
		case sfnt.SegmentOpLineTo:
			tracer.LineTo(segmentArg(segment, 0))
		case sfnt.SegmentOpQuadTo:
			tracer.QuadTo(segmentArg(segment, 0), segmentArg(segment, 1))
		case sfnt.SegmentOpCubeTo:
			tracer.CubeTo(segmentArg(segment, 0), segmentArg(segment, 1), segmentArg(segment, 2))
		default:
			panic("unexpected segment.Op case")
		}
	}
}

func segmentArg(segment sfnt.Segment, i int) fract.Point {
	return fract.UnitsToPoint(fract.Unit(segment.Args[i].X), fract.Unit(segment.Args[i].Y))
}
