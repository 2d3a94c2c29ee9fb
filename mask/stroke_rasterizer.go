package mask

import "image"
import "math"

import "golang.org/x/image/font/sfnt"
import "github.com/tinne26/memetxt/fract"

var _ Rasterizer = (*StrokeRasterizer)(nil)

// Stroke modes for the [StrokeRasterizer].
type StrokeMode uint8
const (
	StrokeNone     StrokeMode = 0 // plain glyph fill
	StrokeExterior StrokeMode = 1 // glyph fill grown by the stroke thickness
	StrokeHollow   StrokeMode = 2 // band of the stroke thickness centered on the outline
)

// Maximum stroke thickness, in pixels.
const MaxStrokeThickness = 256.0

// A rasterizer for stroked text. Meme captions are drawn in two
// passes: first the [StrokeExterior] mask with the stroke color, and
// then the plain glyph mask with the fill color on top. Hollow glyphs
// use a single [StrokeHollow] pass instead.
//
// Notice that the stroke masks are bigger than the glyph bounds.
type StrokeRasterizer struct {
	base DefaultRasterizer
	onChange func(Rasterizer)
	signature uint64
	mode StrokeMode
	thickness fract.Unit
	kernel discKernel // cached for the current configuration
}

// Sets the stroke mode and the stroke thickness in pixels. Thickness
// values outside [0, MaxStrokeThickness] are clamped. Internally, the
// thickness is quantized to 1/64ths of a pixel.
func (self *StrokeRasterizer) SetStroke(mode StrokeMode, thickness float64) {
	if mode > StrokeHollow { panic("invalid stroke mode") }
	if math.IsNaN(thickness) || thickness < 0 { thickness = 0 }
	if thickness > MaxStrokeThickness { thickness = MaxStrokeThickness }
	fractThickness := fract.FromFloat64Up(thickness)
	if fractThickness == 0 { mode = StrokeNone }
	if mode == StrokeNone { fractThickness = 0 }
	if mode == self.mode && fractThickness == self.thickness { return }

	self.mode = mode
	self.thickness = fractThickness
	self.kernel = discKernel{}
	self.signature = 0
	if mode != StrokeNone {
		self.signature  = 0x00005700_00000000 // flag for "active stroke"
		self.signature |= uint64(mode) << 32
		self.signature |= uint64(uint32(fractThickness))
	}
	if self.onChange != nil { self.onChange(self) }
}

// Returns the current stroke mode and thickness.
func (self *StrokeRasterizer) GetStroke() (StrokeMode, fract.Unit) {
	return self.mode, self.thickness
}

// Satisfies the [Rasterizer] interface.
func (self *StrokeRasterizer) SetOnChangeFunc(onChange func(Rasterizer)) {
	self.onChange = onChange
}

// Satisfies the [Rasterizer] interface. Without stroke, the signature
// matches the [DefaultRasterizer] one, as the masks are the same.
func (self *StrokeRasterizer) Signature() uint64 { return self.signature }

// Satisfies the [Rasterizer] interface.
func (self *StrokeRasterizer) Rasterize(outline sfnt.Segments, origin fract.Point) (*image.Alpha, error) {
	mask, err := self.base.Rasterize(outline, origin)
	if err != nil || self.mode == StrokeNone { return mask, err }

	switch self.mode {
	case StrokeExterior:
		if self.kernel.taps == nil {
			self.kernel = newDiscKernel(self.thickness.ToFloat64())
		}
		return dilateWith(mask, self.kernel), nil
	case StrokeHollow:
		return Hollow(mask, self.thickness.ToFloat64()), nil
	default:
		panic("unreachable")
	}
}
