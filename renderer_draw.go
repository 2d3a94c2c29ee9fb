package memetxt

import "image"
import "context"
import "image/color"

import "golang.org/x/image/draw"
import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"

import "github.com/tinne26/memetxt/cache"
import "github.com/tinne26/memetxt/fract"
import "github.com/tinne26/memetxt/mask"
import "github.com/tinne26/memetxt/sizer"

// One glyph drawing pass over all the lines of a caption.
type glyphPass struct {
	mode mask.StrokeMode
	thickness float64 // in pixels
	color color.Color
}

// Stroked captions are drawn in two passes so the stroke of a glyph
// never covers the fill of the previous one.
func (self TextStyle) glyphPasses(pxSize float64) []glyphPass {
	thickness := self.strokeThickness(pxSize)
	fill := glyphPass{ mode: mask.StrokeNone, color: self.fillColor() }
	switch {
	case thickness > 0 && self.StrokeWidth < 0:
		stroke := glyphPass{ mode: mask.StrokeExterior, thickness: thickness, color: self.strokeColor() }
		return []glyphPass{ stroke, fill }
	case thickness > 0 && self.StrokeWidth > 0:
		return []glyphPass{{ mode: mask.StrokeHollow, thickness: thickness, color: self.strokeColor() }}
	default:
		return []glyphPass{ fill }
	}
}

// Draws a caption clipped to its anchor. Lines are vertically centered
// as a block and aligned horizontally as the style says. All glyph
// origins are placed at whole pixel coordinates. Stops early once the
// context is done.
func (self *renderConfig) drawOverlay(ctx context.Context, canvas *image.RGBA, overlay *preparedOverlay, scale float64) {
	anchor := overlay.anchor.Scale(scale)
	clip := anchor.ImageRect().Intersect(canvas.Rect)
	if clip.Empty() { return }
	target := canvas.SubImage(clip).(*image.RGBA)

	pxSize := overlay.style.fontSize()*scale
	drawer := &lineDrawer {
		ctx: ctx,
		font: overlay.font,
		size: fract.FromFloat64Up(pxSize),
	}
	drawer.sizer.SetPadding(fract.FromFloat64Safe(overlay.style.tracking()*scale))
	drawer.sizer.NotifyChange(drawer.font, &drawer.buffer, drawer.size)

	origins := drawer.lineOrigins(overlay.lines, anchor, overlay.style.Align)
	for _, pass := range overlay.style.glyphPasses(pxSize) {
		drawer.setPass(pass, self.cache)
		for i, line := range overlay.lines {
			drawer.drawLine(target, line, origins[i])
		}
	}
}

// Per caption drawing state. Never shared between goroutines.
type lineDrawer struct {
	ctx context.Context
	font *sfnt.Font
	buffer sfnt.Buffer
	sizer sizer.PaddedKernSizer
	size fract.Unit
	rasterizer mask.StrokeRasterizer
	cacheHandler cache.GlyphCacheHandler // nil if the renderer has no cache
	source *image.Uniform
}

func (self *lineDrawer) setPass(pass glyphPass, glyphCache *cache.DefaultCache) {
	self.source = image.NewUniform(pass.color)
	self.cacheHandler = nil
	self.rasterizer.SetOnChangeFunc(nil)
	if glyphCache != nil {
		handler := glyphCache.NewHandler()
		handler.NotifyFontChange(self.font)
		handler.NotifySizeChange(self.size)
		handler.NotifyFractChange(fract.Point{})
		self.rasterizer.SetOnChangeFunc(handler.NotifyRasterizerChange)
		self.cacheHandler = handler
	}
	self.rasterizer.SetStroke(pass.mode, pass.thickness)
	if self.cacheHandler != nil {
		self.cacheHandler.NotifyRasterizerChange(&self.rasterizer)
	}
}

// Returns the baseline origin of each line.
func (self *lineDrawer) lineOrigins(lines []string, anchor fract.Rect, align HorzAlign) []fract.Point {
	ascent := self.sizer.Ascent(self.font, &self.buffer, self.size)
	descent := self.sizer.Descent(self.font, &self.buffer, self.size)
	lineHeight := self.sizer.LineHeight(self.font, &self.buffer, self.size)
	blockHeight := ascent + descent + lineHeight*fract.Unit(len(lines) - 1)
	baseline := anchor.CenterY() - (blockHeight >> 1) + ascent

	origins := make([]fract.Point, len(lines))
	for i, line := range lines {
		width := self.measureLine(line)
		var x fract.Unit
		switch align {
		case AlignLeft:
			x = anchor.Min.X
		case AlignRight:
			x = anchor.Max.X - width
		default:
			x = anchor.CenterX() - (width >> 1)
		}
		origins[i] = fract.UnitsToPoint(x.HalfUp(), baseline.HalfUp())
		baseline += lineHeight
	}
	return origins
}

// Returns the advance width of the line, with the same quantization
// used when drawing.
func (self *lineDrawer) measureLine(line string) fract.Unit {
	return self.traverseLine(line, 0, nil)
}

func (self *lineDrawer) drawLine(target *image.RGBA, line string, origin fract.Point) {
	self.traverseLine(line, origin.X, func(index sfnt.GlyphIndex, x fract.Unit) {
		if self.ctx.Err() != nil { return }
		glyphMask := self.loadGlyphMask(index)
		if glyphMask == nil { return } // spaces and empty glyphs are nil
		dot := image.Pt(x.ToIntFloor(), origin.Y.ToIntFloor())
		rect := glyphMask.Rect.Add(dot)
		draw.DrawMask(target, rect, self.source, image.Point{}, glyphMask, glyphMask.Rect.Min, draw.Over)
	})
}

// Iterates the glyphs of the line starting at the given x, applying
// kerning and quantizing each glyph position to whole pixels. Returns
// the final x position.
func (self *lineDrawer) traverseLine(line string, x fract.Unit, glyphFn func(sfnt.GlyphIndex, fract.Unit)) fract.Unit {
	var prevGlyphIndex sfnt.GlyphIndex
	lineStart := true
	for _, codePoint := range line {
		if codePoint < ' ' { continue } // control characters
		currGlyphIndex := self.glyphIndex(codePoint)

		// apply kerning unless at line start
		if !lineStart {
			x += self.sizer.Kern(self.font, &self.buffer, self.size, prevGlyphIndex, currGlyphIndex)
		}
		x = x.HalfUp()

		if glyphFn != nil { glyphFn(currGlyphIndex, x) }

		x += self.sizer.GlyphAdvance(self.font, &self.buffer, self.size, currGlyphIndex)
		prevGlyphIndex = currGlyphIndex
		lineStart = false
	}
	return x.HalfUp()
}

// Missing glyphs map to index 0 (.notdef). They are reported as
// warnings when preparing the overlay.
func (self *lineDrawer) glyphIndex(codePoint rune) sfnt.GlyphIndex {
	index, err := self.font.GlyphIndex(&self.buffer, codePoint)
	if err != nil { return 0 }
	return index
}

// Loads the mask for the given glyph with the current pass config,
// going through the cache if available. Nil masks are valid and
// correspond to glyphs without lines or curves.
func (self *lineDrawer) loadGlyphMask(index sfnt.GlyphIndex) *image.Alpha {
	if self.cacheHandler != nil {
		glyphMask, found := self.cacheHandler.GetMask(index)
		if found { return glyphMask }
	}

	segments, err := self.font.LoadGlyph(&self.buffer, index, fixed.Int26_6(self.size), nil)
	if err != nil { return nil } // broken glyph data, nothing we can draw
	glyphMask, err := mask.Rasterize(segments, &self.rasterizer, fract.Point{})
	if err != nil { return nil }

	if self.cacheHandler != nil {
		self.cacheHandler.PassMask(index, glyphMask)
	}
	return glyphMask
}
