// The mask subpackage defines the [Rasterizer] interface used by the
// meme renderer and provides the implementations it needs.
//
// In this context, "[Rasterizer]" refers to a "glyph mask rasterizer":
// font glyphs are extracted from font files as outlines (sets of lines
// and curves) and have to be rasterized into alpha masks before they can
// be composited over an image.
//
// Meme captions are stroked: the [StrokeRasterizer] post-processes the
// glyph masks generated by the [DefaultRasterizer] with [Dilate]() and
// [Erode]() in order to obtain exterior strokes and hollow glyphs.
package mask
