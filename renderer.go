package memetxt

import "io"
import "sync"
import "image"
import "context"
import "image/color"

import "golang.org/x/image/draw"
import "github.com/sirupsen/logrus"

import "github.com/tinne26/memetxt/cache"
import "github.com/tinne26/memetxt/font"
import "github.com/tinne26/memetxt/fract"

// Policy for fonts that can't be found in the renderer's library.
type FontPolicy uint8
const (
	FontStrict   FontPolicy = iota // fail with a *FontResolutionError (default)
	FontFallback // use the fallback font and report a warning
)

// The outcome of a successful render.
type Result struct {
	// The flattened meme. The renderer keeps no reference to it.
	Image *image.RGBA

	// The rectangle covered by the base image frame in output pixels,
	// with the chrome hidden. Content modes other than [ScaleToFill]
	// may leave parts of it uncovered or crop the image to it.
	ImageFrame image.Rectangle

	// The frame of the base image in canvas coordinates while the
	// chrome is visible (see [EditingFrame]()).
	EditingFrame fract.Rect

	// The captions as drawn (after uppercasing, if the style asks for
	// it) and the base image they were drawn over. Captions that were
	// nil or empty are reported as empty strings.
	TopText    string
	BottomText string
	Original   image.Image

	// Non-fatal issues found while rendering: font substitutions
	// (*FontResolutionError) and missing glyphs (*MissingGlyphsError).
	Warnings []error
}

// The [Renderer] flattens meme requests into images. It holds the
// font library, an optional glyph mask cache and a few rendering
// options; everything else comes from the [RenderRequest].
//
// Renders don't share mutable state, so once configured, a renderer
// can be used from multiple goroutines at the same time.
type Renderer struct {
	mutex sync.RWMutex
	fonts *font.Library
	cache *cache.DefaultCache
	scaler draw.Interpolator
	logger logrus.FieldLogger
	fontPolicy FontPolicy
}

var discardLogger = newDiscardLogger()
func newDiscardLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// Creates a new [Renderer] using the given font library. If the library
// is nil, a library with the Go fonts is created (see [font.NewDefaultLibrary]()).
//
// The renderer has no cache by default, uses [FontStrict] and scales
// base images with Catmull-Rom interpolation.
func NewRenderer(lib *font.Library) *Renderer {
	if lib == nil { lib = font.NewDefaultLibrary() }
	return &Renderer {
		fonts: lib,
		scaler: draw.CatmullRom,
		logger: discardLogger,
	}
}

// Returns the renderer's font library.
func (self *Renderer) Library() *font.Library {
	self.mutex.RLock()
	defer self.mutex.RUnlock()
	return self.fonts
}

// Sets the glyph mask cache. A nil cache disables caching. The same
// cache can be shared by multiple renderers.
func (self *Renderer) SetCache(glyphCache *cache.DefaultCache) {
	self.mutex.Lock()
	self.cache = glyphCache
	self.mutex.Unlock()
}

// Returns the current glyph mask cache, which may be nil.
func (self *Renderer) GetCache() *cache.DefaultCache {
	self.mutex.RLock()
	defer self.mutex.RUnlock()
	return self.cache
}

// Sets the policy for fonts not found in the library.
func (self *Renderer) SetFontPolicy(policy FontPolicy) {
	if policy > FontFallback { panic("invalid font policy") }
	self.mutex.Lock()
	self.fontPolicy = policy
	self.mutex.Unlock()
}

// Returns the current font policy. The default is [FontStrict].
func (self *Renderer) GetFontPolicy() FontPolicy {
	self.mutex.RLock()
	defer self.mutex.RUnlock()
	return self.fontPolicy
}

// Sets the logger for debug and warning entries. Nil disables logging,
// which is the default.
func (self *Renderer) SetLogger(logger logrus.FieldLogger) {
	if logger == nil { logger = discardLogger }
	self.mutex.Lock()
	self.logger = logger
	self.mutex.Unlock()
}

// Sets the interpolator used to scale base images into their frame.
// Nil restores the default (draw.CatmullRom). Cheaper interpolators
// like draw.ApproxBiLinear can be useful for previews.
func (self *Renderer) SetScaler(scaler draw.Interpolator) {
	if scaler == nil { scaler = draw.CatmullRom }
	self.mutex.Lock()
	self.scaler = scaler
	self.mutex.Unlock()
}

// Configuration captured at the start of each render.
type renderConfig struct {
	fonts *font.Library
	cache *cache.DefaultCache
	scaler draw.Interpolator
	logger logrus.FieldLogger
	fontPolicy FontPolicy
}

func (self *Renderer) snapshot() renderConfig {
	self.mutex.RLock()
	defer self.mutex.RUnlock()
	return renderConfig {
		fonts: self.fonts,
		cache: self.cache,
		scaler: self.scaler,
		logger: self.logger,
		fontPolicy: self.fontPolicy,
	}
}

// Renders the given request. The request is fully validated before
// anything is drawn, so on error no image is returned. Possible errors
// are [ErrMissingImage], [*InvalidCanvasError], [*InvalidStyleError]
// and, with [FontStrict], [*FontResolutionError].
//
// Rendering is deterministic: identical requests produce identical
// images. Empty caption texts draw nothing, exactly as nil overlays.
func (self *Renderer) Render(request *RenderRequest) (*Result, error) {
	return self.RenderContext(context.Background(), request)
}

// Like [Renderer.Render](), but the render stops between glyphs once
// the context is done, returning the context error and no image.
func (self *Renderer) RenderContext(ctx context.Context, request *RenderRequest) (*Result, error) {
	err := request.Validate()
	if err != nil { return nil, err }
	config := self.snapshot()

	// resolve fonts before any drawing happens
	result := &Result{ Original: request.Image }
	top, err := config.prepareOverlay(request, request.Top, true, result)
	if err != nil { return nil, err }
	bottom, err := config.prepareOverlay(request, request.Bottom, false, result)
	if err != nil { return nil, err }

	// create canvas and draw the base image in the chrome-less frame
	scale := request.scale()
	width, height := request.outputSize()
	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	fillRGBA(canvas, request.background())
	result.EditingFrame = EditingFrame(request.Width, request.Height, request.Chrome)
	renderFrame := RenderFrame(request.Width, request.Height, result.EditingFrame, request.Chrome)
	result.ImageFrame = renderFrame.Scale(scale).ImageRect().Intersect(canvas.Rect)
	config.drawBaseImage(canvas, result.ImageFrame, request.Image, request.ContentMode)

	// draw captions
	for _, overlay := range []*preparedOverlay{ top, bottom } {
		if overlay == nil { continue }
		config.drawOverlay(ctx, canvas, overlay, scale)
	}
	if err := ctx.Err(); err != nil { return nil, err }

	config.logger.WithFields(logrus.Fields{
		"width": width, "height": height, "warnings": len(result.Warnings),
	}).Debug("meme rendered")
	result.Image = canvas
	return result, nil
}

func fillRGBA(canvas *image.RGBA, fill color.Color) {
	draw.Draw(canvas, canvas.Rect, image.NewUniform(fill), image.Point{}, draw.Src)
}

func (self *renderConfig) drawBaseImage(canvas *image.RGBA, frame image.Rectangle, img image.Image, mode ContentMode) {
	if frame.Empty() { return }
	bounds := img.Bounds()
	target := canvas.SubImage(frame).(*image.RGBA)
	dest := placeImage(frame, bounds.Size(), mode)
	if dest.Size() == bounds.Size() {
		draw.Draw(target, dest, img, bounds.Min, draw.Over)
		return
	}
	self.scaler.Scale(target, dest, img, bounds, draw.Over, nil)
}
