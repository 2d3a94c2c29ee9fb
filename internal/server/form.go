package server

import "errors"
import "strconv"
import "net/http"
import "image"

import "github.com/tinne26/memetxt"
import "github.com/tinne26/memetxt/codec"
import "github.com/tinne26/memetxt/internal/params"

type memeForm struct {
	image image.Image
	meme params.Meme
	format codec.Format
	quality int
}

// Parses the multipart meme form. Fields:
//   - image: the base image file (required).
//   - top, bottom: the captions.
//   - font, size, fill, stroke, stroke_width, align, tracking, uppercase:
//     the caption style, shared by both captions.
//   - width, height, nav_bar, tool_bar, mode, background, scale,
//     placeholders: the canvas (see [params.Canvas]).
//   - format, quality: the output encoding, PNG by default.
func parseMemeForm(r *http.Request) (*memeForm, error) {
	err := r.ParseMultipartForm(formMemoryBytes)
	if err != nil {
		var sizeErr *http.MaxBytesError
		if errors.As(err, &sizeErr) { return nil, err }
		return nil, badRequest("invalid multipart form: " + err.Error())
	}

	file, _, err := r.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) { return nil, memetxt.ErrMissingImage }
	if err != nil { return nil, badRequest("invalid image field: " + err.Error()) }
	defer file.Close()
	img, err := codec.Decode(file)
	if err != nil { return nil, badRequest("invalid image: " + err.Error()) }

	fields := formFields{ request: r }
	form := &memeForm{ image: img }
	form.meme.Top = r.FormValue("top")
	form.meme.Bottom = r.FormValue("bottom")
	form.meme.Style = &params.Style {
		Font: r.FormValue("font"),
		Size: fields.float("size"),
		Fill: r.FormValue("fill"),
		Stroke: r.FormValue("stroke"),
		StrokeWidth: fields.optionalFloat("stroke_width"),
		Align: r.FormValue("align"),
		Tracking: fields.float("tracking"),
		Uppercase: fields.bool("uppercase"),
	}
	form.meme.Canvas = params.Canvas {
		Width: fields.int("width"),
		Height: fields.int("height"),
		NavBar: fields.optionalInt("nav_bar"),
		ToolBar: fields.optionalInt("tool_bar"),
		Mode: r.FormValue("mode"),
		Background: r.FormValue("background"),
		Scale: fields.float("scale"),
		Placeholders: fields.bool("placeholders"),
	}
	form.quality = fields.int("quality")
	if fields.err != nil { return nil, fields.err }

	form.format, err = codec.ParseFormat(r.FormValue("format"))
	if err != nil { return nil, badRequest("unsupported format '" + r.FormValue("format") + "'") }
	return form, nil
}

// Parses numeric and boolean form values, keeping the first error.
type formFields struct {
	request *http.Request
	err error
}

func (self *formFields) value(key string) (string, bool) {
	value := self.request.FormValue(key)
	return value, value != "" && self.err == nil
}

func (self *formFields) fail(key, value string) {
	self.err = badRequest("invalid " + key + " value '" + value + "'")
}

func (self *formFields) float(key string) float64 {
	value, ok := self.value(key)
	if !ok { return 0 }
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil { self.fail(key, value) }
	return parsed
}

func (self *formFields) optionalFloat(key string) *float64 {
	if _, ok := self.value(key); !ok { return nil }
	parsed := self.float(key)
	return &parsed
}

func (self *formFields) int(key string) int {
	value, ok := self.value(key)
	if !ok { return 0 }
	parsed, err := strconv.Atoi(value)
	if err != nil { self.fail(key, value) }
	return parsed
}

func (self *formFields) optionalInt(key string) *int {
	if _, ok := self.value(key); !ok { return nil }
	parsed := self.int(key)
	return &parsed
}

func (self *formFields) bool(key string) bool {
	value, ok := self.value(key)
	if !ok { return false }
	parsed, err := strconv.ParseBool(value)
	if err != nil { self.fail(key, value) }
	return parsed
}
