package server

import "bytes"
import "errors"
import "strconv"
import "net/http"

import "github.com/go-chi/render"
import "github.com/sirupsen/logrus"

import "github.com/tinne26/memetxt"
import "github.com/tinne26/memetxt/cache"
import "github.com/tinne26/memetxt/codec"
import "github.com/tinne26/memetxt/font"
import "github.com/tinne26/memetxt/internal/params"

// Multipart forms keep up to this many bytes in memory.
const formMemoryBytes = 4 << 20

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id"`
}

type healthResponse struct {
	Status string            `json:"status"`
	Cache  *cache.CacheStats `json:"cache,omitempty"`
}

type fontsResponse struct {
	Fonts    []string `json:"fonts"`
	Fallback string   `json:"fallback"`
}

// Errors caused by the request contents, with their response status.
type requestError struct {
	status int
	msg string
}

func (self *requestError) Error() string { return self.msg }

func badRequest(msg string) error {
	return &requestError{ status: http.StatusBadRequest, msg: msg }
}

func (self *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	response := healthResponse{ Status: "ok" }
	if glyphCache := self.renderer.GetCache(); glyphCache != nil {
		stats := glyphCache.Stats()
		response.Cache = &stats
	}
	render.JSON(w, r, response)
}

func (self *Server) handleFonts(w http.ResponseWriter, r *http.Request) {
	names := self.renderer.Library().Names()
	render.JSON(w, r, fontsResponse{ Fonts: names, Fallback: font.FallbackName })
}

type renderOutcome struct {
	result *memetxt.Result
	err error
}

func (self *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	logger := self.logger.WithField("request_id", RequestID(r.Context()))

	r.Body = http.MaxBytesReader(w, r.Body, self.maxUploadBytes)
	form, err := parseMemeForm(r)
	if err != nil {
		self.writeError(w, r, err)
		return
	}
	request, err := form.meme.Request(form.image)
	if err != nil {
		self.writeError(w, r, err)
		return
	}

	// the render stops at the next glyph once the request is done, but
	// the client doesn't have to wait for it
	done := make(chan renderOutcome, 1)
	go func() {
		result, err := self.renderer.RenderContext(r.Context(), request)
		done <- renderOutcome{ result, err }
	}()
	var outcome renderOutcome
	select {
	case outcome = <-done:
	case <-r.Context().Done():
		logger.Warn("render abandoned: " + r.Context().Err().Error())
		return
	}
	if outcome.err != nil {
		self.writeError(w, r, outcome.err)
		return
	}

	var buffer bytes.Buffer
	err = codec.Encode(&buffer, outcome.result.Image, form.format, form.quality)
	if err != nil {
		logger.WithError(err).Error("failed to encode meme")
		self.writeError(w, r, err)
		return
	}
	for _, warning := range outcome.result.Warnings {
		logger.WithError(warning).Info("render warning")
	}

	w.Header().Set("Content-Type", form.format.ContentType())
	w.Header().Set("Content-Length", strconv.Itoa(buffer.Len()))
	w.Header().Set(warningsHeader, strconv.Itoa(len(outcome.result.Warnings)))
	w.WriteHeader(http.StatusOK)
	_, err = w.Write(buffer.Bytes())
	if err != nil { logger.WithError(err).Debug("failed to write response") }
}

// Maps render and request errors to response statuses.
func statusFor(err error) int {
	var reqErr *requestError
	var sizeErr *http.MaxBytesError
	switch {
	case errors.As(err, &reqErr):
		return reqErr.status
	case errors.As(err, &sizeErr):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, params.ErrInvalid):
		return http.StatusBadRequest
	case errors.Is(err, memetxt.ErrMissingImage), errors.Is(err, memetxt.ErrInvalidCanvas),
		errors.Is(err, memetxt.ErrInvalidStyle):
		return http.StatusBadRequest
	case errors.Is(err, memetxt.ErrFontResolution):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (self *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError { msg = "internal error" }
	if status >= 500 {
		self.logger.WithError(err).WithField("request_id", RequestID(r.Context())).Error("request failed")
	} else {
		self.logger.WithFields(logrus.Fields{
			"request_id": RequestID(r.Context()), "status": status,
		}).Debug(err.Error())
	}
	render.Status(r, status)
	render.JSON(w, r, errorResponse{ Error: msg, RequestID: RequestID(r.Context()) })
}
