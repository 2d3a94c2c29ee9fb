// Package server exposes the meme renderer over HTTP.
//
// Routes:
//   - POST /api/v1/memes: multipart form with an "image" file and the
//     caption and canvas fields. Responds with the encoded meme.
//   - GET /api/v1/fonts: the names of the available fonts.
//   - GET /healthz: liveness check, with glyph cache stats if any.
//
// Every response carries an X-Request-Id header with a ULID.
package server

import "time"
import "net/http"

import "github.com/go-chi/chi/v5"
import "github.com/go-chi/chi/v5/middleware"
import "github.com/go-chi/cors"
import "github.com/sirupsen/logrus"

import "github.com/tinne26/memetxt"
import "github.com/tinne26/memetxt/internal/config"

// HTTP host for a [memetxt.Renderer].
type Server struct {
	renderer *memetxt.Renderer
	logger logrus.FieldLogger
	maxUploadBytes int64
	renderTimeout time.Duration
}

// Creates a server for the given renderer. Upload limits and render
// timeouts are taken from the configuration. A nil logger uses the
// logrus standard logger.
func New(renderer *memetxt.Renderer, cfg config.Config, logger logrus.FieldLogger) *Server {
	if logger == nil { logger = logrus.StandardLogger() }
	defaults := config.Default()
	if cfg.MaxUploadBytes <= 0 { cfg.MaxUploadBytes = defaults.MaxUploadBytes }
	if cfg.RenderTimeout <= 0 { cfg.RenderTimeout = defaults.RenderTimeout }
	return &Server {
		renderer: renderer,
		logger: logger,
		maxUploadBytes: cfg.MaxUploadBytes,
		renderTimeout: cfg.RenderTimeout,
	}
}

// Returns the HTTP handler with all the routes and middleware.
func (self *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.RealIP)
	r.Use(self.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "Content-Length"},
		ExposedHeaders: []string{requestIDHeader, warningsHeader},
		MaxAge: 300,
	}))

	r.Get("/healthz", self.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/fonts", self.handleFonts)
		r.With(middleware.Timeout(self.renderTimeout)).Post("/memes", self.handleRender)
	})
	return r
}

// Listens on the given address until the server fails.
func (self *Server) ListenAndServe(addr string) error {
	httpServer := &http.Server {
		Addr: addr,
		Handler: self.Router(),
		ReadHeaderTimeout: 10*time.Second,
	}
	self.logger.WithField("addr", addr).Info("starting server")
	return httpServer.ListenAndServe()
}
