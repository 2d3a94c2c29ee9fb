// Package config loads the runtime configuration shared by the meme
// command line tool, the HTTP server and batch runs.
//
// Values come from MEME_* environment variables, falling back to the
// contents of optional .env files and then to defaults. Command line
// flags are applied by the callers on top of the loaded [Config].
package config

import "os"
import "time"
import "errors"
import "strconv"
import "strings"

import "github.com/joho/godotenv"
import "github.com/sirupsen/logrus"

import "github.com/tinne26/memetxt"
import "github.com/tinne26/memetxt/cache"
import "github.com/tinne26/memetxt/font"

// Environment variable names.
const (
	EnvListenAddr     = "MEME_LISTEN_ADDR"
	EnvLogLevel       = "MEME_LOG_LEVEL"
	EnvFontDir        = "MEME_FONT_DIR"
	EnvCacheBytes     = "MEME_CACHE_BYTES"
	EnvStrictFonts    = "MEME_STRICT_FONTS"
	EnvMaxUploadBytes = "MEME_MAX_UPLOAD_BYTES"
	EnvRenderTimeout  = "MEME_RENDER_TIMEOUT"
	EnvWorkers        = "MEME_WORKERS"
)

// Runtime configuration.
type Config struct {
	ListenAddr     string
	LogLevel       logrus.Level
	FontDir        string // extra fonts directory, optional
	CacheBytes     int // glyph cache capacity, zero disables the cache
	StrictFonts    bool
	MaxUploadBytes int64
	RenderTimeout  time.Duration
	Workers        int
}

// Returns the default configuration.
func Default() Config {
	return Config {
		ListenAddr: ":3003",
		LogLevel: logrus.InfoLevel,
		CacheBytes: 8*1024*1024,
		MaxUploadBytes: 16*1024*1024,
		RenderTimeout: 10*time.Second,
		Workers: 4,
	}
}

// Loads the configuration from the environment and the given .env
// files. If no files are given, ".env" is used if it exists. Process
// environment variables take precedence over the files.
func Load(envFiles ...string) (Config, error) {
	fileValues := make(map[string]string)
	if len(envFiles) == 0 {
		values, err := godotenv.Read()
		if err != nil && !errors.Is(err, os.ErrNotExist) { return Config{}, err }
		fileValues = values
	} else {
		for _, envFile := range envFiles {
			values, err := godotenv.Read(envFile)
			if err != nil { return Config{}, err }
			for key, value := range values { fileValues[key] = value }
		}
	}

	return FromLookup(func(key string) (string, bool) {
		value, found := os.LookupEnv(key)
		if found { return value, true }
		value, found = fileValues[key]
		return value, found
	})
}

// Builds a configuration from the given lookup function, which has
// the same semantics as [os.LookupEnv](). Empty values are ignored.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	get := func(key string) (string, bool) {
		value, found := lookup(key)
		value = strings.TrimSpace(value)
		return value, found && value != ""
	}

	var err error
	if value, ok := get(EnvListenAddr); ok { cfg.ListenAddr = value }
	if value, ok := get(EnvFontDir); ok { cfg.FontDir = value }
	if value, ok := get(EnvLogLevel); ok {
		cfg.LogLevel, err = logrus.ParseLevel(value)
		if err != nil { return cfg, invalidValue(EnvLogLevel, value, err) }
	}
	if value, ok := get(EnvCacheBytes); ok {
		cfg.CacheBytes, err = strconv.Atoi(value)
		if err != nil || cfg.CacheBytes < 0 { return cfg, invalidValue(EnvCacheBytes, value, err) }
	}
	if value, ok := get(EnvStrictFonts); ok {
		cfg.StrictFonts, err = strconv.ParseBool(value)
		if err != nil { return cfg, invalidValue(EnvStrictFonts, value, err) }
	}
	if value, ok := get(EnvMaxUploadBytes); ok {
		cfg.MaxUploadBytes, err = strconv.ParseInt(value, 10, 64)
		if err != nil || cfg.MaxUploadBytes <= 0 { return cfg, invalidValue(EnvMaxUploadBytes, value, err) }
	}
	if value, ok := get(EnvRenderTimeout); ok {
		cfg.RenderTimeout, err = time.ParseDuration(value)
		if err != nil || cfg.RenderTimeout <= 0 { return cfg, invalidValue(EnvRenderTimeout, value, err) }
	}
	if value, ok := get(EnvWorkers); ok {
		cfg.Workers, err = strconv.Atoi(value)
		if err != nil || cfg.Workers <= 0 { return cfg, invalidValue(EnvWorkers, value, err) }
	}
	return cfg, nil
}

// Returned by [Load]() and [FromLookup]() for unparseable values.
type InvalidValueError struct {
	Key   string
	Value string
	Err   error // may be nil for out of range values
}

func (self *InvalidValueError) Error() string {
	msg := "config: invalid " + self.Key + " value '" + self.Value + "'"
	if self.Err != nil { msg += ": " + self.Err.Error() }
	return msg
}

func (self *InvalidValueError) Unwrap() error { return self.Err }

func invalidValue(key, value string, err error) error {
	return &InvalidValueError{ Key: key, Value: value, Err: err }
}

// Creates a renderer for the configuration: Go fonts plus the fonts in
// FontDir, a glyph cache of CacheBytes and the configured font policy.
func (self *Config) NewRenderer(logger logrus.FieldLogger) (*memetxt.Renderer, error) {
	lib := font.NewDefaultLibrary()
	if self.FontDir != "" {
		added, skipped, err := lib.ParseAllFromPath(self.FontDir)
		if err != nil { return nil, err }
		if logger != nil {
			logger.WithFields(logrus.Fields{
				"dir": self.FontDir, "added": added, "skipped": skipped,
			}).Info("fonts loaded")
		}
	}

	renderer := memetxt.NewRenderer(lib)
	renderer.SetLogger(logger)
	if self.CacheBytes > 0 {
		renderer.SetCache(cache.NewDefaultCache(self.CacheBytes))
	}
	if self.StrictFonts {
		renderer.SetFontPolicy(memetxt.FontStrict)
	} else {
		renderer.SetFontPolicy(memetxt.FontFallback)
	}
	return renderer, nil
}
