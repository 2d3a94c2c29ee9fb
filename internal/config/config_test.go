package config

import "os"
import "time"
import "errors"
import "testing"
import "path/filepath"

import "github.com/sirupsen/logrus"

import "github.com/tinne26/memetxt"

func mapLookup(values map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		value, found := values[key]
		return value, found
	}
}

func TestDefaults(t *testing.T) {
	cfg, err := FromLookup(mapLookup(nil))
	if err != nil { t.Fatal(err) }
	if cfg != Default() { t.Fatalf("expected defaults, got %+v", cfg) }
	if cfg.ListenAddr != ":3003" || cfg.Workers != 4 || cfg.RenderTimeout != 10*time.Second {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

func TestFromLookup(t *testing.T) {
	cfg, err := FromLookup(mapLookup(map[string]string{
		EnvListenAddr: "127.0.0.1:8080",
		EnvLogLevel: "debug",
		EnvFontDir: "/usr/share/fonts/memes",
		EnvCacheBytes: "0",
		EnvStrictFonts: "true",
		EnvMaxUploadBytes: "1024",
		EnvRenderTimeout: "2s",
		EnvWorkers: " 9 ",
	}))
	if err != nil { t.Fatal(err) }
	expected := Config {
		ListenAddr: "127.0.0.1:8080",
		LogLevel: logrus.DebugLevel,
		FontDir: "/usr/share/fonts/memes",
		CacheBytes: 0,
		StrictFonts: true,
		MaxUploadBytes: 1024,
		RenderTimeout: 2*time.Second,
		Workers: 9,
	}
	if cfg != expected { t.Fatalf("expected %+v, got %+v", expected, cfg) }
}

func TestFromLookupInvalid(t *testing.T) {
	tests := []struct{ key, value string }{
		{EnvLogLevel, "verbose"},
		{EnvCacheBytes, "-1"},
		{EnvStrictFonts, "maybe"},
		{EnvMaxUploadBytes, "0"},
		{EnvRenderTimeout, "10"},
		{EnvWorkers, "zero"},
	}
	for _, test := range tests {
		_, err := FromLookup(mapLookup(map[string]string{ test.key: test.value }))
		var valueErr *InvalidValueError
		if !errors.As(err, &valueErr) || valueErr.Key != test.key {
			t.Fatalf("%s=%s: expected *InvalidValueError, got %v", test.key, test.value, err)
		}
	}
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "meme.env")
	content := "MEME_WORKERS=7\nMEME_STRICT_FONTS=1\n# comment\nMEME_LISTEN_ADDR=:9999\n"
	err := os.WriteFile(path, []byte(content), 0644)
	if err != nil { t.Fatal(err) }

	t.Setenv(EnvListenAddr, ":4000") // process env wins over files
	cfg, err := Load(path)
	if err != nil { t.Fatal(err) }
	if cfg.Workers != 7 || !cfg.StrictFonts || cfg.ListenAddr != ":4000" {
		t.Fatalf("unexpected config %+v", cfg)
	}

	_, err = Load(filepath.Join(t.TempDir(), "missing.env"))
	if err == nil { t.Fatal("explicit missing env files must fail") }
}

func TestNewRenderer(t *testing.T) {
	cfg := Default()
	renderer, err := cfg.NewRenderer(nil)
	if err != nil { t.Fatal(err) }
	if renderer.GetCache() == nil { t.Fatal("expected a glyph cache") }
	if renderer.GetFontPolicy() != memetxt.FontFallback { t.Fatal("expected fallback font policy") }
	if renderer.Library().Size() != 7 { t.Fatalf("expected the Go fonts, got %d fonts", renderer.Library().Size()) }

	cfg.CacheBytes = 0
	cfg.StrictFonts = true
	renderer, err = cfg.NewRenderer(nil)
	if err != nil { t.Fatal(err) }
	if renderer.GetCache() != nil || renderer.GetFontPolicy() != memetxt.FontStrict {
		t.Fatal("unexpected renderer configuration")
	}

	cfg.FontDir = filepath.Join(t.TempDir(), "nope")
	_, err = cfg.NewRenderer(nil)
	if err == nil { t.Fatal("expected error for missing font dir") }
}
