package main

import "bytes"
import "image"
import "strings"
import "testing"
import "path/filepath"

import "github.com/tinne26/memetxt/codec"

func TestFontsCommand(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"fonts"}, &stdout, &stderr)
	if code != 0 { t.Fatalf("expected exit code 0, got %d: %s", code, stderr.String()) }
	if !strings.Contains(stdout.String(), "Go Bold\n") { t.Fatalf("expected Go Bold listed, got %q", stdout.String()) }
}

func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()
	in, out := filepath.Join(dir, "photo.png"), filepath.Join(dir, "meme.jpg")
	err := codec.EncodeFile(in, image.NewRGBA(image.Rect(0, 0, 160, 100)), 0)
	if err != nil { t.Fatal(err) }

	var stdout, stderr bytes.Buffer
	args := []string{"render", "-in", in, "-out", out, "-top", "TOP", "-font", "Go Bold", "-scale", "2", "-loglevel", "error"}
	code := run(args, &stdout, &stderr)
	if code != 0 { t.Fatalf("expected exit code 0, got %d: %s", code, stderr.String()) }

	img, err := codec.DecodeFile(out)
	if err != nil { t.Fatal(err) }
	if img.Bounds().Dx() != 320 || img.Bounds().Dy() != 400 {
		t.Fatalf("expected a 320x400 meme, got %v", img.Bounds())
	}
}

func TestCommandErrors(t *testing.T) {
	var stdout, stderr bytes.Buffer
	tests := [][]string{
		{},
		{"paint"},
		{"render"},
		{"render", "-in", "missing.png", "-font", "Go Bold"},
		{"render", "-loglevel", "loud"},
		{"fonts", "-strict=maybe"},
	}
	for _, args := range tests {
		if run(args, &stdout, &stderr) == 0 { t.Fatalf("expected failure for %v", args) }
	}
	if run([]string{"help"}, &stdout, &stderr) != 0 { t.Fatal("help must succeed") }
}
