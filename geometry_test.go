package memetxt

import "image"
import "errors"
import "testing"

import "github.com/tinne26/memetxt/fract"

func TestChromeToggleGeometry(t *testing.T) {
	const width, height = 600, 900
	tests := []struct {
		name string
		chrome []fract.Rect
		chromeHeight int // rows of the canvas covered by chrome
		editing fract.Rect
	}{
		{"no chrome", nil, 0, fract.IntsToRect(0, 0, width, height)},
		{
			"nav and tool bars",
			[]fract.Rect{ fract.IntsToRect(0, 0, width, 56), fract.IntsToRect(0, 856, width, height) },
			100, fract.IntsToRect(0, 56, width, 856),
		},
		{
			"tool bar only",
			[]fract.Rect{ fract.IntsToRect(0, 800, width, height) },
			100, fract.IntsToRect(0, 0, width, 800),
		},
		{
			"status, nav and tool bars",
			[]fract.Rect{
				fract.IntsToRect(0, 0, width, 20),
				fract.IntsToRect(0, 20, width, 64),
				fract.IntsToRect(0, 856, width, height),
			},
			108, fract.IntsToRect(0, 64, width, 856),
		},
		{
			"tall top panel and mid canvas bar",
			[]fract.Rect{ fract.IntsToRect(0, 0, width, 300), fract.IntsToRect(0, 460, width, 480) },
			320, fract.IntsToRect(0, 300, width, 880),
		},
		{
			"overlapping bars",
			[]fract.Rect{ fract.IntsToRect(0, 0, width, 60), fract.IntsToRect(0, 40, width, 100) },
			100, fract.IntsToRect(0, 100, width, height),
		},
		{
			"duplicated tool bar",
			[]fract.Rect{ fract.IntsToRect(0, 850, width, height), fract.IntsToRect(0, 850, width, height) },
			50, fract.IntsToRect(0, 0, width, 850),
		},
		{
			"partially off canvas bars",
			[]fract.Rect{ fract.IntsToRect(0, -40, width, 30), fract.IntsToRect(0, 880, width, 1000) },
			50, fract.IntsToRect(0, 30, width, 880),
		},
		{
			"bars outside the canvas",
			[]fract.Rect{
				fract.IntsToRect(0, -100, width, -20),
				fract.IntsToRect(0, 950, width, 990),
				fract.IntsToRect(-300, 0, -10, 100),
			},
			0, fract.IntsToRect(0, 0, width, height),
		},
		{
			"narrow side bar",
			[]fract.Rect{ fract.IntsToRect(500, 0, 700, 120) },
			120, fract.IntsToRect(0, 120, width, height),
		},
	}

	canvas := fract.IntsToRect(0, 0, width, height)
	for _, test := range tests {
		editing := EditingFrame(width, height, test.chrome)
		if editing != test.editing {
			t.Fatalf("%s: expected editing frame %s, got %s", test.name, test.editing, editing)
		}
		if editing.Height() != fract.FromInt(height - test.chromeHeight) {
			t.Fatalf("%s: editing frame height must be H - C", test.name)
		}
		render := RenderFrame(width, height, editing, test.chrome)
		if render != canvas {
			t.Fatalf("%s: expected render frame %s, got %s", test.name, canvas, render)
		}
		restored := RestoreFrame(width, height, render, test.chrome)
		if restored != editing {
			t.Fatalf("%s: expected restored frame %s, got %s", test.name, editing, restored)
		}
	}
}

func TestChromeCoveringCanvas(t *testing.T) {
	request := &RenderRequest{
		Image: image.NewRGBA(image.Rect(0, 0, 10, 10)),
		Width: 600, Height: 900,
		Chrome: []fract.Rect{
			fract.IntsToRect(0, -50, 600, 500),
			fract.IntsToRect(0, 400, 600, 950),
		},
	}
	if err := request.Validate(); !errors.Is(err, ErrInvalidCanvas) {
		t.Fatalf("expected ErrInvalidCanvas, got %v", err)
	}

	// the same rows repeated many times still leave room for the image
	request.Chrome = nil
	for i := 0; i < 20; i++ {
		request.Chrome = append(request.Chrome, fract.IntsToRect(0, 0, 600, 56))
	}
	if err := request.Validate(); err != nil { t.Fatal(err) }
}

func TestPlaceImage(t *testing.T) {
	frame := image.Rect(0, 0, 600, 900)
	tests := []struct {
		mode ContentMode
		size image.Point
		expected image.Rectangle
	}{
		{ScaleToFill, image.Pt(600, 300), frame},
		{AspectFit,   image.Pt(600, 300), image.Rect(0, 300, 600, 600)},
		{AspectFit,   image.Pt(300, 900), image.Rect(150, 0, 450, 900)},
		{AspectFill,  image.Pt(600, 300), image.Rect(-600, 0, 1200, 900)},
		{AspectFill,  image.Pt(1200, 900), image.Rect(-300, 0, 900, 900)},
	}
	for i, test := range tests {
		got := placeImage(frame, test.size, test.mode)
		if got != test.expected {
			t.Fatalf("test #%d (%s): expected %v, got %v", i, test.mode, test.expected, got)
		}
	}
}
