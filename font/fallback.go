package font

import "sync"

import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/font/gofont/gobold"
import "golang.org/x/image/font/gofont/gobolditalic"
import "golang.org/x/image/font/gofont/goitalic"
import "golang.org/x/image/font/gofont/gomedium"
import "golang.org/x/image/font/gofont/gomono"
import "golang.org/x/image/font/gofont/gomonobold"
import "golang.org/x/image/font/gofont/goregular"

// Full name of the font used when a requested font can't be resolved
// and the renderer is configured to fall back.
const FallbackName = "Go Bold"

var fallbackOnce sync.Once
var fallbackFont *sfnt.Font

// Returns the fallback font ([FallbackName]), parsed from the embedded
// Go font data on first use.
func Fallback() *sfnt.Font {
	fallbackOnce.Do(func() {
		var err error
		fallbackFont, err = sfnt.Parse(gobold.TTF)
		if err != nil { panic("embedded fallback font: " + err.Error()) }
	})
	return fallbackFont
}

var goFontsTTF = [][]byte{
	goregular.TTF, gobold.TTF, goitalic.TTF, gobolditalic.TTF,
	gomedium.TTF, gomono.TTF, gomonobold.TTF,
}

// Adds the Go fonts (regular, bold, italics, medium and mono variants)
// to the given library. Fonts already present are skipped.
func RegisterGoFonts(lib *Library) error {
	for _, data := range goFontsTTF {
		_, err := lib.ParseFromBytes(data)
		if err != nil && err != ErrAlreadyPresent { return err }
	}
	return nil
}

// Creates a new [Library] containing the Go fonts.
func NewDefaultLibrary() *Library {
	lib := NewLibrary()
	err := RegisterGoFonts(lib)
	if err != nil { panic("embedded Go fonts: " + err.Error()) }
	return lib
}
