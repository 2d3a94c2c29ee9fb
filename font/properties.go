package font

import "golang.org/x/image/font/sfnt"
import "sync/atomic"
import "errors"

var ErrNotFound = errors.New("font property not found or empty")

// We allocate one sfnt.Buffer so it can be used in GetProperty() calls.
// These buffers can't be used concurrently though, so sfntBuffer will only
// be used if no one else is using it at the moment. Concurrent callers
// pass a nil buffer instead, which sfnt handles by allocating.
var sfntBuffer *sfnt.Buffer
var usingSfntBuffer uint32 = 0
func getSfntBuffer() *sfnt.Buffer {
	if !atomic.CompareAndSwapUint32(&usingSfntBuffer, 0, 1) {
		return nil
	}
	if sfntBuffer == nil {
		sfntBuffer = &sfnt.Buffer{}
	}
	return sfntBuffer
}

func releaseSfntBuffer(buffer *sfnt.Buffer) {
	if buffer != nil {
		atomic.StoreUint32(&usingSfntBuffer, 0)
	}
}

// Returns the requested font property for the given font.
// The returned property string might be empty even when error is nil.
// If the property is missing, [ErrNotFound] will be returned.
func GetProperty(font *sfnt.Font, property sfnt.NameID) (string, error) {
	buffer := getSfntBuffer()
	str, err := font.Name(buffer, property)
	releaseSfntBuffer(buffer)
	if err == sfnt.ErrNotFound { return "", ErrNotFound }
	return str, err
}

// Returns the family name of the given font (e.g. "Helvetica Neue").
func GetFamily(font *sfnt.Font) (string, error) {
	return GetProperty(font, sfnt.NameIDFamily)
}

// Returns the subfamily name of the given font. In most cases, the
// value will be one of: Regular, Italic, Bold, Bold Italic.
func GetSubfamily(font *sfnt.Font) (string, error) {
	return GetProperty(font, sfnt.NameIDSubfamily)
}

// Returns the full name of the given font (e.g. "Helvetica Neue
// Condensed Black").
func GetName(font *sfnt.Font) (string, error) {
	return GetProperty(font, sfnt.NameIDFull)
}

// Returns the PostScript name of the given font (e.g.
// "HelveticaNeue-CondensedBlack"). Mobile platforms usually request
// fonts by this name.
func GetPostScriptName(font *sfnt.Font) (string, error) {
	return GetProperty(font, sfnt.NameIDPostScript)
}

// Returns the runes in the given text that can't be represented by the
// font, without duplicates and in order of appearance. Whitespace and
// control characters are not reported.
func GetMissingRunes(font *sfnt.Font, text string) ([]rune, error) {
	buffer := getSfntBuffer()
	defer releaseSfntBuffer(buffer)

	var missing []rune
	for _, codePoint := range text {
		if codePoint <= ' ' { continue }
		index, err := font.GlyphIndex(buffer, codePoint)
		if err != nil { return missing, err }
		if index == 0 && !containsRune(missing, codePoint) {
			missing = append(missing, codePoint)
		}
	}
	return missing, nil
}

func containsRune(runes []rune, codePoint rune) bool {
	for _, r := range runes {
		if r == codePoint { return true }
	}
	return false
}
