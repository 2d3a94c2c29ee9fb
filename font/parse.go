package font

import "os"
import "io"
import "io/fs"
import "errors"
import "fmt"
import "strings"
import "path/filepath"

import "golang.org/x/image/font/sfnt"

// Returned when parsing caption fonts from files that don't have a
// .ttf or .otf extension. Font directories usually contain licenses
// and readmes too, so [Library.ParseAllFromPath]() skips those files
// instead of failing.
var ErrUnsupportedExtension = errors.New("font file must be .ttf or .otf")

// Parses caption font data and returns the font along its full name
// (see [GetName]()), which is the key [Library] stores it under. Font
// bytes are referenced by the font, so they must not be modified while
// the font is in use.
func ParseFromBytes(fontBytes []byte) (*sfnt.Font, string, error) {
	parsed, err := sfnt.Parse(fontBytes)
	if err != nil { return nil, "", err }
	name, err := GetName(parsed)
	return parsed, name, err
}

// Parses a .ttf or .otf file from one of the font directories
// configured for caption rendering.
func ParseFromPath(path string) (*sfnt.Font, string, error) {
	return parseFontFile(path, func() (io.ReadCloser, error) { return os.Open(path) })
}

// Same as [ParseFromPath](), for font directories exposed as an
// [fs.FS] (e.g. fonts embedded in a server binary).
func ParseFromFS(filesys fs.FS, path string) (*sfnt.Font, string, error) {
	return parseFontFile(path, func() (io.ReadCloser, error) { return filesys.Open(path) })
}

func parseFontFile(path string, open func() (io.ReadCloser, error)) (*sfnt.Font, string, error) {
	if !hasValidFontExtension(path) {
		return nil, "", fmt.Errorf("%w: '%s'", ErrUnsupportedExtension, path)
	}

	file, err := open()
	if err != nil { return nil, "", err }
	fontBytes, err := io.ReadAll(file)
	closeErr := file.Close()
	if err == nil { err = closeErr }
	if err != nil { return nil, "", err }
	return ParseFromBytes(fontBytes)
}

// Whether the file name has a .ttf or .otf extension (case-insensitive)
// and at least one more character.
func hasValidFontExtension(path string) bool {
	name := filepath.Base(path)
	ext := strings.ToLower(filepath.Ext(name))
	return len(name) > len(ext) && (ext == ".ttf" || ext == ".otf")
}
