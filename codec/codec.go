package codec

import "io"
import "image"
import "errors"
import "strings"

import "github.com/disintegration/imaging"
import _ "golang.org/x/image/webp"

// Image formats supported for encoding.
type Format uint8
const (
	PNG Format = iota
	JPEG
	GIF
	BMP
	TIFF
)

// Default quality for [JPEG] outputs.
const DefaultJPEGQuality = 90

// Returned when a format name or file extension is not recognized.
var ErrUnsupportedFormat = errors.New("codec: unsupported image format")

// String returns the canonical lowercase name of the format.
func (self Format) String() string {
	switch self {
	case PNG : return "png"
	case JPEG: return "jpeg"
	case GIF : return "gif"
	case BMP : return "bmp"
	case TIFF: return "tiff"
	default:
		return "Format(unknown)"
	}
}

// Returns the MIME type of the format.
func (self Format) ContentType() string {
	return "image/" + self.String()
}

// Returns the preferred file extension for the format, with the dot.
func (self Format) Extension() string {
	if self == JPEG { return ".jpg" }
	return "." + self.String()
}

func (self Format) imagingFormat() imaging.Format {
	switch self {
	case PNG : return imaging.PNG
	case JPEG: return imaging.JPEG
	case GIF : return imaging.GIF
	case BMP : return imaging.BMP
	case TIFF: return imaging.TIFF
	default:
		panic("invalid codec.Format")
	}
}

// Parses a format name like "png", "jpg" or "image/jpeg", ignoring
// case. An empty name is [PNG].
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.TrimPrefix(name, "image/")
	name = strings.TrimPrefix(name, ".")
	switch name {
	case "png", "": return PNG, nil
	case "jpg", "jpeg": return JPEG, nil
	case "gif": return GIF, nil
	case "bmp": return BMP, nil
	case "tif", "tiff": return TIFF, nil
	default:
		return PNG, ErrUnsupportedFormat
	}
}

// Determines the encoding format from the extension of the given path.
func FormatFromPath(path string) (Format, error) {
	format, err := imaging.FormatFromFilename(path)
	if err != nil { return PNG, ErrUnsupportedFormat }
	switch format {
	case imaging.PNG : return PNG, nil
	case imaging.JPEG: return JPEG, nil
	case imaging.GIF : return GIF, nil
	case imaging.BMP : return BMP, nil
	case imaging.TIFF: return TIFF, nil
	default:
		return PNG, ErrUnsupportedFormat
	}
}

// Decodes an image, applying the EXIF orientation if present.
func Decode(reader io.Reader) (image.Image, error) {
	return imaging.Decode(reader, imaging.AutoOrientation(true))
}

// Opens and decodes the image file at the given path, applying the
// EXIF orientation if present.
func DecodeFile(path string) (image.Image, error) {
	return imaging.Open(path, imaging.AutoOrientation(true))
}

// Encodes the image in the given format. A non-positive jpegQuality
// selects [DefaultJPEGQuality]. The quality is ignored for other formats.
func Encode(writer io.Writer, img image.Image, format Format, jpegQuality int) error {
	if format > TIFF { return ErrUnsupportedFormat }
	return imaging.Encode(writer, img, format.imagingFormat(), imaging.JPEGQuality(quality(jpegQuality)))
}

// Encodes the image into the given file, with the format determined by
// the file extension. See [Encode]() for jpegQuality.
func EncodeFile(path string, img image.Image, jpegQuality int) error {
	_, err := FormatFromPath(path)
	if err != nil { return err }
	return imaging.Save(img, path, imaging.JPEGQuality(quality(jpegQuality)))
}

func quality(jpegQuality int) int {
	if jpegQuality <= 0 { return DefaultJPEGQuality }
	if jpegQuality > 100 { return 100 }
	return jpegQuality
}
