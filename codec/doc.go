// The codec subpackage loads base images for memes and exports the
// rendered results.
//
// Decoding goes through [github.com/disintegration/imaging], so JPEG
// photos are rotated according to their EXIF orientation tag, which is
// what users expect after taking a picture with a phone. PNG, JPEG, GIF,
// BMP, TIFF and WebP inputs are supported. Outputs can be encoded in
// every format but WebP.
package codec
