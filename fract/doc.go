// The fract subpackage defines a [Unit] type representing a 26.6 fixed
// point value, together with the [Point] and [Rect] helper types.
//
// Canvas geometry (chrome regions, anchor bands, image frames) is given
// in logical units that may be fractional, like the points of a mobile
// layout. Keeping all that geometry in fixed point makes frame toggles
// exact: hiding and restoring chrome always gives back the same frame,
// which wouldn't be guaranteed with float64 accumulation.
//
// The internal representation is compatible with [fixed.Int26_6], so
// values can be passed directly to [golang.org/x/image/font/sfnt].
//
// [fixed.Int26_6]: https://pkg.go.dev/golang.org/x/image/math/fixed#Int26_6
package fract
