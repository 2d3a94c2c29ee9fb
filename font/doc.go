// The font subpackage contains helper methods to parse fonts and
// obtain information from them (name, family, missing runes, etc.),
// alongside a [Library] type used by the meme renderer to resolve the
// font names requested in text styles.
//
// Meme styles typically name a platform font like "HelveticaNeue-CondensedBlack"
// that may or may not be installed wherever the renderer runs. The library
// can be filled from font directories or embedded filesystems, and the
// Go font family is always available through [Fallback]() and
// [RegisterGoFonts]().
package font
