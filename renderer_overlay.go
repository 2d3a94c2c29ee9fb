package memetxt

import "strings"

import "golang.org/x/image/font/sfnt"
import "golang.org/x/text/cases"
import "golang.org/x/text/language"
import "github.com/sirupsen/logrus"

import "github.com/tinne26/memetxt/font"
import "github.com/tinne26/memetxt/fract"

// An overlay with its font resolved and its text split in lines,
// ready to be drawn.
type preparedOverlay struct {
	lines []string
	style TextStyle
	anchor fract.Rect
	font *sfnt.Font
	fontName string
}

// Returns nil without error for nil overlays and empty texts.
func (self *renderConfig) prepareOverlay(request *RenderRequest, overlay *TextOverlay, top bool, result *Result) (*preparedOverlay, error) {
	if overlay == nil || overlay.Text == "" { return nil, nil }

	text := overlay.Text
	if overlay.Style.Uppercase {
		text = cases.Upper(language.Und).String(text)
	}

	if top {
		result.TopText = text
	} else {
		result.BottomText = text
	}

	fnt, fontName, err := self.resolveFont(overlay.Style.FontName, result)
	if err != nil { return nil, err }

	missing, err := font.GetMissingRunes(fnt, text)
	if err == nil && len(missing) > 0 {
		warning := &MissingGlyphsError{ Font: fontName, Runes: missing }
		result.Warnings = append(result.Warnings, warning)
		self.logger.WithField("font", fontName).Warn(warning.Error())
	}

	return &preparedOverlay {
		lines: splitLines(text),
		style: overlay.Style,
		anchor: request.anchorFor(overlay, top),
		font: fnt,
		fontName: fontName,
	}, nil
}

// Resolves the given font name in the library. Unknown names fail with
// a *FontResolutionError under FontStrict. Under FontFallback, the same
// error is added to the result warnings and the fallback font is used.
func (self *renderConfig) resolveFont(name string, result *Result) (*sfnt.Font, string, error) {
	if strings.TrimSpace(name) == "" {
		return font.Fallback(), font.FallbackName, nil
	}

	fnt, fullName, found := self.fonts.Lookup(name)
	if found { return fnt, fullName, nil }

	resolutionErr := &FontResolutionError{ Name: name, Fallback: font.FallbackName }
	if self.fontPolicy == FontStrict { return nil, "", resolutionErr }
	result.Warnings = append(result.Warnings, resolutionErr)
	self.logger.WithFields(logrus.Fields{
		"font": name, "fallback": font.FallbackName,
	}).Warn("font not found, using fallback")
	return font.Fallback(), font.FallbackName, nil
}

func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.Split(text, "\n")
}
