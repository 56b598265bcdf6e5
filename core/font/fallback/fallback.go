/*
Package fallback decides which font families to try for a character once
the explicit CSS family list is exhausted. The candidate lists are
OS-specific policy, keyed on the character (and a lookahead character, for
emoji presentation sequences), not on the font description.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fallback

import (
	"runtime"
	"unicode"
)

// Presentation selects between text and emoji presentation of a character.
type Presentation uint8

// Presentation preferences.
const (
	PresentAny Presentation = iota
	PresentText
	PresentEmoji
)

// Variation selectors requesting text resp. emoji presentation.
const (
	VS15 = 0xFE0E
	VS16 = 0xFE0F
)

// Options carries the inputs of fallback family selection.
type Options struct {
	Codepoint     rune
	NextCodepoint rune // 0 if the character is last in its run
}

// Preference determines the emoji-presentation preference for a character,
// honoring a following variation selector over the character's default
// presentation.
func (o Options) Preference() Presentation {
	switch o.NextCodepoint {
	case VS16:
		return PresentEmoji
	case VS15:
		return PresentText
	}
	if isEmojiDefault(o.Codepoint) {
		return PresentEmoji
	}
	return PresentAny
}

// emoji-presentation-by-default blocks
var emojiDefault = &unicode.RangeTable{
	R32: []unicode.Range32{
		{Lo: 0x1F300, Hi: 0x1F5FF, Stride: 1}, // Miscellaneous Symbols and Pictographs
		{Lo: 0x1F600, Hi: 0x1F64F, Stride: 1}, // Emoticons
		{Lo: 0x1F680, Hi: 0x1F6FF, Stride: 1}, // Transport and Map Symbols
		{Lo: 0x1F900, Hi: 0x1F9FF, Stride: 1}, // Supplemental Symbols and Pictographs
		{Lo: 0x1FA70, Hi: 0x1FAFF, Stride: 1}, // Symbols and Pictographs Extended-A
	},
}

func isEmojiDefault(r rune) bool {
	return unicode.Is(emojiDefault, r)
}

// DefaultFamily returns the platform's default font family, tried before
// any script-specific fallback candidates.
func DefaultFamily() string {
	switch runtime.GOOS {
	case "darwin":
		return "Helvetica"
	case "windows":
		return "Arial"
	}
	return "DejaVu Sans"
}

// Families returns an ordered list of candidate family names for a
// character. Families earlier in the list are preferred; the list does not
// include the platform default family.
func Families(opts Options) []string {
	var families []string
	if opts.Preference() == PresentEmoji {
		families = append(families, "Noto Color Emoji", "Apple Color Emoji", "Segoe UI Emoji")
	}
	cp := opts.Codepoint
	switch {
	case unicode.Is(unicode.Arabic, cp):
		families = append(families, "Noto Sans Arabic", "Amiri")
	case unicode.Is(unicode.Hebrew, cp):
		families = append(families, "Noto Sans Hebrew")
	case unicode.Is(unicode.Devanagari, cp):
		families = append(families, "Noto Sans Devanagari")
	case unicode.Is(unicode.Thai, cp):
		families = append(families, "Noto Sans Thai")
	case unicode.Is(unicode.Hangul, cp):
		families = append(families, "Noto Sans CJK KR", "Droid Sans Fallback")
	case unicode.Is(unicode.Hiragana, cp), unicode.Is(unicode.Katakana, cp):
		families = append(families, "Noto Sans CJK JP", "Droid Sans Fallback")
	case unicode.Is(unicode.Han, cp):
		families = append(families, "Noto Sans CJK SC", "WenQuanYi Micro Hei", "Droid Sans Fallback")
	}
	// last-ditch pan-Unicode coverage
	families = append(families, "Noto Sans", "FreeSans", "Symbola")
	return families
}
