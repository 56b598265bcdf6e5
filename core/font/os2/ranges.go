package os2

// RuneRange is an inclusive range of Unicode code-points.
type RuneRange struct {
	Low, High rune
}

// Contains reports whether code-point r lies within the range.
func (rr RuneRange) Contains(r rune) bool {
	return r >= rr.Low && r <= rr.High
}

// ConvertUnicodeRanges decodes the four 32-bit ulUnicodeRange registers of an
// OS/2 table into a list of inclusive code-point ranges.
//
// For every set bit the Unicode blocks assigned to that bit position are
// appended, in table order. The result is a membership test, not a canonical
// partition: ranges from different bits may overlap or duplicate and are not
// merged. Reserved bit positions contribute nothing.
//
// ConvertUnicodeRanges is pure and reentrant. It performs no caching itself;
// callers are expected to decode once per font template and keep the result.
func ConvertUnicodeRanges(r1, r2, r3, r4 uint32) []RuneRange {
	var ranges []RuneRange
	for i, reg := range [4]uint32{r1, r2, r3, r4} {
		for bit := 0; bit < 32; bit++ {
			if reg&(1<<uint(bit)) == 0 {
				continue
			}
			ranges = append(ranges, unicodeRangeTable[i*32+bit]...)
		}
	}
	return ranges
}

// RangesCover reports whether any of the given ranges contains code-point r.
func RangesCover(ranges []RuneRange, r rune) bool {
	for _, rr := range ranges {
		if rr.Contains(r) {
			return true
		}
	}
	return false
}

// unicodeRangeTable assigns Unicode blocks to the 128 bit positions of the
// ulUnicodeRange1…4 bitfield, following the OS/2 table specification
// (https://docs.microsoft.com/en-us/typography/opentype/spec/os2#ur).
// Bit 0 is clipped to the printable ASCII range. Bits 123–127 are reserved
// for internal use and map to no blocks.
var unicodeRangeTable = [128][]RuneRange{
	// ulUnicodeRange1, bits 0–31
	0:  {{0x0020, 0x007E}}, // Basic Latin (printable)
	1:  {{0x0080, 0x00FF}}, // Latin-1 Supplement
	2:  {{0x0100, 0x017F}}, // Latin Extended-A
	3:  {{0x0180, 0x024F}}, // Latin Extended-B
	4:  {{0x0250, 0x02AF}, {0x1D00, 0x1D7F}, {0x1D80, 0x1DBF}}, // IPA Extensions, Phonetic Extensions (+Suppl.)
	5:  {{0x02B0, 0x02FF}, {0xA700, 0xA71F}},                   // Spacing Modifier Letters, Modifier Tone Letters
	6:  {{0x0300, 0x036F}, {0x1DC0, 0x1DFF}},                   // Combining Diacritical Marks (+Suppl.)
	7:  {{0x0370, 0x03FF}},                                     // Greek and Coptic
	8:  {{0x2C80, 0x2CFF}},                                     // Coptic
	9:  {{0x0400, 0x04FF}, {0x0500, 0x052F}, {0x2DE0, 0x2DFF}, {0xA640, 0xA69F}}, // Cyrillic (+Suppl., Ext-A, Ext-B)
	10: {{0x0530, 0x058F}},                   // Armenian
	11: {{0x0590, 0x05FF}},                   // Hebrew
	12: {{0xA500, 0xA63F}},                   // Vai
	13: {{0x0600, 0x06FF}, {0x0750, 0x077F}}, // Arabic (+Suppl.)
	14: {{0x07C0, 0x07FF}},                   // NKo
	15: {{0x0900, 0x097F}},                   // Devanagari
	16: {{0x0980, 0x09FF}},                   // Bengali
	17: {{0x0A00, 0x0A7F}},                   // Gurmukhi
	18: {{0x0A80, 0x0AFF}},                   // Gujarati
	19: {{0x0B00, 0x0B7F}},                   // Oriya
	20: {{0x0B80, 0x0BFF}},                   // Tamil
	21: {{0x0C00, 0x0C7F}},                   // Telugu
	22: {{0x0C80, 0x0CFF}},                   // Kannada
	23: {{0x0D00, 0x0D7F}},                   // Malayalam
	24: {{0x0E00, 0x0E7F}},                   // Thai
	25: {{0x0E80, 0x0EFF}},                   // Lao
	26: {{0x10A0, 0x10FF}, {0x2D00, 0x2D2F}}, // Georgian (+Suppl.)
	27: {{0x1B00, 0x1B7F}},                   // Balinese
	28: {{0x1100, 0x11FF}},                   // Hangul Jamo
	29: {{0x1E00, 0x1EFF}, {0x2C60, 0x2C7F}, {0xA720, 0xA7FF}}, // Latin Extended Additional, Ext-C, Ext-D
	30: {{0x1F00, 0x1FFF}}, // Greek Extended
	31: {{0x2000, 0x206F}, {0x2E00, 0x2E7F}}, // General Punctuation (+Suppl.)

	// ulUnicodeRange2, bits 32–63
	32: {{0x2070, 0x209F}}, // Superscripts And Subscripts
	33: {{0x20A0, 0x20CF}}, // Currency Symbols
	34: {{0x20D0, 0x20FF}}, // Combining Diacritical Marks For Symbols
	35: {{0x2100, 0x214F}}, // Letterlike Symbols
	36: {{0x2150, 0x218F}}, // Number Forms
	37: {{0x2190, 0x21FF}, {0x27F0, 0x27FF}, {0x2900, 0x297F}, {0x2B00, 0x2BFF}}, // Arrows (+Suppl. A/B, Misc.)
	38: {{0x2200, 0x22FF}, {0x2A00, 0x2AFF}, {0x27C0, 0x27EF}, {0x2980, 0x29FF}}, // Mathematical Operators (+Suppl., Misc. A/B)
	39: {{0x2300, 0x23FF}},                   // Miscellaneous Technical
	40: {{0x2400, 0x243F}},                   // Control Pictures
	41: {{0x2440, 0x245F}},                   // Optical Character Recognition
	42: {{0x2460, 0x24FF}},                   // Enclosed Alphanumerics
	43: {{0x2500, 0x257F}},                   // Box Drawing
	44: {{0x2580, 0x259F}},                   // Block Elements
	45: {{0x25A0, 0x25FF}},                   // Geometric Shapes
	46: {{0x2600, 0x26FF}},                   // Miscellaneous Symbols
	47: {{0x2700, 0x27BF}},                   // Dingbats
	48: {{0x3000, 0x303F}},                   // CJK Symbols And Punctuation
	49: {{0x3040, 0x309F}},                   // Hiragana
	50: {{0x30A0, 0x30FF}, {0x31F0, 0x31FF}}, // Katakana (+Phonetic Extensions)
	51: {{0x3100, 0x312F}, {0x31A0, 0x31BF}}, // Bopomofo (+Extended)
	52: {{0x3130, 0x318F}},                   // Hangul Compatibility Jamo
	53: {{0xA840, 0xA87F}},                   // Phags-pa
	54: {{0x3200, 0x32FF}},                   // Enclosed CJK Letters And Months
	55: {{0x3300, 0x33FF}},                   // CJK Compatibility
	56: {{0xAC00, 0xD7AF}},                   // Hangul Syllables
	57: {{0x10000, 0x10FFFF}},                // Non-Plane 0
	58: {{0x10900, 0x1091F}},                 // Phoenician
	59: {{0x4E00, 0x9FFF}, {0x2E80, 0x2EFF}, {0x2F00, 0x2FDF}, {0x2FF0, 0x2FFF}, {0x3400, 0x4DBF}, {0x20000, 0x2A6DF}, {0x3190, 0x319F}}, // CJK Unified Ideographs and friends
	60: {{0xE000, 0xF8FF}},                                     // Private Use Area
	61: {{0x31C0, 0x31EF}, {0xF900, 0xFAFF}, {0x2F800, 0x2FA1F}}, // CJK Strokes, CJK Compatibility Ideographs (+Suppl.)
	62: {{0xFB00, 0xFB4F}},                   // Alphabetic Presentation Forms
	63: {{0xFB50, 0xFDFF}},                   // Arabic Presentation Forms-A

	// ulUnicodeRange3, bits 64–95
	64: {{0xFE20, 0xFE2F}},                   // Combining Half Marks
	65: {{0xFE10, 0xFE1F}, {0xFE30, 0xFE4F}}, // Vertical Forms, CJK Compatibility Forms
	66: {{0xFE50, 0xFE6F}},                   // Small Form Variants
	67: {{0xFE70, 0xFEFF}},                   // Arabic Presentation Forms-B
	68: {{0xFF00, 0xFFEF}},                   // Halfwidth And Fullwidth Forms
	69: {{0xFFF0, 0xFFFF}},                   // Specials
	70: {{0x0F00, 0x0FFF}},                   // Tibetan
	71: {{0x0700, 0x074F}},                   // Syriac
	72: {{0x0780, 0x07BF}},                   // Thaana
	73: {{0x0D80, 0x0DFF}},                   // Sinhala
	74: {{0x1000, 0x109F}},                   // Myanmar
	75: {{0x1200, 0x137F}, {0x1380, 0x139F}, {0x2D80, 0x2DDF}}, // Ethiopic (+Suppl., Extended)
	76: {{0x13A0, 0x13FF}},                   // Cherokee
	77: {{0x1400, 0x167F}},                   // Unified Canadian Aboriginal Syllabics
	78: {{0x1680, 0x169F}},                   // Ogham
	79: {{0x16A0, 0x16FF}},                   // Runic
	80: {{0x1780, 0x17FF}, {0x19E0, 0x19FF}}, // Khmer (+Symbols)
	81: {{0x1800, 0x18AF}},                   // Mongolian
	82: {{0x2800, 0x28FF}},                   // Braille Patterns
	83: {{0xA000, 0xA48F}, {0xA490, 0xA4CF}}, // Yi Syllables, Yi Radicals
	84: {{0x1700, 0x171F}, {0x1720, 0x173F}, {0x1740, 0x175F}, {0x1760, 0x177F}}, // Tagalog, Hanunoo, Buhid, Tagbanwa
	85: {{0x10300, 0x1032F}},                       // Old Italic
	86: {{0x10330, 0x1034F}},                       // Gothic
	87: {{0x10400, 0x1044F}},                       // Deseret
	88: {{0x1D000, 0x1D0FF}, {0x1D100, 0x1D1FF}, {0x1D200, 0x1D24F}}, // Byzantine Musical Symbols, Musical Symbols, Ancient Greek Musical Notation
	89: {{0x1D400, 0x1D7FF}},                       // Mathematical Alphanumeric Symbols
	90: {{0xF0000, 0xFFFFD}, {0x100000, 0x10FFFD}}, // Private Use (plane 15–16)
	91: {{0xFE00, 0xFE0F}, {0xE0100, 0xE01EF}},     // Variation Selectors (+Suppl.)
	92: {{0xE0000, 0xE007F}},                       // Tags
	93: {{0x1900, 0x194F}},                         // Limbu
	94: {{0x1950, 0x197F}},                         // Tai Le
	95: {{0x1980, 0x19DF}},                         // New Tai Lue

	// ulUnicodeRange4, bits 96–127
	96:  {{0x1A00, 0x1A1F}},                   // Buginese
	97:  {{0x2C00, 0x2C5F}},                   // Glagolitic
	98:  {{0x2D30, 0x2D7F}},                   // Tifinagh
	99:  {{0x4DC0, 0x4DFF}},                   // Yijing Hexagram Symbols
	100: {{0xA800, 0xA82F}},                   // Syloti Nagri
	101: {{0x10000, 0x1007F}, {0x10080, 0x100FF}, {0x10100, 0x1013F}}, // Linear B Syllabary, Linear B Ideograms, Aegean Numbers
	102: {{0x10140, 0x1018F}},                 // Ancient Greek Numbers
	103: {{0x10380, 0x1039F}},                 // Ugaritic
	104: {{0x103A0, 0x103DF}},                 // Old Persian
	105: {{0x10450, 0x1047F}},                 // Shavian
	106: {{0x10480, 0x104AF}},                 // Osmanya
	107: {{0x10800, 0x1083F}},                 // Cypriot Syllabary
	108: {{0x10A00, 0x10A5F}},                 // Kharoshthi
	109: {{0x1D300, 0x1D35F}},                 // Tai Xuan Jing Symbols
	110: {{0x12000, 0x123FF}, {0x12400, 0x1247F}}, // Cuneiform (+Numbers and Punctuation)
	111: {{0x1D360, 0x1D37F}},                 // Counting Rod Numerals
	112: {{0x1B80, 0x1BBF}},                   // Sundanese
	113: {{0x1C00, 0x1C4F}},                   // Lepcha
	114: {{0x1C50, 0x1C7F}},                   // Ol Chiki
	115: {{0xA880, 0xA8DF}},                   // Saurashtra
	116: {{0xA900, 0xA92F}},                   // Kayah Li
	117: {{0xA930, 0xA95F}},                   // Rejang
	118: {{0xAA00, 0xAA5F}},                   // Cham
	119: {{0x10190, 0x101CF}},                 // Ancient Symbols
	120: {{0x101D0, 0x101FF}},                 // Phaistos Disc
	121: {{0x102A0, 0x102DF}, {0x10280, 0x1029F}, {0x10920, 0x1093F}}, // Carian, Lycian, Lydian
	122: {{0x1F030, 0x1F09F}, {0x1F000, 0x1F02F}}, // Domino Tiles, Mahjong Tiles
	// 123–127 reserved
}
