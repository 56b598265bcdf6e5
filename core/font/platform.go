package font

import (
	"github.com/npillmayer/fontsel/core/dimen"
)

// GlyphID is an opaque per-font glyph identifier, distinct from any
// code-point. Glyph 0 is reserved for ".notdef" in every sfnt font.
type GlyphID uint32

// Tag is a 4-byte identifier of an sfnt table, as used in font table
// directories ('kern', 'GSUB', …).
type Tag uint32

// MustTag creates a Tag from a 4-character string. It panics for strings of
// any other length; use it for compile-time constants only.
func MustTag(s string) Tag {
	if len(s) != 4 {
		panic("font table tag must be 4 characters: " + s)
	}
	return Tag(uint32(s[0])<<24 | uint32(s[1])<<16 | uint32(s[2])<<8 | uint32(s[3]))
}

// Stringer implementation.
func (t Tag) String() string {
	return string([]byte{byte(t >> 24), byte(t >> 16), byte(t >> 8), byte(t)})
}

// Tags of tables consulted for feature detection.
var (
	TagKern = MustTag("kern")
	TagGPOS = MustTag("GPOS")
	TagGSUB = MustTag("GSUB")
	TagCBDT = MustTag("CBDT")
	TagCOLR = MustTag("COLR")
	TagSbix = MustTag("sbix")
	TagBASE = MustTag("BASE")
	TagOS2  = MustTag("OS/2")
	TagPost = MustTag("post")
	TagHhea = MustTag("hhea")
)

// GlyphBounds is the typographic bounding box of a single glyph, in
// fractional pixels relative to the glyph origin.
type GlyphBounds struct {
	MinX, MinY dimen.Px
	MaxX, MaxY dimen.Px
}

// PlatformFont is a loaded font resource at a fixed size, as provided by the
// platform font backend. Implementations need not be thread-safe; Font
// serializes access through its cache locks.
//
// Lookup methods represent absence instead of failing: a missing glyph or
// advance is reported through the boolean return.
type PlatformFont interface {
	// GlyphIndex returns the glyph for a code-point, or false if the font
	// has none.
	GlyphIndex(r rune) (GlyphID, bool)
	// GlyphHAdvance returns the horizontal advance for a glyph, or false
	// if the platform cannot provide one.
	GlyphHAdvance(g GlyphID) (dimen.Px, bool)
	// GlyphHKerning returns the kerning correction for a glyph pair,
	// 0 if the pair is not kerned.
	GlyphHKerning(g0, g1 GlyphID) dimen.Px
	// Metrics returns the font-wide metrics, scaled to the font's size.
	Metrics() Metrics
	// Table returns the raw bytes of an sfnt table, or nil if the font
	// does not carry it.
	Table(tag Tag) []byte
	// TypographicBounds returns the bounding box of a glyph.
	TypographicBounds(g GlyphID) GlyphBounds
}
