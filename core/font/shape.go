package font

import (
	"fmt"

	"github.com/npillmayer/fontsel/core/dimen"
	"golang.org/x/text/language"
)

// ShapingFlags is a bitset of switches influencing text shaping.
type ShapingFlags uint8

// Shaping switches.
const (
	// IsWhitespace indicates a run consisting entirely of whitespace.
	IsWhitespace ShapingFlags = 1 << iota
	// EndsWithWhitespace indicates a run with trailing whitespace.
	EndsWithWhitespace
	// IgnoreLigatures disables ligature substitution (letter-spacing in effect).
	IgnoreLigatures
	// DisableKerning disables pair kerning.
	DisableKerning
	// RTL marks a right-to-left run.
	RTL
	// KeepAll suppresses word-breaking for CJK (CSS word-break: keep-all).
	KeepAll
)

// ShapingOptions is a value type collecting the parameters that, together
// with the text, determine a shaping result. It is comparable and is part
// of the shape cache key.
type ShapingOptions struct {
	// LetterSpacing is tracking to apply between glyphs. HasLetterSpacing
	// distinguishes an explicit zero from "normal".
	LetterSpacing    dimen.Px
	HasLetterSpacing bool
	// WordSpacing is added to the advance of each space glyph.
	WordSpacing dimen.Px
	// Script is the ISO 15924 script of the run.
	Script language.Script
	Flags  ShapingFlags
}

// shapeCacheEntry is the key of the per-font shape cache. Equality covers
// the exact text and every shaping option.
type shapeCacheEntry struct {
	text    string
	options ShapingOptions
}

// A ShapedGlyph is one positioned glyph in a shaping result.
type ShapedGlyph struct {
	GID       GlyphID
	CodePoint rune     // first code-point that produced this glyph
	Cluster   int      // index of that code-point in the original text
	XAdvance  dimen.Px // advance after the glyph has been set
	YAdvance  dimen.Px
	XOffset   dimen.Px // offset of the glyph's anchor dot
	YOffset   dimen.Px
}

// Stringer implementation.
func (g ShapedGlyph) String() string {
	return fmt.Sprintf("(GID=%d, advance=%s)", g.GID, g.XAdvance)
}

// A GlyphSequence is a shaped run of glyphs. Shaping results are cached and
// shared: callers receive a handle to the cached sequence and must treat it
// as immutable.
type GlyphSequence struct {
	Glyphs  []ShapedGlyph
	Advance dimen.Px // total advance of the run
}

// IsEmpty reports whether the sequence contains no glyphs.
func (seq *GlyphSequence) IsEmpty() bool {
	return seq == nil || len(seq.Glyphs) == 0
}

// A Shaper turns a sequence of code-points into a positioned glyph sequence,
// honoring the OpenType layout rules of the font it was built for. The
// general shaping engine lives outside this package; Font delegates to it
// whenever the fast ASCII path does not apply.
type Shaper interface {
	// Shape shapes text into seq. seq is overwritten.
	Shape(text string, options ShapingOptions, seq *GlyphSequence) error
	// Baseline reports the font's baseline table, if it carries one.
	Baseline() (FontBaseline, bool)
}
