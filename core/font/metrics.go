package font

import "github.com/npillmayer/fontsel/core/dimen"

// Metrics holds font-wide vertical and horizontal metrics, in fractional
// pixels, scaled to the font's size. Metrics are computed once at font
// construction and are immutable afterwards.
type Metrics struct {
	EmSize         dimen.Px // font size in pixels
	Ascent         dimen.Px // distance baseline → top of em box
	Descent        dimen.Px // distance baseline → bottom of em box (positive)
	LineGap        dimen.Px // recommended additional leading
	XHeight        dimen.Px // height of lowercase 'x'
	CapHeight      dimen.Px // height of uppercase letters
	UnderlineSize  dimen.Px
	UnderlineOff   dimen.Px // offset of underline below baseline (negative = below)
	StrikeoutSize  dimen.Px
	StrikeoutOff   dimen.Px
	MaxAdvance     dimen.Px
	AverageAdvance dimen.Px
	SpaceAdvance   dimen.Px // advance of U+0020
	ZeroAdvance    dimen.Px // advance of U+0030, for 'ch' units; 0 if the font has no '0'
}

// LineHeight returns the default distance between two baselines.
func (m Metrics) LineHeight() dimen.Px {
	return m.Ascent + m.Descent + m.LineGap
}

// FontBaseline carries the baseline positions of a font, relative to the
// alphabetic baseline, in fractional pixels.
type FontBaseline struct {
	Hanging     dimen.Px
	Alphabetic  dimen.Px
	Ideographic dimen.Px
}
