package fontregistry

import (
	"path"
	"strings"

	"github.com/npillmayer/fontsel/core/font"
	xfont "golang.org/x/image/font"
)

// MatchConfidence is a type for expressing the confidence level of font
// matching.
type MatchConfidence int

const (
	NoConfidence      MatchConfidence = 0
	LowConfidence     MatchConfidence = 2
	HighConfidence    MatchConfidence = 3
	PerfectConfidence MatchConfidence = 4
)

// matchConfidence scores how well a template's face metadata matches a
// description. Style and weight carry the score; width is used by callers as
// a tie-breaker only.
func matchConfidence(t *font.Template, desc font.Descriptor) MatchConfidence {
	s := MatchStyle(t.Style, desc.Style)
	w := MatchWeight(t.Weight, desc.Weight)
	return (s + w) / 2
}

// MatchStyle matches a font face's style against a requested style.
func MatchStyle(have, want xfont.Style) MatchConfidence {
	if have == want {
		return PerfectConfidence
	}
	// Italic and oblique substitute for each other.
	if have != xfont.StyleNormal && want != xfont.StyleNormal {
		return HighConfidence
	}
	return NoConfidence
}

// MatchWeight matches a font face's weight against a requested weight. The
// x/image/font weight scale maps CSS weights 100…900 onto -3…+5, so a step
// of 1 is one CSS weight grade.
func MatchWeight(have, want xfont.Weight) MatchConfidence {
	d := int(have) - int(want)
	if d < 0 {
		d = -d
	}
	switch d {
	case 0:
		return PerfectConfidence
	case 1:
		return HighConfidence
	case 2:
		return LowConfidence
	}
	return NoConfidence
}

// stretchDistance orders font widths by closeness to a requested stretch.
func stretchDistance(have, want font.Stretch) font.Stretch {
	if have > want {
		return have - want
	}
	return want - have
}

// GuessStyleAndWeight trys to guess a font's style and weight from the
// font's file name.
func GuessStyleAndWeight(fontfilename string) (xfont.Style, xfont.Weight) {
	fontfilename = path.Base(fontfilename)
	ext := path.Ext(fontfilename)
	fontfilename = strings.ToLower(fontfilename[:len(fontfilename)-len(ext)])
	s := strings.Split(fontfilename, "-")
	if len(s) > 1 {
		switch s[len(s)-1] {
		case "light", "xlight":
			return xfont.StyleNormal, xfont.WeightLight
		case "normal", "medium", "regular", "r":
			return xfont.StyleNormal, xfont.WeightNormal
		case "bold", "b":
			return xfont.StyleNormal, xfont.WeightBold
		case "xbold", "black":
			return xfont.StyleNormal, xfont.WeightExtraBold
		}
	}
	style, weight := xfont.StyleNormal, xfont.WeightNormal
	if strings.Contains(fontfilename, "italic") {
		style = xfont.StyleItalic
	}
	if strings.Contains(fontfilename, "light") {
		weight = xfont.WeightLight
	}
	if strings.Contains(fontfilename, "bold") {
		weight = xfont.WeightBold
	}
	return style, weight
}
