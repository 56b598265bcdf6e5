/*
Package harfbuzz connects the general HarfBuzz shaping engine to package
font, serving the runs that the fast ASCII path cannot handle.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package harfbuzz

import (
	"bytes"
	"encoding/binary"
	"unicode"

	hbtt "github.com/benoitkugler/textlayout/fonts/truetype"
	hb "github.com/benoitkugler/textlayout/harfbuzz"
	hblang "github.com/benoitkugler/textlayout/language"
	"github.com/npillmayer/fontsel/core"
	"github.com/npillmayer/fontsel/core/dimen"
	"github.com/npillmayer/fontsel/core/font"
	"github.com/npillmayer/fontsel/core/font/opentype"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/language"
)

// tracer traces with key 'fontsel.shape'.
func tracer() tracing.Trace {
	return tracing.Select("fontsel.shape")
}

// Script4HB returns a script as a HarfBuzz script.
func Script4HB(s language.Script) hblang.Script {
	b := []byte(s.String())
	b[0] = byte(unicode.ToLower(rune(b[0])))
	h := binary.BigEndian.Uint32(b)
	return hblang.Script(h)
}

// A Shaper shapes text with HarfBuzz for one font instance. Font holds its
// Shaper behind a build-once cell; construction cost is paid at most once
// per font.
type Shaper struct {
	hbFont *hb.Font
	otf    *opentype.Font
	scale  dimen.Px // pixels per font design unit
}

var _ font.Shaper = (*Shaper)(nil)

// NewShaper prepares a HarfBuzz font for the given platform font.
func NewShaper(otf *opentype.Font) (*Shaper, error) {
	face, err := hbtt.Parse(bytes.NewReader(otf.Binary()), true)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "HarfBuzz cannot parse font data")
	}
	hbFont := hb.NewFont(face)
	hbFont.Ptem = float32(otf.PtSize())
	return &Shaper{
		hbFont: hbFont,
		otf:    otf,
		scale:  dimen.PtToPx(otf.PtSize()) / dimen.Px(otf.UnitsPerEm()),
	}, nil
}

// Shape implements font.Shaper. It selects a shape plan from the options,
// including direction, script and feature switches, and converts HarfBuzz's
// design-space output to fractional pixels.
func (s *Shaper) Shape(text string, options font.ShapingOptions, seq *font.GlyphSequence) error {
	runes := []rune(text)
	hbBuf := hb.NewBuffer()
	convertOptions(&hbBuf.Props, options)
	hbBuf.AddRunes(runes, 0, len(runes))
	hbBuf.Shape(s.hbFont, featuresFor(options, len(runes)))
	//
	glyphs := make([]font.ShapedGlyph, len(hbBuf.Info))
	var total dimen.Px
	for i, info := range hbBuf.Info {
		pos := hbBuf.Pos[i]
		g := &glyphs[i]
		g.GID = font.GlyphID(info.Glyph)
		g.Cluster = info.Cluster
		if info.Cluster >= 0 && info.Cluster < len(runes) {
			g.CodePoint = runes[info.Cluster]
		}
		g.XAdvance = dimen.Px(pos.XAdvance) * s.scale
		g.YAdvance = dimen.Px(pos.YAdvance) * s.scale
		g.XOffset = dimen.Px(pos.XOffset) * s.scale
		g.YOffset = dimen.Px(pos.YOffset) * s.scale
		if g.CodePoint == ' ' {
			g.XAdvance += options.WordSpacing
		}
		if options.HasLetterSpacing {
			g.XAdvance += options.LetterSpacing
		}
		total += g.XAdvance
	}
	seq.Glyphs = glyphs
	seq.Advance = total
	return nil
}

// Baseline implements font.Shaper. Fonts without a BASE table report no
// baseline information; layout then falls back to metrics-derived values.
func (s *Shaper) Baseline() (font.FontBaseline, bool) {
	if s.otf.Table(font.TagBASE) == nil {
		tracer().Debugf("font has no BASE table, no baselines")
		return font.FontBaseline{}, false
	}
	m := s.otf.Metrics()
	return font.FontBaseline{
		Hanging:     m.Ascent * 0.8,
		Alphabetic:  0,
		Ideographic: -m.Descent,
	}, true
}

// convertOptions is a helper function to convert shaping options to
// HarfBuzz segment properties.
func convertOptions(props *hb.SegmentProperties, options font.ShapingOptions) {
	if options.Flags&font.RTL != 0 {
		props.Direction = hb.RightToLeft
	} else {
		props.Direction = hb.LeftToRight
	}
	var none language.Script
	if options.Script != none {
		props.Script = Script4HB(options.Script)
	}
}

// featuresFor translates option flags to HarfBuzz feature switches.
func featuresFor(options font.ShapingOptions, length int) []hb.Feature {
	var features []hb.Feature
	off := func(tag string) {
		features = append(features, hb.Feature{
			Tag:   hbtt.MustNewTag(tag),
			Value: 0,
			Start: 0,
			End:   length,
		})
	}
	if options.Flags&font.IgnoreLigatures != 0 {
		off("liga")
		off("clig")
	}
	if options.Flags&font.DisableKerning != 0 {
		off("kern")
	}
	return features
}
