package fontgroup

import (
	"github.com/npillmayer/fontsel/core/font"
	"github.com/npillmayer/fontsel/core/font/fallback"
)

// FontGroup resolves fonts for a single computed font description. It owns
// the ordered family list from the style's font-family property plus a cache
// of platform fallback families consulted for characters the explicit
// families cannot render.
type FontGroup struct {
	descriptor font.Descriptor
	families   []*FontGroupFamily
	fallbacks  map[string]*FontGroupFamily
}

// NewFontGroup creates a FontGroup for a font description and its ordered
// font-family list.
func NewFontGroup(desc font.Descriptor, families []FamilyDescriptor) *FontGroup {
	g := &FontGroup{
		descriptor: desc,
		fallbacks:  make(map[string]*FontGroupFamily),
	}
	g.families = make([]*FontGroupFamily, 0, len(families))
	for _, fd := range families {
		g.families = append(g.families, newFontGroupFamily(fd))
	}
	return g
}

// Descriptor returns the font description this group resolves for.
func (g *FontGroup) Descriptor() font.Descriptor {
	return g.descriptor
}

// fallbackFamily returns the memoized FontGroupFamily for a platform
// fallback family name. Fallback families are always resolved locally.
func (g *FontGroup) fallbackFamily(name string) *FontGroupFamily {
	if f, ok := g.fallbacks[name]; ok {
		return f
	}
	f := newFontGroupFamily(FamilyDescriptor{Name: name, Scope: ScopeLocal})
	g.fallbacks[name] = f
	return f
}

// FindByCodepoint returns a font able to render codepoint cp, or nil if even
// the last-resort search comes up empty. next is the codepoint following cp
// in the text, used for emoji presentation detection (variation selectors),
// and may be 0 at end of text. firstFallback, if non-nil, is the font a
// previous resolution fell back to; it is tried right after the explicit
// families so that runs of fallback text stay in one font.
func (g *FontGroup) FindByCodepoint(fctx FontContext, cp rune, next rune, firstFallback *font.Font) *font.Font {
	// Tab is rendered as a space advance, so select the font for a space.
	selCp := cp
	if selCp == '\t' {
		selCp = ' '
	}
	// Under small caps a lowercase letter is rendered as its uppercase in
	// the companion font, so the whole selection runs on the uppercase.
	smallCaps := g.descriptor.Variant == font.VariantSmallCaps && selCp >= 'a' && selCp <= 'z'
	if smallCaps {
		selCp -= 'a' - 'A'
	}
	pres := fallback.Options{Codepoint: selCp, NextCodepoint: next}.Preference()
	templateOK := func(t *font.Template) bool {
		return t == nil || t.CoversRune(selCp)
	}
	fontOK := func(f *font.Font) bool {
		return f.HasGlyphFor(selCp) && presentationMatches(f, pres)
	}
	var selected *font.Font
	for _, fam := range g.families {
		fam.membersFor(g.descriptor, fctx)
		if selected = fam.find(g.descriptor, fctx, templateOK, fontOK); selected != nil {
			break
		}
	}
	if selected == nil && firstFallback != nil {
		if templateOK(firstFallback.Template()) && fontOK(firstFallback) {
			selected = firstFallback
		}
	}
	if selected == nil {
		names := append([]string{fallback.DefaultFamily()},
			fallback.Families(fallback.Options{Codepoint: selCp, NextCodepoint: next})...)
		for _, name := range names {
			fam := g.fallbackFamily(name)
			fam.membersFor(g.descriptor, fctx)
			if selected = fam.find(g.descriptor, fctx, templateOK, fontOK); selected != nil {
				break
			}
		}
	}
	if selected == nil {
		tracer().Debugf("no font covers U+%04X, resorting to first font", selCp)
		selected = g.First(fctx)
	}
	if selected != nil && smallCaps {
		if sc := selected.SmallCapsCompanion(); sc != nil {
			selected = sc
		}
	}
	return selected
}

// First returns the group's primary font: the first font of the explicit,
// default and platform fallback families whose declared ranges cover a space
// character. Actual glyph coverage is deliberately not checked, a font used
// for baseline metrics need not render anything.
func (g *FontGroup) First(fctx FontContext) *font.Font {
	templateOK := func(t *font.Template) bool {
		return t == nil || t.CoversRune(' ')
	}
	fontOK := func(*font.Font) bool { return true }
	for _, fam := range g.families {
		fam.membersFor(g.descriptor, fctx)
		if f := fam.find(g.descriptor, fctx, templateOK, fontOK); f != nil {
			return f
		}
	}
	names := append([]string{fallback.DefaultFamily()},
		fallback.Families(fallback.Options{Codepoint: ' '})...)
	for _, name := range names {
		fam := g.fallbackFamily(name)
		fam.membersFor(g.descriptor, fctx)
		if f := fam.find(g.descriptor, fctx, templateOK, fontOK); f != nil {
			return f
		}
	}
	return nil
}

// presentationMatches decides whether a font satisfies the emoji
// presentation a character asks for. Emoji presentation requires a color
// glyph source, text presentation forbids one.
func presentationMatches(f *font.Font, pres fallback.Presentation) bool {
	switch pres {
	case fallback.PresentEmoji:
		return f.HasColorGlyphs()
	case fallback.PresentText:
		return !f.HasColorGlyphs()
	}
	return true
}
