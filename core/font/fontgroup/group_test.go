package fontgroup

import (
	"testing"

	"github.com/npillmayer/fontsel/core/dimen"
	"github.com/npillmayer/fontsel/core/font"
	"github.com/npillmayer/fontsel/core/font/os2"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	xfont "golang.org/x/image/font"
)

// stubPlatform is a minimal platform font covering a fixed set of runes.
type stubPlatform struct {
	glyphs map[rune]font.GlyphID
}

func newStubPlatform(runes ...rune) *stubPlatform {
	p := &stubPlatform{glyphs: make(map[rune]font.GlyphID)}
	for i, r := range runes {
		p.glyphs[r] = font.GlyphID(i + 1)
	}
	return p
}

func (p *stubPlatform) GlyphIndex(r rune) (font.GlyphID, bool) {
	g, ok := p.glyphs[r]
	return g, ok
}

func (p *stubPlatform) GlyphHAdvance(g font.GlyphID) (dimen.Px, bool) {
	return 8, true
}

func (p *stubPlatform) GlyphHKerning(g0, g1 font.GlyphID) dimen.Px { return 0 }

func (p *stubPlatform) Metrics() font.Metrics {
	return font.Metrics{EmSize: 16, Ascent: 12, Descent: 4}
}

func (p *stubPlatform) Table(tag font.Tag) []byte { return nil }

func (p *stubPlatform) TypographicBounds(g font.GlyphID) font.GlyphBounds {
	return font.GlyphBounds{}
}

// stubContext serves prepared templates and fonts, counting load requests.
// It intentionally does not memoize, so call counts expose the memoization
// done by the group's family members.
type stubContext struct {
	templates map[string][]*font.Template
	fonts     map[*font.Template]*font.Font
	loadCalls map[*font.Template]int
}

func newStubContext() *stubContext {
	return &stubContext{
		templates: make(map[string][]*font.Template),
		fonts:     make(map[*font.Template]*font.Font),
		loadCalls: make(map[*font.Template]int),
	}
}

func (c *stubContext) addFamily(t *testing.T, family string, ranges []os2.RuneRange,
	runes ...rune) *font.Template {
	//
	tmpl := font.NewTemplate(family, nil)
	tmpl.Ranges = ranges
	c.templates[family] = append(c.templates[family], tmpl)
	if runes != nil {
		f, err := font.NewFont(newStubPlatform(runes...), testDesc(),
			font.WithTemplate(tmpl))
		if err != nil {
			t.Fatalf("font for family %s: %v", family, err)
		}
		c.fonts[tmpl] = f
	}
	return tmpl
}

func (c *stubContext) Font(tmpl *font.Template, desc font.Descriptor) *font.Font {
	c.loadCalls[tmpl]++
	return c.fonts[tmpl]
}

func (c *stubContext) MatchingTemplates(desc font.Descriptor, family FamilyDescriptor) []*font.Template {
	return c.templates[family.Name]
}

func (c *stubContext) FontInstanceKey(f *font.Font) uint32 { return 0 }

func testDesc() font.Descriptor {
	return font.Descriptor{
		Weight:  xfont.WeightNormal,
		Stretch: font.StretchNormal,
		Style:   xfont.StyleNormal,
		PtSize:  12,
	}
}

func TestRangeRestrictedFamilies(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontsel.group")
	defer teardown()
	fctx := newStubContext()
	caps := fctx.addFamily(t, "Caps Only", []os2.RuneRange{{Low: 'A', High: 'Z'}}, 'A', 'Z')
	all := fctx.addFamily(t, "Covers All", nil, 'z', 'Z')
	group := NewFontGroup(testDesc(), []FamilyDescriptor{
		{Name: "Caps Only"}, {Name: "Covers All"},
	})
	f := group.FindByCodepoint(fctx, 'Z', 0, nil)
	assert.Same(t, fctx.fonts[caps], f, "uppercase Z belongs to the range-restricted family")
	assert.Equal(t, 1, fctx.loadCalls[caps])
	f = group.FindByCodepoint(fctx, 'z', 0, nil)
	assert.Same(t, fctx.fonts[all], f, "lowercase z skips the range-restricted family")
	assert.Equal(t, 1, fctx.loadCalls[caps], "member resolution is memoized")
	f = group.FindByCodepoint(fctx, 'z', 0, nil)
	assert.Same(t, fctx.fonts[all], f)
	assert.Equal(t, 1, fctx.loadCalls[all], "member resolution is memoized")
}

func TestNoFallThroughAfterDeclaredMatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontsel.group")
	defer teardown()
	fctx := newStubContext()
	// First member of family One claims coverage of 'q' but renders nothing;
	// its sibling would render 'q' but must never be asked.
	claims := fctx.addFamily(t, "One", []os2.RuneRange{{Low: 'a', High: 'z'}}, 'x')
	sibling := fctx.addFamily(t, "One", []os2.RuneRange{{Low: 'a', High: 'z'}}, 'q')
	backup := fctx.addFamily(t, "Two", []os2.RuneRange{{Low: 'a', High: 'z'}}, 'q')
	group := NewFontGroup(testDesc(), []FamilyDescriptor{{Name: "One"}, {Name: "Two"}})
	f := group.FindByCodepoint(fctx, 'q', 0, nil)
	assert.Same(t, fctx.fonts[backup], f)
	assert.Equal(t, 1, fctx.loadCalls[claims])
	assert.Equal(t, 0, fctx.loadCalls[sibling], "sibling after a declared match is skipped")
}

func TestFailedLoadContinuesToSibling(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontsel.group")
	defer teardown()
	fctx := newStubContext()
	broken := fctx.addFamily(t, "Fam", []os2.RuneRange{{Low: 'a', High: 'z'}}) // no font
	working := fctx.addFamily(t, "Fam", []os2.RuneRange{{Low: 'a', High: 'z'}}, 'k')
	group := NewFontGroup(testDesc(), []FamilyDescriptor{{Name: "Fam"}})
	f := group.FindByCodepoint(fctx, 'k', 0, nil)
	assert.Same(t, fctx.fonts[working], f)
	assert.Equal(t, 1, fctx.loadCalls[broken])
}

func TestSmallCapsSubstitution(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontsel.group")
	defer teardown()
	fctx := newStubContext()
	// The family declares uppercase coverage only; a lowercase input must
	// match it through the small-caps uppercase mapping.
	tmpl := fctx.addFamily(t, "Fam", []os2.RuneRange{{Low: 'A', High: 'Z'}}, 'B')
	companion, err := font.NewFont(newStubPlatform('B'), testDesc().SmallCapsDescriptor())
	assert.NoError(t, err)
	fctx.fonts[tmpl].SetSmallCapsCompanion(companion)
	desc := testDesc()
	desc.Variant = font.VariantSmallCaps
	group := NewFontGroup(desc, []FamilyDescriptor{{Name: "Fam"}})
	f := group.FindByCodepoint(fctx, 'b', 0, nil)
	assert.Same(t, companion, f, "lowercase under small-caps resolves to the companion")
	f = group.FindByCodepoint(fctx, 'B', 0, nil)
	assert.Same(t, fctx.fonts[tmpl], f, "uppercase keeps the primary font")
}

func TestFirstIgnoresGlyphCoverage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontsel.group")
	defer teardown()
	fctx := newStubContext()
	// Declared range covers the space, the actual cmap does not.
	tmpl := fctx.addFamily(t, "Fam", []os2.RuneRange{{Low: 0x20, High: 0x7E}}, 'x')
	group := NewFontGroup(testDesc(), []FamilyDescriptor{{Name: "Fam"}})
	f := group.First(fctx)
	assert.Same(t, fctx.fonts[tmpl], f)
	assert.False(t, f.HasGlyphFor(' '))
}

func TestTabSelectsLikeSpace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontsel.group")
	defer teardown()
	fctx := newStubContext()
	tmpl := fctx.addFamily(t, "Fam", []os2.RuneRange{{Low: 0x20, High: 0x7E}}, ' ')
	group := NewFontGroup(testDesc(), []FamilyDescriptor{{Name: "Fam"}})
	forSpace := group.FindByCodepoint(fctx, ' ', 0, nil)
	forTab := group.FindByCodepoint(fctx, '\t', 0, nil)
	assert.Same(t, fctx.fonts[tmpl], forSpace)
	assert.Same(t, forSpace, forTab)
}

func TestFirstFallbackReused(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontsel.group")
	defer teardown()
	fctx := newStubContext()
	fctx.addFamily(t, "Fam", []os2.RuneRange{{Low: 'a', High: 'z'}}, 'a')
	prior, err := font.NewFont(newStubPlatform('д'), testDesc())
	assert.NoError(t, err)
	group := NewFontGroup(testDesc(), []FamilyDescriptor{{Name: "Fam"}})
	f := group.FindByCodepoint(fctx, 'д', 0, prior)
	assert.Same(t, prior, f, "prior fallback font keeps the run together")
}

func TestRebindingFamilyPanics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontsel.group")
	defer teardown()
	fctx := newStubContext()
	fam := newFontGroupFamily(FamilyDescriptor{Name: "Fam"})
	fam.membersFor(testDesc(), fctx)
	other := testDesc()
	other.PtSize = 24
	assert.Panics(t, func() { fam.membersFor(other, fctx) })
}
