package fontregistry

import (
	"testing"

	"github.com/npillmayer/fontsel/core/font"
	"github.com/npillmayer/fontsel/core/font/fontgroup"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

var _ fontgroup.FontContext = (*Registry)(nil)

func testDesc() font.Descriptor {
	return font.Descriptor{
		Weight:  xfont.WeightNormal,
		Stretch: font.StretchNormal,
		Style:   xfont.StyleNormal,
		PtSize:  12,
	}
}

func TestRegisterDecodesMetadata(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontsel.registry")
	defer teardown()
	reg := NewRegistry(WithoutSystemSearch())
	tmpl, err := reg.RegisterFont("Go Regular", goregular.TTF)
	assert.NoError(t, err)
	assert.Equal(t, xfont.WeightNormal, tmpl.Weight)
	assert.Equal(t, xfont.StyleNormal, tmpl.Style)
	assert.NotEmpty(t, tmpl.Ranges, "declared unicode coverage decoded at registration")
	assert.True(t, tmpl.CoversRune('A'))
}

func TestRegisterRejectsGarbage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontsel.registry")
	defer teardown()
	reg := NewRegistry(WithoutSystemSearch())
	tmpl, err := reg.RegisterFont("Broken", []byte{1, 2, 3})
	assert.Error(t, err)
	assert.Nil(t, tmpl)
}

func TestMatchingTemplatesOrdersByWeight(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontsel.registry")
	defer teardown()
	reg := NewRegistry(WithoutSystemSearch())
	regular, err := reg.RegisterFont("Go", goregular.TTF)
	assert.NoError(t, err)
	bold, err := reg.RegisterFont("Go", gobold.TTF)
	assert.NoError(t, err)
	assert.Equal(t, xfont.WeightBold, bold.Weight)
	desc := testDesc()
	matches := reg.MatchingTemplates(desc, fontgroup.FamilyDescriptor{Name: "Go"})
	assert.Len(t, matches, 2)
	assert.Same(t, regular, matches[0])
	desc.Weight = xfont.WeightBold
	matches = reg.MatchingTemplates(desc, fontgroup.FamilyDescriptor{Name: "Go"})
	assert.Same(t, bold, matches[0])
}

func TestUnknownFamilyResolvesToNothing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontsel.registry")
	defer teardown()
	reg := NewRegistry(WithoutSystemSearch())
	matches := reg.MatchingTemplates(testDesc(),
		fontgroup.FamilyDescriptor{Name: "No Such Family"})
	assert.Empty(t, matches)
}

func TestFontInstancesMemoized(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontsel.registry")
	defer teardown()
	reg := NewRegistry(WithoutSystemSearch())
	tmpl, err := reg.RegisterFont("Go Regular", goregular.TTF)
	assert.NoError(t, err)
	f1 := reg.Font(tmpl, testDesc())
	assert.NotNil(t, f1)
	f2 := reg.Font(tmpl, testDesc())
	assert.Same(t, f1, f2)
	assert.Equal(t, reg.FontInstanceKey(f1), reg.FontInstanceKey(f2))
	other := testDesc()
	other.PtSize = 24
	f3 := reg.Font(tmpl, other)
	assert.NotNil(t, f3)
	assert.NotSame(t, f1, f3)
	assert.NotEqual(t, reg.FontInstanceKey(f1), reg.FontInstanceKey(f3))
}

func TestFailedRealizationMemoized(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontsel.registry")
	defer teardown()
	reg := NewRegistry(WithoutSystemSearch())
	tmpl := font.NewTemplate("Broken", []byte{0, 0, 0, 0})
	assert.Nil(t, reg.Font(tmpl, testDesc()))
	assert.Nil(t, reg.Font(tmpl, testDesc()))
}

func TestSmallCapsCompanionSynthesis(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontsel.registry")
	defer teardown()
	reg := NewRegistry(WithoutSystemSearch())
	tmpl, err := reg.RegisterFont("Go Regular", goregular.TTF)
	assert.NoError(t, err)
	desc := testDesc()
	desc.Variant = font.VariantSmallCaps
	f := reg.Font(tmpl, desc)
	assert.NotNil(t, f)
	companion := f.SmallCapsCompanion()
	assert.NotNil(t, companion)
	assert.InDelta(t, desc.PtSize*font.SmallCapsScale,
		companion.Descriptor().PtSize, 0.001)
}

func TestRegistryServesFontGroup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontsel.registry")
	defer teardown()
	reg := NewRegistry(WithoutSystemSearch())
	_, err := reg.RegisterFont("Go Regular", goregular.TTF)
	assert.NoError(t, err)
	group := fontgroup.NewFontGroup(testDesc(),
		[]fontgroup.FamilyDescriptor{{Name: "Go Regular"}})
	f := group.FindByCodepoint(reg, 'A', 0, nil)
	assert.NotNil(t, f)
	assert.True(t, f.HasGlyphFor('A'))
	seq := f.ShapeText("Affe", font.ShapingOptions{})
	assert.NotNil(t, seq)
	assert.Greater(t, float64(seq.Advance), 0.0)
}

func TestNormalizeFamilyName(t *testing.T) {
	assert.Equal(t, "go_regular", NormalizeFamilyName(" Go Regular "))
	assert.Equal(t, "gentiumplus-r", NormalizeFamilyName("GentiumPlus-R.ttf"))
}

func TestMatchWeight(t *testing.T) {
	assert.Equal(t, PerfectConfidence, MatchWeight(xfont.WeightBold, xfont.WeightBold))
	assert.Equal(t, HighConfidence, MatchWeight(xfont.WeightSemiBold, xfont.WeightBold))
	assert.Equal(t, LowConfidence, MatchWeight(xfont.WeightMedium, xfont.WeightBold))
	assert.Equal(t, NoConfidence, MatchWeight(xfont.WeightLight, xfont.WeightBold))
}

func TestMatchStyle(t *testing.T) {
	assert.Equal(t, PerfectConfidence, MatchStyle(xfont.StyleItalic, xfont.StyleItalic))
	assert.Equal(t, HighConfidence, MatchStyle(xfont.StyleOblique, xfont.StyleItalic))
	assert.Equal(t, NoConfidence, MatchStyle(xfont.StyleNormal, xfont.StyleItalic))
}
