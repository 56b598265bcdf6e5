package opentype

import (
	"encoding/binary"
	"sync"

	"github.com/npillmayer/fontsel/core"
	"github.com/npillmayer/fontsel/core/dimen"
	"github.com/npillmayer/fontsel/core/font"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Font adapts a parsed OpenType/TrueType font at a fixed size to the
// font.PlatformFont interface. The sfnt query buffer is not thread-safe;
// a mutex serializes it. Callers (package font) hit this adapter only on
// cache misses.
type Font struct {
	otf     *sfnt.Font
	binary  []byte
	tables  map[font.Tag][]byte
	ptSize  float64
	sizePx  dimen.Px
	ppem    fixed.Int26_6
	upem    uint16
	metrics font.Metrics

	mu  sync.Mutex
	buf sfnt.Buffer
}

var _ font.PlatformFont = (*Font)(nil)

// NewFont parses raw sfnt data and realizes it at a point-size. It is the
// construction half of the platform contract: the only operation that can
// fail.
func NewFont(data []byte, ptSize float64) (*Font, error) {
	otf, err := sfnt.Parse(data)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot parse font data")
	}
	tables, err := parseTableDirectory(data)
	if err != nil {
		return nil, err
	}
	if ptSize <= 0 {
		return nil, core.Error(core.EINVALID, "font size must be positive, is %g", ptSize)
	}
	f := &Font{
		otf:    otf,
		binary: data,
		tables: tables,
		ptSize: ptSize,
		sizePx: dimen.PtToPx(ptSize),
		upem:   uint16(otf.UnitsPerEm()),
	}
	f.ppem = f.sizePx.ToFixed()
	f.metrics = f.computeMetrics()
	return f, nil
}

// Binary returns the raw sfnt data the font was parsed from.
func (f *Font) Binary() []byte {
	return f.binary
}

// PtSize returns the font's size in printer's points.
func (f *Font) PtSize() float64 {
	return f.ptSize
}

// UnitsPerEm returns the design units per em square.
func (f *Font) UnitsPerEm() uint16 {
	return f.upem
}

// unitsToPx scales a value in font design units to fractional pixels.
func (f *Font) unitsToPx(u int16) dimen.Px {
	return dimen.Px(u) * f.sizePx / dimen.Px(f.upem)
}

// GlyphIndex implements font.PlatformFont. Glyph 0 (".notdef") counts as
// absence.
func (f *Font) GlyphIndex(r rune) (font.GlyphID, bool) {
	f.mu.Lock()
	gid, err := f.otf.GlyphIndex(&f.buf, r)
	f.mu.Unlock()
	if err != nil || gid == 0 {
		return 0, false
	}
	return font.GlyphID(gid), true
}

// GlyphHAdvance implements font.PlatformFont.
func (f *Font) GlyphHAdvance(g font.GlyphID) (dimen.Px, bool) {
	f.mu.Lock()
	adv, err := f.otf.GlyphAdvance(&f.buf, sfnt.GlyphIndex(g), f.ppem, xfont.HintingNone)
	f.mu.Unlock()
	if err != nil {
		return 0, false
	}
	return dimen.FromFixed(adv), true
}

// GlyphHKerning implements font.PlatformFont. Unkerned pairs and lookup
// errors report 0.
func (f *Font) GlyphHKerning(g0, g1 font.GlyphID) dimen.Px {
	f.mu.Lock()
	kern, err := f.otf.Kern(&f.buf, sfnt.GlyphIndex(g0), sfnt.GlyphIndex(g1), f.ppem, xfont.HintingNone)
	f.mu.Unlock()
	if err != nil {
		return 0
	}
	return dimen.FromFixed(kern)
}

// Metrics implements font.PlatformFont.
func (f *Font) Metrics() font.Metrics {
	return f.metrics
}

// Table implements font.PlatformFont, returning the raw bytes of an sfnt
// table or nil.
func (f *Font) Table(tag font.Tag) []byte {
	t, ok := f.tables[tag]
	if !ok {
		tracer().Debugf("font has no %s table", tag)
		return nil
	}
	return t
}

// TypographicBounds implements font.PlatformFont. The y-axis points up, as
// in typographic convention; sfnt's y-down coordinates are flipped.
func (f *Font) TypographicBounds(g font.GlyphID) font.GlyphBounds {
	f.mu.Lock()
	rect, _, err := f.otf.GlyphBounds(&f.buf, sfnt.GlyphIndex(g), f.ppem, xfont.HintingNone)
	f.mu.Unlock()
	if err != nil {
		return font.GlyphBounds{}
	}
	return font.GlyphBounds{
		MinX: dimen.FromFixed(rect.Min.X),
		MaxX: dimen.FromFixed(rect.Max.X),
		MinY: -dimen.FromFixed(rect.Max.Y),
		MaxY: -dimen.FromFixed(rect.Min.Y),
	}
}

// computeMetrics derives the immutable font-wide metrics, combining sfnt
// queries with direct reads of the OS/2 and post tables.
func (f *Font) computeMetrics() font.Metrics {
	m := font.Metrics{EmSize: f.sizePx}
	f.mu.Lock()
	xm, err := f.otf.Metrics(&f.buf, f.ppem, xfont.HintingNone)
	f.mu.Unlock()
	if err == nil {
		m.Ascent = dimen.FromFixed(xm.Ascent)
		m.Descent = dimen.FromFixed(xm.Descent)
		m.XHeight = dimen.FromFixed(xm.XHeight)
		m.CapHeight = dimen.FromFixed(xm.CapHeight)
		m.LineGap = dimen.Max(0, dimen.FromFixed(xm.Height)-m.Ascent-m.Descent)
	}
	if gid, ok := f.GlyphIndex(' '); ok {
		if adv, ok := f.GlyphHAdvance(gid); ok {
			m.SpaceAdvance = adv
		}
	}
	if gid, ok := f.GlyphIndex('0'); ok {
		if adv, ok := f.GlyphHAdvance(gid); ok {
			m.ZeroAdvance = adv
		}
	}
	if os2tbl := f.tables[font.TagOS2]; len(os2tbl) >= 30 {
		m.AverageAdvance = f.unitsToPx(int16(binary.BigEndian.Uint16(os2tbl[2:])))
		m.StrikeoutSize = f.unitsToPx(int16(binary.BigEndian.Uint16(os2tbl[26:])))
		m.StrikeoutOff = f.unitsToPx(int16(binary.BigEndian.Uint16(os2tbl[28:])))
	}
	if post := f.tables[font.TagPost]; len(post) >= 12 {
		m.UnderlineOff = f.unitsToPx(int16(binary.BigEndian.Uint16(post[8:])))
		m.UnderlineSize = f.unitsToPx(int16(binary.BigEndian.Uint16(post[10:])))
	}
	if hhea := f.tables[font.TagHhea]; len(hhea) >= 12 {
		m.MaxAdvance = f.unitsToPx(int16(binary.BigEndian.Uint16(hhea[10:])))
	}
	return m
}
