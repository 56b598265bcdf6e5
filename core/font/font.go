package font

import (
	"sync"
	"time"

	"github.com/npillmayer/fontsel/core"
	"github.com/npillmayer/fontsel/core/dimen"
	"golang.org/x/text/language"
)

// LastResortAdvance is the advance reported for a glyph the platform cannot
// measure. Layout always gets a usable width.
const LastResortAdvance = dimen.Px(10.0)

var latinScript = language.MustParseScript("Latn")

type glyphLookup struct {
	gid   GlyphID
	found bool
}

// A Font is a font template realized at a size, together with memoizing
// caches for glyph indices, advances and shaped text.
//
// A Font may be shared between layout worker threads. The caches take a
// read lock for hits and escalate to a write lock on a miss. Two threads
// may race to fill the same miss; this is harmless because every cached
// value is a pure function of the immutable platform font, so racing
// writers store identical values. Cache entries are never evicted for the
// lifetime of the Font.
//
// Fonts are shared by pointer; lifetime ends with the last holder. The
// process-wide font cache owning eviction of Fonts lives outside this
// package.
type Font struct {
	platform   PlatformFont
	descriptor Descriptor
	metrics    Metrics
	template   *Template // template the font was realized from, may be nil

	smallCaps *Font // synthesized companion, may be nil; never references back

	mu       sync.RWMutex // guards the three cache maps below
	glyphs   map[rune]glyphLookup
	advances map[GlyphID]dimen.Px
	shaped   map[shapeCacheEntry]*GlyphSequence

	perf *ShapingPerf

	// compute-once cells; values are pure functions of the immutable
	// platform font, so concurrent first access is safe
	shaper      func() Shaper
	fastShaping func() bool
	colorGlyphs func() bool
}

// Option configures a Font at construction time.
type Option func(*Font, *fontConfig)

type fontConfig struct {
	newShaper func(*Font) Shaper
}

// WithShaper installs a factory for the general shaping engine backing the
// font. The shaper is built lazily, at most once per Font.
func WithShaper(newShaper func(*Font) Shaper) Option {
	return func(f *Font, cfg *fontConfig) {
		cfg.newShaper = newShaper
	}
}

// WithShapingPerf redirects the font's shaping time accounting to p.
func WithShapingPerf(p *ShapingPerf) Option {
	return func(f *Font, cfg *fontConfig) {
		f.perf = p
	}
}

// WithTemplate records the template the font was realized from, so that
// selection can consult the font's declared coverage.
func WithTemplate(t *Template) Option {
	return func(f *Font, cfg *fontConfig) {
		f.template = t
	}
}

// NewFont creates a Font from a platform handle and a descriptor. This is
// the only fallible operation on fonts: every later lookup degrades instead
// of erroring. Metrics are computed here, once.
func NewFont(platform PlatformFont, desc Descriptor, opts ...Option) (*Font, error) {
	if platform == nil {
		return nil, core.Error(core.EINVALID, "platform cannot create font handle for %s", desc)
	}
	f := &Font{
		platform:   platform,
		descriptor: desc,
		metrics:    platform.Metrics(),
		glyphs:     make(map[rune]glyphLookup),
		advances:   make(map[GlyphID]dimen.Px),
		shaped:     make(map[shapeCacheEntry]*GlyphSequence),
		perf:       globalShapingPerf,
	}
	cfg := &fontConfig{}
	for _, opt := range opts {
		opt(f, cfg)
	}
	f.shaper = sync.OnceValue(func() Shaper {
		if cfg.newShaper != nil {
			if s := cfg.newShaper(f); s != nil {
				return s
			}
		}
		return noShaper{}
	})
	f.fastShaping = sync.OnceValue(func() bool {
		// a font's tables cannot change post-load
		return f.platform.Table(TagKern) != nil &&
			f.platform.Table(TagGPOS) == nil &&
			f.platform.Table(TagGSUB) == nil
	})
	f.colorGlyphs = sync.OnceValue(func() bool {
		return f.platform.Table(TagCBDT) != nil ||
			f.platform.Table(TagCOLR) != nil ||
			f.platform.Table(TagSbix) != nil
	})
	return f, nil
}

// Descriptor returns the descriptor the font was created for.
func (f *Font) Descriptor() Descriptor {
	return f.descriptor
}

// Metrics returns the font-wide metrics, computed at construction.
func (f *Font) Metrics() Metrics {
	return f.metrics
}

// Platform exposes the underlying platform handle.
func (f *Font) Platform() PlatformFont {
	return f.platform
}

// Template returns the template the font was realized from, or nil for
// fonts constructed directly from a platform handle.
func (f *Font) Template() *Template {
	return f.template
}

// SetSmallCapsCompanion attaches a synthesized small-caps companion font.
// Ownership is one-directional: the companion never references its parent.
func (f *Font) SetSmallCapsCompanion(c *Font) {
	f.smallCaps = c
}

// SmallCapsCompanion returns the synthesized small-caps companion, or nil.
func (f *Font) SmallCapsCompanion() *Font {
	return f.smallCaps
}

// GlyphIndex returns the glyph for a code-point, memoizing the platform
// lookup. Confirmed absence is memoized too, so a character without a glyph
// costs one platform call, ever.
//
// For small-caps fonts ASCII lowercase letters are normalized to uppercase
// before the lookup.
func (f *Font) GlyphIndex(r rune) (GlyphID, bool) {
	if f.descriptor.Variant == VariantSmallCaps && r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	f.mu.RLock()
	l, ok := f.glyphs[r]
	f.mu.RUnlock()
	if ok {
		return l.gid, l.found
	}
	gid, found := f.platform.GlyphIndex(r)
	f.mu.Lock()
	f.glyphs[r] = glyphLookup{gid, found}
	f.mu.Unlock()
	return gid, found
}

// HasGlyphFor reports whether the font renders a glyph for r.
func (f *Font) HasGlyphFor(r rune) bool {
	_, ok := f.GlyphIndex(r)
	return ok
}

// GlyphHAdvance returns the horizontal advance of a glyph, memoized. If the
// platform cannot measure the glyph, a fixed last-resort advance is cached
// and returned instead.
func (f *Font) GlyphHAdvance(g GlyphID) dimen.Px {
	f.mu.RLock()
	adv, ok := f.advances[g]
	f.mu.RUnlock()
	if ok {
		return adv
	}
	adv, ok = f.platform.GlyphHAdvance(g)
	if !ok {
		adv = LastResortAdvance
	}
	f.mu.Lock()
	f.advances[g] = adv
	f.mu.Unlock()
	return adv
}

// GlyphHKerning returns the kerning correction for a glyph pair. Kerning is
// an uncached passthrough; it is only consulted on the fast shaping path,
// whose results are cached as a whole.
func (f *Font) GlyphHKerning(g0, g1 GlyphID) dimen.Px {
	return f.platform.GlyphHKerning(g0, g1)
}

// CanDoFastShaping reports whether text can bypass the general shaper:
// Latin script, left-to-right, pure ASCII, and a font carrying a kern table
// but neither GPOS nor GSUB.
func (f *Font) CanDoFastShaping(text string, options ShapingOptions) bool {
	return options.Script == latinScript &&
		options.Flags&RTL == 0 &&
		isASCII(text) &&
		f.fastShaping()
}

// ShapeText shapes text under the given options, consulting and filling the
// shape cache. Equal (text, options) pairs return the identical cached
// sequence handle. The time spent shaping is added to the font's shaping
// performance counter.
func (f *Font) ShapeText(text string, options ShapingOptions) *GlyphSequence {
	key := shapeCacheEntry{text: text, options: options}
	f.mu.RLock()
	seq, ok := f.shaped[key]
	f.mu.RUnlock()
	if ok {
		return seq
	}
	start := time.Now()
	seq = &GlyphSequence{}
	fast := f.CanDoFastShaping(text, options) && f.shapeTextFast(text, options, seq)
	if !fast {
		seq.Glyphs = nil
		seq.Advance = 0
		if err := f.shaper().Shape(text, options, seq); err != nil {
			tracer().Debugf("shaper failed for %q: %v", text, err)
		}
	}
	f.perf.Accumulate(time.Since(start))
	f.mu.Lock()
	defer f.mu.Unlock()
	if existing, ok := f.shaped[key]; ok {
		// lost the race; both writers computed the same value
		return existing
	}
	f.shaped[key] = seq
	return seq
}

// shapeTextFast is the fast ASCII path: per-byte glyph lookup, word-spacing
// on spaces, uniform letter-spacing, pairwise kerning against the previous
// glyph. Returns false if any character lacks a glyph, leaving the slow
// path to handle the run.
func (f *Font) shapeTextFast(text string, options ShapingOptions, seq *GlyphSequence) bool {
	glyphs := make([]ShapedGlyph, 0, len(text))
	var total dimen.Px
	var prev GlyphID
	havePrev := false
	for i := 0; i < len(text); i++ {
		r := rune(text[i])
		gid, found := f.GlyphIndex(r)
		if !found {
			return false
		}
		advance := f.GlyphHAdvance(gid)
		if r == ' ' {
			advance += options.WordSpacing
		}
		if options.HasLetterSpacing {
			advance += options.LetterSpacing
		}
		if havePrev && options.Flags&DisableKerning == 0 {
			advance += f.GlyphHKerning(prev, gid)
		}
		glyphs = append(glyphs, ShapedGlyph{
			GID:       gid,
			CodePoint: r,
			Cluster:   i,
			XAdvance:  advance,
		})
		total += advance
		prev, havePrev = gid, true
	}
	seq.Glyphs = glyphs
	seq.Advance = total
	return true
}

// HasColorGlyphs reports whether the font carries color bitmap or COLR
// outlines (CBDT, COLR or sbix table). Computed once.
func (f *Font) HasColorGlyphs() bool {
	return f.colorGlyphs()
}

// Baseline returns the font's baseline table, delegating to the lazily
// constructed shaper instance.
func (f *Font) Baseline() (FontBaseline, bool) {
	return f.shaper().Baseline()
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

// noShaper stands in when no shaping engine is configured; runs that miss
// the fast path come back empty.
type noShaper struct{}

func (noShaper) Shape(text string, options ShapingOptions, seq *GlyphSequence) error {
	return core.Error(core.EMISSING, "no shaping engine configured")
}

func (noShaper) Baseline() (FontBaseline, bool) {
	return FontBaseline{}, false
}
