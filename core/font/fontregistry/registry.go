package fontregistry

import (
	"sort"
	"strings"
	"sync"

	"github.com/flopp/go-findfont"
	"github.com/npillmayer/fontsel/core/font"
	"github.com/npillmayer/fontsel/core/font/fontgroup"
	"github.com/npillmayer/fontsel/core/font/harfbuzz"
	"github.com/npillmayer/fontsel/core/font/opentype"
	"github.com/npillmayer/fontsel/core/font/os2"
	"github.com/npillmayer/schuko/tracing"
	xfont "golang.org/x/image/font"
)

// Registry is a store of font templates and of the fonts realized from them.
// It implements fontgroup.FontContext. All methods are safe for concurrent
// use.
type Registry struct {
	sync.Mutex
	templates    map[string][]*font.Template
	instances    map[instanceKey]*font.Font // nil entries memoize failed loads
	keys         map[*font.Font]uint32
	nextKey      uint32
	searched     map[string]bool // family names already probed on the system
	systemSearch bool
}

// instanceKey identifies one realization of a template at a description.
type instanceKey struct {
	template *font.Template
	desc     font.Descriptor
}

var globalFontRegistry *Registry

var globalRegistryCreation sync.Once

// GlobalRegistry is an application-wide singleton holding templates and
// realized fonts.
func GlobalRegistry() *Registry {
	globalRegistryCreation.Do(func() {
		globalFontRegistry = NewRegistry()
	})
	return globalFontRegistry
}

// Option configures a Registry during creation.
type Option func(*Registry)

// WithoutSystemSearch disables lookup of locally installed fonts. Useful for
// hermetic tests; unknown families then simply resolve to nothing.
func WithoutSystemSearch() Option {
	return func(r *Registry) {
		r.systemSearch = false
	}
}

// NewRegistry creates an empty font registry.
func NewRegistry(opts ...Option) *Registry {
	fr := &Registry{
		templates:    make(map[string][]*font.Template),
		instances:    make(map[instanceKey]*font.Font),
		keys:         make(map[*font.Font]uint32),
		searched:     make(map[string]bool),
		systemSearch: true,
	}
	for _, opt := range opts {
		opt(fr)
	}
	return fr
}

// RegisterFont stores an in-memory font under a family name and returns its
// template. Style, weight, width and declared unicode coverage are decoded
// from the font data once, here.
func (fr *Registry) RegisterFont(family string, data []byte) (*font.Template, error) {
	tmpl := font.NewTemplate(family, data)
	if err := describeTemplate(tmpl, data); err != nil {
		return nil, err
	}
	fr.storeTemplate(tmpl)
	return tmpl, nil
}

// RegisterFontFile stores a font file under a family name and returns its
// template. The file is read once to decode the template metadata.
func (fr *Registry) RegisterFontFile(family string, path string) (*font.Template, error) {
	tmpl := font.NewFileTemplate(family, path)
	data, err := tmpl.Data()
	if err != nil {
		return nil, err
	}
	if err := describeTemplate(tmpl, data); err != nil {
		return nil, err
	}
	fr.storeTemplate(tmpl)
	return tmpl, nil
}

func (fr *Registry) storeTemplate(tmpl *font.Template) {
	name := NormalizeFamilyName(tmpl.Family)
	fr.Lock()
	defer fr.Unlock()
	tracer().Debugf("registry stores template for %s as %s", tmpl.Family, name)
	fr.templates[name] = append(fr.templates[name], tmpl)
}

// describeTemplate fills a template's selection metadata from the font's
// OS/2 table. Fonts without one keep zero metadata, except that file-backed
// templates fall back to guessing style and weight from the file name.
func describeTemplate(tmpl *font.Template, data []byte) error {
	tables, err := opentype.Tables(data)
	if err != nil {
		return err
	}
	if t, ok := tables[font.TagOS2]; ok {
		if r1, r2, r3, r4, ok := os2.UnicodeRanges(t); ok {
			tmpl.Ranges = os2.ConvertUnicodeRanges(r1, r2, r3, r4)
		}
		tmpl.Weight = weightFromClass(os2.WeightClass(t))
		tmpl.Width = stretchFromClass(os2.WidthClass(t))
		if os2.IsItalic(t) {
			tmpl.Style = xfont.StyleItalic
		}
	} else if tmpl.Path != "" {
		tmpl.Style, tmpl.Weight = GuessStyleAndWeight(tmpl.Path)
	}
	return nil
}

// Font realizes a template at a description, or returns the cached instance
// from an earlier call. A load failure is cached as well, so a broken font
// file is parsed at most once. For small-caps descriptions the returned font
// carries a companion font scaled down for synthesized small caps.
func (fr *Registry) Font(tmpl *font.Template, desc font.Descriptor) *font.Font {
	fr.Lock()
	defer fr.Unlock()
	key := instanceKey{template: tmpl, desc: desc}
	if f, ok := fr.instances[key]; ok {
		return f
	}
	f := fr.realize(tmpl, desc)
	if f != nil && desc.Variant == font.VariantSmallCaps {
		if c := fr.realize(tmpl, desc.SmallCapsDescriptor()); c != nil {
			f.SetSmallCapsCompanion(c)
		}
	}
	fr.instances[key] = f
	return f
}

// realize loads and wires a single font instance. Caller holds the lock.
func (fr *Registry) realize(tmpl *font.Template, desc font.Descriptor) *font.Font {
	data, err := tmpl.Data()
	if err != nil {
		tracer().Errorf("cannot read font %s: %v", tmpl.Family, err)
		return nil
	}
	otf, err := opentype.NewFont(data, desc.PtSize)
	if err != nil {
		tracer().Errorf("cannot parse font %s: %v", tmpl.Family, err)
		return nil
	}
	f, err := font.NewFont(otf, desc,
		font.WithTemplate(tmpl),
		font.WithShaper(func(*font.Font) font.Shaper {
			sh, err := harfbuzz.NewShaper(otf)
			if err != nil {
				tracer().Errorf("no shaper for font %s: %v", tmpl.Family, err)
				return nil
			}
			return sh
		}))
	if err != nil {
		tracer().Errorf("cannot realize font %s: %v", tmpl.Family, err)
		return nil
	}
	fr.keys[f] = fr.nextKey
	fr.nextKey++
	tracer().Infof("registry realizes font %s at %s", tmpl.Family, desc)
	return f
}

// MatchingTemplates returns a family's templates ordered by how well they
// match a description. An unknown family is probed once among the locally
// installed fonts. Web font sources are not supported, so local and
// unrestricted scope resolve against the same store.
func (fr *Registry) MatchingTemplates(desc font.Descriptor, family fontgroup.FamilyDescriptor) []*font.Template {
	name := NormalizeFamilyName(family.Name)
	fr.Lock()
	defer fr.Unlock()
	candidates := fr.templates[name]
	if len(candidates) == 0 && fr.systemSearch && !fr.searched[name] {
		fr.searched[name] = true
		candidates = fr.findSystemFont(family.Name, name)
	}
	if len(candidates) == 0 {
		return nil
	}
	matches := make([]*font.Template, len(candidates))
	copy(matches, candidates)
	sort.SliceStable(matches, func(i, j int) bool {
		ci, cj := matchConfidence(matches[i], desc), matchConfidence(matches[j], desc)
		if ci != cj {
			return ci > cj
		}
		return stretchDistance(matches[i].Width, desc.Stretch) <
			stretchDistance(matches[j].Width, desc.Stretch)
	})
	return matches
}

// findSystemFont probes the platform font directories for a family and
// registers a template for it. Caller holds the lock.
func (fr *Registry) findSystemFont(family, name string) []*font.Template {
	fpath, err := findfont.Find(family)
	if err != nil || fpath == "" {
		tracer().Debugf("family %s is not installed", family)
		return nil
	}
	tracer().Debugf("%s is a system font: %s", family, fpath)
	tmpl := font.NewFileTemplate(family, fpath)
	data, err := tmpl.Data()
	if err != nil {
		tracer().Errorf("cannot read system font %s: %v", fpath, err)
		return nil
	}
	if err := describeTemplate(tmpl, data); err != nil {
		tracer().Errorf("cannot parse system font %s: %v", fpath, err)
		return nil
	}
	fr.templates[name] = append(fr.templates[name], tmpl)
	return fr.templates[name]
}

// FontInstanceKey returns a stable identifier for a font instance, assigning
// one on first sight. Keys are unique per registry.
func (fr *Registry) FontInstanceKey(f *font.Font) uint32 {
	fr.Lock()
	defer fr.Unlock()
	if k, ok := fr.keys[f]; ok {
		return k
	}
	k := fr.nextKey
	fr.nextKey++
	fr.keys[f] = k
	return k
}

// LogTemplateList is a helper function to dump the list of known templates
// and realized fonts in a registry to the trace-file (log-level Info).
func (fr *Registry) LogTemplateList() {
	level := tracer().GetTraceLevel()
	tracer().SetTraceLevel(tracing.LevelInfo)
	tracer().Infof("--- registered templates ---")
	fr.Lock()
	defer fr.Unlock()
	for k, tmpls := range fr.templates {
		for _, t := range tmpls {
			tracer().Infof("template [%s] = %v", k, t.Family)
		}
	}
	for key, f := range fr.instances {
		if f != nil {
			tracer().Infof("font [%s @ %.2fpt] = key %d", key.template.Family,
				key.desc.PtSize, fr.keys[f])
		}
	}
	tracer().Infof("----------------------------")
	tracer().SetTraceLevel(level)
}

// NormalizeFamilyName returns the registry key for a font family name.
func NormalizeFamilyName(fname string) string {
	fname = strings.TrimSpace(fname)
	fname = strings.ReplaceAll(fname, " ", "_")
	if dot := strings.LastIndex(fname, "."); dot > 0 {
		fname = fname[:dot]
	}
	return strings.ToLower(fname)
}

// weightFromClass maps an OS/2 usWeightClass (100…900) to the x/image/font
// weight scale (-3…+5).
func weightFromClass(class uint16) xfont.Weight {
	if class < 100 {
		class = 100
	} else if class > 900 {
		class = 900
	}
	return xfont.Weight(int(class)/100 - 4)
}

// stretchFromClass maps an OS/2 usWidthClass (1…9) to a CSS font-stretch
// percentage.
func stretchFromClass(class uint16) font.Stretch {
	widths := [...]font.Stretch{50, 62.5, 75, 87.5, 100, 112.5, 125, 150, 200}
	if class < 1 || int(class) > len(widths) {
		return font.StretchNormal
	}
	return widths[class-1]
}
