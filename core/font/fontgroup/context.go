package fontgroup

import (
	"github.com/npillmayer/fontsel/core/font"
)

// SearchScope restricts where a family may be looked up.
type SearchScope uint8

const (
	// ScopeAny permits web fonts as well as locally installed fonts.
	ScopeAny SearchScope = iota
	// ScopeLocal permits locally installed fonts only.
	ScopeLocal
)

// FamilyDescriptor names one entry of a font-family list together with the
// scope in which the name may be resolved.
type FamilyDescriptor struct {
	Name  string
	Scope SearchScope
}

// FontContext is the environment a FontGroup resolves fonts in. It is the
// seam between group-level selection policy and the registry that owns
// templates and font instances.
type FontContext interface {
	// Font realizes a template at a given description, returning nil if the
	// font cannot be loaded. Implementations memoize both outcomes.
	Font(tmpl *font.Template, desc font.Descriptor) *font.Font

	// MatchingTemplates returns the templates of a family which match a
	// description, best match first. A family unknown in the context's scope
	// yields an empty slice.
	MatchingTemplates(desc font.Descriptor, family FamilyDescriptor) []*font.Template

	// FontInstanceKey returns a stable identifier for a font instance,
	// usable as a cache key by clients.
	FontInstanceKey(f *font.Font) uint32
}
