package fontgroup

import (
	"github.com/npillmayer/fontsel/core/font"
)

// familyMember pairs a template with its lazily realized font. A failed load
// is memoized just like a successful one, so the context is asked at most
// once per member.
type familyMember struct {
	template *font.Template
	font     *font.Font
	resolved bool
}

func (m *familyMember) resolve(fctx FontContext, desc font.Descriptor) *font.Font {
	if !m.resolved {
		m.font = fctx.Font(m.template, desc)
		m.resolved = true
		if m.font == nil {
			tracer().Debugf("font for template %q did not load", m.template.Family)
		}
	}
	return m.font
}

// FontGroupFamily is one entry of a FontGroup's family list. Its member
// templates are looked up on first use and the list stays bound to the
// description of that first query.
type FontGroupFamily struct {
	descriptor FamilyDescriptor
	members    []*familyMember
	populated  bool
	boundTo    font.Descriptor
}

func newFontGroupFamily(fd FamilyDescriptor) *FontGroupFamily {
	return &FontGroupFamily{descriptor: fd}
}

// membersFor returns the family's members for a description, querying the
// context on the first call. The member list is permanently bound to the
// first description it was populated for; querying with a different one is a
// programming error.
func (f *FontGroupFamily) membersFor(desc font.Descriptor, fctx FontContext) []*familyMember {
	if f.populated {
		if f.boundTo != desc {
			panic("font family queried with a second, different font description")
		}
		return f.members
	}
	templates := fctx.MatchingTemplates(desc, f.descriptor)
	f.members = make([]*familyMember, 0, len(templates))
	for _, t := range templates {
		f.members = append(f.members, &familyMember{template: t})
	}
	f.populated = true
	f.boundTo = desc
	tracer().Debugf("family %q populated with %d member(s)", f.descriptor.Name, len(f.members))
	return f.members
}

// find walks the family's members and returns the first font passing both
// predicates. Members whose template fails the template predicate are
// skipped, as are members whose font fails to load. But once a member's
// template has claimed eligibility and its font did load, a font predicate
// failure ends the search within this family: the declared coverage was
// authoritative, and siblings are not consulted.
func (f *FontGroupFamily) find(desc font.Descriptor, fctx FontContext,
	templateOK func(*font.Template) bool, fontOK func(*font.Font) bool) *font.Font {
	//
	for _, m := range f.members {
		if !templateOK(m.template) {
			continue
		}
		fnt := m.resolve(fctx, desc)
		if fnt == nil {
			continue
		}
		if fontOK(fnt) {
			return fnt
		}
		return nil
	}
	return nil
}
