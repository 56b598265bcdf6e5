package font

import (
	"os"
	"sync"

	"github.com/npillmayer/fontsel/core"
	"github.com/npillmayer/fontsel/core/font/os2"
	xfont "golang.org/x/image/font"
)

// A Template describes an installed or loaded font resource with its
// declared metadata, without instantiating it at a size. Selection predicates
// run against templates first; only a template that passes cheap declared
// checks is worth a font load.
//
// Templates are shared by pointer and must not be mutated after
// registration.
type Template struct {
	Family string
	Style  xfont.Style
	Weight xfont.Weight
	Width  Stretch

	// Ranges is the declared unicode coverage, decoded once from the OS/2
	// table or taken from an @font-face unicode-range descriptor. An empty
	// list means unrestricted coverage.
	Ranges []os2.RuneRange

	Path   string // file location; empty for in-memory fonts
	binary []byte // raw sfnt data; loaded lazily for file-backed templates

	loadOnce sync.Once
	loadErr  error
}

// NewTemplate creates a template for raw sfnt data.
func NewTemplate(family string, data []byte) *Template {
	return &Template{
		Family: family,
		Weight: xfont.WeightNormal,
		Width:  StretchNormal,
		binary: data,
	}
}

// NewFileTemplate creates a template backed by a font file. The file is not
// read until the template's data is first needed.
func NewFileTemplate(family string, path string) *Template {
	return &Template{
		Family: family,
		Weight: xfont.WeightNormal,
		Width:  StretchNormal,
		Path:   path,
	}
}

// CoversRune reports whether the template's declared unicode coverage
// contains r. A template without declared ranges covers everything.
func (t *Template) CoversRune(r rune) bool {
	if len(t.Ranges) == 0 {
		return true
	}
	return os2.RangesCover(t.Ranges, r)
}

// Data returns the raw sfnt data of the template, reading a file-backed
// template at most once.
func (t *Template) Data() ([]byte, error) {
	t.loadOnce.Do(func() {
		if t.binary != nil || t.Path == "" {
			return
		}
		data, err := os.ReadFile(t.Path)
		if err != nil {
			t.loadErr = core.WrapError(err, core.EMISSING, "font file not readable: %s", t.Path)
			return
		}
		t.binary = data
	})
	if t.loadErr != nil {
		return nil, t.loadErr
	}
	if t.binary == nil {
		return nil, core.Error(core.EMISSING, "template %q has no font data", t.Family)
	}
	return t.binary, nil
}
