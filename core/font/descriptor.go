package font

import (
	"fmt"

	xfont "golang.org/x/image/font"
)

// Stretch is a CSS font-stretch value in percent, 100 = normal.
type Stretch float32

// Common font-stretch values.
const (
	StretchCondensed Stretch = 75
	StretchNormal    Stretch = 100
	StretchExpanded  Stretch = 125
)

// Variant is a CSS font-variant-caps value.
type Variant uint8

// Font variants.
const (
	VariantNormal Variant = iota
	VariantSmallCaps
)

// A Descriptor identifies one rendering of a font template: a combination
// of weight, stretch, style, variant and size. Descriptors are value types;
// they are comparable and may be used as map keys.
type Descriptor struct {
	Weight  xfont.Weight
	Stretch Stretch
	Style   xfont.Style
	Variant Variant
	PtSize  float64
}

// Stringer implementation.
func (d Descriptor) String() string {
	return fmt.Sprintf("descriptor{w=%d s=%g style=%d variant=%d %.1fpt}",
		d.Weight, d.Stretch, d.Style, d.Variant, d.PtSize)
}

// SmallCapsScale is the size factor for synthesized small-caps companion
// fonts.
const SmallCapsScale = 0.8

// SmallCapsDescriptor returns the descriptor of the synthesized small-caps
// companion for d: same weight, stretch and style, at a reduced size.
func (d Descriptor) SmallCapsDescriptor() Descriptor {
	c := d
	c.PtSize = d.PtSize * SmallCapsScale
	return c
}
