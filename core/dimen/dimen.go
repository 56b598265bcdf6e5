// Package dimen implements dimensions and units for font metrics and
// glyph positioning.
//
/*
BSD License

Copyright (c) 2017–21, Norbert Pillmayer (norbert@pillmayer.com)

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.  */
package dimen

import (
	"fmt"
	"math"

	"golang.org/x/image/math/fixed"
)

// Px is a fractional pixel dimension. Glyph advances, kerning values and
// font metrics are expressed in fractional pixels.
//
// Font files express metrics in font units; platform font code scales them
// by pt-size ÷ units-per-em before they enter this package's domain.
type Px float64

// Stringer implementation.
func (p Px) String() string {
	return fmt.Sprintf("%.2fpx", float64(p))
}

// Ceil returns p rounded up to a whole pixel.
func (p Px) Ceil() Px {
	return Px(math.Ceil(float64(p)))
}

// ToFixed converts a fractional pixel value to 26.6 fixed-point format,
// as used by golang.org/x/image/font.
func (p Px) ToFixed() fixed.Int26_6 {
	return fixed.Int26_6(math.Round(float64(p) * 64))
}

// FromFixed converts a 26.6 fixed-point value to fractional pixels.
func FromFixed(x fixed.Int26_6) Px {
	return Px(float64(x) / 64)
}

// PtToPx converts a dimension in printer's points to CSS pixels
// (96 px per inch, 72 pt per inch).
func PtToPx(pt float64) Px {
	return Px(pt * 96 / 72)
}

// Min returns the smaller of two dimensions.
func Min(a, b Px) Px {
	if a < b {
		return a
	}
	return b
}

// Max returns the greater of two dimensions.
func Max(a, b Px) Px {
	if a > b {
		return a
	}
	return b
}
