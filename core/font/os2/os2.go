package os2

import "encoding/binary"

// Byte offsets of fields within the OS/2 table, version 0 layout. Later
// versions only append fields, so these stay valid for every version.
const (
	offsVersion        = 0
	offsUSWeightClass  = 4
	offsUSWidthClass   = 6
	offsUnicodeRange1  = 42
	offsFsSelection    = 62
	minimumTableLength = 58
)

// fsSelection bits
const (
	fsItalic  = 1 << 0
	fsBold    = 1 << 5
	fsRegular = 1 << 6
	fsOblique = 1 << 9
)

// UnicodeRanges extracts the four ulUnicodeRange registers from a raw OS/2
// table. It returns ok=false for a table too short to hold them; callers
// should then treat the font's declared coverage as unknown.
func UnicodeRanges(table []byte) (r1, r2, r3, r4 uint32, ok bool) {
	if len(table) < minimumTableLength {
		tracer().Debugf("OS/2 table too short (%d bytes), no unicode ranges", len(table))
		return 0, 0, 0, 0, false
	}
	r1 = binary.BigEndian.Uint32(table[offsUnicodeRange1:])
	r2 = binary.BigEndian.Uint32(table[offsUnicodeRange1+4:])
	r3 = binary.BigEndian.Uint32(table[offsUnicodeRange1+8:])
	r4 = binary.BigEndian.Uint32(table[offsUnicodeRange1+12:])
	return r1, r2, r3, r4, true
}

// WeightClass returns the usWeightClass field (CSS font-weight scale,
// 1–1000) of a raw OS/2 table, or 400 if the table is too short.
func WeightClass(table []byte) uint16 {
	if len(table) < offsUSWeightClass+2 {
		return 400
	}
	return binary.BigEndian.Uint16(table[offsUSWeightClass:])
}

// WidthClass returns the usWidthClass field (1–9, 5 = normal) of a raw
// OS/2 table, or 5 if the table is too short.
func WidthClass(table []byte) uint16 {
	if len(table) < offsUSWidthClass+2 {
		return 5
	}
	return binary.BigEndian.Uint16(table[offsUSWidthClass:])
}

// IsItalic reports whether the fsSelection field of a raw OS/2 table has
// the italic or oblique bit set.
func IsItalic(table []byte) bool {
	if len(table) < offsFsSelection+2 {
		return false
	}
	fs := binary.BigEndian.Uint16(table[offsFsSelection:])
	return fs&fsItalic != 0 || fs&fsOblique != 0
}
