package opentype

import (
	"encoding/binary"

	"github.com/npillmayer/fontsel/core"
	"github.com/npillmayer/fontsel/core/font"
)

// sfnt container signatures
const (
	typeTrueType = 0x00010000
	typeOpenType = 0x4F54544F // 'OTTO'
	typeAppleTT  = 0x74727565 // 'true'
	typeTTC      = 0x74746366 // 'ttcf'
)

func u16(b []byte, off uint32) uint16 {
	return binary.BigEndian.Uint16(b[off:])
}

func u32(b []byte, off uint32) uint32 {
	return binary.BigEndian.Uint32(b[off:])
}

// Tables parses the table directory of raw sfnt data and returns the table
// bytes by tag. It shares the underlying data, no copies are made.
func Tables(data []byte) (map[font.Tag][]byte, error) {
	return parseTableDirectory(data)
}

// parseTableDirectory locates the raw bytes of every sfnt table in a font
// file. For collections ('ttcf') the first font of the collection is used.
//
// The offset table is 12 bytes, followed immediately by 16-byte table
// records (https://learn.microsoft.com/en-us/typography/opentype/spec/otff).
func parseTableDirectory(data []byte) (map[font.Tag][]byte, error) {
	if len(data) < 12 {
		return nil, core.Error(core.EINVALID, "font data too short for sfnt header")
	}
	version := u32(data, 0)
	var dirOff uint32
	if version == typeTTC {
		if len(data) < 16 {
			return nil, core.Error(core.EINVALID, "font collection header truncated")
		}
		dirOff = u32(data, 12)
		if int(dirOff)+12 > len(data) {
			return nil, core.Error(core.EINVALID, "font collection offset out of bounds")
		}
		version = u32(data, dirOff)
	}
	if version != typeTrueType && version != typeOpenType && version != typeAppleTT {
		return nil, core.Error(core.EINVALID, "font type not supported: %08x", version)
	}
	numTables := uint32(u16(data, dirOff+4))
	if int(dirOff)+12+16*int(numTables) > len(data) {
		return nil, core.Error(core.EINVALID, "sfnt table records truncated")
	}
	tables := make(map[font.Tag][]byte, numTables)
	for i := uint32(0); i < numTables; i++ {
		rec := dirOff + 12 + 16*i
		tag := font.Tag(u32(data, rec))
		off, size := u32(data, rec+8), u32(data, rec+12)
		if uint64(off)+uint64(size) > uint64(len(data)) {
			tracer().Debugf("table %s exceeds font data, skipped", tag)
			continue
		}
		tables[tag] = data[off : off+size]
	}
	return tables, nil
}
