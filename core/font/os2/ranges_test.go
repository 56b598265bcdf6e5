package os2

import (
	"encoding/binary"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestConvertEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontsel.font")
	defer teardown()
	//
	ranges := ConvertUnicodeRanges(0, 0, 0, 0)
	if len(ranges) != 0 {
		t.Errorf("expected no ranges for empty registers, have %d", len(ranges))
	}
}

func TestConvertBasicLatin(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontsel.font")
	defer teardown()
	//
	ranges := ConvertUnicodeRanges(1, 0, 0, 0)
	assert.Equal(t, []RuneRange{{0x0020, 0x007E}}, ranges)
}

func TestConvertPreservesDuplicates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontsel.font")
	defer teardown()
	//
	// bit 57 (Non-Plane 0) overlaps bit 58 (Phoenician); both must survive
	ranges := ConvertUnicodeRanges(0, 1<<25|1<<26, 0, 0)
	assert.Len(t, ranges, 2)
	assert.True(t, RangesCover(ranges, 0x10905))
}

func TestConvertTableOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontsel.font")
	defer teardown()
	//
	// bits 0 and 1 of register 1, bit 70 (Tibetan) of register 3
	ranges := ConvertUnicodeRanges(3, 0, 1<<6, 0)
	want := []RuneRange{{0x0020, 0x007E}, {0x0080, 0x00FF}, {0x0F00, 0x0FFF}}
	assert.Equal(t, want, ranges)
}

func TestConvertMultiBlockBit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontsel.font")
	defer teardown()
	//
	// bit 9 carries all four Cyrillic blocks
	ranges := ConvertUnicodeRanges(1<<9, 0, 0, 0)
	assert.Len(t, ranges, 4)
	assert.True(t, RangesCover(ranges, 0x0416)) // Ж
	assert.True(t, RangesCover(ranges, 0xA650))
	assert.False(t, RangesCover(ranges, 'A'))
}

func TestConvertReservedBits(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontsel.font")
	defer teardown()
	//
	// bits 123-127 are reserved and must not contribute
	ranges := ConvertUnicodeRanges(0, 0, 0, 0xF8000000)
	assert.Empty(t, ranges)
}

func TestUnicodeRangesFromTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontsel.font")
	defer teardown()
	//
	table := make([]byte, 78)
	binary.BigEndian.PutUint32(table[42:], 0x00000003)
	binary.BigEndian.PutUint32(table[46:], 0x10000000)
	r1, r2, r3, r4, ok := UnicodeRanges(table)
	if !ok {
		t.Fatal("expected unicode ranges to be readable")
	}
	assert.Equal(t, uint32(3), r1)
	assert.Equal(t, uint32(0x10000000), r2)
	assert.Zero(t, r3)
	assert.Zero(t, r4)
	//
	_, _, _, _, ok = UnicodeRanges(table[:40])
	assert.False(t, ok, "short table must not report ranges")
}

func TestWeightAndWidthClass(t *testing.T) {
	table := make([]byte, 78)
	binary.BigEndian.PutUint16(table[4:], 700)
	binary.BigEndian.PutUint16(table[6:], 3)
	assert.Equal(t, uint16(700), WeightClass(table))
	assert.Equal(t, uint16(3), WidthClass(table))
	assert.Equal(t, uint16(400), WeightClass(nil))
	assert.Equal(t, uint16(5), WidthClass(nil))
}
