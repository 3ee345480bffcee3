package qrcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/qrforge/qrcode/ecl"
	"github.com/qrforge/qrcode/mask"
	"github.com/qrforge/qrcode/segment"
	"github.com/qrforge/qrcode/version"
)

func Test_EncodeTextRejectsCodePointAboveLatin1(t *testing.T) {
	_, err := EncodeText("世界", ecl.Low)
	assert.ErrorIs(t, err, ErrUnsupportedCharacter)
}

func Test_EncodeTextAcceptsLatin1Supplement(t *testing.T) {
	qr, err := EncodeText("Grüße", ecl.Low)
	assert.NoError(t, err)
	assert.NotNil(t, qr)
}

func Test_EncodeTextChoosesSmallestVersionForModeSelection(t *testing.T) {
	numeric, err := EncodeText("0123456789", ecl.Low)
	assert.NoError(t, err)

	byteMode, err := EncodeText("0123456789a", ecl.Low) // trailing letter forces byte mode
	assert.NoError(t, err)

	// The same digits packed less densely in byte mode should never need a
	// smaller version than the numeric encoding of a shorter string.
	assert.LessOrEqual(t, numeric.Version().Value(), byteMode.Version().Value())
}

func Test_EncodeBinaryAcceptsArbitraryBytes(t *testing.T) {
	data := []byte{0x00, 0xFF, 0x10, 0x20}
	qr, err := EncodeBinary(data, ecl.Medium)
	assert.NoError(t, err)
	assert.Equal(t, ecl.Medium, qr.ErrorCorrectionLevel())
	_ = qr
}

func Test_EncodeSegmentsAdvancedRejectsDataTooLongForVersionRange(t *testing.T) {
	data := make([]byte, 3000) // exceeds version 1's capacity at any ECL
	seg := segment.MakeBytes(data)
	v1 := version.New(1)
	_, err := EncodeSegmentsAdvanced([]Segment{seg}, ecl.Low, v1, v1, nil, true)
	assert.ErrorIs(t, err, ErrDataTooLong)
}

func Test_SizeFormulaMatchesVersion(t *testing.T) {
	qr, err := EncodeText("hi", ecl.Low)
	assert.NoError(t, err)
	assert.Equal(t, qr.Version().Size(), qr.Size())
}

func Test_FormatInfoKnownVector(t *testing.T) {
	// fmt(M, 5) = 16590, the standard's worked example for the 15-bit format
	// information word at error correction level Medium and mask 5.
	qr := EncodeCodewords(version.New(1), ecl.Medium, make([]byte, int(getNumDataCodewords(version.New(1), ecl.Medium))), maskPtr(mask.New(5)))
	assert.Equal(t, mask.New(5), qr.Mask())

	var bits uint32
	data := uint32(qr.ErrorCorrectionLevel().FormatBits())<<3 | uint32(qr.Mask().Value())
	rem := data
	for i := 0; i < 10; i++ {
		rem = (rem << 1) ^ ((rem >> 9) * 0x537)
	}
	bits = (data<<10 | rem) ^ 0x5412
	assert.Equal(t, uint32(16590), bits)
}

func Test_EncodedSizeMatchesVersionForAnyText(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := rapid.StringMatching(`[0-9A-Z ]{1,40}`).Draw(t, "text")
		qr, err := EncodeText(text, ecl.Low)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		size := qr.Size()
		assert.Equal(t, qr.Version().Size(), size)
		assert.GreaterOrEqual(t, size, int32(21))
		assert.LessOrEqual(t, size, int32(177))
	})
}

func Test_GridAddsQuietZoneBorder(t *testing.T) {
	qr, err := EncodeText("hi", ecl.Low)
	assert.NoError(t, err)

	grid, side := qr.Grid(4)
	assert.Equal(t, qr.Size()+8, side)
	assert.Len(t, grid, int(side*side))

	// The quiet zone itself must be entirely light.
	for x := int32(0); x < side; x++ {
		assert.Equal(t, uint8(0), grid[x], "top row should be light")
	}
}

func maskPtr(m mask.Mask) *mask.Mask {
	return &m
}

func bitsToLine(s string) []bool {
	line := make([]bool, len(s))
	for i, c := range s {
		line[i] = c == '1'
	}
	return line
}

func Test_LinePenaltyAdjacentRun(t *testing.T) {
	// A run of 6 identical modules hits the N1=3 threshold at the 5th module,
	// then +1 for the 6th: 3 + 1 = 4.
	assert.Equal(t, int32(4), linePenalty(bitsToLine("10000001")))
}

func Test_LinePenaltyFinderLikePattern(t *testing.T) {
	// A bare row equal to the 1:1:3:1:1 finder-like ratio "00001011101"
	// qualifies from both its left and right quiet-zone edges, so it is
	// counted as two occurrences of the N3=40 penalty.
	assert.Equal(t, int32(2*PENALTY_N3), linePenalty(bitsToLine("00001011101")))
}

func Test_ProportionPenalty(t *testing.T) {
	// Exactly balanced (p=50) incurs no penalty.
	assert.Equal(t, int32(0), proportionPenalty(4, 8))
	// |p-50| = |66.67-50| = 16.67 -> floor(16.67/5) = 3 -> 3*N4 = 30.
	assert.Equal(t, int32(30), proportionPenalty(10, 15))
}

func Test_BlockPenaltySameColorGrid(t *testing.T) {
	// A 3x3 all-light grid has four overlapping 2x2 windows, each same-color.
	allLight := func(x, y int32) bool { return false }
	assert.Equal(t, int32(4*PENALTY_N2), blockPenalty(allLight, 3))
}
