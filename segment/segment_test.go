package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/qrforge/qrcode/version"
)

func Test_IsNumeric(t *testing.T) {
	assert.True(t, IsNumeric([]rune("0123456789")))
	assert.False(t, IsNumeric([]rune("0123A")))
}

func Test_IsAlphanumeric(t *testing.T) {
	assert.True(t, IsAlphanumeric([]rune("ABC 123$%*+-./:")))
	assert.False(t, IsAlphanumeric([]rune("abc"))) // lowercase not allowed
}

func Test_IsByteCompatible(t *testing.T) {
	assert.True(t, IsByteCompatible([]rune{0, 0xFF, 'a'}))
	assert.False(t, IsByteCompatible([]rune{0x100}))
	assert.False(t, IsByteCompatible([]rune("世界")))
}

func Test_MakeNumericPanicsOnNonDigit(t *testing.T) {
	assert.Panics(t, func() { MakeNumeric([]rune("12a")) })
}

func Test_MakeAlphanumericPanicsOnUnencodable(t *testing.T) {
	assert.Panics(t, func() { MakeAlphanumeric([]rune("abc")) })
}

func Test_MakeNumericBitLength(t *testing.T) {
	// 3 digits -> 10 bits, 2 remaining digits -> 7 bits
	seg := MakeNumeric([]rune("12345"))
	assert.Equal(t, ModeNumeric, seg.Mode())
	assert.Equal(t, uint(5), seg.NumChars())
	assert.Len(t, seg.Data(), 17)
}

func Test_MakeAlphanumericBitLength(t *testing.T) {
	// 2 chars -> 11 bits, 1 remaining char -> 6 bits
	seg := MakeAlphanumeric([]rune("ABC"))
	assert.Equal(t, ModeAlphanumeric, seg.Mode())
	assert.Len(t, seg.Data(), 17)
}

func Test_MakeBytesBitLength(t *testing.T) {
	seg := MakeBytes([]byte{1, 2, 3})
	assert.Equal(t, ModeByte, seg.Mode())
	assert.Equal(t, uint(3), seg.NumChars())
	assert.Len(t, seg.Data(), 24)
}

func Test_GetTotalBitsNilOnOverflow(t *testing.T) {
	// Numeric mode at version 1 uses a 10-bit character count field, so a
	// segment claiming more than 1023 characters cannot fit the field.
	seg := New(ModeNumeric, 1024, make([]bool, 0))
	assert.Nil(t, GetTotalBits([]Segment{seg}, version.New(1)))
}

func Test_GetTotalBitsSumsHeaderAndData(t *testing.T) {
	seg := MakeNumeric([]rune("123"))
	total := GetTotalBits([]Segment{seg}, version.New(1))
	assert.NotNil(t, total)
	// 4 (mode) + 10 (count field at v1) + 10 (data for 3 digits)
	assert.Equal(t, uint(24), *total)
}
