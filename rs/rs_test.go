package rs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ComputeDivisorRejectsOutOfRangeDegree(t *testing.T) {
	_, err := ComputeDivisor(0)
	assert.ErrorIs(t, err, ErrInvalidDegree)

	_, err = ComputeDivisor(256)
	assert.ErrorIs(t, err, ErrInvalidDegree)
}

func Test_ComputeDivisorLength(t *testing.T) {
	div, err := ComputeDivisor(10)
	assert.NoError(t, err)
	assert.Len(t, div, 10)
}

// Test vector taken from the worked example in Reed-Solomon Codes for Coders
// (res.cloudinary / Thonky's QR tutorial): encoding the bytes
// 0x10 0x20 0x0C 0x56 0x61 0x80 0xEC 0x11 0xEC 0x11 0xEC 0x11 0xEC 0x11 0xEC 0x11
// with 10 ECC codewords yields the remainder below.
func Test_ComputeRemainderKnownVector(t *testing.T) {
	data := []byte{0x10, 0x20, 0x0C, 0x56, 0x61, 0x80, 0xEC, 0x11, 0xEC, 0x11, 0xEC, 0x11, 0xEC, 0x11, 0xEC, 0x11}
	div, err := ComputeDivisor(10)
	assert.NoError(t, err)

	ecc := ComputeRemainder(data, div)
	assert.Len(t, ecc, 10)
	assert.Equal(t, []byte{0xA5, 0x24, 0xD4, 0xC1, 0xED, 0x36, 0xC7, 0x87, 0x2C, 0x55}, ecc)
}

func Test_EncodeAppendsRemainder(t *testing.T) {
	data := []byte{1, 2, 3, 4}
	div, err := ComputeDivisor(4)
	assert.NoError(t, err)

	encoded := Encode(data, div)
	assert.Equal(t, data, encoded[:len(data)])
	assert.Equal(t, ComputeRemainder(data, div), encoded[len(data):])
}

func Test_ComputeRemainderOfEmptyDataIsZero(t *testing.T) {
	div, err := ComputeDivisor(6)
	assert.NoError(t, err)
	assert.Equal(t, make([]byte, 6), ComputeRemainder(nil, div))
}
