package segment

import "github.com/qrforge/qrcode/internal/bitx"

/*---- Bit buffer functionality ----*/

// BitBuffer is an appendable sequence of bits (0s and 1s).
//
// Mainly used by Segment.
type BitBuffer []bool

// AppendBits appends the given number of low-order bits of the given value to this buffer.
//
// Requires len <= 31 and val < 2^len.
func (b *BitBuffer) AppendBits(val uint32, length uint8) {
	if length > 31 || (val>>length) != 0 {
		panic("Value out of range")
	}

	if length == 0 {
		return
	}
	tmp := make([]bool, length)
	for i := int32(length - 1); i > -1; i-- { // Append bit by bit
		v := bitx.GetBit(val, i)
		tmp[int32(length-1)-i] = v
	}

	res := append([]bool(*b), tmp...)
	*b = BitBuffer(res)
}
