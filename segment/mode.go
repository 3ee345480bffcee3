package segment

import "github.com/qrforge/qrcode/version"

/*---- Mode functionality ----*/

// Mode describes how a segment's data bits are interpreted. Only the three
// modes named in the standard's mandatory subset are supported: numeric,
// alphanumeric and byte.
type Mode uint32

const (
	ModeNumeric Mode = iota
	ModeAlphanumeric
	ModeByte
)

// ModeBits returns an unsigned 4-bit integer value (range 0 to 15)
// representing the mode indicator bits for this mode object.
func (m Mode) ModeBits() uint32 {
	switch m {
	case ModeNumeric:
		return 0x1
	case ModeAlphanumeric:
		return 0x2
	case ModeByte:
		return 0x4
	default:
		panic("unknown Mode")
	}
}

// NumCharCountBits returns the bit width of the character count field for a segment in this mode
// in a QR Code at the given version number. The result is in the range [0, 16].
func (m Mode) NumCharCountBits(ver version.Version) uint8 {
	var tmp [3]uint8

	switch m {
	case ModeNumeric:
		tmp = [3]uint8{10, 12, 14}
	case ModeAlphanumeric:
		tmp = [3]uint8{9, 11, 13}
	case ModeByte:
		tmp = [3]uint8{8, 16, 16}
	default:
		panic("unknown Mode")
	}

	idx := (ver.Value() + 7) / 17
	return tmp[idx]
}
