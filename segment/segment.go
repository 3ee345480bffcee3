// Package segment builds the bit-level content of the three supported QR
// Code segment modes (numeric, alphanumeric, byte).
package segment

import (
	"github.com/qrforge/qrcode/version"
)

// AlphanumericCharset is the set of all legal characters in alphanumeric
// mode, where each character value maps to the index in the string.
var AlphanumericCharset = [45]rune{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9',
	'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M', 'N', 'O', 'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z',
	' ', '$', '%', '*', '+', '-', '.', '/', ':'}

var alphanumericCharset = make(map[rune]int, 45)

func init() {
	for i, c := range AlphanumericCharset {
		alphanumericCharset[c] = i
	}
}

/*---- Segment functionality ----*/

// Segment is a segment of character or binary data in a QR Code symbol.
//
// Instances of this struct are immutable.
//
// The mid-level way to create a segment is to take the payload data
// and call a static factory function such as MakeNumeric. The low-level
// way to create a segment is to custom-make the bit buffer and call
// New with appropriate values.
//
// This struct imposes no length restrictions, but QR Codes have restrictions.
// Even in the most favorable conditions, a QR Code can only hold 7089 characters of data.
// Any segment longer than this is meaningless for the purpose of generating QR Codes.
type Segment struct {
	// The mode indicator of this segment. Accessed through Mode().
	mode Mode
	// The length of this segment's unencoded data, measured in characters for
	// numeric/alphanumeric mode and bytes for byte mode. Not the same as the
	// data's bit length. Accessed through NumChars().
	numchars uint
	// The data bits of this segment. Accessed through Data().
	data []bool
}

/*---- Static factory functions (mid level) ----*/

// MakeBytes returns a segment representing the given binary data encoded in byte mode.
//
// All input byte slices are acceptable.
func MakeBytes(data []uint8) Segment {
	bb := make(BitBuffer, 0, len(data)*8)
	for _, b := range data {
		bb.AppendBits(uint32(b), 8)
	}

	return Segment{
		mode:     ModeByte,
		numchars: uint(len(data)),
		data:     bb,
	}
}

// MakeNumeric returns a segment representing the given string of decimal digits encoded in numeric mode.
//
// Panics if the string contains non-digit characters.
func MakeNumeric(text []rune) Segment {
	bb := make(BitBuffer, 0, len(text)*3+(len(text)+2)/3)
	var accumdata uint32
	var accumcount uint8
	for _, c := range text {
		if '0' > c || c > '9' {
			panic("String contains non-numeric characters")
		}
		accumdata = accumdata*10 + uint32(c) - uint32('0')
		accumcount += 1
		if accumcount == 3 {
			bb.AppendBits(accumdata, 10)
			accumdata = 0
			accumcount = 0
		}
	}
	if accumcount > 0 { // 1 or 2 digits remaining
		bb.AppendBits(accumdata, accumcount*3+1)
	}

	return Segment{
		mode:     ModeNumeric,
		numchars: uint(len(text)),
		data:     bb,
	}
}

// MakeAlphanumeric returns a segment representing the given text string encoded in alphanumeric mode.
//
// The characters allowed are: 0 to 9, A to Z (uppercase only), space,
// dollar, percent, asterisk, plus, hyphen, period, slash, colon.
//
// Panics if the string contains non-encodable characters.
func MakeAlphanumeric(text []rune) Segment {
	bb := make(BitBuffer, 0, len(text)*5+(len(text)+1)/2)
	var accumdata uint32
	var accumcount uint32
	for _, c := range text {
		idx, ok := alphanumericCharset[c]
		if !ok {
			panic("String contains unencodable characters in alphanumeric mode")
		}
		accumdata = accumdata*45 + uint32(idx)
		accumcount += 1
		if accumcount == 2 {
			bb.AppendBits(accumdata, 11)
			accumdata = 0
			accumcount = 0
		}
	}
	if accumcount > 0 { // 1 character remaining
		bb.AppendBits(accumdata, 6)
	}

	return Segment{
		mode:     ModeAlphanumeric,
		numchars: uint(len(text)),
		data:     bb,
	}
}

/*---- Constructor (low level) ----*/

// New creates a new QR Code segment with the given attributes and data.
//
// The character count (numchars) must agree with the mode and
// the bit buffer length, but the constraint isn't checked.
func New(mode Mode, numchars uint, data []bool) Segment {
	return Segment{
		mode:     mode,
		numchars: numchars,
		data:     data,
	}
}

/*---- Instance field getters ----*/

// Mode returns the mode indicator of this segment.
func (s Segment) Mode() Mode {
	return s.mode
}

// NumChars returns the character count field of this segment.
func (s Segment) NumChars() uint {
	return s.numchars
}

// Data returns the data bits of this segment.
func (s Segment) Data() []bool {
	return s.data
}

/*---- Other static functions ----*/

// GetTotalBits calculates and returns the number of bits needed to encode the given
// segments at the given version. The result is nil if a segment has too many
// characters to fit its length field.
func GetTotalBits(segs []Segment, ver version.Version) *uint {
	var result uint
	for _, seg := range segs {
		ccbits := seg.mode.NumCharCountBits(ver)
		limit := uint(1) << ccbits
		if seg.numchars >= limit {
			return nil // The segment's length doesn't fit the field's bit width
		}

		result += 4 + uint(ccbits)
		result += uint(len(seg.data))
	}

	return &result
}

// IsNumeric tests whether the given string can be encoded as a segment in numeric mode.
//
// A string is encodable iff each character is in the range 0 to 9.
func IsNumeric(text []rune) bool {
	for _, c := range text {
		if c < '0' || c > '9' {
			return false
		}
	}

	return true
}

// IsAlphanumeric tests whether the given string can be encoded as a segment in alphanumeric mode.
//
// A string is encodable iff each character is in the following set: 0 to 9, A to Z
// (uppercase only), space, dollar, percent, asterisk, plus, hyphen, period, slash, colon.
func IsAlphanumeric(text []rune) bool {
	for _, c := range text {
		_, ok := alphanumericCharset[c]
		if !ok {
			return false
		}
	}

	return true
}

// IsByteCompatible tests whether every code point of text fits in a single
// byte (0 to 255), the requirement for encoding it in byte mode. Text that
// fails this test cannot be represented by any supported segment mode.
func IsByteCompatible(text []rune) bool {
	for _, c := range text {
		if c < 0 || c > 0xFF {
			return false
		}
	}
	return true
}
