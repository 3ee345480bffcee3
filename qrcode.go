// Package qrcode implements the QR Code Model 2 encoding pipeline: mode and
// version selection, bit-stream assembly, Reed-Solomon error correction,
// module placement, and mask/format-information selection. It covers all
// versions (1 to 40) and all four error correction levels, in the three
// mandatory segment modes (numeric, alphanumeric, byte). Decoding,
// structured append, Micro QR, and kanji mode are not implemented.
package qrcode

import (
	"errors"
	"fmt"
	"math"

	"github.com/qrforge/qrcode/ecl"
	"github.com/qrforge/qrcode/internal/bitx"
	"github.com/qrforge/qrcode/internal/mathx"
	"github.com/qrforge/qrcode/mask"
	"github.com/qrforge/qrcode/rs"
	"github.com/qrforge/qrcode/segment"
	"github.com/qrforge/qrcode/version"
)

/*---- Miscellaneous values ----*/

var (
	// ErrUnsupportedCharacter is returned when the input text contains a code
	// point that cannot be represented in any of the three supported segment
	// modes (it must fit the numeric, alphanumeric, or single-byte range).
	ErrUnsupportedCharacter = errors.New("UnsupportedCharacter")

	// ErrDataTooLong is the error type when the supplied data does not fit any QR Code version.
	//
	// Ways to handle this exception include:
	//
	// - Decrease the error correction level if it was greater than Low.
	// - If EncodeSegmentsAdvanced was called, increase maxversion if it was
	//   less than version.Max. (This advice does not apply to the other
	//   factory functions because they search all versions up to version.Max.)
	// - Change the text or binary data to be shorter.
	// - Change the text to fit the character set of a particular segment mode (e.g. alphanumeric).
	ErrDataTooLong = errors.New("DataTooLong")

	// ErrInvalidEcl re-exports ecl.ErrInvalidEcl for convenience.
	ErrInvalidEcl = ecl.ErrInvalidEcl

	// ErrInvalidVersion re-exports version.ErrInvalidVersion for convenience.
	ErrInvalidVersion = version.ErrInvalidVersion
)

// Type aliases so that callers of this package rarely need to import the
// constituent packages directly.
type (
	Mask    = mask.Mask
	Ecl     = ecl.Ecl
	Segment = segment.Segment
	Version = version.Version
)

// Re-exported error correction level constants.
const (
	Low      = ecl.Low
	Medium   = ecl.Medium
	Quartile = ecl.Quartile
	High     = ecl.High
)

/*---- QrCode functionality ----*/

// QrCode is a QR Code symbol, which is a type of two-dimension barcode.
//
// Instances of this struct represent an immutable square grid of dark and light cells.
// The impl provides static factory functions to create a QR Code from text or binary data.
//
// Ways to create a QR Code object:
//
//   - High level: take the payload data and call EncodeText or EncodeBinary.
//   - Mid level: custom-make a list of segments and call EncodeSegments or
//     EncodeSegmentsAdvanced.
//   - Low level: custom-make the array of data codeword bytes (including
//     segment headers and final padding, excluding error correction
//     codewords), supply the appropriate version number, and call the
//     EncodeCodewords constructor.
//
// (Note that all ways require supplying the desired error correction level.)
type QrCode struct {
	// Scalar parameters:

	// The version number of this QR Code, which is between 1 and 40 (inclusive).
	// This determines the size of this barcode.
	version Version
	// The width and height of this QR Code, measured in modules, between
	// 21 and 177 (inclusive). This is equal to version*4 + 17.
	size int32
	// The error correction level used in this QR Code.
	errorcorrectionlevel Ecl
	// The index of the mask pattern used in this QR Code, which is between 0 and 7 (inclusive).
	mask Mask

	// Grids of modules/pixels, with dimensions of size*size:

	// The modules of this QR Code (false = light, true = dark).
	// Immutable after constructor finishes. Accessed through GetModule().
	modules []bool
	// Indicates function modules that are not subjected to masking. Discarded when constructor finishes.
	isfunction []bool
}

/*---- Static factory functions (high level) ----*/

// EncodeText returns a QR Code representing the given text string at the
// given error correction level.
//
// Mode selection follows the standard segment header rules: purely numeric
// text uses numeric mode, text drawn from the standard alphanumeric charset
// uses alphanumeric mode, and any other text whose code points all fit in a
// single byte (0 to 255) uses byte mode. Text containing a code point above
// 255 cannot be represented and returns ErrUnsupportedCharacter.
//
// The smallest possible QR Code version is automatically chosen for the
// output. The ECC level of the result may be higher than the ecl argument if
// it can be done without increasing the version.
func EncodeText(text string, level Ecl) (*QrCode, error) {
	seg, err := makeSegment([]rune(text))
	if err != nil {
		return nil, err
	}
	return EncodeSegments([]Segment{seg}, level)
}

// EncodeTextAdvanced is like EncodeText, but exposes the same encoding
// parameters as EncodeSegmentsAdvanced (version range and forced mask). It
// is the entry point used by callers that let a user pin the version or
// mask of a text-derived symbol, such as a command line flag.
func EncodeTextAdvanced(text string, level Ecl, minversion, maxversion Version, m *Mask, boostecl bool) (*QrCode, error) {
	seg, err := makeSegment([]rune(text))
	if err != nil {
		return nil, err
	}
	return EncodeSegmentsAdvanced([]Segment{seg}, level, minversion, maxversion, m, boostecl)
}

// makeSegment classifies chrs into the smallest-capacity mode able to
// represent it, per the standard's mode selection order (numeric, then
// alphanumeric, then byte), and fails if no mode can.
func makeSegment(chrs []rune) (Segment, error) {
	switch {
	case segment.IsNumeric(chrs):
		return segment.MakeNumeric(chrs), nil
	case segment.IsAlphanumeric(chrs):
		return segment.MakeAlphanumeric(chrs), nil
	case segment.IsByteCompatible(chrs):
		raw := make([]byte, len(chrs))
		for i, c := range chrs {
			raw[i] = byte(c)
		}
		return segment.MakeBytes(raw), nil
	default:
		return Segment{}, fmt.Errorf("%w: code point above U+00FF", ErrUnsupportedCharacter)
	}
}

// EncodeBinary returns a QR Code representing the given binary data at the given error correction level.
//
// This function always encodes using the binary segment mode, not any text mode. The maximum number of
// bytes allowed is 2953. The smallest possible QR Code version is automatically chosen for the output.
// The ECC level of the result may be higher than the ecl argument if it can be done without increasing the version.
func EncodeBinary(data []uint8, level Ecl) (*QrCode, error) {
	seg := segment.MakeBytes(data)
	segs := []Segment{seg}

	return EncodeSegments(segs, level)
}

/*---- Static factory functions (mid level) ----*/

// EncodeSegments returns a QR Code representing the given segments at the given error correction level.
//
// The smallest possible QR Code version is automatically chosen for the output. The ECC level
// of the result may be higher than the ecl argument if it can be done without increasing the version.
//
// This function allows the user to create a custom sequence of segments that switches
// between modes (such as alphanumeric and byte) to encode text in less space.
// This is a mid-level API; the high-level API is EncodeText and EncodeBinary.
func EncodeSegments(segs []Segment, level Ecl) (*QrCode, error) {
	return EncodeSegmentsAdvanced(segs, level, version.Min, version.Max, nil, true)
}

// EncodeSegmentsAdvanced returns a QR Code representing the given segments with the given encoding parameters.
//
// The smallest possible QR Code version within the given range is automatically
// chosen for the output. Iff boostecl is true, then the ECC level of the result
// may be higher than the ecl argument if it can be done without increasing the
// version. The mask pointer is either non-nil to force that mask (0 to 7), or
// nil to automatically choose an appropriate mask (which may be slow).
//
// This function allows the user to create a custom sequence of segments that switches
// between modes (such as alphanumeric and byte) to encode text in less space.
// This is a mid-level API; the high-level API is EncodeText and EncodeBinary.
func EncodeSegmentsAdvanced(
	segs []Segment,
	level Ecl,
	minversion Version,
	maxversion Version,
	m *Mask,
	boostecl bool,
) (q *QrCode, err error) {
	if minversion > maxversion {
		panic("Invalid value")
	}

	// Find the minimal version number to use
	ver := minversion
	var datausedbits uint
	for {
		// Number of data bits available
		datacapacitybits := getNumDataCodewords(ver, level) * 8
		dataused := segment.GetTotalBits(segs, ver)

		fits := dataused != nil && *dataused <= datacapacitybits

		if fits {
			datausedbits = *dataused // This version number is found to be suitable
			break
		} else if ver.Value() >= maxversion.Value() { // All versions in the range could not fit the given data
			if dataused == nil {
				return nil, fmt.Errorf("%w: segment too long", ErrDataTooLong)
			}
			return nil, fmt.Errorf("%w: data length = %v bits, max capacity = %v bits", ErrDataTooLong, *dataused, datacapacitybits)
		} else {
			ver = version.New(ver.Value() + 1)
		}
	}

	// Increase the error correction level while the data still fits in the current version number
	for _, newecl := range []Ecl{ecl.Medium, ecl.Quartile, ecl.High} { // From low to high
		if boostecl && datausedbits <= getNumDataCodewords(ver, newecl)*8 {
			level = newecl
		}
	}

	// Concatenate all segments to create the data bit string
	bb := segment.BitBuffer{}
	for _, seg := range segs {
		bb.AppendBits(seg.Mode().ModeBits(), 4)
		bb.AppendBits(uint32(seg.NumChars()), seg.Mode().NumCharCountBits(ver))
		bb = append(bb, seg.Data()...)
	}
	if uint(len(bb)) != datausedbits {
		panic("uint(len(bb)) != datausedbits")
	}

	// Add terminator and pad up to a byte if applicable
	datacapacitybits := getNumDataCodewords(ver, level) * 8
	if uint(len(bb)) > datacapacitybits {
		panic("uint(len(bb)) > datacapacitybits")
	}
	numzerobits := mathx.MinUint(4, datacapacitybits-uint(len(bb)))
	bb.AppendBits(0, uint8(numzerobits))

	numzerobits = uint(mathx.WrappingNeg(len(bb)) & 7)
	bb.AppendBits(0, uint8(numzerobits))
	if len(bb)%8 != 0 {
		panic("len(bb)%8 != 0")
	}

	// Pad with alternating bytes until data capacity is reached
padLoop:
	for {
		for _, padByte := range []uint32{0xEC, 0x11} {
			if len(bb) >= int(datacapacitybits) {
				break padLoop
			}
			bb.AppendBits(padByte, 8)
		}
	}

	// Pack bits into bytes in big endian
	datacodewords := make([]uint8, len(bb)/8)
	for i, bit := range bb {
		datacodewords[i>>3] |= uint8(mathx.BoolToUint(bit)) << uint(7-(i&7))
	}

	// Create the QR Code object
	q = EncodeCodewords(ver, level, datacodewords, m)

	return q, nil
}

/*---- Constructor (low level) ----*/

// EncodeCodewords creates a new QR Code with the given version number,
// error correction level, data codeword bytes, and mask number.
//
// This is a low-level API that most users should not use directly.
// A mid-level API is the EncodeSegments function.
func EncodeCodewords(ver Version, level Ecl, datacodewords []uint8, m *Mask) *QrCode {
	size := uint(ver.Value())*4 + 17

	result := &QrCode{
		version:              ver,
		size:                 int32(size),
		mask:                 mask.New(0), // Dummy value
		errorcorrectionlevel: level,
		modules:              make([]bool, size*size), // Initially all light
		isfunction:           make([]bool, size*size),
	}

	// Compute ECC, draw modules
	result.drawFunctionPatterns()
	allcodewords := result.addEccAndInterleave(datacodewords)
	result.drawCodewords(allcodewords)

	// Do masking
	if m == nil { // Automatically choose best mask
		minpenalty := int32(math.MaxInt32)
		for _, candidate := range mask.All() {
			result.applyMask(candidate)
			result.drawFormatBits(candidate)
			penalty := result.getPenaltyScore()
			if penalty < minpenalty {
				chosen := candidate
				m = &chosen
				minpenalty = penalty
			}

			result.applyMask(candidate) // Undoes the mask due to XOR
		}
	}
	newmask := *m
	result.mask = newmask
	result.applyMask(newmask)      // Apply the final choice of mask
	result.drawFormatBits(newmask) // Overwrite old format bits

	result.isfunction = result.isfunction[:0]

	return result
}

/*---- Public methods ----*/

// Version returns this QR Code's version, in the range [1, 40].
func (q QrCode) Version() Version {
	return q.version
}

// Size returns this QR Code's size, in the range [21, 177].
func (q QrCode) Size() int32 {
	return q.size
}

// ErrorCorrectionLevel returns this QR Code's error correction level.
func (q QrCode) ErrorCorrectionLevel() Ecl {
	return q.errorcorrectionlevel
}

// Mask returns this QR Code's mask, in the range [0, 7].
func (q QrCode) Mask() Mask {
	return q.mask
}

// GetModule returns the color of the module (pixel) at the given coordinates,
// which is false for light or true for dark.
//
// The top left corner has the coordinates (x=0, y=0). If the given
// coordinates are out of bounds, then false (light) is returned.
func (q QrCode) GetModule(x, y int32) bool {
	return 0 <= x && x < q.size && 0 <= y && y < q.size && q.module(x, y)
}

// Grid returns the symbol as a flat, row-major []uint8 of size (Size()+2*border)
// squared, with 1 meaning dark and 0 meaning light, including a quiet zone of
// border light modules added around the outside. Panics if border is negative.
func (q QrCode) Grid(border int32) (grid []uint8, side int32) {
	if border < 0 {
		panic("border must be non-negative")
	}
	side = q.size + 2*border
	grid = make([]uint8, side*side)
	for y := int32(0); y < side; y++ {
		for x := int32(0); x < side; x++ {
			if q.GetModule(x-border, y-border) {
				grid[y*side+x] = 1
			}
		}
	}
	return grid, side
}

// Returns the color of the module at the given coordinates, which must be in bounds.
func (q QrCode) module(x, y int32) bool {
	return q.modules[uint(y*q.size+x)]
}

// Returns a mutable reference to the module's color at the given coordinates, which must be in bounds.
func (q *QrCode) moduleMut(x, y int32, val bool) {
	q.modules[uint(y*q.size+x)] = val
}

/*---- Private helper methods for constructor: Drawing function modules ----*/

// Reads this object's version field, and draws and marks all function modules.
func (q *QrCode) drawFunctionPatterns() {
	// Draw horizontal and vertical timing patterns
	size := q.size
	for i := int32(0); i < size; i++ {
		q.setFunctionModule(6, i, i%2 == 0)
		q.setFunctionModule(i, 6, i%2 == 0)
	}

	// Draw 3 finder patterns (all corners except bottom right; overwrites some timing modules)
	q.drawFinderPattern(3, 3)
	q.drawFinderPattern(q.size-4, 3)
	q.drawFinderPattern(3, q.size-4)

	// Draw numerous alignment patterns
	alignpatpos := q.getAlignmentPatternPositions()
	numalign := len(alignpatpos)
	for i := 0; i < numalign; i++ {
		for j := 0; j < numalign; j++ {
			// Don't draw on the three finder corners
			if !(i == 0 && j == 0 || i == 0 && j == numalign-1 || i == numalign-1 && j == 0) {
				q.drawAlignmentPattern(alignpatpos[i], alignpatpos[j])
			}
		}
	}

	// Draw configuration data
	q.drawFormatBits(mask.New(0)) // Dummy mask value; overwritten later in the constructor
	q.drawVersion()
}

// Draws two copies of the format bits (with its own error correction code)
// based on the given mask and this object's error correction level field.
func (q *QrCode) drawFormatBits(m Mask) {
	// Calculate error correction code and pack bits
	var bits uint32
	{
		// errorcorrectionlevel is uint2, mask is uint3
		data := uint32(q.errorcorrectionlevel.FormatBits())<<3 | uint32(m.Value())
		rem := data
		for i := 0; i < 10; i++ {
			rem = (rem << 1) ^ ((rem >> 9) * 0x537)
		}
		bits = (data<<10 | rem) ^ 0x5412 // uint15
	}
	if bits>>15 != 0 {
		panic("bits>>15 != 0")
	}

	// Draw first copy
	for i := int32(0); i < 6; i++ {
		q.setFunctionModule(8, i, bitx.GetBit(bits, i))
	}
	q.setFunctionModule(8, 7, bitx.GetBit(bits, 6))
	q.setFunctionModule(8, 8, bitx.GetBit(bits, 7))
	q.setFunctionModule(7, 8, bitx.GetBit(bits, 8))
	for i := int32(9); i < 15; i++ {
		q.setFunctionModule(14-i, 8, bitx.GetBit(bits, i))
	}

	// Draw second copy
	size := q.size
	for i := int32(0); i < 8; i++ {
		q.setFunctionModule(size-1-i, 8, bitx.GetBit(bits, i))
	}
	for i := int32(8); i < 15; i++ {
		q.setFunctionModule(8, size-15+i, bitx.GetBit(bits, i))
	}
	q.setFunctionModule(8, size-8, true) // Always dark
}

// Draws two copies of the version bits (with its own error correction code),
// based on this object's version field, iff 7 <= version <= 40.
func (q *QrCode) drawVersion() {
	if q.version < 7 {
		return
	}

	// Calculate error correction code and pack bits
	var bits uint32
	{
		data := uint32(q.version.Value()) // uint6, in the range [7, 40]
		rem := data
		for i := 0; i < 12; i++ {
			rem = (rem << 1) ^ ((rem >> 11) * 0x1F25)
		}
		bits = data<<12 | rem // uint18
	}
	if bits>>18 != 0 {
		panic("bits>>18 != 0")
	}

	// Draw two copies
	for i := int32(0); i < 18; i++ {
		bit := bitx.GetBit(bits, i)
		a := q.size - 11 + i%3
		b := i / 3
		q.setFunctionModule(a, b, bit)
		q.setFunctionModule(b, a, bit)
	}
}

// Draws a 9*9 finder pattern including the border separator,
// with the center module at (x, y). Modules can be out of bounds.
func (q *QrCode) drawFinderPattern(x, y int32) {
	for dy := int32(-4); dy <= 4; dy++ {
		for dx := int32(-4); dx <= 4; dx++ {
			xx := x + dx
			yy := y + dy
			if 0 <= xx && xx < q.size && 0 <= yy && yy < q.size {
				dist := mathx.MaxInt32(mathx.AbsInt32(dx), mathx.AbsInt32(dy)) // Chebyshev/infinity norm
				q.setFunctionModule(xx, yy, dist != 2 && dist != 4)
			}
		}
	}
}

// Draws a 5*5 alignment pattern, with the center module
// at (x, y). All modules must be in bounds.
func (q *QrCode) drawAlignmentPattern(x, y int32) {
	for dy := int32(-2); dy <= 2; dy++ {
		for dx := int32(-2); dx <= 2; dx++ {
			q.setFunctionModule(x+dx, y+dy, mathx.MaxInt32(mathx.AbsInt32(dx), mathx.AbsInt32(dy)) != 1)
		}
	}
}

// Sets the color of a module and marks it as a function module.
// Only used by the constructor. Coordinates must be in bounds.
func (q *QrCode) setFunctionModule(x int32, y int32, isdark bool) {
	q.moduleMut(x, y, isdark)
	q.isfunction[(y*q.size + x)] = true
}

/*---- Private helper methods for constructor: Codewords and masking ----*/

// Returns a new byte string representing the given data with the appropriate error correction
// codewords appended to it, based on this object's version and error correction level.
func (q *QrCode) addEccAndInterleave(data []uint8) []uint8 {
	ver := q.version
	level := q.errorcorrectionlevel
	if len(data) != int(getNumDataCodewords(ver, level)) {
		panic("Illegal argument")
	}

	// Calculate parameter numbers
	numblocks := tableGet(NUM_ERROR_CORRECTION_BLOCKS, ver, level)
	blockecclen := tableGet(ECC_CODEWORDS_PER_BLOCK, ver, level)
	rawcodewords := getNumRawDataModules(ver) / 8
	numshortblocks := numblocks - (rawcodewords % numblocks)
	shortblocklen := rawcodewords / numblocks

	// Split data into blocks and append ECC to each block
	blocks := make([][]uint8, 0, numblocks)
	rsdiv, err := rs.ComputeDivisor(int(blockecclen))
	if err != nil {
		panic(err)
	}

	var k uint
	for i, max := uint(0), numblocks; i < max; i++ {
		datlen := shortblocklen - blockecclen + mathx.BoolToUint(i >= numshortblocks)
		dat := make([]uint8, datlen)
		_ = copy(dat, data[k:k+datlen])
		k += datlen
		ecc := rs.ComputeRemainder(dat, rsdiv)

		if i < numshortblocks {
			dat = append(dat, 0)
		}
		dat = append(dat, ecc...)
		blocks = append(blocks, dat)
	}

	// Interleave (not concatenate) the bytes from every block into a single sequence
	result := make([]uint8, 0, rawcodewords)
	for i, max := uint(0), shortblocklen; i <= max; i++ {
		for j, block := range blocks {
			// Skip the padding byte in short blocks
			if i != shortblocklen-blockecclen || uint(j) >= numshortblocks {
				result = append(result, block[i])
			}
		}
	}

	return result
}

// Draws the given sequence of 8-bit codewords (data and error correction) onto the entire
// data area of this QR Code. Function modules need to be marked off before this is called.
func (q *QrCode) drawCodewords(data []uint8) {
	if uint(len(data)) != getNumRawDataModules(q.version)/8 {
		panic("Illegal argument")
	}

	var i uint // Bit index into the data
	// Do the funny zigzag scan
	right := q.size - 1
	for right >= 1 { // Index of right column in each column pair
		if right == 6 {
			right = 5
		}
		for vert := int32(0); vert < q.size; vert++ { // Vertical counter
			for j := int32(0); j < 2; j++ {
				x := right - j // Actual x coordinate
				upward := (right+1)&2 == 0
				var y int32
				if upward {
					y = q.size - 1 - vert
				} else {
					y = vert
				}
				if !q.isfunction[(y*q.size+x)] && i < uint(len(data)*8) {
					q.moduleMut(x, y, bitx.GetBit(uint32(data[i>>3]), int32(7-(i&7))))
					i += 1
				}
				// If this QR Code has any remainder bits (0 to 7), they were assigned as
				// 0/false/light by the constructor and are left unchanged by this method
			}
		}
		right -= 2
	}

	if i != uint(len(data)*8) {
		panic("i != uint(len(data)*8)")
	}
}

// XORs the codeword modules in this QR Code with the given mask pattern.
// The function modules must be marked and the codeword bits must be drawn
// before masking. Due to the arithmetic of XOR, calling applyMask() with
// the same mask value a second time will undo the mask. A final well-formed
// QR Code needs exactly one (not zero, two, etc.) mask applied.
func (q *QrCode) applyMask(m Mask) {
	for y := int32(0); y < q.size; y++ {
		for x := int32(0); x < q.size; x++ {
			invert := m.Invert(x, y) && !q.isfunction[(y*q.size+x)]
			newModule := q.module(x, y) != invert
			q.moduleMut(x, y, newModule)
		}
	}
}

// Calculates and returns the penalty score based on state of this QR Code's current modules.
// This is used by the automatic mask choice algorithm to find the mask pattern that yields the lowest score.
func (q QrCode) getPenaltyScore() int32 {
	var result int32
	size := q.size

	// Adjacent modules in row having same color, and finder-like patterns
	row := make([]bool, size)
	for y := int32(0); y < size; y++ {
		for x := int32(0); x < size; x++ {
			row[x] = q.module(x, y)
		}
		result += linePenalty(row)
	}

	// Adjacent modules in column having same color, and finder-like patterns
	col := make([]bool, size)
	for x := int32(0); x < size; x++ {
		for y := int32(0); y < size; y++ {
			col[y] = q.module(x, y)
		}
		result += linePenalty(col)
	}

	// 2*2 blocks of modules having same color
	result += blockPenalty(q.module, size)

	// Balance of dark and light modules
	var dark int32
	for _, mod := range q.modules {
		dark += mathx.BoolToInt32(mod)
	}
	result += proportionPenalty(dark, size*size) // Note that size is odd, so dark/total != 1/2

	return result
}

// linePenalty computes the N1 (runs of 5+ same-colored modules) and N3
// (1:1:3:1:1 finder-like patterns) penalty contribution for a single row or
// column of modules.
func linePenalty(line []bool) int32 {
	var result int32
	var runcolor bool
	var run int32
	size := int32(len(line))
	runhistory := newFinderPenalty(size)
	for i := int32(0); i < size; i++ {
		if line[i] == runcolor {
			run += 1
			if run == 5 {
				result += PENALTY_N1
			} else if run > 5 {
				result += 1
			}
		} else {
			runhistory.addHistory(run)
			if !runcolor {
				result += runhistory.countPatterns() * PENALTY_N3
			}
			runcolor = line[i]
			run = 1
		}
	}
	result += runhistory.terminateAndCount(runcolor, run) * PENALTY_N3
	return result
}

// blockPenalty computes the N2 penalty: PENALTY_N2 for every 2x2 block of
// modules sharing the same color, counting overlapping blocks separately.
func blockPenalty(get func(x, y int32) bool, size int32) int32 {
	var result int32
	for y := int32(0); y < size-1; y++ {
		for x := int32(0); x < size-1; x++ {
			color := get(x, y)
			if color == get(x+1, y) &&
				color == get(x, y+1) &&
				color == get(x+1, y+1) {
				result += PENALTY_N2
			}
		}
	}
	return result
}

// proportionPenalty computes the N4 penalty for the smallest integer k >= 0
// such that (45-5k)% <= dark/total <= (55+5k)%.
func proportionPenalty(dark, total int32) int32 {
	k := (mathx.AbsInt32((dark*20-total*10))+total-1)/total - 1
	if k < 0 {
		k = 0
	}
	return k * PENALTY_N4
}

/*---- Private helper functions ----*/

// Returns an ascending list of positions of alignment patterns for this version number.
// Each position is in the range [0,177), and are used on both the x and y axes.
func (q QrCode) getAlignmentPatternPositions() []int32 {
	ver := q.version.Value()
	if ver == 1 {
		return []int32{}
	}
	numalign := int32(ver)/7 + 2
	var step int32
	if ver == 32 {
		step = 26
	} else {
		step = (int32(ver)*4 + numalign*2 + 1) / (numalign*2 - 2) * 2
	}
	result := make([]int32, numalign)
	for i := int32(0); i < numalign-1; i++ {
		result[i] = q.size - 7 - i*step
	}
	result[numalign-1] = 6

	invertedResult := make([]int32, numalign)
	for i, val := range result {
		invertedResult[numalign-1-int32(i)] = val
	}

	return invertedResult
}

// Returns the number of data bits that can be stored in a QR Code of the given version number, after
// all function modules are excluded. This includes remainder bits, so it might not be a multiple of 8.
// The result is in the range [208, 29648].
func getNumRawDataModules(v Version) uint {
	ver := uint(v.Value())
	result := (16*ver+128)*ver + 64
	if ver >= 2 {
		numalign := ver/7 + 2
		result -= (25*numalign-10)*numalign - 55
		if ver >= 7 {
			result -= 36
		}
	}
	if result < 208 || result > 29648 {
		panic("result < 208 || result > 29648")
	}

	return result
}

// Returns the number of 8-bit data (i.e. not error correction) codewords contained in any
// QR Code of the given version number and error correction level, with remainder bits discarded.
func getNumDataCodewords(ver Version, level Ecl) uint {
	return getNumRawDataModules(ver)/8 - tableGet(ECC_CODEWORDS_PER_BLOCK, ver, level)*tableGet(NUM_ERROR_CORRECTION_BLOCKS, ver, level)
}

// Returns an entry from the given table based on the given values.
func tableGet(table [4][41]int8, ver Version, level Ecl) uint {
	return uint(table[level.Ordinal()][uint(ver.Value())])
}

/*---- Helper struct for getPenaltyScore() ----*/

type finderPenalty struct {
	qrSize     int32
	runHistory [7]int32
}

func newFinderPenalty(size int32) *finderPenalty {
	return &finderPenalty{
		qrSize:     size,
		runHistory: [7]int32{},
	}
}

// Pushes the given value to the front and drops the last value.
func (p *finderPenalty) addHistory(currentrunlength int32) {
	if p.runHistory[0] == 0 {
		currentrunlength += p.qrSize // Add light border to initial run
	}
	rh := &p.runHistory
	for i := len(rh) - 1 - 1; i > -1; i-- {
		p.runHistory[i+1] = rh[i]
	}
	rh[0] = currentrunlength
}

// Can only be called immediately after a light run is added, and returns either 0, 1, or 2.
func (p finderPenalty) countPatterns() int32 {
	rh := p.runHistory
	n := rh[1]
	if n > p.qrSize*3 {
		panic("n > p.qrSize*3")
	}
	core := n > 0 && rh[2] == n && rh[3] == n*3 && rh[4] == n && rh[5] == n
	return mathx.BoolToInt32(core && rh[0] >= n*4 && rh[6] >= n) + mathx.BoolToInt32(core && rh[6] >= n*4 && rh[0] >= n)
}

// Must be called at the end of a line (row or column) of modules.
func (p *finderPenalty) terminateAndCount(currentruncolor bool, currentrunlength int32) int32 {
	if currentruncolor { // Terminate dark run
		p.addHistory(currentrunlength)
		currentrunlength = 0
	}
	currentrunlength += p.qrSize // Add light border to final run
	p.addHistory(currentrunlength)
	return p.countPatterns()
}

/*---- Constants and tables ----*/

// For use in getPenaltyScore(), when evaluating which mask is best.
const (
	PENALTY_N1 int32 = 3
	PENALTY_N2 int32 = 3
	PENALTY_N3 int32 = 40
	PENALTY_N4 int32 = 10
)

var (
	ECC_CODEWORDS_PER_BLOCK [4][41]int8 = [4][41]int8{
		// Version: (note that index 0 is for padding, and is set to an illegal value)
		// 0,  1,  2,  3,  4,  5,  6,  7,  8,  9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, 36, 37, 38, 39, 40    Error correction level
		{-1, 7, 10, 15, 20, 26, 18, 20, 24, 30, 18, 20, 24, 26, 30, 22, 24, 28, 30, 28, 28, 28, 28, 30, 30, 26, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},  // Low
		{-1, 10, 16, 26, 18, 24, 16, 18, 22, 22, 26, 30, 22, 22, 24, 24, 28, 28, 26, 26, 26, 26, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28}, // Medium
		{-1, 13, 22, 18, 26, 18, 24, 18, 22, 20, 24, 28, 26, 24, 20, 30, 24, 28, 28, 26, 30, 28, 30, 30, 30, 30, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30}, // Quartile
		{-1, 17, 28, 22, 16, 22, 28, 26, 26, 24, 28, 24, 28, 22, 24, 24, 30, 28, 28, 26, 28, 30, 24, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30}, // High
	}

	NUM_ERROR_CORRECTION_BLOCKS [4][41]int8 = [4][41]int8{
		// Version: (note that index 0 is for padding, and is set to an illegal value)
		// 0, 1, 2, 3, 4, 5, 6, 7, 8, 9,10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, 36, 37, 38, 39, 40    Error correction level
		{-1, 1, 1, 1, 1, 1, 2, 2, 2, 2, 4, 4, 4, 4, 4, 6, 6, 6, 6, 7, 8, 8, 9, 9, 10, 12, 12, 12, 13, 14, 15, 16, 17, 18, 19, 19, 20, 21, 22, 24, 25},              // Low
		{-1, 1, 1, 1, 2, 2, 4, 4, 4, 5, 5, 5, 8, 9, 9, 10, 10, 11, 13, 14, 16, 17, 17, 18, 20, 21, 23, 25, 26, 28, 29, 31, 33, 35, 37, 38, 40, 43, 45, 47, 49},     // Medium
		{-1, 1, 1, 2, 2, 4, 4, 6, 6, 8, 8, 8, 10, 12, 16, 12, 17, 16, 18, 21, 20, 23, 23, 25, 27, 29, 34, 34, 35, 38, 40, 43, 45, 48, 51, 53, 56, 59, 62, 65, 68},  // Quartile
		{-1, 1, 1, 2, 4, 4, 4, 5, 6, 8, 8, 11, 11, 16, 16, 18, 16, 19, 21, 25, 25, 25, 34, 30, 32, 35, 37, 40, 42, 45, 48, 51, 54, 57, 60, 63, 66, 70, 74, 77, 81}, // High
	}
)
