// Package mask implements the eight QR Code data masking patterns.
package mask

// Mask is a number between 0 and 7 (inclusive), identifying one of the
// eight standard data masking patterns.
type Mask uint8

// New creates a mask object from the given number.
func New(mask uint8) Mask {
	// Panics if the number is outside the range [0, 7].
	if mask > 7 {
		panic("Mask value out of range")
	}

	return Mask(mask)
}

// Value returns the value, which is in the range [0, 7].
func (m Mask) Value() uint8 {
	return uint8(m)
}

// Invert reports whether the module at (x, y) should be inverted by this
// mask pattern. Only data modules are ever passed through this function;
// function modules must be excluded by the caller.
func (m Mask) Invert(x, y int32) bool {
	switch m.Value() {
	case 0:
		return (x+y)%2 == 0
	case 1:
		return y%2 == 0
	case 2:
		return x%3 == 0
	case 3:
		return (x+y)%3 == 0
	case 4:
		return (x/3+y/2)%2 == 0
	case 5:
		return x*y%2+x*y%3 == 0
	case 6:
		return (x*y%2+x*y%3)%2 == 0
	case 7:
		return ((x+y)%2+x*y%3)%2 == 0
	default:
		panic("unreachable")
	}
}

// All returns the eight mask patterns in index order, for callers that
// iterate over every candidate while choosing the best one.
func All() [8]Mask {
	return [8]Mask{New(0), New(1), New(2), New(3), New(4), New(5), New(6), New(7)}
}
