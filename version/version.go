// Package version defines the QR Code version number, which determines a
// symbol's side length and its alignment pattern layout.
package version

import (
	"errors"
	"fmt"
)

// Version is a number between 1 and 40 (inclusive).
type Version uint8

const (
	// Min is the minimum version number supported in the QR Code Model 2 standard.
	Min = Version(1)
	// Max is the maximum version number supported in the QR Code Model 2 standard.
	Max = Version(40)
)

// ErrInvalidVersion is returned by Parse when the requested version number
// is outside [1, 40].
var ErrInvalidVersion = errors.New("version: number out of range [1, 40]")

// New creates a version object from the given number.
//
// Panics if the number is outside the range [1, 40]. Use New only for
// internally-derived values that are already known to be in range; for
// values originating outside the library (CLI flags, config files), use
// Parse instead.
func New(ver uint8) Version {
	if ver < uint8(Min) || ver > uint8(Max) {
		panic("Version number out of range")
	}

	return Version(ver)
}

// Parse validates an externally-supplied version number, returning
// ErrInvalidVersion instead of panicking when it is out of range.
func Parse(ver int) (Version, error) {
	if ver < int(Min) || ver > int(Max) {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidVersion, ver)
	}
	return Version(ver), nil
}

// Value returns the value, which is in the range [1, 40].
func (v Version) Value() uint8 {
	return uint8(v)
}

// Size returns the side length of a symbol at this version, in modules.
func (v Version) Size() int32 {
	return int32(v)*4 + 17
}
